package fingering

// PitchClass is one of the 12 chromatic notes, independent of octave.
type PitchClass struct {
	Index     int    // 0=C .. 11=B
	Name      string // e.g. "Do"
	Alternate string // enharmonic spelling, empty for naturals
}

// DisplayName joins the name with its enharmonic alternate.
func (p PitchClass) DisplayName() string {
	if p.Alternate == "" {
		return p.Name
	}
	return p.Name + " / " + p.Alternate
}

// NumPitchClasses is the size of the chromatic scale.
const NumPitchClasses = 12

var chromatic = [NumPitchClasses]PitchClass{
	{0, "Do", ""},
	{1, "Do♯", "Ré♭"},
	{2, "Ré", ""},
	{3, "Mi♭", "Ré♯"},
	{4, "Mi", ""},
	{5, "Fa", ""},
	{6, "Fa♯", "Sol♭"},
	{7, "Sol", ""},
	{8, "Sol♯", "La♭"},
	{9, "La", ""},
	{10, "Si♭", "La♯"},
	{11, "Si", ""},
}

// ChromaticScale returns the 12 pitch classes ascending from C.
func ChromaticScale() [NumPitchClasses]PitchClass {
	return chromatic
}

// PitchClassAt returns the pitch class for an index, reduced mod 12.
func PitchClassAt(i int) PitchClass {
	return chromatic[Mod12(i)]
}

// Mod12 reduces i into [0, 11], also for negative i.
func Mod12(i int) int {
	return (i%NumPitchClasses + NumPitchClasses) % NumPitchClasses
}

// Instrument is a (possibly transposing) instrument.
type Instrument struct {
	Name   string
	Offset int // semitones between concert pitch and written pitch
}

var instruments = []Instrument{
	{Name: "Piano / Flûte / Ut", Offset: 0},
	{Name: "Saxophone Alto / Baryton (Mi♭)", Offset: 9},
	{Name: "Saxophone Ténor / Soprano (Si♭)", Offset: 2},
	{Name: "Trompette / Clarinette (Si♭)", Offset: 2},
	{Name: "Cor en Fa", Offset: 7},
}

// Instruments returns the fixed instrument list.
func Instruments() []Instrument {
	out := make([]Instrument, len(instruments))
	copy(out, instruments)
	return out
}

// InstrumentAt returns the instrument at index i.
func InstrumentAt(i int) (Instrument, bool) {
	if i < 0 || i >= len(instruments) {
		return Instrument{}, false
	}
	return instruments[i], true
}

// NumInstruments is the size of the instrument list.
func NumInstruments() int {
	return len(instruments)
}
