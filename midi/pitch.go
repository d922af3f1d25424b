package midi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Pitch is a MIDI note number (60 = C4 in scientific pitch notation)
type Pitch uint8

// Reference pitches
const (
	PitchC4 Pitch = 60
	PitchA4 Pitch = 69
)

var letterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseScientific parses names like "Bb3", "C#4", "F♯6" or "C-1".
func ParseScientific(name string) (Pitch, error) {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "♯", "#")
	s = strings.ReplaceAll(s, "♭", "b")
	if s == "" {
		return 0, fault.Wrap(fault.New("empty pitch name"), ftag.With(ftag.InvalidArgument))
	}

	class, ok := letterClass[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fault.Wrap(fault.New(fmt.Sprintf("bad pitch letter in %q", name)), ftag.With(ftag.InvalidArgument))
	}

	i := 1
accidentals:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			class++
		case 'b':
			class--
		default:
			break accidentals
		}
	}

	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("bad octave in %q", name)),
			ftag.With(ftag.InvalidArgument))
	}

	v := (octave+1)*12 + class
	if v < 0 || v > 127 {
		return 0, fault.Wrap(fault.New(fmt.Sprintf("pitch %q outside MIDI range", name)), ftag.With(ftag.InvalidArgument))
	}
	return Pitch(v), nil
}

// MustParseScientific is ParseScientific for literals; it panics on error.
func MustParseScientific(name string) Pitch {
	p, err := ParseScientific(name)
	if err != nil {
		panic(fmt.Sprintf("midi: %v", err))
	}
	return p
}

// Class returns the pitch class, 0=C .. 11=B.
func (p Pitch) Class() int {
	return int(p) % 12
}

// Octave returns the scientific octave (gomidi counts from C-1 as octave 0).
func (p Pitch) Octave() int {
	return int(gomidi.Note(p).Octave()) - 1
}

// Name returns the flat spelling of the pitch class, e.g. "Db".
func (p Pitch) Name() string {
	return gomidi.Note(p).Name()
}

// Transpose shifts by semitones, clamped to the MIDI range.
func (p Pitch) Transpose(semitones int) Pitch {
	v := int(p) + semitones
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	return Pitch(v)
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name(), p.Octave())
}

// Pretty spells the pitch with a typographic flat, e.g. "D♭5".
func (p Pitch) Pretty() string {
	return fmt.Sprintf("%s%d", strings.ReplaceAll(p.Name(), "b", "♭"), p.Octave())
}
