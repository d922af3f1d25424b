package transpose

import (
	"testing"

	"saxguide/fingering"
)

var (
	piano = fingering.Instrument{Name: "Piano", Offset: 0}
	alto  = fingering.Instrument{Name: "Alto", Offset: 9}
	tenor = fingering.Instrument{Name: "Tenor", Offset: 2}
	horn  = fingering.Instrument{Name: "Horn", Offset: 7}
	odd   = fingering.Instrument{Name: "Odd", Offset: -5}
)

func instrumentsUnderTest() []fingering.Instrument {
	return append(fingering.Instruments(), odd, fingering.Instrument{Name: "Wide", Offset: 26})
}

func TestTransposeConcreteCases(t *testing.T) {
	if got := Transpose(piano, tenor, 0); got != 2 {
		t.Fatalf("piano C -> tenor = %d, want 2 (Ré)", got)
	}
	if got := Transpose(piano, alto, 0); got != 9 {
		t.Fatalf("piano C -> alto = %d, want 9 (La)", got)
	}
	if got := Transpose(alto, piano, 0); got != 3 {
		t.Fatalf("alto C -> piano = %d, want 3", got)
	}
	if got := Transpose(alto, tenor, 9); got != 2 {
		t.Fatalf("alto A -> tenor = %d, want 2", got)
	}
}

func TestTransposeInRange(t *testing.T) {
	for _, s := range instrumentsUnderTest() {
		for _, d := range instrumentsUnderTest() {
			for p := 0; p < 12; p++ {
				got := Transpose(s, d, p)
				if got < 0 || got > 11 {
					t.Fatalf("Transpose(%s, %s, %d) = %d out of range", s.Name, d.Name, p, got)
				}
			}
		}
	}
}

func TestTransposeIdentity(t *testing.T) {
	for _, x := range instrumentsUnderTest() {
		for p := 0; p < 12; p++ {
			if got := Transpose(x, x, p); got != p {
				t.Fatalf("Transpose(%s, %s, %d) = %d", x.Name, x.Name, p, got)
			}
		}
	}
}

func TestTransposeComposition(t *testing.T) {
	all := instrumentsUnderTest()
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				for p := 0; p < 12; p++ {
					via := Transpose(b, c, Transpose(a, b, p))
					direct := Transpose(a, c, p)
					if via != direct {
						t.Fatalf("%s->%s->%s on %d: %d, direct %d", a.Name, b.Name, c.Name, p, via, direct)
					}
				}
			}
		}
	}
}

func TestTransposeInverse(t *testing.T) {
	all := instrumentsUnderTest()
	for _, a := range all {
		for _, b := range all {
			for p := 0; p < 12; p++ {
				if got := Transpose(b, a, Transpose(a, b, p)); got != p {
					t.Fatalf("%s<->%s on %d returned %d", a.Name, b.Name, p, got)
				}
			}
		}
	}
}

func TestTransposeNegativeOperands(t *testing.T) {
	if got := Transpose(horn, piano, 0); got != 5 {
		t.Fatalf("horn C -> piano = %d, want 5", got)
	}
	if got := Transpose(piano, odd, 2); got != 9 {
		t.Fatalf("piano D -> odd = %d, want 9", got)
	}
}

func TestConcert(t *testing.T) {
	// written C on alto sounds Eb
	if got := Concert(alto, 0); got != 3 {
		t.Fatalf("alto written C sounds %d, want 3", got)
	}
	if got := Concert(tenor, 2); got != 0 {
		t.Fatalf("tenor written D sounds %d, want 0", got)
	}
}

func TestResolve(t *testing.T) {
	c := fingering.Default()
	r := Resolve(c, piano, tenor, 0)
	if r.Sounding.Index != 2 || r.Sounding.Name != "Ré" {
		t.Fatalf("sounding = %+v", r.Sounding)
	}
	if r.Note.ID != "high_d" {
		t.Fatalf("note = %s, want high_d", r.Note.ID)
	}
	if r.Keys().Len() != 7 || !r.Keys().Contains(fingering.Octave) {
		t.Fatalf("keys = %s", r.Keys())
	}

	r = Resolve(c, piano, alto, 0)
	if r.Note.ID != "mid_a" || r.Played.Name != "Do" {
		t.Fatalf("alto result = %s from %s", r.Note.ID, r.Played.Name)
	}

	for p := 0; p < 12; p++ {
		r := Resolve(c, alto, tenor, p)
		if r.Note.Pitch.Class() != r.Sounding.Index {
			t.Fatalf("pitch %d resolved to %s with class %d, want %d", p, r.Note.ID, r.Note.Pitch.Class(), r.Sounding.Index)
		}
	}
}

func TestResultKeysWithoutVariants(t *testing.T) {
	var r Result
	if r.Keys().Len() != 0 {
		t.Fatal("empty result should have no keys")
	}
}

func TestResultKeysAreACopy(t *testing.T) {
	c := fingering.Default()
	r := Resolve(c, piano, tenor, 0)
	keys := r.Keys()
	delete(keys, fingering.Octave)
	if !r.Keys().Contains(fingering.Octave) {
		t.Fatal("result keys changed through a returned copy")
	}
	if again := Resolve(c, piano, tenor, 0); again.Keys().Len() != 7 {
		t.Fatalf("resolved keys = %s", again.Keys())
	}
}
