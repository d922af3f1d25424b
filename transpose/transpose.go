// Package transpose converts a pitch played on one instrument into the pitch
// another instrument must finger to sound the same concert note.
package transpose

import "saxguide/fingering"

// Transpose returns the pitch class a target player fingers to sound what a
// source player produces when fingering played. The result is always in
// [0, 11].
func Transpose(source, target fingering.Instrument, played int) int {
	diff := target.Offset - source.Offset
	return ((played+diff)%12 + 12) % 12
}

// Concert returns the sounding (concert) pitch class of a written pitch.
func Concert(inst fingering.Instrument, written int) int {
	return Transpose(inst, fingering.Instrument{}, written)
}

// Result is a resolved transposition.
type Result struct {
	Source, Target fingering.Instrument
	Played         fingering.PitchClass
	Sounding       fingering.PitchClass
	Note           fingering.NoteDefinition
}

// Resolve transposes played and looks up the reference fingering for the
// resulting pitch class.
func Resolve(c *fingering.Catalog, source, target fingering.Instrument, played int) Result {
	pc := Transpose(source, target, played)
	return Result{
		Source:   source,
		Target:   target,
		Played:   fingering.PitchClassAt(played),
		Sounding: fingering.PitchClassAt(pc),
		Note:     c.FindNoteByKeyMapping(pc),
	}
}

// Keys returns a copy of the keys of the first fingering of the resolved note.
func (r Result) Keys() fingering.KeySet {
	if len(r.Note.Variants) == 0 {
		return fingering.KeySet{}
	}
	return r.Note.Variants[0].Keys.Clone()
}
