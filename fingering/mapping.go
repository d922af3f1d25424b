package fingering

// referenceNotes picks one fingering per pitch class for the transposition
// view. Mostly the middle of the range; G and G# use the low octave, which
// reads more easily than the octave-key version.
var referenceNotes = [NumPitchClasses]string{
	0:  "mid_c",
	1:  "mid_c_sharp",
	2:  "high_d",
	3:  "high_eb",
	4:  "high_e",
	5:  "high_f",
	6:  "high_f_sharp",
	7:  "low_g",
	8:  "low_g_sharp",
	9:  "mid_a",
	10: "mid_bb",
	11: "mid_b",
}

// ReferenceNoteID returns the id of the reference note for a pitch class.
func ReferenceNoteID(pc int) string {
	return referenceNotes[Mod12(pc)]
}

// ReferenceNote returns the reference note for pc without any fallback.
func (c *Catalog) ReferenceNote(pc int) (NoteDefinition, bool) {
	return c.Note(ReferenceNoteID(pc))
}

// FindNoteByKeyMapping returns the reference note for a pitch class. When the
// mapping is missing it returns the first note of the chart; Validate rejects
// any catalog where that could happen.
func (c *Catalog) FindNoteByKeyMapping(pc int) NoteDefinition {
	if n, ok := c.ReferenceNote(pc); ok {
		return n
	}
	return c.notes[0].clone()
}
