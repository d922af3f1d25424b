package selection

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"saxguide/fingering"
	"saxguide/render"
	"saxguide/transpose"
)

// Controller owns the selection state and applies transitions to it.
// It is not safe for concurrent use.
type Controller struct {
	catalog *fingering.Catalog
	state   State
}

// NewController starts on the default selection.
func NewController(c *fingering.Catalog) *Controller {
	ctrl, err := NewControllerWithState(c, DefaultState())
	if err != nil {
		panic(fmt.Sprintf("default selection: %v", err))
	}
	return ctrl
}

// NewControllerWithState starts on s after checking it against the catalog.
func NewControllerWithState(c *fingering.Catalog, s State) (*Controller, error) {
	note, ok := c.Note(s.SelectedNoteID)
	if !ok {
		return nil, fault.Wrap(fault.New("unknown note "+s.SelectedNoteID),
			fmsg.With("invalid initial selection"),
			ftag.With(ftag.NotFound))
	}

	var problem string
	switch {
	case !s.ActiveTab.Valid():
		problem = fmt.Sprintf("tab %d", int(s.ActiveTab))
	case s.SelectedVariant < 0 || s.SelectedVariant >= len(note.Variants):
		problem = fmt.Sprintf("variant %d of %s", s.SelectedVariant, note.ID)
	case !validInstrument(s.SourceInstrument):
		problem = fmt.Sprintf("source instrument %d", s.SourceInstrument)
	case !validInstrument(s.TargetInstrument):
		problem = fmt.Sprintf("target instrument %d", s.TargetInstrument)
	case s.SourcePitch < 0 || s.SourcePitch >= fingering.NumPitchClasses:
		problem = fmt.Sprintf("source pitch %d", s.SourcePitch)
	}
	if problem != "" {
		return nil, fault.Wrap(fault.New(problem+" out of range"),
			fmsg.With("invalid initial selection"),
			ftag.With(ftag.InvalidArgument))
	}

	return &Controller{catalog: c, state: s}, nil
}

func validInstrument(i int) bool {
	return i >= 0 && i < fingering.NumInstruments()
}

// Catalog returns the chart the controller selects from.
func (c *Controller) Catalog() *fingering.Catalog {
	return c.catalog
}

// State returns a copy of the current selection.
func (c *Controller) State() State {
	return c.state
}

// SelectNote switches to the note with the given id and resets the variant.
// An unknown id leaves the state unchanged.
func (c *Controller) SelectNote(id string) error {
	if _, ok := c.catalog.Note(id); !ok {
		return fault.Wrap(fault.New("unknown note "+id),
			fmsg.With(fmt.Sprintf("no note %q in the chart", id)),
			ftag.With(ftag.NotFound))
	}
	c.state.SelectedNoteID = id
	c.state.SelectedVariant = 0
	return nil
}

// SelectVariant picks a fingering of the current note. Panics when i is not
// one of its variants.
func (c *Controller) SelectVariant(i int) {
	if n := len(c.CurrentNote().Variants); i < 0 || i >= n {
		panic(fmt.Sprintf("selection: variant %d out of range [0,%d)", i, n))
	}
	c.state.SelectedVariant = i
}

// SetActiveTab switches view. Panics on an unknown tab.
func (c *Controller) SetActiveTab(t Tab) {
	if !t.Valid() {
		panic(fmt.Sprintf("selection: unknown tab %d", int(t)))
	}
	c.state.ActiveTab = t
}

// SetSourceInstrument picks the instrument the played pitch is read on.
func (c *Controller) SetSourceInstrument(i int) {
	if !validInstrument(i) {
		panic(fmt.Sprintf("selection: source instrument %d out of range", i))
	}
	c.state.SourceInstrument = i
}

// SetTargetInstrument picks the instrument to finger the result on.
func (c *Controller) SetTargetInstrument(i int) {
	if !validInstrument(i) {
		panic(fmt.Sprintf("selection: target instrument %d out of range", i))
	}
	c.state.TargetInstrument = i
}

// SetSourcePitch picks the played pitch class, 0 (C) to 11 (B).
func (c *Controller) SetSourcePitch(i int) {
	if i < 0 || i >= fingering.NumPitchClasses {
		panic(fmt.Sprintf("selection: pitch %d out of range", i))
	}
	c.state.SourcePitch = i
}

// Navigation. These wrap around and never fail.

// NextNote moves one note up the chart and resets the variant.
func (c *Controller) NextNote() { c.stepNote(1) }

// PrevNote moves one note down the chart and resets the variant.
func (c *Controller) PrevNote() { c.stepNote(-1) }

func (c *Controller) stepNote(delta int) {
	i := wrap(c.catalog.Index(c.state.SelectedNoteID)+delta, c.catalog.Len())
	c.state.SelectedNoteID = c.catalog.At(i).ID
	c.state.SelectedVariant = 0
}

// NextVariant cycles forward through the current note's fingerings.
func (c *Controller) NextVariant() { c.stepVariant(1) }

// PrevVariant cycles backward through the current note's fingerings.
func (c *Controller) PrevVariant() { c.stepVariant(-1) }

func (c *Controller) stepVariant(delta int) {
	c.state.SelectedVariant = wrap(c.state.SelectedVariant+delta, len(c.CurrentNote().Variants))
}

// CycleSourceInstrument steps the source instrument by delta.
func (c *Controller) CycleSourceInstrument(delta int) {
	c.state.SourceInstrument = wrap(c.state.SourceInstrument+delta, fingering.NumInstruments())
}

// CycleTargetInstrument steps the target instrument by delta.
func (c *Controller) CycleTargetInstrument(delta int) {
	c.state.TargetInstrument = wrap(c.state.TargetInstrument+delta, fingering.NumInstruments())
}

// ShiftSourcePitch moves the played pitch by delta semitones.
func (c *Controller) ShiftSourcePitch(delta int) {
	c.state.SourcePitch = fingering.Mod12(c.state.SourcePitch + delta)
}

// ToggleTab flips between the fingering and transpose tabs.
func (c *Controller) ToggleTab() {
	c.state.ActiveTab = (c.state.ActiveTab + 1) % numTabs
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Derived views

// CurrentNote returns the selected note.
func (c *Controller) CurrentNote() fingering.NoteDefinition {
	n, _ := c.catalog.Note(c.state.SelectedNoteID)
	return n
}

// CurrentVariant returns the selected fingering of the selected note.
func (c *Controller) CurrentVariant() fingering.NoteVariant {
	return c.CurrentNote().Variants[c.state.SelectedVariant]
}

// Description is the variant's description, or the note's when the
// variant has none.
func (c *Controller) Description() string {
	return c.CurrentNote().VariantDescription(c.state.SelectedVariant)
}

// SourceInstrument returns the instrument the played pitch is read on.
func (c *Controller) SourceInstrument() fingering.Instrument {
	inst, _ := fingering.InstrumentAt(c.state.SourceInstrument)
	return inst
}

// TargetInstrument returns the instrument the result is fingered on.
func (c *Controller) TargetInstrument() fingering.Instrument {
	inst, _ := fingering.InstrumentAt(c.state.TargetInstrument)
	return inst
}

// Transposition resolves the transpose tab. ok is false on the fingering tab.
func (c *Controller) Transposition() (transpose.Result, bool) {
	if c.state.ActiveTab != TabTranspose {
		return transpose.Result{}, false
	}
	return transpose.Resolve(c.catalog, c.SourceInstrument(), c.TargetInstrument(), c.state.SourcePitch), true
}

// ActiveKeys returns the keys to show pressed on the current tab. The set
// is the caller's own copy.
func (c *Controller) ActiveKeys() fingering.KeySet {
	if r, ok := c.Transposition(); ok {
		return r.Keys()
	}
	return c.CurrentVariant().Keys
}

// Diagram renders the active keys on the catalog layout.
func (c *Controller) Diagram() render.Diagram {
	return render.Draw(c.catalog.Layout(), c.ActiveKeys())
}
