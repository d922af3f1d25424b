package selection

import (
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"

	"saxguide/fingering"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(fingering.Default())
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestDefaults(t *testing.T) {
	c := newTestController(t)
	s := c.State()
	if s != DefaultState() {
		t.Fatalf("state = %+v", s)
	}
	if s.ActiveTab != TabFingering || s.SelectedNoteID != "high_d" || s.SelectedVariant != 0 {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.SourceInstrument != 0 || s.TargetInstrument != 2 || s.SourcePitch != 0 {
		t.Fatalf("unexpected transposition defaults %+v", s)
	}
	if c.CurrentNote().Scientific != "D5" {
		t.Fatalf("current note = %+v", c.CurrentNote())
	}
}

func TestSelectNoteResetsVariant(t *testing.T) {
	c := newTestController(t)
	if err := c.SelectNote("mid_bb"); err != nil {
		t.Fatal(err)
	}
	c.SelectVariant(2)
	if err := c.SelectNote("mid_c"); err != nil {
		t.Fatal(err)
	}
	if c.State().SelectedVariant != 0 {
		t.Fatalf("variant = %d after note change", c.State().SelectedVariant)
	}
}

func TestSelectUnknownNote(t *testing.T) {
	c := newTestController(t)
	before := c.State()
	err := c.SelectNote("low_a")
	if err == nil {
		t.Fatal("expected error")
	}
	if ftag.Get(err) != ftag.NotFound {
		t.Fatalf("kind = %v", ftag.Get(err))
	}
	if !strings.Contains(err.Error(), "low_a") {
		t.Fatalf("error should name the note: %q", err.Error())
	}
	if c.State() != before {
		t.Fatalf("state changed to %+v", c.State())
	}
}

func TestSettersPanicOutOfRange(t *testing.T) {
	c := newTestController(t)
	mustPanic(t, "SelectVariant(1) on high_d", func() { c.SelectVariant(1) })
	mustPanic(t, "SelectVariant(-1)", func() { c.SelectVariant(-1) })
	mustPanic(t, "SetActiveTab(5)", func() { c.SetActiveTab(Tab(5)) })
	mustPanic(t, "SetSourceInstrument(5)", func() { c.SetSourceInstrument(5) })
	mustPanic(t, "SetTargetInstrument(-1)", func() { c.SetTargetInstrument(-1) })
	mustPanic(t, "SetSourcePitch(12)", func() { c.SetSourcePitch(12) })
	if c.State() != DefaultState() {
		t.Fatalf("panicking setters changed state: %+v", c.State())
	}
}

func TestDescriptionFallsBackToNote(t *testing.T) {
	c := newTestController(t)
	note := c.CurrentNote()
	if c.Description() != note.Description {
		t.Fatalf("description = %q", c.Description())
	}
	for _, n := range c.Catalog().Notes() {
		for i, v := range n.Variants {
			if v.Description == "" {
				continue
			}
			if err := c.SelectNote(n.ID); err != nil {
				t.Fatal(err)
			}
			c.SelectVariant(i)
			if c.Description() != v.Description {
				t.Fatalf("%s/%d description = %q, want %q", n.ID, i, c.Description(), v.Description)
			}
			return
		}
	}
	t.Fatal("no variant carries its own description")
}

func TestTranspositionOnlyOnTransposeTab(t *testing.T) {
	c := newTestController(t)
	if _, ok := c.Transposition(); ok {
		t.Fatal("transposition resolved on fingering tab")
	}
	c.SetActiveTab(TabTranspose)
	r, ok := c.Transposition()
	if !ok {
		t.Fatal("no transposition on transpose tab")
	}
	if r.Sounding.Index != 2 || r.Note.ID != "high_d" {
		t.Fatalf("piano C on tenor = %+v", r)
	}

	c.SetTargetInstrument(1)
	r, _ = c.Transposition()
	if r.Sounding.Index != 9 || r.Note.ID != "mid_a" {
		t.Fatalf("piano C on alto = %d %s", r.Sounding.Index, r.Note.ID)
	}
}

func TestActiveKeysFollowTab(t *testing.T) {
	c := newTestController(t)
	if err := c.SelectNote("mid_bb"); err != nil {
		t.Fatal(err)
	}
	c.SelectVariant(1)
	want := c.CurrentVariant().Keys
	if got := c.ActiveKeys(); got.String() != want.String() {
		t.Fatalf("fingering tab keys = %s, want %s", got, want)
	}

	c.SetActiveTab(TabTranspose)
	c.SetSourcePitch(7)
	c.SetTargetInstrument(0)
	ref, _ := c.Catalog().Note("low_g")
	if got := c.ActiveKeys(); got.String() != ref.Variants[0].Keys.String() {
		t.Fatalf("transpose tab keys = %s, want %s", got, ref.Variants[0].Keys)
	}

	d := c.Diagram()
	if d.Engaged() != ref.Variants[0].Keys.Len() {
		t.Fatalf("diagram engaged %d keys", d.Engaged())
	}
}

func TestNavigationWraps(t *testing.T) {
	c := newTestController(t)
	cat := c.Catalog()

	if err := c.SelectNote(cat.At(cat.Len() - 1).ID); err != nil {
		t.Fatal(err)
	}
	c.NextNote()
	if c.State().SelectedNoteID != cat.At(0).ID {
		t.Fatalf("next from last = %s", c.State().SelectedNoteID)
	}
	c.PrevNote()
	if c.State().SelectedNoteID != cat.At(cat.Len()-1).ID {
		t.Fatalf("prev from first = %s", c.State().SelectedNoteID)
	}

	if err := c.SelectNote("mid_bb"); err != nil {
		t.Fatal(err)
	}
	c.PrevVariant()
	if c.State().SelectedVariant != 2 {
		t.Fatalf("prev variant from 0 = %d", c.State().SelectedVariant)
	}
	c.NextVariant()
	if c.State().SelectedVariant != 0 {
		t.Fatalf("next variant from last = %d", c.State().SelectedVariant)
	}
	c.NextVariant()
	c.NextNote()
	if c.State().SelectedVariant != 0 {
		t.Fatal("NextNote kept the variant")
	}

	c.CycleSourceInstrument(-1)
	if c.State().SourceInstrument != fingering.NumInstruments()-1 {
		t.Fatalf("source = %d", c.State().SourceInstrument)
	}
	c.CycleTargetInstrument(4)
	if c.State().TargetInstrument != 1 {
		t.Fatalf("target = %d", c.State().TargetInstrument)
	}
	c.ShiftSourcePitch(-1)
	if c.State().SourcePitch != 11 {
		t.Fatalf("pitch = %d", c.State().SourcePitch)
	}
	c.ShiftSourcePitch(13)
	if c.State().SourcePitch != 0 {
		t.Fatalf("pitch = %d", c.State().SourcePitch)
	}

	c.ToggleTab()
	if c.State().ActiveTab != TabTranspose {
		t.Fatal("toggle did not reach transpose tab")
	}
	c.ToggleTab()
	if c.State().ActiveTab != TabFingering {
		t.Fatal("toggle did not return to fingering tab")
	}
}

func TestNewControllerWithState(t *testing.T) {
	cat := fingering.Default()

	s := DefaultState()
	s.SelectedNoteID = "palm_f"
	s.SelectedVariant = 1
	s.TargetInstrument = 4
	c, err := NewControllerWithState(cat, s)
	if err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}
	if c.State() != s {
		t.Fatalf("state = %+v", c.State())
	}

	s = DefaultState()
	s.SelectedNoteID = "nope"
	_, err = NewControllerWithState(cat, s)
	if ftag.Get(err) != ftag.NotFound {
		t.Fatalf("unknown note: %v", err)
	}
	if !strings.Contains(err.Error(), "unknown note nope") {
		t.Fatalf("unknown note message: %q", err.Error())
	}

	bad := []struct {
		mutate func(*State)
		msg    string
	}{
		{func(s *State) { s.SelectedVariant = 3 }, "variant 3 of high_d out of range"},
		{func(s *State) { s.SourceInstrument = 9 }, "source instrument 9 out of range"},
		{func(s *State) { s.TargetInstrument = -1 }, "target instrument -1 out of range"},
		{func(s *State) { s.SourcePitch = 12 }, "source pitch 12 out of range"},
		{func(s *State) { s.ActiveTab = Tab(2) }, "tab 2 out of range"},
	}
	for i, tc := range bad {
		s := DefaultState()
		tc.mutate(&s)
		_, err := NewControllerWithState(cat, s)
		if ftag.Get(err) != ftag.InvalidArgument {
			t.Errorf("case %d: err = %v", i, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("case %d: error %q does not contain %q", i, err.Error(), tc.msg)
		}
	}
}

func TestTabString(t *testing.T) {
	if TabFingering.String() != "fingering" || TabTranspose.String() != "transpose" {
		t.Fatal("tab names")
	}
	if Tab(7).String() != "Tab(7)" {
		t.Fatalf("unknown tab = %s", Tab(7))
	}
}

func TestActiveKeysAreACopy(t *testing.T) {
	c := newTestController(t)
	keys := c.ActiveKeys()
	want := keys.String()
	delete(keys, fingering.Octave)
	keys[fingering.PalmF] = struct{}{}
	if got := c.ActiveKeys().String(); got != want {
		t.Fatalf("fingering keys = %s after editing a copy, want %s", got, want)
	}

	c.SetActiveTab(TabTranspose)
	keys = c.ActiveKeys()
	want = keys.String()
	delete(keys, fingering.Octave)
	if got := c.ActiveKeys().String(); got != want {
		t.Fatalf("transpose keys = %s after editing a copy, want %s", got, want)
	}
	if n, _ := c.Catalog().Note("high_d"); !n.Variants[0].Keys.Contains(fingering.Octave) {
		t.Fatal("catalog lost the octave key of high_d")
	}
}
