// Package selection holds the user's current choices and derives what the
// front end shows from them.
package selection

import "fmt"

// Tab is the active view.
type Tab int

const (
	TabFingering Tab = iota
	TabTranspose

	numTabs
)

func (t Tab) String() string {
	switch t {
	case TabFingering:
		return "fingering"
	case TabTranspose:
		return "transpose"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t >= 0 && t < numTabs
}

// Default selection
const (
	DefaultNoteID           = "high_d"
	DefaultSourceInstrument = 0 // Piano / Flûte / Ut
	DefaultTargetInstrument = 2 // Saxophone Ténor / Soprano
	DefaultSourcePitch      = 0 // Do
)

// State is the single source of truth for the selection. Everything else
// shown on screen is derived from it.
type State struct {
	ActiveTab        Tab    `json:"activeTab"`
	SelectedNoteID   string `json:"selectedNoteId"`
	SelectedVariant  int    `json:"selectedVariant"`
	SourceInstrument int    `json:"sourceInstrument"`
	TargetInstrument int    `json:"targetInstrument"`
	SourcePitch      int    `json:"sourcePitch"`
}

// DefaultState returns the start-up selection.
func DefaultState() State {
	return State{
		ActiveTab:        TabFingering,
		SelectedNoteID:   DefaultNoteID,
		SourceInstrument: DefaultSourceInstrument,
		TargetInstrument: DefaultTargetInstrument,
		SourcePitch:      DefaultSourcePitch,
	}
}
