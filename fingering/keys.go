package fingering

import (
	"fmt"
	"sort"
	"strings"
)

// KeyID identifies one physical key or mechanism on the saxophone.
type KeyID int

// Main stack, palm keys, pinky tables and side keys.
// Order matches the schematic table below; NumKeys must stay last.
const (
	Octave KeyID = iota
	FrontF
	L1
	Bis
	L2
	L3
	PalmF
	PalmEb
	PalmD
	LPinkyGsharp
	LPinkyLowCsharp
	LPinkyLowB
	LPinkyLowBb
	R1
	R2
	R3
	SideHighE
	SideC
	SideBb
	SideFsharp
	HighFsharp
	RPinkyEb
	RPinkyLowC

	NumKeys
)

// KeyCoordinate places a key on the 400x520 schematic diagram.
type KeyCoordinate struct {
	ID     KeyID
	Name   string // stable identifier used in data files
	X, Y   float64
	Radius float64
	Label  string
}

// Layout is an ordered set of key placements.
type Layout []KeyCoordinate

// schematic is the single definition of the key set. Indexed by KeyID so
// a constant without a placement is a zero entry and fails checkSchematic.
var schematic = [NumKeys]KeyCoordinate{
	// left hand, top
	Octave: {Name: "octave", X: 280, Y: 80, Radius: 12, Label: "Oct"},
	FrontF: {Name: "frontF", X: 240, Y: 90, Radius: 14, Label: "X"},

	L1:  {Name: "l1", X: 240, Y: 130, Radius: 20, Label: "1"},
	Bis: {Name: "bis", X: 240, Y: 155, Radius: 10, Label: "P"},
	L2:  {Name: "l2", X: 240, Y: 190, Radius: 20, Label: "2"},
	L3:  {Name: "l3", X: 240, Y: 230, Radius: 20, Label: "3"},

	PalmF:  {Name: "palmF", X: 150, Y: 90, Radius: 16, Label: "C4"},
	PalmEb: {Name: "palmEb", X: 140, Y: 130, Radius: 16, Label: "C2"},
	PalmD:  {Name: "palmD", X: 150, Y: 170, Radius: 16, Label: "C1"},

	LPinkyGsharp:    {Name: "lPinkyGsharp", X: 290, Y: 190, Radius: 18, Label: "G#"},
	LPinkyLowCsharp: {Name: "lPinkyLowCsharp", X: 300, Y: 220, Radius: 18, Label: "C#"},
	LPinkyLowB:      {Name: "lPinkyLowB", X: 290, Y: 250, Radius: 18, Label: "B"},
	LPinkyLowBb:     {Name: "lPinkyLowBb", X: 280, Y: 280, Radius: 18, Label: "Bb"},

	// right hand, bottom
	R1: {Name: "r1", X: 240, Y: 330, Radius: 20, Label: "4"},
	R2: {Name: "r2", X: 240, Y: 370, Radius: 20, Label: "5"},
	R3: {Name: "r3", X: 240, Y: 410, Radius: 20, Label: "6"},

	SideHighE: {Name: "sideHighE", X: 130, Y: 330, Radius: 16, Label: "C3"},
	SideC:     {Name: "sideC", X: 130, Y: 370, Radius: 16, Label: "TC"},
	SideBb:    {Name: "sideBb", X: 130, Y: 410, Radius: 16, Label: "TA"},

	SideFsharp: {Name: "sideFsharp", X: 185, Y: 350, Radius: 14, Label: "TF"},
	HighFsharp: {Name: "highFsharp", X: 185, Y: 390, Radius: 14, Label: "C5"},

	RPinkyEb:   {Name: "rPinkyEb", X: 220, Y: 460, Radius: 18, Label: "Eb"},
	RPinkyLowC: {Name: "rPinkyLowC", X: 260, Y: 460, Radius: 18, Label: "7"},
}

var keysByName map[string]KeyID

func init() {
	if err := checkSchematic(); err != nil {
		panic(err)
	}
	keysByName = make(map[string]KeyID, NumKeys)
	for i := range schematic {
		keysByName[schematic[i].Name] = KeyID(i)
	}
}

func checkSchematic() error {
	seen := make(map[string]bool, NumKeys)
	for i := range schematic {
		schematic[i].ID = KeyID(i)
		c := schematic[i]
		if c.Name == "" || c.Label == "" || c.Radius <= 0 {
			return fmt.Errorf("key %d has no schematic placement", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("key name %q declared twice", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// String returns the data-file name of the key.
func (k KeyID) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KeyID(%d)", int(k))
	}
	return schematic[k].Name
}

// Valid reports whether k is one of the declared keys.
func (k KeyID) Valid() bool {
	return k >= 0 && k < NumKeys
}

// ParseKeyID resolves a data-file key name.
func ParseKeyID(name string) (KeyID, bool) {
	id, ok := keysByName[strings.TrimSpace(name)]
	return id, ok
}

// AllKeys returns every declared key in schematic order.
func AllKeys() []KeyID {
	out := make([]KeyID, NumKeys)
	for i := range out {
		out[i] = KeyID(i)
	}
	return out
}

// DefaultLayout returns a copy of the full schematic.
func DefaultLayout() Layout {
	out := make(Layout, NumKeys)
	copy(out, schematic[:])
	return out
}

// Coordinate returns the schematic placement of k.
func Coordinate(k KeyID) (KeyCoordinate, bool) {
	if !k.Valid() {
		return KeyCoordinate{}, false
	}
	return schematic[k], true
}

// Has reports whether the layout places k.
func (l Layout) Has(k KeyID) bool {
	for _, c := range l {
		if c.ID == k {
			return true
		}
	}
	return false
}

// KeySet is an unordered set of engaged keys.
type KeySet map[KeyID]struct{}

// NewKeySet builds a set from a list of keys.
func NewKeySet(keys ...KeyID) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether k is engaged.
func (s KeySet) Contains(k KeyID) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of engaged keys.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in schematic order.
func (s KeySet) Sorted() []KeyID {
	out := make([]KeyID, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s KeySet) String() string {
	names := make([]string, 0, len(s))
	for _, k := range s.Sorted() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
