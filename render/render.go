// Package render turns a set of engaged keys into a description of the
// fingering diagram. It draws nothing itself; widgets paints the result.
package render

import (
	"gonum.org/v1/gonum/floats"

	"saxguide/fingering"
)

// KeyState is one key on the diagram.
type KeyState struct {
	fingering.KeyCoordinate
	Engaged bool
}

// Diagram is the visual state of every key in a layout.
type Diagram struct {
	Keys  []KeyState
	index map[fingering.KeyID]int
}

// Draw marks every layout key engaged or open. Active keys the layout does
// not place are ignored.
func Draw(layout fingering.Layout, active fingering.KeySet) Diagram {
	d := Diagram{
		Keys:  make([]KeyState, 0, len(layout)),
		index: make(map[fingering.KeyID]int, len(layout)),
	}
	for _, c := range layout {
		if _, dup := d.index[c.ID]; dup {
			continue
		}
		d.index[c.ID] = len(d.Keys)
		d.Keys = append(d.Keys, KeyState{KeyCoordinate: c, Engaged: active.Contains(c.ID)})
	}
	return d
}

// Lookup returns the state of one key.
func (d Diagram) Lookup(id fingering.KeyID) (KeyState, bool) {
	i, ok := d.index[id]
	if !ok {
		return KeyState{}, false
	}
	return d.Keys[i], true
}

// ByID returns the diagram keyed by key identifier.
func (d Diagram) ByID() map[fingering.KeyID]KeyState {
	out := make(map[fingering.KeyID]KeyState, len(d.Keys))
	for _, k := range d.Keys {
		out[k.ID] = k
	}
	return out
}

// Engaged counts the engaged keys.
func (d Diagram) Engaged() int {
	n := 0
	for _, k := range d.Keys {
		if k.Engaged {
			n++
		}
	}
	return n
}

// Empty reports whether the diagram has no keys at all.
func (d Diagram) Empty() bool {
	return len(d.Keys) == 0
}

// Rect is an axis-aligned box in schematic units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the box enclosing every key circle. Zero for an empty diagram.
func (d Diagram) Bounds() Rect {
	if d.Empty() {
		return Rect{}
	}
	left := make([]float64, len(d.Keys))
	right := make([]float64, len(d.Keys))
	top := make([]float64, len(d.Keys))
	bottom := make([]float64, len(d.Keys))
	for i, k := range d.Keys {
		left[i] = k.X - k.Radius
		right[i] = k.X + k.Radius
		top[i] = k.Y - k.Radius
		bottom[i] = k.Y + k.Radius
	}
	return Rect{
		MinX: floats.Min(left),
		MinY: floats.Min(top),
		MaxX: floats.Max(right),
		MaxY: floats.Max(bottom),
	}
}
