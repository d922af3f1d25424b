package fingering

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gopkg.in/yaml.v3"

	"saxguide/midi"
)

// KindIncomplete tags catalog data errors: a missing key placement, a
// missing reference note, a malformed entry.
const KindIncomplete ftag.Kind = "catalog_incomplete"

// Register groups notes by the part of the range they live in.
type Register int

const (
	RegisterLow Register = iota
	RegisterMiddle
	RegisterHigh
	RegisterAltissimo
)

var registerNames = []string{"low", "middle", "high", "altissimo"}

// Registers returns the registers from low to altissimo.
func Registers() []Register {
	return []Register{RegisterLow, RegisterMiddle, RegisterHigh, RegisterAltissimo}
}

func (r Register) String() string {
	if r < 0 || int(r) >= len(registerNames) {
		return fmt.Sprintf("Register(%d)", int(r))
	}
	return registerNames[r]
}

// ParseRegister resolves a data-file register name.
func ParseRegister(s string) (Register, bool) {
	for i, name := range registerNames {
		if name == strings.TrimSpace(s) {
			return Register(i), true
		}
	}
	return 0, false
}

// NoteVariant is one alternative fingering.
type NoteVariant struct {
	Label       string
	Keys        KeySet
	Description string // empty means use the note's description
}

// NoteDefinition is one playable written pitch and its fingerings.
type NoteDefinition struct {
	ID          string
	Name        string
	Scientific  string
	Pitch       midi.Pitch
	Register    Register
	Variants    []NoteVariant
	Description string
}

// PitchClass returns the chromatic pitch class of the written note.
func (n NoteDefinition) PitchClass() PitchClass {
	return PitchClassAt(n.Pitch.Class())
}

// VariantDescription returns the description shown for variant i.
func (n NoteDefinition) VariantDescription(i int) string {
	if i >= 0 && i < len(n.Variants) && n.Variants[i].Description != "" {
		return n.Variants[i].Description
	}
	return n.Description
}

// clone copies the variants and their key sets so callers cannot reach the
// catalog's own storage.
func (n NoteDefinition) clone() NoteDefinition {
	if n.Variants != nil {
		vs := make([]NoteVariant, len(n.Variants))
		for i, v := range n.Variants {
			v.Keys = v.Keys.Clone()
			vs[i] = v
		}
		n.Variants = vs
	}
	return n
}

// Catalog is the immutable note chart. Every accessor returns copies.
type Catalog struct {
	notes  []NoteDefinition
	byID   map[string]int
	layout Layout
}

type catalogFile struct {
	Registers []struct {
		Register string     `yaml:"register"`
		Notes    []noteFile `yaml:"notes"`
	} `yaml:"registers"`
}

type noteFile struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Scientific  string        `yaml:"scientific"`
	Description string        `yaml:"description"`
	Variants    []variantFile `yaml:"variants"`
}

type variantFile struct {
	Label       string   `yaml:"label"`
	Keys        []string `yaml:"keys"`
	Description string   `yaml:"description"`
}

//go:embed data/notes.yaml
var embeddedNotes []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded chart, loaded on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustLoadCatalog(embeddedNotes)
	})
	return defaultCatalog
}

// LoadEmbedded parses the chart compiled into the binary without panicking.
func LoadEmbedded() (*Catalog, error) {
	return LoadCatalog(embeddedNotes)
}

// LoadCatalog parses a YAML chart against the default layout.
func LoadCatalog(data []byte) (*Catalog, error) {
	return LoadCatalogWithLayout(data, DefaultLayout())
}

// LoadCatalogWithLayout parses a YAML chart and validates it against layout.
func LoadCatalogWithLayout(data []byte, layout Layout) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fault.Wrap(err, fmsg.With("parse note catalog"), ftag.With(KindIncomplete))
	}

	c := &Catalog{byID: map[string]int{}, layout: layout}
	for _, group := range file.Registers {
		reg, ok := ParseRegister(group.Register)
		if !ok {
			return nil, incomplete("unknown register %q", group.Register)
		}
		for _, nf := range group.Notes {
			note, err := nf.build(reg)
			if err != nil {
				return nil, err
			}
			if _, dup := c.byID[note.ID]; dup {
				return nil, incomplete("note %q declared twice", note.ID)
			}
			c.byID[note.ID] = len(c.notes)
			c.notes = append(c.notes, note)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoadCatalog panics when the chart is malformed.
func MustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("failed to load note catalog: %v", err))
	}
	return c
}

func (nf noteFile) build(reg Register) (NoteDefinition, error) {
	id := strings.TrimSpace(nf.ID)
	if id == "" {
		return NoteDefinition{}, incomplete("note without id (%q)", nf.Name)
	}
	pitch, err := midi.ParseScientific(nf.Scientific)
	if err != nil {
		return NoteDefinition{}, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("note %s", id)),
			ftag.With(KindIncomplete))
	}

	n := NoteDefinition{
		ID:          id,
		Name:        nf.Name,
		Scientific:  nf.Scientific,
		Pitch:       pitch,
		Register:    reg,
		Description: nf.Description,
	}
	for _, vf := range nf.Variants {
		v := NoteVariant{
			Label:       vf.Label,
			Keys:        make(KeySet, len(vf.Keys)),
			Description: vf.Description,
		}
		for _, name := range vf.Keys {
			k, ok := ParseKeyID(name)
			if !ok {
				return NoteDefinition{}, incomplete("note %s variant %q: unknown key %q", id, vf.Label, name)
			}
			v.Keys[k] = struct{}{}
		}
		n.Variants = append(n.Variants, v)
	}
	return n, nil
}

// Validate checks the data-completeness invariants of the chart.
func (c *Catalog) Validate() error {
	if len(c.notes) == 0 {
		return incomplete("catalog has no notes")
	}

	for i, n := range c.notes {
		if len(n.Variants) == 0 {
			return incomplete("note %s has no fingering variants", n.ID)
		}
		for _, v := range n.Variants {
			for k := range v.Keys {
				if !c.layout.Has(k) {
					return incomplete("note %s variant %q uses key %s missing from the layout", n.ID, v.Label, k)
				}
			}
		}
		if i > 0 && n.Pitch <= c.notes[i-1].Pitch {
			return incomplete("note %s (%s) is not above %s (%s)", n.ID, n.Scientific, c.notes[i-1].ID, c.notes[i-1].Scientific)
		}
		if i > 0 && n.Register < c.notes[i-1].Register {
			return incomplete("note %s is in register %s after %s", n.ID, n.Register, c.notes[i-1].Register)
		}
	}

	for pc, id := range referenceNotes {
		idx, ok := c.byID[id]
		if !ok {
			return incomplete("pitch class %d maps to unknown note %q", pc, id)
		}
		if got := c.notes[idx].Pitch.Class(); got != pc {
			return incomplete("pitch class %d maps to %s which has pitch class %d", pc, id, got)
		}
	}
	return nil
}

// Notes returns the chart ordered from lowest to highest.
func (c *Catalog) Notes() []NoteDefinition {
	out := make([]NoteDefinition, len(c.notes))
	for i, n := range c.notes {
		out[i] = n.clone()
	}
	return out
}

// Len returns the number of notes.
func (c *Catalog) Len() int {
	return len(c.notes)
}

// At returns the note at position i in chart order.
func (c *Catalog) At(i int) NoteDefinition {
	return c.notes[i].clone()
}

// Note looks a note up by id.
func (c *Catalog) Note(id string) (NoteDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return NoteDefinition{}, false
	}
	return c.notes[i].clone(), true
}

// Index returns the chart position of id, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// ByRegister returns the notes of one register in chart order.
func (c *Catalog) ByRegister(r Register) []NoteDefinition {
	var out []NoteDefinition
	for _, n := range c.notes {
		if n.Register == r {
			out = append(out, n.clone())
		}
	}
	return out
}

// Layout returns the key layout the chart was validated against.
func (c *Catalog) Layout() Layout {
	out := make(Layout, len(c.layout))
	copy(out, c.layout)
	return out
}

func incomplete(format string, args ...any) error {
	return fault.Wrap(fault.New(fmt.Sprintf(format, args...)), ftag.With(KindIncomplete))
}
