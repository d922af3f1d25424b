package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Southclaws/fault/ftag"

	"saxguide/config"
	"saxguide/fingering"
	"saxguide/i18n"
	"saxguide/midi"
	"saxguide/render"
	"saxguide/theme"
	"saxguide/transpose"
	"saxguide/widgets"
)

// Diagram size for printed charts
const (
	chartCols = 28
	chartRows = 20
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		if kind := ftag.Get(err); kind != "" {
			fmt.Printf("Kind: %s\n", kind)
		}
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) < 1 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "notes":
		return listNotes(w)
	case "show":
		return showNote(w, args[1:])
	case "transpose":
		return transposeNote(w, args[1:])
	case "check":
		return checkCatalog(w, args[1:])
	default:
		usage(w)
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "SaxGuide chart tool")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, widgets.RenderKeyHelp([]widgets.KeySection{{
		Title: "Commands:",
		Keys: []widgets.KeyBinding{
			{Key: "notes", Desc: "List every note by register"},
			{Key: "show", Desc: "show <note-id> [fingering]  Print one fingering (1-based)"},
			{Key: "transpose", Desc: "transpose <src> <dst> <pitch>  Finger a note for another instrument"},
			{Key: "check", Desc: "check [file.yaml]  Validate the built-in or a custom chart"},
		},
	}, {
		Title: "Instruments:",
		Keys:  instrumentBindings(),
	}}))
}

func instrumentBindings() []widgets.KeyBinding {
	var out []widgets.KeyBinding
	for i, inst := range fingering.Instruments() {
		out = append(out, widgets.KeyBinding{Key: strconv.Itoa(i), Desc: inst.Name})
	}
	return out
}

func localizer() (*i18n.Localizer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return bundle.Localizer(cfg.Locale)
}

func listNotes(w io.Writer) error {
	cat, err := fingering.LoadEmbedded()
	if err != nil {
		return err
	}
	loc, err := localizer()
	if err != nil {
		return err
	}

	for _, reg := range fingering.Registers() {
		fmt.Fprintf(w, "=== %s ===\n", loc.RegisterName(reg))
		for _, n := range cat.ByRegister(reg) {
			fmt.Fprintf(w, "  %-14s %-5s %-18s %d\n", n.ID, n.Pitch.Pretty(), n.Name, len(n.Variants))
		}
	}
	return nil
}

func showNote(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("show: note id required")
	}
	cat, err := fingering.LoadEmbedded()
	if err != nil {
		return err
	}
	note, ok := cat.Note(args[0])
	if !ok {
		return fmt.Errorf("show: unknown note %q", args[0])
	}

	variant := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > len(note.Variants) {
			return fmt.Errorf("show: fingering must be 1-%d", len(note.Variants))
		}
		variant = n - 1
	}

	v := note.Variants[variant]
	fmt.Fprintf(w, "%s (%s)  %d/%d %s\n", note.Name, note.Pitch.Pretty(), variant+1, len(note.Variants), v.Label)
	fmt.Fprintln(w, note.VariantDescription(variant))
	fmt.Fprintln(w, "")
	printDiagram(w, render.Draw(cat.Layout(), v.Keys))
	return nil
}

func transposeNote(w io.Writer, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("transpose: usage transpose <src> <dst> <pitch>")
	}
	srcIdx, src, err := parseInstrument(args[0])
	if err != nil {
		return err
	}
	dstIdx, dst, err := parseInstrument(args[1])
	if err != nil {
		return err
	}
	pc, err := parsePitchClass(args[2])
	if err != nil {
		return err
	}

	cat, err := fingering.LoadEmbedded()
	if err != nil {
		return err
	}
	loc, err := localizer()
	if err != nil {
		return err
	}

	r := transpose.Resolve(cat, src, dst, pc)
	fmt.Fprintln(w, loc.T("transpose.summary",
		loc.PitchName(r.Played.Index), loc.InstrumentName(srcIdx),
		loc.PitchName(r.Sounding.Index), loc.InstrumentName(dstIdx)))
	fmt.Fprintln(w, loc.T("label.reference", r.Note.Name+" ("+r.Note.Scientific+")"))
	fmt.Fprintln(w, "")
	printDiagram(w, render.Draw(cat.Layout(), r.Keys()))
	return nil
}

func parseInstrument(s string) (int, fingering.Instrument, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fingering.Instrument{}, fmt.Errorf("instrument %q: want an index", s)
	}
	inst, ok := fingering.InstrumentAt(i)
	if !ok {
		return 0, fingering.Instrument{}, fmt.Errorf("instrument %d out of range [0,%d)", i, fingering.NumInstruments())
	}
	return i, inst, nil
}

// parsePitchClass accepts 0-11 or a letter name such as "C#" or "Eb".
func parsePitchClass(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= fingering.NumPitchClasses {
			return 0, fmt.Errorf("pitch %d out of range [0,12)", n)
		}
		return n, nil
	}
	p, err := midi.ParseScientific(s + "4")
	if err != nil {
		return 0, fmt.Errorf("pitch %q: %w", s, err)
	}
	return p.Class(), nil
}

func checkCatalog(w io.Writer, args []string) error {
	var (
		cat *fingering.Catalog
		err error
	)
	if len(args) > 0 {
		data, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return rerr
		}
		cat, err = fingering.LoadCatalog(data)
	} else {
		cat, err = fingering.LoadEmbedded()
	}
	if err != nil {
		return err
	}

	variants := 0
	for _, n := range cat.Notes() {
		variants += len(n.Variants)
	}
	fmt.Fprintf(w, "ok: %d notes, %d fingerings, %d keys\n", cat.Len(), variants, len(cat.Layout()))
	return nil
}

func printDiagram(w io.Writer, d render.Diagram) {
	th := theme.Default()
	fmt.Fprintln(w, widgets.RenderKeyDiagram(d, th, chartCols, chartRows))

	var labels []string
	for _, k := range d.Keys {
		if k.Engaged {
			labels = append(labels, k.Label)
		}
	}
	if len(labels) == 0 {
		fmt.Fprintln(w, "(open)")
		return
	}
	fmt.Fprintln(w, strings.Join(labels, " "))
}
