package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"saxguide/config"
	"saxguide/debug"
	"saxguide/fingering"
	"saxguide/i18n"
	"saxguide/selection"
	"saxguide/theme"
	"saxguide/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Debug {
		path, err := config.LogPath()
		if err != nil {
			return err
		}
		if err := debug.Enable(path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer debug.Disable()
	}

	// Load theme
	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		if palette, err = theme.LoadGPL(cfg.Palette); err != nil {
			return err
		}
	}
	th := theme.New(palette)

	// Note chart and initial selection
	catalog, err := fingering.LoadEmbedded()
	if err != nil {
		return err
	}
	state := selection.DefaultState()
	state.SelectedNoteID = cfg.Note
	state.SourceInstrument = cfg.Source
	state.TargetInstrument = cfg.Target
	ctrl, err := selection.NewControllerWithState(catalog, state)
	if err != nil {
		return err
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}
	loc, err := bundle.Localizer(cfg.Locale)
	if err != nil {
		return err
	}

	debug.Log("start", "locale=%s palette=%s notes=%d note=%s src=%d dst=%d",
		loc.Locale(), palette.Name, catalog.Len(), cfg.Note, cfg.Source, cfg.Target)

	// Create and run TUI
	m := tui.NewModel(ctrl, th, loc)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
