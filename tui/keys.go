package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saxguide/i18n"
)

func Key(help string, keyboardKey ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keyboardKey...), key.WithHelp(keyboardKey[0], help))
}

func Is(msg tea.KeyMsg, k ...key.Binding) bool {
	return key.Matches(msg, k...)
}

type keyMap struct {
	Tab         key.Binding
	NextNote    key.Binding
	PrevNote    key.Binding
	PrevVariant key.Binding
	NextVariant key.Binding
	NextSource  key.Binding
	PrevSource  key.Binding
	NextTarget  key.Binding
	PrevTarget  key.Binding
	PitchDown   key.Binding
	PitchUp     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap(loc *i18n.Localizer) keyMap {
	return keyMap{
		Tab:         Key(loc.T("help.tab"), "tab"),
		NextNote:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", loc.T("help.note"))),
		PrevNote:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", loc.T("help.note"))),
		PrevVariant: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", loc.T("help.variant"))),
		NextVariant: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", loc.T("help.variant"))),
		NextSource:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", loc.T("help.source"))),
		PrevSource:  Key(loc.T("help.source"), "S"),
		NextTarget:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", loc.T("help.target"))),
		PrevTarget:  Key(loc.T("help.target"), "T"),
		PitchDown:   key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", loc.T("help.pitch"))),
		PitchUp:     Key(loc.T("help.pitch"), "]"),
		Help:        Key(loc.T("help.more"), "?"),
		Quit:        Key(loc.T("help.quit"), "q", "ctrl+c"),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.NextNote, k.PrevVariant, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.NextNote, k.PrevVariant},
		{k.NextSource, k.NextTarget, k.PitchDown},
		{k.Help, k.Quit},
	}
}
