package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"saxguide/debug"
	"saxguide/fingering"
	"saxguide/i18n"
	"saxguide/selection"
	"saxguide/theme"
	"saxguide/widgets"
)

// Diagram size in terminal cells
const (
	diagramCols = 28
	diagramRows = 20
)

type Model struct {
	Controller *selection.Controller
	Theme      *theme.Theme
	loc        *i18n.Localizer
	keys       keyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
}

func NewModel(ctrl *selection.Controller, th *theme.Theme, loc *i18n.Localizer) Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(th.Accent())
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(th.Muted())
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	return Model{
		Controller: ctrl,
		Theme:      th,
		loc:        loc,
		keys:       newKeyMap(loc),
		help:       h,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c := m.Controller
		switch {
		case Is(msg, m.keys.Quit):
			m.quitting = true
			debug.Log("key", "quit")
			return m, tea.Quit
		case Is(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case Is(msg, m.keys.Tab):
			c.ToggleTab()
		case Is(msg, m.keys.NextNote):
			c.NextNote()
		case Is(msg, m.keys.PrevNote):
			c.PrevNote()
		case Is(msg, m.keys.NextVariant):
			c.NextVariant()
		case Is(msg, m.keys.PrevVariant):
			c.PrevVariant()
		case Is(msg, m.keys.NextSource):
			c.CycleSourceInstrument(1)
		case Is(msg, m.keys.PrevSource):
			c.CycleSourceInstrument(-1)
		case Is(msg, m.keys.NextTarget):
			c.CycleTargetInstrument(1)
		case Is(msg, m.keys.PrevTarget):
			c.CycleTargetInstrument(-1)
		case Is(msg, m.keys.PitchUp):
			c.ShiftSourcePitch(1)
		case Is(msg, m.keys.PitchDown):
			c.ShiftSourcePitch(-1)
		default:
			return m, nil
		}
		s := c.State()
		debug.Log("key", "%s -> tab=%s note=%s variant=%d src=%d dst=%d pitch=%d keys=%s",
			msg.String(), s.ActiveTab, s.SelectedNoteID, s.SelectedVariant,
			s.SourceInstrument, s.TargetInstrument, s.SourcePitch, c.ActiveKeys())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		debug.LogEvery(10, "resize", "%dx%d", msg.Width, msg.Height)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	header := headerStyle.Render(m.loc.T("app.title")) + "  " + dimStyle.Render(m.loc.T("app.subtitle"))

	var body string
	if m.Controller.State().ActiveTab == selection.TabTranspose {
		body = m.transposeView()
	} else {
		body = m.fingeringView()
	}

	diagram := m.Controller.Diagram()
	chart := widgets.RenderKeyDiagram(diagram, m.Theme, diagramCols, diagramRows)
	sep := dimStyle.Render(string(m.Theme.Symbols.Separator))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, chart, "  "+sep+"  ", body)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(m.tabsView())
	out.WriteString("\n\n")
	out.WriteString(columns)
	out.WriteString("\n\n")
	out.WriteString(m.help.View(m.keys))

	return out.String()
}

func (m Model) tabsView() string {
	active := lipgloss.NewStyle().Foreground(m.Theme.FG()).Background(m.Theme.Color(theme.RoleSurface)).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(m.Theme.Muted()).Padding(0, 1)

	tabs := []struct {
		tab   selection.Tab
		label string
	}{
		{selection.TabFingering, m.loc.T("tab.fingering")},
		{selection.TabTranspose, m.loc.T("tab.transpose")},
	}
	var parts []string
	for _, t := range tabs {
		style := inactive
		if t.tab == m.Controller.State().ActiveTab {
			style = active
		}
		parts = append(parts, style.Render(t.label))
	}
	return strings.Join(parts, " ")
}

func (m Model) fingeringView() string {
	c := m.Controller
	note := c.CurrentNote()
	variant := c.CurrentVariant()
	s := c.State()

	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	valueStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(m.Theme.Cursor())

	var lines []string
	lines = append(lines, labelStyle.Render(m.loc.RegisterName(note.Register)))
	lines = append(lines, fmt.Sprintf("%s %s  %s",
		cursorStyle.Render(string(m.Theme.Symbols.Cursor)),
		valueStyle.Render(note.Name),
		labelStyle.Render(note.Scientific)))
	lines = append(lines, "")

	lines = append(lines, labelStyle.Render(m.loc.T("label.variant", s.SelectedVariant+1, len(note.Variants)))+"  "+variant.Label)
	lines = append(lines, m.keysLine())
	lines = append(lines, "")

	lines = append(lines, labelStyle.Render(m.loc.T("label.description")))
	lines = append(lines, c.Description())

	lines = append(lines, "")
	lines = append(lines, m.noteIndex(note))

	return strings.Join(lines, "\n")
}

// noteIndex lists the whole chart grouped by register, marking the selection
func (m Model) noteIndex(current fingering.NoteDefinition) string {
	cat := m.Controller.Catalog()
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Open())
	activeStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	cursor := string(m.Theme.Symbols.Cursor)

	var lines []string
	for _, r := range fingering.Registers() {
		notes := cat.ByRegister(r)
		if len(notes) == 0 {
			continue
		}
		parts := make([]string, len(notes))
		for i, n := range notes {
			if n.ID == current.ID {
				parts[i] = activeStyle.Render(cursor + n.Scientific)
			} else {
				parts[i] = dimStyle.Render(n.Scientific)
			}
		}
		lines = append(lines, labelStyle.Render(m.loc.RegisterName(r)))
		lines = append(lines, "  "+strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) transposeView() string {
	r, _ := m.Controller.Transposition()
	s := m.Controller.State()

	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	valueStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Bold(true)
	resultStyle := lipgloss.NewStyle().Foreground(m.Theme.Active()).Bold(true)

	played := m.loc.PitchName(r.Played.Index)
	sounding := m.loc.PitchName(r.Sounding.Index)
	source := m.loc.InstrumentName(s.SourceInstrument)
	target := m.loc.InstrumentName(s.TargetInstrument)

	var lines []string
	lines = append(lines, labelStyle.Render(m.loc.T("label.source")))
	lines = append(lines, valueStyle.Render(source))
	lines = append(lines, labelStyle.Render(m.loc.T("label.played")))
	lines = append(lines, valueStyle.Render(played))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render(m.loc.T("label.target")))
	lines = append(lines, valueStyle.Render(target))
	lines = append(lines, labelStyle.Render(m.loc.T("label.sounding")))
	lines = append(lines, fmt.Sprintf("%s %s", string(m.Theme.Symbols.Arrow), resultStyle.Render(sounding)))
	lines = append(lines, "")
	lines = append(lines, m.loc.T("transpose.summary", played, source, sounding, target))
	lines = append(lines, labelStyle.Render(m.loc.T("label.reference", r.Note.Name+" ("+r.Note.Scientific+")")))
	lines = append(lines, m.keysLine())

	return strings.Join(lines, "\n")
}

// keysLine lists the pressed keys of the active diagram
func (m Model) keysLine() string {
	label := lipgloss.NewStyle().Foreground(m.Theme.Muted()).Render(m.loc.T("label.keys") + ": ")
	legend := widgets.RenderKeyLegend(m.Controller.Diagram(), m.Theme)
	if legend == "" {
		return label + m.loc.T("label.no_keys")
	}
	return label + legend
}
