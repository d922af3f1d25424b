package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// minKeyColumn keeps short key lists aligned with the TUI help.
const minKeyColumn = 12

// KeySection is a titled group of bindings. An empty title continues the
// previous group.
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

type KeyBinding struct {
	Key  string
	Desc string
}

// RenderKeyHelp lays sections out as an indented two-column list. The key
// column grows to fit the widest key across all sections.
func RenderKeyHelp(sections []KeySection) string {
	width := minKeyColumn
	for _, sec := range sections {
		for _, k := range sec.Keys {
			width = max(width, lipgloss.Width(k.Key)+1)
		}
	}
	keyCol := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for _, sec := range sections {
		if sec.Title != "" {
			b.WriteString(sec.Title + "\n")
		}
		for _, k := range sec.Keys {
			b.WriteString("  " + keyCol.Render(k.Key) + " " + k.Desc + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
