package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Key diagram
	Solid rune // ● key pressed
	Empty rune // ○ key open

	// Lists
	Cursor    rune // ▸ selected row
	Bullet    rune // · section marker
	Arrow     rune // → transposition result
	Separator rune // │ between columns
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Solid: '●',
			Empty: '○',

			Cursor:    '▸',
			Bullet:    '·',
			Arrow:     '→',
			Separator: '│',
		},
	}
}

// Default returns the theme built on the embedded brass palette
func Default() *Theme {
	return New(DefaultPalette())
}

// Color roles mapped to palette positions (0-1)
const (
	RoleSurface = 0.1 // dark slate
	RoleMuted   = 0.2 // slate grey
	RoleOpen    = 0.3 // light slate, open key outline
	RoleFG      = 0.5 // near white
	RoleCursor  = 0.6 // pale amber
	RoleAccent  = 0.7 // amber
	RoleActive  = 0.8 // saturated amber, pressed key
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Open() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleOpen))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

// KeyStyle returns the style for a pressed or open key
func (t *Theme) KeyStyle(engaged bool) lipgloss.Style {
	if engaged {
		return lipgloss.NewStyle().Foreground(t.Active()).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Open())
}

// KeySymbol returns the glyph for a pressed or open key
func (t *Theme) KeySymbol(engaged bool) rune {
	if engaged {
		return t.Symbols.Solid
	}
	return t.Symbols.Empty
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
