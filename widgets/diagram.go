package widgets

import (
	"math"
	"strings"

	"saxguide/render"
	"saxguide/theme"
)

// RenderKeyDiagram paints a diagram onto a cols x rows character grid.
// Pressed keys use the theme's solid symbol, open keys the empty one.
// Keys that land on the same cell are nudged to the nearest free cell
// in the row, so every key is painted exactly once while room remains.
func RenderKeyDiagram(d render.Diagram, th *theme.Theme, cols, rows int) string {
	if d.Empty() || cols <= 0 || rows <= 0 {
		return ""
	}

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}

	b := d.Bounds()
	for _, k := range d.Keys {
		col := scale(k.X, b.MinX, b.Width(), cols)
		row := scale(k.Y, b.MinY, b.Height(), rows)
		col, ok := freeCell(grid[row], col)
		if !ok {
			continue
		}
		grid[row][col] = th.KeyStyle(k.Engaged).Render(string(th.KeySymbol(k.Engaged)))
	}

	lines := make([]string, rows)
	for r, cells := range grid {
		var line strings.Builder
		for _, c := range cells {
			if c == "" {
				c = " "
			}
			line.WriteString(c)
		}
		lines[r] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// RenderKeyLegend lists the labels of the pressed keys in layout order.
func RenderKeyLegend(d render.Diagram, th *theme.Theme) string {
	var labels []string
	for _, k := range d.Keys {
		if k.Engaged {
			labels = append(labels, th.KeyStyle(true).Render(k.Label))
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return strings.Join(labels, " ")
}

func scale(v, lo, span float64, cells int) int {
	if span <= 0 || cells == 1 {
		return 0
	}
	i := int(math.Round((v - lo) / span * float64(cells-1)))
	return max(0, min(cells-1, i))
}

func freeCell(row []string, want int) (int, bool) {
	for off := 0; off < len(row); off++ {
		if i := want + off; i < len(row) && row[i] == "" {
			return i, true
		}
		if i := want - off; i >= 0 && row[i] == "" {
			return i, true
		}
	}
	return 0, false
}
