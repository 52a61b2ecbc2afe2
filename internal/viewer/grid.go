package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// charGrid is a 2D character grid the diagram is composed into before
// printing. Each cell carries an optional style; consecutive cells sharing a
// style are rendered as one run.
type charGrid struct {
	width  int
	height int
	cells  [][]rune
	styles [][]*lipgloss.Style
}

// newGrid creates a grid filled with spaces.
func newGrid(width, height int) *charGrid {
	cells := make([][]rune, height)
	styles := make([][]*lipgloss.Style, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		styles[y] = make([]*lipgloss.Style, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
		}
	}
	return &charGrid{width: width, height: height, cells: cells, styles: styles}
}

// set writes a single rune at the given position. Out-of-bounds writes are
// dropped; callers clip against the viewport implicitly.
func (g *charGrid) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = r
	g.styles[y][x] = style
}

// setString writes s starting at (x, y).
func (g *charGrid) setString(x, y int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, style)
	}
}

// line draws a straight run of cells between two grid points using
// Bresenham stepping, choosing a rune per segment slope.
func (g *charGrid) line(x0, y0, x1, y1 int, style *lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	r := lineRune(x1-x0, y1-y0)

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		g.set(x, y, r, style)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// lineRune picks a drawing character for a segment direction.
func lineRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 < adx:
		return '─'
	case adx*2 < ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// arrowRune picks an arrowhead character for the incoming direction.
func arrowRune(dx, dy int) rune {
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▼'
	}
	return '▲'
}

// String converts the grid to styled terminal output.
func (g *charGrid) String() string {
	var lines []string
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		runStart := 0
		runStyle := g.styles[y][0]
		flush := func(end int) {
			text := string(g.cells[y][runStart:end])
			if runStyle != nil {
				text = runStyle.Render(text)
			}
			b.WriteString(text)
		}
		for x := 1; x < g.width; x++ {
			if g.styles[y][x] != runStyle {
				flush(x)
				runStart = x
				runStyle = g.styles[y][x]
			}
		}
		flush(g.width)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
