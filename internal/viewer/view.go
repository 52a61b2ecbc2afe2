package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/dialogviz/internal/geometry"
	"github.com/npratt/dialogviz/internal/graph"
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	gridH := m.height - chromeRows
	if gridH < 1 {
		gridH = 1
	}

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp(gridH)
	case len(m.ctrl.Nodes()) == 0:
		body = m.renderEmpty(gridH)
	default:
		body = m.renderGraph(gridH)
	}

	return body + "\n" + m.renderStatusBar() + "\n" + m.renderHints()
}

// project maps a simulation point to grid cell coordinates through the
// viewport transform.
func (m model) project(x, y float64) (int, int) {
	sx, sy := m.ctrl.Transform().Apply(x, y)
	return int(sx / cellWidth), int(sy / cellHeight)
}

// renderGraph composes edges, labels, and nodes into the character grid.
// Edges draw first so nodes sit on top.
func (m model) renderGraph(gridH int) string {
	grid := newGrid(m.width, gridH)

	edges := m.ctrl.Edges()
	paths := m.ctrl.Paths()

	for i, e := range edges {
		if i >= len(paths) || paths[i].Empty {
			continue
		}
		p := paths[i]

		if p.Arc {
			pts := geometry.ArcPoints(p, 8)
			for j := 1; j < len(pts); j++ {
				x0, y0 := m.project(pts[j-1][0], pts[j-1][1])
				x1, y1 := m.project(pts[j][0], pts[j][1])
				grid.line(x0, y0, x1, y1, &m.styles.Link)
			}
		} else {
			x0, y0 := m.project(p.X1, p.Y1)
			x1, y1 := m.project(p.X2, p.Y2)
			grid.line(x0, y0, x1, y1, &m.styles.Link)
		}

		// Arrowhead at the target end, along the chord direction.
		ax0, ay0 := m.project(p.X1, p.Y1)
		ax1, ay1 := m.project(p.X2, p.Y2)
		grid.set(ax1, ay1, arrowRune(ax1-ax0, ay1-ay0), &m.styles.Link)

		if e.Label != "" {
			lx, ly := m.project(p.LabelX, p.LabelY)
			grid.setString(lx-len([]rune(e.Label))/2, ly, e.Label, &m.styles.LinkLabel)
		}
	}

	for _, n := range m.ctrl.Nodes() {
		col, row := m.project(n.X, n.Y)
		style := m.nodeStyle(n)
		grid.set(col, row, '●', style)
		grid.setString(col+2, row, n.ID, style)
		grid.setString(col-1, row-1, n.Speaker, &m.styles.NodeText)
		text := "“" + graph.TruncateLabel(n.Text) + "”"
		grid.setString(col-1, row+1, text, &m.styles.NodeText)
	}

	return grid.String()
}

// nodeStyle picks the style for a node's current interaction state.
func (m model) nodeStyle(n *graph.Node) *lipgloss.Style {
	switch {
	case n.Pinned():
		return &m.styles.NodePinned
	case n.ID == m.selected:
		return &m.styles.NodeSelected
	default:
		return &m.styles.Node
	}
}

// renderEmpty renders a centered placeholder.
func (m model) renderEmpty(gridH int) string {
	msg := "No dialogue nodes to display"
	if m.width < len(msg) {
		msg = "Empty"
	}
	padLeft := (m.width - len(msg)) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	line := strings.Repeat(" ", padLeft) + msg

	var lines []string
	midY := gridH / 2
	for y := 0; y < gridH; y++ {
		if y == midY {
			lines = append(lines, line)
		} else {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the key reference.
func (m model) renderHelp(gridH int) string {
	lines := []string{
		"",
		"  dialogviz keys",
		"",
		"  mouse drag      move a node (layout reacts live)",
		"  mouse wheel     zoom at pointer",
		"  tab / shift+tab select node",
		"  space / enter   grab or release selected node",
		"  arrows, hjkl    move grabbed node, or pan",
		"  + / -           zoom",
		"  [ / ]           repulsion down / up",
		"  t               cycle theme",
		"  r               shuffle layout",
		"  ?               close help",
		"  q               quit",
	}
	for len(lines) < gridH {
		lines = append(lines, "")
	}
	return m.styles.Help.Render(strings.Join(lines[:gridH], "\n"))
}

// renderStatusBar summarizes the live state: settling indicator, theme,
// repulsion, counts, and structural warnings.
func (m model) renderStatusBar() string {
	var state string
	if m.ctrl.Active() {
		state = m.spinner.View() + " settling"
	} else {
		state = "idle"
	}

	info := fmt.Sprintf("%s | %s | repulsion %.0f | %d nodes, %d edges",
		state,
		m.ctrl.Theme().Name,
		m.ctrl.Repulsion(),
		len(m.ctrl.Nodes()),
		len(m.ctrl.Edges()),
	)

	if n := len(m.ctrl.Diagnostics()); n > 0 {
		info += " | " + m.styles.Warning.Render(fmt.Sprintf("%d warning(s)", n))
	}

	return m.styles.Footer.Render(info)
}

// renderHints renders the one-line key summary.
func (m model) renderHints() string {
	return m.styles.Footer.Render("tab:select space:grab +/-:zoom [/]:repulsion t:theme r:shuffle ?:help q:quit")
}
