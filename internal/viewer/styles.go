package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/dialogviz/internal/theme"
)

// surfaceStyles contains the lipgloss styles for one theme. Rebuilt whenever
// the theme changes; everything else about the surface is untouched.
type surfaceStyles struct {
	Node         lipgloss.Style
	NodeSelected lipgloss.Style
	NodePinned   lipgloss.Style
	NodeText     lipgloss.Style
	Link         lipgloss.Style
	LinkLabel    lipgloss.Style
	Footer       lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// newSurfaceStyles derives terminal styles from a palette.
func newSurfaceStyles(t theme.Theme) surfaceStyles {
	return surfaceStyles{
		Node: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.NodeStroke)),

		NodeSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.NodeStroke)),

		NodePinned: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.LinkText)),

		NodeText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Link)),

		LinkLabel: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(t.LinkText)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
	}
}
