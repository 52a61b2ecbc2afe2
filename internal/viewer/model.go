// Package viewer provides the interactive terminal surface for the force
// layout using bubbletea. One frame message per interval advances the
// simulation a single tick; all input is translated into controller
// commands, so the viewer itself never touches positions.
package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/dialogviz/internal/controller"
)

const (
	// Simulation units covered by one terminal cell at scale 1. The 1:2
	// ratio roughly squares up the usual glyph aspect so circles read as
	// circles.
	cellWidth  = 10.0
	cellHeight = 20.0

	// frameInterval paces the tick loop.
	frameInterval = 50 * time.Millisecond

	// pickRadius is the hit-test distance in simulation units.
	pickRadius = 60.0

	// repulsionStep is the increment for runtime repulsion adjustment.
	repulsionStep = 250.0

	// chromeRows is terminal rows reserved for status and key hints.
	chromeRows = 2
)

// frameMsg drives one simulation tick. The generation stamps the layout the
// frame was scheduled against; frames from before a rebuild are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// model is the bubbletea model for the viewer.
type model struct {
	ctrl   *controller.Controller
	styles surfaceStyles

	spinner spinner.Model

	width  int
	height int

	selected string // keyboard-selected node id
	grabbed  string // node dragged via keyboard
	dragging string // node dragged via mouse
	showHelp bool
}

// newModel creates the viewer model around an existing controller.
func newModel(ctrl *controller.Controller) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		ctrl:    ctrl,
		styles:  newSurfaceStyles(ctrl.Theme()),
		spinner: sp,
	}
}

// Init starts the frame loop and the settling spinner.
func (m model) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.spinner.Tick)
}

// frameCmd schedules the next frame, stamped with the current generation.
func (m model) frameCmd() tea.Cmd {
	gen := m.ctrl.Generation()
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}
