package viewer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/dialogviz/internal/controller"
)

// Viewer wraps a controller in an interactive bubbletea program.
type Viewer struct {
	ctrl *controller.Controller
}

// New creates a Viewer around an existing controller. The controller should
// already hold its dialogue data; the viewer resizes it to the terminal on
// startup.
func New(ctrl *controller.Controller) *Viewer {
	return &Viewer{ctrl: ctrl}
}

// Run starts the viewer and blocks until the user quits.
func (v *Viewer) Run() error {
	p := tea.NewProgram(
		newModel(v.ctrl),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
