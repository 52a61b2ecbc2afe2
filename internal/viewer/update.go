package viewer

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/dialogviz/internal/controller"
	"github.com/npratt/dialogviz/internal/sim"
	"github.com/npratt/dialogviz/internal/theme"
)

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		gridH := msg.Height - chromeRows
		if gridH < 1 {
			gridH = 1
		}
		m.ctrl.Apply(controller.Resize{
			Width:  float64(msg.Width) * cellWidth,
			Height: float64(gridH) * cellHeight,
		})
		// A rebuild drops keyboard state along with node identity.
		m.grabbed = ""
		m.dragging = ""
		return m, nil

	case frameMsg:
		// Ticks scheduled before a rebuild must not advance the new
		// solver; the loop just reschedules under the new generation.
		if msg.gen == m.ctrl.Generation() {
			m.ctrl.Tick()
		}
		return m, m.frameCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "tab":
		m.selectNext(1)
		return m, nil

	case "shift+tab":
		m.selectNext(-1)
		return m, nil

	case " ", "enter":
		// Grab toggles a keyboard drag on the selected node.
		if m.grabbed != "" {
			m.ctrl.Apply(controller.DragEnd{NodeID: m.grabbed})
			m.grabbed = ""
		} else if m.selected != "" {
			m.ctrl.Apply(controller.DragStart{NodeID: m.selected})
			m.grabbed = m.selected
		}
		return m, nil

	case "up", "k":
		return m.moveOrPan(0, -1), nil
	case "down", "j":
		return m.moveOrPan(0, 1), nil
	case "left", "h":
		return m.moveOrPan(-1, 0), nil
	case "right", "l":
		return m.moveOrPan(1, 0), nil

	case "+", "=":
		m.ctrl.Apply(controller.Zoom{Factor: 1.25, X: m.centerX(), Y: m.centerY()})
		return m, nil
	case "-", "_":
		m.ctrl.Apply(controller.Zoom{Factor: 0.8, X: m.centerX(), Y: m.centerY()})
		return m, nil

	case "]":
		m.adjustRepulsion(repulsionStep)
		return m, nil
	case "[":
		m.adjustRepulsion(-repulsionStep)
		return m, nil

	case "t":
		next := theme.Next(m.ctrl.Theme().Name)
		m.ctrl.Apply(controller.SetTheme{Name: next.Name})
		m.styles = newSurfaceStyles(next)
		m.grabbed = ""
		m.dragging = ""
		return m, nil

	case "r":
		// Shuffle: rebuild at the same size for a fresh layout.
		w, h := m.ctrl.Viewport()
		m.ctrl.Apply(controller.Resize{Width: w, Height: h})
		m.grabbed = ""
		m.dragging = ""
		return m, nil

	default:
		return m, nil
	}
}

// handleMouse processes pointer input: left drag moves nodes, the wheel
// zooms around the pointer.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px := (float64(msg.X) + 0.5) * cellWidth
	py := (float64(msg.Y) + 0.5) * cellHeight

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctrl.Apply(controller.Zoom{Factor: 1.1, X: px, Y: py})
		return m, nil
	case tea.MouseButtonWheelDown:
		m.ctrl.Apply(controller.Zoom{Factor: 0.9, X: px, Y: py})
		return m, nil
	}

	sx, sy := m.ctrl.Transform().Invert(px, py)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if n := m.ctrl.NodeAt(sx, sy, pickRadius); n != nil {
			m.ctrl.Apply(controller.DragStart{NodeID: n.ID})
			m.dragging = n.ID
			m.selected = n.ID
		}

	case tea.MouseActionMotion:
		if m.dragging != "" {
			m.ctrl.Apply(controller.DragMove{NodeID: m.dragging, X: sx, Y: sy})
		}

	case tea.MouseActionRelease:
		if m.dragging != "" {
			m.ctrl.Apply(controller.DragEnd{NodeID: m.dragging})
			m.dragging = ""
		}
	}
	return m, nil
}

// moveOrPan moves the grabbed node one cell, or pans the viewport when
// nothing is grabbed.
func (m model) moveOrPan(dx, dy int) model {
	if m.grabbed != "" {
		n := m.ctrl.Node(m.grabbed)
		if n == nil {
			m.grabbed = ""
			return m
		}
		scale := m.ctrl.Transform().Scale
		m.ctrl.Apply(controller.DragMove{
			NodeID: m.grabbed,
			X:      n.X + float64(dx)*cellWidth/scale,
			Y:      n.Y + float64(dy)*cellHeight/scale,
		})
		return m
	}
	m.ctrl.Apply(controller.Pan{
		DX: float64(-dx) * 2 * cellWidth,
		DY: float64(-dy) * 2 * cellHeight,
	})
	return m
}

// adjustRepulsion steps the charge strength, keeping it in the range the
// simulation expects.
func (m *model) adjustRepulsion(delta float64) {
	r := m.ctrl.Repulsion() + delta
	if r < sim.MinRepulsion {
		r = sim.MinRepulsion
	}
	if r > sim.MaxRepulsion {
		r = sim.MaxRepulsion
	}
	m.ctrl.Apply(controller.SetRepulsion{Value: r})
}

// selectNext cycles the keyboard selection in build order.
func (m *model) selectNext(dir int) {
	nodes := m.ctrl.Nodes()
	if len(nodes) == 0 {
		return
	}
	idx := -1
	for i, n := range nodes {
		if n.ID == m.selected {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Nothing selected yet: tab starts at the first node,
		// shift+tab at the last.
		if dir > 0 {
			m.selected = nodes[0].ID
		} else {
			m.selected = nodes[len(nodes)-1].ID
		}
		return
	}
	idx = ((idx+dir)%len(nodes) + len(nodes)) % len(nodes)
	m.selected = nodes[idx].ID
}

func (m model) centerX() float64 { return float64(m.width) * cellWidth / 2 }

func (m model) centerY() float64 {
	return float64(m.height-chromeRows) * cellHeight / 2
}
