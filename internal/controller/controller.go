// Package controller owns the layout lifecycle: it is the single consumer of
// interaction commands and the single driver of the force simulation. Every
// external event (new data, resize, theme change, parameter change, drag,
// zoom, pan) maps to exactly one command, and each command triggers at most
// one re-energize, so overlapping UI events cannot re-enter each other.
package controller

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/npratt/dialogviz/internal/dialogue"
	"github.com/npratt/dialogviz/internal/geometry"
	"github.com/npratt/dialogviz/internal/graph"
	"github.com/npratt/dialogviz/internal/sim"
	"github.com/npratt/dialogviz/internal/theme"
)

// Viewport scale bounds.
const (
	MinScale = 0.1
	MaxScale = 4.0
)

// Command is an interaction event consumed by Apply.
type Command interface{ command() }

// SetData replaces the dialogue and rebuilds the layout from scratch.
type SetData struct{ Nodes []dialogue.Node }

// Resize changes the viewport and rebuilds with a fresh randomized layout.
type Resize struct{ Width, Height float64 }

// SetTheme switches the palette. Like a resize this rebuilds the layout.
type SetTheme struct{ Name string }

// SetRepulsion changes the charge strength at runtime. Positions and node
// identities are kept; the simulation is only re-energized. The value is the
// caller's responsibility to keep within range.
type SetRepulsion struct{ Value float64 }

// DragStart pins a node at its current simulated position and re-energizes
// the simulation so neighbors react live.
type DragStart struct{ NodeID string }

// DragMove tracks the pointer by updating the pinned position.
type DragMove struct {
	NodeID string
	X, Y   float64
}

// DragEnd unpins the node; free motion resumes under whatever energy is
// still in the simulation.
type DragEnd struct{ NodeID string }

// Zoom scales the viewport transform around an anchor point in screen space.
type Zoom struct {
	Factor float64
	X, Y   float64
}

// Pan translates the viewport transform.
type Pan struct{ DX, DY float64 }

func (SetData) command()      {}
func (Resize) command()       {}
func (SetTheme) command()     {}
func (SetRepulsion) command() {}
func (DragStart) command()    {}
func (DragMove) command()     {}
func (DragEnd) command()      {}
func (Zoom) command()         {}
func (Pan) command()          {}

// Transform is the affine viewport transform applied to the whole rendered
// group. It lives entirely in screen space; simulation coordinates never see
// it, so dragging nodes and panning the viewport cannot interfere.
type Transform struct {
	Scale  float64
	TX, TY float64
}

// Identity returns the neutral transform.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply maps a simulation-space point to screen space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TX, y*t.Scale + t.TY
}

// Invert maps a screen-space point back to simulation space.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return (x - t.TX) / t.Scale, (y - t.TY) / t.Scale
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithSeed makes initial layout jitter reproducible. Without it the jitter
// is time-seeded and layouts are only structurally reproducible.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSimConfig overrides the simulation tuning.
func WithSimConfig(cfg sim.Config) Option {
	return func(c *Controller) { c.simCfg = cfg }
}

// WithTheme sets the starting palette by name.
func WithTheme(name string) Option {
	return func(c *Controller) {
		if t, ok := theme.ByName(name); ok {
			c.theme = t
		}
	}
}

// Controller holds the full visualization state between commands.
type Controller struct {
	logger *slog.Logger
	simCfg sim.Config
	rng    *rand.Rand

	data          []dialogue.Node
	width, height float64
	theme         theme.Theme

	nodes      []*graph.Node
	index      map[string]*graph.Node
	edges      []graph.Edge
	diags      []graph.Diagnostic
	simulation *sim.Simulation

	transform  Transform
	generation int
}

// New creates a Controller with an empty dataset and the given viewport.
func New(width, height float64, opts ...Option) *Controller {
	c := &Controller{
		logger:    slog.New(slog.DiscardHandler),
		simCfg:    sim.DefaultConfig(),
		width:     width,
		height:    height,
		theme:     theme.Default(),
		transform: Identity(),
		index:     make(map[string]*graph.Node),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply consumes one command. Commands arrive on the same execution context
// as Tick; there is no internal locking and no re-entrancy.
func (c *Controller) Apply(cmd Command) {
	switch m := cmd.(type) {
	case SetData:
		c.data = m.Nodes
		c.rebuild()

	case Resize:
		c.width, c.height = m.Width, m.Height
		c.rebuild()

	case SetTheme:
		if t, ok := theme.ByName(m.Name); ok {
			c.theme = t
			c.rebuild()
		} else {
			c.logger.Warn("unknown theme", "name", m.Name)
		}

	case SetRepulsion:
		c.simCfg.Repulsion = m.Value
		if c.simulation != nil {
			c.simulation.SetRepulsion(m.Value)
		}

	case DragStart:
		if n, ok := c.index[m.NodeID]; ok {
			n.Pin(n.X, n.Y)
			if c.simulation != nil {
				c.simulation.Reheat()
			}
		}

	case DragMove:
		if n, ok := c.index[m.NodeID]; ok && n.Pinned() {
			n.Pin(m.X, m.Y)
		}

	case DragEnd:
		if n, ok := c.index[m.NodeID]; ok {
			n.Unpin()
		}

	case Zoom:
		scale := c.transform.Scale * m.Factor
		scale = math.Min(MaxScale, math.Max(MinScale, scale))
		factor := scale / c.transform.Scale
		// Keep the anchor point fixed on screen while scaling.
		c.transform.TX = m.X - (m.X-c.transform.TX)*factor
		c.transform.TY = m.Y - (m.Y-c.transform.TY)*factor
		c.transform.Scale = scale

	case Pan:
		c.transform.TX += m.DX
		c.transform.TY += m.DY
	}
}

// rebuild replaces nodes, edges, and the simulation wholesale. Dropping the
// old Simulation is the cancellation point: nothing else holds a reference,
// so two solvers can never write the same node set. The generation counter
// lets frame drivers discard ticks scheduled against the old layout.
func (c *Controller) rebuild() {
	builder := graph.NewBuilder(c.logger, c.rng)
	c.nodes, c.edges, c.diags = builder.Build(c.data, c.width, c.height)

	c.index = make(map[string]*graph.Node, len(c.nodes))
	for _, n := range c.nodes {
		c.index[n.ID] = n
	}

	c.simulation = sim.New(c.simCfg, c.nodes, c.edges, c.width/2, c.height/2)
	c.generation++

	c.logger.Info("layout rebuilt",
		"nodes", len(c.nodes),
		"edges", len(c.edges),
		"warnings", len(c.diags),
		"generation", c.generation,
	)
}

// Tick advances the simulation one step. Returns true when positions moved
// and the surface should repaint.
func (c *Controller) Tick() bool {
	if c.simulation == nil || !c.simulation.Active() {
		return false
	}
	c.simulation.Tick()
	return true
}

// Active reports whether the simulation is still settling.
func (c *Controller) Active() bool {
	return c.simulation != nil && c.simulation.Active()
}

// RunToIdle drives the simulation to rest, for headless rendering.
func (c *Controller) RunToIdle(maxTicks int) int {
	if c.simulation == nil {
		return 0
	}
	return c.simulation.RunToIdle(maxTicks)
}

// Generation identifies the current layout; it increments on every rebuild.
func (c *Controller) Generation() int { return c.generation }

// Nodes returns the live node set. Callers must treat positions as read-only.
func (c *Controller) Nodes() []*graph.Node { return c.nodes }

// Edges returns the current edge set.
func (c *Controller) Edges() []graph.Edge { return c.edges }

// Diagnostics returns the structural warnings from the last rebuild.
func (c *Controller) Diagnostics() []graph.Diagnostic { return c.diags }

// Theme returns the active palette.
func (c *Controller) Theme() theme.Theme { return c.theme }

// Transform returns the current viewport transform.
func (c *Controller) Transform() Transform { return c.transform }

// Repulsion returns the current charge strength.
func (c *Controller) Repulsion() float64 { return c.simCfg.Repulsion }

// Viewport returns the current layout dimensions.
func (c *Controller) Viewport() (w, h float64) { return c.width, c.height }

// Paths computes the edge geometry for the current positions.
func (c *Controller) Paths() []geometry.Path {
	return geometry.EdgePaths(c.index, c.edges)
}

// Node returns the node with the given id, or nil.
func (c *Controller) Node(id string) *graph.Node {
	return c.index[id]
}

// NodeAt returns the node whose center is nearest to the simulation-space
// point (x, y) within the pick radius, or nil. Iteration follows build order
// so hits are deterministic when circles overlap.
func (c *Controller) NodeAt(x, y, radius float64) *graph.Node {
	var best *graph.Node
	bestDist := radius
	for _, n := range c.nodes {
		d := math.Hypot(n.X-x, n.Y-y)
		if d <= bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}
