// Package sim advances node positions under a small fixed set of forces:
// pairwise charge repulsion, spring links along edges, a weak pull toward the
// viewport center, and pairwise collision resolution. The simulation is the
// only writer of node positions; interaction layers influence it exclusively
// through pinning and reheating.
package sim

import (
	"math"

	"github.com/npratt/dialogviz/internal/graph"
)

// Force and cooling defaults. Repulsion is the one knob exposed to users;
// callers clamp it to [MinRepulsion, MaxRepulsion] before it reaches here.
const (
	DefaultRepulsion = 1500.0
	MinRepulsion     = 100.0
	MaxRepulsion     = 5000.0
)

// Config holds the simulation parameters.
type Config struct {
	Repulsion      float64 // charge strength; larger spreads nodes further apart
	LinkDistance   float64 // target separation for connected nodes
	LinkStrength   float64 // spring constant toward LinkDistance
	CenterStrength float64 // pull toward the viewport center
	CollideRadius  float64 // per-node circle used only for collision
	CollidePasses  int     // relaxation passes per tick
	VelocityDecay  float64 // velocity retained across ticks
	AlphaDecay     float64 // cooling rate per tick
	AlphaMin       float64 // below this the solver idles
	ReheatAlpha    float64 // energy restored by interaction or parameter changes
}

// DefaultConfig returns the tuning the viewer ships with.
func DefaultConfig() Config {
	return Config{
		Repulsion:      DefaultRepulsion,
		LinkDistance:   250,
		LinkStrength:   0.05,
		CenterStrength: 0.01,
		CollideRadius:  80,
		CollidePasses:  2,
		VelocityDecay:  0.6,
		AlphaDecay:     0.0228,
		AlphaMin:       0.001,
		ReheatAlpha:    0.3,
	}
}

// link is an edge resolved to node indices.
type link struct {
	source, target int
}

// Simulation is a discrete-time solver over a fixed node set. It owns the
// position fields of its nodes for its lifetime; a data, viewport, or theme
// change discards the whole Simulation and builds a new one.
type Simulation struct {
	cfg    Config
	nodes  []*graph.Node
	links  []link
	cx, cy float64
	alpha  float64
	vx, vy []float64
}

// New creates a simulation over the given nodes and edges, centered on
// (cx, cy). Edges whose endpoints are not in nodes are ignored.
func New(cfg Config, nodes []*graph.Node, edges []graph.Edge, cx, cy float64) *Simulation {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	var links []link
	for _, e := range edges {
		si, ok1 := index[e.Source]
		ti, ok2 := index[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		links = append(links, link{source: si, target: ti})
	}

	return &Simulation{
		cfg:   cfg,
		nodes: nodes,
		links: links,
		cx:    cx,
		cy:    cy,
		alpha: 1,
		vx:    make([]float64, len(nodes)),
		vy:    make([]float64, len(nodes)),
	}
}

// Alpha returns the current cooling factor.
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Active reports whether the solver still advances positions. An idle
// simulation resumes only through Reheat or SetRepulsion.
func (s *Simulation) Active() bool {
	return len(s.nodes) > 0 && s.alpha >= s.cfg.AlphaMin
}

// Reheat restores enough kinetic energy for visible motion without touching
// positions. Called on drag start and on parameter changes.
func (s *Simulation) Reheat() {
	if s.alpha < s.cfg.ReheatAlpha {
		s.alpha = s.cfg.ReheatAlpha
	}
}

// Repulsion returns the current charge strength.
func (s *Simulation) Repulsion() float64 {
	return s.cfg.Repulsion
}

// SetRepulsion changes the charge strength and re-energizes the solver so
// the new value becomes visible. Node identities and positions are kept.
func (s *Simulation) SetRepulsion(r float64) {
	s.cfg.Repulsion = r
	s.Reheat()
}

// Tick advances the simulation one step. All forces for a tick are computed
// against the positions at the start of the tick; displacement happens in a
// single apply phase afterwards. An idle or empty simulation is a no-op.
func (s *Simulation) Tick() {
	if !s.Active() {
		return
	}

	n := len(s.nodes)
	px := make([]float64, n)
	py := make([]float64, n)
	for i, node := range s.nodes {
		px[i], py[i] = node.X, node.Y
	}

	// Charge repulsion between every pair. Pinned nodes still push others.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := px[i] - px[j]
			dy := py[i] - py[j]
			distSq := dx*dx + dy*dy
			if distSq < 1 {
				distSq = 1
			}
			dist := math.Sqrt(distSq)
			f := s.cfg.Repulsion / distSq * s.alpha
			fx := dx / dist * f
			fy := dy / dist * f
			s.vx[i] += fx
			s.vy[i] += fy
			s.vx[j] -= fx
			s.vy[j] -= fy
		}
	}

	// Spring links toward the target separation.
	for _, l := range s.links {
		dx := px[l.target] - px[l.source]
		dy := py[l.target] - py[l.source]
		dist := math.Hypot(dx, dy)
		if dist < 1e-6 {
			continue
		}
		f := (dist - s.cfg.LinkDistance) * s.cfg.LinkStrength * s.alpha
		fx := dx / dist * f
		fy := dy / dist * f
		s.vx[l.source] += fx
		s.vy[l.source] += fy
		s.vx[l.target] -= fx
		s.vy[l.target] -= fy
	}

	// Weak centering keeps the whole set from drifting off-screen.
	for i := 0; i < n; i++ {
		s.vx[i] += (s.cx - px[i]) * s.cfg.CenterStrength * s.alpha
		s.vy[i] += (s.cy - py[i]) * s.cfg.CenterStrength * s.alpha
	}

	// Apply phase. Pinned nodes are held exactly at their pin.
	for i, node := range s.nodes {
		if node.Pinned() {
			node.X = *node.FX
			node.Y = *node.FY
			s.vx[i] = 0
			s.vy[i] = 0
			continue
		}
		s.vx[i] *= s.cfg.VelocityDecay
		s.vy[i] *= s.cfg.VelocityDecay
		node.X += s.vx[i]
		node.Y += s.vy[i]
	}

	s.resolveCollisions()

	s.alpha += (0 - s.alpha) * s.cfg.AlphaDecay
}

// resolveCollisions pushes apart overlapping node circles. The constraint is
// relaxed iteratively rather than solved exactly; a couple of passes per
// tick keeps the layout stable without visible jitter. A pinned node is
// never displaced, so its free partner absorbs the full correction.
func (s *Simulation) resolveCollisions() {
	minDist := s.cfg.CollideRadius * 2
	for pass := 0; pass < s.cfg.CollidePasses; pass++ {
		for i := 0; i < len(s.nodes); i++ {
			for j := i + 1; j < len(s.nodes); j++ {
				a, b := s.nodes[i], s.nodes[j]
				dx := b.X - a.X
				dy := b.Y - a.Y
				dist := math.Hypot(dx, dy)
				if dist >= minDist {
					continue
				}
				if dist < 1e-6 {
					// Coincident centers have no separation axis;
					// nudge along x so the next pass can work.
					dx, dy, dist = 1e-6, 0, 1e-6
				}
				overlap := (minDist - dist) / dist
				pushX := dx * overlap / 2
				pushY := dy * overlap / 2
				switch {
				case a.Pinned() && b.Pinned():
					// Both held; leave them overlapping.
				case a.Pinned():
					b.X += pushX * 2
					b.Y += pushY * 2
				case b.Pinned():
					a.X -= pushX * 2
					a.Y -= pushY * 2
				default:
					a.X -= pushX
					a.Y -= pushY
					b.X += pushX
					b.Y += pushY
				}
			}
		}
	}
}

// RunToIdle ticks until the simulation cools below its threshold or maxTicks
// is reached. Used by the headless renderer.
func (s *Simulation) RunToIdle(maxTicks int) int {
	ticks := 0
	for s.Active() && ticks < maxTicks {
		s.Tick()
		ticks++
	}
	return ticks
}
