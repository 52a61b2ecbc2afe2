// Package geometry turns live node positions into drawable edge paths:
// segments trimmed back to node boundaries, divergent arcs for bidirectional
// pairs, arrowhead orientation, and off-curve label anchors. It is
// recomputed from scratch every tick and holds no state.
package geometry

import (
	"math"

	"github.com/npratt/dialogviz/internal/graph"
)

const (
	// NodeRadius is the visual circle radius. Collision uses a larger
	// radius owned by the simulation; the two are unrelated.
	NodeRadius = 25.0

	// BoundaryOffset is how far each edge end is pulled back from the node
	// center so lines touch the visual boundary, stroke width included.
	BoundaryOffset = 28.0

	// StraightLabelOffset is the perpendicular label distance for straight
	// edges.
	StraightLabelOffset = 15.0

	// MinArcLabelOffset is the floor for arc label distance; the actual
	// offset grows with edge length so paired labels clear both arcs.
	MinArcLabelOffset = 25.0

	arcLabelScale = 0.2
)

// Path is the drawable form of one edge. When Empty is set nothing should be
// rendered for this tick; the nodes were coincident or too close to trim.
type Path struct {
	Empty          bool
	X1, Y1, X2, Y2 float64 // trimmed endpoints, source to target
	Arc            bool    // curved form for bidirectional edges
	Radius         float64 // arc radius; equals the trimmed chord length
	LabelX, LabelY float64
	Angle          float64 // tangent angle at the target end, radians
}

// EdgePath computes the path for a single edge from source center (sx, sy)
// to target center (tx, ty). Zero or near-zero separation yields an empty
// path rather than an error; transient overlap is expected while the
// simulation settles.
func EdgePath(sx, sy, tx, ty float64, bidirectional bool) Path {
	dx := tx - sx
	dy := ty - sy
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist <= 2*BoundaryOffset {
		return Path{Empty: true}
	}

	ux, uy := dx/dist, dy/dist
	p := Path{
		X1:    sx + ux*BoundaryOffset,
		Y1:    sy + uy*BoundaryOffset,
		X2:    tx - ux*BoundaryOffset,
		Y2:    ty - uy*BoundaryOffset,
		Angle: math.Atan2(dy, dx),
	}
	chord := dist - 2*BoundaryOffset

	// Left of travel in screen coordinates (y grows downward). Both the
	// arc bulge and the label sit on this side, so the two arcs of a
	// bidirectional pair diverge and their labels never collide.
	perpX, perpY := uy, -ux

	offset := StraightLabelOffset
	if bidirectional {
		p.Arc = true
		p.Radius = chord
		offset = math.Max(MinArcLabelOffset, chord*arcLabelScale)
	}

	midX := (p.X1 + p.X2) / 2
	midY := (p.Y1 + p.Y2) / 2
	p.LabelX = midX + perpX*offset
	p.LabelY = midY + perpY*offset

	return p
}

// EdgePaths computes paths for every edge against the given node index.
// Edges with a missing endpoint are skipped.
func EdgePaths(index map[string]*graph.Node, edges []graph.Edge) []Path {
	paths := make([]Path, 0, len(edges))
	for _, e := range edges {
		src, ok1 := index[e.Source]
		dst, ok2 := index[e.Target]
		if !ok1 || !ok2 {
			paths = append(paths, Path{Empty: true})
			continue
		}
		paths = append(paths, EdgePath(src.X, src.Y, dst.X, dst.Y, e.Bidirectional))
	}
	return paths
}

// ArcPoints samples the circular arc of p into n straight segments for
// surfaces that cannot draw arcs natively. p must be an arc path.
func ArcPoints(p Path, n int) [][2]float64 {
	if !p.Arc || n < 2 {
		return [][2]float64{{p.X1, p.Y1}, {p.X2, p.Y2}}
	}

	// Circle center: on the right side of travel so the arc bulges left.
	chordX := p.X2 - p.X1
	chordY := p.Y2 - p.Y1
	chord := math.Hypot(chordX, chordY)
	ux, uy := chordX/chord, chordY/chord
	h := math.Sqrt(math.Max(0, p.Radius*p.Radius-chord*chord/4))
	midX := (p.X1 + p.X2) / 2
	midY := (p.Y1 + p.Y2) / 2
	cx := midX - uy*h
	cy := midY + ux*h

	start := math.Atan2(p.Y1-cy, p.X1-cx)
	end := math.Atan2(p.Y2-cy, p.X2-cx)
	// Walk the short way around; the arc spans less than a half circle
	// because the radius is at least the chord length.
	delta := end - start
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}

	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + delta*float64(i)/float64(n)
		pts = append(pts, [2]float64{cx + math.Cos(a)*p.Radius, cy + math.Sin(a)*p.Radius})
	}
	return pts
}
