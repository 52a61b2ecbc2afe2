// Package render emits SVG for the current graph geometry. The renderer is
// stateless: given the same nodes, paths, theme, and transform it always
// produces the same document, so it can be called once per tick or once at
// convergence without caring which.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/npratt/dialogviz/internal/geometry"
	"github.com/npratt/dialogviz/internal/graph"
	"github.com/npratt/dialogviz/internal/theme"
)

const arrowMarkerID = "arrow"

// Options configures one render pass.
type Options struct {
	Width, Height float64
	Theme         theme.Theme
	Scale         float64 // viewport transform; zero Scale means 1
	TX, TY        float64
}

// SVG renders the diagram. Nodes and paths must be index-aligned with edges
// as produced by the geometry package; empty paths are skipped silently.
func SVG(opts Options, nodes []*graph.Node, edges []graph.Edge, paths []geometry.Path) string {
	t := opts.Theme
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", t.Background)

	// The marker is sized so its tip sits exactly on the path endpoint,
	// which the geometry layer has already pulled back to the node
	// boundary. refX at the far edge keeps the tip from overshooting.
	fmt.Fprintf(&b, `<defs><marker id="%s" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto"><path d="M0,0L10,5L0,10z" fill="%s"/></marker></defs>`+"\n",
		arrowMarkerID, t.Link)

	fmt.Fprintf(&b, `<g transform="translate(%g,%g) scale(%g)">`+"\n", opts.TX, opts.TY, scale)

	for i, e := range edges {
		if i >= len(paths) || paths[i].Empty {
			continue
		}
		p := paths[i]
		if p.Arc {
			// Sweep flag 1 bulges the arc to the left of travel, so
			// the two halves of a bidirectional pair diverge.
			fmt.Fprintf(&b, `<path d="M%.1f,%.1f A%.1f,%.1f 0 0 1 %.1f,%.1f" fill="none" stroke="%s" stroke-width="2" marker-end="url(#%s)"/>`+"\n",
				p.X1, p.Y1, p.Radius, p.Radius, p.X2, p.Y2, t.Link, arrowMarkerID)
		} else {
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" marker-end="url(#%s)"/>`+"\n",
				p.X1, p.Y1, p.X2, p.Y2, t.Link, arrowMarkerID)
		}
		if e.Label != "" {
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>`+"\n",
				p.LabelX, p.LabelY, t.LinkText, html.EscapeString(e.Label))
		}
	}

	for _, n := range nodes {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s" stroke="%s" stroke-width="3"/>`+"\n",
			n.X, n.Y, geometry.NodeRadius, t.NodeFill, t.NodeStroke)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="13" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			n.X, n.Y-geometry.NodeRadius-10, t.Text, html.EscapeString(n.Speaker))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle">&quot;%s&quot;</text>`+"\n",
			n.X, n.Y+geometry.NodeRadius+16, t.Text, html.EscapeString(graph.TruncateLabel(n.Text)))
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}
