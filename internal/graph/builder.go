package graph

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/npratt/dialogviz/internal/dialogue"
)

const (
	// JitterRadius bounds the random offset of initial node positions
	// around the viewport center. The jitter breaks symmetry so the
	// simulation never starts with perfectly stacked nodes.
	JitterRadius = 50.0

	// LabelLimit is the display length at which node text and edge labels
	// are cut and given an ellipsis.
	LabelLimit = 25

	// Ellipsis marks truncated display text.
	Ellipsis = "…"
)

// TruncateLabel cuts s to LabelLimit runes plus an ellipsis. Text at or
// under the limit is returned unmodified.
func TruncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= LabelLimit {
		return s
	}
	return string(runes[:LabelLimit]) + Ellipsis
}

// Builder converts validated dialogue nodes into a layout graph. The random
// source seeds the initial jitter; layouts are structurally reproducible
// (same nodes, edges, and flags) but not byte-reproducible unless a seeded
// source is supplied.
type Builder struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewBuilder creates a Builder. A nil rng gets a time-seeded source; a nil
// logger discards log output.
func NewBuilder(logger *slog.Logger, rng *rand.Rand) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{logger: logger, rng: rng}
}

// Build creates fresh layout nodes and edges for the given viewport. Choices
// whose target id has no matching node are dropped with a diagnostic, never
// an error. Edge order follows the input node and choice order so rendering
// and hit-testing are reproducible for a given input.
func (b *Builder) Build(nodes []dialogue.Node, width, height float64) ([]*Node, []Edge, []Diagnostic) {
	cx, cy := width/2, height/2

	built := make([]*Node, 0, len(nodes))
	index := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		angle := b.rng.Float64() * 2 * math.Pi
		radius := b.rng.Float64() * JitterRadius
		built = append(built, &Node{
			ID:      n.ID,
			Speaker: n.SpeakerOrDefault(),
			Text:    n.Text,
			X:       cx + math.Cos(angle)*radius,
			Y:       cy + math.Sin(angle)*radius,
		})
		index[n.ID] = true
	}

	// First pass resolves targets and records every surviving direction so
	// bidirectional pairs can be flagged in one sweep afterwards.
	type pair struct{ s, t string }
	present := make(map[pair]bool)
	var edges []Edge
	var diags []Diagnostic
	for _, n := range nodes {
		for _, c := range n.Choices {
			if !index[c.NextID] {
				d := Diagnostic{
					Kind:    DiagDanglingEdge,
					Source:  n.ID,
					Target:  c.NextID,
					Message: fmt.Sprintf("choice %q on node %q points at missing node %q", c.Text, n.ID, c.NextID),
				}
				diags = append(diags, d)
				b.logger.Warn("dropping edge to missing node",
					"source", n.ID, "target", c.NextID, "choice", c.Text)
				continue
			}
			edges = append(edges, Edge{
				Source: n.ID,
				Target: c.NextID,
				Label:  TruncateLabel(c.Text),
			})
			present[pair{n.ID, c.NextID}] = true
		}
	}

	for i := range edges {
		if present[pair{edges[i].Target, edges[i].Source}] {
			edges[i].Bidirectional = true
		}
	}

	return built, edges, diags
}
