// Package graph builds the layout graph consumed by the force simulation:
// positioned nodes plus directed, labeled edges with bidirectional pairs
// detected up front.
package graph

// Node is a dialogue entry placed in layout space. X and Y are owned by the
// simulation once it starts; FX and FY, when set, pin the node at an exact
// position and are written only by the interaction layer.
type Node struct {
	ID      string
	Speaker string
	Text    string
	X, Y    float64
	FX, FY  *float64
}

// Pinned reports whether the node is held at a fixed position.
func (n *Node) Pinned() bool {
	return n.FX != nil && n.FY != nil
}

// Pin fixes the node at (x, y). The simulation keeps it exactly there until
// Unpin is called.
func (n *Node) Pin(x, y float64) {
	n.FX = &x
	n.FY = &y
}

// Unpin releases the node back to free motion.
func (n *Node) Unpin() {
	n.FX = nil
	n.FY = nil
}

// Edge is a directed choice-to-target relationship between two nodes.
type Edge struct {
	Source        string
	Target        string
	Label         string
	Bidirectional bool
}

// DiagnosticKind classifies non-fatal problems found while building.
type DiagnosticKind int

const (
	// DiagDanglingEdge means a choice pointed at a node id that does not
	// exist; the edge was dropped.
	DiagDanglingEdge DiagnosticKind = iota
)

// String returns a string representation of the DiagnosticKind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagDanglingEdge:
		return "dangling-edge"
	default:
		return "unknown"
	}
}

// Diagnostic is a structural warning surfaced to the caller. Diagnostics
// never abort a build; the affected element is simply omitted.
type Diagnostic struct {
	Kind    DiagnosticKind
	Source  string
	Target  string
	Message string
}
