package dialogue

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the wrapped file form: {"nodes": [...]}.
type document struct {
	Nodes []Node `json:"nodes"`
}

// Load reads a dialogue file from r. Both a bare JSON array of nodes and an
// object with a top-level "nodes" key are accepted.
func Load(r io.Reader) ([]Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dialogue: %w", err)
	}

	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		var doc document
		if docErr := json.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("parse dialogue: %w", err)
		}
		nodes = doc.Nodes
	}

	if err := Validate(nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// LoadFile reads and validates a dialogue file from disk.
func LoadFile(path string) ([]Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dialogue file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Load(file)
}

// Validate checks the structural requirements the rest of the system relies
// on: every node has a non-empty id and text, and ids are unique. Dangling
// choice targets are deliberately not checked here; the graph builder treats
// those as non-fatal.
func Validate(nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: missing id", i)
		}
		if n.Text == "" {
			return fmt.Errorf("node %q: missing text", n.ID)
		}
		if seen[n.ID] {
			return fmt.Errorf("node %q: duplicate id", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}
