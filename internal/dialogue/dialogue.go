// Package dialogue defines the narrative input model: a flat list of nodes,
// each carrying the text spoken at that point and the choices leading to
// other nodes.
package dialogue

// DefaultSpeaker is used when a node does not name a speaker.
const DefaultSpeaker = "Narrator"

// Choice is one outgoing option from a node. Condition is carried through
// untouched for downstream tooling; the visualization ignores it.
type Choice struct {
	Text      string `json:"text"`
	NextID    string `json:"nextId"`
	Condition string `json:"condition,omitempty"`
}

// Node is a single dialogue entry.
type Node struct {
	ID      string   `json:"id"`
	Speaker string   `json:"speaker,omitempty"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices,omitempty"`
}

// SpeakerOrDefault returns the node's speaker, falling back to DefaultSpeaker.
func (n Node) SpeakerOrDefault() string {
	if n.Speaker == "" {
		return DefaultSpeaker
	}
	return n.Speaker
}
