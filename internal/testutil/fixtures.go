// Package testutil provides shared dialogue fixtures for tests.
package testutil

import "github.com/npratt/dialogviz/internal/dialogue"

// TwoNodeLoop returns the smallest bidirectional dialogue: a and b point at
// each other.
func TwoNodeLoop() []dialogue.Node {
	return []dialogue.Node{
		{ID: "a", Text: "hi", Choices: []dialogue.Choice{{Text: "go", NextID: "b"}}},
		{ID: "b", Text: "bye", Choices: []dialogue.Choice{{Text: "back", NextID: "a"}}},
	}
}

// GhostTarget returns one node whose single choice points at a node that
// does not exist.
func GhostTarget() []dialogue.Node {
	return []dialogue.Node{
		{ID: "a", Text: "hi", Choices: []dialogue.Choice{{Text: "onward", NextID: "ghost"}}},
	}
}

// SmallTree returns a branching five-node dialogue with one return edge, so
// it contains straight edges, a bidirectional pair, and a leaf.
func SmallTree() []dialogue.Node {
	return []dialogue.Node{
		{ID: "start", Speaker: "Guide", Text: "Welcome to the village", Choices: []dialogue.Choice{
			{Text: "Ask about the well", NextID: "well"},
			{Text: "Head to the market", NextID: "market"},
		}},
		{ID: "well", Speaker: "Guide", Text: "The well ran dry last spring", Choices: []dialogue.Choice{
			{Text: "Back", NextID: "start"},
		}},
		{ID: "market", Text: "Stalls line the muddy square", Choices: []dialogue.Choice{
			{Text: "Talk to the baker", NextID: "baker"},
			{Text: "Leave", NextID: "end"},
		}},
		{ID: "baker", Speaker: "Baker", Text: "Fresh loaves, two coppers apiece and worth every one", Choices: []dialogue.Choice{
			{Text: "Leave", NextID: "end"},
		}},
		{ID: "end", Text: "You walk on"},
	}
}

// SmallTreeJSON is SmallTree in the wrapped file form accepted by the
// dialogue loader.
const SmallTreeJSON = `{
  "nodes": [
    {"id": "start", "speaker": "Guide", "text": "Welcome to the village", "choices": [
      {"text": "Ask about the well", "nextId": "well"},
      {"text": "Head to the market", "nextId": "market"}
    ]},
    {"id": "well", "speaker": "Guide", "text": "The well ran dry last spring", "choices": [
      {"text": "Back", "nextId": "start"}
    ]},
    {"id": "market", "text": "Stalls line the muddy square", "choices": [
      {"text": "Talk to the baker", "nextId": "baker"},
      {"text": "Leave", "nextId": "end"}
    ]},
    {"id": "baker", "speaker": "Baker", "text": "Fresh loaves, two coppers apiece and worth every one", "choices": [
      {"text": "Leave", "nextId": "end"}
    ]},
    {"id": "end", "text": "You walk on"}
  ]
}`
