package flowsheet

import "encoding/json"

// PayloadNode is the node shape the simulation service accepts.
type PayloadNode struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
}

// PayloadEdge is the edge shape the simulation service accepts.
type PayloadEdge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle"`
	TargetHandle string `json:"targetHandle"`
}

// SubmissionPayload is the exact shape handed to the simulation service.
type SubmissionPayload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
}

// SubmissionPayload serializes the graph for submission, in insertion order.
// Labels, positions and material assignments are editor state and are not
// included.
func (g *Graph) SubmissionPayload() SubmissionPayload {
	payload := SubmissionPayload{
		Nodes: make([]PayloadNode, 0, len(g.nodes)),
		Edges: make([]PayloadEdge, 0, len(g.edges)),
	}
	for _, n := range g.nodes {
		params := make(map[string]any, len(n.Parameters))
		for k, v := range n.Parameters {
			params[k] = v
		}
		payload.Nodes = append(payload.Nodes, PayloadNode{
			ID:         n.ID,
			Type:       n.Type,
			Parameters: params,
		})
	}
	for _, e := range g.edges {
		payload.Edges = append(payload.Edges, PayloadEdge{
			ID:           e.ID,
			Source:       e.SourceNode,
			Target:       e.TargetNode,
			SourceHandle: e.SourcePort,
			TargetHandle: e.TargetPort,
		})
	}
	return payload
}

// snapshot is the serialized payload used for dirty tracking. Map keys are
// sorted by encoding/json, so equal graphs produce equal snapshots.
func (g *Graph) snapshot() []byte {
	data, err := json.Marshal(g.SubmissionPayload())
	if err != nil {
		// A payload of plain maps and strings cannot fail to marshal.
		return nil
	}
	return data
}

// Dirty reports whether the graph differs from its last submitted or saved
// state.
func (g *Graph) Dirty() bool {
	return string(g.snapshot()) != string(g.cleanSnapshot)
}

// MarkClean records the current graph as the submitted/saved baseline for
// dirty tracking.
func (g *Graph) MarkClean() {
	g.cleanSnapshot = g.snapshot()
}
