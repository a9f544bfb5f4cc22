package chain

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// InputNodeID is the reserved node ID for the graph input.
	InputNodeID = "_input"
	// OutputNodeID is the reserved node ID for the graph output.
	OutputNodeID = "_output"
)

// graphNode is a JSON-serializable node in the processor graph.
type graphNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Bypassed bool   `json:"bypassed"`
	Params   any    `json:"params"`
}

// graphConnection is a JSON-serializable connection between two graph nodes.
type graphConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// graphState is the root JSON structure for the processor graph.
type graphState struct {
	Nodes       []graphNode       `json:"nodes"`
	Connections []graphConnection `json:"connections"`
}

// compiledGraph holds the compiled processor graph with adjacency info
// and a topologically sorted traversal order.
type compiledGraph struct {
	Nodes    map[string]Params
	Incoming map[string][]string
	Outgoing map[string][]string
	Order    []string
}

// parseGraph parses the JSON graph and performs a topological sort
// (Kahn's algorithm). Returns an empty graph for an empty string.
func parseGraph(raw string) (*compiledGraph, error) {
	if raw == "" {
		return &compiledGraph{}, nil
	}

	var state graphState

	err := json.Unmarshal([]byte(raw), &state)
	if err != nil {
		return nil, fmt.Errorf("invalid graph json: %w", err)
	}

	nodes := make(map[string]Params, len(state.Nodes))
	for _, n := range state.Nodes {
		if n.ID == "" || n.Type == "" {
			continue
		}

		num, str := parseNodeParams(n.Params)
		nodes[n.ID] = Params{
			ID:       n.ID,
			Type:     n.Type,
			Bypassed: n.Bypassed,
			Num:      num,
			Str:      str,
		}
	}

	if _, ok := nodes[InputNodeID]; !ok {
		return &compiledGraph{}, nil
	}

	if _, ok := nodes[OutputNodeID]; !ok {
		return &compiledGraph{}, nil
	}

	incoming := make(map[string][]string, len(nodes))
	outgoing := make(map[string][]string, len(nodes))

	indegree := make(map[string]int, len(nodes))
	for id := range nodes {
		incoming[id] = nil
		outgoing[id] = nil
		indegree[id] = 0
	}

	for _, c := range state.Connections {
		if c.From == "" || c.To == "" || c.From == c.To {
			continue
		}

		if _, ok := nodes[c.From]; !ok {
			continue
		}

		if _, ok := nodes[c.To]; !ok {
			continue
		}

		outgoing[c.From] = append(outgoing[c.From], c.To)
		incoming[c.To] = append(incoming[c.To], c.From)
		indegree[c.To]++
	}

	queue := make([]string, 0, len(nodes))

	for id, d := range indegree {
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, id)
		for _, next := range outgoing[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, errors.New("invalid graph: contains cycle")
	}

	return &compiledGraph{
		Nodes:    nodes,
		Incoming: incoming,
		Outgoing: outgoing,
		Order:    order,
	}, nil
}

// parseNodeParams extracts numeric and string parameters from a raw JSON params value.
func parseNodeParams(raw any) (map[string]float64, map[string]string) {
	num := map[string]float64{}
	str := map[string]string{}

	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return num, str
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case float32:
			num[k] = float64(t)
		case int:
			num[k] = float64(t)
		case int64:
			num[k] = float64(t)
		case string:
			str[k] = t
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num, str
}

// isStructuralNodeType returns true for I/O and routing nodes that don't need a runtime.
func isStructuralNodeType(nodeType string) bool {
	return nodeType == InputNodeID ||
		nodeType == OutputNodeID ||
		nodeType == "split" ||
		nodeType == "sum"
}
