package chain

import (
	"errors"
	"fmt"
)

type nodeRuntime struct {
	procType string
	runtime  Runtime
}

// Graph owns a JSON-described processor graph: topology, node runtimes,
// and per-sample traversal state.
type Graph struct {
	ctx      Context
	registry *Registry

	graph  *compiledGraph
	nodes  map[string]*nodeRuntime
	values map[string]float64
}

// NewGraph creates a Graph with the given context and registry.
func NewGraph(ctx Context, registry *Registry) *Graph {
	return &Graph{
		ctx:      ctx,
		registry: registry,
		nodes:    make(map[string]*nodeRuntime),
	}
}

// SetContext updates the graph context (e.g., after a sample rate change)
// and reconfigures all node runtimes against it.
func (g *Graph) SetContext(ctx Context) error {
	g.ctx = ctx
	if g.graph == nil {
		return nil
	}

	return g.syncNodes(g.graph)
}

// Context returns the current graph context.
func (g *Graph) Context() Context {
	return g.ctx
}

// HasGraph returns true if a graph with valid I/O nodes is loaded.
func (g *Graph) HasGraph() bool {
	return g.graph != nil && hasRequiredIONodes(g.graph)
}

// Load parses a JSON graph string, compiles the topology, and synchronizes
// node runtimes. An empty string clears the graph.
func (g *Graph) Load(jsonGraph string) error {
	graph, err := parseGraph(jsonGraph)
	if err != nil {
		return err
	}

	err = g.syncNodes(graph)
	if err != nil {
		return err
	}

	g.graph = graph
	g.values = make(map[string]float64, len(graph.Nodes))

	return nil
}

// Clear drops the loaded graph and all node runtimes.
func (g *Graph) Clear() {
	g.graph = nil
	g.nodes = make(map[string]*nodeRuntime)
	g.values = nil
}

// Reset clears the processing state of every node runtime. Topology and
// configuration are kept.
func (g *Graph) Reset() {
	for _, rt := range g.nodes {
		rt.runtime.Reset()
	}
}

// NodeRuntime returns the Runtime for the given node ID, or nil.
func (g *Graph) NodeRuntime(nodeID string) Runtime {
	rt := g.nodes[nodeID]
	if rt == nil {
		return nil
	}

	return rt.runtime
}

// ProcessSample pushes one sample through the graph and returns the value
// arriving at the output node. Without a valid graph the input passes
// through unchanged.
func (g *Graph) ProcessSample(x float64) float64 {
	cg := g.graph
	if cg == nil || !hasRequiredIONodes(cg) {
		return x
	}

	for _, id := range cg.Order {
		if id == InputNodeID {
			g.values[id] = x
			continue
		}

		v := g.mixedInput(cg.Incoming[id])
		node := cg.Nodes[id]

		if !isStructuralNodeType(node.Type) && !node.Bypassed {
			if rt := g.nodes[id]; rt != nil {
				v = rt.runtime.ProcessSample(v)
			}
		}

		g.values[id] = v
	}

	return g.values[OutputNodeID]
}

// ProcessBlock runs ProcessSample over buf in-place.
func (g *Graph) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = g.ProcessSample(x)
	}
}

// mixedInput averages the outputs of all parent nodes. A node with no
// parents sees silence.
func (g *Graph) mixedInput(parents []string) float64 {
	if len(parents) == 0 {
		return 0
	}

	sum := 0.0
	for _, from := range parents {
		sum += g.values[from]
	}

	return sum / float64(len(parents))
}

// syncNodes synchronises runtime instances with the compiled graph topology.
// Nodes that are no longer present are removed; new or type-changed nodes
// are (re)created and configured.
func (g *Graph) syncNodes(graph *compiledGraph) error {
	if graph == nil {
		g.nodes = make(map[string]*nodeRuntime)
		return nil
	}

	if g.nodes == nil {
		g.nodes = map[string]*nodeRuntime{}
	}

	seen := map[string]struct{}{}

	for _, node := range graph.Nodes {
		if isStructuralNodeType(node.Type) {
			continue
		}

		seen[node.ID] = struct{}{}

		rt := g.nodes[node.ID]
		if rt == nil || rt.procType != node.Type {
			runtime, err := g.newRuntime(node.Type)
			if err != nil {
				if errors.Is(err, ErrUnknownProcessor) {
					continue
				}

				return err
			}

			if runtime == nil {
				continue
			}

			rt = &nodeRuntime{procType: node.Type, runtime: runtime}
			g.nodes[node.ID] = rt
		}

		err := rt.runtime.Configure(g.ctx, node)
		if err != nil {
			return fmt.Errorf("chain: configure node %q (%s): %w", node.ID, node.Type, err)
		}
	}

	for id := range g.nodes {
		if _, ok := seen[id]; !ok {
			delete(g.nodes, id)
		}
	}

	return nil
}

func (g *Graph) newRuntime(procType string) (Runtime, error) {
	factory := g.registry.Lookup(procType)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcessor, procType)
	}

	return factory(g.ctx)
}

func hasRequiredIONodes(cg *compiledGraph) bool {
	if cg == nil {
		return false
	}

	if _, ok := cg.Nodes[InputNodeID]; !ok {
		return false
	}

	if _, ok := cg.Nodes[OutputNodeID]; !ok {
		return false
	}

	return true
}
