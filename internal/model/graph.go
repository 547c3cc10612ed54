package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Graph is the finished flow graph: the full node list in deterministic build
// order, a label-to-bus lookup, and the declared time base. It is the artifact
// handed to the solver adapter and to exporters, which treat it read-only.
type Graph struct {
	runID    uuid.UUID
	timeBase TimeBase
	nodes    []Node
	buses    map[string]*Bus
	byLabel  map[string]Node
}

// NewGraph creates an empty graph over the given time base. Each graph gets a
// fresh run ID for report attribution.
func NewGraph(tb TimeBase) *Graph {
	return &Graph{
		runID:    uuid.New(),
		timeBase: tb,
		buses:    make(map[string]*Bus),
		byLabel:  make(map[string]Node),
	}
}

// RunID returns the unique identifier of this build.
func (g *Graph) RunID() uuid.UUID { return g.runID }

// TimeBase returns the declared time axis.
func (g *Graph) TimeBase() TimeBase { return g.timeBase }

// Add registers a node. Labels must be unique across all node kinds.
func (g *Graph) Add(n Node) error {
	if _, exists := g.byLabel[n.Label()]; exists {
		return fmt.Errorf("node %q already registered in graph", n.Label())
	}
	g.nodes = append(g.nodes, n)
	g.byLabel[n.Label()] = n
	if bus, ok := n.(*Bus); ok {
		g.buses[bus.Label()] = bus
	}
	return nil
}

// Nodes returns all nodes in build order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Len returns the total node count.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given label.
func (g *Graph) Node(label string) (Node, bool) {
	n, ok := g.byLabel[label]
	return n, ok
}

// Bus returns the bus with the given label.
func (g *Graph) Bus(label string) (*Bus, bool) {
	b, ok := g.buses[label]
	return b, ok
}

// BusLabels returns all bus labels in sorted order.
func (g *Graph) BusLabels() []string {
	labels := make([]string, 0, len(g.buses))
	for label := range g.buses {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Components returns all flow-carrying nodes in build order.
func (g *Graph) Components() []FlowCarrier {
	components := make([]FlowCarrier, 0, len(g.nodes))
	for _, n := range g.nodes {
		if fc, ok := n.(FlowCarrier); ok {
			components = append(components, fc)
		}
	}
	return components
}
