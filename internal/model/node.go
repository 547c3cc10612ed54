package model

// NodeKind distinguishes the kinds of nodes that can appear in the graph.
type NodeKind int

const (
	KindBus NodeKind = iota
	KindSource
	KindSink
	KindConverter
	KindStorage
)

// String returns the lowercase table-style name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindBus:
		return "bus"
	case KindSource:
		return "source"
	case KindSink:
		return "sink"
	case KindConverter:
		return "converter"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Node is any vertex of the finished graph: a bus or a component.
type Node interface {
	Label() string
	Kind() NodeKind
}

// FlowCarrier is a node with attached flows, i.e. any component. Buses do not
// carry flows themselves; they are referenced by the flows of components.
type FlowCarrier interface {
	Node
	Flows() []FlowSpec
}

// CapacityHolder is a component that carries a capacity descriptor, either on
// its primary flow or, for storages, on the node itself. A sink whose input is
// pinned by a fixed profile returns nil.
type CapacityHolder interface {
	PrimaryCapacity() *CapacityDescriptor
}
