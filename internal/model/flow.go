package model

// FlowDirection describes a flow relative to its component.
type FlowDirection int

const (
	// FlowInbound draws energy from the bus into the component.
	FlowInbound FlowDirection = iota
	// FlowOutbound feeds energy from the component into the bus.
	FlowOutbound
)

// Bound is a scalar-or-series value for the optional min/max/fix fields of a
// flow. Exactly one of Scalar or Series is set: a series bound references a
// named time series on the build's time base.
type Bound struct {
	Scalar *float64
	Series string
}

// ScalarBound returns a bound pinned to a single number.
func ScalarBound(v float64) *Bound {
	return &Bound{Scalar: &v}
}

// SeriesBound returns a bound that follows the named time series.
func SeriesBound(name string) *Bound {
	return &Bound{Series: name}
}

// IsSeries reports whether the bound references a time series.
func (b *Bound) IsSeries() bool { return b != nil && b.Series != "" }

// FlowSpec is one directed edge endpoint between a component and a bus.
// Exactly one flow per component is primary, i.e. carries the capacity
// descriptor; all other flows on the same component are secondary and their
// magnitude is resolved by the optimizer through conversion factors.
type FlowSpec struct {
	Bus       string
	Direction FlowDirection

	// Capacity is nil on secondary flows.
	Capacity *CapacityDescriptor

	// Optional bounds, attached verbatim only when the source row supplied
	// them. Nil means "not specified", never "zero".
	Min *Bound
	Max *Bound
	Fix *Bound

	// VariableCosts is the per-unit operating cost, when supplied.
	VariableCosts *float64
}

// Primary reports whether this flow carries the component's capacity bound.
func (f FlowSpec) Primary() bool { return f.Capacity != nil }
