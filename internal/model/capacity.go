package model

// CapacityKind tags the two variants of a CapacityDescriptor.
type CapacityKind int

const (
	// CapacityExisting is a fixed, already-built capacity.
	CapacityExisting CapacityKind = iota
	// CapacityInvestment is an optimizable capacity bound by [Minimum, Maximum]
	// with an annualized per-unit cost.
	CapacityInvestment
)

// CapacityDescriptor describes how the magnitude of a primary flow (or a
// storage volume) is determined. It is a tagged union: for CapacityExisting
// only Value is meaningful; for CapacityInvestment the bounds, EPCosts and the
// optional existing floor apply.
type CapacityDescriptor struct {
	Kind CapacityKind

	// Value is the fixed capacity of the Existing variant.
	Value float64

	// Maximum and Minimum bound the optimizer's capacity choice.
	Maximum float64
	Minimum float64

	// EPCosts is the annualized cost per unit of installed capacity.
	EPCosts float64

	// Existing is an already-built floor below the optimized capacity. It is
	// only meaningful when HasExisting is set; a zero floor is omitted entirely
	// because its mere presence changes how the optimizer treats the bound.
	Existing    float64
	HasExisting bool
}

// ExistingCapacity returns the fixed-capacity variant.
func ExistingCapacity(value float64) CapacityDescriptor {
	return CapacityDescriptor{Kind: CapacityExisting, Value: value}
}
