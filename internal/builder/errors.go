package builder

import "fmt"

// UnknownBusReferenceError reports a component referencing a bus label that
// was not present in the discovered bus set.
type UnknownBusReferenceError struct {
	Table string
	Label string
	Field string
	Bus   string
}

func (e *UnknownBusReferenceError) Error() string {
	return fmt.Sprintf("table %q, row %q, field %q: references unknown bus %q", e.Table, e.Label, e.Field, e.Bus)
}

// CapacityConfigError reports a primary flow that has neither a valid
// existing capacity nor a valid investment descriptor (and, for sinks, no
// qualifying fixed profile).
type CapacityConfigError struct {
	Table  string
	Label  string
	Field  string
	Detail string
}

func (e *CapacityConfigError) Error() string {
	return fmt.Sprintf("table %q, row %q, field %q: %s", e.Table, e.Label, e.Field, e.Detail)
}

// FactorCountMismatchError reports a conversion-factor list whose length
// disagrees with the bus list on the same side and cannot be broadcast.
type FactorCountMismatchError struct {
	Table   string
	Label   string
	Field   string
	Factors int
	Buses   int
}

func (e *FactorCountMismatchError) Error() string {
	return fmt.Sprintf("table %q, row %q, field %q: %d conversion factors for %d buses (only an exact match or a single scalar is accepted)",
		e.Table, e.Label, e.Field, e.Factors, e.Buses)
}

// BusCardinalityError reports a bus-reference field with the wrong number of
// buses for the component kind, e.g. a source with two output buses.
type BusCardinalityError struct {
	Table string
	Label string
	Field string
	Want  string
	Got   int
}

func (e *BusCardinalityError) Error() string {
	return fmt.Sprintf("table %q, row %q, field %q: requires %s bus reference, got %d", e.Table, e.Label, e.Field, e.Want, e.Got)
}
