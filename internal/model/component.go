package model

// Source produces energy onto exactly one bus. Its single output flow is
// primary.
type Source struct {
	label  string
	Output FlowSpec
}

// NewSource creates a source with its primary output flow.
func NewSource(label string, output FlowSpec) *Source {
	return &Source{label: label, Output: output}
}

func (s *Source) Label() string    { return s.label }
func (s *Source) Kind() NodeKind   { return KindSource }
func (s *Source) Flows() []FlowSpec { return []FlowSpec{s.Output} }

// PrimaryCapacity implements CapacityHolder.
func (s *Source) PrimaryCapacity() *CapacityDescriptor { return s.Output.Capacity }

// Sink consumes energy from exactly one bus. Its single input flow carries the
// capacity descriptor, unless a fixed profile pins the flow instead, in which
// case Capacity is nil and Fix references the profile.
type Sink struct {
	label string
	Input FlowSpec
}

// NewSink creates a sink with its input flow.
func NewSink(label string, input FlowSpec) *Sink {
	return &Sink{label: label, Input: input}
}

func (s *Sink) Label() string    { return s.label }
func (s *Sink) Kind() NodeKind   { return KindSink }
func (s *Sink) Flows() []FlowSpec { return []FlowSpec{s.Input} }

// PrimaryCapacity implements CapacityHolder. It is nil for profile-pinned sinks.
func (s *Sink) PrimaryCapacity() *CapacityDescriptor { return s.Input.Capacity }

// Converter transforms energy between N input buses and M output buses. The
// first output flow is primary; every other flow is scaled relative to it via
// the conversion factor of its bus.
type Converter struct {
	label   string
	Inputs  []FlowSpec
	Outputs []FlowSpec

	// InputFactors and OutputFactors map each bus label on the respective side
	// to its conversion factor. Each map has exactly one entry per bus.
	InputFactors  map[string]float64
	OutputFactors map[string]float64
}

// NewConverter creates a converter from its flows and per-bus factors.
func NewConverter(label string, inputs, outputs []FlowSpec, inFactors, outFactors map[string]float64) *Converter {
	return &Converter{
		label:         label,
		Inputs:        inputs,
		Outputs:       outputs,
		InputFactors:  inFactors,
		OutputFactors: outFactors,
	}
}

func (c *Converter) Label() string  { return c.label }
func (c *Converter) Kind() NodeKind { return KindConverter }

func (c *Converter) Flows() []FlowSpec {
	flows := make([]FlowSpec, 0, len(c.Inputs)+len(c.Outputs))
	flows = append(flows, c.Inputs...)
	flows = append(flows, c.Outputs...)
	return flows
}

// PrimaryCapacity implements CapacityHolder; the descriptor lives on the first
// output flow.
func (c *Converter) PrimaryCapacity() *CapacityDescriptor {
	if len(c.Outputs) == 0 {
		return nil
	}
	return c.Outputs[0].Capacity
}

// StorageParams are the optional efficiency, loss and level parameters of a
// storage. Nil fields were not supplied by the row; no defaults are
// synthesized.
type StorageParams struct {
	MaxLevel          *float64
	MinLevel          *float64
	InflowEfficiency  *float64
	OutflowEfficiency *float64
	LossRate          *float64
	InitialLevel      *float64
}

// Storage holds energy on a single bus. Its capacity descriptor bounds the
// stored volume, not a flow rate; the inbound and outbound flows carry no
// individual capacity.
type Storage struct {
	label    string
	busLabel string
	Capacity CapacityDescriptor
	Inflow   FlowSpec
	Outflow  FlowSpec
	Params   StorageParams
}

// NewStorage creates a storage on the given bus.
func NewStorage(label, busLabel string, capacity CapacityDescriptor, params StorageParams) *Storage {
	return &Storage{
		label:    label,
		busLabel: busLabel,
		Capacity: capacity,
		Inflow:   FlowSpec{Bus: busLabel, Direction: FlowInbound},
		Outflow:  FlowSpec{Bus: busLabel, Direction: FlowOutbound},
		Params:   params,
	}
}

func (s *Storage) Label() string  { return s.label }
func (s *Storage) BusLabel() string { return s.busLabel }
func (s *Storage) Kind() NodeKind { return KindStorage }
func (s *Storage) Flows() []FlowSpec { return []FlowSpec{s.Inflow, s.Outflow} }

// PrimaryCapacity implements CapacityHolder; for storages the descriptor bounds
// the storage volume.
func (s *Storage) PrimaryCapacity() *CapacityDescriptor { return &s.Capacity }
