package model

// Bus is a labeled balancing point for one energy or material carrier. Buses
// are created once per unique label by the bus registry and are immutable.
type Bus struct {
	label string
}

// NewBus creates a bus with the given label.
func NewBus(label string) *Bus {
	return &Bus{label: label}
}

// Label returns the unique bus label.
func (b *Bus) Label() string { return b.label }

// Kind implements Node.
func (b *Bus) Kind() NodeKind { return KindBus }
