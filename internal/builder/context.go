package builder

import (
	"fmt"

	"github.com/vk/enflow/internal/busreg"
	"github.com/vk/enflow/internal/listfield"
	"github.com/vk/enflow/internal/model"
)

// Diagnostic is a non-fatal observation recorded during the build: an
// isolated bus, a zero-cost investment, a numeric fallback. Diagnostics are
// attached to the build result and never interrupt construction.
type Diagnostic struct {
	Table   string
	Label   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Label == "" {
		return fmt.Sprintf("%s: %s", d.Table, d.Message)
	}
	return fmt.Sprintf("%s %q: %s", d.Table, d.Label, d.Message)
}

// BuildContext holds the shared state of one build: the time axis, the bus
// registry, and the two accumulators (node list and diagnostics). It is owned
// exclusively by a single Build invocation and never reused across builds.
type BuildContext struct {
	TimeBase model.TimeBase
	Buses    *busreg.Registry
	Splitter listfield.Splitter

	nodes []model.Node
	diags []Diagnostic
}

func newBuildContext(tb model.TimeBase, buses *busreg.Registry, split listfield.Splitter) *BuildContext {
	return &BuildContext{TimeBase: tb, Buses: buses, Splitter: split}
}

// addNode appends a finished node to the growing node list.
func (bc *BuildContext) addNode(n model.Node) {
	bc.nodes = append(bc.nodes, n)
}

// warn records a diagnostic.
func (bc *BuildContext) warn(tableName, label, message string) {
	bc.diags = append(bc.diags, Diagnostic{Table: tableName, Label: label, Message: message})
}

// bus resolves a referenced bus label against the registry.
func (bc *BuildContext) bus(tableName, label, field, busLabel string) (*model.Bus, error) {
	b, ok := bc.Buses.Bus(busLabel)
	if !ok {
		return nil, &UnknownBusReferenceError{Table: tableName, Label: label, Field: field, Bus: busLabel}
	}
	return b, nil
}
