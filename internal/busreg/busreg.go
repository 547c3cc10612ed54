// Package busreg discovers every bus label referenced across the component
// tables, materializes exactly one bus node per unique label, and reports
// connectivity health over the finished graph.
package busreg

import (
	"context"
	"sort"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/listfield"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// EmptyBusSetError is returned when no bus label could be discovered across
// all tables. A network without a single balancing point cannot be built.
type EmptyBusSetError struct{}

func (e *EmptyBusSetError) Error() string {
	return "no bus labels discovered in any component table"
}

// Discover scans every component table for bus references and returns the
// deduplicated label set in sorted order. Sources reference buses through
// their output field, sinks through input, storages through bus, and
// converters through the delimited inputs/outputs lists; the explicit buses
// table contributes its row labels directly.
func Discover(ctx context.Context, tables table.Set, split listfield.Splitter) []string {
	logger := ctxlog.FromContext(ctx)
	seen := make(map[string]struct{})

	collect := func(raw string) {
		for _, label := range split.Split(raw) {
			seen[label] = struct{}{}
		}
	}

	for _, row := range tables.Table(table.Buses).Rows() {
		seen[row.Label] = struct{}{}
	}
	for _, row := range tables.Table(table.Sources).Rows() {
		collect(row.String("output"))
	}
	for _, row := range tables.Table(table.Sinks).Rows() {
		collect(row.String("input"))
	}
	for _, row := range tables.Table(table.Converters).Rows() {
		collect(row.String("inputs"))
		collect(row.String("outputs"))
	}
	for _, row := range tables.Table(table.Storages).Rows() {
		collect(row.String("bus"))
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	logger.Debug("bus discovery complete", "count", len(labels), "labels", labels)
	return labels
}

// Registry owns the materialized bus nodes of one build.
type Registry struct {
	buses  map[string]*model.Bus
	labels []string
}

// Materialize creates one bus per label, in label-sorted order for
// determinism. An empty label set fails with EmptyBusSetError.
func Materialize(ctx context.Context, labels []string) (*Registry, error) {
	if len(labels) == 0 {
		return nil, &EmptyBusSetError{}
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	reg := &Registry{buses: make(map[string]*model.Bus, len(sorted))}
	for _, label := range sorted {
		if _, exists := reg.buses[label]; exists {
			continue
		}
		reg.buses[label] = model.NewBus(label)
		reg.labels = append(reg.labels, label)
	}

	ctxlog.FromContext(ctx).Debug("buses materialized", "count", len(reg.labels))
	return reg, nil
}

// Bus returns the bus with the given label.
func (r *Registry) Bus(label string) (*model.Bus, bool) {
	b, ok := r.buses[label]
	return b, ok
}

// Labels returns all bus labels in sorted order.
func (r *Registry) Labels() []string { return r.labels }

// Len returns the number of buses.
func (r *Registry) Len() int { return len(r.labels) }

// All returns the buses in label-sorted order.
func (r *Registry) All() []*model.Bus {
	buses := make([]*model.Bus, 0, len(r.labels))
	for _, label := range r.labels {
		buses = append(buses, r.buses[label])
	}
	return buses
}
