package builder

import (
	"context"
	"fmt"

	"github.com/vk/enflow/internal/busreg"
	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/listfield"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// Option adjusts how Build assembles the graph.
type Option func(*options)

type options struct {
	split listfield.Splitter
}

// WithSplitter overrides the delimiter set used for multi-value cells.
func WithSplitter(split listfield.Splitter) Option {
	return func(o *options) { o.split = split }
}

// Result carries the assembled graph together with everything Build learned
// about it on the way: per-bus connectivity and the non-fatal diagnostics.
type Result struct {
	Graph        *model.Graph
	Connectivity busreg.Report
	Diagnostics  []Diagnostic
}

// Build assembles a validated flow graph from the row tables. Structural
// defects (unknown bus references, missing capacity, factor count mismatches)
// abort with a typed error before any node is registered on the graph;
// recoverable oddities are collected as diagnostics on the result.
func Build(ctx context.Context, tables table.Set, tb model.TimeBase, opts ...Option) (*Result, error) {
	o := options{split: listfield.NewSplitter()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx)

	labels := busreg.Discover(ctx, tables, o.split)
	registry, err := busreg.Materialize(ctx, labels)
	if err != nil {
		return nil, fmt.Errorf("materializing buses: %w", err)
	}
	logger.Debug("bus set materialized", "buses", registry.Len())

	bc := newBuildContext(tb, registry, o.split)
	for _, b := range registry.All() {
		bc.addNode(b)
	}

	if err := bc.assembleSources(ctx, tables.Table(table.Sources)); err != nil {
		return nil, err
	}
	if err := bc.assembleSinks(ctx, tables.Table(table.Sinks)); err != nil {
		return nil, err
	}
	if err := bc.assembleConverters(ctx, tables.Table(table.Converters)); err != nil {
		return nil, err
	}
	if err := bc.assembleStorages(ctx, tables.Table(table.Storages)); err != nil {
		return nil, err
	}

	g := model.NewGraph(tb)
	for _, n := range bc.nodes {
		if err := g.Add(n); err != nil {
			return nil, err
		}
	}

	conn := busreg.Connectivity(g)
	for _, busLabel := range g.BusLabels() {
		stats := conn.PerBus[busLabel]
		switch {
		case stats.Total() == 0:
			bc.warn(table.Buses, busLabel, "bus has no connected flows")
		case stats.Inbound == 0:
			bc.warn(table.Buses, busLabel, "bus is drawn from but nothing feeds it")
		case stats.Outbound == 0:
			bc.warn(table.Buses, busLabel, "bus is fed but nothing draws from it")
		}
	}

	logger.Info("graph assembled",
		"run_id", g.RunID(),
		"nodes", g.Len(),
		"buses", registry.Len(),
		"isolated_buses", conn.IsolatedCount(),
		"diagnostics", len(bc.diags),
	)
	return &Result{Graph: g, Connectivity: conn, Diagnostics: bc.diags}, nil
}
