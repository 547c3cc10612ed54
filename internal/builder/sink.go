package builder

import (
	"context"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// assembleSinks builds one sink node per row. A sink requires exactly one
// input bus. The capacity rule is the same as for sources, with one
// relaxation: a fixed profile on the input flow pins its magnitude and waives
// the capacity descriptor. Investment, existing and profile are alternatives,
// tried in that order.
func (bc *BuildContext) assembleSinks(ctx context.Context, sinks *table.Table) error {
	logger := ctxlog.FromContext(ctx)
	for _, row := range sinks.Rows() {
		buses := bc.Splitter.Split(row.String("input"))
		if len(buses) != 1 {
			return &BusCardinalityError{Table: sinks.Name, Label: row.Label, Field: "input", Want: "exactly one", Got: len(buses)}
		}
		bus, err := bc.bus(sinks.Name, row.Label, "input", buses[0])
		if err != nil {
			return err
		}

		capacity, err := bc.primaryCapacity(ctx, sinks.Name, row)
		if err != nil {
			return err
		}
		min, max, fix, variableCosts := bc.flowBounds(sinks.Name, row)
		if capacity == nil && fix == nil {
			return &CapacityConfigError{
				Table:  sinks.Name,
				Label:  row.Label,
				Field:  "existing",
				Detail: "sink needs existing > 0, investment=true, or a fix profile for its input flow",
			}
		}
		if capacity != nil && fix != nil {
			// Capacity wins; the profile would over-determine the flow.
			bc.warn(sinks.Name, row.Label, "both a capacity source and a fix profile supplied; the fix profile is kept but capacity governs sizing")
		}

		bc.addNode(model.NewSink(row.Label, model.FlowSpec{
			Bus:           bus.Label(),
			Direction:     model.FlowInbound,
			Capacity:      capacity,
			Min:           min,
			Max:           max,
			Fix:           fix,
			VariableCosts: variableCosts,
		}))
		logger.Debug("sink assembled", "label", row.Label, "bus", bus.Label(), "profile_pinned", capacity == nil)
	}
	return nil
}
