package builder

import (
	"context"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// assembleSources builds one source node per row. A source requires exactly
// one output bus and a capacity source for its primary output flow.
func (bc *BuildContext) assembleSources(ctx context.Context, sources *table.Table) error {
	logger := ctxlog.FromContext(ctx)
	for _, row := range sources.Rows() {
		buses := bc.Splitter.Split(row.String("output"))
		if len(buses) != 1 {
			return &BusCardinalityError{Table: sources.Name, Label: row.Label, Field: "output", Want: "exactly one", Got: len(buses)}
		}
		bus, err := bc.bus(sources.Name, row.Label, "output", buses[0])
		if err != nil {
			return err
		}

		capacity, err := bc.primaryCapacity(ctx, sources.Name, row)
		if err != nil {
			return err
		}
		if capacity == nil {
			return &CapacityConfigError{
				Table:  sources.Name,
				Label:  row.Label,
				Field:  "existing",
				Detail: "source needs existing > 0 or investment=true for its output flow",
			}
		}

		min, max, fix, variableCosts := bc.flowBounds(sources.Name, row)
		bc.addNode(model.NewSource(row.Label, model.FlowSpec{
			Bus:           bus.Label(),
			Direction:     model.FlowOutbound,
			Capacity:      capacity,
			Min:           min,
			Max:           max,
			Fix:           fix,
			VariableCosts: variableCosts,
		}))
		logger.Debug("source assembled", "label", row.Label, "bus", bus.Label())
	}
	return nil
}
