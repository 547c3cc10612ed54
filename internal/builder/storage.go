package builder

import (
	"context"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// assembleStorages builds one storage node per row. A storage attaches to
// exactly one bus and always carries a capacity descriptor on the node
// itself rather than on a flow.
func (bc *BuildContext) assembleStorages(ctx context.Context, storages *table.Table) error {
	logger := ctxlog.FromContext(ctx)
	for _, row := range storages.Rows() {
		busLabels := bc.Splitter.Split(row.String("bus"))
		if len(busLabels) != 1 {
			return &BusCardinalityError{Table: storages.Name, Label: row.Label, Field: "bus", Want: "exactly one", Got: len(busLabels)}
		}
		if _, err := bc.bus(storages.Name, row.Label, "bus", busLabels[0]); err != nil {
			return err
		}

		capacity, err := bc.primaryCapacity(ctx, storages.Name, row)
		if err != nil {
			return err
		}
		if capacity == nil {
			return &CapacityConfigError{
				Table:  storages.Name,
				Label:  row.Label,
				Field:  "existing",
				Detail: "storage needs existing > 0 or investment=true for its level capacity",
			}
		}

		params := model.StorageParams{}
		if v, ok := row.NumberOK("max_storage_level"); ok {
			params.MaxLevel = &v
		}
		if v, ok := row.NumberOK("min_storage_level"); ok {
			params.MinLevel = &v
		}
		if v, ok := row.NumberOK("inflow_conversion_factor"); ok {
			params.InflowEfficiency = &v
		}
		if v, ok := row.NumberOK("outflow_conversion_factor"); ok {
			params.OutflowEfficiency = &v
		}
		if v, ok := row.NumberOK("loss_rate"); ok {
			params.LossRate = &v
		}
		if v, ok := row.NumberOK("initial_storage_level"); ok {
			params.InitialLevel = &v
		}

		bc.addNode(model.NewStorage(row.Label, busLabels[0], *capacity, params))
		logger.Debug("storage assembled", "label", row.Label, "bus", busLabels[0])
	}
	return nil
}
