package builder

import (
	"context"
	"fmt"

	"github.com/vk/enflow/internal/invest"
	"github.com/vk/enflow/internal/listfield"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// primaryCapacity resolves the capacity source of a primary flow: the
// investment descriptor when the row declares investment, otherwise the row's
// positive existing capacity. A nil result without error means the row offers
// neither; the caller decides whether that is fatal (sources, converters,
// storages) or waived by a fixed profile (sinks).
func (bc *BuildContext) primaryCapacity(ctx context.Context, tableName string, row table.Row) (*model.CapacityDescriptor, error) {
	desc, notes, err := invest.Size(ctx, tableName, row)
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		bc.warn(tableName, row.Label, note.Message)
	}
	if desc != nil {
		return desc, nil
	}
	if existing := row.Number("existing", 0); existing > 0 {
		fixed := model.ExistingCapacity(existing)
		return &fixed, nil
	}
	return nil, nil
}

// bound resolves an optional min/max/fix cell: a numeric cell becomes a
// scalar bound, a text cell names a time series on the build's time base.
// A reference to an undeclared series is dropped with a diagnostic, leaving
// the field unset.
func (bc *BuildContext) bound(tableName string, row table.Row, field string) *model.Bound {
	if !row.Has(field) {
		return nil
	}
	if v, ok := row.NumberOK(field); ok {
		return model.ScalarBound(v)
	}
	name := row.String(field)
	if name == "" {
		return nil
	}
	if _, ok := bc.TimeBase.Series(name); !ok {
		bc.warn(tableName, row.Label, fmt.Sprintf("field %q references undeclared time series %q; ignored", field, name))
		return nil
	}
	return model.SeriesBound(name)
}

// flowBounds resolves the optional bound fields of a primary flow. Values are
// attached verbatim only when explicitly present; no defaults are synthesized.
func (bc *BuildContext) flowBounds(tableName string, row table.Row) (min, max, fix *model.Bound, variableCosts *float64) {
	min = bc.bound(tableName, row, "min")
	max = bc.bound(tableName, row, "max")
	fix = bc.bound(tableName, row, "fix")
	if v, ok := row.NumberOK("variable_costs"); ok {
		variableCosts = &v
	}
	return min, max, fix, variableCosts
}

// conversionFactors parses and reconciles one side's factor cell against its
// bus list. An absent cell defaults every factor to 1.0; a single scalar is
// broadcast; anything else must match the bus count exactly.
func (bc *BuildContext) conversionFactors(tableName string, row table.Row, field string, buses []string) ([]float64, error) {
	factors, invalid := bc.Splitter.Factors(row.String(field))
	for _, token := range invalid {
		bc.warn(tableName, row.Label, fmt.Sprintf("field %q: unparseable conversion factor %q replaced by 1.0", field, token))
	}
	if len(factors) == 0 {
		return listfield.Ones(len(buses)), nil
	}
	reconciled, ok := listfield.Broadcast(factors, len(buses))
	if !ok {
		return nil, &FactorCountMismatchError{
			Table:   tableName,
			Label:   row.Label,
			Field:   field,
			Factors: len(factors),
			Buses:   len(buses),
		}
	}
	return reconciled, nil
}
