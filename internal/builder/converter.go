package builder

import (
	"context"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// assembleConverters builds one converter node per row. A converter requires
// at least one input and one output bus, parsed from the delimited list
// cells. Exactly the first output flow carries the capacity descriptor; every
// other flow is secondary and scaled through its bus's conversion factor.
func (bc *BuildContext) assembleConverters(ctx context.Context, converters *table.Table) error {
	logger := ctxlog.FromContext(ctx)
	for _, row := range converters.Rows() {
		inputBuses := bc.Splitter.Split(row.String("inputs"))
		if len(inputBuses) == 0 {
			return &BusCardinalityError{Table: converters.Name, Label: row.Label, Field: "inputs", Want: "at least one", Got: 0}
		}
		outputBuses := bc.Splitter.Split(row.String("outputs"))
		if len(outputBuses) == 0 {
			return &BusCardinalityError{Table: converters.Name, Label: row.Label, Field: "outputs", Want: "at least one", Got: 0}
		}

		// Resolve every referenced bus before anything is constructed.
		for _, busLabel := range inputBuses {
			if _, err := bc.bus(converters.Name, row.Label, "inputs", busLabel); err != nil {
				return err
			}
		}
		for _, busLabel := range outputBuses {
			if _, err := bc.bus(converters.Name, row.Label, "outputs", busLabel); err != nil {
				return err
			}
		}

		inputFactors, err := bc.conversionFactors(converters.Name, row, "input_conversions", inputBuses)
		if err != nil {
			return err
		}
		outputFactors, err := bc.conversionFactors(converters.Name, row, "output_conversions", outputBuses)
		if err != nil {
			return err
		}

		capacity, err := bc.primaryCapacity(ctx, converters.Name, row)
		if err != nil {
			return err
		}
		if capacity == nil {
			return &CapacityConfigError{
				Table:  converters.Name,
				Label:  row.Label,
				Field:  "existing",
				Detail: "converter needs existing > 0 or investment=true for its first output flow",
			}
		}

		var variableCosts *float64
		if v, ok := row.NumberOK("variable_costs"); ok {
			variableCosts = &v
		}

		inputs := make([]model.FlowSpec, 0, len(inputBuses))
		inFactorMap := make(map[string]float64, len(inputBuses))
		for i, busLabel := range inputBuses {
			// Input flows never carry a capacity bound; the optimizer scales
			// them from the primary flow through the conversion factors.
			inputs = append(inputs, model.FlowSpec{
				Bus:           busLabel,
				Direction:     model.FlowInbound,
				VariableCosts: variableCosts,
			})
			inFactorMap[busLabel] = inputFactors[i]
		}

		min, max, fix, _ := bc.flowBounds(converters.Name, row)
		outputs := make([]model.FlowSpec, 0, len(outputBuses))
		outFactorMap := make(map[string]float64, len(outputBuses))
		for i, busLabel := range outputBuses {
			flow := model.FlowSpec{Bus: busLabel, Direction: model.FlowOutbound}
			if i == 0 {
				flow.Capacity = capacity
				flow.Min = min
				flow.Max = max
				flow.Fix = fix
				flow.VariableCosts = variableCosts
			}
			outputs = append(outputs, flow)
			outFactorMap[busLabel] = outputFactors[i]
		}

		bc.addNode(model.NewConverter(row.Label, inputs, outputs, inFactorMap, outFactorMap))
		logger.Debug("converter assembled",
			"label", row.Label,
			"inputs", len(inputs),
			"outputs", len(outputs),
			"primary_bus", outputBuses[0],
		)
	}
	return nil
}
