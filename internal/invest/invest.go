// Package invest turns the economic inputs of a row (capital cost, lifetime,
// discount rate, bounds) into an investment capacity descriptor with an
// annuitized per-unit cost. Sizing is pure: identical inputs always produce
// identical descriptors.
package invest

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// Defaults applied when a row omits the economic fields.
const (
	DefaultLifetime = 20.0
	DefaultWACC     = 0.05
)

// BoundsError reports invalid investment bounds on a row.
type BoundsError struct {
	Table  string
	Label  string
	Field  string
	Detail string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("table %q, row %q, field %q: %s", e.Table, e.Label, e.Field, e.Detail)
}

// Note is a non-fatal observation made while sizing, recorded as a build
// diagnostic by the caller.
type Note struct {
	Message string
}

// Size converts a row's economic inputs into an investment descriptor.
// It returns nil when the row's investment flag is unset; the caller then
// falls back to the row's existing capacity.
func Size(ctx context.Context, tableName string, row table.Row) (*model.CapacityDescriptor, []Note, error) {
	if !row.Bool("investment", false) {
		return nil, nil, nil
	}

	maximum := row.Number("investment_max", 0)
	if maximum <= 0 {
		return nil, nil, &BoundsError{
			Table:  tableName,
			Label:  row.Label,
			Field:  "investment_max",
			Detail: fmt.Sprintf("investment_max must be > 0, got %g", maximum),
		}
	}
	minimum := row.Number("investment_min", 0)
	if minimum < 0 {
		return nil, nil, &BoundsError{
			Table:  tableName,
			Label:  row.Label,
			Field:  "investment_min",
			Detail: fmt.Sprintf("investment_min must be >= 0, got %g", minimum),
		}
	}
	if minimum > maximum {
		return nil, nil, &BoundsError{
			Table:  tableName,
			Label:  row.Label,
			Field:  "investment_min",
			Detail: fmt.Sprintf("investment_min (%g) exceeds investment_max (%g)", minimum, maximum),
		}
	}

	capex := row.Number("capex", 0)
	lifetime := row.Number("lifetime", DefaultLifetime)
	wacc := row.Number("wacc", DefaultWACC)

	var notes []Note
	factor, degraded := AnnuityFactor(wacc, lifetime)
	if degraded {
		notes = append(notes, Note{Message: fmt.Sprintf(
			"annuity factor not computable for wacc=%g lifetime=%g, fell back to straight-line depreciation", wacc, lifetime)})
	}
	epCosts := capex * factor
	if epCosts == 0 {
		notes = append(notes, Note{Message: "investment has ep_costs=0 (free capacity expansion)"})
	}

	desc := &model.CapacityDescriptor{
		Kind:    model.CapacityInvestment,
		Maximum: maximum,
		Minimum: minimum,
		EPCosts: epCosts,
	}
	if existing := row.Number("existing", 0); existing > 0 {
		desc.Existing = existing
		desc.HasExisting = true
	}

	ctxlog.FromContext(ctx).Debug("investment sized",
		"table", tableName,
		"label", row.Label,
		"maximum", maximum,
		"minimum", minimum,
		"ep_costs", epCosts,
		"existing_floor", desc.HasExisting,
	)
	return desc, notes, nil
}

// AnnuityFactor computes the annuity factor for a discount rate and lifetime:
//
//	wacc * (1+wacc)^lifetime / ((1+wacc)^lifetime - 1)
//
// With a non-positive rate or lifetime the factor is straight-line
// depreciation, 1/lifetime, which is defined behavior and not flagged. When
// the exponentiation overflows, the denominator vanishes numerically, or the
// result leaves the plausible (0, 1] range, the factor also falls back to
// straight-line and degraded is true so the caller can record a diagnostic.
func AnnuityFactor(wacc, lifetime float64) (factor float64, degraded bool) {
	straightLine := 1.0 / math.Max(lifetime, 1)
	if wacc <= 0 || lifetime <= 0 {
		return straightLine, false
	}
	q := math.Pow(1+wacc, lifetime)
	if math.IsInf(q, 0) || math.IsNaN(q) || q-1 == 0 {
		return straightLine, true
	}
	factor = wacc * q / (q - 1)
	if factor <= 0 || factor > 1 {
		return straightLine, true
	}
	return factor, false
}
