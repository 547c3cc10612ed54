package invest

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

func row(label string, fields map[string]any) table.Row {
	return table.NewRow(label, fields)
}

func TestSize(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		fields   map[string]any
		check    func(t *testing.T, desc *model.CapacityDescriptor, notes []Note)
		errField string
	}{
		{
			name:   "investment flag unset yields nil descriptor",
			fields: map[string]any{"existing": 100.0},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				assert.Nil(t, desc)
				assert.Empty(t, notes)
			},
		},
		{
			name: "standard annuity",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"capex":          1000.0,
				"lifetime":       20.0,
				"wacc":           0.05,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.Equal(t, model.CapacityInvestment, desc.Kind)
				assert.Equal(t, 500.0, desc.Maximum)
				assert.Equal(t, 0.0, desc.Minimum)
				assert.InDelta(t, 80.24, desc.EPCosts, 0.01)
				assert.False(t, desc.HasExisting)
				assert.Empty(t, notes)
			},
		},
		{
			name: "zero wacc falls back to straight-line without a note",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"capex":          1000.0,
				"lifetime":       20.0,
				"wacc":           0.0,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.InDelta(t, 50.0, desc.EPCosts, 1e-9)
				assert.Empty(t, notes)
			},
		},
		{
			name: "implausible annuity degrades with a note",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"capex":          1000.0,
				"lifetime":       1.0,
				"wacc":           0.5,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.InDelta(t, 1000.0, desc.EPCosts, 1e-9)
				require.Len(t, notes, 1)
				assert.Contains(t, notes[0].Message, "straight-line")
			},
		},
		{
			name: "zero capex reports free expansion",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.Zero(t, desc.EPCosts)
				require.Len(t, notes, 1)
				assert.Contains(t, notes[0].Message, "ep_costs=0")
			},
		},
		{
			name: "positive existing becomes investment floor",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"investment_min": 10.0,
				"capex":          1000.0,
				"existing":       42.0,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.Equal(t, 10.0, desc.Minimum)
				assert.True(t, desc.HasExisting)
				assert.Equal(t, 42.0, desc.Existing)
			},
		},
		{
			name: "zero existing leaves the floor unset",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"capex":          1000.0,
				"existing":       0.0,
			},
			check: func(t *testing.T, desc *model.CapacityDescriptor, notes []Note) {
				require.NotNil(t, desc)
				assert.False(t, desc.HasExisting)
			},
		},
		{
			name: "missing investment_max is rejected",
			fields: map[string]any{
				"investment": true,
			},
			errField: "investment_max",
		},
		{
			name: "negative investment_min is rejected",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"investment_min": -1.0,
			},
			errField: "investment_min",
		},
		{
			name: "minimum above maximum is rejected",
			fields: map[string]any{
				"investment":     true,
				"investment_max": 500.0,
				"investment_min": 600.0,
			},
			errField: "investment_min",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desc, notes, err := Size(ctx, "sources", row("pv", tc.fields))
			if tc.errField != "" {
				var boundsErr *BoundsError
				require.ErrorAs(t, err, &boundsErr)
				assert.Equal(t, "sources", boundsErr.Table)
				assert.Equal(t, "pv", boundsErr.Label)
				assert.Equal(t, tc.errField, boundsErr.Field)
				return
			}
			require.NoError(t, err)
			tc.check(t, desc, notes)
		})
	}
}

func TestSize_Deterministic(t *testing.T) {
	ctx := context.Background()
	fields := map[string]any{
		"investment":     true,
		"investment_max": 250.0,
		"capex":          800.0,
		"lifetime":       25.0,
		"wacc":           0.04,
	}

	first, _, err := Size(ctx, "sources", row("wind", fields))
	require.NoError(t, err)
	second, _, err := Size(ctx, "sources", row("wind", fields))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnnuityFactor(t *testing.T) {
	testCases := []struct {
		name             string
		wacc             float64
		lifetime         float64
		expected         float64
		expectedDegraded bool
	}{
		{
			name:     "textbook case",
			wacc:     0.05,
			lifetime: 20,
			expected: 0.0802426,
		},
		{
			name:     "zero wacc is straight-line depreciation",
			wacc:     0,
			lifetime: 20,
			expected: 0.05,
		},
		{
			name:     "negative wacc is straight-line depreciation",
			wacc:     -0.02,
			lifetime: 10,
			expected: 0.1,
		},
		{
			name:     "non-positive lifetime clamps the straight-line divisor",
			wacc:     0,
			lifetime: 0,
			expected: 1.0,
		},
		{
			name:             "overflowing exponent degrades",
			wacc:             0.05,
			lifetime:         1e6,
			expected:         1e-6,
			expectedDegraded: true,
		},
		{
			name:             "factor above one degrades",
			wacc:             0.5,
			lifetime:         1,
			expected:         1.0,
			expectedDegraded: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			factor, degraded := AnnuityFactor(tc.wacc, tc.lifetime)
			assert.InDelta(t, tc.expected, factor, 1e-6)
			assert.Equal(t, tc.expectedDegraded, degraded)
		})
	}
}

func TestAnnuityFactor_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("factor stays between wacc and wacc plus straight-line", prop.ForAll(
		func(wacc, lifetime float64) bool {
			factor, degraded := AnnuityFactor(wacc, lifetime)
			if degraded {
				return false
			}
			return factor > wacc && factor <= wacc+1/lifetime+1e-12
		},
		gen.Float64Range(0.001, 0.3),
		gen.Float64Range(2, 60),
	))

	properties.Property("factor is monotonic in wacc", prop.ForAll(
		func(wacc float64) bool {
			lower, _ := AnnuityFactor(wacc, 20)
			higher, _ := AnnuityFactor(wacc+0.01, 20)
			return higher > lower && !math.IsNaN(lower)
		},
		gen.Float64Range(0.001, 0.3),
	))

	properties.TestingRun(t)
}
