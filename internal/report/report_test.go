package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vk/enflow/internal/busreg"
	"github.com/vk/enflow/internal/model"
)

func reportGraph(t *testing.T) *model.Graph {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}
	tb, err := model.NewTimeBase(timestamps)
	require.NoError(t, err)

	g := model.NewGraph(tb)
	require.NoError(t, g.Add(model.NewBus("electricity")))
	require.NoError(t, g.Add(model.NewBus("orphan")))

	existing := model.ExistingCapacity(100)
	require.NoError(t, g.Add(model.NewSource("pv", model.FlowSpec{
		Bus:       "electricity",
		Direction: model.FlowOutbound,
		Capacity:  &existing,
	})))

	investment := model.CapacityDescriptor{
		Kind:        model.CapacityInvestment,
		Maximum:     500,
		Minimum:     50,
		EPCosts:     80.24,
		Existing:    20,
		HasExisting: true,
	}
	require.NoError(t, g.Add(model.NewSource("wind", model.FlowSpec{
		Bus:       "electricity",
		Direction: model.FlowOutbound,
		Capacity:  &investment,
	})))

	return g
}

func TestSummarize(t *testing.T) {
	g := reportGraph(t)
	summary := Summarize(g, busreg.Connectivity(g))

	assert.Equal(t, g.RunID().String(), summary.RunID)
	assert.Equal(t, 3, summary.Steps)
	assert.Equal(t, 4, summary.Nodes)
	assert.Equal(t, 2, summary.Buses)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), summary.Start)
	assert.Equal(t, time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), summary.End)
	assert.Equal(t, 2, summary.NodesByKind[model.KindSource.String()])
	assert.Equal(t, 2, summary.NodesByKind[model.KindBus.String()])
	assert.Equal(t, []string{"orphan"}, summary.IsolatedBuses)
}

func TestInvestments(t *testing.T) {
	summary := Investments(reportGraph(t))

	require.Len(t, summary.Lines, 2)
	// Lines are sorted by label.
	assert.Equal(t, "pv", summary.Lines[0].Label)
	assert.Equal(t, "wind", summary.Lines[1].Label)

	pv := summary.Lines[0]
	assert.False(t, pv.Investment)
	assert.Equal(t, 100.0, pv.Capacity)

	wind := summary.Lines[1]
	assert.True(t, wind.Investment)
	assert.Equal(t, 500.0, wind.Maximum)
	assert.Equal(t, 50.0, wind.Minimum)
	assert.Equal(t, 20.0, wind.Existing)
	assert.InDelta(t, 500*80.24, wind.MaxAnnualCost, 1e-9)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Investments(reportGraph(t))))

	var decoded InvestmentSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Lines, 2)
	assert.Equal(t, "pv", decoded.Lines[0].Label)
}

func TestWriteYAML(t *testing.T) {
	g := reportGraph(t)
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Summarize(g, busreg.Connectivity(g))))

	var decoded ModelSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, g.RunID().String(), decoded.RunID)
	assert.Equal(t, 3, decoded.Steps)
}
