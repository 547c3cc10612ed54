package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/enflow/internal/table"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalScenario = `
timebase {
  start    = "2026-01-01T00:00:00Z"
  steps    = 4
  interval = "1h"
}

series "solar" {
  values = [0.0, 0.4, 0.9, 0.3]
}

bus "electricity" {}

source "pv" {
  output   = "electricity"
  existing = 100
  max      = "solar"
}

sink "demand" {
  input    = "electricity"
  existing = 80
}
`

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "grid.hcl", minimalScenario)

	tables, tb, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, tb.Steps())
	first, last := tb.Span()
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC), last)

	values, ok := tb.Series("solar")
	require.True(t, ok)
	assert.Equal(t, []float64{0.0, 0.4, 0.9, 0.3}, values)

	assert.Equal(t, 1, tables.Table(table.Buses).Len())
	assert.Equal(t, 1, tables.Table(table.Sources).Len())
	assert.Equal(t, 1, tables.Table(table.Sinks).Len())

	pv, ok := tables.Table(table.Sources).Row("pv")
	require.True(t, ok)
	assert.Equal(t, "electricity", pv.String("output"))
	assert.Equal(t, 100.0, pv.Number("existing", 0))
	assert.Equal(t, "solar", pv.String("max"))
}

func TestLoader_Load_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "grid.hcl", minimalScenario)

	_, tb, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.Steps())
}

func TestLoader_Load_MergesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a.hcl", `
timebase {
  start    = "2026-01-01T00:00:00Z"
  steps    = 2
  interval = "1h"
}

bus "electricity" {}
`)
	writeScenario(t, dir, "b.hcl", `
source "pv" {
  output   = "electricity"
  existing = 100
}

converter "chp" {
  inputs             = "gas"
  outputs            = "electricity|heat"
  output_conversions = "0.35|0.50"
  existing           = 200
  investment         = false
}
`)

	tables, _, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, tables.Table(table.Sources).Len())
	chp, ok := tables.Table(table.Converters).Row("chp")
	require.True(t, ok)
	assert.Equal(t, "0.35|0.50", chp.String("output_conversions"))
	assert.False(t, chp.Bool("investment", true))
}

func TestLoader_Load_Errors(t *testing.T) {
	timebase := `
timebase {
  start    = "2026-01-01T00:00:00Z"
  steps    = 2
  interval = "1h"
}
`
	testCases := []struct {
		name    string
		content string
		errHint string
	}{
		{
			name:    "missing timebase",
			content: `bus "electricity" {}`,
			errHint: "no timebase block",
		},
		{
			name:    "duplicate timebase",
			content: timebase + timebase,
			errHint: "duplicate timebase",
		},
		{
			name:    "series length mismatch",
			content: timebase + "\nseries \"solar\" {\n  values = [1.0]\n}\n",
			errHint: "solar",
		},
		{
			name:    "non-positive steps",
			content: "timebase {\n  start = \"2026-01-01T00:00:00Z\"\n  steps = 0\n  interval = \"1h\"\n}\n",
			errHint: "steps must be positive",
		},
		{
			name:    "bad start timestamp",
			content: "timebase {\n  start = \"yesterday\"\n  steps = 2\n  interval = \"1h\"\n}\n",
			errHint: "timebase start",
		},
		{
			name:    "duplicate component label",
			content: timebase + "\nbus \"electricity\" {}\nbus \"electricity\" {}\n",
			errHint: "duplicate",
		},
		{
			name:    "unsupported attribute type",
			content: timebase + "\nsource \"pv\" {\n  output = [\"electricity\"]\n}\n",
			errHint: "unsupported attribute type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeScenario(t, dir, "grid.hcl", tc.content)

			_, _, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errHint)
		})
	}
}

func TestLoader_Load_NoFiles(t *testing.T) {
	_, _, err := NewLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}
