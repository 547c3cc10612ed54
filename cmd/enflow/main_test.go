package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidScenario(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		source "pv" {
			output = "electricity"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "grid.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", filePath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading scenario")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	scenarioHCL := `
timebase {
  start    = "2026-01-01T00:00:00Z"
  steps    = 2
  interval = "1h"
}

source "pv" {
  output   = "electricity"
  existing = 100
}

sink "demand" {
  input    = "electricity"
  existing = 80
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "grid.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(scenarioHCL), 0o600))
	outputDir := filepath.Join(tempDir, "out")

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", "--output-dir", outputDir, filePath})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outputDir, "model_summary.json"))
	assert.FileExists(t, filepath.Join(outputDir, "investments.json"))
}
