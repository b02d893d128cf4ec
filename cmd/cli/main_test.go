package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baas-lcos/internal/model"
)

const inputsCSV = `Parameter,Value
Battery Capacity (kWh),1000
Power (kW),500
CAPEX (€/kWh),300
Project Lifetime (years),10
Target IRR,0.08
DoD (%),90
Cycles,5000
EOL Capacity (%),80
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEvaluateCommand(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFile(t, dir, "inputs.csv", inputsCSV)
	load := writeFile(t, dir, "load.csv", "Load (kWh),Grid Price (€/kWh)\n100,0.25\n100,0.25\n")
	outCSV := filepath.Join(dir, "results", "degradation.csv")
	outJSON := filepath.Join(dir, "results", "summary.json")

	out, err := execute(t, "evaluate", "-a", inputs, "-l", load, "-o", outCSV, "--summary", outJSON)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 rows")
	assert.Contains(t, out, "Target IRR")
	assert.Contains(t, out, "8.0%")
	assert.Contains(t, out, "Customer Grid Cost (€)     50.00")
	assert.Contains(t, out, "Total CAPEX (€)            300000.00")

	raw, err := os.ReadFile(outCSV)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(raw)), "\n"), 11)
	_, err = os.Stat(outJSON)
	assert.NoError(t, err)
}

func TestEvaluateCommandWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inputs.csv", inputsCSV)
	cfg := writeFile(t, dir, "run.yaml", "assumptions_file: inputs.csv\nassumptions:\n  \"Project Lifetime (years)\": 1\n")

	_, err := execute(t, "evaluate", "--config", cfg, "-q")
	var invalid *model.InvalidModelError
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestEvaluateCommandRequiresAssumptions(t *testing.T) {
	_, err := execute(t, "evaluate")
	assert.ErrorContains(t, err, "--assumptions")
}

func TestProfileCommand(t *testing.T) {
	load := writeFile(t, t.TempDir(), "load.json", `[{"load_kwh":1,"grid_price":0.1},{"load_kwh":3,"grid_price":0.3}]`)
	out, err := execute(t, "profile", "--load", load)
	require.NoError(t, err)
	assert.Contains(t, out, "note: 2 hours")
	assert.Contains(t, out, "total load (kWh)       4.00")
	assert.Contains(t, out, "load-weighted price    0.2500")

	_, err = execute(t, "profile")
	assert.ErrorContains(t, err, "--load")
}

func TestEvaluateCommandExampleConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "evaluate", "--config", "../../examples/run.yaml",
		"-o", filepath.Join(dir, "degradation.csv"),
		"--summary", filepath.Join(dir, "summary.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "LCOS (€/kWh)")
	assert.Contains(t, out, "Total CAPEX (€)            300000.00")
}
