package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsim/goal-simulator/internal/config"
	"github.com/finsim/goal-simulator/internal/domain"
	"github.com/finsim/goal-simulator/internal/output"
	"github.com/finsim/goal-simulator/internal/simulation"
)

const testConfig = `initial_capital: 10000
monthly_contribution: 500
horizon_years: 5
annual_return_mean: 0.07
annual_return_volatility: 0.15
annual_fee_rate: 0.002
annual_inflation_rate: 0.02
dynamic_contribution: true
contribution_growth_rate: 0.02
num_simulations: 200
seed: 2024
adjust_for_inflation: true
`

func TestConfigToReportPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	engine := simulation.NewEngine()
	result, err := engine.Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, result.PercentileCurves.P50, 61)
	require.Len(t, result.FinalValues, 200)
	assert.True(t, result.InflationAdjusted)
	assert.Equal(t, int64(2024), result.Seed)

	for _, format := range []string{"console", "json", "csv"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(result, format, &buf))
			assert.Positive(t, buf.Len())
		})
	}
}

func TestJSONReportCarriesFullResult(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	cfg.NumSimulations = 50
	cfg.HorizonYears = 3
	cfg.Seed = 99
	cfg.KeepRawPaths = true

	engine := simulation.NewEngine()
	result, err := engine.Run(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(result, "json", &buf))

	var decoded domain.SimulationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, result.Headline, decoded.Headline)
	require.Len(t, decoded.RawPaths, 50)
	require.Len(t, decoded.RawPaths[0], 37)
}

func TestCSVReportShape(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	cfg.NumSimulations = 20
	cfg.HorizonYears = 2
	cfg.Seed = 7

	engine := simulation.NewEngine()
	result, err := engine.Run(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(result, "csv", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 26) // header + 25 months

	dist, err := output.FinalValuesCSV(result)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(dist)), "\n"), 21)
}
