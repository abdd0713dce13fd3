package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/finsim/goal-simulator/internal/domain"
)

// CSVFormatter exports the per-month percentile band and invested-capital
// baseline, one row per month. This is the series a plotting layer turns
// into a funnel chart.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"month", "invested_capital", "p10", "p50", "p90"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for m := 0; m <= result.Months; m++ {
		row := []string{
			strconv.Itoa(m),
			formatCell(result.InvestedCapital[m]),
			formatCell(result.PercentileCurves.P10[m]),
			formatCell(result.PercentileCurves.P50[m]),
			formatCell(result.PercentileCurves.P90[m]),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row for month %d: %w", m, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FinalValuesCSV exports the final-value distribution, one row per path,
// for histogram consumption.
func FinalValuesCSV(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"path", "final_value"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, v := range result.FinalValues {
		if err := writer.Write([]string{strconv.Itoa(i), formatCell(v)}); err != nil {
			return nil, fmt.Errorf("failed to write row for path %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
