package output

import (
	"fmt"
	"io"

	"github.com/finsim/goal-simulator/internal/domain"
)

// GenerateReport formats a simulation result and writes it to w.
func GenerateReport(result *domain.SimulationResult, format string, w io.Writer) error {
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", formatter.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s report: %w", formatter.Name(), err)
	}
	return nil
}
