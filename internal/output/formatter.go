package output

import (
	"fmt"

	"github.com/finsim/goal-simulator/internal/domain"
)

// Formatter renders a simulation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected console, json, or csv)", format)
	}
}
