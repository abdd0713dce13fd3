package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finsim/goal-simulator/internal/domain"
	"github.com/finsim/goal-simulator/internal/simulation"
)

// InputParser handles parsing of simulation configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file and
// validates it. Validation errors carry the offending field; callers can
// unwrap them with errors.As into *simulation.ConfigError.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := simulation.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// CreateExampleConfiguration returns a ready-to-run example: a 30-year
// savings plan with parameters in the range a typical broad-market ETF
// investor would use.
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationConfig {
	return &domain.SimulationConfig{
		InitialCapital:         10000,
		MonthlyContribution:    500,
		HorizonYears:           30,
		AnnualReturnMean:       0.07,
		AnnualReturnVolatility: 0.15,
		AnnualFeeRate:          0.002,
		AnnualInflationRate:    0.02,
		DynamicContribution:    false,
		ContributionGrowthRate: 0.02,
		NumSimulations:         1000,
		AdjustForInflation:     false,
	}
}

// WriteExampleConfig writes the example configuration as YAML to path.
func (ip *InputParser) WriteExampleConfig(path string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
