package simulation

import (
	"math"

	"github.com/finsim/goal-simulator/internal/domain"
)

// Validate checks every input constraint on a simulation config. It returns
// a *ConfigError naming the offending field, or nil.
func Validate(cfg *domain.SimulationConfig) error {
	if cfg == nil {
		return &ConfigError{Field: "config", Reason: "must not be nil"}
	}
	if err := checkFinite("initial_capital", cfg.InitialCapital); err != nil {
		return err
	}
	if cfg.InitialCapital < 0 {
		return &ConfigError{Field: "initial_capital", Reason: "must be non-negative"}
	}
	if err := checkFinite("monthly_contribution", cfg.MonthlyContribution); err != nil {
		return err
	}
	if cfg.MonthlyContribution < 0 {
		return &ConfigError{Field: "monthly_contribution", Reason: "must be non-negative"}
	}
	if cfg.HorizonYears < 1 {
		return &ConfigError{Field: "horizon_years", Reason: "must be at least 1"}
	}
	if err := checkFinite("annual_return_mean", cfg.AnnualReturnMean); err != nil {
		return err
	}
	if err := checkFinite("annual_return_volatility", cfg.AnnualReturnVolatility); err != nil {
		return err
	}
	if cfg.AnnualReturnVolatility < 0 {
		return &ConfigError{Field: "annual_return_volatility", Reason: "must be non-negative"}
	}
	if err := checkFinite("annual_fee_rate", cfg.AnnualFeeRate); err != nil {
		return err
	}
	if cfg.AnnualFeeRate < 0 {
		return &ConfigError{Field: "annual_fee_rate", Reason: "must be non-negative"}
	}
	if err := checkFinite("annual_inflation_rate", cfg.AnnualInflationRate); err != nil {
		return err
	}
	if cfg.AnnualInflationRate < -1 {
		return &ConfigError{Field: "annual_inflation_rate", Reason: "must be at least -1 (total deflation)"}
	}
	if err := checkFinite("contribution_growth_rate", cfg.ContributionGrowthRate); err != nil {
		return err
	}
	if cfg.ContributionGrowthRate < -1 {
		return &ConfigError{Field: "contribution_growth_rate", Reason: "must be at least -1"}
	}
	if cfg.NumSimulations < 1 {
		return &ConfigError{Field: "num_simulations", Reason: "must be at least 1"}
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ConfigError{Field: field, Reason: "must be finite"}
	}
	return nil
}
