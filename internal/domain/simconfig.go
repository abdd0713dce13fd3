package domain

// SimulationConfig describes one Monte Carlo simulation request. All rates
// are fractions (0.07 = 7% per year), all monetary amounts are in the
// caller's currency unit. A config is validated once at the engine boundary
// and never mutated afterwards.
type SimulationConfig struct {
	// InitialCapital is the portfolio value at month 0, before any return,
	// fee, or contribution is applied.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital"`

	// MonthlyContribution is the amount added to the portfolio at the end
	// of every simulated month.
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`

	// HorizonYears is the investment horizon. The simulation covers
	// HorizonYears*12 months.
	HorizonYears int `yaml:"horizon_years" json:"horizon_years"`

	// AnnualReturnMean and AnnualReturnVolatility parameterize the return
	// model. Monthly values are derived as mean/12 and volatility/sqrt(12).
	AnnualReturnMean       float64 `yaml:"annual_return_mean" json:"annual_return_mean"`
	AnnualReturnVolatility float64 `yaml:"annual_return_volatility" json:"annual_return_volatility"`

	// AnnualFeeRate is the ongoing cost drag (e.g. an ETF TER), applied as
	// a multiplicative factor of (1 - rate/12) each month.
	AnnualFeeRate float64 `yaml:"annual_fee_rate" json:"annual_fee_rate"`

	// AnnualInflationRate drives present-value deflation when
	// AdjustForInflation is set. Must be >= -1.
	AnnualInflationRate float64 `yaml:"annual_inflation_rate" json:"annual_inflation_rate"`

	// DynamicContribution enables annual escalation of the monthly
	// contribution by ContributionGrowthRate.
	DynamicContribution    bool    `yaml:"dynamic_contribution" json:"dynamic_contribution"`
	ContributionGrowthRate float64 `yaml:"contribution_growth_rate" json:"contribution_growth_rate"`

	// NumSimulations is the number of independent paths to generate.
	NumSimulations int `yaml:"num_simulations" json:"num_simulations"`

	// Seed makes a run reproducible: the same config with the same nonzero
	// seed yields bit-identical results. Seed 0 picks a fresh seed per run;
	// the effective seed is reported on the result.
	Seed int64 `yaml:"seed" json:"seed"`

	// AdjustForInflation converts every monetary series in the result
	// (percentile curves, final values, invested capital, raw paths) to
	// today's purchasing power. A result is either fully nominal or fully
	// deflated, never mixed.
	AdjustForInflation bool `yaml:"adjust_for_inflation" json:"adjust_for_inflation"`

	// KeepRawPaths retains the full path matrix on the result for funnel
	// chart rendering. Off by default: the matrix is the dominant memory
	// cost of a run.
	KeepRawPaths bool `yaml:"keep_raw_paths" json:"keep_raw_paths"`
}

// Months returns the number of simulated months.
func (c *SimulationConfig) Months() int {
	return c.HorizonYears * 12
}
