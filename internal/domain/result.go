package domain

import "time"

// PercentileCurves holds the per-month percentile bands across all paths.
// Each curve has length months+1; index 0 is the initial capital.
type PercentileCurves struct {
	P10 []float64 `json:"p10"`
	P50 []float64 `json:"p50"`
	P90 []float64 `json:"p90"`
}

// HeadlineMetrics are the single-number outcomes a report leads with.
// WorstCase and BestCase are the 10th and 90th percentile of the final
// portfolio value, not the absolute extremes.
type HeadlineMetrics struct {
	MedianFinalValue float64 `json:"median_final_value"`
	WorstCase        float64 `json:"worst_case"`
	BestCase         float64 `json:"best_case"`
	MinFinalValue    float64 `json:"min_final_value"`
	MaxFinalValue    float64 `json:"max_final_value"`
	TotalInvested    float64 `json:"total_invested"`
}

// SimulationResult is the immutable output of one simulation run. All
// monetary series share one unit convention: nominal, or present value when
// InflationAdjusted is true.
type SimulationResult struct {
	PercentileCurves PercentileCurves `json:"percentile_curves"`

	// FinalValues holds the final-month value of every path, in path
	// order, for histogram consumption.
	FinalValues []float64 `json:"final_value_distribution"`

	// InvestedCapital is the deterministic cumulative-contribution
	// baseline, length months+1, including initial capital at index 0.
	InvestedCapital []float64 `json:"invested_capital_curve"`

	// RawPaths is the full path matrix (NumSimulations rows of months+1
	// values). Nil unless the config requested it.
	RawPaths [][]float64 `json:"raw_paths,omitempty"`

	Headline HeadlineMetrics `json:"headline"`

	// Run metadata: how this result was produced.
	Months            int           `json:"months"`
	NumSimulations    int           `json:"num_simulations"`
	Seed              int64         `json:"seed"`
	InflationAdjusted bool          `json:"inflation_adjusted"`
	Elapsed           time.Duration `json:"elapsed_ns"`
}
