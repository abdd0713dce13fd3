package simulation

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/finsim/goal-simulator/internal/domain"
)

// Aggregation output for one run. FinalValues preserves path order for
// histogram consumption; the percentile curves are per-month statistics
// across the whole path matrix.
type aggregate struct {
	Curves      domain.PercentileCurves
	FinalValues []float64
	MinFinal    float64
	MaxFinal    float64
}

// aggregatePaths computes the p10/p50/p90 band for each month index
// independently, plus the final-value distribution.
//
// Percentile convention: gonum's empirical quantile (stat.Empirical) over
// the sorted per-month cross-section, i.e. the smallest sample value whose
// empirical CDF reaches the requested probability. With a single path all
// three percentiles collapse to that path's value, so the band degrades to
// a flat line rather than an error.
func aggregatePaths(paths [][]float64, months int) aggregate {
	agg := aggregate{
		Curves: domain.PercentileCurves{
			P10: make([]float64, months+1),
			P50: make([]float64, months+1),
			P90: make([]float64, months+1),
		},
	}

	column := make([]float64, len(paths))
	for m := 0; m <= months; m++ {
		for i, p := range paths {
			column[i] = p[m]
		}
		sort.Float64s(column)
		agg.Curves.P10[m] = stat.Quantile(0.10, stat.Empirical, column, nil)
		agg.Curves.P50[m] = stat.Quantile(0.50, stat.Empirical, column, nil)
		agg.Curves.P90[m] = stat.Quantile(0.90, stat.Empirical, column, nil)
	}

	agg.FinalValues = make([]float64, len(paths))
	for i, p := range paths {
		agg.FinalValues[i] = p[months]
	}
	agg.MinFinal = floats.Min(agg.FinalValues)
	agg.MaxFinal = floats.Max(agg.FinalValues)
	return agg
}
