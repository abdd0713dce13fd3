package simulation

import "math"

// DeflationFactors computes the present-value divisor for every month:
// month m is divided by (1 + annualInflation)^(m/12). Factors are computed
// once per run and shared across every path and the invested-capital curve
// so that nominal-vs-invested comparisons keep their meaning after
// deflation.
func DeflationFactors(months int, annualInflation float64) []float64 {
	factors := make([]float64, months+1)
	for m := 0; m <= months; m++ {
		factors[m] = math.Pow(1+annualInflation, float64(m)/12)
	}
	return factors
}

// ApplyFactors rescales a monthly series to present value in place. The
// series and factors must have equal length.
func ApplyFactors(series, factors []float64) {
	for m := range series {
		series[m] /= factors[m]
	}
}
