package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflationFactorsConvention(t *testing.T) {
	factors := DeflationFactors(24, 0.10)

	require.Len(t, factors, 25)
	assert.Equal(t, 1.0, factors[0])
	// Month 12 = one full year: divisor is exactly 1+rate.
	assert.InDelta(t, 1.10, factors[12], 1e-12)
	assert.InDelta(t, 1.21, factors[24], 1e-12)
}

func TestDeflationZeroRateIsIdentity(t *testing.T) {
	factors := DeflationFactors(12, 0)
	series := []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200, 1300}
	want := append([]float64(nil), series...)

	ApplyFactors(series, factors)
	assert.Equal(t, want, series)
}

func TestApplyFactorsDividesEachMonth(t *testing.T) {
	series := []float64{1000, 1100, 1210}
	factors := []float64{1, 1.1, 1.21}

	ApplyFactors(series, factors)

	assert.Equal(t, 1000.0, series[0])
	assert.InDelta(t, 1000.0, series[1], 1e-9)
	assert.InDelta(t, 1000.0, series[2], 1e-9)
}
