package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsim/goal-simulator/internal/domain"
)

func TestBuildScheduleConstant(t *testing.T) {
	cfg := &domain.SimulationConfig{
		InitialCapital:      10000,
		MonthlyContribution: 500,
		HorizonYears:        1,
	}

	s := BuildSchedule(cfg, 12)

	require.Len(t, s.Monthly, 12)
	require.Len(t, s.Invested, 13)
	assert.Equal(t, 10000.0, s.Invested[0])
	for m, c := range s.Monthly {
		assert.Equal(t, 500.0, c, "month %d", m)
	}
	assert.Equal(t, 16000.0, s.Invested[12])
}

func TestBuildScheduleDynamicGrowth(t *testing.T) {
	cfg := &domain.SimulationConfig{
		MonthlyContribution:    100,
		HorizonYears:           3,
		DynamicContribution:    true,
		ContributionGrowthRate: 0.10,
	}

	s := BuildSchedule(cfg, 36)

	// Contribution steps up once per year, not per month.
	assert.Equal(t, 100.0, s.Monthly[0])
	assert.Equal(t, 100.0, s.Monthly[11])
	assert.InDelta(t, 110.0, s.Monthly[12], 1e-12)
	assert.InDelta(t, 110.0, s.Monthly[23], 1e-12)
	assert.InDelta(t, 121.0, s.Monthly[24], 1e-12)
	assert.InDelta(t, 121.0, s.Monthly[35], 1e-12)
}

func TestBuildScheduleZeroGrowthMatchesDisabled(t *testing.T) {
	enabled := &domain.SimulationConfig{
		InitialCapital:         1000,
		MonthlyContribution:    250,
		HorizonYears:           5,
		DynamicContribution:    true,
		ContributionGrowthRate: 0,
	}
	disabled := &domain.SimulationConfig{
		InitialCapital:      1000,
		MonthlyContribution: 250,
		HorizonYears:        5,
		DynamicContribution: false,
	}

	a := BuildSchedule(enabled, 60)
	b := BuildSchedule(disabled, 60)

	// Bit-for-bit identical, not merely close.
	require.Equal(t, b.Monthly, a.Monthly)
	require.Equal(t, b.Invested, a.Invested)
}

func TestInvestedCapitalNonDecreasing(t *testing.T) {
	cfg := &domain.SimulationConfig{
		InitialCapital:         5000,
		MonthlyContribution:    300,
		HorizonYears:           10,
		DynamicContribution:    true,
		ContributionGrowthRate: 0.03,
	}

	s := BuildSchedule(cfg, 120)
	for m := 1; m < len(s.Invested); m++ {
		assert.GreaterOrEqual(t, s.Invested[m], s.Invested[m-1], "month %d", m)
	}
}
