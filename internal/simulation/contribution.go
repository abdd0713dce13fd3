package simulation

import (
	"math"

	"github.com/finsim/goal-simulator/internal/domain"
)

// Schedule is the deterministic contribution plan for one simulation run.
// Monthly[m] is the amount added at the end of month m (0-indexed, length
// months). Invested[m] is the cumulative invested capital after m months,
// including initial capital, so it has length months+1 and Invested[0] is
// the initial capital. No randomness enters a Schedule.
type Schedule struct {
	Monthly  []float64
	Invested []float64
}

// BuildSchedule derives the contribution plan from a config. With dynamic
// contributions enabled, the contribution for month m is
// monthly * (1+growth)^floor(m/12). A growth rate of 0 degenerates to the
// constant plan bit-for-bit: math.Pow(1, y) is exactly 1, so both branches
// multiply by the same value.
func BuildSchedule(cfg *domain.SimulationConfig, months int) Schedule {
	s := Schedule{
		Monthly:  make([]float64, months),
		Invested: make([]float64, months+1),
	}
	s.Invested[0] = cfg.InitialCapital

	cum := cfg.InitialCapital
	for m := 0; m < months; m++ {
		c := cfg.MonthlyContribution
		if cfg.DynamicContribution {
			c = cfg.MonthlyContribution * math.Pow(1+cfg.ContributionGrowthRate, float64(m/12))
		}
		s.Monthly[m] = c
		cum += c
		s.Invested[m+1] = cum
	}
	return s
}
