package simulation

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finsim/goal-simulator/internal/domain"
)

// MaxMatrixCells bounds the size of the path matrix a single run may
// allocate: num_simulations * (months+1) values. 50M float64 cells is about
// 400 MB, which keeps a worst-case request from looking like an
// out-of-memory crash. Requests above the bound fail with a *LimitError
// before anything is allocated.
const MaxMatrixCells = 50_000_000

// Engine runs Monte Carlo portfolio simulations. The zero value is not
// usable; create one with NewEngine. An Engine holds no per-run state, so a
// single instance may serve concurrent runs.
type Engine struct {
	Logger  Logger
	Workers int // max concurrent path workers
}

// NewEngine creates an engine with a no-op logger and one worker per CPU.
func NewEngine() *Engine {
	return &Engine{
		Logger:  NopLogger{},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes one simulation: validate, build the contribution schedule,
// generate all paths, optionally deflate, and aggregate. The same config
// with the same nonzero seed yields bit-identical results.
//
// Path generation is data-parallel: paths have no cross-path dependency,
// so they are distributed over a bounded worker pool. Cancellation is
// cooperative; ctx is checked before each path starts, so a caller is never
// stuck waiting on a large run it no longer wants.
func (e *Engine) Run(ctx context.Context, cfg *domain.SimulationConfig) (*domain.SimulationResult, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	months := cfg.Months()
	// Divisional check: the product NumSimulations*(months+1) can wrap
	// around for absurd path counts, which would let the request slip past
	// the bound and blow up at allocation instead.
	perPath := months + 1
	if cfg.NumSimulations > MaxMatrixCells/perPath {
		cells := math.MaxInt
		if cfg.NumSimulations <= math.MaxInt/perPath {
			cells = cfg.NumSimulations * perPath
		}
		return nil, &LimitError{Cells: cells, Limit: MaxMatrixCells}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	e.Logger.Debugf("starting simulation: %d paths x %d months, seed %d", cfg.NumSimulations, months, seed)

	schedule := BuildSchedule(cfg, months)
	sampler := NewReturnSampler(cfg.AnnualReturnMean, cfg.AnnualReturnVolatility, seed)

	paths := make([][]float64, cfg.NumSimulations)

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Fee convention: a pro-rated multiplicative drag of (1 - rate/12) per
	// month, applied after the month's return and before the contribution.
	feeFactor := 1 - cfg.AnnualFeeRate/12

	for i := range paths {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := generatePath(i, months, cfg.InitialCapital, feeFactor, schedule.Monthly, sampler)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	invested := schedule.Invested
	if cfg.AdjustForInflation {
		factors := DeflationFactors(months, cfg.AnnualInflationRate)
		for _, p := range paths {
			ApplyFactors(p, factors)
		}
		ApplyFactors(invested, factors)
	}

	agg := aggregatePaths(paths, months)

	result := &domain.SimulationResult{
		PercentileCurves: agg.Curves,
		FinalValues:      agg.FinalValues,
		InvestedCapital:  invested,
		Headline: domain.HeadlineMetrics{
			MedianFinalValue: agg.Curves.P50[months],
			WorstCase:        agg.Curves.P10[months],
			BestCase:         agg.Curves.P90[months],
			MinFinalValue:    agg.MinFinal,
			MaxFinalValue:    agg.MaxFinal,
			TotalInvested:    invested[months],
		},
		Months:            months,
		NumSimulations:    cfg.NumSimulations,
		Seed:              seed,
		InflationAdjusted: cfg.AdjustForInflation,
		Elapsed:           time.Since(start),
	}
	if cfg.KeepRawPaths {
		result.RawPaths = paths
	}

	e.Logger.Infof("simulation finished: %d paths x %d months in %s (median final %.2f)",
		cfg.NumSimulations, months, result.Elapsed, result.Headline.MedianFinalValue)
	return result, nil
}

// generatePath runs the sequential per-path recurrence. Per month, in
// order: apply the sampled return, apply the fee drag, add the
// contribution. Month 0 is the initial capital exactly, untouched by
// returns and fees.
//
// Balances are not clamped. A Gaussian tail draw below -100% can push a
// balance negative; clipping it would silently distort the distribution, so
// the value is kept as-is. Only non-finite balances abort the path.
func generatePath(idx, months int, initialCapital, feeFactor float64, contributions []float64, sampler *ReturnSampler) ([]float64, error) {
	rng := sampler.PathSource(idx)
	path := make([]float64, months+1)
	path[0] = initialCapital

	balance := initialCapital
	for m := 0; m < months; m++ {
		r := sampler.Draw(rng)
		balance *= 1 + r
		balance *= feeFactor
		balance += contributions[m]
		if math.IsNaN(balance) || math.IsInf(balance, 0) {
			return nil, &AnomalyError{Path: idx, Month: m + 1, Value: balance}
		}
		path[m+1] = balance
	}
	return path, nil
}
