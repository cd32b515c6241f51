package simulation

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Built-in run limits, used when the environment does not override them.
const (
	// DefaultSimulations is the scenario count used when a request asks for none.
	DefaultSimulations = 10000
	// DefaultMaxSimulations caps every request.
	DefaultMaxSimulations = 50000
	// DefaultBatchSize is the number of scenarios one worker runs per task.
	DefaultBatchSize = 1000
)

// Options bounds a run. They come from the application configuration.
type Options struct {
	DefaultSimulations int
	MaxSimulations     int
	BatchSize          int
	Workers            int
}

// DefaultOptions returns the built-in limits with one worker per CPU.
func DefaultOptions() Options {
	return Options{
		DefaultSimulations: DefaultSimulations,
		MaxSimulations:     DefaultMaxSimulations,
		BatchSize:          DefaultBatchSize,
		Workers:            runtime.GOMAXPROCS(0),
	}
}

// Validate rejects limits the engine cannot run with.
func (o Options) Validate() error {
	switch {
	case o.MaxSimulations <= 0:
		return configurationError("maxSimulations", "must be positive, got %d", o.MaxSimulations)
	case o.BatchSize <= 0:
		return configurationError("batchSize", "must be positive, got %d", o.BatchSize)
	case o.Workers <= 0:
		return configurationError("workers", "must be positive, got %d", o.Workers)
	}
	return nil
}

// SimulationConfig is a single run request.
type SimulationConfig struct {
	// Simulations is the requested scenario count. Zero selects the default;
	// anything else is clamped to [1, MaxSimulations].
	Simulations int
	Market      *MarketOverrides
	Profile     UserFinancialProfile
}

// RunResult holds the collected outcomes of a completed run.
type RunResult struct {
	Requested int
	Executed  int
	Excluded  int
	Market    MarketParameters
	Outcomes  []ScenarioOutcome
}

// Engine performs the Monte-Carlo simulation.
type Engine struct {
	opts Options
	seed *int64
}

// NewEngine returns an unseeded engine bound to opts. Options are validated on each Run.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// SetSeed makes every subsequent run reproducible.
func (e *Engine) SetSeed(seed int64) {
	e.seed = &seed
}

// ClampSimulations bounds a requested count to [1, max].
func ClampSimulations(requested, max int) int {
	if requested < 1 {
		return 1
	}
	if requested > max {
		return max
	}
	return requested
}

type batch struct {
	size int
	seed int64
}

// Run validates the request, then executes all scenarios in batches over a
// bounded worker pool. Outcomes are returned in batch order only after every
// batch has finished.
func (e *Engine) Run(ctx context.Context, cfg SimulationConfig) (RunResult, error) {
	if err := e.opts.Validate(); err != nil {
		return RunResult{}, err
	}
	market := cfg.Market.Resolve()
	if err := market.Validate(); err != nil {
		return RunResult{}, err
	}
	if err := cfg.Profile.Validate(); err != nil {
		return RunResult{}, err
	}

	requested := cfg.Simulations
	if requested == 0 {
		requested = e.opts.DefaultSimulations
	}
	count := ClampSimulations(requested, e.opts.MaxSimulations)

	logger := log.With().Str("run_id", uuid.NewString()).Logger()
	start := time.Now()

	batches := e.planBatches(count)
	results := make([][]ScenarioOutcome, len(batches))
	excluded := make([]int, len(batches))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	dispatched := 0
	for i, b := range batches {
		if ctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], excluded[i] = runBatch(NewGenerator(b.seed), market, cfg.Profile, b.size)
			completed.Add(int64(b.size))
			return nil
		})
	}

	if err := g.Wait(); err != nil || dispatched < len(batches) {
		cause := context.Cause(ctx)
		if cause == nil {
			cause = err
		}
		logger.Warn().
			Int64("completed", completed.Load()).
			Int("simulations", count).
			Msg("Simulation cancelled")
		return RunResult{}, &CancelledError{Completed: int(completed.Load()), Requested: count, Cause: cause}
	}

	res := RunResult{
		Requested: requested,
		Executed:  count,
		Market:    market,
		Outcomes:  make([]ScenarioOutcome, 0, count),
	}
	for i := range batches {
		res.Outcomes = append(res.Outcomes, results[i]...)
		res.Excluded += excluded[i]
	}

	logger.Info().
		Int("simulations", count).
		Int("batches", len(batches)).
		Int("workers", e.opts.Workers).
		Int("excluded", res.Excluded).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation run completed")

	if len(res.Outcomes) == 0 {
		return RunResult{}, &FieldError{Kind: ErrComputation, Field: "outcomes", Reason: "every scenario produced a non-finite result"}
	}
	return res, nil
}

// planBatches splits count into fixed-size batches and seeds each one from the
// run's master generator, so results do not depend on worker scheduling.
func (e *Engine) planBatches(count int) []batch {
	master := e.masterGenerator()
	n := (count + e.opts.BatchSize - 1) / e.opts.BatchSize
	batches := make([]batch, n)
	remaining := count
	for i := range batches {
		size := min(e.opts.BatchSize, remaining)
		batches[i] = batch{size: size, seed: master.Seed()}
		remaining -= size
	}
	return batches
}

func (e *Engine) masterGenerator() *Generator {
	if e.seed != nil {
		return NewGenerator(*e.seed)
	}
	return NewGenerator(time.Now().UnixNano())
}

func runBatch(g *Generator, market MarketParameters, profile UserFinancialProfile, size int) ([]ScenarioOutcome, int) {
	outcomes := make([]ScenarioOutcome, 0, size)
	skipped := 0
	for range size {
		draw := DrawScenario(g, market)
		out, err := Project(draw, profile)
		if err != nil {
			skipped++
			log.Debug().Err(err).
				Float64("stock_return", draw.StockReturn).
				Float64("bond_return", draw.BondReturn).
				Float64("inflation", draw.Inflation).
				Msg("Scenario excluded")
			continue
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, skipped
}
