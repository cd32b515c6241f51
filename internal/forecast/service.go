// Package forecast is the single entry point of the projection engine:
// it runs the Monte-Carlo simulation and builds the report.
package forecast

import (
	"context"
	"fmt"

	"retire-mcs/internal/report"
	"retire-mcs/internal/simulation"
)

// SimulationConfig is the caller's run request.
type SimulationConfig = simulation.SimulationConfig

// Service is stateless apart from its limits; it is safe for concurrent use.
type Service struct {
	opts simulation.Options
	seed *int64
}

func NewService(opts simulation.Options) *Service {
	return &Service{opts: opts}
}

// WithSeed returns a copy of the service whose runs are reproducible.
func (s *Service) WithSeed(seed int64) *Service {
	cp := *s
	cp.seed = &seed
	return &cp
}

// Options returns the limits the service runs with.
func (s *Service) Options() simulation.Options {
	return s.opts
}

// Run executes the simulation described by cfg and returns a new report.
func (s *Service) Run(ctx context.Context, cfg SimulationConfig) (*report.Report, error) {
	res, err := s.Simulate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	r, err := report.Build(res, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return r, nil
}

// Simulate runs the scenarios without aggregating them.
func (s *Service) Simulate(ctx context.Context, cfg SimulationConfig) (simulation.RunResult, error) {
	engine := simulation.NewEngine(s.opts)
	if s.seed != nil {
		engine.SetSeed(*s.seed)
	}
	return engine.Run(ctx, cfg)
}
