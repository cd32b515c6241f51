package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"retire-mcs/internal/report"
	"retire-mcs/internal/risk"
	"retire-mcs/internal/simulation"
	"retire-mcs/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ResponseEnvelope wraps every tool result.
type ResponseEnvelope struct {
	Data     any               `json:"data"`
	Charts   map[string]string `json:"charts,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// WrapResponse builds the envelope, omitting empty sections.
func WrapResponse(data any, charts map[string]string, warnings []string) ResponseEnvelope {
	env := ResponseEnvelope{Data: data, Warnings: warnings}
	for k, v := range charts {
		if v == "" {
			continue
		}
		if env.Charts == nil {
			env.Charts = make(map[string]string)
		}
		env.Charts[k] = v
	}
	return env
}

func (s *Server) handleRunSimulation(ctx context.Context, _ *sdk.CallToolRequest, in RunSimulationInput) (*sdk.CallToolResult, any, error) {
	svc := s.service
	switch {
	case in.Seed != nil:
		svc = svc.WithSeed(*in.Seed)
	case s.cfg.Seed != nil:
		svc = svc.WithSeed(*s.cfg.Seed)
	}

	r, err := svc.Run(ctx, simulation.SimulationConfig{
		Simulations: in.Simulations,
		Market:      in.MarketParams,
		Profile:     in.UserData,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Simulation request failed")
		return nil, nil, describeError(err)
	}

	var charts map[string]string
	if s.cfg.EnableMermaidCharts {
		charts = map[string]string{
			"scenarios":   visuals.GenerateScenarioChart(r),
			"percentiles": visuals.GeneratePercentileChart(r.ConfidenceIntervals.ReadinessScore, risk.SuccessThreshold),
		}
	}

	return textResult(WrapResponse(r, charts, simulationWarnings(r, in.Simulations, s.cfg.Simulation.MaxSimulations)))
}

func (s *Server) handleGetMarketDefaults(_ context.Context, _ *sdk.CallToolRequest, _ MarketDefaultsInput) (*sdk.CallToolResult, any, error) {
	opts := s.service.Options()
	return textResult(WrapResponse(map[string]any{
		"marketParameters":   simulation.DefaultMarketParameters(),
		"defaultSimulations": opts.DefaultSimulations,
		"maxSimulations":     opts.MaxSimulations,
		"batchSize":          opts.BatchSize,
		"successThreshold":   risk.SuccessThreshold,
	}, nil, nil))
}

func simulationWarnings(r *report.Report, requested, max int) []string {
	var warnings []string
	if requested > max {
		warnings = append(warnings, fmt.Sprintf("Requested %d simulations; the run was capped at %d.", requested, max))
	}
	if requested < 0 {
		warnings = append(warnings, fmt.Sprintf("Requested %d simulations; the run was raised to 1.", requested))
	}
	if r.ExcludedScenarios > 0 {
		warnings = append(warnings, fmt.Sprintf("DATA INTEGRITY WARNING: %d scenario(s) produced non-finite values and were excluded from the statistics.", r.ExcludedScenarios))
	}
	return warnings
}

// describeError prefixes the error with its category so the client can tell
// bad input from an aborted run.
func describeError(err error) error {
	switch {
	case errors.Is(err, simulation.ErrValidation):
		return fmt.Errorf("invalid userData: %w", err)
	case errors.Is(err, simulation.ErrConfiguration):
		return fmt.Errorf("invalid marketParams: %w", err)
	case errors.Is(err, simulation.ErrCancelled):
		return fmt.Errorf("simulation aborted, no report produced: %w", err)
	default:
		return err
	}
}

func textResult(v any) (*sdk.CallToolResult, any, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(out)}},
	}, nil, nil
}
