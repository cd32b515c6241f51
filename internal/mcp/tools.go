package mcp

import (
	"fmt"

	"retire-mcs/internal/simulation"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// RunSimulationInput mirrors the runSimulation request.
type RunSimulationInput struct {
	Simulations  int                             `json:"simulations,omitempty" jsonschema:"number of scenarios to simulate"`
	MarketParams *simulation.MarketOverrides     `json:"marketParams,omitempty" jsonschema:"optional market assumptions; omitted fields use the defaults"`
	UserData     simulation.UserFinancialProfile `json:"userData" jsonschema:"the savings plan to project"`
	Seed         *int64                          `json:"seed,omitempty" jsonschema:"optional seed for a reproducible run"`
}

// MarketDefaultsInput takes no arguments.
type MarketDefaultsInput struct{}

func (s *Server) registerTools() error {
	runSchema, err := jsonschema.For[RunSimulationInput](nil)
	if err != nil {
		return fmt.Errorf("run_retirement_simulation schema: %w", err)
	}
	if p, ok := runSchema.Properties["simulations"]; ok {
		p.Description = fmt.Sprintf("Number of scenarios to simulate (default %d, clamped to 1..%d).",
			s.cfg.Simulation.DefaultSimulations, s.cfg.Simulation.MaxSimulations)
	}

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "run_retirement_simulation",
		Description: "Run a Monte-Carlo projection of retirement readiness for a savings plan. " +
			"Each scenario draws correlated equity/bond returns and inflation, compounds savings and monthly contributions " +
			"until retirement and scores how many years of the inflation-adjusted target income are covered (0-100, 25 years = 100).\n\n" +
			"Returns summary statistics, percentile bands, a risk assessment and threshold-based insights.\n" +
			"STRICT GUARDRAIL: Do not invent probabilities or projections if this tool returns an error; report the error instead.",
		InputSchema: runSchema,
	}, s.handleRunSimulation)

	defaultsSchema, err := jsonschema.For[MarketDefaultsInput](nil)
	if err != nil {
		return fmt.Errorf("get_market_defaults schema: %w", err)
	}
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_market_defaults",
		Description: "Get the default market assumptions and engine limits used when a simulation omits them.",
		InputSchema: defaultsSchema,
	}, s.handleGetMarketDefaults)

	return nil
}
