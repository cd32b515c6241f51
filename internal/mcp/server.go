package mcp

import (
	"context"
	"fmt"

	"retire-mcs/internal/config"
	"retire-mcs/internal/forecast"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server holds the state for the MCP server.
type Server struct {
	cfg     *config.AppConfig
	service *forecast.Service
	mcp     *sdk.Server
}

// NewServer creates a new MCP server and registers its tools.
func NewServer(cfg *config.AppConfig, version string) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		service: forecast.NewService(cfg.Simulation),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "retire-mcs",
			Version: version,
		}, nil),
	}
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return s, nil
}

// Start serves MCP over stdio until the client disconnects or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	log.Info().
		Int("max_simulations", s.cfg.Simulation.MaxSimulations).
		Int("workers", s.cfg.Simulation.Workers).
		Msg("MCP server listening on stdio")
	return s.mcp.Run(ctx, &sdk.StdioTransport{})
}
