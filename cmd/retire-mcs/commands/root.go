package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"retire-mcs/internal/config"
	"retire-mcs/internal/logging"
	"retire-mcs/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "retire-mcs",
	Short: "Monte-Carlo retirement readiness projections",
	Long: `Runs many randomized market scenarios against a savings plan and summarizes
the distribution of retirement readiness. Without a subcommand it serves the
simulation as MCP tools over stdio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Only the root command is an MCP server; subcommands may log to the terminal.
		if err := logging.Init(logging.Options{
			Verbose: verbose,
			Dir:     cfg.LogDir,
			Quiet:   cmd == cmd.Root(),
		}); err != nil {
			return err
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("retire-mcs starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(cfg, Version)
		if err != nil {
			return err
		}
		return server.Start(cmd.Context())
	},
}

// Execute runs the root command; SIGINT/SIGTERM cancel a running simulation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(newSimulateCmd(), newDefaultsCmd())
}
