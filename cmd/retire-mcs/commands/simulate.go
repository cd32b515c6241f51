package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"retire-mcs/internal/cli"
	"retire-mcs/internal/config"
	"retire-mcs/internal/forecast"
	"retire-mcs/internal/report"

	"github.com/spf13/cobra"
)

type simulateFlags struct {
	profile     string
	simulations int
	seed        int64
	format      string
	output      string
}

func newSimulateCmd() *cobra.Command {
	var f simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a projection for a YAML profile",
		Example: `  retire-mcs simulate --profile mid-career
  retire-mcs simulate --profile ./me.yaml --simulations 20000 --seed 42 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "profile file, or a name resolved under DATA_PATH/profiles")
	cmd.Flags().IntVarP(&f.simulations, "simulations", "n", 0, "number of scenarios (overrides the profile)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for a reproducible run")
	cmd.Flags().StringVarP(&f.format, "format", "f", "table", "output format: table, json or csv")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runSimulate(cmd *cobra.Command, f simulateFlags) error {
	path := resolveProfilePath(f.profile, cfg.ProfileDir)
	pf, err := config.LoadProfile(path)
	if err != nil {
		return err
	}

	simCfg := pf.SimulationConfig()
	if cmd.Flags().Changed("simulations") {
		simCfg.Simulations = f.simulations
	}

	svc := forecast.NewService(cfg.Simulation)
	switch {
	case cmd.Flags().Changed("seed"):
		svc = svc.WithSeed(f.seed)
	case cfg.Seed != nil:
		svc = svc.WithSeed(*cfg.Seed)
	}

	title := pf.Name
	if title == "" {
		title = filepath.Base(path)
	}

	// Render fully before touching --output so a failed run leaves no file behind.
	var buf bytes.Buffer
	if err := renderSimulation(cmd.Context(), &buf, svc, simCfg, f.format, title); err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), f.output, buf.Bytes())
}

func renderSimulation(ctx context.Context, w io.Writer, svc *forecast.Service, simCfg forecast.SimulationConfig, format, title string) error {
	switch strings.ToLower(format) {
	case "table":
		r, err := svc.Run(ctx, simCfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, cli.RenderReport(title, r))
		return err
	case "json":
		r, err := svc.Run(ctx, simCfg)
		if err != nil {
			return err
		}
		return writeJSON(w, r)
	case "csv":
		run, err := svc.Simulate(ctx, simCfg)
		if err != nil {
			return err
		}
		return report.WriteOutcomesCSV(w, run.Outcomes)
	default:
		return fmt.Errorf("unknown format %q (want table, json or csv)", format)
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) (err error) {
	if path == "" {
		_, err = stdout.Write(data)
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// resolveProfilePath treats a bare name without extension as a file under dir.
func resolveProfilePath(p, dir string) string {
	if _, err := os.Stat(p); err == nil {
		return p
	}
	if filepath.Base(p) != p || filepath.Ext(p) != "" {
		return p
	}
	return filepath.Join(dir, p+".yaml")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
