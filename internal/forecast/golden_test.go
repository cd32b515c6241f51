package forecast_test

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"retire-mcs/internal/forecast"
	"retire-mcs/internal/report"
	"retire-mcs/internal/simulation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var update = flag.Bool("update", false, "update golden files")

func TestForecastPipeline_Golden(t *testing.T) {
	opts := simulation.Options{
		DefaultSimulations: 10000,
		MaxSimulations:     50000,
		BatchSize:          1000,
		Workers:            4,
	}
	svc := forecast.NewService(opts).WithSeed(42)

	cfg := forecast.SimulationConfig{
		Simulations: 10000,
		Profile: simulation.UserFinancialProfile{
			CurrentSavings:         100000,
			MonthlyContribution:    1000,
			YearsToRetirement:      20,
			TargetRetirementIncome: 50000,
			AssetAllocation:        simulation.AssetAllocation{Stocks: 0.7, Bonds: 0.3},
		},
	}

	r, err := svc.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	actualJSON, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}

	goldenPath := filepath.Join("..", "testdata", "golden", "forecast_report_golden.json")

	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("Failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, actualJSON, 0644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Golden file updated at %s", goldenPath)
		return
	}

	expectedJSON, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file (run with -update to generate): %v", err)
	}

	if bytes.Equal(expectedJSON, actualJSON) {
		return
	}

	// math.Exp uses FMA instructions when the CPU has them, so floats may
	// drift in the last bits; counts, tiers and messages must still match.
	var expected report.Report
	if err := json.Unmarshal(expectedJSON, &expected); err != nil {
		t.Fatalf("Failed to decode golden file: %v", err)
	}
	if diff := cmp.Diff(expected, *r, cmpopts.EquateApprox(1e-9, 1e-12)); diff != "" {
		tmpPath := goldenPath + ".actual"
		_ = os.WriteFile(tmpPath, actualJSON, 0644)
		t.Errorf("Report mismatch against golden file (-want +got):\n%s", diff)
		t.Errorf("Wrote actual output to %s for comparison. If the change was intentional, re-run with 'go test ./... -update'", tmpPath)
	}
}
