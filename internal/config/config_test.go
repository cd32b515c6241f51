package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"retire-mcs/internal/simulation"

	"github.com/joho/godotenv"
)

func TestGodotenvQuoting(t *testing.T) {
	content := `SIM_PROFILE_NAME='plan with "double quotes"'`
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `plan with "double quotes"`
	if env["SIM_PROFILE_NAME"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["SIM_PROFILE_NAME"])
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATA_PATH", "/srv/retire")
	for _, k := range []string{"LOGS_FOLDER", "SIM_DEFAULT_COUNT", "SIM_MAX_COUNT", "SIM_BATCH_SIZE", "SIM_WORKERS", "SIM_SEED", "ENABLE_MERMAID_CHARTS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := fromEnv("")
	if err != nil {
		t.Fatalf("fromEnv failed: %v", err)
	}

	defaults := simulation.DefaultOptions()
	if cfg.Simulation != defaults {
		t.Errorf("expected default options %+v, got %+v", defaults, cfg.Simulation)
	}
	if cfg.LogDir != filepath.Join("/srv/retire", "logs") {
		t.Errorf("unexpected log dir %q", cfg.LogDir)
	}
	if cfg.Seed != nil {
		t.Errorf("expected no seed, got %d", *cfg.Seed)
	}
	if cfg.EnableMermaidCharts {
		t.Error("mermaid charts should be off by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("LOGS_FOLDER", "/var/log/retire")
	t.Setenv("SIM_DEFAULT_COUNT", "2500")
	t.Setenv("SIM_MAX_COUNT", "20000")
	t.Setenv("SIM_BATCH_SIZE", "500")
	t.Setenv("SIM_WORKERS", "3")
	t.Setenv("SIM_SEED", "77")
	t.Setenv("ENABLE_MERMAID_CHARTS", "true")

	cfg, err := fromEnv("")
	if err != nil {
		t.Fatalf("fromEnv failed: %v", err)
	}

	want := simulation.Options{DefaultSimulations: 2500, MaxSimulations: 20000, BatchSize: 500, Workers: 3}
	if cfg.Simulation != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Simulation)
	}
	if cfg.LogDir != "/var/log/retire" {
		t.Errorf("unexpected log dir %q", cfg.LogDir)
	}
	if cfg.Seed == nil || *cfg.Seed != 77 {
		t.Errorf("expected seed 77, got %v", cfg.Seed)
	}
	if !cfg.EnableMermaidCharts {
		t.Error("expected mermaid charts enabled")
	}
}

func TestFromEnv_InvalidLimits(t *testing.T) {
	t.Setenv("SIM_BATCH_SIZE", "0")
	_, err := fromEnv("")
	if !errors.Is(err, simulation.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
