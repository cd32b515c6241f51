package config

import (
	"os"
	"path/filepath"
	"strconv"

	"retire-mcs/internal/simulation"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Simulation          simulation.Options
	Seed                *int64
	DataPath            string
	LogDir              string
	ProfileDir          string
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv(exeDir)
}

func fromEnv(exeDir string) (*AppConfig, error) {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))
	profileDir := filepath.Join(dataPath, "profiles")

	defaults := simulation.DefaultOptions()
	cfg := &AppConfig{
		Simulation: simulation.Options{
			DefaultSimulations: getEnvInt("SIM_DEFAULT_COUNT", defaults.DefaultSimulations),
			MaxSimulations:     getEnvInt("SIM_MAX_COUNT", defaults.MaxSimulations),
			BatchSize:          getEnvInt("SIM_BATCH_SIZE", defaults.BatchSize),
			Workers:            getEnvInt("SIM_WORKERS", defaults.Workers),
		},
		DataPath:            dataPath,
		LogDir:              logDir,
		ProfileDir:          profileDir,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	if raw, ok := os.LookupEnv("SIM_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn().Str("value", raw).Msg("Ignoring invalid SIM_SEED")
		} else {
			cfg.Seed = &seed
		}
	}

	if err := cfg.Simulation.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer environment value")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
