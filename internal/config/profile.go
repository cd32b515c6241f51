package config

import (
	"bytes"
	"fmt"
	"os"

	"retire-mcs/internal/simulation"

	"gopkg.in/yaml.v3"
)

// ProfileFile is the on-disk form of a simulation request.
type ProfileFile struct {
	Name        string                          `yaml:"name,omitempty"`
	Simulations int                             `yaml:"simulations,omitempty"`
	Market      *simulation.MarketOverrides     `yaml:"market,omitempty"`
	Profile     simulation.UserFinancialProfile `yaml:"profile"`
}

// SimulationConfig converts the file into a run request.
func (f ProfileFile) SimulationConfig() simulation.SimulationConfig {
	return simulation.SimulationConfig{
		Simulations: f.Simulations,
		Market:      f.Market,
		Profile:     f.Profile,
	}
}

// LoadProfile reads a YAML profile file.
func LoadProfile(path string) (*ProfileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes YAML profile bytes, rejecting unknown keys.
func ParseProfile(data []byte) (*ProfileFile, error) {
	var f ProfileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &f, nil
}

// SaveProfile writes f as YAML to path.
func SaveProfile(path string, f ProfileFile) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}
	return nil
}
