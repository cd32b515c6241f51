package generator

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"retire-mcs/internal/config"
	"retire-mcs/internal/simulation"
)

// Presets maps preset names to their baseline plan.
var Presets = map[string]simulation.UserFinancialProfile{
	"starter": {
		CurrentSavings:         5000,
		MonthlyContribution:    300,
		YearsToRetirement:      40,
		TargetRetirementIncome: 45000,
		AssetAllocation:        simulation.AssetAllocation{Stocks: 0.9, Bonds: 0.1},
	},
	"mid-career": {
		CurrentSavings:         100000,
		MonthlyContribution:    1000,
		YearsToRetirement:      20,
		TargetRetirementIncome: 50000,
		AssetAllocation:        simulation.AssetAllocation{Stocks: 0.7, Bonds: 0.3},
	},
	"late-starter": {
		CurrentSavings:         40000,
		MonthlyContribution:    1500,
		YearsToRetirement:      8,
		TargetRetirementIncome: 55000,
		AssetAllocation:        simulation.AssetAllocation{Stocks: 0.4, Bonds: 0.6},
	},
}

type GeneratorConfig struct {
	Preset string // a Presets key, or "all"
	Count  int    // variants per preset; 1 writes the baseline unchanged
	Jitter float64
	Seed   int64
}

// PresetNames returns the preset keys in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Generate(cfg GeneratorConfig) ([]config.ProfileFile, error) {
	names := []string{cfg.Preset}
	if cfg.Preset == "all" {
		names = PresetNames()
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var files []config.ProfileFile

	for _, name := range names {
		base, ok := Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", name)
		}

		for i := 0; i < cfg.Count; i++ {
			p := base
			fileName := name
			if cfg.Count > 1 {
				fileName = fmt.Sprintf("%s-%02d", name, i+1)
				p = jitter(rng, base, cfg.Jitter)
			}
			files = append(files, config.ProfileFile{Name: fileName, Profile: p})
		}
	}
	return files, nil
}

// jitter scales each amount by a uniform factor in [1-j, 1+j] and shifts the
// equity weight by up to j, keeping the allocation summing to one.
func jitter(rng *rand.Rand, p simulation.UserFinancialProfile, j float64) simulation.UserFinancialProfile {
	scale := func(v float64) float64 {
		return math.Round(v * (1 + j*(2*rng.Float64()-1)))
	}

	p.CurrentSavings = max(0, scale(p.CurrentSavings))
	p.MonthlyContribution = max(0, scale(p.MonthlyContribution))
	p.TargetRetirementIncome = max(1, scale(p.TargetRetirementIncome))

	years := float64(p.YearsToRetirement) * (1 + j*(2*rng.Float64()-1))
	p.YearsToRetirement = max(1, int(math.Round(years)))

	stocks := p.AssetAllocation.Stocks + j*(2*rng.Float64()-1)
	stocks = math.Round(min(1, max(0, stocks))*100) / 100
	p.AssetAllocation = simulation.AssetAllocation{Stocks: stocks, Bonds: math.Round((1-stocks)*100) / 100}
	return p
}

func Save(outDir string, files []config.ProfileFile) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, f := range files {
		if err := config.SaveProfile(filepath.Join(outDir, f.Name+".yaml"), f); err != nil {
			return err
		}
	}
	return nil
}
