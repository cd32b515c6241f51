package config

import (
	"path/filepath"
	"strings"
	"testing"

	"retire-mcs/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: mid-career
simulations: 5000
market:
  stock_return:
    mean: 0.08
    std_dev: 0.18
  correlation: 0.1
profile:
  current_savings: 100000
  monthly_contribution: 1000
  years_to_retirement: 20
  target_retirement_income: 50000
  asset_allocation:
    stocks: 0.7
    bonds: 0.3
`

func TestParseProfile(t *testing.T) {
	f, err := ParseProfile([]byte(sampleYAML))
	require.NoError(t, err)

	cfg := f.SimulationConfig()
	assert.Equal(t, 5000, cfg.Simulations)
	assert.Equal(t, 20, cfg.Profile.YearsToRetirement)
	assert.Equal(t, simulation.AssetAllocation{Stocks: 0.7, Bonds: 0.3}, cfg.Profile.AssetAllocation)

	market := cfg.Market.Resolve()
	assert.Equal(t, simulation.Distribution{Mean: 0.08, StdDev: 0.18}, market.StockReturn)
	assert.Equal(t, simulation.DefaultMarketParameters().BondReturn, market.BondReturn)
	assert.Equal(t, 0.1, market.Correlation)
}

func TestParseProfile_UnknownField(t *testing.T) {
	_, err := ParseProfile([]byte("profile:\n  current_saving: 10\n"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "current_saving"), err.Error())
}

func TestSaveAndLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	in := ProfileFile{
		Name: "roundtrip",
		Profile: simulation.UserFinancialProfile{
			CurrentSavings:         25000,
			MonthlyContribution:    400,
			YearsToRetirement:      35,
			TargetRetirementIncome: 40000,
			AssetAllocation:        simulation.AssetAllocation{Stocks: 0.9, Bonds: 0.1},
		},
	}
	require.NoError(t, SaveProfile(path, in))

	out, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
