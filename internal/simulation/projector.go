package simulation

import (
	"fmt"
	"math"
)

const (
	// TargetCoverageYears is the number of years of income that maps to a full readiness score.
	TargetCoverageYears = 25.0

	shortHorizonYears   = 10
	shortHorizonPenalty = 0.8
	lowCoverageRatio    = 0.5
	surplusBonusRate    = 0.5
)

// ScenarioDraw is one simulated market realization, annualized.
type ScenarioDraw struct {
	StockReturn    float64 `json:"stockReturn"`
	BondReturn     float64 `json:"bondReturn"`
	Inflation      float64 `json:"inflation"`
	RealReturn     float64 `json:"realReturn"`
	BondRealReturn float64 `json:"bondRealReturn"`
}

// ScenarioOutcome is the projection of one draw against one profile.
type ScenarioOutcome struct {
	TotalRetirementSavings  float64 `json:"totalRetirementSavings" csv:"total_retirement_savings"`
	InflationAdjustedIncome float64 `json:"inflationAdjustedIncome" csv:"inflation_adjusted_income"`
	YearsOfIncomeCovered    float64 `json:"yearsOfIncomeCovered" csv:"years_of_income_covered"`
	ReadinessScore          float64 `json:"readinessScore" csv:"readiness_score"`
	PortfolioReturn         float64 `json:"portfolioReturn" csv:"portfolio_return"`
	RealReturn              float64 `json:"realReturn" csv:"real_return"`
}

// DrawScenario samples a correlated equity/bond pair and an independent inflation rate.
func DrawScenario(g *Generator, params MarketParameters) ScenarioDraw {
	stock, bond := g.CorrelatedPair(params.StockReturn, params.BondReturn, params.Correlation)
	inflation := g.Normal(params.Inflation.Mean, params.Inflation.StdDev)
	return ScenarioDraw{
		StockReturn:    stock,
		BondReturn:     bond,
		Inflation:      inflation,
		RealReturn:     stock - inflation,
		BondRealReturn: bond - inflation,
	}
}

// Project compounds the profile's savings and contributions under draw.
// A non-finite result is reported as ErrComputation.
func Project(draw ScenarioDraw, profile UserFinancialProfile) (ScenarioOutcome, error) {
	alloc := profile.AssetAllocation
	years := float64(profile.YearsToRetirement)
	months := float64(profile.YearsToRetirement * 12)

	portfolioReturn := alloc.Stocks*draw.StockReturn + alloc.Bonds*draw.BondReturn
	fvCurrent := profile.CurrentSavings * math.Pow(1+portfolioReturn, years)

	// Returns within rounding of zero give a monthly rate of exactly 0.
	fvContributions := profile.MonthlyContribution * months
	if monthly := math.Pow(1+portfolioReturn, 1.0/12) - 1; monthly != 0 {
		fvContributions = profile.MonthlyContribution * (math.Pow(1+monthly, months) - 1) / monthly
	}

	total := fvCurrent + fvContributions
	income := profile.TargetRetirementIncome * math.Pow(1+draw.Inflation, years)
	covered := total / income

	out := ScenarioOutcome{
		TotalRetirementSavings:  total,
		InflationAdjustedIncome: income,
		YearsOfIncomeCovered:    covered,
		ReadinessScore:          ReadinessScore(covered, profile.YearsToRetirement),
		PortfolioReturn:         portfolioReturn,
		RealReturn:              portfolioReturn - draw.Inflation,
	}
	if err := out.check(); err != nil {
		return ScenarioOutcome{}, err
	}
	return out, nil
}

// ReadinessScore maps years of income covered to a 0-100 score.
func ReadinessScore(yearsCovered float64, yearsToRetirement int) float64 {
	ratio := yearsCovered / TargetCoverageYears
	score := math.Min(100, ratio*100)

	if yearsCovered > TargetCoverageYears {
		bonus := (yearsCovered - TargetCoverageYears) * surplusBonusRate
		score += math.Min(bonus, 100-score)
	}
	if yearsToRetirement < shortHorizonYears && ratio < lowCoverageRatio {
		score *= shortHorizonPenalty
	}

	return math.Max(0, math.Min(100, score))
}

func (o ScenarioOutcome) check() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"totalRetirementSavings", o.TotalRetirementSavings},
		{"inflationAdjustedIncome", o.InflationAdjustedIncome},
		{"yearsOfIncomeCovered", o.YearsOfIncomeCovered},
		{"readinessScore", o.ReadinessScore},
		{"portfolioReturn", o.PortfolioReturn},
		{"realReturn", o.RealReturn},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("%w: %s is %v", ErrComputation, f.name, f.v)
		}
	}
	return nil
}
