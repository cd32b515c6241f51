package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"retire-mcs/internal/risk"
	"retire-mcs/internal/simulation"
	"retire-mcs/internal/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcome(score, savings float64) simulation.ScenarioOutcome {
	return simulation.ScenarioOutcome{
		TotalRetirementSavings:  savings,
		InflationAdjustedIncome: 50000,
		YearsOfIncomeCovered:    savings / 50000,
		ReadinessScore:          score,
		PortfolioReturn:         0.05,
	}
}

func testProfile() simulation.UserFinancialProfile {
	return simulation.UserFinancialProfile{
		CurrentSavings:         100000,
		MonthlyContribution:    1000,
		YearsToRetirement:      20,
		TargetRetirementIncome: 50000,
		AssetAllocation:        simulation.AssetAllocation{Stocks: 0.7, Bonds: 0.3},
	}
}

func TestBuild_ScenarioAnalysis(t *testing.T) {
	run := simulation.RunResult{
		Requested: 6,
		Executed:  6,
		Market:    simulation.DefaultMarketParameters(),
		Outcomes: []simulation.ScenarioOutcome{
			outcome(85, 1.2e6),
			outcome(80, 1.1e6),
			outcome(79.9, 1.0e6),
			outcome(60, 8e5),
			outcome(40, 5e5),
			outcome(12, 1.5e5),
		},
	}

	r, err := Build(run, testProfile())
	require.NoError(t, err)

	assert.Equal(t, ScenarioCounts{Excellent: 2, Good: 2, Moderate: 1, Poor: 1}, r.ScenarioAnalysis.ScenarioCounts)
	assert.Equal(t, 85.0, r.ScenarioAnalysis.BestCase.ReadinessScore)
	assert.Equal(t, 12.0, r.ScenarioAnalysis.WorstCase.ReadinessScore)
	assert.Equal(t, 6, r.TotalSimulations)
	assert.InDelta(t, r.Statistics.ReadinessScore.Median, r.ConfidenceIntervals.ReadinessScore.P50, 1e-9)
	assert.InDelta(t, 50.0, r.RiskAssessment.EmpiricalSuccessRate, 1e-9)
}

func TestBuild_DoesNotMutateOutcomes(t *testing.T) {
	outcomes := []simulation.ScenarioOutcome{outcome(30, 2e5), outcome(90, 1.5e6), outcome(55, 7e5)}
	before := append([]simulation.ScenarioOutcome(nil), outcomes...)

	_, err := Build(simulation.RunResult{Executed: 3, Outcomes: outcomes}, testProfile())
	require.NoError(t, err)

	if diff := cmp.Diff(before, outcomes); diff != "" {
		t.Errorf("outcomes were modified (-before +after):\n%s", diff)
	}
}

func TestBuild_FreshReportPerCall(t *testing.T) {
	run := simulation.RunResult{Executed: 2, Outcomes: []simulation.ScenarioOutcome{outcome(30, 2e5), outcome(90, 1.5e6)}}
	a, err := Build(run, testProfile())
	require.NoError(t, err)
	b, err := Build(run, testProfile())
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	a.Insights[0].Title = "changed"
	assert.NotEqual(t, a.Insights[0].Title, b.Insights[0].Title)
}

func TestBuild_Empty(t *testing.T) {
	_, err := Build(simulation.RunResult{}, testProfile())
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBuild_Insights(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		profile  func(p *simulation.UserFinancialProfile)
		excluded int
		titles   []string
		kind     InsightType
	}{
		{
			name:   "Shortfall",
			scores: []float64{10, 20, 30, 35},
			titles: []string{"Significant Shortfall", "Downside Exposure"},
			kind:   InsightCritical,
		},
		{
			name:   "OnTrack",
			scores: []float64{95, 96, 98, 100, 100},
			titles: []string{"On Track for Retirement", "High Probability of Success"},
			kind:   InsightSuccess,
		},
		{
			name:   "AggressiveNearRetirement",
			scores: []float64{55, 60, 65},
			profile: func(p *simulation.UserFinancialProfile) {
				p.YearsToRetirement = 5
				p.AssetAllocation = simulation.AssetAllocation{Stocks: 0.9, Bonds: 0.1}
			},
			titles: []string{"Partially Funded", "Aggressive Allocation Near Retirement"},
			kind:   InsightWarning,
		},
		{
			name:     "Excluded",
			scores:   []float64{55, 60, 65},
			excluded: 2,
			titles:   []string{"Partially Funded", "Scenarios Excluded"},
			kind:     InsightWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			if tt.profile != nil {
				tt.profile(&p)
			}
			run := simulation.RunResult{Executed: len(tt.scores) + tt.excluded, Excluded: tt.excluded}
			for _, s := range tt.scores {
				run.Outcomes = append(run.Outcomes, outcome(s, s*10000))
			}

			r, err := Build(run, p)
			require.NoError(t, err)

			titles := make([]string, 0, len(r.Insights))
			for _, in := range r.Insights {
				titles = append(titles, in.Title)
				assert.NotEmpty(t, in.Message)
				assert.NotEmpty(t, in.Action)
			}
			for _, want := range tt.titles {
				assert.Contains(t, titles, want)
			}
			assert.Equal(t, tt.kind, r.Insights[0].Type)
		})
	}
}

func TestBuild_RiskAssessmentUsesReadiness(t *testing.T) {
	run := simulation.RunResult{Executed: 3, Outcomes: []simulation.ScenarioOutcome{outcome(20, 1), outcome(30, 2), outcome(40, 3)}}
	r, err := Build(run, testProfile())
	require.NoError(t, err)
	assert.Equal(t, risk.High, r.RiskAssessment.OverallRisk)
	assert.Equal(t, risk.High, r.RiskAssessment.ReadinessRisk)
}

func TestWriteOutcomesCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutcomesCSV(&buf, []simulation.ScenarioOutcome{outcome(50, 6e5), outcome(75, 9e5)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "total_retirement_savings,inflation_adjusted_income,years_of_income_covered,readiness_score,portfolio_return,real_return", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "600000,50000,12,50,"), lines[1])
}
