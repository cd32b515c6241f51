package report

import (
	"fmt"

	"retire-mcs/internal/risk"
	"retire-mcs/internal/simulation"
	"retire-mcs/internal/stats"
)

// Build reduces a completed run into a fresh Report. The run's outcomes are
// read but never modified.
func Build(run simulation.RunResult, profile simulation.UserFinancialProfile) (*Report, error) {
	outcomes := run.Outcomes
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("build report: %w", stats.ErrEmptyInput)
	}

	scores := make([]float64, len(outcomes))
	savings := make([]float64, len(outcomes))
	returns := make([]float64, len(outcomes))
	for i, o := range outcomes {
		scores[i] = o.ReadinessScore
		savings[i] = o.TotalRetirementSavings
		returns[i] = o.PortfolioReturn
	}

	var st Statistics
	var err error
	if st.ReadinessScore, err = stats.Summarize(scores); err != nil {
		return nil, fmt.Errorf("summarize readiness score: %w", err)
	}
	if st.TotalSavings, err = stats.Summarize(savings); err != nil {
		return nil, fmt.Errorf("summarize total savings: %w", err)
	}
	if st.PortfolioReturn, err = stats.Summarize(returns); err != nil {
		return nil, fmt.Errorf("summarize portfolio return: %w", err)
	}

	ci := ConfidenceIntervals{
		ReadinessScore: stats.Bands(scores),
		TotalSavings:   stats.Bands(savings),
	}

	assessment := risk.Assess(st.ReadinessScore)
	assessment.EmpiricalSuccessRate = risk.EmpiricalSuccessRate(scores)

	analysis := analyzeScenarios(outcomes)

	r := &Report{
		TotalSimulations:     run.Executed,
		RequestedSimulations: run.Requested,
		ExcludedScenarios:    run.Excluded,
		MarketParameters:     run.Market,
		Statistics:           st,
		ConfidenceIntervals:  ci,
		RiskAssessment:       assessment,
		ScenarioAnalysis:     analysis,
	}
	r.Insights = generateInsights(r, profile)
	return r, nil
}

func analyzeScenarios(outcomes []simulation.ScenarioOutcome) ScenarioAnalysis {
	best, worst := outcomes[0], outcomes[0]
	var counts ScenarioCounts

	for _, o := range outcomes {
		if o.ReadinessScore > best.ReadinessScore {
			best = o
		}
		if o.ReadinessScore < worst.ReadinessScore {
			worst = o
		}

		switch {
		case o.ReadinessScore >= 80:
			counts.Excellent++
		case o.ReadinessScore >= 60:
			counts.Good++
		case o.ReadinessScore >= 40:
			counts.Moderate++
		default:
			counts.Poor++
		}
	}

	return ScenarioAnalysis{BestCase: best, WorstCase: worst, ScenarioCounts: counts}
}
