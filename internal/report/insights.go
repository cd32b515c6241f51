package report

import (
	"fmt"

	"retire-mcs/internal/risk"
	"retire-mcs/internal/simulation"
)

func generateInsights(r *Report, profile simulation.UserFinancialProfile) []Insight {
	var insights []Insight
	readiness := r.Statistics.ReadinessScore
	band := r.ConfidenceIntervals.ReadinessScore
	alloc := profile.AssetAllocation

	switch {
	case readiness.Mean >= 80:
		insights = append(insights, Insight{
			Type:    InsightSuccess,
			Title:   "On Track for Retirement",
			Message: fmt.Sprintf("Your average readiness score is %.0f; most simulated markets fully fund your target income.", readiness.Mean),
			Action:  "Keep contributing and rebalance once a year.",
		})
	case readiness.Mean >= 50:
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Title:   "Partially Funded",
			Message: fmt.Sprintf("Your average readiness score is %.0f; typical markets cover part of the %d years of income targeted.", readiness.Mean, int(simulation.TargetCoverageYears)),
			Action:  "Increase monthly contributions to close the gap.",
		})
	default:
		insights = append(insights, Insight{
			Type:    InsightCritical,
			Title:   "Significant Shortfall",
			Message: fmt.Sprintf("Your average readiness score is %.0f; savings cover less than half of the targeted retirement income in a typical market.", readiness.Mean),
			Action:  "Raise contributions, extend your working years, or lower the target income.",
		})
	}

	if band.P5 < 40 {
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Title:   "Downside Exposure",
			Message: fmt.Sprintf("In the worst 5%% of markets the readiness score drops to %.0f.", band.P5),
			Action:  "Hold an emergency reserve and avoid relying on best-case returns.",
		})
	}

	if spread := band.P95 - band.P5; spread > 50 {
		insights = append(insights, Insight{
			Type:    InsightInfo,
			Title:   "Wide Range of Outcomes",
			Message: fmt.Sprintf("Readiness varies by %.0f points between the 5th and 95th percentile.", spread),
			Action:  "Review your stock/bond mix to match your tolerance for uncertainty.",
		})
	}

	if profile.YearsToRetirement < 10 && alloc.Stocks > 0.8 {
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Title:   "Aggressive Allocation Near Retirement",
			Message: fmt.Sprintf("%.0f%% of the portfolio is in stocks with %d years to go.", alloc.Stocks*100, profile.YearsToRetirement),
			Action:  "Consider shifting gradually towards bonds as retirement approaches.",
		})
	}
	if profile.YearsToRetirement >= 20 && alloc.Stocks < 0.5 {
		insights = append(insights, Insight{
			Type:    InsightInfo,
			Title:   "Conservative Allocation for a Long Horizon",
			Message: fmt.Sprintf("Only %.0f%% is invested in stocks with %d years until retirement.", alloc.Stocks*100, profile.YearsToRetirement),
			Action:  "A higher equity share may improve long-run growth.",
		})
	}

	if r.RiskAssessment.EmpiricalSuccessRate >= 90 && r.RiskAssessment.OverallRisk == risk.Low {
		insights = append(insights, Insight{
			Type:    InsightSuccess,
			Title:   "High Probability of Success",
			Message: fmt.Sprintf("%.0f%% of simulated markets reach a readiness score of %.0f or more.", r.RiskAssessment.EmpiricalSuccessRate, risk.SuccessThreshold),
			Action:  "Consider whether an earlier retirement date is feasible.",
		})
	}

	if r.ExcludedScenarios > 0 {
		insights = append(insights, Insight{
			Type:    InsightInfo,
			Title:   "Scenarios Excluded",
			Message: fmt.Sprintf("%d of %d scenarios produced non-finite values and were left out of the statistics.", r.ExcludedScenarios, r.TotalSimulations),
			Action:  "Check the market parameters for extreme means or deviations.",
		})
	}

	return insights
}
