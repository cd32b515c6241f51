// Package report assembles simulation outcomes into the immutable result
// handed back to callers.
package report

import (
	"retire-mcs/internal/risk"
	"retire-mcs/internal/simulation"
	"retire-mcs/internal/stats"
)

// Statistics summarizes the tracked metrics over all aggregated outcomes.
type Statistics struct {
	ReadinessScore  stats.Summary `json:"readinessScore"`
	TotalSavings    stats.Summary `json:"totalSavings"`
	PortfolioReturn stats.Summary `json:"portfolioReturn"`
}

// ConfidenceIntervals holds percentile bands per metric.
type ConfidenceIntervals struct {
	ReadinessScore stats.Band `json:"readinessScore"`
	TotalSavings   stats.Band `json:"totalSavings"`
}

// ScenarioCounts buckets outcomes by readiness score.
type ScenarioCounts struct {
	Excellent int `json:"excellent"` // >= 80
	Good      int `json:"good"`      // 60-79
	Moderate  int `json:"moderate"`  // 40-59
	Poor      int `json:"poor"`      // < 40
}

// ScenarioAnalysis holds the extreme outcomes and bucket counts.
type ScenarioAnalysis struct {
	BestCase       simulation.ScenarioOutcome `json:"bestCase"`
	WorstCase      simulation.ScenarioOutcome `json:"worstCase"`
	ScenarioCounts ScenarioCounts             `json:"scenarioCounts"`
}

// InsightType classifies an insight for presentation.
type InsightType string

const (
	InsightSuccess  InsightType = "success"
	InsightInfo     InsightType = "info"
	InsightWarning  InsightType = "warning"
	InsightCritical InsightType = "critical"
)

// Insight is a short threshold-driven observation with a suggested action.
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Action  string      `json:"action"`
}

// Report is the complete result of one simulation run.
type Report struct {
	TotalSimulations     int                         `json:"totalSimulations"`
	RequestedSimulations int                         `json:"requestedSimulations"`
	ExcludedScenarios    int                         `json:"excludedScenarios"`
	MarketParameters     simulation.MarketParameters `json:"marketParameters"`
	Statistics           Statistics                  `json:"statistics"`
	ConfidenceIntervals  ConfidenceIntervals         `json:"confidenceIntervals"`
	RiskAssessment       risk.Assessment             `json:"riskAssessment"`
	ScenarioAnalysis     ScenarioAnalysis            `json:"scenarioAnalysis"`
	Insights             []Insight                   `json:"insights"`
}
