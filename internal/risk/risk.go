// Package risk classifies aggregated readiness scores into risk tiers.
package risk

import (
	"retire-mcs/internal/stats"
)

// SuccessThreshold is the readiness score treated as a successful outcome.
const SuccessThreshold = 70.0

// Level is a coarse risk tier.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Assessment is the risk block of a simulation report.
type Assessment struct {
	OverallRisk          Level    `json:"overallRisk"`
	ReadinessRisk        Level    `json:"readinessRisk"`
	VolatilityRisk       Level    `json:"volatilityRisk"`
	SuccessRate          float64  `json:"successRate"`
	EmpiricalSuccessRate float64  `json:"empiricalSuccessRate"`
	Recommendations      []string `json:"recommendations"`
}

// SuccessRate models readiness scores as Normal(mean, stdDev) and returns the
// percentage expected at or above SuccessThreshold. This is a parametric
// approximation; EmpiricalSuccessRate counts the actual outcomes.
func SuccessRate(s stats.Summary) float64 {
	if s.StdDev == 0 {
		if s.Mean >= SuccessThreshold {
			return 100
		}
		return 0
	}
	z := (SuccessThreshold - s.Mean) / s.StdDev
	return 100 * (1 - stats.NormalCDF(z))
}

// EmpiricalSuccessRate is the percentage of scores at or above SuccessThreshold.
func EmpiricalSuccessRate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	hits := 0
	for _, s := range scores {
		if s >= SuccessThreshold {
			hits++
		}
	}
	return 100 * float64(hits) / float64(len(scores))
}

// Assess classifies the readiness-score summary.
func Assess(s stats.Summary) Assessment {
	a := Assessment{
		OverallRisk:    overallLevel(s),
		ReadinessRisk:  readinessLevel(s.Mean),
		VolatilityRisk: volatilityLevel(s.StdDev),
		SuccessRate:    SuccessRate(s),
	}
	a.Recommendations = recommendations(a)
	return a
}

func overallLevel(s stats.Summary) Level {
	switch {
	case s.Mean < 50 || s.StdDev > 25:
		return High
	case s.Mean < 70 || s.StdDev > 15:
		return Medium
	default:
		return Low
	}
}

func readinessLevel(mean float64) Level {
	switch {
	case mean < 50:
		return High
	case mean < 70:
		return Medium
	default:
		return Low
	}
}

func volatilityLevel(sd float64) Level {
	switch {
	case sd > 25:
		return High
	case sd > 15:
		return Medium
	default:
		return Low
	}
}

func recommendations(a Assessment) []string {
	var recs []string

	switch a.ReadinessRisk {
	case High:
		recs = append(recs,
			"Increase your monthly contribution; the plan falls short of the target in most scenarios.",
			"Consider delaying retirement to lengthen the accumulation period.",
			"Revisit the target retirement income to confirm it reflects essential spending.")
	case Medium:
		recs = append(recs,
			"Raise contributions gradually, for example with each salary increase.",
			"Review the plan annually to confirm it stays on track.")
	default:
		recs = append(recs, "Stay the course and rebalance annually to keep the target allocation.")
	}

	switch a.VolatilityRisk {
	case High:
		recs = append(recs, "Outcomes vary widely; a more balanced stock/bond mix would narrow the range of results.")
	case Medium:
		recs = append(recs, "Rebalance periodically so market swings do not drift the portfolio away from its target mix.")
	}

	if a.OverallRisk == High && a.ReadinessRisk != High {
		recs = append(recs, "Build a cash buffer for the years around retirement to reduce sequence-of-returns exposure.")
	}
	return recs
}
