package visuals

import (
	"fmt"
	"math"
	"strings"

	"retire-mcs/internal/report"
	"retire-mcs/internal/stats"
)

// GenerateScenarioChart creates a Mermaid bar chart of outcomes per readiness bucket.
func GenerateScenarioChart(r *report.Report) string {
	if r == nil {
		return ""
	}
	c := r.ScenarioAnalysis.ScenarioCounts
	counts := []int{c.Poor, c.Moderate, c.Good, c.Excellent}

	maxVal := 0
	values := make([]string, len(counts))
	for i, v := range counts {
		values[i] = fmt.Sprintf("%d", v)
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Scenario Outcomes by Readiness\"\n")
	sb.WriteString("    x-axis [\"Poor (<40)\", \"Moderate (40-59)\", \"Good (60-79)\", \"Excellent (80+)\"]\n")
	sb.WriteString(fmt.Sprintf("    y-axis \"Scenarios\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GeneratePercentileChart creates a Mermaid line chart of the readiness percentile band
// with the success threshold drawn alongside.
func GeneratePercentileChart(band stats.Band, threshold float64) string {
	points := []float64{band.P5, band.P25, band.P50, band.P75, band.P95}

	var values, limits []string
	for _, v := range points {
		values = append(values, fmt.Sprintf("%.1f", v))
		limits = append(limits, fmt.Sprintf("%.1f", threshold))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Readiness Score Percentiles\"\n")
	sb.WriteString("    x-axis [\"P5\", \"P25\", \"P50\", \"P75\", \"P95\"]\n")
	sb.WriteString("    y-axis \"Readiness Score\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(limits, ", ")))
	sb.WriteString("```")
	return sb.String()
}
