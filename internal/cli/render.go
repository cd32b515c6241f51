// Package cli renders simulation reports for the terminal.
package cli

import (
	"fmt"
	"strings"

	"retire-mcs/internal/report"
	"retire-mcs/internal/risk"
	"retire-mcs/internal/stats"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorDim    = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
	colorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// Table is a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], len(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			format := " %*s "
			if i == 0 {
				format = " %-*s "
			}
			b.WriteString(valueStyle.Render(fmt.Sprintf(format, widths[i], cell)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// DefaultReportTitle heads a report rendered without a profile name.
const DefaultReportTitle = "Retirement Readiness Simulation"

// RenderReport renders the full report under a single title box, then tables and insights.
func RenderReport(title string, r *report.Report) string {
	var b strings.Builder

	if title == "" {
		title = DefaultReportTitle
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d scenarios simulated", r.TotalSimulations)))
	if r.ExcludedScenarios > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(", %d excluded", r.ExcludedScenarios)))
	}
	b.WriteString("\n\n")

	st := r.Statistics
	b.WriteString(RenderTable(Table{
		Title:   "Statistics",
		Headers: []string{"Metric", "Mean", "Median", "Std Dev", "Min", "Max"},
		Rows: [][]string{
			summaryRow("Readiness score", st.ReadinessScore, formatScore),
			summaryRow("Total savings", st.TotalSavings, FormatMoney),
			summaryRow("Portfolio return", st.PortfolioReturn, FormatPercent),
		},
	}))
	b.WriteString("\n")

	ci := r.ConfidenceIntervals
	b.WriteString(RenderTable(Table{
		Title:   "Confidence Intervals",
		Headers: []string{"Metric", "5th", "25th", "50th", "75th", "95th"},
		Rows: [][]string{
			bandRow("Readiness score", ci.ReadinessScore, formatScore),
			bandRow("Total savings", ci.TotalSavings, FormatMoney),
		},
	}))
	b.WriteString("\n")

	c := r.ScenarioAnalysis.ScenarioCounts
	b.WriteString(RenderTable(Table{
		Title:   "Scenarios",
		Headers: []string{"Bucket", "Count", "Share"},
		Rows: [][]string{
			countRow("Excellent (80+)", c.Excellent, r),
			countRow("Good (60-79)", c.Good, r),
			countRow("Moderate (40-59)", c.Moderate, r),
			countRow("Poor (<40)", c.Poor, r),
		},
	}))
	b.WriteString("\n")

	ra := r.RiskAssessment
	b.WriteString("  " + headerStyle.Render("Risk") + "\n")
	b.WriteString(fmt.Sprintf("  Overall %s · Readiness %s · Volatility %s\n",
		riskStyle(ra.OverallRisk), riskStyle(ra.ReadinessRisk), riskStyle(ra.VolatilityRisk)))
	b.WriteString(fmt.Sprintf("  Success rate %.1f%% (modelled) · %.1f%% (observed)\n", ra.SuccessRate, ra.EmpiricalSuccessRate))
	for _, rec := range ra.Recommendations {
		b.WriteString(mutedStyle.Render("  • "+rec) + "\n")
	}

	if len(r.Insights) > 0 {
		b.WriteString("\n  " + headerStyle.Render("Insights") + "\n")
		for _, in := range r.Insights {
			b.WriteString(fmt.Sprintf("  [%s] %s: %s\n", insightStyle(in.Type), in.Title, in.Message))
			b.WriteString(mutedStyle.Render("      → "+in.Action) + "\n")
		}
	}
	return b.String()
}

func summaryRow(name string, s stats.Summary, f func(float64) string) []string {
	return []string{name, f(s.Mean), f(s.Median), f(s.StdDev), f(s.Min), f(s.Max)}
}

func bandRow(name string, band stats.Band, f func(float64) string) []string {
	return []string{name, f(band.P5), f(band.P25), f(band.P50), f(band.P75), f(band.P95)}
}

func countRow(name string, n int, r *report.Report) []string {
	total := r.TotalSimulations - r.ExcludedScenarios
	share := 0.0
	if total > 0 {
		share = float64(n) / float64(total)
	}
	return []string{name, fmt.Sprintf("%d", n), FormatPercent(share)}
}

func riskStyle(l risk.Level) string {
	color := colorGreen
	switch l {
	case risk.High:
		color = colorRed
	case risk.Medium:
		color = colorOrange
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(string(l))
}

func insightStyle(t report.InsightType) string {
	color := colorAccent
	switch t {
	case report.InsightCritical:
		color = colorRed
	case report.InsightWarning:
		color = colorOrange
	case report.InsightSuccess:
		color = colorGreen
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(t))
}
