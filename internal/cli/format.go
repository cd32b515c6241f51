package cli

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats an amount with thousands separators and no decimals.
func FormatMoney(v float64) string {
	neg := v < 0
	s := fmt.Sprintf("%.0f", math.Abs(v))

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent formats a fraction as a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
