package report

import (
	"fmt"
	"io"

	"retire-mcs/internal/simulation"

	"github.com/gocarina/gocsv"
)

// WriteOutcomesCSV writes one row per scenario outcome with a header line.
func WriteOutcomesCSV(w io.Writer, outcomes []simulation.ScenarioOutcome) error {
	if err := gocsv.Marshal(outcomes, w); err != nil {
		return fmt.Errorf("write outcomes csv: %w", err)
	}
	return nil
}
