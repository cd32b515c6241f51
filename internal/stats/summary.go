package stats

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"
)

// Summary describes the central tendency and spread of one metric.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"` // population
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize reduces values to mean, population standard deviation, median and extrema.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	mean, err := mstats.Mean(values)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	sd, err := mstats.StandardDeviationPopulation(values)
	if err != nil {
		return Summary{}, fmt.Errorf("standard deviation: %w", err)
	}
	lo, err := mstats.Min(values)
	if err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	hi, err := mstats.Max(values)
	if err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}

	return Summary{
		Mean:   mean,
		Median: CalculateMedianContinuous(values),
		StdDev: sd,
		Min:    lo,
		Max:    hi,
	}, nil
}
