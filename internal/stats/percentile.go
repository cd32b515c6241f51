package stats

import "math"

// StandardPercentiles are the cut points reported in confidence bands.
var StandardPercentiles = []float64{5, 25, 50, 75, 95}

// Band holds the standard percentile cut points of one metric.
type Band struct {
	P5  float64 `json:"5th"`
	P25 float64 `json:"25th"`
	P50 float64 `json:"50th"`
	P75 float64 `json:"75th"`
	P95 float64 `json:"95th"`
}

// PercentileSorted interpolates linearly between the two order statistics
// around the fractional index p/100*(n-1). sorted must be ascending.
func PercentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	p = math.Max(0, math.Min(100, p))

	idx := p / 100 * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Percentiles computes each requested percentile of values, keyed by p.
func Percentiles(values []float64, ps ...float64) map[float64]float64 {
	sorted := sortedCopy(values)
	res := make(map[float64]float64, len(ps))
	for _, p := range ps {
		res[p] = PercentileSorted(sorted, p)
	}
	return res
}

// Bands computes the standard percentile band of values.
func Bands(values []float64) Band {
	sorted := sortedCopy(values)
	return Band{
		P5:  PercentileSorted(sorted, 5),
		P25: PercentileSorted(sorted, 25),
		P50: PercentileSorted(sorted, 50),
		P75: PercentileSorted(sorted, 75),
		P95: PercentileSorted(sorted, 95),
	}
}
