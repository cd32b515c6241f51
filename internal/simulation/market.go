package simulation

import "math"

// Distribution holds the annualized mean and standard deviation of a rate.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean" jsonschema:"annualized mean, e.g. 0.07 for 7%"`
	StdDev float64 `json:"stdDev" yaml:"std_dev" jsonschema:"annualized standard deviation, must be positive"`
}

// MarketParameters describes the two-asset return model plus inflation.
type MarketParameters struct {
	StockReturn Distribution `json:"stockReturn"`
	BondReturn  Distribution `json:"bondReturn"`
	Inflation   Distribution `json:"inflation"`
	Correlation float64      `json:"correlation"` // equity/bond, -1..1
}

// DefaultMarketParameters returns the built-in long-run assumptions.
func DefaultMarketParameters() MarketParameters {
	return MarketParameters{
		StockReturn: Distribution{Mean: 0.07, StdDev: 0.15},
		BondReturn:  Distribution{Mean: 0.04, StdDev: 0.05},
		Inflation:   Distribution{Mean: 0.025, StdDev: 0.01},
		Correlation: 0.3,
	}
}

// MarketOverrides is a partial MarketParameters. Nil fields fall back to the defaults.
type MarketOverrides struct {
	StockReturn *Distribution `json:"stockReturn,omitempty" yaml:"stock_return,omitempty" jsonschema:"equity return distribution (default 7% / 15%)"`
	BondReturn  *Distribution `json:"bondReturn,omitempty" yaml:"bond_return,omitempty" jsonschema:"bond return distribution (default 4% / 5%)"`
	Inflation   *Distribution `json:"inflation,omitempty" yaml:"inflation,omitempty" jsonschema:"inflation distribution (default 2.5% / 1%)"`
	Correlation *float64      `json:"correlation,omitempty" yaml:"correlation,omitempty" jsonschema:"equity/bond correlation between -1 and 1 (default 0.3)"`
}

// Resolve merges the overrides over the defaults. A nil receiver yields the defaults.
func (o *MarketOverrides) Resolve() MarketParameters {
	p := DefaultMarketParameters()
	if o == nil {
		return p
	}
	if o.StockReturn != nil {
		p.StockReturn = *o.StockReturn
	}
	if o.BondReturn != nil {
		p.BondReturn = *o.BondReturn
	}
	if o.Inflation != nil {
		p.Inflation = *o.Inflation
	}
	if o.Correlation != nil {
		p.Correlation = *o.Correlation
	}
	return p
}

// Validate rejects non-finite values, non-positive deviations and out-of-range correlation.
func (p MarketParameters) Validate() error {
	dists := []struct {
		name string
		d    Distribution
	}{
		{"stockReturn", p.StockReturn},
		{"bondReturn", p.BondReturn},
		{"inflation", p.Inflation},
	}
	for _, item := range dists {
		if !isFinite(item.d.Mean) {
			return configurationError(item.name+".mean", "must be a finite number")
		}
		if !isFinite(item.d.StdDev) || item.d.StdDev <= 0 {
			return configurationError(item.name+".stdDev", "must be positive, got %v", item.d.StdDev)
		}
	}
	if !isFinite(p.Correlation) || p.Correlation < -1 || p.Correlation > 1 {
		return configurationError("correlation", "must be within [-1, 1], got %v", p.Correlation)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
