package simulation

import "math"

// AllocationTolerance is the accepted deviation of stocks+bonds from 1.0.
const AllocationTolerance = 1e-3

// AssetAllocation holds portfolio weights; they must sum to 1.
type AssetAllocation struct {
	Stocks float64 `json:"stocks" yaml:"stocks" jsonschema:"equity weight between 0 and 1"`
	Bonds  float64 `json:"bonds" yaml:"bonds" jsonschema:"bond weight between 0 and 1"`
}

// UserFinancialProfile is the read-only savings plan being projected.
type UserFinancialProfile struct {
	CurrentSavings         float64         `json:"currentSavings" yaml:"current_savings" jsonschema:"savings today"`
	MonthlyContribution    float64         `json:"monthlyContribution" yaml:"monthly_contribution" jsonschema:"amount added every month until retirement"`
	YearsToRetirement      int             `json:"yearsToRetirement" yaml:"years_to_retirement" jsonschema:"whole years until retirement"`
	TargetRetirementIncome float64         `json:"targetRetirementIncome" yaml:"target_retirement_income" jsonschema:"desired annual income in today's money"`
	AssetAllocation        AssetAllocation `json:"assetAllocation" yaml:"asset_allocation"`
}

// Validate fails fast on profiles that cannot be projected.
func (p UserFinancialProfile) Validate() error {
	switch {
	case !isFinite(p.CurrentSavings) || p.CurrentSavings < 0:
		return validationError("currentSavings", "must be a non-negative number, got %v", p.CurrentSavings)
	case !isFinite(p.MonthlyContribution) || p.MonthlyContribution < 0:
		return validationError("monthlyContribution", "must be a non-negative number, got %v", p.MonthlyContribution)
	case p.YearsToRetirement < 0:
		return validationError("yearsToRetirement", "must not be negative, got %d", p.YearsToRetirement)
	case !isFinite(p.TargetRetirementIncome) || p.TargetRetirementIncome <= 0:
		return validationError("targetRetirementIncome", "must be positive, got %v", p.TargetRetirementIncome)
	}

	a := p.AssetAllocation
	if !isFinite(a.Stocks) || a.Stocks < 0 {
		return validationError("assetAllocation.stocks", "must be between 0 and 1, got %v", a.Stocks)
	}
	if !isFinite(a.Bonds) || a.Bonds < 0 {
		return validationError("assetAllocation.bonds", "must be between 0 and 1, got %v", a.Bonds)
	}
	if sum := a.Stocks + a.Bonds; math.Abs(sum-1) > AllocationTolerance {
		return validationError("assetAllocation", "weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}
