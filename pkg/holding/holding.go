// Package holding projects the monthly carrying costs of a property while a
// renovation is underway.
package holding

import (
	"github.com/flipcalc/rehab-intelligence/pkg/constants"
	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
)

// Costs is the projected holding-cost burden over the renovation duration.
// MonthlyTotal is always the sum of the five monthly sub-costs and
// TotalHolding is MonthlyTotal times DurationMonths.
type Costs struct {
	DurationMonths   int     `json:"duration_months"`
	MonthlyInterest  float64 `json:"monthly_interest"`
	MonthlyTaxes     float64 `json:"monthly_taxes"`
	MonthlyInsurance float64 `json:"monthly_insurance"`
	MonthlyUtilities float64 `json:"monthly_utilities"`
	MonthlyHOA       float64 `json:"monthly_hoa"`
	MonthlyTotal     float64 `json:"monthly_total"`
	TotalHolding     float64 `json:"total_holding"`
}

// Input holds the parameters for a holding-cost projection. Rates are
// fractional decimals (0.10 = 10%).
type Input struct {
	RehabTotal float64
	ARV        float64
	SquareFeet float64
	MonthlyHOA float64
	LoanRate   float64
	LTV        float64
}

// DurationMonths is a step function of the rehab budget: bigger jobs carry
// longer. Thresholds are inclusive lower bounds, so a $75,000 budget lands in
// the 6-month band.
func DurationMonths(rehabTotal float64) int {
	switch {
	case rehabTotal >= 250000:
		return 10
	case rehabTotal >= 150000:
		return 8
	case rehabTotal >= 75000:
		return 6
	case rehabTotal >= 40000:
		return 4
	default:
		return 3
	}
}

// MonthlyUtilities is a step function of conditioned square footage.
func MonthlyUtilities(squareFeet float64) float64 {
	switch {
	case squareFeet < 1500:
		return 300
	case squareFeet < 2500:
		return 400
	case squareFeet < 4000:
		return 600
	default:
		return 900
	}
}

// Calculate projects the full holding-cost burden for a renovation. All money
// fields are rounded to cents.
func Calculate(in Input) Costs {
	c := Costs{
		DurationMonths:   DurationMonths(in.RehabTotal),
		MonthlyInterest:  mathutil.Round(in.ARV * in.LTV * in.LoanRate / constants.MonthsPerYear),
		MonthlyTaxes:     mathutil.Round(in.ARV * constants.AnnualPropertyTaxRate / constants.MonthsPerYear),
		MonthlyInsurance: mathutil.Round(in.ARV * constants.AnnualInsuranceRate / constants.MonthsPerYear),
		MonthlyUtilities: MonthlyUtilities(in.SquareFeet),
		MonthlyHOA:       mathutil.Round(mathutil.Max(0, in.MonthlyHOA)),
	}
	c.MonthlyTotal = mathutil.Round(c.MonthlyInterest + c.MonthlyTaxes + c.MonthlyInsurance +
		c.MonthlyUtilities + c.MonthlyHOA)
	c.TotalHolding = mathutil.Round(c.MonthlyTotal * float64(c.DurationMonths))
	return c
}
