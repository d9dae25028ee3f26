package holding

import (
	"math"
	"testing"

	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
)

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		name       string
		rehabTotal float64
		expected   int
	}{
		{"Small cosmetic job", 25000, 3},
		{"Just below four-month band", 39999, 3},
		{"Four-month band lower bound", 40000, 4},
		{"Mid four-month band", 60000, 4},
		{"Six-month band lower bound", 75000, 6},
		{"Just above six-month lower bound", 75001, 6},
		{"Eight-month band lower bound", 150000, 8},
		{"Mid eight-month band", 200000, 8},
		{"Ten-month band lower bound", 250000, 10},
		{"Gut renovation", 400000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationMonths(tt.rehabTotal); got != tt.expected {
				t.Errorf("DurationMonths(%.0f) = %d, expected %d", tt.rehabTotal, got, tt.expected)
			}
		})
	}
}

func TestMonthlyUtilities(t *testing.T) {
	tests := []struct {
		squareFeet float64
		expected   float64
	}{
		{800, 300},
		{1499, 300},
		{1500, 400},
		{2499, 400},
		{2500, 600},
		{3999, 600},
		{4000, 900},
		{6500, 900},
	}

	for _, tt := range tests {
		if got := MonthlyUtilities(tt.squareFeet); got != tt.expected {
			t.Errorf("MonthlyUtilities(%.0f) = %.0f, expected %.0f", tt.squareFeet, got, tt.expected)
		}
	}
}

func TestCalculateInvariants(t *testing.T) {
	c := Calculate(Input{
		RehabTotal: 80000,
		ARV:        400000,
		SquareFeet: 1800,
		MonthlyHOA: 150,
		LoanRate:   0.10,
		LTV:        0.70,
	})

	subCosts := c.MonthlyInterest + c.MonthlyTaxes + c.MonthlyInsurance +
		c.MonthlyUtilities + c.MonthlyHOA
	if math.Abs(c.MonthlyTotal-subCosts) > 0.001 {
		t.Errorf("monthly total %.2f != sum of sub-costs %.2f", c.MonthlyTotal, subCosts)
	}
	if math.Abs(c.TotalHolding-c.MonthlyTotal*float64(c.DurationMonths)) > 0.001 {
		t.Errorf("total holding %.2f != monthly total x duration", c.TotalHolding)
	}
	if c.DurationMonths != 6 {
		t.Errorf("duration = %d, expected 6 for an $80K rehab", c.DurationMonths)
	}
}

func TestCalculateComponents(t *testing.T) {
	c := Calculate(Input{
		RehabTotal: 80000,
		ARV:        400000,
		SquareFeet: 1800,
		MonthlyHOA: 150,
		LoanRate:   0.10,
		LTV:        0.70,
	})

	// 400000 * 0.70 * 0.10 / 12, rounded to cents
	if c.MonthlyInterest != 2333.33 {
		t.Errorf("monthly interest = %.2f, expected 2333.33", c.MonthlyInterest)
	}
	// 400000 * 0.018 / 12
	if c.MonthlyTaxes != 600.00 {
		t.Errorf("monthly taxes = %.2f, expected 600.00", c.MonthlyTaxes)
	}
	// 400000 * 0.01 / 12, rounded to cents
	if c.MonthlyInsurance != 333.33 {
		t.Errorf("monthly insurance = %.2f, expected 333.33", c.MonthlyInsurance)
	}
	if c.MonthlyUtilities != 400 {
		t.Errorf("monthly utilities = %.0f, expected 400 for 1800 sqft", c.MonthlyUtilities)
	}
	if c.MonthlyHOA != 150 {
		t.Errorf("monthly HOA = %.0f, expected pass-through of 150", c.MonthlyHOA)
	}
}

func TestCalculateRoundsToCents(t *testing.T) {
	c := Calculate(Input{
		RehabTotal: 80000,
		ARV:        333333,
		SquareFeet: 1800,
		MonthlyHOA: 33.333,
		LoanRate:   0.10,
		LTV:        0.70,
	})

	values := []float64{
		c.MonthlyInterest, c.MonthlyTaxes, c.MonthlyInsurance,
		c.MonthlyUtilities, c.MonthlyHOA, c.MonthlyTotal, c.TotalHolding,
	}
	for i, v := range values {
		if v != mathutil.Round(v) {
			t.Errorf("holding cost field %d carries sub-cent precision: %v", i, v)
		}
	}
}

func TestNegativeHOAClamped(t *testing.T) {
	c := Calculate(Input{MonthlyHOA: -50})
	if c.MonthlyHOA != 0 {
		t.Errorf("monthly HOA = %.2f, expected a negative fee to clamp to 0", c.MonthlyHOA)
	}
}

func TestCalculateAllFieldsNonNegative(t *testing.T) {
	c := Calculate(Input{})
	values := []float64{
		c.MonthlyInterest, c.MonthlyTaxes, c.MonthlyInsurance,
		c.MonthlyUtilities, c.MonthlyHOA, c.MonthlyTotal, c.TotalHolding,
	}
	for i, v := range values {
		if v < 0 {
			t.Errorf("holding cost field %d is negative: %.2f", i, v)
		}
	}
	if c.DurationMonths < 3 {
		t.Errorf("duration = %d, expected at least the 3-month floor", c.DurationMonths)
	}
}
