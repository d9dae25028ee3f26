package estimate

import (
	"math"
	"reflect"
	"testing"

	"github.com/flipcalc/rehab-intelligence/pkg/assetclass"
	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/condition"
	"github.com/flipcalc/rehab-intelligence/pkg/constants"
	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
	"go.uber.org/zap"
)

// scenarioInput is the reference scenario: a 1970-built fair-condition
// property in West Palm Beach.
func scenarioInput() PropertyInput {
	return PropertyInput{
		SquareFeet: 1800,
		YearBuilt:  1970,
		ARV:        400000,
		ZipCode:    "33401",
		Bedrooms:   3,
		Bathrooms:  2,
		Condition:  condition.Fair,
		RoofType:   capex.RoofShingle,
		Stories:    1,
	}
}

// pinnedOptions returns defaults with the reference year fixed so results do
// not drift with the wall clock.
func pinnedOptions() Options {
	opts := DefaultOptions()
	opts.ReferenceYear = 2025
	return opts
}

func breakdownCategories(b RehabBreakdown) []float64 {
	return []float64{
		b.Kitchen, b.Bathrooms, b.Flooring, b.PaintWalls, b.Exterior,
		b.Roof, b.HVAC, b.Electrical, b.Plumbing, b.WindowsDoors, b.Other,
	}
}

func TestCalculateTotalsInvariant(t *testing.T) {
	inputs := []PropertyInput{
		scenarioInput(),
		{SquareFeet: 3200, YearBuilt: 2015, ARV: 900000, ZipCode: "33480", Bedrooms: 4, Bathrooms: 3.5, Condition: condition.Good, RoofType: capex.RoofTile, Stories: 2},
		{SquareFeet: 5500, YearBuilt: 1988, ARV: 2400000, ZipCode: "33109", Bedrooms: 5, Bathrooms: 5, Condition: condition.Distressed, RoofType: capex.RoofMetal, Stories: 2, HasPool: true},
		{SquareFeet: 900, YearBuilt: 2021, ARV: 180000, ZipCode: "99999", Bedrooms: 2, Bathrooms: 1, Condition: condition.Excellent, RoofType: capex.RoofShingle, Stories: 1},
	}

	for _, input := range inputs {
		result := New(zap.NewNop(), input).Calculate(pinnedOptions())
		b := result.Breakdown

		sum := 0.0
		for _, v := range breakdownCategories(b) {
			sum += v
		}
		sum += b.Permits

		if !mathutil.WithinTolerance(b.ConstructionTotal, sum, constants.CurrencyTolerance) {
			t.Errorf("zip %s: construction total %.2f != category sum %.2f", input.ZipCode, b.ConstructionTotal, sum)
		}
		if !mathutil.WithinTolerance(b.Total, b.ConstructionTotal+b.Contingency, constants.CurrencyTolerance) {
			t.Errorf("zip %s: total %.2f != construction total + contingency", input.ZipCode, b.Total)
		}
	}
}

func TestCalculateAllCostsNonNegative(t *testing.T) {
	result := New(zap.NewNop(), scenarioInput()).Calculate(pinnedOptions())
	b := result.Breakdown

	for i, v := range breakdownCategories(b) {
		if v < 0 {
			t.Errorf("breakdown category %d is negative: %.2f", i, v)
		}
	}
	for _, v := range []float64{b.Permits, b.Contingency, b.ConstructionTotal, b.Total} {
		if v < 0 {
			t.Errorf("breakdown aggregate is negative: %.2f", v)
		}
	}
	if hc := result.HoldingCosts; hc != nil {
		for _, v := range []float64{hc.MonthlyInterest, hc.MonthlyTaxes, hc.MonthlyInsurance, hc.MonthlyUtilities, hc.MonthlyHOA, hc.MonthlyTotal, hc.TotalHolding} {
			if v < 0 {
				t.Errorf("holding cost field is negative: %.2f", v)
			}
		}
	}
}

func TestReferenceScenario(t *testing.T) {
	result := New(zap.NewNop(), scenarioInput()).Calculate(pinnedOptions())

	if result.AssetClass != assetclass.Standard {
		t.Errorf("asset class = %s, expected standard", result.AssetClass)
	}
	if result.LocationMarket != "West Palm Beach" {
		t.Errorf("market = %q, expected West Palm Beach", result.LocationMarket)
	}
	if len(result.Warnings) < 3 {
		t.Errorf("got %d warnings, expected at least 3 for a 1970 build", len(result.Warnings))
	}
	if result.TotalRehab <= 0 {
		t.Errorf("total rehab = %.2f, expected > 0", result.TotalRehab)
	}

	// A pre-1975 build must flag the plumbing era.
	found := false
	for _, w := range result.Warnings {
		if w.Item == "Full Repipe" && w.Priority == capex.PriorityCritical {
			found = true
		}
	}
	if !found {
		t.Error("expected a critical repipe warning for a 1970 build")
	}
}

func TestRoofPermitSuppressesOnlyRoofWarning(t *testing.T) {
	base := New(zap.NewNop(), scenarioInput()).Calculate(pinnedOptions())

	input := scenarioInput()
	input.RecentPermits = []string{"roof"}
	patched := New(zap.NewNop(), input).Calculate(pinnedOptions())

	for _, w := range patched.Warnings {
		if w.Item == "Roof Replacement" {
			t.Error("roof warning not suppressed by recent roof permit")
		}
	}
	if len(patched.Warnings) != len(base.Warnings)-1 {
		t.Errorf("roof permit removed %d warnings, expected exactly 1", len(base.Warnings)-len(patched.Warnings))
	}
	if patched.Breakdown.Roof != 0 {
		t.Errorf("roof cost = %.2f, expected 0 when permit suppresses the warning", patched.Breakdown.Roof)
	}

	// Unrelated categories must be unchanged.
	if patched.Breakdown.HVAC != base.Breakdown.HVAC {
		t.Errorf("HVAC cost changed from %.2f to %.2f", base.Breakdown.HVAC, patched.Breakdown.HVAC)
	}
	if patched.Breakdown.Plumbing != base.Breakdown.Plumbing {
		t.Errorf("plumbing cost changed from %.2f to %.2f", base.Breakdown.Plumbing, patched.Breakdown.Plumbing)
	}
}

func TestYoungerPropertyNeverAddsWarnings(t *testing.T) {
	years := []int{1996, 2000, 2005, 2010, 2015, 2020, 2024}
	previous := math.MaxInt32

	for _, year := range years {
		input := scenarioInput()
		input.YearBuilt = year
		result := New(zap.NewNop(), input).Calculate(pinnedOptions())
		if len(result.Warnings) > previous {
			t.Errorf("year built %d produced %d warnings, more than the older property's %d",
				year, len(result.Warnings), previous)
		}
		previous = len(result.Warnings)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	estimator := New(zap.NewNop(), scenarioInput())
	opts := pinnedOptions()

	first := estimator.Calculate(opts)
	second := estimator.Calculate(opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("two Calculate calls with identical options returned different results")
	}
}

func TestHoldingCostsDisabled(t *testing.T) {
	opts := pinnedOptions()
	opts.IncludeHoldingCosts = false

	result := New(zap.NewNop(), scenarioInput()).Calculate(opts)
	if result.HoldingCosts != nil {
		t.Error("holding costs present despite being disabled")
	}
	if result.TotalProjectCost != result.TotalRehab {
		t.Errorf("total project cost %.2f != total rehab %.2f when holding disabled",
			result.TotalProjectCost, result.TotalRehab)
	}
}

func TestHoldingCostsEnabled(t *testing.T) {
	result := New(zap.NewNop(), scenarioInput()).Calculate(pinnedOptions())
	if result.HoldingCosts == nil {
		t.Fatal("expected holding costs with default options")
	}
	expected := result.TotalRehab + result.HoldingCosts.TotalHolding
	if !mathutil.WithinTolerance(result.TotalProjectCost, expected, constants.CurrencyTolerance) {
		t.Errorf("total project cost %.2f != rehab + holding %.2f", result.TotalProjectCost, expected)
	}
}

func TestContingencyOverride(t *testing.T) {
	opts := pinnedOptions()
	opts.ContingencyPct = 0.20

	result := New(zap.NewNop(), scenarioInput()).Calculate(opts)
	b := result.Breakdown
	if !mathutil.WithinTolerance(b.Contingency, b.ConstructionTotal*0.20, constants.CurrencyTolerance) {
		t.Errorf("contingency %.2f != 20%% of construction total %.2f", b.Contingency, b.ConstructionTotal)
	}
}

func TestZeroContingency(t *testing.T) {
	opts := pinnedOptions()
	opts.ContingencyPct = 0

	result := New(zap.NewNop(), scenarioInput()).Calculate(opts)
	if result.Breakdown.Contingency != 0 {
		t.Errorf("contingency = %.2f, expected 0", result.Breakdown.Contingency)
	}
	if result.Breakdown.Total != result.Breakdown.ConstructionTotal {
		t.Error("total should equal construction total with zero contingency")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	result := New(nil, scenarioInput()).Calculate(pinnedOptions())
	if result == nil {
		t.Fatal("Calculate returned nil with nil logger")
	}
}

func TestBathCounts(t *testing.T) {
	tests := []struct {
		bathrooms float64
		fullBaths int
		halfBaths int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{2.5, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{0, 1, 0},
	}

	for _, tt := range tests {
		full, half := BathCounts(tt.bathrooms)
		if full != tt.fullBaths || half != tt.halfBaths {
			t.Errorf("BathCounts(%.1f) = (%d, %d), expected (%d, %d)",
				tt.bathrooms, full, half, tt.fullBaths, tt.halfBaths)
		}
	}
}

func TestBreakdownRoundedToCents(t *testing.T) {
	result := New(zap.NewNop(), scenarioInput()).Calculate(pinnedOptions())
	b := result.Breakdown

	fields := append(breakdownCategories(b), b.Permits, b.Contingency, b.ConstructionTotal, b.Total)
	for i, v := range fields {
		if v != mathutil.Round(v) {
			t.Errorf("breakdown field %d carries sub-cent precision: %v", i, v)
		}
	}
	if result.TotalProjectCost != mathutil.Round(result.TotalProjectCost) {
		t.Errorf("total project cost carries sub-cent precision: %v", result.TotalProjectCost)
	}
}

func TestZeroOptionsAreExplicit(t *testing.T) {
	opts := Options{ReferenceYear: 2025}.normalized()

	// Zero contingency and disabled holding costs are honored as-is; only the
	// holding rates and reference year backfill from zero.
	if opts.ContingencyPct != 0 {
		t.Errorf("contingency = %.2f, expected explicit 0", opts.ContingencyPct)
	}
	if opts.IncludeHoldingCosts {
		t.Error("holding costs should stay disabled for a zero Options value")
	}
	if opts.HoldingLoanRate != constants.DefaultHoldingLoanRate {
		t.Errorf("holding loan rate = %.2f, expected backfilled default", opts.HoldingLoanRate)
	}
	if opts.HoldingLTV != constants.DefaultHoldingLTV {
		t.Errorf("holding LTV = %.2f, expected backfilled default", opts.HoldingLTV)
	}
}

func TestLuxuryCostsExceedStandard(t *testing.T) {
	standardInput := scenarioInput()
	luxuryInput := scenarioInput()
	luxuryInput.ARV = 1200000

	standardTotal := New(zap.NewNop(), standardInput).Calculate(pinnedOptions()).TotalRehab
	luxuryTotal := New(zap.NewNop(), luxuryInput).Calculate(pinnedOptions()).TotalRehab

	if luxuryTotal <= standardTotal {
		t.Errorf("luxury rehab %.2f should exceed standard rehab %.2f for the same property", luxuryTotal, standardTotal)
	}
}
