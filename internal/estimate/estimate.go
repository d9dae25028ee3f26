// Package estimate implements the rehabilitation cost estimation engine. An
// Estimator derives the asset class, location factor, and condition intensity
// once at construction; Calculate and LineItems are then pure functions of
// those fields and their arguments, safe for concurrent use.
package estimate

import (
	"math"

	"github.com/flipcalc/rehab-intelligence/pkg/assetclass"
	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/condition"
	"github.com/flipcalc/rehab-intelligence/pkg/costs"
	"github.com/flipcalc/rehab-intelligence/pkg/holding"
	"github.com/flipcalc/rehab-intelligence/pkg/location"
	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
	"go.uber.org/zap"
)

// Estimator holds the derived, immutable facts for one property.
type Estimator struct {
	logger  *zap.Logger
	input   PropertyInput
	class   assetclass.Classification
	loc     location.Factor
	cond    condition.Factors
	permits capex.PermitSet
}

// New constructs an estimator for a property, deriving classification,
// location factor, and condition intensity once. A nil logger is replaced
// with a no-op logger.
func New(logger *zap.Logger, input PropertyInput) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{
		logger:  logger,
		input:   input,
		class:   assetclass.Classify(input.ARV, input.SquareFeet),
		loc:     location.Resolve(input.ZipCode),
		cond:    condition.FactorsFor(input.Condition),
		permits: capex.NewPermitSet(input.RecentPermits),
	}
}

// Input returns a copy of the property input the estimator was built from.
func (e *Estimator) Input() PropertyInput {
	return e.input
}

// Calculate produces a complete estimate. Calling it twice with identical
// options returns identical numeric output. Pass DefaultOptions (with any
// overrides) for the documented defaults; a zero Options value means 0%
// contingency and no holding costs.
func (e *Estimator) Calculate(opts Options) *RehabEstimate {
	opts = opts.normalized()

	breakdown, warnings := e.computeBreakdown(opts.ContingencyPct, opts.ReferenceYear)

	result := &RehabEstimate{
		AssetClass:      e.class.Class,
		AssetMultiplier: e.class.Multiplier,
		LocationFactor:  e.loc.Factor,
		LocationMarket:  e.loc.Market,
		Condition:       e.input.Condition,
		Breakdown:       breakdown,
		Warnings:        warnings,
		TotalRehab:      breakdown.Total,
	}

	if opts.IncludeHoldingCosts {
		hc := holding.Calculate(holding.Input{
			RehabTotal: breakdown.Total,
			ARV:        e.input.ARV,
			SquareFeet: e.input.SquareFeet,
			MonthlyHOA: e.input.MonthlyHOA,
			LoanRate:   opts.HoldingLoanRate,
			LTV:        opts.HoldingLTV,
		})
		result.HoldingCosts = &hc
		result.TotalProjectCost = mathutil.Round(result.TotalRehab + hc.TotalHolding)
	} else {
		result.TotalProjectCost = result.TotalRehab
	}

	e.logger.Debug("estimate computed",
		zap.String("op", "estimate.Calculate"),
		zap.String("assetClass", string(result.AssetClass)),
		zap.String("market", result.LocationMarket),
		zap.Int("warnings", len(result.Warnings)),
		zap.Float64("totalRehab", result.TotalRehab),
	)

	return result
}

// BathCounts splits a fractional bathroom count into full and half baths.
// At least one full bath is always assumed.
func BathCounts(bathrooms float64) (fullBaths, halfBaths int) {
	fullBaths = int(math.Floor(bathrooms * costs.FullBathPerBathRatio))
	if fullBaths < 1 {
		fullBaths = 1
	}
	halfBaths = int(math.Round(bathrooms)) - fullBaths
	if halfBaths < 0 {
		halfBaths = 0
	}
	return fullBaths, halfBaths
}

// dumpsterLoads scales debris hauling inversely with condition.
func dumpsterLoads(rating condition.Rating) int {
	switch rating {
	case condition.Distressed:
		return 6
	case condition.Fair:
		return 4
	default:
		return 2
	}
}

func (e *Estimator) capexInput(referenceYear int) capex.Input {
	return capex.Input{
		SquareFeet:      e.input.SquareFeet,
		YearBuilt:       e.input.YearBuilt,
		ReferenceYear:   referenceYear,
		Stories:         e.input.Stories,
		Bedrooms:        e.input.Bedrooms,
		RoofType:        e.input.RoofType,
		HasPool:         e.input.HasPool,
		SystemsCheck:    e.cond.SystemsCheck,
		LocationFactor:  e.loc.Factor,
		ClassMultiplier: e.class.Multiplier,
		Permits:         e.permits,
	}
}

// computeBreakdown runs the per-category cost model and the deferred
// maintenance analysis in one pass so breakdown costs and warnings always
// agree.
func (e *Estimator) computeBreakdown(contingencyPct float64, referenceYear int) (RehabBreakdown, []capex.Warning) {
	in := e.input
	mult := e.class.Multiplier
	locFactor := e.loc.Factor
	wet := e.cond.WetRoomFactor
	dry := e.cond.DryRoomFactor

	var b RehabBreakdown

	// Kitchen: full remodel past the wet-room gate, otherwise cosmetic work
	// scaled by intensity.
	if wet >= costs.FullRemodelWetFactor {
		b.Kitchen = costs.KitchenFullRemodel * mult * locFactor
	} else {
		b.Kitchen = costs.KitchenCosmetic * wet * mult * locFactor
	}

	// Bathrooms follow the same full/cosmetic branching, summed per bath type.
	fullBaths, halfBaths := BathCounts(in.Bathrooms)
	if wet >= costs.FullRemodelWetFactor {
		b.Bathrooms = (float64(fullBaths)*costs.FullBathRemodel +
			float64(halfBaths)*costs.HalfBathRemodel) * mult * locFactor
	} else {
		b.Bathrooms = (float64(fullBaths)*costs.FullBathCosmetic +
			float64(halfBaths)*costs.HalfBathCosmetic) * wet * mult * locFactor
	}

	// Flooring uses class-specific unit costs, so the asset multiplier is
	// already baked into the rate.
	treatedSqft := in.SquareFeet * costs.FlooringCoverageRatio * dry
	b.Flooring = treatedSqft * costs.FlooringRate(e.class.Class) * locFactor

	// Paint and walls.
	wallArea := in.SquareFeet * costs.WallAreaPerFloorSqft * dry
	b.PaintWalls = wallArea * costs.InteriorPaintPerSqft * mult * locFactor
	if in.Condition.NeedsHeavyWork() {
		rooms := in.Bedrooms + 3
		b.PaintWalls += float64(rooms) * costs.DrywallRepairPerRoom * locFactor
	}

	// Exterior.
	if dry >= costs.ExteriorPaintDryGate {
		b.Exterior += in.SquareFeet * costs.ExteriorPaintPerSqft * mult * locFactor
	}
	if in.Condition.NeedsHeavyWork() {
		b.Exterior += costs.LandscapingBase * locFactor
	}

	// Electrical fixture and switch refresh scales with dry-room intensity;
	// panel work, if any, comes from the deferred-maintenance analysis below.
	b.Electrical = in.SquareFeet * costs.FixtureRefreshPerSqft * dry * locFactor

	// Interior doors and trim.
	doorCount := in.Bedrooms + 2
	b.WindowsDoors = float64(doorCount) * costs.InteriorDoorEach * dry * mult * locFactor

	// Other: debris hauling, deep cleaning, and pest treatment on older homes.
	loads := dumpsterLoads(in.Condition)
	b.Other = float64(loads) * costs.DumpsterLoad * locFactor
	b.Other += in.SquareFeet * costs.DeepCleaningPerSqft * locFactor
	if referenceYear-in.YearBuilt > costs.TermiteAgeThreshold {
		b.Other += costs.TermiteTreatment * locFactor
	}

	// Major systems: each evaluation feeds exactly one category and one
	// warning.
	evals := capex.EvaluateAll(e.capexInput(referenceYear))
	warnings := make([]capex.Warning, 0, len(evals))
	for _, eval := range evals {
		switch eval.Category {
		case capex.CategoryRoof:
			b.Roof += eval.Cost
		case capex.CategoryHVAC:
			b.HVAC += eval.Cost
		case capex.CategoryElectrical:
			b.Electrical += eval.Cost
		case capex.CategoryPlumbing:
			b.Plumbing += eval.Cost
		case capex.CategoryWindowsDoors:
			b.WindowsDoors += eval.Cost
		case capex.CategoryExterior:
			b.Exterior += eval.Cost
		}
		warnings = append(warnings, eval.Warning)
	}

	// Permit fees are flat per tier.
	if e.cond.PermitTier == condition.PermitMajor {
		b.Permits = costs.PermitMajorFee
	} else {
		b.Permits = costs.PermitMinorFee
	}

	// Money fields carry two decimals.
	b.Kitchen = mathutil.Round(b.Kitchen)
	b.Bathrooms = mathutil.Round(b.Bathrooms)
	b.Flooring = mathutil.Round(b.Flooring)
	b.PaintWalls = mathutil.Round(b.PaintWalls)
	b.Exterior = mathutil.Round(b.Exterior)
	b.Roof = mathutil.Round(b.Roof)
	b.HVAC = mathutil.Round(b.HVAC)
	b.Electrical = mathutil.Round(b.Electrical)
	b.Plumbing = mathutil.Round(b.Plumbing)
	b.WindowsDoors = mathutil.Round(b.WindowsDoors)
	b.Other = mathutil.Round(b.Other)

	b.ConstructionTotal = mathutil.Round(b.Kitchen + b.Bathrooms + b.Flooring + b.PaintWalls +
		b.Exterior + b.Roof + b.HVAC + b.Electrical + b.Plumbing +
		b.WindowsDoors + b.Other + b.Permits)
	b.Contingency = mathutil.Round(b.ConstructionTotal * contingencyPct)
	b.Total = mathutil.Round(b.ConstructionTotal + b.Contingency)

	return b, warnings
}
