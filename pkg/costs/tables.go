// Package costs holds the static per-category base unit costs used by the
// estimator. Values are a 2025 regional baseline in whole dollars for
// standard-class work before location and asset-class scaling.
package costs

import "github.com/flipcalc/rehab-intelligence/pkg/assetclass"

// Kitchen and bathroom base costs. Full remodels apply when the wet-room
// factor crosses FullRemodelWetFactor; below that only cosmetic work is priced.
const (
	KitchenFullRemodel   = 25000.0
	KitchenCosmetic      = 8000.0
	FullBathRemodel      = 12000.0
	FullBathCosmetic     = 4500.0
	HalfBathRemodel      = 5000.0
	HalfBathCosmetic     = 2000.0
	FullRemodelWetFactor = 0.8
	FullBathPerBathRatio = 0.67
)

// Interior finish rates.
const (
	// FlooringCoverageRatio is the fraction of gross square footage that
	// actually receives new flooring.
	FlooringCoverageRatio = 0.85

	// WallAreaPerFloorSqft converts floor area to paintable wall area.
	WallAreaPerFloorSqft = 3.5

	InteriorPaintPerSqft = 2.0
	DrywallRepairPerRoom = 350.0
	InteriorDoorEach     = 250.0
)

// Exterior base costs.
const (
	ExteriorPaintPerSqft = 2.5
	LandscapingBase      = 4000.0
	PoolResurfacingBase  = 8000.0
	ExteriorPaintDryGate = 0.5
)

// Major system replacement costs evaluated by the deferred-maintenance
// analyzer.
const (
	RoofShinglePerSqft  = 5.5
	RoofMetalPerSqft    = 9.0
	RoofTilePerSqft     = 16.0
	RoofPitchFactor     = 1.3
	HVACPerTon          = 4500.0
	SqftPerHVACTon      = 500.0
	WaterHeaterBase     = 1800.0
	ElectricalPanelBase = 3500.0
	RepipePerSqft       = 4.5
	WindowEach          = 650.0
)

// Electrical and door/trim refresh rates scaled by condition intensity.
const (
	FixtureRefreshPerSqft = 1.2
)

// Miscellaneous costs folded into the "other" category.
const (
	DumpsterLoad        = 550.0
	DeepCleaningPerSqft = 0.5
	TermiteTreatment    = 1200.0
	TermiteAgeThreshold = 20
)

// Permit flat fees by tier.
const (
	PermitMinorFee = 800.0
	PermitMajorFee = 2500.0
)

// flooringPerSqft maps asset class to the installed flooring rate: LVP for
// standard, a tile and hardwood blend for luxury, site-finished hardwood for
// ultra-luxury. Class-specific rates replace the generic asset multiplier for
// flooring so the upgrade is not double counted.
var flooringPerSqft = map[assetclass.Class]float64{
	assetclass.Standard:    5.5,
	assetclass.Luxury:      9.0,
	assetclass.UltraLuxury: 14.0,
}

// FlooringRate returns the per-square-foot installed flooring cost for a
// class, defaulting to the standard rate.
func FlooringRate(class assetclass.Class) float64 {
	if rate, ok := flooringPerSqft[class]; ok {
		return rate
	}
	return flooringPerSqft[assetclass.Standard]
}
