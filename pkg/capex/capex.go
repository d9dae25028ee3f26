// Package capex analyzes deferred maintenance on big-ticket property systems.
// Each monitored system is evaluated exactly once, producing both the
// replacement cost for the breakdown and the warning for the report, so the
// age-threshold logic lives in a single place.
package capex

import (
	"fmt"
	"math"

	"github.com/flipcalc/rehab-intelligence/pkg/costs"
	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
)

// Priority ranks a warning for triage by the consumer.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// RoofType determines the roof replacement threshold and unit cost.
type RoofType string

const (
	RoofShingle RoofType = "shingle"
	RoofMetal   RoofType = "metal"
	RoofTile    RoofType = "tile"
)

// PermitCategory is a typed recent-permit tag. A recorded permit suppresses
// the corresponding warning.
type PermitCategory string

const (
	PermitRoof        PermitCategory = "roof"
	PermitHVAC        PermitCategory = "hvac"
	PermitWaterHeater PermitCategory = "water_heater"
	PermitElectrical  PermitCategory = "electrical"
	PermitPlumbing    PermitCategory = "plumbing"
	PermitWindows     PermitCategory = "windows"
	PermitPool        PermitCategory = "pool"
)

// PermitSet is a membership set of permit categories.
type PermitSet map[PermitCategory]struct{}

// NewPermitSet builds a set from raw lowercase permit tags. Unrecognized tags
// are dropped rather than silently matching nothing later.
func NewPermitSet(tags []string) PermitSet {
	set := make(PermitSet, len(tags))
	for _, tag := range tags {
		switch cat := PermitCategory(tag); cat {
		case PermitRoof, PermitHVAC, PermitWaterHeater, PermitElectrical,
			PermitPlumbing, PermitWindows, PermitPool:
			set[cat] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the category.
func (s PermitSet) Has(c PermitCategory) bool {
	_, ok := s[c]
	return ok
}

// Category names the breakdown bucket a system's replacement cost feeds.
type Category string

const (
	CategoryRoof         Category = "roof"
	CategoryHVAC         Category = "hvac"
	CategoryElectrical   Category = "electrical"
	CategoryPlumbing     Category = "plumbing"
	CategoryWindowsDoors Category = "windows_doors"
	CategoryExterior     Category = "exterior"
)

// Warning flags a system past its service life.
type Warning struct {
	Item          string   `json:"item"`
	Age           int      `json:"age"`
	Threshold     int      `json:"threshold"`
	EstimatedCost float64  `json:"estimated_cost"`
	Priority      Priority `json:"priority"`
	Notes         string   `json:"notes"`
}

// Evaluation carries the single outcome for a monitored system: the breakdown
// cost and the warning are produced together and are always consistent.
type Evaluation struct {
	Category Category
	Cost     float64
	Warning  Warning
}

// Input holds the derived property facts the analyzer needs.
type Input struct {
	SquareFeet      float64
	YearBuilt       int
	ReferenceYear   int
	Stories         int
	Bedrooms        int
	RoofType        RoofType
	HasPool         bool
	SystemsCheck    bool
	LocationFactor  float64
	ClassMultiplier float64
	Permits         PermitSet
}

// Age thresholds in years for monitored systems.
const (
	RoofShingleThreshold   = 18
	RoofMetalThreshold     = 35
	RoofTileThreshold      = 45
	HVACThreshold          = 15
	WaterHeaterThreshold   = 12
	ElectricalThreshold    = 30
	ElectricalCheckedAt    = 25
	WindowThreshold        = 25
	PoolResurfaceThreshold = 15
	GalvanizedPlumbingYear = 1975
	PolybutyleneStartYear  = 1978
	PolybutyleneEndYear    = 1995
	HVACCriticalGraceYears = 10
	WindowCriticalAgeYears = 40
)

// propertyAge returns the age against the reference year, floored at zero so
// a build year in the future never produces negative ages.
func (in Input) propertyAge() int {
	age := in.ReferenceYear - in.YearBuilt
	if age < 0 {
		return 0
	}
	return age
}

// EvaluateAll runs every monitored system in a fixed order: pool, roof, HVAC,
// water heater, electrical panel, plumbing, windows. Only systems that fire
// are returned; no sorting by priority is applied.
func EvaluateAll(in Input) []Evaluation {
	age := in.propertyAge()

	var evals []Evaluation
	for _, check := range []func(Input, int) *Evaluation{
		evaluatePool,
		evaluateRoof,
		evaluateHVAC,
		evaluateWaterHeater,
		evaluateElectrical,
		evaluatePlumbing,
		evaluateWindows,
	} {
		if eval := check(in, age); eval != nil {
			evals = append(evals, *eval)
		}
	}
	return evals
}

func evaluatePool(in Input, age int) *Evaluation {
	if !in.HasPool || age <= PoolResurfaceThreshold || in.Permits.Has(PermitPool) {
		return nil
	}
	cost := mathutil.Round(costs.PoolResurfacingBase * in.LocationFactor)
	return &Evaluation{
		Category: CategoryExterior,
		Cost:     cost,
		Warning: Warning{
			Item:          "Pool Resurfacing",
			Age:           age,
			Threshold:     PoolResurfaceThreshold,
			EstimatedCost: cost,
			Priority:      PriorityMedium,
			Notes:         "Pool surface is likely past its service life; budget for resurfacing and equipment inspection.",
		},
	}
}

// RoofThreshold returns the replacement threshold in years for a roof type.
// Unknown types use the shingle threshold.
func RoofThreshold(rt RoofType) int {
	switch rt {
	case RoofMetal:
		return RoofMetalThreshold
	case RoofTile:
		return RoofTileThreshold
	default:
		return RoofShingleThreshold
	}
}

func roofRatePerSqft(rt RoofType) float64 {
	switch rt {
	case RoofMetal:
		return costs.RoofMetalPerSqft
	case RoofTile:
		return costs.RoofTilePerSqft
	default:
		return costs.RoofShinglePerSqft
	}
}

func evaluateRoof(in Input, age int) *Evaluation {
	threshold := RoofThreshold(in.RoofType)
	if age <= threshold || in.Permits.Has(PermitRoof) {
		return nil
	}
	stories := in.Stories
	if stories < 1 {
		stories = 1
	}
	roofArea := in.SquareFeet / float64(stories) * costs.RoofPitchFactor
	cost := mathutil.Round(roofArea * roofRatePerSqft(in.RoofType) * in.LocationFactor)
	return &Evaluation{
		Category: CategoryRoof,
		Cost:     cost,
		Warning: Warning{
			Item:          "Roof Replacement",
			Age:           age,
			Threshold:     threshold,
			EstimatedCost: cost,
			Priority:      PriorityCritical,
			Notes:         fmt.Sprintf("%s roof is %d years old against an expected life of %d years.", in.RoofType, age, threshold),
		},
	}
}

// HVACTons sizes the system from conditioned square footage, minimum one ton.
func HVACTons(squareFeet float64) int {
	tons := int(math.Ceil(squareFeet / costs.SqftPerHVACTon))
	if tons < 1 {
		tons = 1
	}
	return tons
}

func evaluateHVAC(in Input, age int) *Evaluation {
	if age <= HVACThreshold || in.Permits.Has(PermitHVAC) {
		return nil
	}
	tons := HVACTons(in.SquareFeet)
	cost := mathutil.Round(float64(tons) * costs.HVACPerTon * in.LocationFactor)
	priority := PriorityHigh
	if age > HVACThreshold+HVACCriticalGraceYears {
		priority = PriorityCritical
	}
	return &Evaluation{
		Category: CategoryHVAC,
		Cost:     cost,
		Warning: Warning{
			Item:          "HVAC Replacement",
			Age:           age,
			Threshold:     HVACThreshold,
			EstimatedCost: cost,
			Priority:      priority,
			Notes:         fmt.Sprintf("Sized at %d tons for %.0f sqft.", tons, in.SquareFeet),
		},
	}
}

func evaluateWaterHeater(in Input, age int) *Evaluation {
	if age <= WaterHeaterThreshold || in.Permits.Has(PermitWaterHeater) {
		return nil
	}
	cost := mathutil.Round(costs.WaterHeaterBase * in.LocationFactor)
	return &Evaluation{
		Category: CategoryPlumbing,
		Cost:     cost,
		Warning: Warning{
			Item:          "Water Heater Replacement",
			Age:           age,
			Threshold:     WaterHeaterThreshold,
			EstimatedCost: cost,
			Priority:      PriorityMedium,
			Notes:         "Tank water heaters typically fail between 10 and 15 years.",
		},
	}
}

func evaluateElectrical(in Input, age int) *Evaluation {
	threshold := ElectricalThreshold
	if in.SystemsCheck {
		threshold = ElectricalCheckedAt
	}
	if age <= threshold || in.Permits.Has(PermitElectrical) {
		return nil
	}
	cost := mathutil.Round(costs.ElectricalPanelBase * in.LocationFactor)
	return &Evaluation{
		Category: CategoryElectrical,
		Cost:     cost,
		Warning: Warning{
			Item:          "Electrical Panel Upgrade",
			Age:           age,
			Threshold:     threshold,
			EstimatedCost: cost,
			Priority:      PriorityHigh,
			Notes:         "Panel capacity and breaker condition should be verified before closing.",
		},
	}
}

func evaluatePlumbing(in Input, age int) *Evaluation {
	if in.Permits.Has(PermitPlumbing) {
		return nil
	}

	cost := mathutil.Round(in.SquareFeet * costs.RepipePerSqft * in.LocationFactor)
	switch {
	case in.YearBuilt < GalvanizedPlumbingYear:
		return &Evaluation{
			Category: CategoryPlumbing,
			Cost:     cost,
			Warning: Warning{
				Item:          "Full Repipe",
				Age:           age,
				Threshold:     0,
				EstimatedCost: cost,
				Priority:      PriorityCritical,
				Notes:         fmt.Sprintf("Built before %d; galvanized supply lines are prone to corrosion and restricted flow.", GalvanizedPlumbingYear),
			},
		}
	case in.YearBuilt >= PolybutyleneStartYear && in.YearBuilt <= PolybutyleneEndYear:
		return &Evaluation{
			Category: CategoryPlumbing,
			Cost:     cost,
			Warning: Warning{
				Item:          "Full Repipe",
				Age:           age,
				Threshold:     0,
				EstimatedCost: cost,
				Priority:      PriorityHigh,
				Notes:         fmt.Sprintf("Built %d-%d; polybutylene piping is uninsurable in much of the market.", PolybutyleneStartYear, PolybutyleneEndYear),
			},
		}
	default:
		return nil
	}
}

// WindowCount estimates openings from the bedroom count.
func WindowCount(bedrooms int) int {
	if bedrooms < 0 {
		bedrooms = 0
	}
	return bedrooms*2 + 6
}

func evaluateWindows(in Input, age int) *Evaluation {
	if age <= WindowThreshold || in.Permits.Has(PermitWindows) {
		return nil
	}
	count := WindowCount(in.Bedrooms)
	cost := mathutil.Round(float64(count) * costs.WindowEach * in.ClassMultiplier * in.LocationFactor)
	priority := PriorityHigh
	if age > WindowCriticalAgeYears {
		priority = PriorityCritical
	}
	return &Evaluation{
		Category: CategoryWindowsDoors,
		Cost:     cost,
		Warning: Warning{
			Item:          "Window Replacement",
			Age:           age,
			Threshold:     WindowThreshold,
			EstimatedCost: cost,
			Priority:      priority,
			Notes:         fmt.Sprintf("Replacing %d windows; impact-rated glazing is assumed for coastal markets.", count),
		},
	}
}

// ParseRoofType normalizes a raw roof type string, defaulting to shingle.
func ParseRoofType(raw string) RoofType {
	switch RoofType(raw) {
	case RoofShingle, RoofMetal, RoofTile:
		return RoofType(raw)
	default:
		return RoofShingle
	}
}
