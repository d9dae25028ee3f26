// Package assetclass derives the finish-quality tier of a property from its
// after-repair value and price per square foot.
package assetclass

// Class is the finish-quality tier used to scale unit costs.
type Class string

const (
	Standard    Class = "standard"
	Luxury      Class = "luxury"
	UltraLuxury Class = "ultra_luxury"
)

// Classification pairs a derived class with its cost multiplier.
type Classification struct {
	Class      Class   `json:"asset_class"`
	Multiplier float64 `json:"multiplier"`
}

// Thresholds for tier boundaries. Inputs strictly above either the value or
// the per-square-foot threshold classify into the higher tier.
const (
	LuxuryARVThreshold     = 750000.0
	LuxuryPerSqftThreshold = 400.0
	UltraARVThreshold      = 2000000.0
	UltraPerSqftThreshold  = 700.0
	StandardCostMultiplier = 1.0
	LuxuryCostMultiplier   = 2.0
	UltraCostMultiplier    = 3.5
)

// Classify determines the asset class from ARV and square footage. A zero or
// negative square footage yields a zero price per square foot, so degenerate
// inputs classify as standard unless ARV alone crosses a threshold.
func Classify(arv, squareFeet float64) Classification {
	pricePerSqft := 0.0
	if squareFeet > 0 {
		pricePerSqft = arv / squareFeet
	}

	switch {
	case arv > UltraARVThreshold || pricePerSqft > UltraPerSqftThreshold:
		return Classification{Class: UltraLuxury, Multiplier: UltraCostMultiplier}
	case arv > LuxuryARVThreshold || pricePerSqft > LuxuryPerSqftThreshold:
		return Classification{Class: Luxury, Multiplier: LuxuryCostMultiplier}
	default:
		return Classification{Class: Standard, Multiplier: StandardCostMultiplier}
	}
}
