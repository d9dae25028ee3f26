// Package condition models how a property's overall condition rating scales
// renovation work intensity.
package condition

// Rating is the 4-tier overall condition of a property.
type Rating string

const (
	Distressed Rating = "distressed"
	Fair       Rating = "fair"
	Good       Rating = "good"
	Excellent  Rating = "excellent"
)

// PermitTier indicates the scope of permitting the renovation will require.
type PermitTier string

const (
	PermitMinor PermitTier = "minor"
	PermitMajor PermitTier = "major"
)

// Factors holds the work-intensity multipliers for a condition rating.
// WetRoomFactor and DryRoomFactor are in (0, 1]; a worse condition means
// larger factors (more work) and the major permit tier.
type Factors struct {
	WetRoomFactor float64    `json:"wet_room_factor"`
	DryRoomFactor float64    `json:"dry_room_factor"`
	SystemsCheck  bool       `json:"systems_check"`
	PermitTier    PermitTier `json:"permit_tier"`
}

// factorTable holds one fixed record per rating; there is no interpolation
// between tiers.
var factorTable = map[Rating]Factors{
	Distressed: {WetRoomFactor: 1.00, DryRoomFactor: 1.00, SystemsCheck: true, PermitTier: PermitMajor},
	Fair:       {WetRoomFactor: 0.85, DryRoomFactor: 0.70, SystemsCheck: true, PermitTier: PermitMajor},
	Good:       {WetRoomFactor: 0.45, DryRoomFactor: 0.35, SystemsCheck: false, PermitTier: PermitMinor},
	Excellent:  {WetRoomFactor: 0.15, DryRoomFactor: 0.10, SystemsCheck: false, PermitTier: PermitMinor},
}

// FactorsFor returns the fixed intensity record for a rating. Unknown ratings
// fall back to Fair, matching the engine's default-instead-of-error policy.
func FactorsFor(r Rating) Factors {
	if f, ok := factorTable[r]; ok {
		return f
	}
	return factorTable[Fair]
}

// Parse normalizes a raw condition string to a Rating, defaulting to Fair.
func Parse(raw string) Rating {
	switch Rating(raw) {
	case Distressed, Fair, Good, Excellent:
		return Rating(raw)
	default:
		return Fair
	}
}

// NeedsHeavyWork reports whether the rating is one of the two bottom tiers,
// which trigger landscaping, drywall repair, and extra debris hauling.
func (r Rating) NeedsHeavyWork() bool {
	return r == Distressed || r == Fair
}
