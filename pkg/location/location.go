// Package location maps zip codes to regional cost multipliers. The table is a
// static 2025 Florida baseline; it is never recomputed or fetched at runtime.
package location

// Factor is the cost multiplier and human-readable market label for a zip code.
type Factor struct {
	Factor float64 `json:"factor"`
	Market string  `json:"market"`
}

// DefaultFactor is returned for any zip code not present in the table.
var DefaultFactor = Factor{Factor: 1.15, Market: "Florida Average"}

// factors is keyed by exact 5-digit zip string. No normalization is performed;
// callers must supply zips matching the table keys exactly.
var factors = map[string]Factor{
	"33109": {Factor: 1.65, Market: "Miami Beach - Fisher Island"},
	"33139": {Factor: 1.50, Market: "Miami Beach"},
	"33131": {Factor: 1.45, Market: "Miami - Brickell"},
	"33133": {Factor: 1.40, Market: "Miami - Coconut Grove"},
	"33480": {Factor: 1.60, Market: "Palm Beach"},
	"33401": {Factor: 1.25, Market: "West Palm Beach"},
	"33408": {Factor: 1.30, Market: "North Palm Beach"},
	"33301": {Factor: 1.35, Market: "Fort Lauderdale"},
	"33316": {Factor: 1.40, Market: "Fort Lauderdale - Harbor Beach"},
	"34102": {Factor: 1.55, Market: "Naples - Old Naples"},
	"34108": {Factor: 1.45, Market: "Naples - Pelican Bay"},
	"33606": {Factor: 1.30, Market: "Tampa - Hyde Park"},
	"33602": {Factor: 1.25, Market: "Tampa - Downtown"},
	"33629": {Factor: 1.30, Market: "Tampa - Palma Ceia"},
	"32789": {Factor: 1.30, Market: "Winter Park"},
	"32801": {Factor: 1.20, Market: "Orlando - Downtown"},
	"32207": {Factor: 1.10, Market: "Jacksonville - San Marco"},
	"32082": {Factor: 1.35, Market: "Ponte Vedra Beach"},
	"33916": {Factor: 1.05, Market: "Fort Myers"},
	"34236": {Factor: 1.40, Market: "Sarasota - Downtown"},
	"33040": {Factor: 1.45, Market: "Key West"},
	"32601": {Factor: 1.00, Market: "Gainesville"},
	"32304": {Factor: 1.00, Market: "Tallahassee"},
}

// Resolve looks up the cost factor for a zip code, falling back to
// DefaultFactor when the zip is not in the table.
func Resolve(zip string) Factor {
	if f, ok := factors[zip]; ok {
		return f
	}
	return DefaultFactor
}

// All returns a copy of the full factor table keyed by zip code, for
// diagnostic and admin tooling. The "default" key carries the fallback entry.
func All() map[string]Factor {
	out := make(map[string]Factor, len(factors)+1)
	for zip, f := range factors {
		out[zip] = f
	}
	out["default"] = DefaultFactor
	return out
}
