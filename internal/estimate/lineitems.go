package estimate

import (
	"github.com/flipcalc/rehab-intelligence/pkg/assetclass"
	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/costs"
	"github.com/flipcalc/rehab-intelligence/pkg/mathutil"
)

// tierFor maps the asset class to the finish grade applied uniformly to all
// generated items.
func tierFor(class assetclass.Class) Tier {
	switch class {
	case assetclass.UltraLuxury:
		return TierHigh
	case assetclass.Luxury:
		return TierMid
	default:
		return TierLow
	}
}

// split is a fixed proportional decomposition of one category total.
type split struct {
	itemID   string
	share    float64
	quantity float64
}

// LineItems fans the breakdown into discrete, displayable items. It re-derives
// a zero-contingency, no-holding-cost breakdown, so the summed item costs per
// category match Calculate with ContingencyPct 0. Categories that priced at
// zero produce no items.
func (e *Estimator) LineItems(opts Options) []LineItem {
	opts = opts.normalized()
	b, _ := e.computeBreakdown(0, opts.ReferenceYear)

	in := e.input
	tier := tierFor(e.class.Class)
	fullBaths, halfBaths := BathCounts(in.Bathrooms)
	treatedSqft := in.SquareFeet * costs.FlooringCoverageRatio * e.cond.DryRoomFactor

	categories := []struct {
		total  float64
		splits []split
	}{
		{b.Kitchen, []split{
			{"kitchen_cabinets", 0.40, 1},
			{"kitchen_countertops", 0.25, 1},
			{"kitchen_appliances", 0.25, 1},
			{"kitchen_backsplash", 0.10, 1},
		}},
		{b.Bathrooms, []split{
			{"bath_tile_surrounds", 0.40, float64(fullBaths)},
			{"bath_vanities", 0.30, float64(fullBaths + halfBaths)},
			{"bath_fixtures", 0.30, float64(fullBaths + halfBaths)},
		}},
		{b.Flooring, []split{
			{"flooring_material", 0.60, treatedSqft},
			{"flooring_install", 0.40, treatedSqft},
		}},
		{b.PaintWalls, []split{
			{"interior_paint", 0.90, in.SquareFeet * costs.WallAreaPerFloorSqft},
			{"wall_repair", 0.10, float64(in.Bedrooms + 3)},
		}},
		{b.Exterior, []split{
			{"exterior_paint", 0.50, 1},
			{"landscaping", 0.30, 1},
			{"exterior_repairs", 0.20, 1},
		}},
		{b.Roof, []split{
			{"roof_replacement", 1.00, 1},
		}},
		{b.HVAC, []split{
			{"hvac_system", 1.00, float64(capex.HVACTons(in.SquareFeet))},
		}},
		{b.Electrical, []split{
			{"electrical_panel", 0.60, 1},
			{"electrical_fixtures", 0.40, in.SquareFeet},
		}},
		{b.Plumbing, []split{
			{"plumbing_repipe", 0.70, in.SquareFeet},
			{"plumbing_water_heater", 0.30, 1},
		}},
		{b.WindowsDoors, []split{
			{"window_units", 0.80, float64(capex.WindowCount(in.Bedrooms))},
			{"interior_doors", 0.20, float64(in.Bedrooms + 2)},
		}},
		{b.Other, []split{
			{"dumpsters", 0.40, float64(dumpsterLoads(in.Condition))},
			{"deep_cleaning", 0.50, in.SquareFeet},
			{"pest_treatment", 0.10, 1},
		}},
		{b.Permits, []split{
			{"permit_fees", 1.00, 1},
		}},
	}

	var items []LineItem
	for _, cat := range categories {
		if mathutil.IsZero(cat.total) {
			continue
		}
		for _, s := range cat.splits {
			items = append(items, LineItem{
				ItemID:   s.itemID,
				Quantity: s.quantity,
				Tier:     tier,
				Cost:     cat.total * s.share,
			})
		}
	}
	return items
}
