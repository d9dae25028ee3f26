package estimate

import (
	"time"

	"github.com/flipcalc/rehab-intelligence/pkg/assetclass"
	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/condition"
	"github.com/flipcalc/rehab-intelligence/pkg/constants"
	"github.com/flipcalc/rehab-intelligence/pkg/holding"
)

// PropertyInput describes the property being estimated. It is treated as an
// immutable value: the estimator copies it at construction and never writes
// back.
type PropertyInput struct {
	SquareFeet    float64
	YearBuilt     int
	ARV           float64
	ZipCode       string
	Bedrooms      int
	Bathrooms     float64
	Condition     condition.Rating
	HasPool       bool
	RoofType      capex.RoofType
	Stories       int
	GarageSpaces  int
	LotSquareFeet float64
	MonthlyHOA    float64
	RecentPermits []string
}

// Options configures a single Calculate call. Rates are fractional decimals.
// The zero value means an explicit 0% contingency and no holding costs, not
// the documented defaults; callers wanting those should start from
// DefaultOptions and override fields as needed.
type Options struct {
	// ContingencyPct is the buffer applied atop the construction total.
	ContingencyPct float64

	// IncludeHoldingCosts controls whether a holding-cost projection is
	// attached to the estimate.
	IncludeHoldingCosts bool

	// HoldingLoanRate and HoldingLTV size the monthly interest carry. A zero
	// value for either means "use the default".
	HoldingLoanRate float64
	HoldingLTV      float64

	// ReferenceYear pins the year used for property-age computations so
	// results are reproducible; zero means the current wall-clock year.
	ReferenceYear int
}

// DefaultOptions returns the documented defaults: 10% contingency, holding
// costs included at a 10% annual rate and 70% LTV, ages computed against the
// current year.
func DefaultOptions() Options {
	return Options{
		ContingencyPct:      constants.DefaultContingencyPct,
		IncludeHoldingCosts: true,
		HoldingLoanRate:     constants.DefaultHoldingLoanRate,
		HoldingLTV:          constants.DefaultHoldingLTV,
	}
}

func (o Options) normalized() Options {
	if o.ContingencyPct < 0 {
		o.ContingencyPct = 0
	}
	if o.HoldingLoanRate == 0 {
		o.HoldingLoanRate = constants.DefaultHoldingLoanRate
	}
	if o.HoldingLTV == 0 {
		o.HoldingLTV = constants.DefaultHoldingLTV
	}
	if o.ReferenceYear == 0 {
		o.ReferenceYear = time.Now().Year()
	}
	return o
}

// RehabBreakdown itemizes construction costs by category. ConstructionTotal
// is always the sum of the eleven categories plus Permits, and Total adds
// Contingency on top.
type RehabBreakdown struct {
	Kitchen           float64 `json:"kitchen"`
	Bathrooms         float64 `json:"bathrooms"`
	Flooring          float64 `json:"flooring"`
	PaintWalls        float64 `json:"paint_walls"`
	Exterior          float64 `json:"exterior"`
	Roof              float64 `json:"roof"`
	HVAC              float64 `json:"hvac"`
	Electrical        float64 `json:"electrical"`
	Plumbing          float64 `json:"plumbing"`
	WindowsDoors      float64 `json:"windows_doors"`
	Other             float64 `json:"other"`
	Permits           float64 `json:"permits"`
	Contingency       float64 `json:"contingency"`
	ConstructionTotal float64 `json:"construction_total"`
	Total             float64 `json:"total"`
}

// RehabEstimate is the aggregate result of a Calculate call. It is created
// fresh on every call and never mutated after return.
type RehabEstimate struct {
	AssetClass       assetclass.Class `json:"asset_class"`
	AssetMultiplier  float64          `json:"asset_multiplier"`
	LocationFactor   float64          `json:"location_factor"`
	LocationMarket   string           `json:"location_market"`
	Condition        condition.Rating `json:"condition"`
	Breakdown        RehabBreakdown   `json:"breakdown"`
	Warnings         []capex.Warning  `json:"warnings"`
	HoldingCosts     *holding.Costs   `json:"holding_costs,omitempty"`
	TotalRehab       float64          `json:"total_rehab"`
	TotalProjectCost float64          `json:"total_project_cost"`
}

// Tier labels the finish grade applied uniformly to generated line items.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// LineItem is a presentation-oriented slice of the breakdown.
type LineItem struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Tier     Tier    `json:"tier"`
	Cost     float64 `json:"cost"`
}
