// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flipcalc/rehab-intelligence/internal/estimate"
	"github.com/flipcalc/rehab-intelligence/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type categoryRow struct {
	label string
	value float64
}

func breakdownRows(b estimate.RehabBreakdown) []categoryRow {
	return []categoryRow{
		{"Kitchen", b.Kitchen},
		{"Bathrooms", b.Bathrooms},
		{"Flooring", b.Flooring},
		{"Paint / Walls", b.PaintWalls},
		{"Exterior", b.Exterior},
		{"Roof", b.Roof},
		{"HVAC", b.HVAC},
		{"Electrical", b.Electrical},
		{"Plumbing", b.Plumbing},
		{"Windows / Doors", b.WindowsDoors},
		{"Other", b.Other},
		{"Permits", b.Permits},
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *estimate.RehabEstimate, items []estimate.LineItem) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Rehab estimate: %s (%s, location factor %.2f) ---\n",
		result.LocationMarket, result.AssetClass, result.LocationFactor)
	fmt.Printf("Category        | Cost\n")
	fmt.Printf("________        | ____\n")
	for _, row := range breakdownRows(result.Breakdown) {
		_, _ = p.Printf("%-15s | %s\n", row.label, format.Currency(row.value))
	}
	fmt.Printf("\n")
	_, _ = p.Printf("Construction total: %s\n", format.Currency(result.Breakdown.ConstructionTotal))
	_, _ = p.Printf("Contingency:        %s\n", format.Currency(result.Breakdown.Contingency))
	_, _ = p.Printf("Total rehab:        %s\n", format.Currency(result.TotalRehab))

	if hc := result.HoldingCosts; hc != nil {
		_, _ = p.Printf("Holding costs:      %s (%d months at %s/month)\n",
			format.Currency(hc.TotalHolding), hc.DurationMonths, format.Currency(hc.MonthlyTotal))
	}
	_, _ = p.Printf("Total project cost: %s\n", format.Currency(result.TotalProjectCost))

	if len(result.Warnings) > 0 {
		fmt.Printf("\nDeferred maintenance warnings:\n")
		for _, warning := range result.Warnings {
			fmt.Printf("  [%s] %s (%s) - %s\n",
				warning.Priority, warning.Item, format.WholeCurrency(warning.EstimatedCost), warning.Notes)
		}
	}

	if len(items) > 0 {
		fmt.Printf("\nLine items (%s tier):\n", items[0].Tier)
		for _, item := range items {
			_, _ = p.Printf("  %-22s qty %8.1f  %s\n", item.ItemID, item.Quantity, format.Currency(item.Cost))
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *estimate.RehabEstimate) {
	fmt.Printf("\"category\",\"cost\"\n")
	for _, row := range breakdownRows(result.Breakdown) {
		fmt.Printf("\"%s\",\"%.2f\"\n", row.label, row.value)
	}
	fmt.Printf("\"Contingency\",\"%.2f\"\n", result.Breakdown.Contingency)
	fmt.Printf("\"Total\",\"%.2f\"\n", result.Breakdown.Total)
	if hc := result.HoldingCosts; hc != nil {
		fmt.Printf("\"Holding (%d months)\",\"%.2f\"\n", hc.DurationMonths, hc.TotalHolding)
	}
	fmt.Printf("\"Total project\",\"%.2f\"\n", result.TotalProjectCost)
}

// JSONFormat writes the full estimate and line items as an indented JSON
// document to stdout.
func JSONFormat(result *estimate.RehabEstimate, items []estimate.LineItem) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"estimate":   result,
		"line_items": items,
	})
}
