package config

import (
	"fmt"
	"strings"

	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/condition"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing here is fatal: the engine applies defaults for
// anything questionable, but callers should surface these to the user.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	p := c.Property

	if p.SquareFeet < 0 {
		warnings = append(warnings, fmt.Sprintf("squareFeet %.0f is negative; the default of 1500 will be used", p.SquareFeet))
	}
	if p.ARV < 0 {
		warnings = append(warnings, fmt.Sprintf("arv %.0f is negative; the default of 400000 will be used", p.ARV))
	}
	if p.ARV == 0 {
		warnings = append(warnings, "arv is not set; the default of 400000 will be used")
	}
	if p.Bathrooms < 0 {
		warnings = append(warnings, "bathrooms is negative; the default of 2 will be used")
	}

	if raw := strings.ToLower(strings.TrimSpace(p.Condition)); raw != "" {
		if condition.Parse(raw) != condition.Rating(raw) {
			warnings = append(warnings, fmt.Sprintf("condition %q is not recognized; 'fair' will be assumed", p.Condition))
		}
	}
	if raw := strings.ToLower(strings.TrimSpace(p.RoofType)); raw != "" {
		if capex.ParseRoofType(raw) != capex.RoofType(raw) {
			warnings = append(warnings, fmt.Sprintf("roofType %q is not recognized; 'shingle' will be assumed", p.RoofType))
		}
	}

	// A typoed permit tag silently fails to suppress its warning, so flag it.
	recognized := capex.NewPermitSet(normalizeTags(p.RecentPermits))
	for _, tag := range normalizeTags(p.RecentPermits) {
		if !recognized.Has(capex.PermitCategory(tag)) {
			warnings = append(warnings, fmt.Sprintf("recentPermits tag %q is not a known permit category and will be ignored", tag))
		}
	}

	if e := c.Estimate; e.ContingencyPct != nil && (*e.ContingencyPct < 0 || *e.ContingencyPct > 1) {
		warnings = append(warnings, fmt.Sprintf("contingencyPct %.2f is outside [0, 1]; rates are fractional decimals", *e.ContingencyPct))
	}

	return warnings
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.ToLower(strings.TrimSpace(tag)))
	}
	return out
}
