// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config into engine input.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/flipcalc/rehab-intelligence/internal/estimate"
	"github.com/flipcalc/rehab-intelligence/pkg/capex"
	"github.com/flipcalc/rehab-intelligence/pkg/condition"
	"github.com/flipcalc/rehab-intelligence/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for rehab-intelligence.
type Configuration struct {
	Property Property       `yaml:"property"`
	Estimate EstimateConfig `yaml:"estimate,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Store    StoreConfig    `yaml:"store,omitempty"`
}

// Property is the loosely-typed property description from the config file.
// Missing fields receive documented defaults rather than causing errors.
type Property struct {
	SquareFeet    float64  `yaml:"squareFeet,omitempty"`
	YearBuilt     int      `yaml:"yearBuilt,omitempty"`
	ARV           float64  `yaml:"arv,omitempty"`
	ZipCode       string   `yaml:"zipCode,omitempty"`
	Bedrooms      int      `yaml:"bedrooms,omitempty"`
	Bathrooms     float64  `yaml:"bathrooms,omitempty"`
	Condition     string   `yaml:"condition,omitempty"`
	HasPool       bool     `yaml:"hasPool,omitempty"`
	RoofType      string   `yaml:"roofType,omitempty"`
	Stories       int      `yaml:"stories,omitempty"`
	GarageSpaces  int      `yaml:"garageSpaces,omitempty"`
	LotSquareFeet float64  `yaml:"lotSquareFeet,omitempty"`
	MonthlyHOA    float64  `yaml:"monthlyHOA,omitempty"`
	RecentPermits []string `yaml:"recentPermits,omitempty"`
}

// EstimateConfig holds estimate option overrides.
type EstimateConfig struct {
	ContingencyPct      *float64 `yaml:"contingencyPct,omitempty"`
	IncludeHoldingCosts *bool    `yaml:"includeHoldingCosts,omitempty"`
	HoldingLoanRate     float64  `yaml:"holdingLoanRate,omitempty"`
	HoldingLTV          float64  `yaml:"holdingLtv,omitempty"`
	ReferenceYear       int      `yaml:"referenceYear,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// StoreConfig holds the optional estimate persistence settings.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"` // SQLite database file; empty disables persistence
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshal(v)
}

// LoadConfigurationFromReader loads YAML configuration from an in-memory
// source, used by the HTTP API.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// PropertyInput converts the loosely-typed property config into engine input,
// applying the documented defaults for missing fields. The engine itself never
// validates; this is the single place defaults are decided.
func (c *Configuration) PropertyInput() estimate.PropertyInput {
	p := c.Property

	sqft := p.SquareFeet
	if sqft <= 0 {
		sqft = constants.DefaultSquareFeet
	}
	yearBuilt := p.YearBuilt
	if yearBuilt == 0 {
		yearBuilt = constants.DefaultYearBuilt
	}
	arv := p.ARV
	if arv <= 0 {
		arv = constants.DefaultARV
	}
	zip := strings.TrimSpace(p.ZipCode)
	if zip == "" {
		zip = constants.DefaultZipCode
	}
	bedrooms := p.Bedrooms
	if bedrooms <= 0 {
		bedrooms = constants.DefaultBedrooms
	}
	bathrooms := p.Bathrooms
	if bathrooms <= 0 {
		bathrooms = constants.DefaultBathrooms
	}
	stories := p.Stories
	if stories <= 0 {
		stories = constants.DefaultStories
	}
	lotSqft := p.LotSquareFeet
	if lotSqft <= 0 {
		lotSqft = sqft * 3
	}

	permits := make([]string, 0, len(p.RecentPermits))
	for _, tag := range p.RecentPermits {
		permits = append(permits, strings.ToLower(strings.TrimSpace(tag)))
	}

	return estimate.PropertyInput{
		SquareFeet:    sqft,
		YearBuilt:     yearBuilt,
		ARV:           arv,
		ZipCode:       zip,
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		Condition:     condition.Parse(strings.ToLower(strings.TrimSpace(p.Condition))),
		HasPool:       p.HasPool,
		RoofType:      capex.ParseRoofType(strings.ToLower(strings.TrimSpace(p.RoofType))),
		Stories:       stories,
		GarageSpaces:  p.GarageSpaces,
		LotSquareFeet: lotSqft,
		MonthlyHOA:    p.MonthlyHOA,
		RecentPermits: permits,
	}
}

// EstimateOptions converts the estimate config into engine options, starting
// from the documented defaults.
func (c *Configuration) EstimateOptions() estimate.Options {
	opts := estimate.DefaultOptions()
	e := c.Estimate

	if e.ContingencyPct != nil {
		opts.ContingencyPct = *e.ContingencyPct
	}
	if e.IncludeHoldingCosts != nil {
		opts.IncludeHoldingCosts = *e.IncludeHoldingCosts
	}
	if e.HoldingLoanRate > 0 {
		opts.HoldingLoanRate = e.HoldingLoanRate
	}
	if e.HoldingLTV > 0 {
		opts.HoldingLTV = e.HoldingLTV
	}
	if e.ReferenceYear > 0 {
		opts.ReferenceYear = e.ReferenceYear
	}
	return opts
}
