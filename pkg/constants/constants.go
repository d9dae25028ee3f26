// Package constants provides shared constants for the rehab-intelligence application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Estimate option defaults
const (
	// DefaultContingencyPct is the buffer applied atop the construction total
	DefaultContingencyPct = 0.10

	// DefaultHoldingLoanRate is the annual interest rate assumed for holding costs
	DefaultHoldingLoanRate = 0.10

	// DefaultHoldingLTV is the loan-to-value ratio assumed for holding costs
	DefaultHoldingLTV = 0.70
)

// Property input defaults applied when a field is missing from the config
const (
	DefaultSquareFeet = 1500.0
	DefaultYearBuilt  = 2000
	DefaultARV        = 400000.0
	DefaultZipCode    = "33401"
	DefaultBedrooms   = 3
	DefaultBathrooms  = 2.0
	DefaultStories    = 1
)

// Annual carrying-cost rates expressed as fractions of ARV
const (
	// AnnualPropertyTaxRate is the assumed effective property tax rate
	AnnualPropertyTaxRate = 0.018

	// AnnualInsuranceRate is the assumed annual insurance premium rate
	AnnualInsuranceRate = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "property.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
