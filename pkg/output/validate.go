package output

import (
	"fmt"

	"github.com/flipcalc/rehab-intelligence/pkg/constants"
)

// ValidateFormat checks that the requested output format is supported.
func ValidateFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (expected pretty, csv, or json)", format)
	}
}
