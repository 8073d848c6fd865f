// Package manning loads today's shift roster from a monthly schedule workbook.
package manning

import (
	"time"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// Options configures a roster load.
type Options struct {
	// Today is the date to look for. Only its month and day are used.
	// If zero, the current local time is used.
	Today time.Time
	// Shifts gives the keyword for each shift, in models.Shifts order.
	// If empty, models.DefaultShiftRules is used.
	Shifts []models.ShiftRule
}

// DefaultOptions returns options for today with the default shift keywords.
func DefaultOptions() Options {
	return Options{
		Today:  time.Now(),
		Shifts: models.DefaultShiftRules(),
	}
}

// today returns the date to search for.
func (o Options) today() time.Time {
	if o.Today.IsZero() {
		return time.Now()
	}
	return o.Today
}

// shifts returns the configured shift rules, falling back to the defaults.
func (o Options) shifts() []models.ShiftRule {
	if len(o.Shifts) == 0 {
		return models.DefaultShiftRules()
	}
	return o.Shifts
}
