// Package datetime provides date parsing utilities for worksheet and
// MLS dates.
package datetime

import (
	"time"

	"github.com/iwvelando/trendsheet/pkg/constants"
)

// DateLayout is the format expected for worksheet dates and is also the
// output date format.
const DateLayout = constants.DateLayout

// mlsLayouts are the close/list date formats accepted from pasted MLS
// text, tried in order.
var mlsLayouts = []string{
	DateLayout,
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
}

// MustParseTime parses a date string using the given layout and panics
// on error. This is intended for use in tests where the date string is
// known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseMLSDate parses a date cell from pasted MLS text. The second
// return is false when the cell is blank or matches no known layout.
func ParseMLSDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range mlsLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthsBefore returns the date the given number of months before t.
func MonthsBefore(t time.Time, months int) time.Time {
	return t.AddDate(0, -months, 0)
}
