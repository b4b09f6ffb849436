// Package format renders worksheet quantities as fixed-locale text.
// Unavailable values always render as "N/A"; formatting never fails.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// Unavailable is the textual rendering of a value that could not be
// computed.
const Unavailable = "N/A"

var printer = message.NewPrinter(language.AmericanEnglish)

// Number returns a plain number with thousands separators and the given
// number of decimal places (e.g. "1,234" or "1,234.50").
func Number(v numeric.Value, decimals int) string {
	if !v.Valid {
		return Unavailable
	}
	return printer.Sprintf("%v", number.Decimal(v.Float64,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

// Currency returns a whole-dollar currency string with a leading sign
// (e.g. "-$1,234").
func Currency(v numeric.Value) string {
	if !v.Valid {
		return Unavailable
	}
	amount := v.Float64
	if amount < 0 {
		return "-$" + Number(numeric.Some(-amount), 0)
	}
	return "$" + Number(v, 0)
}

// Percent renders a fraction of 1 as a percentage with the given number
// of decimal places (e.g. 0.0525 -> "5.3%").
func Percent(v numeric.Value, decimals int) string {
	if !v.Valid {
		return Unavailable
	}
	return fmt.Sprintf("%.*f%%", decimals, v.Float64*100)
}
