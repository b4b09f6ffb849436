// Package numeric provides safe parsing and aggregate statistics over
// worksheet values that may be blank or non-numeric. A missing or
// unparsable quantity is represented by an unavailable Value which
// propagates through arithmetic instead of collapsing to zero.
package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Value holds a numeric quantity that may be unavailable. The zero
// Value is unavailable.
type Value struct {
	Float64 float64
	Valid   bool
}

// Some returns an available Value.
func Some(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// None returns an unavailable Value.
func None() Value {
	return Value{}
}

// Or returns the contained number, or def when the Value is unavailable.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Float64
}

// Parse converts raw worksheet text into a Value. Blank or non-numeric
// input yields an unavailable Value, never zero and never an error.
// Trailing non-numeric text is tolerated ("1800 sf" parses as 1800).
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return None()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return Some(f)
	}
	for i := len(s) - 1; i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil && isFinite(f) {
			return Some(f)
		}
	}
	return None()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SafeDivide returns a/b, or an unavailable Value when the divisor is
// zero or either operand is unavailable.
func SafeDivide(a, b Value) Value {
	if !a.Valid || !b.Valid || b.Float64 == 0 {
		return None()
	}
	return Some(a.Float64 / b.Float64)
}

// Round rounds an available Value to the nearest whole unit.
func Round(v Value) Value {
	if !v.Valid {
		return v
	}
	return Some(math.Round(v.Float64))
}

// available filters a sample down to the present numeric values.
func available(values []Value) []float64 {
	var out []float64
	for _, v := range values {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// Mean returns the mean of the available values, or an unavailable
// Value when none are present.
func Mean(values []Value) Value {
	return wrap(stats.Mean(available(values)))
}

// Median returns the median of the available values; an even-length
// sample averages the two central sorted values.
func Median(values []Value) Value {
	return wrap(stats.Median(available(values)))
}

// Min returns the smallest available value.
func Min(values []Value) Value {
	return wrap(stats.Min(available(values)))
}

// Max returns the largest available value.
func Max(values []Value) Value {
	return wrap(stats.Max(available(values)))
}

func wrap(f float64, err error) Value {
	if err != nil {
		return None()
	}
	return Some(f)
}
