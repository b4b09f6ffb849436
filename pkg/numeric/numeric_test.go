package numeric

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		valid    bool
		expected float64
	}{
		{
			name:     "Plain integer",
			raw:      "350000",
			valid:    true,
			expected: 350000,
		},
		{
			name:     "Decimal",
			raw:      "0.25",
			valid:    true,
			expected: 0.25,
		},
		{
			name:     "Negative",
			raw:      "-5000",
			valid:    true,
			expected: -5000,
		},
		{
			name:     "Surrounding whitespace",
			raw:      "  1800 ",
			valid:    true,
			expected: 1800,
		},
		{
			name:     "Trailing unit text",
			raw:      "1800 sf",
			valid:    true,
			expected: 1800,
		},
		{
			name:  "Blank",
			raw:   "",
			valid: false,
		},
		{
			name:  "Whitespace only",
			raw:   "   ",
			valid: false,
		},
		{
			name:  "Non-numeric",
			raw:   "pending",
			valid: false,
		},
		{
			name:  "NaN literal",
			raw:   "NaN",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.raw)
			if v.Valid != tt.valid {
				t.Fatalf("Parse(%q).Valid = %v, expected %v", tt.raw, v.Valid, tt.valid)
			}
			if tt.valid && v.Float64 != tt.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tt.raw, v.Float64, tt.expected)
			}
		})
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name     string
		a        Value
		b        Value
		valid    bool
		expected float64
	}{
		{
			name:     "Normal division",
			a:        Some(300000),
			b:        Some(1500),
			valid:    true,
			expected: 200,
		},
		{
			name:  "Zero divisor",
			a:     Some(300000),
			b:     Some(0),
			valid: false,
		},
		{
			name:  "Unavailable numerator",
			a:     None(),
			b:     Some(1500),
			valid: false,
		},
		{
			name:  "Unavailable divisor",
			a:     Some(300000),
			b:     None(),
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := SafeDivide(tt.a, tt.b)
			if v.Valid != tt.valid {
				t.Fatalf("SafeDivide().Valid = %v, expected %v", v.Valid, tt.valid)
			}
			if tt.valid && v.Float64 != tt.expected {
				t.Errorf("SafeDivide() = %v, expected %v", v.Float64, tt.expected)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []Value
		valid    bool
		expected float64
	}{
		{
			name:     "Odd length",
			values:   []Value{Some(1), Some(2), Some(3)},
			valid:    true,
			expected: 2,
		},
		{
			name:     "Even length averages central pair",
			values:   []Value{Some(1), Some(2), Some(3), Some(4)},
			valid:    true,
			expected: 2.5,
		},
		{
			name:   "Empty",
			values: nil,
			valid:  false,
		},
		{
			name:   "All unavailable",
			values: []Value{None(), None()},
			valid:  false,
		},
		{
			name:     "Unavailable values ignored",
			values:   []Value{Some(10), None(), Some(20), None()},
			valid:    true,
			expected: 15,
		},
		{
			name:     "Unsorted input",
			values:   []Value{Some(3), Some(1), Some(2)},
			valid:    true,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Median(tt.values)
			if v.Valid != tt.valid {
				t.Fatalf("Median().Valid = %v, expected %v", v.Valid, tt.valid)
			}
			if tt.valid && v.Float64 != tt.expected {
				t.Errorf("Median() = %v, expected %v", v.Float64, tt.expected)
			}
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []Value
		valid    bool
		expected float64
	}{
		{
			name:     "Simple mean",
			values:   []Value{Some(100), Some(200), Some(300)},
			valid:    true,
			expected: 200,
		},
		{
			name:     "Skips unavailable",
			values:   []Value{Some(100), None(), Some(300)},
			valid:    true,
			expected: 200,
		},
		{
			name:   "Empty",
			values: nil,
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Mean(tt.values)
			if v.Valid != tt.valid {
				t.Fatalf("Mean().Valid = %v, expected %v", v.Valid, tt.valid)
			}
			if tt.valid && v.Float64 != tt.expected {
				t.Errorf("Mean() = %v, expected %v", v.Float64, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	values := []Value{Some(250000), None(), Some(310000), Some(280000)}

	if v := Min(values); !v.Valid || v.Float64 != 250000 {
		t.Errorf("Min() = %+v, expected 250000", v)
	}
	if v := Max(values); !v.Valid || v.Float64 != 310000 {
		t.Errorf("Max() = %+v, expected 310000", v)
	}
	if v := Min(nil); v.Valid {
		t.Errorf("Min(nil).Valid = true, expected unavailable")
	}
}

func TestRound(t *testing.T) {
	if v := Round(Some(199.6)); v.Float64 != 200 {
		t.Errorf("Round(199.6) = %v, expected 200", v.Float64)
	}
	if v := Round(None()); v.Valid {
		t.Errorf("Round(None()).Valid = true, expected unavailable")
	}
}

func TestOr(t *testing.T) {
	if got := Some(5).Or(0); got != 5 {
		t.Errorf("Some(5).Or(0) = %v, expected 5", got)
	}
	if got := None().Or(0); got != 0 {
		t.Errorf("None().Or(0) = %v, expected 0", got)
	}
}
