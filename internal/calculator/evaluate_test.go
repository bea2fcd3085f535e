package calculator

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   Operator
		want string
	}{
		{"add", "5", "3", OpAdd, "8"},
		{"subtract", "10", "4", OpSubtract, "6"},
		{"subtract below zero", "3", "10", OpSubtract, "-7"},
		{"multiply", "2.5", "4", OpMultiply, "10"},
		{"divide exact", "47000", "188", OpDivide, "250"},
		{"divide rounded", "1", "3", OpDivide, "0.333333333333"},
		{"divide tie rounds up", "9876543121", "8", OpDivide, "1234567890.13"},
		{"divide negative tie rounds away from zero", "-9876543121", "8", OpDivide, "-1234567890.13"},
		{"divide by zero", "6", "0", OpDivide, ErrorDisplay},
		{"zero by zero", "0", "0", OpDivide, ErrorDisplay},
		{"divide by negative zero", "6", "-0", OpDivide, ErrorDisplay},
		{"invalid first operand", ErrorDisplay, "3", OpAdd, "0"},
		{"invalid second operand", "3", ".", OpMultiply, "0"},
		{"trailing point", "5.", "2", OpMultiply, "10"},
		{"overflow", "1e308", "10", OpMultiply, "Infinity"},
		{"infinity by infinity", "Infinity", "Infinity", OpDivide, "NaN"},
		{"no operator returns second operand", "5", "3", OpNone, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.a, tt.b, tt.op); got != tt.want {
				t.Errorf("Evaluate(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.op, got, tt.want)
			}
		})
	}
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"short value unchanged", 250, 250},
		{"repeating", 2.0 / 3, 0.666666666667},
		{"tie", 1234567890.125, 1234567890.13},
		{"negative tie", -1234567890.125, -1234567890.13},
		{"below tie", 1234567890.1249, 1234567890.12},
		{"carry into next digit", 0.9999999999999, 1},
		{"small magnitude", 1.0 / 3e10, 3.33333333333e-11},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundSignificant(tt.input, divisionPrecision); got != tt.want {
				t.Errorf("roundSignificant(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if got := roundSignificant(math.Inf(-1), divisionPrecision); !math.IsInf(got, -1) {
		t.Errorf("roundSignificant(-Inf) = %v, want -Inf", got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		isNaN bool
	}{
		{"5", 5, false},
		{"5.", 5, false},
		{".5", 0.5, false},
		{"-12.25", -12.25, false},
		{"+3", 3, false},
		{"1e+21", 1e21, false},
		{"1.5e-7", 1.5e-7, false},
		{"1e", 1, false},
		{"12abc", 12, false},
		{"  42", 42, false},
		{"Infinity", math.Inf(1), false},
		{"-Infinity", math.Inf(-1), false},
		{"1e400", math.Inf(1), false},
		{".", 0, true},
		{"-", 0, true},
		{"", 0, true},
		{"Error", 0, true},
		{"NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseNumber(tt.input)
			if tt.isNaN {
				if !math.IsNaN(got) {
					t.Errorf("ParseNumber(%q) = %v, want NaN", tt.input, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"integer", 8, "8"},
		{"negative", -7, "-7"},
		{"fraction", 0.5, "0.5"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"shortest round trip", 0.1 + 0.2, "0.30000000000000004"},
		{"smallest plain", 1e-6, "0.000001"},
		{"small exponent", 1.5e-7, "1.5e-7"},
		{"tiny exponent", 2.5e-10, "2.5e-10"},
		{"largest plain", 123456789012345680000, "123456789012345680000"},
		{"large exponent", 1e21, "1e+21"},
		{"huge exponent", 1e100, "1e+100"},
		{"negative exponent form", -1.25e22, "-1.25e+22"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.input); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	values := []float64{1, -1, 0.1, 1.0 / 3, 250, 1e-7, 9.999e20, 1e21, -4.2e-9}
	for _, v := range values {
		if got := ParseNumber(FormatNumber(v)); got != v {
			t.Errorf("ParseNumber(FormatNumber(%v)) = %v", v, got)
		}
	}
}
