package calculator

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal literal of a string
var numberPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// divisionPrecision is the number of significant digits kept after a division
const divisionPrecision = 12

// Evaluate applies op to the operands a and b.
//
// Operands that do not start with a number evaluate to "0". Division by zero
// returns ErrorDisplay. Only division results are rounded.
func Evaluate(a, b string, op Operator) string {
	x := ParseNumber(a)
	y := ParseNumber(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return "0"
	}

	switch op {
	case OpAdd:
		return FormatNumber(x + y)
	case OpSubtract:
		return FormatNumber(x - y)
	case OpMultiply:
		return FormatNumber(x * y)
	case OpDivide:
		if y == 0 {
			return ErrorDisplay
		}
		return FormatNumber(roundSignificant(x/y, divisionPrecision))
	default:
		return FormatNumber(y)
	}
}

// exactDigits is enough significant digits to print any float64 exactly
const exactDigits = 800

// roundSignificant rounds f to the given number of significant digits.
// Ties on the exact decimal value round away from zero.
func roundSignificant(f float64, digits int) float64 {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	// "-d.ddd...e+XX", exact because big.Float converts without rounding
	// when enough digits are requested
	text := new(big.Float).SetFloat64(f).Text('e', exactDigits)
	mantissa, exp, _ := strings.Cut(text, "e")
	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign, mantissa = "-", mantissa[1:]
	}
	all := strings.Replace(mantissa, ".", "", 1)

	kept := []byte(all[:digits])
	if all[digits] >= '5' {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept = append([]byte{'1'}, kept...)
		} else {
			kept[i]++
		}
	}

	e, err := strconv.Atoi(exp)
	if err != nil {
		return f
	}
	// kept holds the digits as an integer; scale it back to the exponent
	scale := e - (digits - 1)
	if len(kept) > digits {
		kept = kept[:digits]
		scale++
	}

	r, err := strconv.ParseFloat(sign+string(kept)+"e"+strconv.Itoa(scale), 64)
	if err != nil {
		return f
	}
	return r
}

// ParseNumber parses the leading number of s. Trailing garbage is ignored
// ("5." is 5); a string without a leading number yields NaN.
func ParseNumber(s string) float64 {
	m := numberPrefix.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return math.NaN()
	}
	// Out of range literals still carry the correctly signed infinity.
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// FormatNumber renders f as the shortest decimal that parses back to f.
// Magnitudes below 1e-6 or from 1e21 upwards use exponent notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
