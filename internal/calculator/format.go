package calculator

import "strings"

// FormatDisplay prepares an input string for the display: the integer part
// gets thousands separators, ErrorDisplay passes unchanged and a lone minus
// sign shows as "-0".
func FormatDisplay(s string) string {
	if s == ErrorDisplay {
		return ErrorDisplay
	}
	if s == "-" {
		return "-0"
	}

	parts := strings.Split(s, ".")
	out := groupThousands(parts[0])
	if len(parts) > 1 {
		out += "." + parts[1]
	}
	return out
}

// groupThousands inserts a comma in front of every digit that starts a run of
// a positive multiple of three digits, as long as it follows a word character.
// "-1234" becomes "-1,234", "1e+21" stays untouched.
func groupThousands(s string) string {
	if len(s) < 4 {
		return s
	}

	// run[i] is the number of consecutive digits starting at i
	run := make([]int, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			run[i] = run[i+1] + 1
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && run[i] > 0 && run[i]%3 == 0 && isWordChar(s[i-1]) {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
