package kline

import (
	"math"
	"strconv"
	"strings"
)

// Numeric fields never fail: text that is not a number becomes NaN and
// travels with the series, matching how the upstream charts treat bad ticks.

// wholeNumber parses text that must be a number in its entirety, surrounding
// whitespace aside. Decimal, Infinity and 0x/0o/0b integer forms are accepted.
func wholeNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if n := decimalPrefix(s); n == len(s) {
		return parseDecimal(s)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if f, ok := digitsValue(s[2:], base); ok {
				return f
			}
		}
	}
	return math.NaN()
}

// leadingFloat parses the longest decimal prefix of s after leading
// whitespace, e.g. "10.5abc" is 10.5. NaN when there is no prefix.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	n := decimalPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	return parseDecimal(s[:n])
}

// leadingInt parses the leading integer of s, truncating any fraction.
// A 0x prefix selects base 16. NaN when there are no digits.
func leadingInt(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	digits := s[:digitRun(s, base)]
	if digits == "" {
		return math.NaN()
	}
	var f float64
	if base == 10 {
		f = parseDecimal(digits)
	} else {
		f, _ = digitsValue(digits, base)
	}
	if neg {
		return -f
	}
	return f
}

// decimalPrefix returns the length of the longest prefix of s that reads as
// [+-](Infinity | digits[.digits][e[+-]digits] | .digits[e[+-]digits]).
func decimalPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}
	intDigits := digitRun(s[i:], 10)
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = digitRun(s[i+1:], 10)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exp := digitRun(s[j:], 10); exp > 0 {
			i = j + exp
		}
	}
	return i
}

func parseDecimal(s string) float64 {
	switch strings.TrimLeft(s, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still carry a value (±Inf or 0).
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

func digitRun(s string, base int) int {
	n := 0
	for n < len(s) && digitVal(s[n]) < base {
		n++
	}
	return n
}

func digitsValue(s string, base int) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f := 0.0
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			return 0, false
		}
		f = f*float64(base) + float64(d)
	}
	return f, true
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}
