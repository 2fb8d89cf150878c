package numfmt

import (
	"math"
	"strconv"
)

// legacyFixed is the historical rendering of a non-negative n with
// decimals > 0. It differs from fixed only for values that round below
// ten units of the last decimal, or when n < 1 rounds up to 1.
func legacyFixed(n float64, decimals int) string {
	zero := ""
	if n < 1 {
		zero = "0"
	}

	s := formatFloat(math.Round(n * math.Pow10(decimals)))

	var num, remainder string
	if v, err := strconv.ParseFloat(s, 64); err == nil && v < 10 {
		remainder = "0" + substr(s, len(s)-decimals, decimals)
	} else {
		remainder = substr(s, len(s)-decimals, decimals)
		num = substr(s, 0, len(s)-decimals)
	}
	return zero + groupDigits(num) + "." + remainder
}

// substr returns up to length bytes of s starting at start. A negative
// start counts back from the end of s; a negative length yields "".
func substr(s string, start, length int) string {
	if start < 0 {
		start = max(len(s)+start, 0)
	}
	if start >= len(s) || length <= 0 {
		return ""
	}
	return s[start:min(start+length, len(s))]
}
