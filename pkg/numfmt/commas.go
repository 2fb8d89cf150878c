// Package numfmt renders numbers for display: thousands grouping and
// abbreviated magnitudes such as "1.5 million".
package numfmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// groupPattern matches a run of digits long enough to take one more
// separator. The first group is greedy, so the leftmost match always
// splits off the last three digits of its run.
var groupPattern = regexp.MustCompile(`(\d+)(\d{3})`)

// AddCommas inserts a comma between every group of three digits in the
// integer part of value. The fractional part (if any) is kept as is.
//
// Input that already contains commas comes back unchanged, and input that
// is not a number is passed through the same matching without error.
func AddCommas(value any) string {
	parts := strings.Split(Stringify(value), ".")
	x1 := parts[0]
	x2 := ""
	if len(parts) > 1 {
		x2 = "." + parts[1]
	}

	for loc := groupPattern.FindStringSubmatchIndex(x1); loc != nil; loc = groupPattern.FindStringSubmatchIndex(x1) {
		x1 = x1[:loc[3]] + "," + x1[loc[4]:]
	}
	return x1 + x2
}

// Stringify converts value to the string form AddCommas groups.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloatBits(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	return fmt.Sprint(value)
}

// formatFloat renders f with the shortest digits that round-trip, in plain
// notation between 1e-6 and 1e21 and in exponent notation ("1e+21",
// "1.5e-7") outside that range.
func formatFloat(f float64) string {
	return formatFloatBits(f, 64)
}

// formatFloatBits is formatFloat for a value that originally had bitSize
// bits, so a float32 0.1 renders as "0.1" rather than its float64 widening.
func formatFloatBits(f float64, bitSize int) string {
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
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
