package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// IncomeSuffix is appended by FormatNumber to negative values.
const IncomeSuffix = " in income"

// Scale is one magnitude step of an Abbreviator. Values at or above
// Threshold are divided by it, labelled with Suffix and rendered with
// Decimals fractional digits regardless of what the caller asked for.
type Scale struct {
	Threshold float64
	Suffix    string
	Decimals  int
}

// DefaultScales is the magnitude table used when an Abbreviator has no
// Scales of its own. Thousands are deliberately not abbreviated.
var DefaultScales = []Scale{
	{Threshold: 1e12, Suffix: " trillion", Decimals: 2},
	{Threshold: 1e9, Suffix: " billion", Decimals: 1},
	{Threshold: 1e6, Suffix: " million", Decimals: 1},
}

// Abbreviator renders numbers in an abbreviated, human readable form.
// The zero value is usable: no sign markers, DefaultScales, clean rounding.
type Abbreviator struct {
	// NegativePrefix and NegativeSuffix replace the minus sign of negative
	// values. The sign itself is never rendered.
	NegativePrefix string
	NegativeSuffix string

	// Scales must be ordered from the largest Threshold down. The first
	// matching entry wins. Nil means DefaultScales.
	Scales []Scale

	// Legacy keeps the historical handling of values below one: a static
	// "0" prefix and a single zero padded onto short fractions, which
	// renders 0.5 at one decimal as "0.05". Legacy also switches to exponent
	// form ("1e+23") once the rounded value reaches 1e21, where the default
	// path prints every digit of the float64.
	Legacy bool
}

// DefaultAbbreviator returns the Abbreviator used by FormatNumber.
func DefaultAbbreviator() Abbreviator {
	return Abbreviator{NegativeSuffix: IncomeSuffix}
}

// FormatNumber abbreviates n with the given number of decimals, e.g.
// FormatNumber(1500000, 1) is "1.5 million" and FormatNumber(999, 2) is
// "999.00". Negative values lose their sign and get " in income" appended.
func FormatNumber(n float64, decimals int) string {
	return DefaultAbbreviator().Format(n, decimals)
}

func (a Abbreviator) scales() []Scale {
	if a.Scales == nil {
		return DefaultScales
	}
	return a.Scales
}

// Format abbreviates n. Millions and up are scaled and use the precision
// of their Scale; smaller values keep decimals.
func (a Abbreviator) Format(n float64, decimals int) string {
	prefix, suffix := "", ""
	if n < 0 {
		prefix, suffix = a.NegativePrefix, a.NegativeSuffix
		n = -n
	}
	// Negative zero is not below zero but still carries a sign bit.
	n = math.Abs(n)

	magnitude := ""
	for _, s := range a.scales() {
		if n >= s.Threshold {
			n /= s.Threshold
			magnitude = s.Suffix
			decimals = s.Decimals
			break
		}
	}

	var body string
	switch {
	case decimals <= 0:
		body = groupDigits(formatFloat(math.Round(n)))
	case a.Legacy:
		body = legacyFixed(n, decimals)
	default:
		body = fixed(n, decimals)
	}
	return prefix + body + magnitude + suffix
}

// fixed renders a non-negative n with exactly decimals fractional digits.
func fixed(n float64, decimals int) string {
	r := math.Round(n * math.Pow10(decimals))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return formatFloat(r)
	}

	digits := strconv.FormatFloat(r, 'f', 0, 64)
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return groupDigits(digits[:cut]) + "." + digits[cut:]
}

// groupDigits puts a comma before every third digit, counted from the
// right, of each run of digits in s. Other characters are left alone.
func groupDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/3)

	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		for k := i; k < j; k++ {
			if k > i && (j-k)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteByte(s[k])
		}
		i = j
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
