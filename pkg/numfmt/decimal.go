package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatDecimal is Format for exact base-10 amounts. Scaling and rounding
// are done in decimal arithmetic, so 1.005 at two decimals is "1.01"
// where the float64 path gives "1.00". Legacy is ignored.
func (a Abbreviator) FormatDecimal(d decimal.Decimal, decimals int) string {
	prefix, suffix := "", ""
	if d.IsNegative() {
		prefix, suffix = a.NegativePrefix, a.NegativeSuffix
		d = d.Neg()
	}

	magnitude := ""
	for _, s := range a.scales() {
		threshold := decimal.NewFromFloat(s.Threshold)
		if d.GreaterThanOrEqual(threshold) {
			d = d.Div(threshold)
			magnitude = s.Suffix
			decimals = s.Decimals
			break
		}
	}

	if decimals <= 0 {
		return prefix + groupDigits(d.Round(0).String()) + magnitude + suffix
	}
	whole, frac, _ := strings.Cut(d.StringFixed(int32(decimals)), ".")
	return prefix + groupDigits(whole) + "." + frac + magnitude + suffix
}
