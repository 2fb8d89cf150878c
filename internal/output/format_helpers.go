package output

import (
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and
// grouped thousands, e.g. "$1,234.57" or "-$1,234.57".
// Kept here so it can be reused by multiple commands and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.Round(2).IsNegative() {
		return "-$" + numfmt.AddCommas(amount.Neg().StringFixed(2))
	}
	return "$" + numfmt.AddCommas(amount.Abs().StringFixed(2))
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string {
	return numfmt.AddCommas(amount.StringFixed(2)) + "%"
}
