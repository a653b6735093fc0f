package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount rounded half away from zero to precision places,
// always printing that many decimals.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 12 with precision 2 returns "12.00"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
