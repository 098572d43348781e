// Package money centralizes the platform's currency conventions.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// HomeCurrency is the platform's settlement currency (Gambian dalasi).
// It is the single place the "GMD" fallback lives; callers that need a
// default currency go through OrFallback instead of hardcoding one.
// Reconciliation grouping deliberately does NOT use it: groups are keyed
// by the raw stored code, blanks included.
const HomeCurrency = "GMD"

// OrFallback returns the currency code as stored, falling back to
// HomeCurrency when the stored value is empty or whitespace.
// Unknown non-empty codes pass through untouched.
func OrFallback(code string) string {
	if strings.TrimSpace(code) == "" {
		return HomeCurrency
	}
	return code
}

// OrZero treats a missing amount as zero so summation never has to
// branch on nil.
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
