// Package pos implements the sale-building workflow: monetary normalization,
// the in-memory cart, and assembly of a cart into a transaction payload.
// All arithmetic uses fixed-point decimals; binary floating point is never
// used for currency.
package pos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// ParseAmount converts a user-entered monetary string into the canonical
// fixed-point amount, rounded to 2 places. Rounding is half-up (shopspring
// default). Negative amounts and non-numeric input are rejected.
func ParseAmount(s string) (model.Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return model.Money{}, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return model.Money{}, fmt.Errorf("amount must be non-negative, got %q", s)
	}
	return model.NewMoney(d.Round(2)), nil
}

// FormatAmount renders an amount as the canonical fixed 2-decimal-place
// string used on the wire and in storage.
func FormatAmount(m model.Money) string {
	return m.StringFixed(2)
}

// ParseQuantity parses a user-entered quantity. Returns ok=false for
// non-integer input or values below 1; callers treat that as a no-op,
// matching the cart's silent-rejection contract.
func ParseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ParseCount parses a non-negative integer sent as a numeric string
// (e.g. product stock on the wire).
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return n, nil
}
