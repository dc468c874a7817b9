package model

import "github.com/shopspring/decimal"

// Money is a fixed-point monetary amount. It behaves like decimal.Decimal
// everywhere except JSON, where it always serializes as a quoted
// 2-decimal-place string ("25.00", never "25") — the canonical wire form for
// amounts. Database round-trips go through the embedded decimal's
// Valuer/Scanner.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d} }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}
