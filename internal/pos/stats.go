package pos

import (
	"github.com/shopspring/decimal"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// Stats are the dashboard aggregates. They are plain sums over the full
// collections — total of every transaction, amount of every expense, amount
// of every debt (paid or not), and the transaction count — mirroring exactly
// what the dashboard computes client-side from the list endpoints.
type Stats struct {
	TotalSales        model.Money `json:"totalSales"`
	TotalExpenses     model.Money `json:"totalExpenses"`
	TotalTransactions int         `json:"totalTransactions"`
	TotalDebts        model.Money `json:"totalDebts"`
	Currency          string      `json:"currency"`
}

// Summarize computes Stats from the full entity collections.
func Summarize(transactions []model.Transaction, expenses []model.Expense, debts []model.Debt) Stats {
	sales, spent, owed := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range transactions {
		sales = sales.Add(t.Total.Decimal)
	}
	for _, e := range expenses {
		spent = spent.Add(e.Amount.Decimal)
	}
	for _, d := range debts {
		owed = owed.Add(d.Amount.Decimal)
	}
	return Stats{
		TotalSales:        model.NewMoney(sales),
		TotalExpenses:     model.NewMoney(spent),
		TotalTransactions: len(transactions),
		TotalDebts:        model.NewMoney(owed),
	}
}
