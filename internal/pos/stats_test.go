package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

func TestSummarize(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 1, Total: model.NewMoney(decimal.RequireFromString("25.00"))},
		{ID: 2, Total: model.NewMoney(decimal.RequireFromString("10.50"))},
	}
	expenses := []model.Expense{
		{ID: 1, Amount: model.NewMoney(decimal.RequireFromString("4.25"))},
	}
	debts := []model.Debt{
		{ID: 1, Amount: model.NewMoney(decimal.RequireFromString("7.00")), IsPaid: 0},
		{ID: 2, Amount: model.NewMoney(decimal.RequireFromString("3.00")), IsPaid: 1},
	}

	s := Summarize(transactions, expenses, debts)

	assert.Equal(t, "35.50", FormatAmount(s.TotalSales))
	assert.Equal(t, "4.25", FormatAmount(s.TotalExpenses))
	// Debt sum includes paid debts: identical to the dashboard's plain sum.
	assert.Equal(t, "10.00", FormatAmount(s.TotalDebts))
	assert.Equal(t, 2, s.TotalTransactions)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	assert.Equal(t, "0.00", FormatAmount(s.TotalSales))
	assert.Equal(t, "0.00", FormatAmount(s.TotalExpenses))
	assert.Equal(t, "0.00", FormatAmount(s.TotalDebts))
	assert.Equal(t, 0, s.TotalTransactions)
}
