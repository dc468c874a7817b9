package service

import (
	"context"

	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

// StatsService reproduces the dashboard aggregation: plain sums over the full
// collections, identical to what a client computes from the list endpoints.
type StatsService interface {
	Summary(ctx context.Context) (*pos.Stats, error)
}

type statsService struct {
	transactions repository.TransactionRepository
	expenses     repository.ExpenseRepository
	debts        repository.DebtRepository
	currency     string
}

func NewStatsService(
	transactions repository.TransactionRepository,
	expenses repository.ExpenseRepository,
	debts repository.DebtRepository,
	currency string,
) StatsService {
	return &statsService{
		transactions: transactions,
		expenses:     expenses,
		debts:        debts,
		currency:     currency,
	}
}

func (s *statsService) Summary(ctx context.Context) (*pos.Stats, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	debts, err := s.debts.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	stats := pos.Summarize(transactions, expenses, debts)
	stats.Currency = s.currency
	return &stats, nil
}
