package service

import (
	"context"
	"time"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

type ExpenseService interface {
	List(ctx context.Context) ([]model.Expense, error)
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*model.Expense, error)
}

type expenseService struct{ repo repository.ExpenseRepository }

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) List(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return expenses, nil
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*model.Expense, error) {
	amount, err := pos.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	e := &model.Expense{Amount: amount, Description: req.Description, Date: date}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, storeErr(err)
	}
	return e, nil
}
