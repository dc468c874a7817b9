package service

import (
	"context"
	"errors"
	"time"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

type DebtService interface {
	List(ctx context.Context) ([]model.Debt, error)
	Create(ctx context.Context, req dto.CreateDebtRequest) (*model.Debt, error)
	Update(ctx context.Context, id int, req dto.UpdateDebtRequest) (*model.Debt, error)
}

type debtService struct {
	repo      repository.DebtRepository
	customers repository.CustomerRepository
}

func NewDebtService(repo repository.DebtRepository, customers repository.CustomerRepository) DebtService {
	return &debtService{repo: repo, customers: customers}
}

func (s *debtService) List(ctx context.Context) ([]model.Debt, error) {
	debts, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return debts, nil
}

func (s *debtService) Create(ctx context.Context, req dto.CreateDebtRequest) (*model.Debt, error) {
	amount, err := pos.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("customer does not exist")
		}
		return nil, storeErr(err)
	}

	date := time.Now().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	d := &model.Debt{
		CustomerID:  req.CustomerID,
		Amount:      amount,
		Date:        date,
		Description: req.Description,
		IsPaid:      *req.IsPaid,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, storeErr(err)
	}
	return d, nil
}

// Update applies a partial update — typically the unpaid→paid flip. Fields
// absent from the request keep their stored values; nothing stops a paid
// debt being flipped back, matching the observed contract.
func (s *debtService) Update(ctx context.Context, id int, req dto.UpdateDebtRequest) (*model.Debt, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	if req.Amount != nil {
		amount, err := pos.ParseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		d.Amount = amount
	}
	if req.Description != nil {
		d.Description = req.Description
	}
	if req.IsPaid != nil {
		d.IsPaid = *req.IsPaid
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, storeErr(err)
	}
	return d, nil
}
