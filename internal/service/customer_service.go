package service

import (
	"context"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

type CustomerService interface {
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error)
}

type customerService struct{ repo repository.CustomerRepository }

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return customers, nil
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error) {
	c := &model.Customer{Name: req.Name, Contact: req.Contact}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}
