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

// TransactionService validates assembled sales and hands them to the atomic
// persistence operation. Transactions are immutable after creation: the
// surface is create, list, and get.
type TransactionService interface {
	List(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id int) (*model.Transaction, error)
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*model.Transaction, error)
}

type transactionService struct {
	repo repository.TransactionRepository
	// allowUnpaid gates isPaid=0 submissions. Off by default: debts, not
	// unpaid transactions, are the mechanism for money owed.
	allowUnpaid bool
}

func NewTransactionService(repo repository.TransactionRepository, allowUnpaid bool) TransactionService {
	return &transactionService{repo: repo, allowUnpaid: allowUnpaid}
}

func (s *transactionService) List(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return transactions, nil
}

func (s *transactionService) Get(ctx context.Context, id int) (*model.Transaction, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}
	return t, nil
}

// Create normalizes the submitted header and items and persists them as one
// unit. The total is taken from the request as assembled by the client — the
// assembler owns the total-equals-sum-of-items invariant, and the store never
// recomputes it. Item transactionIds are assigned by the persistence layer
// regardless of what the caller sent.
func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*model.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("a transaction requires at least one item")
	}
	if !s.allowUnpaid && *req.IsPaid == 0 {
		return nil, errors.New("unpaid transactions are disabled; record a debt instead")
	}

	total, err := pos.ParseAmount(req.Total)
	if err != nil {
		return nil, err
	}

	items := make([]model.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := pos.ParseAmount(it.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, model.TransactionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
		})
	}

	date := time.Now().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	t := &model.Transaction{
		Total:      total,
		Date:       date,
		CustomerID: req.CustomerID,
		IsPaid:     *req.IsPaid,
	}
	if err := s.repo.CreateWithItems(ctx, t, items); err != nil {
		return nil, storeErr(err)
	}
	return t, nil
}
