package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

// stubTransactionRepo is an in-memory TransactionRepository that can be
// forced to fail, mimicking a store-level insert failure.
type stubTransactionRepo struct {
	transactions []model.Transaction
	failCreate   bool
	nextID       int
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	return r.transactions, nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id int) (*model.Transaction, error) {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			return &r.transactions[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubTransactionRepo) CreateWithItems(_ context.Context, t *model.Transaction, items []model.TransactionItem) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.nextID++
	t.ID = r.nextID
	for i := range items {
		items[i].TransactionID = t.ID
	}
	t.Items = items
	r.transactions = append(r.transactions, *t)
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

func intPtr(n int) *int { return &n }

func validCreateReq() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Total:  "25.00",
		IsPaid: intPtr(1),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: 1, Quantity: 2, Price: "10.00"},
			{ProductID: 2, Quantity: 1, Price: "5.00"},
		},
	}
}

func TestTransactionCreate(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewTransactionService(repo, false)

	created, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "25.00", pos.FormatAmount(created.Total))
	assert.Equal(t, 1, created.IsPaid)
	assert.False(t, created.Date.IsZero())
	require.Len(t, created.Items, 2)
	for _, it := range created.Items {
		assert.Equal(t, created.ID, it.TransactionID)
	}
}

func TestTransactionCreateRejectsEmptyItems(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, false)

	req := validCreateReq()
	req.Items = nil
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestTransactionCreateRejectsBadPrice(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, false)

	req := validCreateReq()
	req.Items[0].Price = "ten"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validCreateReq()
	req.Total = "-5.00"
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestTransactionCreateUnpaidPolicy(t *testing.T) {
	req := validCreateReq()
	req.IsPaid = intPtr(0)

	// Default policy: unpaid sales are debts, not transactions.
	svc := NewTransactionService(&stubTransactionRepo{}, false)
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	// Explicitly enabled, unpaid transactions are representable.
	svc = NewTransactionService(&stubTransactionRepo{}, true)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, created.IsPaid)
}

func TestTransactionCreateStoreFailure(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{failCreate: true}, false)

	_, err := svc.Create(context.Background(), validCreateReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
}

func TestTransactionCreateKeepsProvidedDate(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewTransactionService(repo, false)

	sold := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	req := validCreateReq()
	req.Date = &sold

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(sold))
}

func TestTransactionGetNotFound(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, false)
	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
