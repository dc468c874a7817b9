package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

type TransactionRepository interface {
	List(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id int) (*model.Transaction, error)
	// CreateWithItems stores the header and all items as one atomic unit.
	// The header is inserted first so its id exists; every item then gets
	// transactionId set to that id — never the caller's value. If any insert
	// fails the whole operation fails and nothing is left behind.
	CreateWithItems(ctx context.Context, t *model.Transaction, items []model.TransactionItem) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.WithContext(ctx).Preload("Items").Order("id ASC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(ctx context.Context, id int) (*model.Transaction, error) {
	var t model.Transaction
	if err := r.db.WithContext(ctx).Preload("Items").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) CreateWithItems(ctx context.Context, t *model.Transaction, items []model.TransactionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].TransactionID = t.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		t.Items = items
		return nil
	})
}
