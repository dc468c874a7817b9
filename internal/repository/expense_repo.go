package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// ExpenseRepository is create-and-list only: expenses have no update or
// delete operation anywhere in the surface.
type ExpenseRepository interface {
	List(ctx context.Context) ([]model.Expense, error)
	Create(ctx context.Context, e *model.Expense) error
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Order("id ASC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}
