package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

type DebtRepository interface {
	List(ctx context.Context) ([]model.Debt, error)
	FindByID(ctx context.Context, id int) (*model.Debt, error)
	Create(ctx context.Context, d *model.Debt) error
	Update(ctx context.Context, d *model.Debt) error
}

type debtRepo struct{ db *gorm.DB }

func NewDebtRepository(db *gorm.DB) DebtRepository { return &debtRepo{db: db} }

func (r *debtRepo) List(ctx context.Context) ([]model.Debt, error) {
	var debts []model.Debt
	err := r.db.WithContext(ctx).Order("id ASC").Find(&debts).Error
	return debts, err
}

func (r *debtRepo) FindByID(ctx context.Context, id int) (*model.Debt, error) {
	var d model.Debt
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *debtRepo) Create(ctx context.Context, d *model.Debt) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *debtRepo) Update(ctx context.Context, d *model.Debt) error {
	return r.db.WithContext(ctx).Save(d).Error
}
