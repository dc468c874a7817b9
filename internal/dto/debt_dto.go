package dto

import "time"

type CreateDebtRequest struct {
	CustomerID  int        `json:"customerId" validate:"required,min=1"`
	Amount      string     `json:"amount" validate:"required"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	IsPaid      *int       `json:"isPaid" validate:"required,min=0,max=1"`
}

// UpdateDebtRequest is a partial update — in practice the unpaid→paid flip.
// Untouched fields (amount, customerId, date) keep their stored values.
type UpdateDebtRequest struct {
	Amount      *string `json:"amount"`
	Description *string `json:"description"`
	IsPaid      *int    `json:"isPaid" validate:"omitempty,min=0,max=1"`
}
