package dto

import "time"

type CreateExpenseRequest struct {
	Amount      string     `json:"amount" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Date        *time.Time `json:"date"`
}
