package model

import "time"

// Expense is create-only: recorded once, never updated or deleted.
type Expense struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Amount      Money     `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
}
