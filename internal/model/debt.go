package model

import "time"

// Debt is money owed by a customer, tracked independently of transactions.
// The only lifecycle beyond creation is the unpaid→paid flag flip via
// partial update.
type Debt struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	CustomerID  int       `gorm:"column:customer_id;not null" json:"customerId"`
	Amount      Money     `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description *string   `json:"description"`
	IsPaid      int       `gorm:"column:is_paid;not null" json:"isPaid"`
}
