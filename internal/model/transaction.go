package model

import "time"

// Transaction is a finalized sale. Total equals the sum of its items'
// price × quantity at creation time — the assembler guarantees that equality;
// the store never recomputes it. Transactions and their items are immutable
// once created: corrections are new transactions.
type Transaction struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Total      Money     `gorm:"type:decimal(10,2);not null" json:"total"`
	Date       time.Time `gorm:"not null" json:"date"`
	CustomerID *int      `gorm:"column:customer_id" json:"customerId"`
	// IsPaid is a boolean-as-integer flag (0/1), kept integral for wire
	// compatibility with the historical schema.
	IsPaid int `gorm:"column:is_paid;not null" json:"isPaid"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// TransactionItem is one line of a sale. Price is the unit price of the
// product snapshotted at the time of sale, intentionally decoupled from the
// product's current price so history stays accurate after price changes or
// product deletion.
type TransactionItem struct {
	ID            int   `gorm:"primaryKey" json:"id"`
	TransactionID int   `gorm:"column:transaction_id;not null;index" json:"transactionId"`
	ProductID     int   `gorm:"column:product_id;not null" json:"productId"`
	Quantity      int   `gorm:"not null" json:"quantity"`
	Price         Money `gorm:"type:decimal(10,2);not null" json:"price"`
}
