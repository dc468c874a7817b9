package dto

import "time"

// CreateTransactionItemRequest is one line of an incoming sale. The price is
// the unit-price snapshot taken by the client-side assembler; any
// transactionId the caller might send is ignored and overwritten by the
// persistence layer.
type CreateTransactionItemRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Price     string `json:"price" validate:"required"`
}

// CreateTransactionRequest carries an assembled sale. An empty items array is
// rejected by validation — a transaction without line items is not
// representable.
type CreateTransactionRequest struct {
	Total      string                         `json:"total" validate:"required"`
	Date       *time.Time                     `json:"date"`
	CustomerID *int                           `json:"customerId"`
	IsPaid     *int                           `json:"isPaid" validate:"required,min=0,max=1"`
	Items      []CreateTransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}
