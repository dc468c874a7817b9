// Package dto defines the wire-facing request shapes. Monetary values travel
// as decimal-formatted strings and are normalized by the pos package before
// they reach a repository; responses serialize the models directly
// (model.Money marshals as a quoted 2-decimal string).
package dto

// CreateProductRequest mirrors the insert schema: price and stock arrive as
// numeric strings and must be non-negative.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    string  `json:"price" validate:"required"`
	Stock    string  `json:"stock" validate:"required"`
	ImageURL *string `json:"imageUrl" validate:"omitempty"`
}

// UpdateProductRequest is a partial update: only non-nil fields are applied.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    *string `json:"price"`
	Stock    *string `json:"stock"`
	ImageURL *string `json:"imageUrl"`
}
