package dto

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Contact *string `json:"contact"`
}
