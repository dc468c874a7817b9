// Package repository defines the data access contracts and their GORM
// implementations. Services depend on the interfaces, not on GORM, so the
// in-memory backend (repository/memory) and test stubs can stand in.
package repository

import (
	"errors"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// ErrNotFound is returned when an update/delete/get target does not exist.
// Handlers map it to a dedicated 404 response.
var ErrNotFound = errors.New("record not found")

// Registry bundles one repository per entity. main wires either the GORM
// or the in-memory implementations into it.
type Registry struct {
	Products     ProductRepository
	Transactions TransactionRepository
	Customers    CustomerRepository
	Debts        DebtRepository
	Expenses     ExpenseRepository
	Users        UserRepository
}

// AllModels lists every persisted model for schema migration.
func AllModels() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.Debt{},
		&model.Expense{},
	}
}
