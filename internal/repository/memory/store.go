// Package memory provides an in-memory implementation of every repository
// interface. It backs STORAGE_BACKEND=memory (demos, development without
// Postgres) and the handler tests. All backends honor the same contract —
// in particular, transaction+items creation is all-or-nothing here too.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

// Store holds every entity map behind one RWMutex. Per-request isolation is
// the only concurrency guarantee, matching the relational backend's default
// isolation posture.
type Store struct {
	mu sync.RWMutex

	users            map[int]model.User
	products         map[int]model.Product
	customers        map[int]model.Customer
	transactions     map[int]model.Transaction
	transactionItems map[int]model.TransactionItem
	debts            map[int]model.Debt
	expenses         map[int]model.Expense

	seq map[string]int
}

func NewStore() *Store {
	return &Store{
		users:            make(map[int]model.User),
		products:         make(map[int]model.Product),
		customers:        make(map[int]model.Customer),
		transactions:     make(map[int]model.Transaction),
		transactionItems: make(map[int]model.TransactionItem),
		debts:            make(map[int]model.Debt),
		expenses:         make(map[int]model.Expense),
		seq:              make(map[string]int),
	}
}

// NewRegistry returns a repository.Registry fully backed by one Store.
func NewRegistry() (*Store, repository.Registry) {
	s := NewStore()
	return s, repository.Registry{
		Products:     &productRepo{s},
		Transactions: &transactionRepo{s},
		Customers:    &customerRepo{s},
		Debts:        &debtRepo{s},
		Expenses:     &expenseRepo{s},
		Users:        &userRepo{s},
	}
}

// nextID must be called with s.mu held.
func (s *Store) nextID(entity string) int {
	s.seq[entity]++
	return s.seq[entity]
}

// ── Products ─────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) List(_ context.Context) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Product, 0, len(r.s.products))
	for id := 1; id <= r.s.seq["products"]; id++ {
		if p, ok := r.s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *productRepo) Create(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextID("products")
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) Update(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Idempotent; historical transaction items keep their snapshot.
	delete(r.s.products, id)
	return nil
}

// ── Transactions ─────────────────────────────────────────────────────────────

type transactionRepo struct{ s *Store }

func (r *transactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Transaction, 0, len(r.s.transactions))
	for id := 1; id <= r.s.seq["transactions"]; id++ {
		if t, ok := r.s.transactions[id]; ok {
			t.Items = r.itemsForLocked(id)
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *transactionRepo) FindByID(_ context.Context, id int) (*model.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.Items = r.itemsForLocked(id)
	return &t, nil
}

// itemsForLocked must be called with s.mu held (read or write).
func (r *transactionRepo) itemsForLocked(transactionID int) []model.TransactionItem {
	var items []model.TransactionItem
	for id := 1; id <= r.s.seq["transaction_items"]; id++ {
		if it, ok := r.s.transactionItems[id]; ok && it.TransactionID == transactionID {
			items = append(items, it)
		}
	}
	return items
}

func (r *transactionRepo) CreateWithItems(_ context.Context, t *model.Transaction, items []model.TransactionItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	t.ID = r.s.nextID("transactions")
	r.s.transactions[t.ID] = *t

	// Single lock scope makes the whole insert atomic: either every row
	// lands or (on the relational backend) the tx rolls back.
	for i := range items {
		items[i].ID = r.s.nextID("transaction_items")
		items[i].TransactionID = t.ID
		r.s.transactionItems[items[i].ID] = items[i]
	}
	t.Items = items
	return nil
}

// ── Customers ────────────────────────────────────────────────────────────────

type customerRepo struct{ s *Store }

func (r *customerRepo) List(_ context.Context) ([]model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Customer, 0, len(r.s.customers))
	for id := 1; id <= r.s.seq["customers"]; id++ {
		if c, ok := r.s.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *customerRepo) FindByID(_ context.Context, id int) (*model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *customerRepo) Create(_ context.Context, c *model.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID("customers")
	r.s.customers[c.ID] = *c
	return nil
}

// ── Debts ────────────────────────────────────────────────────────────────────

type debtRepo struct{ s *Store }

func (r *debtRepo) List(_ context.Context) ([]model.Debt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Debt, 0, len(r.s.debts))
	for id := 1; id <= r.s.seq["debts"]; id++ {
		if d, ok := r.s.debts[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *debtRepo) FindByID(_ context.Context, id int) (*model.Debt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.debts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *debtRepo) Create(_ context.Context, d *model.Debt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d.Date.IsZero() {
		d.Date = time.Now().UTC()
	}
	d.ID = r.s.nextID("debts")
	r.s.debts[d.ID] = *d
	return nil
}

func (r *debtRepo) Update(_ context.Context, d *model.Debt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.debts[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.debts[d.ID] = *d
	return nil
}

// ── Expenses ─────────────────────────────────────────────────────────────────

type expenseRepo struct{ s *Store }

func (r *expenseRepo) List(_ context.Context) ([]model.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Expense, 0, len(r.s.expenses))
	for id := 1; id <= r.s.seq["expenses"]; id++ {
		if e, ok := r.s.expenses[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *expenseRepo) Create(_ context.Context, e *model.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	e.ID = r.s.nextID("expenses")
	r.s.expenses[e.ID] = *e
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = r.s.nextID("users")
	r.s.users[u.ID] = *u
	return nil
}
