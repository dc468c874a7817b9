package pos

import (
	"github.com/shopspring/decimal"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// CartItem pairs a product with the quantity being purchased.
type CartItem struct {
	Product  model.Product
	Quantity int
}

// Cart accumulates (product, quantity) pairs for one open sale. It lives only
// for the duration of the sale being built: it is never persisted and is
// reset after a successful submission. Iteration order is insertion order.
//
// Cart deliberately does not check quantities against product stock; stock is
// not decremented by sales either.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add inserts the product with quantity 1, or increments the quantity by 1
// when the product is already in the cart.
func (c *Cart) Add(p model.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove drops the product's entry entirely, regardless of quantity.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the product's quantity with the parsed value. Invalid
// input (non-integer, or below 1) is silently rejected and the prior quantity
// retained — the one sanctioned silent no-op in the system.
func (c *Cart) SetQuantity(productID int, value string) {
	qty, ok := ParseQuantity(value)
	if !ok {
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of distinct products in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Total is the sum of unit price × quantity over all entries, in fixed-point
// decimal, rounded to 2 places.
func (c *Cart) Total() model.Money {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return model.NewMoney(total.Round(2))
}

// Reset empties the cart after a successful submission.
func (c *Cart) Reset() {
	c.items = nil
}
