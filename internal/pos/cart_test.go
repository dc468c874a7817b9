package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

func product(id int, name, price string) model.Product {
	return model.Product{ID: id, Name: name, Price: model.NewMoney(decimal.RequireFromString(price)), Stock: 10}
}

func TestCartAddMergesSameProduct(t *testing.T) {
	cart := NewCart()
	p := product(1, "Coffee", "8.75")

	cart.Add(p)
	cart.Add(p)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCartSetQuantityRejectsInvalidInput(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", "8.75"))
	cart.SetQuantity(1, "4")
	require.Equal(t, 4, cart.Items()[0].Quantity)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		cart.SetQuantity(1, bad)
		assert.Equal(t, 4, cart.Items()[0].Quantity, "quantity must survive input %q", bad)
	}
}

func TestCartSetQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", "8.75"))
	cart.SetQuantity(99, "5")
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", "8.75"))
	cart.Add(product(2, "Soap", "19.99"))
	cart.SetQuantity(1, "7")

	cart.Remove(1)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Product.ID)
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "A", "10.00"))
	cart.Add(product(1, "A", "10.00"))
	cart.Add(product(2, "B", "5.00"))

	assert.Equal(t, "25.00", FormatAmount(cart.Total()))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(NewCart().Total()))
}

func TestCartReset(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "A", "10.00"))
	cart.Reset()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, "0.00", FormatAmount(cart.Total()))
}

func TestAssembleTotalsMatchItems(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "A", "10.00"))
	cart.SetQuantity(1, "2")
	cart.Add(product(2, "B", "5.00"))

	header, items := Assemble(cart, 1, nil)

	require.Len(t, items, 2)
	assert.Equal(t, "25.00", FormatAmount(header.Total))
	assert.True(t, header.Total.Equal(ItemsTotal(items)), "header total must equal sum of items")
	assert.Equal(t, 1, header.IsPaid)
	assert.Nil(t, header.CustomerID)
	assert.False(t, header.Date.IsZero())
}

func TestAssembleSnapshotsUnitPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(product(7, "Soap", "19.99"))
	cart.SetQuantity(7, "3")

	_, items := Assemble(cart, 1, nil)

	require.Len(t, items, 1)
	// Unit price, not line total; transactionId left for the store to assign.
	assert.Equal(t, "19.99", FormatAmount(items[0].Price))
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 0, items[0].TransactionID)
}

func TestAssembleTotalInvariantHolds(t *testing.T) {
	// The invariant must hold for any cart shape, including awkward prices.
	prices := []string{"0.01", "1.33", "9.99", "123.45", "0.10"}
	cart := NewCart()
	for i, p := range prices {
		cart.Add(product(i+1, "P", p))
		cart.SetQuantity(i+1, "3")
	}

	header, items := Assemble(cart, 1, nil)
	assert.True(t, header.Total.Equal(ItemsTotal(items)))
}

func TestAssembleEmptyCart(t *testing.T) {
	header, items := Assemble(NewCart(), 1, nil)
	assert.Empty(t, items)
	assert.Equal(t, "0.00", FormatAmount(header.Total))
}
