package pos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

// Assemble converts the cart into a transaction header plus line items, ready
// for atomic persistence. The header total always equals the sum of
// item price × quantity across the produced items, to 2 decimal places: both
// sides derive from the same decimal arithmetic.
//
// Each item carries the product's unit price snapshotted at assembly time —
// not multiplied by quantity — so a later product price change (or deletion)
// never rewrites history. The date is stamped with the current time; the
// store may normalize its representation but not its meaning. TransactionID
// on the items is left zero: the persistence layer assigns it, never the
// caller.
func Assemble(cart *Cart, isPaid int, customerID *int) (model.Transaction, []model.TransactionItem) {
	items := make([]model.TransactionItem, 0, cart.Len())
	for _, entry := range cart.Items() {
		items = append(items, model.TransactionItem{
			ProductID: entry.Product.ID,
			Quantity:  entry.Quantity,
			Price:     model.NewMoney(entry.Product.Price.Round(2)),
		})
	}

	header := model.Transaction{
		Total:      cart.Total(),
		Date:       time.Now().UTC(),
		CustomerID: customerID,
		IsPaid:     isPaid,
	}
	return header, items
}

// ItemsTotal sums price × quantity over line items. It is the same
// computation Assemble bakes into the header total, exposed for callers that
// need to re-derive a total from items alone.
func ItemsTotal(items []model.TransactionItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}
