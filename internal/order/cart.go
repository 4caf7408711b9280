package order

import (
	"fmt"
	"time"

	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Cart accumulates line items for one session. Not safe for concurrent
// use; the owning session serializes access.
type Cart struct {
	items   []LineItem
	counter int
	now     func() time.Time
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{now: time.Now}
}

// Add validates the item, assigns its id and timestamp, and appends it.
// The stored copy is returned.
func (c *Cart) Add(item LineItem) (LineItem, error) {
	if item.Name == "" {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "line item name is required")
	}
	if item.Customizations == nil {
		item.Customizations = []string{}
	}
	c.counter++
	item.ID = fmt.Sprintf("order_%d_%d", c.now().UnixMilli(), c.counter)
	item.AddedAt = c.now()
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the item with the given id and reports whether it existed.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a defensive copy of the cart contents.
func (c *Cart) Items() []LineItem {
	return append([]LineItem(nil), c.items...)
}

// Total sums the item prices. Decimal arithmetic keeps cents exact.
func (c *Cart) Total() float64 {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	value, _ := total.Float64()
	return value
}

// Clear empties the cart, resets the id counter, and returns how many
// items were dropped.
func (c *Cart) Clear() int {
	cleared := len(c.items)
	c.items = nil
	c.counter = 0
	return cleared
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len returns the item count.
func (c *Cart) Len() int {
	return len(c.items)
}
