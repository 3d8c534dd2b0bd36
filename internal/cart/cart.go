// Package cart holds a buyer's pending selection before checkout. It is
// advisory only: the server re-reads price and stock when the order is
// placed, so a stale price snapshot here never leaks into a committed
// total.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

type Entry struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart is an ordered list of entries, one per product. Safe for
// concurrent use.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Cart { return &Cart{} }

// Add appends a line for the product, or bumps quantity if it is
// already in the cart.
func (c *Cart) Add(productID int64, name string, price decimal.Decimal, qty int) {
	if qty <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries[i].Quantity += qty
			return
		}
	}
	c.entries = append(c.entries, Entry{ProductID: productID, Name: name, Price: price, Quantity: qty})
}

func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// SetQuantity fixes a line's quantity; zero or negative removes the line.
func (c *Cart) SetQuantity(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Entries returns a copy of the cart lines in insertion order.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Total is the running sum of price x quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}
