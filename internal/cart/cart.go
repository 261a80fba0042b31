// Package cart implements the in-memory shopping cart. A cart holds at
// most one entry per product; repeat adds bump the quantity instead of
// appending a duplicate. State is transient and never persisted.
package cart

import "waterstones/internal/catalog"

// Entry is one cart line: a product plus a positive quantity.
type Entry struct {
	Product  catalog.Product
	Quantity int
}

// Cart is an ordered collection of entries. Entries keep the order of
// their first insertion. The zero value is an empty, usable cart.
type Cart struct {
	entries []Entry
}

// Add inserts p with quantity 1, or increments the quantity when an
// entry for the same product ID already exists. Add never reorders.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.entries {
		if c.entries[i].Product.ID == p.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, Entry{Product: p, Quantity: 1})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
}

// Entries returns a copy of the cart lines in first-insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Distinct returns the number of distinct products in the cart.
func (c *Cart) Distinct() int {
	return len(c.entries)
}

// TotalQuantity returns the sum of all entry quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// Subtotal returns the price of the cart contents.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Product.Price * float64(e.Quantity)
	}
	return total
}
