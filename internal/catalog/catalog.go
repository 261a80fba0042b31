// Package catalog holds the static product data for the storefront.
// The catalog is compiled in, loaded once, and never mutated; every
// accessor hands out copies so callers cannot reach the backing array.
package catalog

import "strings"

// Product is a single catalog entry. Immutable once loaded.
type Product struct {
	ID          string
	Title       string
	Author      string
	Price       float64
	CoverURL    string
	Description string
	Category    string
	Rating      float64
	Bestseller  bool
}

// Products returns the full catalog in its configured order.
func Products() []Product {
	out := make([]Product, len(books))
	copy(out, books)
	return out
}

// Categories returns the fixed set of browse categories.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Featured returns the bestseller subset, relative order preserved.
func Featured() []Product {
	return featured(books)
}

func featured(list []Product) []Product {
	var out []Product
	for _, b := range list {
		if b.Bestseller {
			out = append(out, b)
		}
	}
	return out
}

// Find looks a product up by ID.
func Find(id string) (Product, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return Product{}, false
}

// Search returns products whose title, author, or category contains the
// query, case-insensitively. An empty query matches nothing.
func Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Product
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}
