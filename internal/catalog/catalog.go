// Package catalog loads and holds the product catalog. Loading never
// fails outward: any fetch or parse problem falls back to the built-in
// default product list.
package catalog

import (
	"sync"

	"github.com/chatard/storefront/internal/domain"
)

// Catalog is the current product list. It is replaced wholesale on
// refresh and safe for concurrent readers.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewCatalog(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns a copy of the current product list.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product(nil), c.products...)
}

// Find resolves a product by id.
func (c *Catalog) Find(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Featured returns active featured products that are in stock.
func (c *Catalog) Featured() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		if p.Featured && p.Stock > 0 && p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Replace swaps in a new product list.
func (c *Catalog) Replace(products []domain.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}
