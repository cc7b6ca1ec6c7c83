package catalog

import (
	"context"

	"crazy-coffee/internal/model"
)

// Provider exposes the product catalog. Lookups never fail: unknown
// categories yield an empty slice and unknown ids report false.
type Provider interface {
	// Products returns the products of a category, or every product for
	// model.CategoryAll (drinks first, then food).
	Products(category model.Category) []model.Product

	// ProductByID returns the first product, in Products(CategoryAll) order,
	// whose id equals the integer prefix of id.
	ProductByID(id string) (model.Product, bool)
}

// Loader defines the interface for loading one category document.
type Loader interface {
	// Load reads the document for the given category.
	Load(ctx context.Context, category model.Category) ([]model.Product, error)
}

// staticCatalog implements Provider over immutable slices.
type staticCatalog struct {
	byCategory map[model.Category][]model.Product
	all        []model.Product
}

// New builds a Provider from per-category product lists. The slices are
// copied; callers may reuse them.
func New(drinks, food []model.Product) Provider {
	c := &staticCatalog{
		byCategory: map[model.Category][]model.Product{
			model.CategoryDrinks: clone(drinks),
			model.CategoryFood:   clone(food),
		},
	}
	c.all = make([]model.Product, 0, len(drinks)+len(food))
	for _, category := range model.Categories {
		c.all = append(c.all, c.byCategory[category]...)
	}
	return c
}

// Products returns a copy of the products in the requested category.
func (c *staticCatalog) Products(category model.Category) []model.Product {
	if category == model.CategoryAll {
		return clone(c.all)
	}
	return clone(c.byCategory[category])
}

// ProductByID returns the first product matching the coerced id.
func (c *staticCatalog) ProductByID(id string) (model.Product, bool) {
	n, ok := ParseID(id)
	if !ok {
		return model.Product{}, false
	}
	for _, p := range c.all {
		if p.ID == n {
			return p, true
		}
	}
	return model.Product{}, false
}

func clone(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}
