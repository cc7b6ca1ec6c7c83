package service

import (
	"context"

	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	catalog catalog.Provider
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(provider catalog.Provider, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: provider,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// GetProducts returns the products of a category. An empty category means all.
func (s *productService) GetProducts(_ context.Context, category string) []model.Product {
	if category == "" {
		category = string(model.CategoryAll)
	}

	products := s.catalog.Products(model.Category(category))

	s.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products")

	return products
}

// GetProductByID retrieves a single product by id.
func (s *productService) GetProductByID(_ context.Context, id string) (*model.Product, error) {
	product, ok := s.catalog.ProductByID(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}
