package service

import (
	"context"
	"errors"
	"testing"

	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() catalog.Provider {
	return catalog.New(
		[]model.Product{
			{ID: 2, Name: "Capuchino Grande", Category: model.CategoryDrinks},
			{ID: 5, Name: "Americano"},
		},
		[]model.Product{
			{ID: 5, Name: "Croissant", Category: model.CategoryFood},
			{ID: 6, Name: "Muffin", Category: model.CategoryFood},
		},
	)
}

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestProductService_GetProducts(t *testing.T) {
	svc := NewProductService(testCatalog(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "all is drinks then food", category: "all", expected: []string{"Capuchino Grande", "Americano", "Croissant", "Muffin"}},
		{name: "empty defaults to all", category: "", expected: []string{"Capuchino Grande", "Americano", "Croissant", "Muffin"}},
		{name: "drinks", category: "drinks", expected: []string{"Capuchino Grande", "Americano"}},
		{name: "food", category: "food", expected: []string{"Croissant", "Muffin"}},
		{name: "unknown category is empty", category: "desserts", expected: []string{}},
		{name: "section keys are not categories", category: "bebidas", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(svc.GetProducts(ctx, tt.category)))
		})
	}
}

func TestProductService_GetProductByID(t *testing.T) {
	svc := NewProductService(testCatalog(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		expected    string
		expectError bool
	}{
		{name: "drink by id", id: "2", expected: "Capuchino Grande"},
		{name: "duplicate id returns the drink first", id: "5", expected: "Americano"},
		{name: "food only id", id: "6", expected: "Muffin"},
		{name: "numeric prefix", id: "6abc", expected: "Muffin"},
		{name: "leading whitespace", id: "  2", expected: "Capuchino Grande"},
		{name: "not a number", id: "abc", expectError: true},
		{name: "empty", id: "", expectError: true},
		{name: "unknown id", id: "42", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := svc.GetProductByID(ctx, tt.id)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrProductNotFound))
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, product)
			assert.Equal(t, tt.expected, product.Name)
		})
	}
}
