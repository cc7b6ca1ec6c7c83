package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuildsProviderFromEveryCategory(t *testing.T) {
	var mu sync.Mutex
	var requested []model.Category

	loader := &mockLoader{
		loadFunc: func(ctx context.Context, category model.Category) ([]model.Product, error) {
			mu.Lock()
			requested = append(requested, category)
			mu.Unlock()
			return []model.Product{{ID: 1, Name: string(category), Category: category}}, nil
		},
	}

	provider, err := Load(context.Background(), loader, zerolog.Nop())

	require.NoError(t, err)
	assert.ElementsMatch(t, model.Categories, requested)

	all := provider.Products(model.CategoryAll)
	require.Len(t, all, 2)
	assert.Equal(t, "drinks", all[0].Name)
	assert.Equal(t, "food", all[1].Name)
}

func TestLoad_FailsWhenAnyCategoryFails(t *testing.T) {
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, category model.Category) ([]model.Product, error) {
			if category == model.CategoryFood {
				return nil, errors.New("disk on fire")
			}
			return []model.Product{}, nil
		},
	}

	provider, err := Load(context.Background(), loader, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "failed to load food catalog")
}

func TestLoad_Builtin(t *testing.T) {
	provider, err := Load(context.Background(), BuiltinLoader{}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Builtin().Products(model.CategoryAll), provider.Products(model.CategoryAll))
}
