package catalog

import (
	"context"
	"fmt"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Load reads every category through loader concurrently and freezes the
// result into a Provider. Any category failing to load fails the whole load.
func Load(ctx context.Context, loader Loader, logger zerolog.Logger) (Provider, error) {
	logger = logger.With().Str("component", "catalog").Logger()

	results := make([][]model.Product, len(model.Categories))
	g, gctx := errgroup.WithContext(ctx)

	for i, category := range model.Categories {
		g.Go(func() error {
			products, err := loader.Load(gctx, category)
			if err != nil {
				return fmt.Errorf("failed to load %s catalog: %w", category, err)
			}
			results[i] = products
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("catalog load failed")
		return nil, err
	}

	for i, category := range model.Categories {
		logger.Info().
			Str("category", string(category)).
			Int("size", len(results[i])).
			Msg("catalog category loaded")
	}

	return New(results[0], results[1]), nil
}
