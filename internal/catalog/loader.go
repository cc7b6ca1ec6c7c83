package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for category documents in a local directory.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader rooted at dir.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads <dir>/<category>.yaml.
func (l *fileLoader) Load(ctx context.Context, category model.Category) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath := filepath.Join(l.dir, DocumentName(category))
	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeDocument(file, category)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog file")
		return nil, fmt.Errorf("error reading catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded successfully")

	return products, nil
}

// WriteDir exports every category served by loader into dir, one document
// per category. Existing files are overwritten.
func WriteDir(ctx context.Context, loader Loader, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	written := make([]string, 0, len(model.Categories))
	for _, category := range model.Categories {
		products, err := loader.Load(ctx, category)
		if err != nil {
			return written, fmt.Errorf("failed to load %s: %w", category, err)
		}

		path := filepath.Join(dir, DocumentName(category))
		if err := writeDocumentFile(path, category, products); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeDocumentFile(path string, category model.Category, products []model.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodeDocument(file, category, products); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
