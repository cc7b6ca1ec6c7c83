package catalog

import (
	"errors"
	"fmt"
	"io"

	"crazy-coffee/internal/model"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of one category file.
type Document struct {
	Category model.Category  `yaml:"category"`
	Products []model.Product `yaml:"products"`
}

// DocumentName returns the file name (or object key suffix) holding a category.
func DocumentName(category model.Category) string {
	return string(category) + ".yaml"
}

// decodeDocument parses a category document. An empty document is an empty
// category; a document declaring another category is rejected.
func decodeDocument(r io.Reader, category model.Category) ([]model.Product, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("failed to decode %s document: %w", category, err)
	}

	if doc.Category != "" && doc.Category != category {
		return nil, fmt.Errorf("document declares category %q, expected %q", doc.Category, category)
	}

	if doc.Products == nil {
		return []model.Product{}, nil
	}
	return doc.Products, nil
}

// EncodeDocument writes products as a category document.
func EncodeDocument(w io.Writer, category model.Category, products []model.Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Category: category, Products: products}); err != nil {
		return fmt.Errorf("failed to encode %s document: %w", category, err)
	}
	return enc.Close()
}
