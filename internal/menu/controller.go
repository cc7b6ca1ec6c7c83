package menu

import (
	"context"
	"strings"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
)

// ProductSource lists the products of a catalog category.
type ProductSource interface {
	GetProducts(ctx context.Context, category string) []model.Product
}

// Section is one rendered block of the menu page.
type Section struct {
	Key      model.SectionKey `json:"key"`
	Title    string           `json:"title"`
	Products []model.Product  `json:"products"`
}

// View is everything the menu page needs for one fragment.
type View struct {
	Active   model.SectionKey `json:"active"`
	Sections []Section        `json:"sections"`
	Scroll   *ScrollDirective `json:"scroll,omitempty"`
}

// Controller builds menu views from the catalog.
type Controller struct {
	products ProductSource
	logger   zerolog.Logger
}

// NewController creates a menu controller over products.
func NewController(products ProductSource, logger zerolog.Logger) *Controller {
	return &Controller{
		products: products,
		logger:   logger.With().Str("component", "menu").Logger(),
	}
}

// Build derives the view for fragment. A leading '#' is ignored so both
// "bebidas" and "#bebidas" select the drinks section.
func (c *Controller) Build(ctx context.Context, fragment string) View {
	fragment = strings.TrimPrefix(fragment, "#")

	view := View{
		Active: DeriveActiveSection(fragment),
		Scroll: DeriveScroll(fragment),
	}

	for _, key := range DeriveVisibleSections(fragment) {
		category, ok := key.CategoryFor()
		if !ok {
			continue
		}
		view.Sections = append(view.Sections, Section{
			Key:      key,
			Title:    key.Title(),
			Products: c.products.GetProducts(ctx, string(category)),
		})
	}

	c.logger.Debug().
		Str("fragment", fragment).
		Str("active", string(view.Active)).
		Int("sections", len(view.Sections)).
		Msg("menu view built")

	return view
}
