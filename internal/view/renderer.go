// Package view renders the site pages from embedded html/template files.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{PageHome, PageMenu, PageLogin, PageRegister, PageNotFound}

// Renderer executes one template set per page, each sharing the layout and
// the product card partial.
type Renderer struct {
	pages  map[string]*template.Template
	logger zerolog.Logger
}

// NewRenderer parses every page template.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	r := &Renderer{
		pages:  make(map[string]*template.Template, len(pageNames)),
		logger: logger.With().Str("component", "view").Logger(),
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).ParseFS(templateFS,
			"templates/layout.html",
			"templates/product_card.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render writes page to w.
func (r *Renderer) Render(w io.Writer, page string, data LayoutProvider) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	return nil
}

// RenderHTTP renders page into a buffer first so a template failure can
// still produce a clean 500.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, status int, page string, data LayoutProvider) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Static returns the embedded assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
