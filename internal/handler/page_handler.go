package handler

import (
	"net/http"

	"crazy-coffee/internal/menu"
	"crazy-coffee/internal/session"
	"crazy-coffee/internal/view"

	"github.com/rs/zerolog"
)

// PageHandler serves the informational pages.
type PageHandler struct {
	pages
	menu *menu.Controller
}

// NewPageHandler creates a new page handler.
func NewPageHandler(renderer *view.Renderer, sessions *session.Manager, controller *menu.Controller, logger zerolog.Logger) *PageHandler {
	return &PageHandler{
		pages: pages{
			renderer: renderer,
			sessions: sessions,
			logger:   logger.With().Str("handler", "page").Logger(),
		},
		menu: controller,
	}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.render(w, http.StatusOK, view.PageHome, &view.HomePage{
		Layout:   h.layout(r.Context(), store, "Inicio", view.PageHome),
		Features: view.Features,
	})
}

// Menu handles GET /menu. The section query parameter stands in for the
// URL fragment, which browsers never send.
func (h *PageHandler) Menu(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.render(w, http.StatusOK, view.PageMenu, &view.MenuPage{
		Layout: h.layout(r.Context(), store, "Menú", view.PageMenu),
		Menu:   h.menu.Build(r.Context(), r.URL.Query().Get("section")),
	})
}

// NotFound renders the not found page for any unmatched path.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.logger.Debug().Str("path", r.URL.Path).Msg("no route")

	h.render(w, http.StatusNotFound, view.PageNotFound, &view.NotFoundPage{
		Layout: h.layout(r.Context(), store, "No encontrado", view.PageNotFound),
		Path:   r.URL.Path,
	})
}
