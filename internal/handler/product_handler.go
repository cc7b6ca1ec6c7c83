package handler

import (
	"errors"
	"net/http"

	"crazy-coffee/internal/menu"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler serves the catalog JSON API.
type ProductHandler struct {
	service service.ProductService
	menu    *menu.Controller
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, controller *menu.Controller, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		menu:    controller,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products?category= requests. Unknown categories
// yield an empty list, not an error.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.service.GetProducts(r.Context(), r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	product, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Menu handles GET /api/menu?section= requests with the derived view.
func (h *ProductHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.menu.Build(r.Context(), r.URL.Query().Get("section")))
}
