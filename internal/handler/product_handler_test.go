package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/menu"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, category string) []model.Product {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.Product)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func newBuiltinProductHandler() *ProductHandler {
	svc := service.NewProductService(catalog.Builtin(), zerolog.Nop())
	return NewProductHandler(svc, menu.NewController(svc, zerolog.Nop()), zerolog.Nop())
}

func TestProductHandler_List(t *testing.T) {
	h := newBuiltinProductHandler()

	tests := []struct {
		name          string
		query         string
		expectedCount int
		firstName     string
	}{
		{name: "default is all", query: "", expectedCount: 11, firstName: "Espreso"},
		{name: "all", query: "?category=all", expectedCount: 11, firstName: "Espreso"},
		{name: "drinks", query: "?category=drinks", expectedCount: 7, firstName: "Espreso"},
		{name: "food", query: "?category=food", expectedCount: 4, firstName: "Croissant"},
		{name: "unknown category", query: "?category=postres", expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.query, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var products []model.Product
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
			require.NotNil(t, products)
			assert.Len(t, products, tt.expectedCount)
			if tt.firstName != "" {
				assert.Equal(t, tt.firstName, products[0].Name)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	h := newBuiltinProductHandler()

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedName   string
	}{
		{name: "drink", id: "2", expectedStatus: http.StatusOK, expectedName: "Espreso"},
		{name: "duplicate id resolves to the drink", id: "5", expectedStatus: http.StatusOK, expectedName: "Americano"},
		{name: "numeric prefix", id: "3abc", expectedStatus: http.StatusOK, expectedName: "Capuchino"},
		{name: "not a number", id: "abc", expectedStatus: http.StatusNotFound},
		{name: "unknown", id: "99", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var product model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
				assert.Equal(t, tt.expectedName, product.Name)
				return
			}

			var resp model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
		})
	}
}

func TestProductHandler_GetByID_ServiceFailure(t *testing.T) {
	svc := new(MockProductService)
	svc.On("GetProductByID", mock.Anything, "2").Return(nil, errors.New("boom"))
	h := NewProductHandler(svc, menu.NewController(svc, zerolog.Nop()), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/2", nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeInternalError)
	svc.AssertExpectations(t)
}

func TestProductHandler_Menu(t *testing.T) {
	svc := new(MockProductService)
	svc.On("GetProducts", mock.Anything, "food").Return([]model.Product{{ID: 5, Name: "Croissant"}})
	h := NewProductHandler(svc, menu.NewController(svc, zerolog.Nop()), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/menu?section=comida", nil)
	w := httptest.NewRecorder()

	h.Menu(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Active   string `json:"active"`
		Sections []struct {
			Key      string          `json:"key"`
			Title    string          `json:"title"`
			Products []model.Product `json:"products"`
		} `json:"sections"`
		Scroll *struct {
			Target   string `json:"target"`
			DelayMS  int    `json:"delay_ms"`
			Behavior string `json:"behavior"`
			Block    string `json:"block"`
		} `json:"scroll"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "comida", body.Active)
	require.Len(t, body.Sections, 1)
	assert.Equal(t, "Comestibles", body.Sections[0].Title)
	assert.Equal(t, "Croissant", body.Sections[0].Products[0].Name)
	require.NotNil(t, body.Scroll)
	assert.Equal(t, "comida", body.Scroll.Target)
	assert.Equal(t, 100, body.Scroll.DelayMS)
	svc.AssertExpectations(t)
}
