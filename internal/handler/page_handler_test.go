package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/menu"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/service"
	"crazy-coffee/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPageHandler(t *testing.T) (*PageHandler, *session.MemoryKV, *session.Manager) {
	t.Helper()
	kv, sessions := newTestSessions()
	svc := service.NewProductService(catalog.Builtin(), zerolog.Nop())
	h := NewPageHandler(newTestRenderer(t), sessions, menu.NewController(svc, zerolog.Nop()), zerolog.Nop())
	return h, kv, sessions
}

func TestPageHandler_Home(t *testing.T) {
	h, _, sessions := newTestPageHandler(t)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Home(w, clientRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bienvenido a Crazy Coffee")
		assert.Contains(t, w.Body.String(), `class="btn-login"`)
	})

	t.Run("logged in", func(t *testing.T) {
		require.NoError(t, sessions.For(testClient).Save(context.Background(), model.UserData{Username: "admin"}))

		w := httptest.NewRecorder()
		h.Home(w, clientRequest(http.MethodGet, "/", nil))

		assert.Contains(t, w.Body.String(), "Hola, admin")
		assert.Contains(t, w.Body.String(), `action="/logout"`)
	})

	t.Run("flash notice is shown once", func(t *testing.T) {
		require.NoError(t, sessions.For(testClient).SetFlash(context.Background(), "Registro exitoso!"))

		w := httptest.NewRecorder()
		h.Home(w, clientRequest(http.MethodGet, "/", nil))
		assert.Contains(t, w.Body.String(), `data-notice="Registro exitoso!"`)

		w = httptest.NewRecorder()
		h.Home(w, clientRequest(http.MethodGet, "/", nil))
		assert.NotContains(t, w.Body.String(), "Registro exitoso!")
	})
}

func TestPageHandler_Home_CorruptSession(t *testing.T) {
	h, kv, sessions := newTestPageHandler(t)
	scoped := session.Scope(kv, testClient)
	require.NoError(t, scoped.Set(context.Background(), session.UserDataKey, []byte("{not json")))

	w := httptest.NewRecorder()
	h.Home(w, clientRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="btn-login"`)
	assert.False(t, isAuthenticated(t, sessions))
	assert.Equal(t, 0, kv.Len())
}

func TestPageHandler_Menu(t *testing.T) {
	h, _, _ := newTestPageHandler(t)

	tests := []struct {
		name        string
		target      string
		contains    []string
		notContains []string
	}{
		{
			name:        "no section",
			target:      "/menu",
			contains:    []string{`id="bebidas"`, `id="comida"`, "Sándwich de jamón y queso"},
			notContains: []string{"data-scroll-target"},
		},
		{
			name:        "bebidas",
			target:      "/menu?section=bebidas",
			contains:    []string{`id="bebidas"`, `data-scroll-target="bebidas"`},
			notContains: []string{`id="comida"`},
		},
		{
			name:        "comida",
			target:      "/menu?section=comida",
			contains:    []string{`id="comida"`, "Brownie de chocolate"},
			notContains: []string{`id="bebidas"`},
		},
		{
			name:     "unknown section shows both",
			target:   "/menu?section=xyz",
			contains: []string{`id="bebidas"`, `id="comida"`, `data-scroll-target="xyz"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Menu(w, clientRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	h, _, _ := newTestPageHandler(t)

	w := httptest.NewRecorder()
	h.NotFound(w, clientRequest(http.MethodGet, "/carta", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Página no encontrada")
	assert.Contains(t, w.Body.String(), "La Esquina del Café")
}

func TestPageHandler_MissingClient(t *testing.T) {
	h, _, _ := newTestPageHandler(t)

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
