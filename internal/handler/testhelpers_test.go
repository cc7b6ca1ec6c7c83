package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"crazy-coffee/internal/middleware"
	"crazy-coffee/internal/session"
	"crazy-coffee/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testClient = "6f1c1c0e-8a53-4d8e-9d7c-3f0f5d1f2a10"

func newTestRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer(zerolog.Nop())
	require.NoError(t, err)
	return r
}

func newTestSessions() (*session.MemoryKV, *session.Manager) {
	kv := session.NewMemoryKV()
	return kv, session.NewManager(kv, zerolog.Nop())
}

func clientRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := middleware.WithReturningClient(middleware.WithClientID(req.Context(), testClient))
	return req.WithContext(ctx)
}

func isAuthenticated(t *testing.T, sessions *session.Manager) bool {
	t.Helper()
	ok, err := sessions.For(testClient).IsAuthenticated(context.Background())
	require.NoError(t, err)
	return ok
}
