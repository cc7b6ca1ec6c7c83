package router

import (
	"context"
	"net/http"

	"crazy-coffee/internal/handler"
	"crazy-coffee/internal/middleware"
	"crazy-coffee/internal/view"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router dispatches to.
type Handlers struct {
	Pages    *handler.PageHandler
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
}

// Options configures the cross-cutting pieces of the router.
type Options struct {
	Tokens     *middleware.ClientTokens
	CookieName string
	Metrics    *middleware.Metrics
	Gatherer   prometheus.Gatherer

	// Ready reports whether the storage backends are reachable. Nil means
	// always ready.
	Ready func(ctx context.Context) error
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern, route string, fn http.HandlerFunc) {
		mux.Handle(pattern, opts.Metrics.Route(route)(fn))
	}

	// Pages
	handle("GET /{$}", "/", h.Pages.Home)
	handle("GET /menu", "/menu", h.Pages.Menu)
	handle("GET /login", "/login", h.Auth.LoginPage)
	handle("POST /login", "/login", h.Auth.Login)
	handle("GET /register", "/register", h.Auth.RegisterPage)
	handle("POST /register", "/register", h.Auth.Register)
	handle("GET /logout", "/logout", h.Auth.LogoutLink)
	handle("POST /logout", "/logout", h.Auth.Logout)

	// JSON API
	handle("GET /api/products", "/api/products", h.Products.List)
	handle("GET /api/products/{id}", "/api/products/{id}", h.Products.GetByID)
	handle("GET /api/menu", "/api/menu", h.Products.Menu)

	// Operations
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if opts.Ready != nil {
			if err := opts.Ready(r.Context()); err != nil {
				logger.Warn().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status": "unavailable"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.Static())))

	// Everything else renders the not found page inside the layout.
	handle("/", "not_found", h.Pages.NotFound)

	// Apply middleware in order: Recovery -> ClientIdentity -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.ClientIdentity(opts.Tokens, opts.CookieName, logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
