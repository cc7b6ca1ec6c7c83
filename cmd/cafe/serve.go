package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/config"
	"crazy-coffee/internal/handler"
	"crazy-coffee/internal/menu"
	"crazy-coffee/internal/middleware"
	"crazy-coffee/internal/router"
	"crazy-coffee/internal/service"
	"crazy-coffee/internal/session"
	"crazy-coffee/internal/view"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting crazy-coffee server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	stores, err := openBackends(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.close()

	// Catalog
	loader, err := newCatalogLoader(ctx, cfg, logger)
	if err != nil {
		return err
	}
	provider, err := catalog.Load(ctx, loader, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	renderer, err := view.NewRenderer(logger)
	if err != nil {
		return fmt.Errorf("failed to initialize templates: %w", err)
	}

	// Initialize services
	sessions := session.NewManager(stores.kv, logger)
	productService := service.NewProductService(provider, logger)
	authService := service.NewAuthService(stores.verifier, logger)
	menuController := menu.NewController(productService, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize router
	mux := router.New(router.Handlers{
		Pages:    handler.NewPageHandler(renderer, sessions, menuController, logger),
		Auth:     handler.NewAuthHandler(renderer, sessions, authService, logger),
		Products: handler.NewProductHandler(productService, menuController, logger),
	}, router.Options{
		Tokens:     middleware.NewClientTokens(cfg.Session.Secret),
		CookieName: cfg.Session.CookieName,
		Metrics:    middleware.NewMetrics(reg),
		Gatherer:   reg,
		Ready:      stores.ready,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
