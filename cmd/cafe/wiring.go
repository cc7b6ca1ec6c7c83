package main

import (
	"context"
	"fmt"

	"crazy-coffee/internal/auth"
	"crazy-coffee/internal/cache"
	"crazy-coffee/internal/catalog"
	"crazy-coffee/internal/config"
	"crazy-coffee/internal/database"
	"crazy-coffee/internal/repository"
	"crazy-coffee/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// backends holds the storage clients opened for one process.
type backends struct {
	pool  *pgxpool.Pool
	redis *cache.Client

	kv       session.KV
	verifier auth.Verifier
}

// openBackends connects whatever storage cfg selects. The caller must
// call close.
func openBackends(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*backends, error) {
	b := &backends{}

	if cfg.UsesPostgres() {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		b.pool = pool

		if _, err := database.Migrate(ctx, pool, logger); err != nil {
			b.close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Prefix, logger)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		b.redis = client
		b.kv = client
	case config.BackendPostgres:
		b.kv = repository.NewSessionValueRepository(b.pool, logger)
	default:
		b.kv = session.NewMemoryKV()
	}

	switch cfg.Auth.Verifier {
	case config.VerifierPostgres:
		b.verifier = auth.NewBcryptVerifier(repository.NewCredentialRepository(b.pool, logger), logger)
	default:
		b.verifier = auth.NewStaticVerifier(cfg.Auth.Username, cfg.Auth.Password)
	}

	logger.Info().
		Str("session_backend", cfg.Session.Backend).
		Str("verifier", cfg.Auth.Verifier).
		Msg("storage backends ready")

	return b, nil
}

// ready pings every open backend.
func (b *backends) ready(ctx context.Context) error {
	if b.pool != nil {
		if err := b.pool.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if b.redis != nil {
		if err := b.redis.Ping(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (b *backends) close() {
	if b.redis != nil {
		_ = b.redis.Close()
	}
	if b.pool != nil {
		b.pool.Close()
	}
}

// newCatalogLoader builds the loader for cfg.Catalog.Source. The s3 source
// falls back to local files when the bucket cannot be read, or when the S3
// client cannot even be created.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Loader, error) {
	switch cfg.Catalog.Source {
	case config.SourceBuiltin:
		return catalog.BuiltinLoader{}, nil
	case config.SourceFile:
		return catalog.NewFileLoader(cfg.Catalog.Dir, logger), nil
	case config.SourceS3:
		fileLoader := catalog.NewFileLoader(cfg.Catalog.Dir, logger)
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			return fileLoader, nil
		}
		return catalog.NewFallbackLoader(s3Loader, fileLoader, logger), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
