package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Client is a Redis-backed key-value store for session data.
type Client struct {
	rdb    *redis.Client
	prefix string
	logger zerolog.Logger
}

// NewClient connects to Redis at addr and verifies the connection. Every key
// written through the client is prefixed with prefix.
func NewClient(ctx context.Context, addr, prefix string, logger zerolog.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	logger = logger.With().Str("component", "redis").Logger()
	logger.Info().Str("addr", addr).Msg("connected to redis")

	return &Client{rdb: rdb, prefix: prefix, logger: logger}, nil
}

// Get returns the value stored under key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		c.logger.Error().Err(err).Str("key", key).Msg("redis get failed")
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores value under key without expiry.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if err := c.rdb.Set(ctx, c.prefix+key, value, 0).Err(); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("redis set failed")
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("redis delete failed")
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
