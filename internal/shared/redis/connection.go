package redis

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/config"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every cache key written by the API.
const KeyPrefix = "starwars:"

type Client struct {
	*redis.Client
	ttl time.Duration
}

// Options builds client options from REDIS_URL when set, else from the
// host/port/password/db fields.
func Options(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     10,
	}, nil
}

// Connect returns nil, nil when Redis is disabled; reads then go straight to
// the database.
func Connect(cfg config.RedisConfig) (*Client, error) {
	logger := slog.With("component", "redis", "operation", "connect")

	if !cfg.Enabled {
		logger.Info("Redis disabled, character and planet reads are not cached")
		return nil, nil
	}

	opts, err := Options(cfg)
	if err != nil {
		logger.Error("Invalid Redis configuration", "error", err)
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping Redis", "error", err, "addr", opts.Addr)
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	logger.Info("Redis cache connected", "addr", opts.Addr, "db", opts.DB, "ttl", cfg.CacheTTL)
	return &Client{Client: rdb, ttl: cfg.CacheTTL}, nil
}

// Cache returns the read cache backed by c, or a no-op cache when Redis is
// disabled.
func (c *Client) Cache(logger *slog.Logger) cache.Cache {
	if c == nil || c.Client == nil {
		return cache.Noop{}
	}
	return cache.NewRedisCache(c.Client, c.ttl, KeyPrefix, logger)
}

func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
