// Package redis wraps the go-redis client so repositories depend on a small,
// mockable surface
package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Client is the go-redis universal client; repositories accept this so tests
// can hand them a miniredis-backed instance
type Client interface {
	redis.UniversalClient
}

// Options tunes the connection pool
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
}

// NewClient creates a client for a single Redis instance. Redis connects
// lazily, so an unreachable endpoint only surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:         endpoint,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
	}), nil
}

// IsNil reports whether err is the go-redis missing-key sentinel
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
