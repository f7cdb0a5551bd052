// Package redis wraps go-redis construction so repositories depend on the
// Client interface and tests can swap in miniredis
package redis

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

// Options tunes the connection pool. Zero values keep go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	// UseTLS enables TLS for host:port endpoints; rediss:// URLs always use it
	UseTLS bool
}

// NewClient creates a client for a single Redis instance. endpoint is either
// host:port or a redis:// / rediss:// URL carrying credentials and a DB
// number. Redis connects lazily; use Ping to verify the endpoint.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: endpoint}
	if strings.Contains(endpoint, "://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid endpoint")
		}
		redisOpts = parsed
	}

	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 {
		redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries != 0 {
		redisOpts.MaxRetries = opts.MaxRetries
	}
	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks that the server behind client answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
