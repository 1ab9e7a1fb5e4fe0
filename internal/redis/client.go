// Package redis opens the go-redis connection shared by the draft session
// store and the save slot store.
package redis

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildcraft/internal/errors"
)

const defaultConnectTimeout = 5 * time.Second

// Client is the subset of go-redis the repositories rely on. Tests satisfy
// it with a client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}

// Options mirrors the REDIS_* settings of the CLI host.
type Options struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool
	// ConnectTimeout bounds the dial and the startup ping. Zero means 5s.
	ConnectTimeout time.Duration
}

// NewClient builds a client without touching the network; go-redis dials
// on first use.
func NewClient(opts *Options) (Client, error) {
	if opts == nil || opts.Addr == "" {
		return nil, errors.InvalidArgument("redis address is required")
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	redisOpts := &redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: timeout,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Connect builds a client and pings it so a bad address fails at startup
// rather than in the middle of a playthrough.
func Connect(ctx context.Context, opts *Options) (Client, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to Redis").
			WithMeta("addr", opts.Addr)
	}

	slog.Info("Connected to Redis", "addr", opts.Addr, "db", opts.DB, "tls", opts.UseTLS)
	return client, nil
}
