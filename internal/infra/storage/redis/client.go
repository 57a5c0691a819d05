// Package redis implements the storage-backed infrastructure of streamkit on
// top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type config struct {
	claimTTL time.Duration
}

// Option configures the client.
type Option func(*config)

// WithClaimTTL sets how long a submission key is remembered.
func WithClaimTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.claimTTL = ttl
	}
}

type client struct {
	conn *redis.Client
	cfg  config
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return newClient(conn, opts...), nil
}

func newClient(conn *redis.Client, opts ...Option) *client {
	cfg := config{
		claimTTL: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn: conn,
		cfg:  cfg,
	}
}
