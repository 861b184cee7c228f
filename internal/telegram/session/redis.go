package session

import (
	"context"
	"errors"
	"fmt"

	tgsession "github.com/gotd/td/session"
	"github.com/redis/go-redis/v9"
)

// sessionKey is the Redis key holding the serialized session.
const sessionKey = "grouper:telegram:session"

// Redis stores the session under a single key. The client lifecycle is
// managed by the caller.
type Redis struct {
	client *redis.Client
	key    string
}

var _ tgsession.Storage = (*Redis)(nil)

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithKey overrides the storage key, e.g. to keep sessions for several
// accounts in one database.
func WithKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// NewRedis builds a Redis-backed session store.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, key: sessionKey}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// LoadSession implements gotd's session storage contract.
func (r *Redis) LoadSession(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, tgsession.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return data, nil
}

// StoreSession implements gotd's session storage contract.
func (r *Redis) StoreSession(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}
