package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

const (
	// Redis key prefix for hub snapshots
	hubKeyPrefix = "linkhub:hub:"

	DefaultTTL = 5 * time.Minute
)

// Redis stores hub snapshots (hub plus unfiltered links) as msgpack blobs.
// Snapshots are persisted data only; resolution still runs per request.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithTTL sets the snapshot expiry. Non-positive values keep the default.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRedis wraps an existing client. The client lifecycle stays with the caller.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, ttl: DefaultTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Dial parses url, connects and pings. It returns nil, nil when url is empty.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func hubKey(slug string) string {
	return hubKeyPrefix + slug
}

// Get returns the cached snapshot for slug. A miss is (nil, false, nil).
func (r *Redis) Get(ctx context.Context, slug string) (*domain.Hub, bool, error) {
	raw, err := r.client.Get(ctx, hubKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var hub domain.Hub
	if err := msgpack.Unmarshal(raw, &hub); err != nil {
		return nil, false, fmt.Errorf("decode hub snapshot %s: %w", slug, err)
	}
	return &hub, true, nil
}

func (r *Redis) Set(ctx context.Context, hub *domain.Hub) error {
	raw, err := msgpack.Marshal(hub)
	if err != nil {
		return fmt.Errorf("encode hub snapshot %s: %w", hub.Slug, err)
	}
	return r.client.Set(ctx, hubKey(hub.Slug), raw, r.ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context, slug string) error {
	return r.client.Del(ctx, hubKey(slug)).Err()
}

var _ ports.SnapshotCache = (*Redis)(nil)
