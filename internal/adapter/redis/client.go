// Package redis wraps go-redis with the hash-plus-registry layout used by
// the query caches.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
)

// Client stores cached values as hashes ({data, cached_at}) with a TTL.
// Registry sets group cache keys so they can be invalidated together.
type Client struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewClient builds a client for a single node or a cluster, depending on
// how many addresses are configured.
func NewClient(cfg config.RedisConfig) *Client {
	rdb := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:    cfg.AddrList(),
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})
	return NewWithUniversal(rdb, cfg.TTL)
}

// NewWithUniversal wraps an existing go-redis client.
func NewWithUniversal(rdb goredis.UniversalClient, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Get returns the cached value for key. A miss is reported as found == false
// with a nil error.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.HGet(ctx, key, "data").Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis hget %s: %w", key, err)
	}
	return val, true, nil
}

// SetWithRegistry stores value under key and adds key to every registry set.
func (c *Client) SetWithRegistry(ctx context.Context, key, value string, registries []string) error {
	pipe := c.rdb.TxPipeline()

	pipe.HSet(ctx, key, map[string]any{
		"data":      value,
		"cached_at": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, c.ttl)

	for _, reg := range registries {
		pipe.SAdd(ctx, reg, key)
		pipe.Expire(ctx, reg, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// InvalidateRegistries deletes every key recorded in the given registries
// and the registries themselves.
func (c *Client) InvalidateRegistries(ctx context.Context, registries ...string) error {
	var errs []string

	for _, reg := range registries {
		keys, err := c.rdb.SMembers(ctx, reg).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			errs = append(errs, fmt.Sprintf("registry %s: %v", reg, err))
			continue
		}
		// Keys may live on different cluster slots, so delete one by one.
		for _, key := range append(keys, reg) {
			if err := c.rdb.Del(ctx, key).Err(); err != nil {
				errs = append(errs, fmt.Sprintf("key %s: %v", key, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("redis invalidation: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Client) Close() error {
	return c.rdb.Close()
}
