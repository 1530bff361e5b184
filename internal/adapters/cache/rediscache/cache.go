// Package rediscache implementa insights.Cache sobre go-redis.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix = "insights:"
	scanBatch = 200
)

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

// NewClient crea el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func New(c *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{c: c, ttl: ttl}
}

func (r *Cache) Get(ctx context.Context, petID, key string) ([]byte, bool, error) {
	val, err := r.c.Get(ctx, cacheKey(petID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (r *Cache) Set(ctx context.Context, petID, key string, value []byte) error {
	return r.c.Set(ctx, cacheKey(petID, key), value, r.ttl).Err()
}

// Invalidate borra todas las claves de la mascota (SCAN + DEL).
func (r *Cache) Invalidate(ctx context.Context, petID string) error {
	pattern := keyPrefix + petID + ":*"

	var cursor uint64
	for {
		keys, next, err := r.c.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.c.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func cacheKey(petID, key string) string {
	return keyPrefix + petID + ":" + key
}
