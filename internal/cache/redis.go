package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const purgeScanCount = 100

// RedisStore keeps cache entries in Redis so several instances share them
type RedisStore struct {
	Client *redis.Client
	prefix string
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	return NewRedisStoreFromClient(client, cfg), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client, cfg Config) *RedisStore {
	return &RedisStore{Client: client, prefix: cfg.KeyPrefix, ttl: cfg.TTL}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.Client.Get(ctx, versionedKey(r.prefix, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	r.hits.Add(1)
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.Client.Set(ctx, versionedKey(r.prefix, key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.Client.Del(ctx, versionedKey(r.prefix, key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Purge deletes every key under the store prefix
func (r *RedisStore) Purge(ctx context.Context) error {
	pattern := versionedKey(r.prefix, "*")
	iter := r.Client.Scan(ctx, 0, pattern, purgeScanCount).Iterator()

	_, err := r.Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for iter.Next(ctx) {
			p.Del(ctx, iter.Val())
		}
		return iter.Err()
	})
	if err != nil {
		return fmt.Errorf("redis purge: %w", err)
	}
	return nil
}

// Stats reports hit and miss counters. Size is the number of keys under the prefix.
func (r *RedisStore) Stats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	size := 0
	iter := r.Client.Scan(ctx, 0, versionedKey(r.prefix, "*"), purgeScanCount).Iterator()
	for iter.Next(ctx) {
		size++
	}
	return Stats{
		Backend: BackendRedis,
		Hits:    r.hits.Load(),
		Misses:  r.misses.Load(),
		Size:    size,
	}
}

func (r *RedisStore) Close() error {
	return r.Client.Close()
}
