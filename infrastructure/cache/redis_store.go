package cache

import (
	"context"
	"fmt"

	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the production IKeyValueStore backed by Redis. Operations use
// a background context; the store interface is synchronous by design so the
// TTL/eviction logic stays storage-agnostic.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, addr, username, password string) (repository.IKeyValueStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(key string) (string, bool) {
	val, err := s.client.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Redis GET failed")
		}
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Remove(key string) {
	if err := s.client.Del(context.Background(), key).Err(); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Redis DEL failed")
	}
}

func (s *RedisStore) Keys() []string {
	ctx := context.Background()
	var keys []string
	iter := s.client.Scan(ctx, 0, "*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis SCAN failed")
	}
	return keys
}
