package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session state in Redis so sessions survive restarts.
// Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// WithPrefix returns a store sharing the same connection under a different
// key namespace.
func (s *RedisStore) WithPrefix(prefix string) *RedisStore {
	return &RedisStore{client: s.client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(key string) (string, bool) {
	val, err := s.client.Get(context.Background(), s.key(key)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(key, value string, ttl time.Duration) {
	s.client.Set(context.Background(), s.key(key), value, ttl)
}

func (s *RedisStore) Delete(key string) {
	s.client.Del(context.Background(), s.key(key))
}
