package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisStore is a redis-backed implementation of Store. Entries live under
// the cart: namespace so the cart shares a redis instance with other services.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new instance of RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, cartKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(cartKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *RedisStore) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = cartKeyPrefix + k
	}

	raw, err := s.client.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	for i, v := range raw {
		if str, ok := v.(string); ok {
			values[keys[i]] = str
		}
	}
	return values, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, cartKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return v, err
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, cartKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Merge(ctx context.Context, key, value string) error {
	prev, err := s.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	merged, err := mergeJSON(prev, value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, merged)
}
