package csrf

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "csrf:"

// RedisStore shares tokens between instances. Expiry is left to Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context) (string, error) {
	token, err := NewToken(rand.Reader)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, redisKeyPrefix+token, 1, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store csrf token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Validate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	n, err := s.client.Exists(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("lookup csrf token: %w", err)
	}
	return n == 1, nil
}
