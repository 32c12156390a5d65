package session

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in Redis to avoid collisions.
const keyPrefix = "session:"

// RedisBackend stores sessions in Redis with TTL-based expiry.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend returns a Backend on the given Redis client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Set(ctx context.Context, token string, data *Data, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	return b.client.Set(ctx, keyPrefix+token, payload, ttl).Err()
}

func (b *RedisBackend) Get(ctx context.Context, token string) (*Data, error) {
	payload, err := b.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil // Session expired or doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	return &data, nil
}

func (b *RedisBackend) Delete(ctx context.Context, token string) error {
	return b.client.Del(ctx, keyPrefix+token).Err()
}
