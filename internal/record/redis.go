package record

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// RedisStore persists record values in Redis. Writes carry no TTL; a value
// lives until overwritten.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(client *redis.Client, tracer trace.Tracer) *RedisStore {
	if client == nil {
		panic("record: redis client cannot be nil")
	}
	if tracer == nil {
		tracer = otel.Tracer("contactline.internal.record")
	}
	return &RedisStore{redis: client, tracer: tracer}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "record.get")
	defer span.End()

	val, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("record: get %s: %w", key, err)
	}
	return val, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	ctx, span := s.tracer.Start(ctx, "record.set")
	defer span.End()

	if err := s.redis.Set(ctx, key, value, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("record: set %s: %w", key, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
