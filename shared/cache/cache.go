package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"roombook/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanCount             = 100
)

// Nil is returned by Get on a cache miss.
var Nil = redis.Nil

// RedisCache stores JSON encoded values. Strings are stored as is. Durations
// are in seconds.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (cache *redisCache) scope(ctx context.Context, operation, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+operation)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

// Clear removes every key matching pattern, one SCAN page at a time.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.scope(ctx, "Clear", pattern)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		cursor  uint64
		removed int64
	)

	for {
		var keys []string

		keys, cursor, err = cache.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan cache")

			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		if len(keys) > 0 {
			n, delErr := cache.client.Unlink(ctx, keys...).Result()
			if delErr != nil {
				err = delErr
				log.Error().Err(err).Str("pattern", pattern).Msg("failed to unlink cache keys")

				return fmt.Errorf("failed to delete cache values: %w", err)
			}

			removed += n
		}

		if cursor == 0 {
			break
		}
	}

	log.Debug().Str("pattern", pattern).Int64("removed", removed).Msg("cache cleared")

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.scope(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the value stored at key into value, which must be a pointer.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.scope(ctx, "Get", key)
	defer scope.End()
	defer func() {
		if !errors.Is(err, Nil) {
			scope.TraceIfError(err)
		}
	}()

	raw, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Nil
	}

	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if str, ok := value.(*string); ok {
		*str = string(raw)

		return nil
	}

	if err = json.Unmarshal(raw, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.scope(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal cache")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err = cache.client.Set(ctx, key, payload, time.Duration(duration)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Int("ttl", duration).Msg("cache saved")

	return nil
}

func encode(value any) ([]byte, error) {
	if str, ok := value.(string); ok {
		return []byte(str), nil
	}

	return json.Marshal(value) //nolint:wrapcheck
}
