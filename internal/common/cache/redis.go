package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient[T any] struct {
	rdb *redis.Client
}

// NewRedisClient wraps an established redis connection; Close is a no-op
// because the connection is owned by the caller and may back several typed
// clients.
func NewRedisClient[T any](rdb *redis.Client) Client[T] {
	return &redisClient[T]{rdb: rdb}
}

func (c redisClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, ErrNotExists
		}
		return result, err
	}

	if err = json.Unmarshal(val, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (c redisClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c redisClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	result, err = c.Get(ctx, opts.Key)
	if err == nil {
		return result, nil
	}
	if err != ErrNotExists {
		return result, err
	}

	result, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err = c.Set(ctx, opts.Key, result, opts.TTL); err != nil {
		return result, err
	}
	return result, nil
}

func (c redisClient[T]) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

func (c redisClient[T]) Close() {}
