package cache

import (
	"context"
	"errors"
	"time"
)

// Client is a typed cache over an arbitrary backend. Values round-trip
// through JSON so the same contract serves both the in-process and the redis
// driver.
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
	Delete(ctx context.Context, key string) error
	Close()
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)
}
