package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const cleanerInterval = time.Minute

type inMemoryClient[T any] struct {
	store sync.Map
	done  chan struct{}
	once  sync.Once
}

type storedValue struct {
	raw   []byte
	expAt time.Time
}

func (v storedValue) expired(now time.Time) bool {
	return !v.expAt.IsZero() && v.expAt.Before(now)
}

func NewInMemoryClient[T any]() Client[T] {
	c := &inMemoryClient[T]{done: make(chan struct{})}
	go c.runCleaner()
	return c
}

func (c *inMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	raw, found := c.store.Load(key)
	if !found {
		return result, ErrNotExists
	}

	val := raw.(storedValue)
	if val.expired(time.Now()) {
		c.store.Delete(key)
		return result, ErrNotExists
	}

	if err = json.Unmarshal(val.raw, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *inMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	raw, err := json.Marshal(object)
	if err != nil {
		return err
	}

	val := storedValue{raw: raw}
	if ttl > 0 {
		val.expAt = time.Now().Add(ttl)
	}
	c.store.Store(key, val)
	return nil
}

func (c *inMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (result T, err error) {
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

func (c *inMemoryClient[T]) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

func (c *inMemoryClient[T]) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *inMemoryClient[T]) runCleaner() {
	ticker := time.NewTicker(cleanerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.store.Range(func(key, raw any) bool {
				if raw.(storedValue).expired(now) {
					c.store.Delete(key)
				}
				return true
			})
		}
	}
}
