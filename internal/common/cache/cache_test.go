package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Names map[string]string `json:"names"`
}

func redisCacheTestHelper(t *testing.T) (redismock.ClientMock, Client[snapshot]) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	client := NewRedisClient[snapshot](db)

	return mock, client
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock redismock.ClientMock)
		want    snapshot
		wantErr error
	}{
		{
			name: "hit",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("ref").SetVal(`{"names":{"1":"ACME"}}`)
			},
			want: snapshot{Names: map[string]string{"1": "ACME"}},
		},
		{
			name: "miss",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("ref").RedisNil()
			},
			wantErr: ErrNotExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, client := redisCacheTestHelper(t)
			tt.doMock(mock)

			got, err := client.Get(context.Background(), "ref")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_GetOrSet(t *testing.T) {
	t.Run("miss runs callback and stores", func(t *testing.T) {
		mock, client := redisCacheTestHelper(t)

		want := snapshot{Names: map[string]string{"7": "Globex"}}
		mock.ExpectGet("ref").RedisNil()
		mock.ExpectSet("ref", []byte(`{"names":{"7":"Globex"}}`), 0).SetVal("OK")

		got, err := client.GetOrSet(context.Background(), GetOrSetOpts[snapshot]{
			Key:      "ref",
			Callback: func() (snapshot, error) { return want, nil },
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("callback required", func(t *testing.T) {
		_, client := redisCacheTestHelper(t)

		_, err := client.GetOrSet(context.Background(), GetOrSetOpts[snapshot]{Key: "ref"})
		require.ErrorIs(t, err, ErrCallbackNotProvided)
	})

	t.Run("callback error is not cached", func(t *testing.T) {
		mock, client := redisCacheTestHelper(t)

		mock.ExpectGet("ref").RedisNil()

		_, err := client.GetOrSet(context.Background(), GetOrSetOpts[snapshot]{
			Key:      "ref",
			Callback: func() (snapshot, error) { return snapshot{}, assert.AnError },
		})
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInMemoryClient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		client := NewInMemoryClient[snapshot]()
		defer client.Close()

		want := snapshot{Names: map[string]string{"1": "ACME"}}
		require.NoError(t, client.Set(ctx, "ref", want, 0))

		got, err := client.Get(ctx, "ref")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing key", func(t *testing.T) {
		client := NewInMemoryClient[snapshot]()
		defer client.Close()

		_, err := client.Get(ctx, "nope")
		require.ErrorIs(t, err, ErrNotExists)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		client := NewInMemoryClient[snapshot]()
		defer client.Close()

		require.NoError(t, client.Set(ctx, "ref", snapshot{}, time.Nanosecond))
		time.Sleep(10 * time.Millisecond)

		_, err := client.Get(ctx, "ref")
		require.ErrorIs(t, err, ErrNotExists)
	})

	t.Run("delete", func(t *testing.T) {
		client := NewInMemoryClient[snapshot]()
		defer client.Close()

		require.NoError(t, client.Set(ctx, "ref", snapshot{}, 0))
		require.NoError(t, client.Delete(ctx, "ref"))

		_, err := client.Get(ctx, "ref")
		require.ErrorIs(t, err, ErrNotExists)
	})

	t.Run("get or set caches callback result", func(t *testing.T) {
		client := NewInMemoryClient[snapshot]()
		defer client.Close()

		calls := 0
		opts := GetOrSetOpts[snapshot]{
			Key: "ref",
			Callback: func() (snapshot, error) {
				calls++
				return snapshot{Names: map[string]string{"1": "ACME"}}, nil
			},
		}

		first, err := client.GetOrSet(ctx, opts)
		require.NoError(t, err)
		second, err := client.GetOrSet(ctx, opts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})
}
