package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/internal/config"
)

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisStore_BackendUnavailable(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()

	t.Run("Get retorna erro que não é cache miss", func(t *testing.T) {
		data, err := store.Get(ctx, "tenant:loja")
		require.Error(t, err)
		assert.Nil(t, data)
		assert.False(t, errors.Is(err, ErrCacheMiss))
	})

	t.Run("Set retorna erro", func(t *testing.T) {
		err := store.Set(ctx, "tenant:loja", []byte(`{}`), time.Hour)
		assert.Error(t, err)
	})
}

func TestNewRedisClient_UnreachableKeepsClient(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.Redis{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	require.NotNil(t, client)
	defer client.Close()

	_, err = NewRedisStore(client).Get(context.Background(), "tenant:loja")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCacheMiss))
}
