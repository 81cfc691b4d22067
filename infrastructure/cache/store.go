package cache

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

var ErrCacheMiss = errors.New("cache: chave não encontrada")

// Store é um armazenamento chave/valor com expiração. Get retorna ErrCacheMiss quando a chave não existe.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
