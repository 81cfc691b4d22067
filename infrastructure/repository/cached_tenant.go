package repository

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/cache"
	"github.com/vfg2006/storefront-api/internal/domain"
)

const tenantCacheKeyPrefix = "tenant:"

// CachedTenantRepository faz cache-aside da busca de loja por slug.
// Escritas não invalidam o cache: uma loja renomeada pode aparecer desatualizada por até um TTL.
type CachedTenantRepository struct {
	TenantRepository
	store cache.Store
	ttl   time.Duration
}

func NewCachedTenantRepository(inner TenantRepository, store cache.Store, ttl time.Duration) *CachedTenantRepository {
	return &CachedTenantRepository{
		TenantRepository: inner,
		store:            store,
		ttl:              ttl,
	}
}

func TenantCacheKey(slug string) string {
	return tenantCacheKeyPrefix + slug
}

func (r *CachedTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	key := TenantCacheKey(slug)

	data, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		var tenant domain.Tenant
		if err := jsoniter.Unmarshal(data, &tenant); err == nil {
			return &tenant, nil
		}
		logrus.WithField("key", key).Warn("tenant-cache: entrada corrompida, buscando no banco")
	case errors.Is(err, cache.ErrCacheMiss):
	default:
		logrus.WithError(err).WithField("key", key).Warn("tenant-cache: cache indisponível, buscando no banco")
	}

	tenant, err := r.TenantRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}

	r.populate(ctx, key, tenant)

	return tenant, nil
}

func (r *CachedTenantRepository) populate(ctx context.Context, key string, tenant *domain.Tenant) {
	data, err := jsoniter.Marshal(tenant)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("tenant-cache: erro ao serializar loja")
		return
	}

	if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("tenant-cache: erro ao gravar no cache")
	}
}
