package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/cache"
	cachemocks "github.com/vfg2006/storefront-api/infrastructure/cache/mocks"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCachedTenantRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	ttl := time.Hour
	tenant := &domain.Tenant{
		ID:                 "2f0c7f3e-5a4b-4c1d-9e8f-0a1b2c3d4e5f",
		Slug:               "loja-da-ana",
		StoreName:          "Loja da Ana",
		Template:           "classic",
		BankVerified:       true,
		SubscriptionStatus: domain.SubscriptionActive,
	}
	encoded, err := jsoniter.Marshal(tenant)
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(store *cachemocks.MockStore, inner *mocks.MockTenantRepository)
		expected *domain.Tenant
	}{
		{
			name: "cache hit não consulta o banco",
			setup: func(store *cachemocks.MockStore, inner *mocks.MockTenantRepository) {
				store.EXPECT().Get(ctx, "tenant:loja-da-ana").Return(encoded, nil)
			},
			expected: tenant,
		},
		{
			name: "cache miss busca no banco e grava com o TTL configurado",
			setup: func(store *cachemocks.MockStore, inner *mocks.MockTenantRepository) {
				store.EXPECT().Get(ctx, "tenant:loja-da-ana").Return(nil, cache.ErrCacheMiss)
				inner.EXPECT().GetBySlug(ctx, "loja-da-ana").Return(tenant, nil)
				store.EXPECT().Set(ctx, "tenant:loja-da-ana", encoded, ttl).Return(nil)
			},
			expected: tenant,
		},
		{
			name: "cache indisponível cai para o banco sem falhar",
			setup: func(store *cachemocks.MockStore, inner *mocks.MockTenantRepository) {
				store.EXPECT().Get(ctx, "tenant:loja-da-ana").Return(nil, errors.New("dial tcp: connection refused"))
				inner.EXPECT().GetBySlug(ctx, "loja-da-ana").Return(tenant, nil)
				store.EXPECT().Set(ctx, "tenant:loja-da-ana", gomock.Any(), ttl).Return(errors.New("dial tcp: connection refused"))
			},
			expected: tenant,
		},
		{
			name: "entrada corrompida é ignorada",
			setup: func(store *cachemocks.MockStore, inner *mocks.MockTenantRepository) {
				store.EXPECT().Get(ctx, "tenant:loja-da-ana").Return([]byte("{corrompido"), nil)
				inner.EXPECT().GetBySlug(ctx, "loja-da-ana").Return(tenant, nil)
				store.EXPECT().Set(ctx, "tenant:loja-da-ana", encoded, ttl).Return(nil)
			},
			expected: tenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := cachemocks.NewMockStore(ctrl)
			inner := mocks.NewMockTenantRepository(ctrl)
			tt.setup(store, inner)

			repo := repository.NewCachedTenantRepository(inner, store, ttl)
			result, err := repo.GetBySlug(ctx, "loja-da-ana")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCachedTenantRepository_UnknownSlugWritesNothing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := cachemocks.NewMockStore(ctrl)
	inner := mocks.NewMockTenantRepository(ctrl)

	store.EXPECT().Get(ctx, "tenant:nao-existe").Return(nil, cache.ErrCacheMiss)
	inner.EXPECT().GetBySlug(ctx, "nao-existe").Return(nil, nil)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	repo := repository.NewCachedTenantRepository(inner, store, time.Hour)
	result, err := repo.GetBySlug(ctx, "nao-existe")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCachedTenantRepository_DatabaseErrorPropagates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := cachemocks.NewMockStore(ctrl)
	inner := mocks.NewMockTenantRepository(ctrl)

	dbErr := errors.New("erro ao buscar loja")
	store.EXPECT().Get(ctx, "tenant:loja").Return(nil, cache.ErrCacheMiss)
	inner.EXPECT().GetBySlug(ctx, "loja").Return(nil, dbErr)

	repo := repository.NewCachedTenantRepository(inner, store, time.Hour)
	_, err := repo.GetBySlug(ctx, "loja")

	assert.ErrorIs(t, err, dbErr)
}

func TestCachedTenantRepository_DelegatesOtherMethods(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := cachemocks.NewMockStore(ctrl)
	inner := mocks.NewMockTenantRepository(ctrl)

	inner.EXPECT().GetByID(ctx, "tenant-1").Return(&domain.Tenant{ID: "tenant-1"}, nil)

	repo := repository.NewCachedTenantRepository(inner, store, time.Hour)
	result, err := repo.GetByID(ctx, "tenant-1")

	require.NoError(t, err)
	assert.Equal(t, "tenant-1", result.ID)
}
