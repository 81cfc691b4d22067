package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	owner    = &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	stranger = &domain.Claims{UserID: 8, UserRoleID: domain.RoleSeller}
)

func tenantFixture() *domain.Tenant {
	return &domain.Tenant{
		ID:          "tenant-1",
		Slug:        "loja-da-ana",
		StoreName:   "Loja da Ana",
		OwnerUserID: 7,
	}
}

type repos struct {
	tenants    *mocks.MockTenantRepository
	categories *mocks.MockCategoryRepository
	products   *mocks.MockProductRepository
}

func newService(t *testing.T) (*Service, repos) {
	ctrl := gomock.NewController(t)
	r := repos{
		tenants:    mocks.NewMockTenantRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		products:   mocks.NewMockProductRepository(ctrl),
	}
	return NewService(r.tenants, r.categories, r.products), r
}

func TestCreateProduct(t *testing.T) {
	categoryID := "cat-1"
	negative := decimal.NewFromInt(-1)

	validRequest := domain.CreateProductRequest{
		CategoryID: &categoryID,
		Name:       " Camiseta Azul ",
		Slug:       "Camiseta-Azul",
		Price:      decimal.RequireFromString("49.999"),
		Stock:      10,
	}

	tests := []struct {
		name        string
		claims      *domain.Claims
		request     func() domain.CreateProductRequest
		setup       func(r repos)
		expectedErr error
		code        string
	}{
		{
			name:   "cria produto ativo",
			claims: owner,
			request: func() domain.CreateProductRequest {
				return validRequest
			},
			setup: func(r repos) {
				r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				r.categories.EXPECT().GetByID(gomock.Any(), "tenant-1", "cat-1").Return(&domain.Category{ID: "cat-1"}, nil)
				r.products.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, product *domain.Product) (*domain.Product, error) {
						assert.Equal(t, "tenant-1", product.TenantID)
						assert.Equal(t, "Camiseta Azul", product.Name)
						assert.Equal(t, "camiseta-azul", product.Slug)
						assert.True(t, product.Price.Equal(decimal.NewFromInt(50)))
						assert.True(t, product.Active)
						product.ID = "prod-1"
						return product, nil
					})
			},
		},
		{
			name:   "preço zero",
			claims: owner,
			request: func() domain.CreateProductRequest {
				req := validRequest
				req.Price = decimal.Zero
				return req
			},
			setup:       func(r repos) {},
			expectedErr: ErrInvalidPrice,
			code:        apiErrors.ErrInvalidPrice,
		},
		{
			name:   "preço comparativo negativo",
			claims: owner,
			request: func() domain.CreateProductRequest {
				req := validRequest
				req.CompareAtPrice = &negative
				return req
			},
			setup:       func(r repos) {},
			expectedErr: ErrInvalidPrice,
			code:        apiErrors.ErrInvalidPrice,
		},
		{
			name:   "categoria de outra loja",
			claims: owner,
			request: func() domain.CreateProductRequest {
				return validRequest
			},
			setup: func(r repos) {
				r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				r.categories.EXPECT().GetByID(gomock.Any(), "tenant-1", "cat-1").Return(nil, nil)
			},
			expectedErr: ErrCategoryNotFound,
			code:        apiErrors.ErrCategoryNotFound,
		},
		{
			name:   "vendedor que não é dono",
			claims: stranger,
			request: func() domain.CreateProductRequest {
				return validRequest
			},
			setup: func(r repos) {
				r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			},
			expectedErr: ErrNotOwner,
			code:        apiErrors.ErrTenantNotOwned,
		},
		{
			name:   "slug de produto repetido",
			claims: owner,
			request: func() domain.CreateProductRequest {
				req := validRequest
				req.CategoryID = nil
				return req
			},
			setup: func(r repos) {
				r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				r.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrSlugTaken)
			},
			expectedErr: ErrSlugTaken,
			code:        apiErrors.ErrCatalogSlugTaken,
		},
		{
			name:   "loja inexistente",
			claims: owner,
			request: func() domain.CreateProductRequest {
				return validRequest
			},
			setup: func(r repos) {
				r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(nil, nil)
			},
			expectedErr: ErrTenantNotFound,
			code:        apiErrors.ErrTenantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := newService(t)
			tt.setup(r)

			product, err := service.CreateProduct(context.Background(), tt.claims, "loja-da-ana", tt.request())
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "prod-1", product.ID)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var catErr *CatalogError
			require.ErrorAs(t, err, &catErr)
			assert.Equal(t, tt.code, catErr.Code)
		})
	}
}

func TestCreateCategory_SlugTaken(t *testing.T) {
	service, r := newService(t)
	r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
	r.categories.EXPECT().Create(gomock.Any(), &domain.Category{
		TenantID: "tenant-1",
		Name:     "Camisetas",
		Slug:     "camisetas",
	}).Return(nil, repository.ErrSlugTaken)

	_, err := service.CreateCategory(context.Background(), owner, "loja-da-ana", domain.CreateCategoryRequest{
		Name: "Camisetas",
		Slug: "Camisetas",
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestListProducts_Filter(t *testing.T) {
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(100)

	tests := []struct {
		name     string
		query    ProductQuery
		expected repository.ProductFilter
	}{
		{
			name:  "página padrão",
			query: ProductQuery{},
			expected: repository.ProductFilter{
				TenantID:   "tenant-1",
				ActiveOnly: true,
				Limit:      24,
				Offset:     0,
			},
		},
		{
			name: "terceira página com filtros",
			query: ProductQuery{
				MinPrice: &minPrice,
				MaxPrice: &maxPrice,
				Search:   "azul",
				InStock:  true,
				Sort:     domain.SortPriceAsc,
				Page:     3,
				PageSize: 10,
			},
			expected: repository.ProductFilter{
				TenantID:   "tenant-1",
				MinPrice:   &minPrice,
				MaxPrice:   &maxPrice,
				Search:     "azul",
				InStock:    true,
				ActiveOnly: true,
				Sort:       domain.SortPriceAsc,
				Limit:      10,
				Offset:     20,
			},
		},
		{
			name:  "tamanho de página acima do máximo",
			query: ProductQuery{Page: 2, PageSize: 500},
			expected: repository.ProductFilter{
				TenantID:   "tenant-1",
				ActiveOnly: true,
				Limit:      100,
				Offset:     100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := newService(t)
			r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			r.products.EXPECT().List(gomock.Any(), tt.expected).Return([]*domain.Product{{ID: "prod-1"}}, nil)

			products, err := service.ListProducts(context.Background(), "loja-da-ana", tt.query)
			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}
}

func TestListProducts_InvalidPriceRange(t *testing.T) {
	service, _ := newService(t)

	minPrice := decimal.NewFromInt(100)
	maxPrice := decimal.NewFromInt(10)

	_, err := service.ListProducts(context.Background(), "loja-da-ana", ProductQuery{MinPrice: &minPrice, MaxPrice: &maxPrice})
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
}

func TestGetProduct(t *testing.T) {
	service, r := newService(t)
	r.tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil).Times(3)
	r.products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(&domain.Product{ID: "prod-1", Active: true}, nil)
	r.products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-2").Return(&domain.Product{ID: "prod-2", Active: false}, nil)
	r.products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-3").Return(nil, nil)

	product, err := service.GetProduct(context.Background(), "loja-da-ana", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)

	_, err = service.GetProduct(context.Background(), "loja-da-ana", "prod-2")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = service.GetProduct(context.Background(), "loja-da-ana", "prod-3")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
