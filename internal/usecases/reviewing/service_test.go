package reviewing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var customer = &domain.Claims{UserID: 42, UserRoleID: domain.RoleCustomer}

func tenantFixture() *domain.Tenant {
	return &domain.Tenant{ID: "tenant-1", Slug: "loja-da-ana", OwnerUserID: 7}
}

func productFixture() *domain.Product {
	return &domain.Product{ID: "prod-1", TenantID: "tenant-1", Name: "Camiseta", Active: true}
}

func TestCreateReview(t *testing.T) {
	tests := []struct {
		name        string
		request     domain.CreateReviewRequest
		setup       func(*mocks.MockTenantRepository, *mocks.MockProductRepository, *mocks.MockReviewRepository)
		expectedErr error
		code        string
	}{
		{
			name:    "avaliação registrada",
			request: domain.CreateReviewRequest{Rating: 5, Comment: "  ótima  "},
			setup: func(tenants *mocks.MockTenantRepository, products *mocks.MockProductRepository, reviews *mocks.MockReviewRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(productFixture(), nil)
				reviews.EXPECT().Create(gomock.Any(), &domain.Review{
					TenantID:   "tenant-1",
					ProductID:  "prod-1",
					CustomerID: 42,
					Rating:     5,
					Comment:    "ótima",
				}).DoAndReturn(func(_ context.Context, review *domain.Review) (*domain.Review, error) {
					review.ID = "rev-1"
					return review, nil
				})
			},
		},
		{
			name:        "nota fora da escala",
			request:     domain.CreateReviewRequest{Rating: 6},
			setup:       func(*mocks.MockTenantRepository, *mocks.MockProductRepository, *mocks.MockReviewRepository) {},
			expectedErr: ErrInvalidRating,
			code:        apiErrors.ErrInvalidRequest,
		},
		{
			name:    "produto de outra loja",
			request: domain.CreateReviewRequest{Rating: 4},
			setup: func(tenants *mocks.MockTenantRepository, products *mocks.MockProductRepository, _ *mocks.MockReviewRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(nil, nil)
			},
			expectedErr: ErrProductNotFound,
			code:        apiErrors.ErrProductNotFound,
		},
		{
			name:    "segunda avaliação do mesmo cliente",
			request: domain.CreateReviewRequest{Rating: 3},
			setup: func(tenants *mocks.MockTenantRepository, products *mocks.MockProductRepository, reviews *mocks.MockReviewRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(productFixture(), nil)
				reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateReview)
			},
			expectedErr: ErrAlreadyReviewed,
			code:        apiErrors.ErrReviewDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenants := mocks.NewMockTenantRepository(ctrl)
			products := mocks.NewMockProductRepository(ctrl)
			reviews := mocks.NewMockReviewRepository(ctrl)
			tt.setup(tenants, products, reviews)

			service := NewService(tenants, products, reviews)

			review, err := service.CreateReview(context.Background(), customer, "loja-da-ana", "prod-1", tt.request)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "rev-1", review.ID)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var reviewErr *ReviewError
			require.ErrorAs(t, err, &reviewErr)
			assert.Equal(t, tt.code, reviewErr.Code)
		})
	}
}

func TestListReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	reviews := mocks.NewMockReviewRepository(ctrl)

	tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
	products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(productFixture(), nil)
	reviews.EXPECT().ListByProduct(gomock.Any(), "tenant-1", "prod-1", uint64(20)).Return([]*domain.Review{
		{ID: "rev-2", Rating: 4},
		{ID: "rev-1", Rating: 5},
		{ID: "rev-0", Rating: 4},
	}, nil)
	reviews.EXPECT().Summary(gomock.Any(), "tenant-1", "prod-1").Return(&domain.ReviewSummary{
		ProductID:     "prod-1",
		Count:         3,
		AverageRating: 4.333333,
	}, nil)

	service := NewService(tenants, products, reviews)

	result, err := service.ListReviews(context.Background(), "loja-da-ana", "prod-1", 0)
	require.NoError(t, err)
	assert.Len(t, result.Reviews, 3)
	assert.Equal(t, 3, result.Summary.Count)
	assert.Equal(t, 4.33, result.Summary.AverageRating)
}

func TestListReviews_InactiveProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)

	inactive := productFixture()
	inactive.Active = false

	tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
	products.EXPECT().GetByID(gomock.Any(), "tenant-1", "prod-1").Return(inactive, nil)

	service := NewService(tenants, products, mocks.NewMockReviewRepository(ctrl))

	_, err := service.ListReviews(context.Background(), "loja-da-ana", "prod-1", 10)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
