package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	owner    = &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	stranger = &domain.Claims{UserID: 8, UserRoleID: domain.RoleSeller}
	admin    = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	march = domain.SalesPeriod{Month: "03", Year: "2024"}
)

func tenantFixture() *domain.Tenant {
	return &domain.Tenant{ID: "tenant-1", Slug: "loja-da-ana", OwnerUserID: 7}
}

func TestGetMonthlySummary(t *testing.T) {
	tests := []struct {
		name        string
		claims      *domain.Claims
		month       string
		setup       func(*mocks.MockTenantRepository, *mocks.MockSalesSummaryRepository)
		expected    *domain.MonthlySalesSummary
		expectedErr error
		code        string
	}{
		{
			name:   "dono consulta o resumo",
			claims: owner,
			month:  "03",
			setup: func(tenants *mocks.MockTenantRepository, summaries *mocks.MockSalesSummaryRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				summaries.EXPECT().GetMonthly(gomock.Any(), "tenant-1", march).Return(&domain.MonthlySalesSummary{
					TenantID:    "tenant-1",
					Month:       "03",
					Year:        "2024",
					TotalOrders: 2,
				}, nil)
			},
			expected: &domain.MonthlySalesSummary{TenantID: "tenant-1", Month: "03", Year: "2024", TotalOrders: 2},
		},
		{
			name:   "mês sem vendas responde zerado",
			claims: admin,
			month:  "03",
			setup: func(tenants *mocks.MockTenantRepository, summaries *mocks.MockSalesSummaryRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				summaries.EXPECT().GetMonthly(gomock.Any(), "tenant-1", march).Return(nil, nil)
			},
			expected: domain.NewMonthlySalesSummary("tenant-1", march),
		},
		{
			name:        "mês inválido",
			claims:      owner,
			month:       "13",
			setup:       func(*mocks.MockTenantRepository, *mocks.MockSalesSummaryRepository) {},
			expectedErr: ErrInvalidPeriod,
			code:        apiErrors.ErrInvalidFormat,
		},
		{
			name:   "vendedor de outra loja",
			claims: stranger,
			month:  "03",
			setup: func(tenants *mocks.MockTenantRepository, _ *mocks.MockSalesSummaryRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			},
			expectedErr: ErrNotOwner,
			code:        apiErrors.ErrTenantNotOwned,
		},
		{
			name:   "falha no banco",
			claims: owner,
			month:  "03",
			setup: func(tenants *mocks.MockTenantRepository, summaries *mocks.MockSalesSummaryRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				summaries.EXPECT().GetMonthly(gomock.Any(), "tenant-1", march).Return(nil, errors.New("connection reset"))
			},
			expectedErr: ErrDatabaseOperation,
			code:        apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenants := mocks.NewMockTenantRepository(ctrl)
			summaries := mocks.NewMockSalesSummaryRepository(ctrl)
			tt.setup(tenants, summaries)

			service := NewService(tenants, summaries)

			summary, err := service.GetMonthlySummary(context.Background(), tt.claims, "loja-da-ana", tt.month, "2024")
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.TotalOrders, summary.TotalOrders)
				assert.Equal(t, tt.expected.Period(), summary.Period())
				assert.True(t, tt.expected.NetSales.Equal(summary.NetSales))
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var reportErr *ReportError
			require.ErrorAs(t, err, &reportErr)
			assert.Equal(t, tt.code, reportErr.Code)
		})
	}
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantRepository(ctrl)
	summaries := mocks.NewMockSalesSummaryRepository(ctrl)

	tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
	summaries.EXPECT().GetAvailablePeriods(gomock.Any(), "tenant-1").Return([]domain.SalesPeriod{
		{Month: "04", Year: "2024"},
		{Month: "03", Year: "2024"},
		{Month: "03", Year: "2023"},
	}, nil)

	service := NewService(tenants, summaries)

	periods, err := service.GetAvailablePeriods(context.Background(), owner, "Loja-Da-Ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"04-2024", "03-2024", "03-2023"}, periods.Periods)
	assert.Equal(t, []string{"2024", "2023"}, periods.Years)
	assert.Equal(t, []string{"04", "03"}, periods.Months)
}

func TestListTopProducts_Limit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected uint64
	}{
		{name: "padrão", limit: 0, expected: 10},
		{name: "informado", limit: 5, expected: 5},
		{name: "acima do máximo", limit: 1000, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenants := mocks.NewMockTenantRepository(ctrl)
			summaries := mocks.NewMockSalesSummaryRepository(ctrl)

			tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			summaries.EXPECT().ListTopProducts(gomock.Any(), "tenant-1", march, tt.expected).Return([]*domain.ProductMonthlySales{
				{ProductID: "prod-1", QuantitySold: 3, GrossSales: decimal.NewFromInt(150)},
			}, nil)

			service := NewService(tenants, summaries)

			products, err := service.ListTopProducts(context.Background(), owner, "loja-da-ana", "03", "2024", tt.limit)
			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}
}

func TestListCategorySales_TenantNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantRepository(ctrl)
	tenants.EXPECT().GetBySlug(gomock.Any(), "nao-existe").Return(nil, nil)

	service := NewService(tenants, mocks.NewMockSalesSummaryRepository(ctrl))

	_, err := service.ListCategorySales(context.Background(), owner, "nao-existe", "03", "2024")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
