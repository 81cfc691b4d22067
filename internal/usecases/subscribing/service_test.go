package subscribing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/payment"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const secret = "segredo-de-teste"

var (
	owner    = &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	stranger = &domain.Claims{UserID: 8, UserRoleID: domain.RoleSeller}
)

func tenantFixture() *domain.Tenant {
	return &domain.Tenant{ID: "tenant-1", Slug: "loja-da-ana", OwnerUserID: 7}
}

func planFixture() *domain.SubscriptionPlan {
	return &domain.SubscriptionPlan{ID: "plan-1", Code: "pro", MonthlyPrice: decimal.NewFromInt(99), Active: true}
}

func signedRequest() domain.SubscribeRequest {
	return domain.SubscribeRequest{
		PlanCode:         "pro",
		GatewayOrderID:   "order_sub_1",
		GatewayPaymentID: "pay_sub_1",
		Signature:        payment.Sign("order_sub_1", "pay_sub_1", secret),
	}
}

func newConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Payment.KeySecret = secret
	return cfg
}

func TestSubscribe(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		claims      *domain.Claims
		secret      string
		request     func() domain.SubscribeRequest
		setup       func(*mocks.MockTenantRepository, *mocks.MockSubscriptionPlanRepository)
		expectedErr error
		code        string
	}{
		{
			name:    "assinatura ativada",
			claims:  owner,
			secret:  secret,
			request: signedRequest,
			setup: func(tenants *mocks.MockTenantRepository, plans *mocks.MockSubscriptionPlanRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				plans.EXPECT().GetByCode(gomock.Any(), "pro").Return(planFixture(), nil)
				tenants.EXPECT().ActivateSubscription(gomock.Any(), domain.ActivateSubscriptionParams{
					TenantID: "tenant-1",
					PlanID:   "plan-1",
					RenewsAt: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
				}).Return(nil)
			},
		},
		{
			name:   "assinatura do pagamento adulterada",
			claims: owner,
			secret: secret,
			request: func() domain.SubscribeRequest {
				req := signedRequest()
				req.GatewayPaymentID = "pay_outro"
				return req
			},
			setup: func(tenants *mocks.MockTenantRepository, _ *mocks.MockSubscriptionPlanRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			},
			expectedErr: ErrInvalidSignature,
			code:        apiErrors.ErrPaymentInvalidSignature,
		},
		{
			name:    "segredo ausente",
			claims:  owner,
			request: signedRequest,
			setup: func(tenants *mocks.MockTenantRepository, _ *mocks.MockSubscriptionPlanRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			},
			expectedErr: ErrGatewayNotConfigured,
			code:        apiErrors.ErrPaymentNotConfigured,
		},
		{
			name:    "plano inexistente",
			claims:  owner,
			secret:  secret,
			request: signedRequest,
			setup: func(tenants *mocks.MockTenantRepository, plans *mocks.MockSubscriptionPlanRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				plans.EXPECT().GetByCode(gomock.Any(), "pro").Return(nil, nil)
			},
			expectedErr: ErrPlanNotFound,
			code:        apiErrors.ErrPlanNotFound,
		},
		{
			name:    "vendedor de outra loja",
			claims:  stranger,
			secret:  secret,
			request: signedRequest,
			setup: func(tenants *mocks.MockTenantRepository, _ *mocks.MockSubscriptionPlanRepository) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
			},
			expectedErr: ErrNotOwner,
			code:        apiErrors.ErrTenantNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenants := mocks.NewMockTenantRepository(ctrl)
			plans := mocks.NewMockSubscriptionPlanRepository(ctrl)
			tt.setup(tenants, plans)

			service := NewService(tenants, plans, newConfig(tt.secret))
			service.now = func() time.Time { return now }

			subscription, err := service.Subscribe(context.Background(), tt.claims, "loja-da-ana", tt.request())
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, domain.SubscriptionActive, subscription.Status)
				assert.Equal(t, "pro", subscription.PlanCode)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var subErr *SubscriptionError
			require.ErrorAs(t, err, &subErr)
			assert.Equal(t, tt.code, subErr.Code)
		})
	}
}

func TestListPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := mocks.NewMockSubscriptionPlanRepository(ctrl)
	plans.EXPECT().ListActive(gomock.Any()).Return([]*domain.SubscriptionPlan{planFixture()}, nil)

	service := NewService(mocks.NewMockTenantRepository(ctrl), plans, newConfig(secret))

	result, err := service.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
