package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify"
	bankmocks "github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify/mocks"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	owner    = &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	stranger = &domain.Claims{UserID: 8, UserRoleID: domain.RoleSeller}
	admin    = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	bankDetails = domain.BankDetailsRequest{
		AccountNumber: "1234567890",
		IFSC:          "HDFC0001234",
		AccountHolder: "Ana Souza",
	}
)

func tenantFixture() *domain.Tenant {
	return &domain.Tenant{
		ID:                 "tenant-1",
		Slug:               "loja-da-ana",
		StoreName:          "Loja da Ana",
		Template:           "classic",
		OwnerUserID:        7,
		SubscriptionStatus: domain.SubscriptionActive,
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		valid    bool
	}{
		{raw: "Loja da Ana", expected: "loja-da-ana", valid: true},
		{raw: "  MODA_praia  ", expected: "moda-praia", valid: true},
		{raw: "loja-2024", expected: "loja-2024", valid: true},
		{raw: "ab", valid: false},
		{raw: "-loja", valid: false},
		{raw: "loja--ana", valid: false},
		{raw: "loja!", valid: false},
		{raw: "admin", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			slug, err := NormalizeSlug(tt.raw)
			if !tt.valid {
				assert.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slug)
		})
	}
}

func TestCreateTenant(t *testing.T) {
	t.Run("cria loja inativa com slug normalizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tenants := mocks.NewMockTenantRepository(ctrl)

		tenants.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
				assert.Equal(t, "loja-da-ana", tenant.Slug)
				assert.Equal(t, "Loja da Ana", tenant.StoreName)
				assert.Equal(t, defaultTemplate, tenant.Template)
				assert.Equal(t, 7, tenant.OwnerUserID)
				assert.Equal(t, domain.SubscriptionInactive, tenant.SubscriptionStatus)
				tenant.ID = "tenant-1"
				return tenant, nil
			})

		service := NewService(tenants, bankmocks.NewMockBankVerifier(ctrl))

		tenant, err := service.CreateTenant(context.Background(), owner, domain.CreateTenantRequest{
			Slug:      "Loja da Ana",
			StoreName: " Loja da Ana ",
		})
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", tenant.ID)
	})

	t.Run("slug já utilizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tenants := mocks.NewMockTenantRepository(ctrl)
		tenants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrSlugTaken)

		service := NewService(tenants, bankmocks.NewMockBankVerifier(ctrl))

		_, err := service.CreateTenant(context.Background(), owner, domain.CreateTenantRequest{Slug: "loja-da-ana", StoreName: "Ana"})
		assert.ErrorIs(t, err, ErrSlugTaken)

		var sfErr *StorefrontError
		require.ErrorAs(t, err, &sfErr)
		assert.Equal(t, apiErrors.ErrTenantSlugTaken, sfErr.Code)
	})

	t.Run("slug inválido não chega ao banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockTenantRepository(ctrl), bankmocks.NewMockBankVerifier(ctrl))

		_, err := service.CreateTenant(context.Background(), owner, domain.CreateTenantRequest{Slug: "a!", StoreName: "Ana"})
		assert.ErrorIs(t, err, ErrInvalidSlug)
	})
}

func TestGetPublicTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantRepository(ctrl)

	tenant := tenantFixture()
	tenant.BankVerified = true
	tenant.BankAccountNumber = &bankDetails.AccountNumber

	tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenant, nil)
	tenants.EXPECT().GetBySlug(gomock.Any(), "nao-existe").Return(nil, nil)

	service := NewService(tenants, bankmocks.NewMockBankVerifier(ctrl))

	public, err := service.GetPublicTenant(context.Background(), "Loja-Da-Ana")
	require.NoError(t, err)
	assert.Equal(t, &domain.PublicTenant{Slug: "loja-da-ana", StoreName: "Loja da Ana", Template: "classic", Open: true}, public)

	_, err = service.GetPublicTenant(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestGetManagedTenant_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		claims  *domain.Claims
		allowed bool
	}{
		{name: "dono", claims: owner, allowed: true},
		{name: "administrador", claims: admin, allowed: true},
		{name: "outro vendedor", claims: stranger, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenants := mocks.NewMockTenantRepository(ctrl)
			tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)

			service := NewService(tenants, bankmocks.NewMockBankVerifier(ctrl))

			tenant, err := service.GetManagedTenant(context.Background(), tt.claims, "loja-da-ana")
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "tenant-1", tenant.ID)
				return
			}
			assert.ErrorIs(t, err, ErrNotOwner)
		})
	}
}

func TestSubmitBankDetails(t *testing.T) {
	verifiedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		claims      *domain.Claims
		setup       func(*mocks.MockTenantRepository, *bankmocks.MockBankVerifier)
		expectedErr error
		code        string
	}{
		{
			name:   "conta confirmada marca a loja como verificada",
			claims: owner,
			setup: func(tenants *mocks.MockTenantRepository, verifier *bankmocks.MockBankVerifier) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				tenants.EXPECT().UpdateBankDetails(gomock.Any(), "tenant-1", bankDetails).Return(nil)
				verifier.EXPECT().Verify(gomock.Any(), bankDetails).Return(&domain.BankVerificationResult{
					Verified:         true,
					NameMatch:        true,
					PaymentAccountID: "fa_123",
				}, nil)
				tenants.EXPECT().MarkBankVerified(gomock.Any(), "tenant-1", "fa_123", verifiedAt).Return(nil)
			},
		},
		{
			name:   "titular divergente não marca a loja",
			claims: owner,
			setup: func(tenants *mocks.MockTenantRepository, verifier *bankmocks.MockBankVerifier) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				tenants.EXPECT().UpdateBankDetails(gomock.Any(), "tenant-1", bankDetails).Return(nil)
				verifier.EXPECT().Verify(gomock.Any(), bankDetails).Return(&domain.BankVerificationResult{
					Verified:       false,
					NameMatch:      false,
					RegisteredName: "Outra Pessoa",
				}, nil)
			},
			expectedErr: ErrBankVerificationFailed,
			code:        apiErrors.ErrBankVerificationFailed,
		},
		{
			name:   "provedor não configurado",
			claims: admin,
			setup: func(tenants *mocks.MockTenantRepository, verifier *bankmocks.MockBankVerifier) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				tenants.EXPECT().UpdateBankDetails(gomock.Any(), "tenant-1", bankDetails).Return(nil)
				verifier.EXPECT().Verify(gomock.Any(), bankDetails).Return(nil, bankverify.ErrNotConfigured)
			},
			expectedErr: ErrBankNotConfigured,
			code:        apiErrors.ErrBankNotConfigured,
		},
		{
			name:   "falha do provedor",
			claims: owner,
			setup: func(tenants *mocks.MockTenantRepository, verifier *bankmocks.MockBankVerifier) {
				tenants.EXPECT().GetBySlug(gomock.Any(), "loja-da-ana").Return(tenantFixture(), nil)
				tenants.EXPECT().UpdateBankDetails(gomock.Any(), "tenant-1", bankDetails).Return(nil)
				verifier.EXPECT().Verify(gomock.Any(), bankDetails).Return(nil, errors.New("502 bad gateway"))
			},
			expectedErr: ErrBankProvider,
			code:        apiErrors.ErrExternalService,
		},
		{
			name:   "outro vendedor não altera dados bancários",
			claims: stranger,
			setup: func(tenants *mocks.MockTenantRepository, _ *bankmocks.MockBankVerifier) {
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
			verifier := bankmocks.NewMockBankVerifier(ctrl)
			tt.setup(tenants, verifier)

			service := NewService(tenants, verifier)
			service.now = func() time.Time { return verifiedAt }

			result, err := service.SubmitBankDetails(context.Background(), tt.claims, "loja-da-ana", bankDetails)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.True(t, result.Verified)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var sfErr *StorefrontError
			require.ErrorAs(t, err, &sfErr)
			assert.Equal(t, tt.code, sfErr.Code)
		})
	}
}
