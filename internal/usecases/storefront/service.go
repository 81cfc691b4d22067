package storefront

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const defaultTemplate = "classic"

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugSeparator = regexp.MustCompile(`[\s_]+`)

	reservedSlugs = map[string]bool{
		"admin":    true,
		"api":      true,
		"app":      true,
		"checkout": true,
		"login":    true,
		"static":   true,
		"www":      true,
	}
)

type Storefronter interface {
	CreateTenant(ctx context.Context, claims *domain.Claims, req domain.CreateTenantRequest) (*domain.Tenant, error)
	GetPublicTenant(ctx context.Context, slug string) (*domain.PublicTenant, error)
	GetManagedTenant(ctx context.Context, claims *domain.Claims, slug string) (*domain.Tenant, error)
	ListMyTenants(ctx context.Context, claims *domain.Claims) ([]*domain.Tenant, error)
	SubmitBankDetails(ctx context.Context, claims *domain.Claims, slug string, details domain.BankDetailsRequest) (*domain.BankVerificationResult, error)
}

type Service struct {
	tenantRepo repository.TenantRepository
	verifier   bankverify.BankVerifier
	now        func() time.Time
}

func NewService(tenantRepo repository.TenantRepository, verifier bankverify.BankVerifier) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		verifier:   verifier,
		now:        time.Now,
	}
}

// NormalizeSlug converte o nome escolhido pelo vendedor em um slug de URL
func NormalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = slugSeparator.ReplaceAllString(slug, "-")

	if len(slug) < 3 || len(slug) > 63 || !slugPattern.MatchString(slug) {
		return "", ErrInvalidSlug
	}
	if reservedSlugs[slug] {
		return "", ErrInvalidSlug
	}

	return slug, nil
}

func (s *Service) CreateTenant(ctx context.Context, claims *domain.Claims, req domain.CreateTenantRequest) (*domain.Tenant, error) {
	slug, err := NormalizeSlug(req.Slug)
	if err != nil {
		return nil, NewStorefrontError(ErrInvalidSlug, apiErrors.ErrTenantInvalidSlug, req.Slug, "use letras minúsculas, números e hífens (3 a 63 caracteres)")
	}

	storeName := strings.TrimSpace(req.StoreName)
	if storeName == "" {
		return nil, NewStorefrontError(ErrMissingStoreName, apiErrors.ErrMissingRequiredData, slug, "")
	}

	template := strings.TrimSpace(req.Template)
	if template == "" {
		template = defaultTemplate
	}

	tenant, err := s.tenantRepo.Create(ctx, &domain.Tenant{
		Slug:               slug,
		StoreName:          storeName,
		Template:           template,
		OwnerUserID:        claims.UserID,
		SubscriptionStatus: domain.SubscriptionInactive,
	})
	if errors.Is(err, repository.ErrSlugTaken) {
		return nil, NewStorefrontError(ErrSlugTaken, apiErrors.ErrTenantSlugTaken, slug, "")
	}
	if err != nil {
		logrus.WithError(err).Error("storefront: erro ao criar loja")
		return nil, NewStorefrontError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}

	logrus.WithFields(logrus.Fields{"tenant": slug, "owner": claims.UserID}).Info("storefront: loja criada")
	return tenant, nil
}

// GetPublicTenant usa a leitura em cache; a projeção pública não expõe dados bancários
func (s *Service) GetPublicTenant(ctx context.Context, slug string) (*domain.PublicTenant, error) {
	tenant, err := s.findTenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return tenant.Public(), nil
}

func (s *Service) GetManagedTenant(ctx context.Context, claims *domain.Claims, slug string) (*domain.Tenant, error) {
	tenant, err := s.findTenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !tenant.ManagedBy(claims) {
		return nil, NewStorefrontError(ErrNotOwner, apiErrors.ErrTenantNotOwned, slug, "")
	}
	return tenant, nil
}

func (s *Service) ListMyTenants(ctx context.Context, claims *domain.Claims) ([]*domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListByOwner(ctx, claims.UserID)
	if err != nil {
		return nil, NewStorefrontError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "erro ao listar lojas")
	}
	return tenants, nil
}

// SubmitBankDetails grava os dados bancários, consulta o provedor e marca a loja
// como verificada quando o titular confere
func (s *Service) SubmitBankDetails(ctx context.Context, claims *domain.Claims, slug string, details domain.BankDetailsRequest) (*domain.BankVerificationResult, error) {
	tenant, err := s.GetManagedTenant(ctx, claims, slug)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithField("tenant", slug)

	if err := s.tenantRepo.UpdateBankDetails(ctx, tenant.ID, details); err != nil {
		logger.WithError(err).Error("storefront: erro ao gravar dados bancários")
		return nil, NewStorefrontError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}

	result, err := s.verifier.Verify(ctx, details)
	if errors.Is(err, bankverify.ErrNotConfigured) {
		logger.Error("storefront: provedor de verificação bancária não configurado")
		return nil, NewStorefrontError(ErrBankNotConfigured, apiErrors.ErrBankNotConfigured, slug, "")
	}
	if err != nil {
		logger.WithError(err).Error("storefront: erro ao verificar conta bancária")
		return nil, NewStorefrontError(ErrBankProvider, apiErrors.ErrExternalService, slug, "")
	}

	if !result.Verified {
		logger.WithField("name_match", result.NameMatch).Warn("storefront: conta bancária não confirmada")
		return result, NewStorefrontError(ErrBankVerificationFailed, apiErrors.ErrBankVerificationFailed, slug, "titular não confere com a conta informada")
	}

	if err := s.tenantRepo.MarkBankVerified(ctx, tenant.ID, result.PaymentAccountID, s.now().UTC()); err != nil {
		logger.WithError(err).Error("storefront: erro ao marcar conta como verificada")
		return nil, NewStorefrontError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}

	logger.Info("storefront: conta bancária verificada")
	return result, nil
}

func (s *Service) findTenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		logrus.WithError(err).WithField("tenant", slug).Error("storefront: erro ao buscar loja")
		return nil, NewStorefrontError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}
	if tenant == nil {
		return nil, NewStorefrontError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, slug, "")
	}
	return tenant, nil
}
