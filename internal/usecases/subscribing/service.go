package subscribing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/payment"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Subscriber interface {
	ListPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	Subscribe(ctx context.Context, claims *domain.Claims, slug string, req domain.SubscribeRequest) (*domain.Subscription, error)
}

type Service struct {
	tenantRepo repository.TenantRepository
	planRepo   repository.SubscriptionPlanRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewService(tenantRepo repository.TenantRepository, planRepo repository.SubscriptionPlanRepository, cfg *config.Config) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		planRepo:   planRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) ListPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("subscription: erro ao listar planos")
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "")
	}
	return plans, nil
}

// Subscribe ativa o plano depois de validar a assinatura do pagamento. A renovação
// fica para um mês após a confirmação.
func (s *Service) Subscribe(ctx context.Context, claims *domain.Claims, slug string, req domain.SubscribeRequest) (*domain.Subscription, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewSubscriptionError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, slug, "")
	}
	if !tenant.ManagedBy(claims) {
		return nil, NewSubscriptionError(ErrNotOwner, apiErrors.ErrTenantNotOwned, slug, "")
	}

	logger := logrus.WithFields(logrus.Fields{"tenant": slug, "plan": req.PlanCode})

	err = payment.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature, s.cfg.Payment.KeySecret)
	if errors.Is(err, payment.ErrSecretNotConfigured) {
		logger.Error("subscription: segredo do gateway não configurado")
		return nil, NewSubscriptionError(ErrGatewayNotConfigured, apiErrors.ErrPaymentNotConfigured, slug, "")
	}
	if err != nil {
		logger.Warn("subscription: assinatura do pagamento inválida")
		return nil, NewSubscriptionError(ErrInvalidSignature, apiErrors.ErrPaymentInvalidSignature, slug, "")
	}

	plan, err := s.planRepo.GetByCode(ctx, req.PlanCode)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "erro ao buscar plano")
	}
	if plan == nil || !plan.Active {
		return nil, NewSubscriptionError(ErrPlanNotFound, apiErrors.ErrPlanNotFound, slug, req.PlanCode)
	}

	renewsAt := s.now().UTC().AddDate(0, 1, 0)

	err = s.tenantRepo.ActivateSubscription(ctx, domain.ActivateSubscriptionParams{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		RenewsAt: renewsAt,
	})
	if err != nil {
		logger.WithError(err).Error("subscription: erro ao ativar assinatura")
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}

	logger.WithField("renews_at", renewsAt.Format(time.RFC3339)).Info("subscription: assinatura ativada")

	return &domain.Subscription{
		TenantID: tenant.ID,
		PlanCode: plan.Code,
		Status:   domain.SubscriptionActive,
		RenewsAt: renewsAt,
	}, nil
}
