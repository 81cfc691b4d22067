package reporting

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	defaultTopProducts = 10
	maxTopProducts     = 50
)

type Reporter interface {
	GetMonthlySummary(ctx context.Context, claims *domain.Claims, slug, month, year string) (*domain.MonthlySalesSummary, error)
	GetAvailablePeriods(ctx context.Context, claims *domain.Claims, slug string) (*domain.AvailablePeriods, error)
	ListCategorySales(ctx context.Context, claims *domain.Claims, slug, month, year string) ([]*domain.CategorySalesSummary, error)
	ListTopProducts(ctx context.Context, claims *domain.Claims, slug, month, year string, limit int) ([]*domain.ProductMonthlySales, error)
}

type Service struct {
	tenantRepo  repository.TenantRepository
	summaryRepo repository.SalesSummaryRepository
}

func NewService(tenantRepo repository.TenantRepository, summaryRepo repository.SalesSummaryRepository) *Service {
	return &Service{
		tenantRepo:  tenantRepo,
		summaryRepo: summaryRepo,
	}
}

// GetMonthlySummary retorna o resumo do mês. Um mês sem vendas responde com totais zerados.
func (s *Service) GetMonthlySummary(ctx context.Context, claims *domain.Claims, slug, month, year string) (*domain.MonthlySalesSummary, error) {
	tenant, period, err := s.scope(ctx, claims, slug, month, year)
	if err != nil {
		return nil, err
	}

	summary, err := s.summaryRepo.GetMonthly(ctx, tenant.ID, period)
	if err != nil {
		logrus.WithError(err).WithField("tenant", slug).Error("reporting: erro ao buscar resumo mensal")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}
	if summary == nil {
		return domain.NewMonthlySalesSummary(tenant.ID, period), nil
	}

	return summary, nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context, claims *domain.Claims, slug string) (*domain.AvailablePeriods, error) {
	tenant, err := s.managedTenant(ctx, claims, slug)
	if err != nil {
		return nil, err
	}

	periods, err := s.summaryRepo.GetAvailablePeriods(ctx, tenant.ID)
	if err != nil {
		logrus.WithError(err).WithField("tenant", slug).Error("reporting: erro ao buscar períodos disponíveis")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}

	return domain.NewAvailablePeriods(periods), nil
}

func (s *Service) ListCategorySales(ctx context.Context, claims *domain.Claims, slug, month, year string) ([]*domain.CategorySalesSummary, error) {
	tenant, period, err := s.scope(ctx, claims, slug, month, year)
	if err != nil {
		return nil, err
	}

	sales, err := s.summaryRepo.ListCategorySales(ctx, tenant.ID, period)
	if err != nil {
		logrus.WithError(err).WithField("tenant", slug).Error("reporting: erro ao listar vendas por categoria")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}
	return sales, nil
}

func (s *Service) ListTopProducts(ctx context.Context, claims *domain.Claims, slug, month, year string, limit int) ([]*domain.ProductMonthlySales, error) {
	tenant, period, err := s.scope(ctx, claims, slug, month, year)
	if err != nil {
		return nil, err
	}

	limit = utils.ClampInt(limit, defaultTopProducts, maxTopProducts)

	products, err := s.summaryRepo.ListTopProducts(ctx, tenant.ID, period, uint64(limit))
	if err != nil {
		logrus.WithError(err).WithField("tenant", slug).Error("reporting: erro ao listar produtos mais vendidos")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "")
	}
	return products, nil
}

func (s *Service) scope(ctx context.Context, claims *domain.Claims, slug, month, year string) (*domain.Tenant, domain.SalesPeriod, error) {
	period, err := domain.ParsePeriod(month, year)
	if err != nil {
		return nil, domain.SalesPeriod{}, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, slug, err.Error())
	}

	tenant, err := s.managedTenant(ctx, claims, slug)
	if err != nil {
		return nil, domain.SalesPeriod{}, err
	}
	return tenant, period, nil
}

func (s *Service) managedTenant(ctx context.Context, claims *domain.Claims, slug string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, slug, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewReportError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, slug, "")
	}
	if !tenant.ManagedBy(claims) {
		return nil, NewReportError(ErrNotOwner, apiErrors.ErrTenantNotOwned, slug, "")
	}
	return tenant, nil
}
