package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// ProductQuery são os filtros aceitos na vitrine
type ProductQuery struct {
	CategoryID *string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	InStock    bool
	Sort       domain.ProductSort
	Page       int
	PageSize   int
}

type Cataloger interface {
	CreateCategory(ctx context.Context, claims *domain.Claims, slug string, req domain.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, slug string) ([]*domain.Category, error)
	CreateProduct(ctx context.Context, claims *domain.Claims, slug string, req domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, slug string, query ProductQuery) ([]*domain.Product, error)
	GetProduct(ctx context.Context, slug, productID string) (*domain.Product, error)
}

type Service struct {
	tenantRepo   repository.TenantRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewService(
	tenantRepo repository.TenantRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) *Service {
	return &Service{
		tenantRepo:   tenantRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *Service) CreateCategory(ctx context.Context, claims *domain.Claims, slug string, req domain.CreateCategoryRequest) (*domain.Category, error) {
	tenant, err := s.managedTenant(ctx, claims, slug)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Create(ctx, &domain.Category{
		TenantID: tenant.ID,
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.ToLower(strings.TrimSpace(req.Slug)),
	})
	if errors.Is(err, repository.ErrSlugTaken) {
		return nil, NewCatalogError(ErrSlugTaken, apiErrors.ErrCatalogSlugTaken, req.Slug)
	}
	if err != nil {
		logrus.WithError(err).Error("catalog: erro ao criar categoria")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, slug string) ([]*domain.Category, error) {
	tenant, err := s.tenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx, tenant.ID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao listar categorias")
	}
	return categories, nil
}

func (s *Service) CreateProduct(ctx context.Context, claims *domain.Claims, slug string, req domain.CreateProductRequest) (*domain.Product, error) {
	if !req.Price.IsPositive() {
		return nil, NewCatalogError(ErrInvalidPrice, apiErrors.ErrInvalidPrice, "o preço deve ser maior que zero")
	}
	if req.CompareAtPrice != nil && req.CompareAtPrice.IsNegative() {
		return nil, NewCatalogError(ErrInvalidPrice, apiErrors.ErrInvalidPrice, "o preço comparativo não pode ser negativo")
	}

	tenant, err := s.managedTenant(ctx, claims, slug)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, tenant.ID, *req.CategoryID)
		if err != nil {
			return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar categoria")
		}
		if category == nil {
			return nil, NewCatalogError(ErrCategoryNotFound, apiErrors.ErrCategoryNotFound, *req.CategoryID)
		}
	}

	product, err := s.productRepo.Create(ctx, &domain.Product{
		TenantID:       tenant.ID,
		CategoryID:     req.CategoryID,
		Name:           strings.TrimSpace(req.Name),
		Slug:           strings.ToLower(strings.TrimSpace(req.Slug)),
		Description:    req.Description,
		Price:          req.Price.Round(2),
		CompareAtPrice: req.CompareAtPrice,
		Stock:          req.Stock,
		Active:         true,
	})
	if errors.Is(err, repository.ErrSlugTaken) {
		return nil, NewCatalogError(ErrSlugTaken, apiErrors.ErrCatalogSlugTaken, req.Slug)
	}
	if err != nil {
		logrus.WithError(err).Error("catalog: erro ao criar produto")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	return product, nil
}

// ListProducts lista apenas produtos ativos da loja
func (s *Service) ListProducts(ctx context.Context, slug string, query ProductQuery) ([]*domain.Product, error) {
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return nil, NewCatalogError(ErrInvalidPriceRange, apiErrors.ErrInvalidRequest, "")
	}

	tenant, err := s.tenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx, query.filter(tenant.ID))
	if err != nil {
		logrus.WithError(err).Error("catalog: erro ao listar produtos")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao listar produtos")
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, slug, productID string) (*domain.Product, error) {
	tenant, err := s.tenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, tenant.ID, productID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar produto")
	}
	if product == nil || !product.Active {
		return nil, NewCatalogError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID)
	}
	return product, nil
}

func (q ProductQuery) filter(tenantID string) repository.ProductFilter {
	pageSize := utils.ClampInt(q.PageSize, defaultPageSize, maxPageSize)
	page := q.Page
	if page < 1 {
		page = 1
	}

	return repository.ProductFilter{
		TenantID:   tenantID,
		CategoryID: q.CategoryID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Search:     q.Search,
		InStock:    q.InStock,
		ActiveOnly: true,
		Sort:       q.Sort,
		Limit:      uint64(pageSize),
		Offset:     uint64((page - 1) * pageSize),
	}
}

func (s *Service) tenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewCatalogError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, slug)
	}
	return tenant, nil
}

func (s *Service) managedTenant(ctx context.Context, claims *domain.Claims, slug string) (*domain.Tenant, error) {
	tenant, err := s.tenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !tenant.ManagedBy(claims) {
		return nil, NewCatalogError(ErrNotOwner, apiErrors.ErrTenantNotOwned, slug)
	}
	return tenant, nil
}
