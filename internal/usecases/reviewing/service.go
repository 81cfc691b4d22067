package reviewing

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	defaultReviewPage = 20
	maxReviewPage     = 100
)

type Reviewer interface {
	CreateReview(ctx context.Context, claims *domain.Claims, slug, productID string, req domain.CreateReviewRequest) (*domain.Review, error)
	ListReviews(ctx context.Context, slug, productID string, limit int) (*domain.ProductReviews, error)
}

type Service struct {
	tenantRepo  repository.TenantRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

func NewService(
	tenantRepo repository.TenantRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) *Service {
	return &Service{
		tenantRepo:  tenantRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *Service) CreateReview(ctx context.Context, claims *domain.Claims, slug, productID string, req domain.CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewReviewError(ErrInvalidRating, apiErrors.ErrInvalidRequest, productID, "")
	}

	product, err := s.activeProduct(ctx, slug, productID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		TenantID:   product.TenantID,
		ProductID:  product.ID,
		CustomerID: claims.UserID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	})
	if errors.Is(err, repository.ErrDuplicateReview) {
		return nil, NewReviewError(ErrAlreadyReviewed, apiErrors.ErrReviewDuplicate, productID, "")
	}
	if err != nil {
		logrus.WithError(err).WithField("product_id", productID).Error("reviewing: erro ao gravar avaliação")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "")
	}

	return review, nil
}

// ListReviews retorna as avaliações mais recentes e o resumo de notas do produto
func (s *Service) ListReviews(ctx context.Context, slug, productID string, limit int) (*domain.ProductReviews, error) {
	product, err := s.activeProduct(ctx, slug, productID)
	if err != nil {
		return nil, err
	}

	limit = utils.ClampInt(limit, defaultReviewPage, maxReviewPage)

	reviews, err := s.reviewRepo.ListByProduct(ctx, product.TenantID, product.ID, uint64(limit))
	if err != nil {
		logrus.WithError(err).WithField("product_id", productID).Error("reviewing: erro ao listar avaliações")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "")
	}

	summary, err := s.reviewRepo.Summary(ctx, product.TenantID, product.ID)
	if err != nil {
		logrus.WithError(err).WithField("product_id", productID).Error("reviewing: erro ao calcular resumo")
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "")
	}
	summary.AverageRating = utils.RoundWithTwoDecimalPlace(summary.AverageRating)

	return &domain.ProductReviews{
		Summary: summary,
		Reviews: reviews,
	}, nil
}

func (s *Service) activeProduct(ctx context.Context, slug, productID string) (*domain.Product, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewReviewError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, productID, slug)
	}

	product, err := s.productRepo.GetByID(ctx, tenant.ID, productID)
	if err != nil {
		return nil, NewReviewError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "erro ao buscar produto")
	}
	if product == nil || !product.Active {
		return nil, NewReviewError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}
	return product, nil
}
