package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=review.go -destination=mocks/review_mock.go -package=mocks

const reviewsTable = "reviews"

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, tenantID, productID string, limit uint64) ([]*domain.Review, error)
	Summary(ctx context.Context, tenantID, productID string) (*domain.ReviewSummary, error)
}

type reviewRepository struct {
	conn postgres.Queryer
}

func NewReviewRepository(conn postgres.Queryer) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

// Create grava a avaliação. Cada cliente avalia um produto uma única vez.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(reviewsTable).
		Columns("id", "tenant_id", "product_id", "customer_id", "rating", "comment").
		Values(review.ID, review.TenantID, review.ProductID, review.CustomerID, review.Rating, review.Comment).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&review.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("erro ao inserir avaliação: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, tenantID, productID string, limit uint64) ([]*domain.Review, error) {
	query, args, err := squirrel.
		Select("id", "tenant_id", "product_id", "customer_id", "rating", "comment", "created_at").
		From(reviewsTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "product_id": productID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar avaliações: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review := &domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.TenantID,
			&review.ProductID,
			&review.CustomerID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Summary(ctx context.Context, tenantID, productID string) (*domain.ReviewSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(ROUND(AVG(rating)::numeric, 2), 0)::float8").
		From(reviewsTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.ReviewSummary{ProductID: productID}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&summary.Count, &summary.AverageRating); err != nil {
		return nil, fmt.Errorf("erro ao calcular resumo das avaliações: %w", err)
	}

	return summary, nil
}
