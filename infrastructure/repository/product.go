package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks

const (
	productsTable   = "products"
	categoriesTable = "categories"
)

var productColumns = []string{
	"id",
	"tenant_id",
	"category_id",
	"name",
	"slug",
	"description",
	"price",
	"compare_at_price",
	"stock",
	"active",
	"created_at",
	"updated_at",
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, tenantID, productID string) (*domain.Product, error)
	GetByIDs(ctx context.Context, tenantID string, productIDs []string) ([]*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, tenantID, categoryID string) (*domain.Category, error)
	List(ctx context.Context, tenantID string) ([]*domain.Category, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(productsTable).
		Columns(
			"id",
			"tenant_id",
			"category_id",
			"name",
			"slug",
			"description",
			"price",
			"compare_at_price",
			"stock",
			"active",
		).
		Values(
			product.ID,
			product.TenantID,
			product.CategoryID,
			product.Name,
			product.Slug,
			product.Description,
			product.Price,
			product.CompareAtPrice,
			product.Stock,
			product.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, tenantID, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": productID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, tenantID string, productIDs []string) ([]*domain.Product, error) {
	if len(productIDs) == 0 {
		return []*domain.Product{}, nil
	}

	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"id": productIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(filter.Predicate()).
		OrderBy(filter.OrderBy()...).
		Limit(filter.PageSize()).
		Offset(filter.Offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *productRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func scanProduct(row scanner) (*domain.Product, error) {
	product := &domain.Product{}
	var compareAt decimal.NullDecimal
	err := row.Scan(
		&product.ID,
		&product.TenantID,
		&product.CategoryID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&compareAt,
		&product.Stock,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if compareAt.Valid {
		product.CompareAtPrice = &compareAt.Decimal
	}
	return product, nil
}

type categoryRepository struct {
	conn postgres.Queryer
}

func NewCategoryRepository(conn postgres.Queryer) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(categoriesTable).
		Columns("id", "tenant_id", "name", "slug").
		Values(category.ID, category.TenantID, category.Name, category.Slug).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&category.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("erro ao inserir categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, tenantID, categoryID string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "tenant_id", "name", "slug", "created_at").
		From(categoriesTable).
		Where(squirrel.Eq{"id": categoryID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category := &domain.Category{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.TenantID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context, tenantID string) ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "tenant_id", "name", "slug", "created_at").
		From(categoriesTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.TenantID, &category.Name, &category.Slug, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
