package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=store_ranking.go -destination=mocks/store_ranking_mock.go -package=mocks

type StoreRankingRepository interface {
	GetStoreRanking(ctx context.Context, period domain.SalesPeriod, limit uint64) ([]*domain.StoreRankingItem, error)
}

type storeRankingRepository struct {
	conn postgres.Queryer
}

func NewStoreRankingRepository(conn postgres.Queryer) StoreRankingRepository {
	return &storeRankingRepository{
		conn: conn,
	}
}

// GetStoreRanking ordena as lojas pelas vendas líquidas do período. A posição é atribuída na leitura.
func (r *storeRankingRepository) GetStoreRanking(ctx context.Context, period domain.SalesPeriod, limit uint64) ([]*domain.StoreRankingItem, error) {
	queryBuilder := squirrel.
		Select(
			"t.id",
			"t.slug",
			"t.store_name",
			"ms.net_sales",
			"ms.total_orders",
			"ms.average_order_value",
		).
		From("monthly_sales_summary ms").
		Join("tenants t ON t.id = ms.tenant_id").
		Where(squirrel.Eq{"ms.month": period.Month, "ms.year": period.Year}).
		OrderBy("ms.net_sales DESC", "t.store_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.StoreRankingItem, 0)
	for rows.Next() {
		item := &domain.StoreRankingItem{}
		err := rows.Scan(
			&item.TenantID,
			&item.Slug,
			&item.StoreName,
			&item.NetSales,
			&item.TotalOrders,
			&item.AverageOrderValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		item.Position = len(rankings) + 1
		rankings = append(rankings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}
