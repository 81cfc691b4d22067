package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=sales_summary.go -destination=mocks/sales_summary_mock.go -package=mocks

const (
	monthlySalesSummaryTable  = "monthly_sales_summary"
	categorySalesSummaryTable = "category_sales_summary"
	productsMonthlySalesTable = "products_monthly_sales"
)

var monthlySummaryColumns = []string{
	"id",
	"tenant_id",
	"month",
	"year",
	"total_orders",
	"gross_sales",
	"net_sales",
	"total_items_sold",
	"average_order_value",
	"created_at",
	"updated_at",
}

// A média é recalculada na própria instrução a partir dos valores da linha, nunca de uma leitura anterior.
const applyOrderConflict = `ON CONFLICT (tenant_id, month, year) DO UPDATE SET
	total_orders = monthly_sales_summary.total_orders + 1,
	gross_sales = monthly_sales_summary.gross_sales + EXCLUDED.gross_sales,
	net_sales = monthly_sales_summary.net_sales + EXCLUDED.net_sales,
	total_items_sold = monthly_sales_summary.total_items_sold + EXCLUDED.total_items_sold,
	average_order_value = ROUND((monthly_sales_summary.net_sales + EXCLUDED.net_sales) / (monthly_sales_summary.total_orders + 1), 2),
	updated_at = NOW()
RETURNING id, tenant_id, month, year, total_orders, gross_sales, net_sales, total_items_sold, average_order_value, created_at, updated_at`

type SalesSummaryRepository interface {
	WithTx(tx *sql.Tx) SalesSummaryRepository
	LockPeriod(ctx context.Context, tenantID string, period domain.SalesPeriod) error
	ApplyOrder(ctx context.Context, tenantID string, period domain.SalesPeriod, figures domain.PaidOrderFigures) (*domain.MonthlySalesSummary, error)
	ApplyCategorySales(ctx context.Context, tenantID string, period domain.SalesPeriod, sales []domain.CategorySales) error
	ApplyProductSales(ctx context.Context, tenantID string, period domain.SalesPeriod, sales []domain.ProductSales) error
	Replace(ctx context.Context, summary *domain.MonthlySalesSummary) error
	GetMonthly(ctx context.Context, tenantID string, period domain.SalesPeriod) (*domain.MonthlySalesSummary, error)
	ListCategorySales(ctx context.Context, tenantID string, period domain.SalesPeriod) ([]*domain.CategorySalesSummary, error)
	ListTopProducts(ctx context.Context, tenantID string, period domain.SalesPeriod, limit uint64) ([]*domain.ProductMonthlySales, error)
	GetAvailablePeriods(ctx context.Context, tenantID string) ([]domain.SalesPeriod, error)
}

type salesSummaryRepository struct {
	conn postgres.Queryer
}

func NewSalesSummaryRepository(conn postgres.Queryer) SalesSummaryRepository {
	return &salesSummaryRepository{
		conn: conn,
	}
}

func (r *salesSummaryRepository) WithTx(tx *sql.Tx) SalesSummaryRepository {
	return &salesSummaryRepository{conn: tx}
}

// LockPeriod serializa as escritas no resumo de uma loja e mês até o fim da transação.
// Só tem efeito em um repositório criado com WithTx.
func (r *salesSummaryRepository) LockPeriod(ctx context.Context, tenantID string, period domain.SalesPeriod) error {
	key := tenantID + ":" + period.String()
	if _, err := r.conn.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("erro ao bloquear resumo do período %s: %w", period.String(), err)
	}
	return nil
}

// ApplyOrder soma um pedido pago ao resumo mensal em uma única instrução de upsert
func (r *salesSummaryRepository) ApplyOrder(ctx context.Context, tenantID string, period domain.SalesPeriod, figures domain.PaidOrderFigures) (*domain.MonthlySalesSummary, error) {
	query, args, err := squirrel.
		Insert(monthlySalesSummaryTable).
		Columns(
			"tenant_id",
			"month",
			"year",
			"total_orders",
			"gross_sales",
			"net_sales",
			"total_items_sold",
			"average_order_value",
		).
		Values(
			tenantID,
			period.Month,
			period.Year,
			1,
			figures.GrossAmount,
			figures.SaleAmount,
			figures.ItemsQuantity,
			figures.SaleAmount,
		).
		Suffix(applyOrderConflict).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := scanMonthlySummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar resumo mensal: %w", err)
	}

	return summary, nil
}

func (r *salesSummaryRepository) ApplyCategorySales(ctx context.Context, tenantID string, period domain.SalesPeriod, sales []domain.CategorySales) error {
	if len(sales) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(categorySalesSummaryTable).
		Columns("tenant_id", "category_id", "month", "year", "total_orders", "items_sold", "gross_sales").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range sales {
		builder = builder.Values(tenantID, s.CategoryID, period.Month, period.Year, 1, s.ItemsSold, s.GrossSales)
	}

	query, args, err := builder.Suffix(`
		ON CONFLICT (tenant_id, category_id, month, year) DO UPDATE SET
			total_orders = category_sales_summary.total_orders + 1,
			items_sold = category_sales_summary.items_sold + EXCLUDED.items_sold,
			gross_sales = category_sales_summary.gross_sales + EXCLUDED.gross_sales,
			updated_at = NOW()
	`).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar resumo por categoria: %w", err)
	}

	return nil
}

func (r *salesSummaryRepository) ApplyProductSales(ctx context.Context, tenantID string, period domain.SalesPeriod, sales []domain.ProductSales) error {
	if len(sales) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(productsMonthlySalesTable).
		Columns("tenant_id", "product_id", "month", "year", "quantity_sold", "gross_sales").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range sales {
		builder = builder.Values(tenantID, s.ProductID, period.Month, period.Year, s.QuantitySold, s.GrossSales)
	}

	query, args, err := builder.Suffix(`
		ON CONFLICT (tenant_id, product_id, month, year) DO UPDATE SET
			quantity_sold = products_monthly_sales.quantity_sold + EXCLUDED.quantity_sold,
			gross_sales = products_monthly_sales.gross_sales + EXCLUDED.gross_sales,
			updated_at = NOW()
	`).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar vendas por produto: %w", err)
	}

	return nil
}

// Replace sobrescreve o resumo mensal com valores recalculados. Um resumo sem pedidos remove a linha.
func (r *salesSummaryRepository) Replace(ctx context.Context, summary *domain.MonthlySalesSummary) error {
	if summary.TotalOrders == 0 {
		query, args, err := squirrel.
			Delete(monthlySalesSummaryTable).
			Where(squirrel.Eq{"tenant_id": summary.TenantID, "month": summary.Month, "year": summary.Year}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover resumo mensal: %w", err)
		}
		return nil
	}

	query, args, err := squirrel.
		Insert(monthlySalesSummaryTable).
		Columns(
			"tenant_id",
			"month",
			"year",
			"total_orders",
			"gross_sales",
			"net_sales",
			"total_items_sold",
			"average_order_value",
		).
		Values(
			summary.TenantID,
			summary.Month,
			summary.Year,
			summary.TotalOrders,
			summary.GrossSales,
			summary.NetSales,
			summary.TotalItemsSold,
			summary.AverageOrderValue,
		).
		Suffix(`
			ON CONFLICT (tenant_id, month, year) DO UPDATE SET
				total_orders = EXCLUDED.total_orders,
				gross_sales = EXCLUDED.gross_sales,
				net_sales = EXCLUDED.net_sales,
				total_items_sold = EXCLUDED.total_items_sold,
				average_order_value = EXCLUDED.average_order_value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao sobrescrever resumo mensal: %w", err)
	}

	return nil
}

func (r *salesSummaryRepository) GetMonthly(ctx context.Context, tenantID string, period domain.SalesPeriod) (*domain.MonthlySalesSummary, error) {
	query, args, err := squirrel.
		Select(monthlySummaryColumns...).
		From(monthlySalesSummaryTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "month": period.Month, "year": period.Year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := scanMonthlySummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar resumo mensal: %w", err)
	}

	return summary, nil
}

func (r *salesSummaryRepository) ListCategorySales(ctx context.Context, tenantID string, period domain.SalesPeriod) ([]*domain.CategorySalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"cs.tenant_id",
			"cs.category_id",
			"COALESCE(c.name, '')",
			"cs.month",
			"cs.year",
			"cs.total_orders",
			"cs.items_sold",
			"cs.gross_sales",
		).
		From("category_sales_summary cs").
		LeftJoin("categories c ON c.id = cs.category_id").
		Where(squirrel.Eq{"cs.tenant_id": tenantID, "cs.month": period.Month, "cs.year": period.Year}).
		OrderBy("cs.gross_sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas por categoria: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.CategorySalesSummary, 0)
	for rows.Next() {
		item := &domain.CategorySalesSummary{}
		err := rows.Scan(
			&item.TenantID,
			&item.CategoryID,
			&item.CategoryName,
			&item.Month,
			&item.Year,
			&item.TotalOrders,
			&item.ItemsSold,
			&item.GrossSales,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por categoria: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesSummaryRepository) ListTopProducts(ctx context.Context, tenantID string, period domain.SalesPeriod, limit uint64) ([]*domain.ProductMonthlySales, error) {
	query, args, err := squirrel.
		Select(
			"ps.tenant_id",
			"ps.product_id",
			"COALESCE(p.name, '')",
			"ps.month",
			"ps.year",
			"ps.quantity_sold",
			"ps.gross_sales",
		).
		From("products_monthly_sales ps").
		LeftJoin("products p ON p.id = ps.product_id").
		Where(squirrel.Eq{"ps.tenant_id": tenantID, "ps.month": period.Month, "ps.year": period.Year}).
		OrderBy("ps.quantity_sold DESC", "ps.gross_sales DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ProductMonthlySales, 0)
	for rows.Next() {
		item := &domain.ProductMonthlySales{}
		err := rows.Scan(
			&item.TenantID,
			&item.ProductID,
			&item.ProductName,
			&item.Month,
			&item.Year,
			&item.QuantitySold,
			&item.GrossSales,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por produto: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesSummaryRepository) GetAvailablePeriods(ctx context.Context, tenantID string) ([]domain.SalesPeriod, error) {
	query, args, err := squirrel.
		Select("month", "year").
		From(monthlySalesSummaryTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("year DESC", "month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos: %w", err)
	}
	defer rows.Close()

	periods := make([]domain.SalesPeriod, 0)
	for rows.Next() {
		var p domain.SalesPeriod
		if err := rows.Scan(&p.Month, &p.Year); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func scanMonthlySummary(row scanner) (*domain.MonthlySalesSummary, error) {
	summary := &domain.MonthlySalesSummary{
		GrossSales:        decimal.Zero,
		NetSales:          decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	err := row.Scan(
		&summary.ID,
		&summary.TenantID,
		&summary.Month,
		&summary.Year,
		&summary.TotalOrders,
		&summary.GrossSales,
		&summary.NetSales,
		&summary.TotalItemsSold,
		&summary.AverageOrderValue,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
