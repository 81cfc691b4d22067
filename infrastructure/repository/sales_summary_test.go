package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/internal/domain"
)

var summaryRowColumns = []string{
	"id", "tenant_id", "month", "year", "total_orders", "gross_sales",
	"net_sales", "total_items_sold", "average_order_value", "created_at", "updated_at",
}

func TestSalesSummaryRepository_ApplyOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSalesSummaryRepository(db)
	period := domain.SalesPeriod{Month: "03", Year: "2024"}
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	figures := domain.PaidOrderFigures{
		GrossAmount:   decimal.NewFromInt(50),
		SaleAmount:    decimal.NewFromInt(45),
		ItemsQuantity: 1,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO monthly_sales_summary")).
		WithArgs("tenant-1", "03", "2024", 1, figures.GrossAmount, figures.SaleAmount, 1, figures.SaleAmount).
		WillReturnRows(sqlmock.NewRows(summaryRowColumns).
			AddRow(7, "tenant-1", "03", "2024", 2, "150.00", "135.00", 3, "67.50", now, now))

	summary, err := repo.ApplyOrder(context.Background(), "tenant-1", period, figures)
	require.NoError(t, err)

	assert.Equal(t, int64(7), summary.ID)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 3, summary.TotalItemsSold)
	assert.True(t, decimal.NewFromInt(150).Equal(summary.GrossSales))
	assert.True(t, decimal.NewFromInt(135).Equal(summary.NetSales))
	assert.True(t, decimal.RequireFromString("67.5").Equal(summary.AverageOrderValue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummaryRepository_ApplyOrderRecomputesAverageInStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSalesSummaryRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"average_order_value = ROUND((monthly_sales_summary.net_sales + EXCLUDED.net_sales) / (monthly_sales_summary.total_orders + 1), 2)",
	)).WillReturnRows(sqlmock.NewRows(summaryRowColumns).
		AddRow(1, "tenant-1", "03", "2024", 1, "100", "90", 2, "90", now, now))

	_, err = repo.ApplyOrder(context.Background(), "tenant-1", domain.SalesPeriod{Month: "03", Year: "2024"}, domain.PaidOrderFigures{
		GrossAmount:   decimal.NewFromInt(100),
		SaleAmount:    decimal.NewFromInt(90),
		ItemsQuantity: 2,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummaryRepository_LockPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("tenant-1:03-2024").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewSalesSummaryRepository(db).WithTx(tx)
	require.NoError(t, repo.LockPeriod(context.Background(), "tenant-1", domain.SalesPeriod{Month: "03", Year: "2024"}))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummaryRepository_ApplyCategorySales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSalesSummaryRepository(db)
	period := domain.SalesPeriod{Month: "03", Year: "2024"}

	t.Run("sem categorias não executa nada", func(t *testing.T) {
		err := repo.ApplyCategorySales(context.Background(), "tenant-1", period, nil)
		assert.NoError(t, err)
	})

	t.Run("upsert com uma linha por categoria", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (tenant_id, category_id, month, year) DO UPDATE SET")).
			WithArgs(
				"tenant-1", "cat-1", "03", "2024", 1, 2, decimal.NewFromInt(80),
				"tenant-1", "cat-2", "03", "2024", 1, 1, decimal.NewFromInt(20),
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ApplyCategorySales(context.Background(), "tenant-1", period, []domain.CategorySales{
			{CategoryID: "cat-1", ItemsSold: 2, GrossSales: decimal.NewFromInt(80)},
			{CategoryID: "cat-2", ItemsSold: 1, GrossSales: decimal.NewFromInt(20)},
		})
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummaryRepository_Replace(t *testing.T) {
	t.Run("resumo sem pedidos remove a linha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM monthly_sales_summary WHERE month = $1 AND tenant_id = $2 AND year = $3")).
			WithArgs("03", "tenant-1", "2024").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSalesSummaryRepository(db)
		err = repo.Replace(context.Background(), domain.NewMonthlySalesSummary("tenant-1", domain.SalesPeriod{Month: "03", Year: "2024"}))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resumo com pedidos sobrescreve os totais", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		summary := domain.NewMonthlySalesSummary("tenant-1", domain.SalesPeriod{Month: "03", Year: "2024"})
		summary.Accumulate(decimal.NewFromInt(100), decimal.NewFromInt(90), 2)

		mock.ExpectExec(regexp.QuoteMeta("total_orders = EXCLUDED.total_orders")).
			WithArgs("tenant-1", "03", "2024", 1, summary.GrossSales, summary.NetSales, 2, summary.AverageOrderValue).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSalesSummaryRepository(db)
		err = repo.Replace(context.Background(), summary)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalesSummaryRepository_GetMonthlyNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM monthly_sales_summary")).
		WithArgs("03", "tenant-1", "2024").
		WillReturnRows(sqlmock.NewRows(summaryRowColumns))

	repo := NewSalesSummaryRepository(db)
	summary, err := repo.GetMonthly(context.Background(), "tenant-1", domain.SalesPeriod{Month: "03", Year: "2024"})

	assert.NoError(t, err)
	assert.Nil(t, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}
