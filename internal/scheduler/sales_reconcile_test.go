package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	pgmocks "github.com/vfg2006/storefront-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var brt = time.FixedZone("BRT", -3*60*60)

func newReconcileService(ctrl *gomock.Controller, lookBack, maxJobs int) (*SalesReconcileService, *mocks.MockTenantRepository, *mocks.MockOrderRepository, *mocks.MockSalesSummaryRepository) {
	tenants := mocks.NewMockTenantRepository(ctrl)
	orders := mocks.NewMockOrderRepository(ctrl)
	summaries := mocks.NewMockSalesSummaryRepository(ctrl)

	transactor := pgmocks.NewMockTransactor(ctrl)
	transactor.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
	orders.EXPECT().WithTx(gomock.Any()).Return(orders).AnyTimes()
	summaries.EXPECT().WithTx(gomock.Any()).Return(summaries).AnyTimes()

	service := &SalesReconcileService{
		config: SalesReconcileConfig{
			MaxConcurrentJobs: maxJobs,
			SyncEnabled:       true,
			MonthLookBack:     lookBack,
		},
		location:    brt,
		tenantRepo:  tenants,
		orderRepo:   orders,
		summaryRepo: summaries,
		transactor:  transactor,
		now: func() time.Time {
			// 01/04 01:00 UTC ainda é 31/03 em Brasília
			return time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC)
		},
	}
	return service, tenants, orders, summaries
}

func TestSalesReconcileService_periods(t *testing.T) {
	service, _, _, _ := newReconcileService(gomock.NewController(t), 3, 1)

	assert.Equal(t, []domain.SalesPeriod{
		{Month: "02", Year: "2024"},
		{Month: "01", Year: "2024"},
		{Month: "12", Year: "2023"},
	}, service.periods())
}

func TestSalesReconcileService_reconcileTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, orders, summaries := newReconcileService(ctrl, 1, 1)

	period := domain.SalesPeriod{Month: "03", Year: "2024"}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, brt)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, brt)

	lock := summaries.EXPECT().LockPeriod(gomock.Any(), "tenant-1", period).Return(nil)
	orders.EXPECT().ListPaidByPeriod(gomock.Any(), "tenant-1", start, end).After(lock).Return([]domain.PaidOrderFigures{
		{GrossAmount: decimal.NewFromInt(100), SaleAmount: decimal.NewFromInt(90), ItemsQuantity: 2},
		{GrossAmount: decimal.NewFromInt(50), SaleAmount: decimal.NewFromInt(45), ItemsQuantity: 1},
	}, nil)

	summaries.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summary *domain.MonthlySalesSummary) error {
			assert.Equal(t, "tenant-1", summary.TenantID)
			assert.Equal(t, period, summary.Period())
			assert.Equal(t, 2, summary.TotalOrders)
			assert.Equal(t, 3, summary.TotalItemsSold)
			assert.True(t, summary.GrossSales.Equal(decimal.NewFromInt(150)))
			assert.True(t, summary.NetSales.Equal(decimal.NewFromInt(135)))
			assert.True(t, summary.AverageOrderValue.Equal(decimal.RequireFromString("67.5")))
			return nil
		})

	assert.NoError(t, service.reconcileTenant(context.Background(), "tenant-1", period))
}

func TestSalesReconcileService_reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, tenants, orders, summaries := newReconcileService(ctrl, 2, 2)

	tenants.EXPECT().ListIDs(gomock.Any()).Return([]string{"tenant-1", "tenant-2"}, nil)

	// tenant-2 falha em fevereiro; as demais combinações seguem
	orders.EXPECT().
		ListPaidByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenantID string, start, _ time.Time) ([]domain.PaidOrderFigures, error) {
			if tenantID == "tenant-2" && start.Month() == time.February {
				return nil, errors.New("connection reset")
			}
			return []domain.PaidOrderFigures{}, nil
		}).
		Times(4)
	summaries.EXPECT().LockPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
	summaries.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	service.reconcile(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 1, status["last_sync_failures"])
}

func TestSalesReconcileService_reconcileSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, _, _ := newReconcileService(ctrl, 1, 1)
	service.syncRunning = true

	// Nenhuma chamada aos repositórios é esperada
	service.reconcile(context.Background())

	assert.True(t, service.syncRunning)
}
