package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
)

// SalesReconcileConfig representa a configuração do agendador de reconciliação de vendas
type SalesReconcileConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// SalesReconcileService recalcula os resumos mensais a partir dos pedidos pagos.
// Apenas meses fechados são reprocessados. Um pedido criado no fim do mês ainda pode
// ser liquidado depois do fechamento, por isso cada loja e mês é reconstruído sob o
// mesmo bloqueio de período usado pela liquidação.
type SalesReconcileService struct {
	scheduler           *gocron.Scheduler
	config              SalesReconcileConfig
	location            *time.Location
	tenantRepo          repository.TenantRepository
	orderRepo           repository.OrderRepository
	summaryRepo         repository.SalesSummaryRepository
	transactor          postgres.Transactor
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

func NewSalesReconcileService(
	tenantRepo repository.TenantRepository,
	orderRepo repository.OrderRepository,
	summaryRepo repository.SalesSummaryRepository,
	transactor postgres.Transactor,
	appConfig *config.Config,
) *SalesReconcileService {
	reconcileConfig := SalesReconcileConfig{
		CronSchedule:      appConfig.SalesReconcile.CronSchedule,
		MaxConcurrentJobs: appConfig.SalesReconcile.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SalesReconcile.Enabled,
		MonthLookBack:     appConfig.SalesReconcile.MonthLookBack,
	}
	if reconcileConfig.MaxConcurrentJobs <= 0 {
		reconcileConfig.MaxConcurrentJobs = 1
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       reconcileConfig.CronSchedule,
		"max_concurrent_jobs": reconcileConfig.MaxConcurrentJobs,
		"month_lookback":      reconcileConfig.MonthLookBack,
		"sync_enabled":        reconcileConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação de vendas carregada")

	return &SalesReconcileService{
		scheduler:   gocron.NewScheduler(location),
		config:      reconcileConfig,
		location:    location,
		tenantRepo:  tenantRepo,
		orderRepo:   orderRepo,
		summaryRepo: summaryRepo,
		transactor:  transactor,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SalesReconcileService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcile(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SalesReconcileService) reconcile(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	failures := 0

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncFailures = failures
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	tenantIDs, err := s.tenantRepo.ListIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para reconciliação de vendas")
		failures++
		return
	}

	if len(tenantIDs) == 0 {
		logrus.Info("Nenhuma loja encontrada para reconciliação de vendas")
		return
	}

	for _, period := range s.periods() {
		failures += s.reconcilePeriod(ctx, tenantIDs, period)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"tenants":  len(tenantIDs),
		"failures": failures,
	}).Info("Reconciliação de vendas concluída")
}

// periods retorna os meses fechados a reprocessar, do mais recente ao mais antigo
func (s *SalesReconcileService) periods() []domain.SalesPeriod {
	now := s.now().In(s.location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)

	periods := make([]domain.SalesPeriod, 0, s.config.MonthLookBack)
	for i := 1; i <= s.config.MonthLookBack; i++ {
		periods = append(periods, domain.PeriodOf(firstOfMonth.AddDate(0, -i, 0)))
	}
	return periods
}

// reconcilePeriod processa as lojas com no máximo MaxConcurrentJobs em paralelo e retorna o número de falhas
func (s *SalesReconcileService) reconcilePeriod(ctx context.Context, tenantIDs []string, period domain.SalesPeriod) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	for _, tenantID := range tenantIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenantID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.reconcileTenant(ctx, tenantID, period); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"period":    period.String(),
				}).Error("Erro ao reconciliar vendas da loja")

				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(tenantID)
	}

	wg.Wait()
	return failures
}

func (s *SalesReconcileService) reconcileTenant(ctx context.Context, tenantID string, period domain.SalesPeriod) error {
	start, end, err := period.Bounds(s.location)
	if err != nil {
		return fmt.Errorf("erro ao calcular intervalo do período: %w", err)
	}

	summary := domain.NewMonthlySalesSummary(tenantID, period)

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		summaries := s.summaryRepo.WithTx(tx)

		if err := summaries.LockPeriod(ctx, tenantID, period); err != nil {
			return err
		}

		orders, err := s.orderRepo.WithTx(tx).ListPaidByPeriod(ctx, tenantID, start, end)
		if err != nil {
			return fmt.Errorf("erro ao buscar pedidos pagos: %w", err)
		}

		for _, order := range orders {
			summary.Accumulate(order.GrossAmount, order.SaleAmount, order.ItemsQuantity)
		}

		if err := summaries.Replace(ctx, summary); err != nil {
			return fmt.Errorf("erro ao gravar resumo reconciliado: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"period":    period.String(),
		"orders":    summary.TotalOrders,
	}).Debug("Resumo mensal reconciliado")

	return nil
}

// TriggerManualSync inicia manualmente uma reconciliação
func (s *SalesReconcileService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual de vendas")
	go s.reconcile(context.Background())
}

// GetStatus retorna o status atual da reconciliação
func (s *SalesReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
