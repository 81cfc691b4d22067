package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/config"
)

// SubscriptionExpiryService move para past_due as assinaturas ativas cuja renovação venceu
type SubscriptionExpiryService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	tenantRepo          repository.TenantRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastExpiredCount    int64
}

func NewSubscriptionExpiryService(tenantRepo repository.TenantRepository, appConfig *config.Config) *SubscriptionExpiryService {
	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SubscriptionSync.CronSchedule,
		"sync_enabled":  appConfig.SubscriptionSync.Enabled,
	}).Info("Configuração do agendador de expiração de assinaturas carregada")

	return &SubscriptionExpiryService{
		scheduler:    gocron.NewScheduler(location),
		cronSchedule: appConfig.SubscriptionSync.CronSchedule,
		enabled:      appConfig.SubscriptionSync.Enabled,
		tenantRepo:   tenantRepo,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *SubscriptionExpiryService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Expiração de assinaturas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de expiração de assinaturas")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.expire(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expiração de assinaturas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de expiração de assinaturas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SubscriptionExpiryService) expire(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expiração de assinaturas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var expired int64
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastExpiredCount = expired
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	expired, err := s.tenantRepo.ExpireLapsedSubscriptions(ctx, s.now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Erro ao expirar assinaturas vencidas")
		return
	}

	logrus.WithField("expired", expired).Info("Expiração de assinaturas concluída")
}

// TriggerManualSync inicia manualmente a expiração de assinaturas
func (s *SubscriptionExpiryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expiração de assinaturas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando expiração manual de assinaturas")
	go s.expire(context.Background())
}

// GetStatus retorna o status atual da expiração de assinaturas
func (s *SubscriptionExpiryService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.cronSchedule,
		"sync_enabled":           s.enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_expired_count":     s.lastExpiredCount,
	}
}
