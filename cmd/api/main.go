package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/cache"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify/bankverifyclient"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/api"
	"github.com/vfg2006/storefront-api/internal/api/handler"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/scheduler"
	"github.com/vfg2006/storefront-api/internal/usecases/authenticating"
	"github.com/vfg2006/storefront-api/internal/usecases/catalog"
	"github.com/vfg2006/storefront-api/internal/usecases/checkout"
	"github.com/vfg2006/storefront-api/internal/usecases/ranking"
	"github.com/vfg2006/storefront-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-api/internal/usecases/reviewing"
	"github.com/vfg2006/storefront-api/internal/usecases/settling"
	"github.com/vfg2006/storefront-api/internal/usecases/storefront"
	"github.com/vfg2006/storefront-api/internal/usecases/subscribing"
	"github.com/vfg2006/storefront-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cfg.LoadPaymentSecret(ctx, config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar o secret do gateway de pagamento")
	}
	if cfg.Payment.KeySecret == "" {
		logrus.Warn("Gateway de pagamento sem secret: confirmações de pagamento serão recusadas")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	reviewRepo := repository.NewReviewRepository(pgConn)
	summaryRepo := repository.NewSalesSummaryRepository(pgConn)
	rankingRepo := repository.NewStoreRankingRepository(pgConn)
	planRepo := repository.NewSubscriptionPlanRepository(pgConn)

	var tenantRepo repository.TenantRepository = repository.NewTenantRepository(pgConn)
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível na inicialização, lojas serão lidas do banco até a reconexão")
		}
		defer redisClient.Close()

		tenantRepo = repository.NewCachedTenantRepository(tenantRepo, cache.NewRedisStore(redisClient), cfg.Cache.TenantTTL)
		logrus.WithField("ttl", cfg.Cache.TenantTTL).Info("Cache de lojas habilitado")
	} else {
		logrus.Warn("Redis não configurado, lojas serão lidas direto do banco")
	}

	bankVerifier := bankverify.New(cfg.BankVerification.AccessToken, bankverifyclient.NewClient(cfg.BankVerification))

	authenticator := authenticating.NewService(userRepo, cfg)

	salesReconcileService := scheduler.NewSalesReconcileService(tenantRepo, orderRepo, summaryRepo, pgConn, cfg)
	subscriptionExpiryService := scheduler.NewSubscriptionExpiryService(tenantRepo, cfg)

	if err := salesReconcileService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de vendas")
	}
	if err := subscriptionExpiryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de expiração de assinaturas")
	}

	server, err := api.New(cfg, pgConn, api.Services{
		Authenticator: authenticator,
		Storefront:    storefront.NewService(tenantRepo, bankVerifier),
		Catalog:       catalog.NewService(tenantRepo, categoryRepo, productRepo),
		Checkout:      checkout.NewService(tenantRepo, productRepo, orderRepo, pgConn, cfg),
		Settler:       settling.NewService(tenantRepo, orderRepo, summaryRepo, pgConn, cfg),
		Reporter:      reporting.NewService(tenantRepo, summaryRepo),
		Ranking:       ranking.NewStoreRankingService(rankingRepo, cfg.App.Location),
		Reviewer:      reviewing.NewService(tenantRepo, productRepo, reviewRepo),
		Subscriber:    subscribing.NewService(tenantRepo, planRepo, cfg),
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeSalesReconcile:     salesReconcileService,
			handler.CronJobTypeSubscriptionExpiry: subscriptionExpiryService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
