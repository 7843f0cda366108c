package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/config"
	delivery "github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http/handlers"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/kafka"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/logger"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/metrics"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/migrate"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/notifier"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/repository"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/provisioning"
	redisinfra "github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/redis"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/agent"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/commission"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/ledger"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/order"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zl := logger.MustInit(cfg.LogConfig.LogLevel)
	defer zl.Sync()

	creditOn := domain.OrderStatus(cfg.Commission.CreditOn)
	if creditOn != domain.StatusDelivered && creditOn != domain.StatusPaid {
		log.Fatalf("commission.credit_on must be delivered or paid, got %q", cfg.Commission.CreditOn)
	}

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init redis (liability report cache)
	cache, err := redisinfra.NewClient(cfg.RedisService)
	if err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	// Account provisioning collaborator
	provisioner := provisioning.NewClient(
		cfg.ProvisioningService.BaseURL,
		cfg.ProvisioningService.Timeout,
		cfg.ProvisioningService.RetryCount,
	)

	credentialNotifier := notifier.NewKafkaNotifier(pub, cfg.KafkaService.NotificationTopic)

	fulfillmentMetrics := metrics.NewFulfillmentMetrics()

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	agentRepo := repository.NewDefaultAgentRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)

	// Init usecases
	agentUsecase := agent.NewDefaultAgentUsecase(agentRepo)
	calculator := commission.NewCalculator(cfg.Commission.OverrideRate)
	ledgerUsecase := ledger.NewDefaultLedgerUsecase(
		agentRepo,
		payoutRepo,
		cache,
		cfg.RedisService.LiabilityTTL,
		fulfillmentMetrics,
	)
	orderUsecase := order.NewDefaultOrderUsecase(
		orderRepo,
		agentUsecase,
		calculator,
		ledgerUsecase,
		provisioner,
		credentialNotifier,
		pub,
		fulfillmentMetrics,
		creditOn,
		cfg.KafkaService.OrderTopic,
	)

	// HTTP delivery
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	agentHandler := handlers.NewAgentHandler(agentUsecase)
	payoutHandler := handlers.NewPayoutHandler(ledgerUsecase)
	router := delivery.NewRouter(orderHandler, agentHandler, payoutHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stuck pending_approval monitor
	go orderUsecase.StartStuckOrdersMonitor(ctx, cfg.Monitor.Interval, cfg.Monitor.PendingAge)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		zap.L().Info("fulfillment service started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	zap.L().Info("fulfillment service stopped")
}
