package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	config "github.com/peemtanapat/retail-backoffice/configs"
	appCatalog "github.com/peemtanapat/retail-backoffice/internal/application/catalog"
	appInventory "github.com/peemtanapat/retail-backoffice/internal/application/inventory"
	appOrder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	appReview "github.com/peemtanapat/retail-backoffice/internal/application/review"
	appStore "github.com/peemtanapat/retail-backoffice/internal/application/store"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/notifier"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/observability/oteltrace"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/observability/prometrics"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/observability/telemetry"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/observability/zaplogger"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/outbox"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/persistence"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	httppresentation "github.com/peemtanapat/retail-backoffice/internal/presentation/http"
)

func main() {
	appCfg := config.LoadAppConfig()
	dbCfg := config.LoadDatabaseConfig()
	emailCfg := config.LoadEmailConfig()

	baseLogger := zaplogger.New(
		observability.F("service", appCfg.ServiceName),
		observability.F("env", appCfg.Environment),
	)
	defer func() {
		if s, ok := baseLogger.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()

	registry := prometrics.New("", "")
	counters := map[string]observability.Counter{
		observability.MetricHTTPRequests: registry.Counter(
			observability.MetricHTTPRequests,
			"Total number of HTTP requests.",
			"method", "route", "status",
		),
		observability.MetricUsecaseRequests: registry.Counter(
			observability.MetricUsecaseRequests,
			"Total number of use case invocations.",
			"use_case", "outcome",
		),
		observability.MetricOrderEventFailures: registry.Counter(
			observability.MetricOrderEventFailures,
			"Count of order event publish failures.",
			"event",
		),
	}
	histograms := map[string]observability.Histogram{
		observability.MetricHTTPRequestDuration: registry.Histogram(
			observability.MetricHTTPRequestDuration,
			"Duration of HTTP requests in seconds.",
			prometheus.DefBuckets,
			"method", "route", "status",
		),
		observability.MetricUsecaseDuration: registry.Histogram(
			observability.MetricUsecaseDuration,
			"Duration of use case execution in seconds.",
			prometheus.DefBuckets,
			"use_case",
		),
	}
	tel := telemetry.New(oteltrace.New(appCfg.ServiceName), baseLogger, counters, histograms)

	db, err := persistence.Open(dbCfg.DSN())
	if err != nil {
		baseLogger.Error("database_open_failed", observability.F("error", err))
		os.Exit(1)
	}

	storeRepo := persistence.NewStoreRepository(db)
	productRepo := persistence.NewProductRepository(db)
	stockRepo := persistence.NewStockRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	reviewRepo := persistence.NewReviewRepository(db)
	uow := persistence.NewUnitOfWork(db)

	bus := outbox.NewBus(baseLogger)
	bus.Start(context.Background())
	defer bus.Stop(context.Background())

	orderService := appOrder.NewService(customerRepo, uow, bus, tel)
	catalogService := appCatalog.NewService(productRepo, stockRepo, baseLogger)
	inventoryService := appInventory.NewService(stockRepo, productRepo, storeRepo, baseLogger)
	storeService := appStore.NewService(storeRepo, baseLogger)
	reviewService := appReview.NewService(reviewRepo, baseLogger)

	if emailCfg.SenderEmail != "" {
		sender, err := notifier.NewSESEmailSender(context.Background(), notifier.SESConfig{
			Region:          emailCfg.AWSRegion,
			AccessKeyID:     emailCfg.AWSAccessKeyID,
			SecretAccessKey: emailCfg.AWSSecretAccessKey,
			Sender:          emailCfg.SenderEmail,
		})
		if err != nil {
			baseLogger.Warn("email_sender_disabled", observability.F("error", err))
		} else {
			notifier.NewWorker(bus, customerRepo, sender, baseLogger).Start()
		}
	} else {
		baseLogger.Info("email_sender_not_configured")
	}

	handler := httppresentation.NewHandler(
		orderService, catalogService, inventoryService, storeService, reviewService,
		baseLogger, tel,
	)

	server := &http.Server{
		Addr:    appCfg.HTTPAddr,
		Handler: handler.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("http_server_start",
			observability.F("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Error("http_server_error",
				observability.F("error", err),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("http_server_shutdown_error",
			observability.F("error", err),
		)
	} else {
		baseLogger.Info("http_server_stopped")
	}
}
