package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/salepointhq/salepoint-backend/api/routes"
	"github.com/salepointhq/salepoint-backend/internal/catalog"
	"github.com/salepointhq/salepoint-backend/internal/notifications"
	"github.com/salepointhq/salepoint-backend/internal/pos"
	"github.com/salepointhq/salepoint-backend/internal/sales"
	"github.com/salepointhq/salepoint-backend/pkg/config"
	"github.com/salepointhq/salepoint-backend/pkg/logger"
	"github.com/salepointhq/salepoint-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogStore, err := catalog.NewMemoryStore(catalog.SampleItems())
	if err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	salesLedger := sales.NewLedger()

	notificationsService, err := notifications.NewService(notifications.NewMemoryRepository(cfg.Notifications.FeedCap))
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	registerMetrics := metrics.NewRegisterMetrics(prometheus.DefaultRegisterer)

	registerService, err := pos.NewService(pos.ServiceParams{
		Catalog:         catalogStore,
		Ledger:          salesLedger,
		Feed:            notificationsService,
		Metrics:         registerMetrics,
		Logger:          logg,
		TaxRateBps:      cfg.Sales.TaxRateBps,
		Currency:        cfg.Sales.Currency,
		MaxLineQuantity: cfg.Sales.MaxLineQuantity,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registerService, catalogStore, salesLedger, notificationsService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
