package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pharmasync/pharmasync/internal/analytics"
	"github.com/pharmasync/pharmasync/internal/app"
	"github.com/pharmasync/pharmasync/internal/auth"
	"github.com/pharmasync/pharmasync/internal/documents"
	"github.com/pharmasync/pharmasync/internal/inventory"
	"github.com/pharmasync/pharmasync/internal/observability"
	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/reports"
	"github.com/pharmasync/pharmasync/internal/seed"
	"github.com/pharmasync/pharmasync/internal/settings"
	"github.com/pharmasync/pharmasync/internal/shared"
	"github.com/pharmasync/pharmasync/internal/staff"
	"github.com/pharmasync/pharmasync/internal/verification"
)

// verificationMetrics fans a verdict out to the Prometheus counter and
// the dashboard tally.
type verificationMetrics struct {
	metrics *observability.Metrics
	tally   *analytics.Tally
}

func (v verificationMetrics) ObserveVerification(outcome string) {
	v.metrics.ObserveVerification(outcome)
	v.tally.ObserveVerification(outcome)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	sessionManager := shared.NewSessionManager(cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())
	auditLog := shared.NewAuditLogger(0)
	metrics := observability.NewMetrics()
	tally := analytics.NewTally()

	inventoryStore := memstore.NewCollection[inventory.Item]()
	documentStore := memstore.NewCollection[documents.Document]()
	reportStore := memstore.NewCollection[reports.Report]()
	staffStore := memstore.NewCollection[staff.Member]()
	registryStore := memstore.NewCollection[verification.RegistryRecord]()
	userStore := memstore.NewCollection[auth.User]()

	settingsSvc := settings.NewService(seed.InitialSettings(), auditLog)
	if cfg.LowStockThreshold > 0 || cfg.ExpiryWarnDays > 0 {
		system := settingsSvc.Get(ctx).System
		if cfg.LowStockThreshold > 0 {
			system.StockAlertThreshold = cfg.LowStockThreshold
		}
		if cfg.ExpiryWarnDays > 0 {
			system.ExpiryAlertDays = cfg.ExpiryWarnDays
		}
		settingsSvc.UpdateSystem(ctx, system)
	}

	inventorySvc := inventory.NewService(inventoryStore, settingsSvc, auditLog)
	documentsSvc := documents.NewService(documentStore, settingsSvc, auditLog, nil)
	reportsSvc := reports.NewService(reportStore, auditLog, nil)
	staffSvc := staff.NewService(staffStore, auditLog, nil)
	verificationSvc := verification.NewService(registryStore, cfg.VerifyLookupDelay, auditLog, verificationMetrics{metrics: metrics, tally: tally})
	analyticsSvc := analytics.NewService(inventorySvc, documentsSvc, reportsSvc, staffSvc, verificationSvc, tally)
	authSvc := auth.NewService(userStore)

	if err := seed.Load(ctx, logger, seed.Stores{
		Inventory: inventoryStore,
		Documents: documentStore,
		Reports:   reportStore,
		Staff:     staffStore,
		Registry:  registryStore,
		Auth:      authSvc,
	}); err != nil {
		logger.Error("seed sample data", slog.Any("error", err))
		os.Exit(1)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		SessionManager:      sessionManager,
		AuthHandler:         auth.NewHandler(logger, authSvc, sessionManager),
		InventoryHandler:    inventory.NewHandler(logger, inventorySvc),
		DocumentsHandler:    documents.NewHandler(logger, documentsSvc),
		ReportsHandler:      reports.NewHandler(logger, reportsSvc),
		StaffHandler:        staff.NewHandler(logger, staffSvc),
		VerificationHandler: verification.NewHandler(logger, verificationSvc),
		AnalyticsHandler:    analytics.NewHandler(logger, analyticsSvc, auditLog),
		SettingsHandler:     settings.NewHandler(logger, settingsSvc),
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
