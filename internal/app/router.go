package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pharmasync/pharmasync/internal/analytics"
	"github.com/pharmasync/pharmasync/internal/auth"
	"github.com/pharmasync/pharmasync/internal/documents"
	"github.com/pharmasync/pharmasync/internal/inventory"
	"github.com/pharmasync/pharmasync/internal/observability"
	"github.com/pharmasync/pharmasync/internal/reports"
	"github.com/pharmasync/pharmasync/internal/settings"
	"github.com/pharmasync/pharmasync/internal/shared"
	"github.com/pharmasync/pharmasync/internal/staff"
	"github.com/pharmasync/pharmasync/internal/verification"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger              *slog.Logger
	Config              *Config
	SessionManager      *shared.SessionManager
	AuthHandler         *auth.Handler
	InventoryHandler    *inventory.Handler
	DocumentsHandler    *documents.Handler
	ReportsHandler      *reports.Handler
	StaffHandler        *staff.Handler
	VerificationHandler *verification.Handler
	AnalyticsHandler    *analytics.Handler
	SettingsHandler     *settings.Handler
	Metrics             *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/api", func(api chi.Router) {
		api.Route("/inventory", params.InventoryHandler.MountRoutes)
		api.Route("/documents", params.DocumentsHandler.MountRoutes)
		api.Route("/reports", params.ReportsHandler.MountRoutes)
		api.Route("/staff", params.StaffHandler.MountRoutes)
		api.Route("/verification", params.VerificationHandler.MountRoutes)
		api.Route("/analytics", params.AnalyticsHandler.MountRoutes)
		api.Route("/settings", params.SettingsHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
