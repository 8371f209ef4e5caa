package analytics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the analytics module.
type Handler struct {
	logger  *slog.Logger
	service *Service
	trail   *shared.AuditLogger
}

// NewHandler constructs analytics handler. The trail may be nil when no
// audit log is wired.
func NewHandler(logger *slog.Logger, service *Service, trail *shared.AuditLogger) *Handler {
	return &Handler{logger: logger, service: service, trail: trail}
}

// MountRoutes registers analytics routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/summary", h.getSummary)
	r.Get("/activity", h.getActivity)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	if h.trail == nil {
		httpx.JSON(w, http.StatusOK, map[string]any{"activity": []shared.AuditLog{}})
		return
	}
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"activity": h.trail.Recent(limit)})
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("summary aggregation failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
