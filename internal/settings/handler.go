package settings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the settings module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs settings handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers settings routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.getSettings)
	r.Put("/company", h.updateCompany)
	r.Put("/system", h.updateSystem)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Get(r.Context()))
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	var profile CompanyProfile
	if err := httpx.DecodeJSON(r, &profile); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	if errs := h.validator.Struct(profile); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	updated := h.service.UpdateCompany(r.Context(), profile)
	h.logger.Info("company profile updated", slog.String("name", profile.Name))
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) updateSystem(w http.ResponseWriter, r *http.Request) {
	var system SystemSettings
	if err := httpx.DecodeJSON(r, &system); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	if errs := h.validator.Struct(system); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	updated := h.service.UpdateSystem(r.Context(), system)
	h.logger.Info("system settings updated",
		slog.Int("stockAlertThreshold", system.StockAlertThreshold),
		slog.Int("expiryAlertDays", system.ExpiryAlertDays))
	httpx.JSON(w, http.StatusOK, updated)
}
