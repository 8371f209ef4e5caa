package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the reports module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs reports handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listReports)
	r.Post("/", h.createReport)
	r.Get("/{id}", h.getReport)
	r.Put("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.deleteReport)
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := Filter{Query: q.Get("search"), Type: q.Get("type"), Status: q.Get("status")}
	reports, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	if errs := h.validator.Struct(input); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	report := Report{
		ProductName: input.ProductName,
		ReportType:  Type(input.ReportType),
		Location:    input.Location,
		ReportedBy:  input.ReportedBy,
		Details:     input.Details,
	}
	created, err := h.service.Create(r.Context(), report)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("report submitted",
		slog.String("id", created.ID),
		slog.String("type", string(created.ReportType)))
	httpx.JSON(w, http.StatusCreated, created)
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	report, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
