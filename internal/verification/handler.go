package verification

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the verification module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs verification handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers verification routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/verify", h.handleVerify)
	r.Route("/registry", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.Post("/", h.createRecord)
		r.Get("/{id}", h.getRecord)
		r.Put("/{id}", h.updateRecord)
		r.Delete("/{id}", h.deleteRecord)
	})
}

type verifyRequest struct {
	Query string `json:"query"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	verdict, err := h.service.Verify(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			httpx.Problem(w, http.StatusConflict, "Superseded", "A newer verification query was issued")
			return
		}
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("verification lookup",
		slog.String("query", verdict.Query),
		slog.String("outcome", string(verdict.Outcome)))
	httpx.JSON(w, http.StatusOK, verdict)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"records": records})
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, record)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}
	created, err := h.service.CreateRecord(r.Context(), record)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}
	record.ID = chi.URLParam(r, "id")
	updated, err := h.service.UpdateRecord(r.Context(), record)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeRecord(w http.ResponseWriter, r *http.Request) (RegistryRecord, bool) {
	var input RegistryInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return RegistryRecord{}, false
	}
	if errs := h.validator.Struct(input); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return RegistryRecord{}, false
	}
	record, errs := ParseRegistryInput(input)
	if len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return RegistryRecord{}, false
	}
	return record, true
}
