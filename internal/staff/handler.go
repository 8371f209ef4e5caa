package staff

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the staff module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs staff handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers staff routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listMembers)
	r.Post("/", h.createMember)
	r.Get("/{id}", h.getMember)
	r.Put("/{id}", h.updateMember)
	r.Put("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.deleteMember)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := Filter{Query: q.Get("search"), Role: q.Get("role"), Status: q.Get("status")}
	members, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"staff": members})
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, member)
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	member, ok := h.decodeMember(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), member)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("staff member added",
		slog.String("id", created.ID),
		slog.String("role", string(created.Role)))
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	member, ok := h.decodeMember(w, r)
	if !ok {
		return
	}
	member.ID = chi.URLParam(r, "id")
	updated, err := h.service.Update(r.Context(), member)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
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
	member, err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, member)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeMember(w http.ResponseWriter, r *http.Request) (Member, bool) {
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return Member{}, false
	}
	if errs := h.validator.Struct(input); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return Member{}, false
	}
	member, errs := ParseInput(input)
	if len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return Member{}, false
	}
	return member, true
}
