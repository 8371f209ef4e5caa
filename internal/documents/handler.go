package documents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the documents module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs documents handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers document routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listDocuments)
	r.Post("/", h.createDocument)
	r.Get("/expiring", h.listExpiring)
	r.Get("/{id}", h.getDocument)
	r.Post("/{id}/review", h.reviewDocument)
	r.Delete("/{id}", h.deleteDocument)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := Filter{Query: q.Get("search"), Type: q.Get("type"), Category: q.Get("category")}
	docs, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *Handler) listExpiring(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.ExpiringSoon(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return
	}
	if errs := h.validator.Struct(input); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	doc, errs := ParseInput(input)
	if len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return
	}
	created, err := h.service.Create(r.Context(), doc)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("document uploaded",
		slog.String("id", created.ID),
		slog.String("type", string(created.Type)))
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) reviewDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Review(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
