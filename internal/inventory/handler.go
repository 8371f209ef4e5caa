package inventory

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pharmasync/pharmasync/internal/platform/httpx"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Handler wires HTTP endpoints for the inventory module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler constructs inventory handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: shared.NewValidator()}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listItems)
	r.Post("/", h.createItem)
	r.Get("/low-stock", h.listLowStock)
	r.Get("/{id}", h.getItem)
	r.Put("/{id}", h.updateItem)
	r.Delete("/{id}", h.deleteItem)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := Filter{Query: q.Get("search"), Category: q.Get("category")}
	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("perPage"))
	pagination := shared.NewPagination(page, perPage, len(items))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":      shared.Paginate(items, pagination),
		"pagination": pagination,
	})
}

func (h *Handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStock(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("inventory item created",
		slog.String("id", created.ID),
		slog.String("name", created.Name),
		slog.Int("quantity", created.Quantity))
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	item.ID = chi.URLParam(r, "id")
	updated, err := h.service.Update(r.Context(), item)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeItem(w http.ResponseWriter, r *http.Request) (Item, bool) {
	var input Input
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Malformed JSON body")
		return Item{}, false
	}
	if errs := h.validator.Struct(input); len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return Item{}, false
	}
	item, errs := ParseInput(input, time.Now())
	if len(errs) > 0 {
		httpx.ValidationProblem(w, errs)
		return Item{}, false
	}
	return item, true
}
