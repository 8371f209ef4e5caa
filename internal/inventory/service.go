package inventory

import (
	"context"
	"time"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
	"github.com/pharmasync/pharmasync/internal/status"
)

// ThresholdPort supplies the configured low-stock threshold, owned by the
// settings module.
type ThresholdPort interface {
	LowStockThreshold() int
}

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates inventory operations over the in-memory store.
type Service struct {
	store      *memstore.Collection[Item]
	thresholds ThresholdPort
	audit      AuditPort
}

// NewService builds Service.
func NewService(store *memstore.Collection[Item], thresholds ThresholdPort, audit AuditPort) *Service {
	return &Service{store: store, thresholds: thresholds, audit: audit}
}

// List returns items matching the filter, statuses freshly derived.
func (s *Service) List(_ context.Context, filter Filter) ([]Item, error) {
	threshold := s.thresholds.LowStockThreshold()
	out := make([]Item, 0)
	for _, item := range s.store.List() {
		if !shared.MatchesQuery(filter.Query, item.Name, item.Category) {
			continue
		}
		if !shared.MatchesChoice(filter.Category, item.Category) {
			continue
		}
		item.Status = status.ClassifyStock(item.Quantity, threshold)
		out = append(out, item)
	}
	return out, nil
}

// Get returns one item with its status freshly derived.
func (s *Service) Get(_ context.Context, id string) (Item, error) {
	item, ok := s.store.Get(id)
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	item.Status = status.ClassifyStock(item.Quantity, s.thresholds.LowStockThreshold())
	return item, nil
}

// Create stores a new item. The status is computed here, never accepted
// from the caller.
func (s *Service) Create(ctx context.Context, item Item) (Item, error) {
	item.Status = status.ClassifyStock(item.Quantity, s.thresholds.LowStockThreshold())
	created := s.store.Create(item)
	s.recordAudit(ctx, "inventory:create", created.ID, created.Name, created.Quantity)
	return created, nil
}

// Update replaces an existing item, recomputing its status from the new
// quantity in the same mutation.
func (s *Service) Update(ctx context.Context, item Item) (Item, error) {
	item.Status = status.ClassifyStock(item.Quantity, s.thresholds.LowStockThreshold())
	updated, err := s.store.Update(item)
	if err != nil {
		return Item{}, err
	}
	s.recordAudit(ctx, "inventory:update", updated.ID, updated.Name, updated.Quantity)
	return updated, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "inventory:delete", id, "", 0)
	return nil
}

// LowStock returns items at or below the threshold, out-of-stock included.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	items, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0)
	for _, item := range items {
		if item.Status != status.StockIn {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *Service) recordAudit(ctx context.Context, action, id, name string, qty int) {
	if s.audit == nil {
		return
	}
	meta := map[string]any{}
	if name != "" {
		meta["name"] = name
		meta["quantity"] = qty
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:    shared.ActorFromContext(ctx),
		Action:   action,
		Entity:   "inventory_item",
		EntityID: id,
		Meta:     meta,
	})
}

// ParseInput converts a validated input into an item, rejecting malformed
// or non-future expiry dates. Same-day expiry fails: strictly greater than
// the reference day is required.
func ParseInput(input Input, reference time.Time) (Item, map[string]string) {
	errs := make(map[string]string)
	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		errs["ExpiryDate"] = "Date must be formatted YYYY-MM-DD"
	} else if !shared.ValidateFutureDate(expiry, reference) {
		errs["ExpiryDate"] = "Expiry date must be in the future"
	}
	if len(errs) > 0 {
		return Item{}, errs
	}
	return Item{
		Name:       input.Name,
		Category:   input.Category,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		ExpiryDate: expiry,
	}, nil
}
