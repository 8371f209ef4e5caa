package reports

import (
	"context"
	"time"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates report operations over the in-memory store.
type Service struct {
	store *memstore.Collection[Report]
	audit AuditPort
	now   func() time.Time
}

// NewService builds Service. A nil clock falls back to time.Now.
func NewService(store *memstore.Collection[Report], audit AuditPort, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, audit: audit, now: now}
}

// List returns reports matching the filter.
func (s *Service) List(_ context.Context, filter Filter) ([]Report, error) {
	out := make([]Report, 0)
	for _, report := range s.store.List() {
		if !shared.MatchesQuery(filter.Query, report.ProductName, report.Location, report.ReportedBy) {
			continue
		}
		if !shared.MatchesChoice(filter.Type, string(report.ReportType)) {
			continue
		}
		if !shared.MatchesChoice(filter.Status, string(report.Status)) {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}

// Get returns one report.
func (s *Service) Get(_ context.Context, id string) (Report, error) {
	report, ok := s.store.Get(id)
	if !ok {
		return Report{}, shared.ErrNotFound
	}
	return report, nil
}

// Create stores a new report. The initial state is always Pending,
// whatever the caller put on the struct.
func (s *Service) Create(ctx context.Context, report Report) (Report, error) {
	now := s.now().UTC()
	report.Status = StatusPending
	report.ReportDate = now
	report.UpdatedAt = now
	created := s.store.Create(report)
	s.recordAudit(ctx, "reports:create", created.ID, map[string]any{
		"product": created.ProductName,
		"type":    created.ReportType,
	})
	return created, nil
}

// UpdateStatus runs the lifecycle transition and stamps UpdatedAt.
func (s *Service) UpdateStatus(ctx context.Context, id string, target Status) (Report, error) {
	report, ok := s.store.Get(id)
	if !ok {
		return Report{}, shared.ErrNotFound
	}
	next, err := Transition(report.Status, target)
	if err != nil {
		return Report{}, err
	}
	previous := report.Status
	report.Status = next
	report.UpdatedAt = s.now().UTC()
	updated, err := s.store.Update(report)
	if err != nil {
		return Report{}, err
	}
	s.recordAudit(ctx, "reports:status", updated.ID, map[string]any{
		"from": previous,
		"to":   updated.Status,
	})
	return updated, nil
}

// Delete removes a report.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "reports:delete", id, nil)
	return nil
}

func (s *Service) recordAudit(ctx context.Context, action, id string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:    shared.ActorFromContext(ctx),
		Action:   action,
		Entity:   "report",
		EntityID: id,
		Meta:     meta,
	})
}
