package staff

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

// Service coordinates staff directory operations.
type Service struct {
	store *memstore.Collection[Member]
	audit AuditPort
	now   func() time.Time
}

// NewService builds Service. A nil clock falls back to time.Now.
func NewService(store *memstore.Collection[Member], audit AuditPort, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, audit: audit, now: now}
}

// List returns members matching the filter.
func (s *Service) List(_ context.Context, filter Filter) ([]Member, error) {
	out := make([]Member, 0)
	for _, member := range s.store.List() {
		if !shared.MatchesQuery(filter.Query, member.Name, member.Email, member.Department) {
			continue
		}
		if !shared.MatchesChoice(filter.Role, string(member.Role)) {
			continue
		}
		if !shared.MatchesChoice(filter.Status, string(member.Status)) {
			continue
		}
		out = append(out, member)
	}
	return out, nil
}

// Get returns one member.
func (s *Service) Get(_ context.Context, id string) (Member, error) {
	member, ok := s.store.Get(id)
	if !ok {
		return Member{}, shared.ErrNotFound
	}
	return member, nil
}

// Create stores a new member. New hires always start Active; a zero
// join date defaults to today.
func (s *Service) Create(ctx context.Context, member Member) (Member, error) {
	member.Status = StatusActive
	if member.JoinDate.IsZero() {
		member.JoinDate = s.now().UTC().Truncate(24 * time.Hour)
	}
	created := s.store.Create(member)
	s.recordAudit(ctx, "staff:create", created.ID, map[string]any{
		"name": created.Name,
		"role": created.Role,
	})
	return created, nil
}

// Update replaces member profile fields. Status is preserved; use
// SetStatus to change it.
func (s *Service) Update(ctx context.Context, member Member) (Member, error) {
	existing, ok := s.store.Get(member.ID)
	if !ok {
		return Member{}, shared.ErrNotFound
	}
	member.Status = existing.Status
	updated, err := s.store.Update(member)
	if err != nil {
		return Member{}, err
	}
	s.recordAudit(ctx, "staff:update", updated.ID, map[string]any{"name": updated.Name})
	return updated, nil
}

// SetStatus activates or deactivates a member.
func (s *Service) SetStatus(ctx context.Context, id string, target Status) (Member, error) {
	if !target.Valid() {
		return Member{}, shared.ErrInvalidTransition
	}
	member, ok := s.store.Get(id)
	if !ok {
		return Member{}, shared.ErrNotFound
	}
	member.Status = target
	updated, err := s.store.Update(member)
	if err != nil {
		return Member{}, err
	}
	s.recordAudit(ctx, "staff:status", updated.ID, map[string]any{"status": updated.Status})
	return updated, nil
}

// Delete removes a member from the directory.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "staff:delete", id, nil)
	return nil
}

// ParseInput converts form input into a member. JoinDate uses
// YYYY-MM-DD; an empty value leaves the zero time for Create to fill.
func ParseInput(input Input) (Member, map[string]string) {
	errs := make(map[string]string)
	member := Member{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       Role(input.Role),
		Department: input.Department,
	}
	if input.JoinDate != "" {
		joined, err := time.Parse("2006-01-02", input.JoinDate)
		if err != nil {
			errs["JoinDate"] = "Join date must be in YYYY-MM-DD format"
		} else {
			member.JoinDate = joined
		}
	}
	if len(errs) > 0 {
		return Member{}, errs
	}
	return member, nil
}

func (s *Service) recordAudit(ctx context.Context, action, id string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:    shared.ActorFromContext(ctx),
		Action:   action,
		Entity:   "staff",
		EntityID: id,
		Meta:     meta,
	})
}
