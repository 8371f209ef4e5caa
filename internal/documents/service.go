package documents

import (
	"context"
	"time"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
	"github.com/pharmasync/pharmasync/internal/status"
)

// Clock supplies the reference date for expiry derivation; injectable for
// tests.
type Clock func() time.Time

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// WarnPort supplies the configured expiry warning window, owned by the
// settings module.
type WarnPort interface {
	ExpiryWarnDays() int
}

// Service coordinates document operations over the in-memory store.
type Service struct {
	store *memstore.Collection[Document]
	warn  WarnPort
	audit AuditPort
	now   Clock
}

// NewService builds Service. A nil clock falls back to time.Now.
func NewService(store *memstore.Collection[Document], warn WarnPort, audit AuditPort, now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, warn: warn, audit: audit, now: now}
}

// deriveStatus recomputes the document status at read time. Pending while
// unreviewed; after that the expiry date decides.
func (s *Service) deriveStatus(doc Document) Status {
	if !doc.Reviewed {
		return StatusPending
	}
	if doc.ExpiryDate != nil && doc.ExpiryDate.Before(s.now()) {
		return StatusExpired
	}
	return StatusActive
}

// List returns documents matching the filter, statuses freshly derived.
func (s *Service) List(_ context.Context, filter Filter) ([]Document, error) {
	out := make([]Document, 0)
	for _, doc := range s.store.List() {
		if !shared.MatchesQuery(filter.Query, doc.Name) {
			continue
		}
		if !shared.MatchesChoice(filter.Type, string(doc.Type)) {
			continue
		}
		if !shared.MatchesChoice(filter.Category, doc.Category) {
			continue
		}
		doc.Status = s.deriveStatus(doc)
		out = append(out, doc)
	}
	return out, nil
}

// Get returns one document with its status freshly derived.
func (s *Service) Get(_ context.Context, id string) (Document, error) {
	doc, ok := s.store.Get(id)
	if !ok {
		return Document{}, shared.ErrNotFound
	}
	doc.Status = s.deriveStatus(doc)
	return doc, nil
}

// Create stores a new document. Documents start unreviewed, so their
// derived status is Pending.
func (s *Service) Create(ctx context.Context, doc Document) (Document, error) {
	doc.Reviewed = false
	doc.UploadDate = s.now().UTC()
	doc.Status = StatusPending
	created := s.store.Create(doc)
	s.recordAudit(ctx, "documents:create", created.ID, created.Name)
	return created, nil
}

// Review marks a document as reviewed; from then on expiry decides the
// status.
func (s *Service) Review(ctx context.Context, id string) (Document, error) {
	doc, ok := s.store.Get(id)
	if !ok {
		return Document{}, shared.ErrNotFound
	}
	doc.Reviewed = true
	doc.Status = s.deriveStatus(doc)
	updated, err := s.store.Update(doc)
	if err != nil {
		return Document{}, err
	}
	s.recordAudit(ctx, "documents:review", updated.ID, updated.Name)
	return updated, nil
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "documents:delete", id, "")
	return nil
}

// ExpiringSoon returns reviewed documents whose expiry date falls within
// the configured warning window.
func (s *Service) ExpiringSoon(ctx context.Context) ([]Document, error) {
	docs, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	warnDays := status.DefaultExpiryWarnDays
	if s.warn != nil {
		warnDays = s.warn.ExpiryWarnDays()
	}
	out := make([]Document, 0)
	for _, doc := range docs {
		if doc.Status != StatusActive || doc.ExpiryDate == nil {
			continue
		}
		if status.ClassifyExpiry(*doc.ExpiryDate, s.now(), warnDays) == status.ExpirySoon {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *Service) recordAudit(ctx context.Context, action, id, name string) {
	if s.audit == nil {
		return
	}
	meta := map[string]any{}
	if name != "" {
		meta["name"] = name
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:    shared.ActorFromContext(ctx),
		Action:   action,
		Entity:   "document",
		EntityID: id,
		Meta:     meta,
	})
}

// ParseInput converts a validated input into a document. The expiry date is
// optional; when present it must be well formed, but it may lie in the past
// (historical documents are uploaded expired).
func ParseInput(input Input) (Document, map[string]string) {
	errs := make(map[string]string)
	doc := Document{
		Name:     input.Name,
		Type:     Type(input.Type),
		Category: input.Category,
		Size:     input.Size,
	}
	if input.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
		if err != nil {
			errs["ExpiryDate"] = "Date must be formatted YYYY-MM-DD"
			return Document{}, errs
		}
		doc.ExpiryDate = &expiry
	}
	return doc, nil
}
