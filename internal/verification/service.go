package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// MetricsPort counts verification outcomes.
type MetricsPort interface {
	ObserveVerification(outcome string)
}

// Service owns the product registry and coordinates verification lookups.
type Service struct {
	store   *memstore.Collection[RegistryRecord]
	matcher *Matcher
	audit   AuditPort
	metrics MetricsPort
}

// NewService builds Service. The matcher resolves against this service's
// own registry store.
func NewService(store *memstore.Collection[RegistryRecord], lookupDelay time.Duration, audit AuditPort, metrics MetricsPort) *Service {
	s := &Service{store: store, audit: audit, metrics: metrics}
	s.matcher = NewMatcher(s, lookupDelay)
	return s
}

// ListRecords returns all registry records in registry order.
func (s *Service) ListRecords(_ context.Context) ([]RegistryRecord, error) {
	return s.store.List(), nil
}

// GetRecord returns one registry record.
func (s *Service) GetRecord(_ context.Context, id string) (RegistryRecord, error) {
	record, ok := s.store.Get(id)
	if !ok {
		return RegistryRecord{}, shared.ErrNotFound
	}
	return record, nil
}

// CreateRecord stores a new registry record and audits the mutation.
func (s *Service) CreateRecord(ctx context.Context, record RegistryRecord) (RegistryRecord, error) {
	created := s.store.Create(record)
	s.recordAudit(ctx, "registry:create", created.ID, created.ProductID)
	return created, nil
}

// UpdateRecord replaces an existing registry record.
func (s *Service) UpdateRecord(ctx context.Context, record RegistryRecord) (RegistryRecord, error) {
	updated, err := s.store.Update(record)
	if err != nil {
		return RegistryRecord{}, err
	}
	s.recordAudit(ctx, "registry:update", updated.ID, updated.ProductID)
	return updated, nil
}

// DeleteRecord removes a registry record.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "registry:delete", id, "")
	return nil
}

// Verify resolves the query through the matcher and records the outcome.
// Superseded lookups and blank queries are passed through untouched.
func (s *Service) Verify(ctx context.Context, query string) (Verdict, error) {
	verdict, err := s.matcher.Verify(ctx, query)
	if err != nil {
		return Verdict{}, err
	}
	if s.metrics != nil {
		s.metrics.ObserveVerification(string(verdict.Outcome))
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			Actor:    shared.ActorFromContext(ctx),
			Action:   "verification:lookup",
			Entity:   "registry",
			EntityID: verdict.Query,
			Meta:     map[string]any{"outcome": verdict.Outcome},
		})
	}
	return verdict, nil
}

func (s *Service) recordAudit(ctx context.Context, action, id, productID string) {
	if s.audit == nil {
		return
	}
	meta := map[string]any{}
	if productID != "" {
		meta["product_id"] = productID
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:    shared.ActorFromContext(ctx),
		Action:   action,
		Entity:   "registry",
		EntityID: id,
		Meta:     meta,
	})
}

// ParseRegistryInput converts a validated input into a record, reporting
// per-field errors for malformed dates.
func ParseRegistryInput(input RegistryInput) (RegistryRecord, map[string]string) {
	errs := make(map[string]string)
	manufactured, err := time.Parse("2006-01-02", input.ManufacturingDate)
	if err != nil {
		errs["ManufacturingDate"] = "Date must be formatted YYYY-MM-DD"
	}
	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		errs["ExpiryDate"] = "Date must be formatted YYYY-MM-DD"
	}
	if len(errs) == 0 && !expiry.After(manufactured) {
		errs["ExpiryDate"] = fmt.Sprintf("Expiry must be after %s", input.ManufacturingDate)
	}
	if len(errs) > 0 {
		return RegistryRecord{}, errs
	}
	return RegistryRecord{
		ProductID:         input.ProductID,
		BatchNumber:       input.BatchNumber,
		Name:              input.Name,
		Manufacturer:      input.Manufacturer,
		ManufacturingDate: manufactured,
		ExpiryDate:        expiry,
		IsAuthentic:       input.IsAuthentic,
	}, nil
}
