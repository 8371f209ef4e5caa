package settings

import (
	"context"
	"sync"

	"github.com/pharmasync/pharmasync/internal/shared"
	"github.com/pharmasync/pharmasync/internal/status"
)

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service holds the single settings document. Reads and writes are
// guarded by a mutex since the thresholds are consulted on every
// inventory and document read.
type Service struct {
	mu      sync.RWMutex
	current Settings
	audit   AuditPort
}

// NewService builds Service seeded with the given settings. Zero
// threshold values fall back to the classifier defaults.
func NewService(initial Settings, audit AuditPort) *Service {
	if initial.System.StockAlertThreshold <= 0 {
		initial.System.StockAlertThreshold = status.DefaultLowStockThreshold
	}
	if initial.System.ExpiryAlertDays <= 0 {
		initial.System.ExpiryAlertDays = status.DefaultExpiryWarnDays
	}
	return &Service{current: initial, audit: audit}
}

// Get returns the current settings document.
func (s *Service) Get(_ context.Context) Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// UpdateCompany replaces the company profile.
func (s *Service) UpdateCompany(ctx context.Context, profile CompanyProfile) Settings {
	s.mu.Lock()
	s.current.Company = profile
	updated := s.current
	s.mu.Unlock()
	s.recordAudit(ctx, "settings:company", map[string]any{"name": profile.Name})
	return updated
}

// UpdateSystem replaces the system settings. The new thresholds take
// effect on the next classifier read.
func (s *Service) UpdateSystem(ctx context.Context, system SystemSettings) Settings {
	s.mu.Lock()
	s.current.System = system
	updated := s.current
	s.mu.Unlock()
	s.recordAudit(ctx, "settings:system", map[string]any{
		"stockAlertThreshold": system.StockAlertThreshold,
		"expiryAlertDays":     system.ExpiryAlertDays,
	})
	return updated
}

// LowStockThreshold implements the inventory threshold port.
func (s *Service) LowStockThreshold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.System.StockAlertThreshold
}

// ExpiryWarnDays implements the documents warn-window port.
func (s *Service) ExpiryWarnDays() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.System.ExpiryAlertDays
}

func (s *Service) recordAudit(ctx context.Context, action string, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Actor:  shared.ActorFromContext(ctx),
		Action: action,
		Entity: "settings",
		Meta:   meta,
	})
}
