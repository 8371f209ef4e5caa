package shared

import (
	"context"
	"errors"
	"sync"
	"time"
)

// AuditLog represents one recorded mutation.
type AuditLog struct {
	Actor    string         `json:"actor"`
	Action   string         `json:"action"`
	Entity   string         `json:"entity"`
	EntityID string         `json:"entityId"`
	Meta     map[string]any `json:"meta,omitempty"`
	At       time.Time      `json:"at"`
}

// AuditLogger keeps a bounded in-memory trail of mutations, newest last.
// There is no persistence behind it; the trail lives for the process only.
type AuditLogger struct {
	mu      sync.Mutex
	entries []AuditLog
	limit   int
}

// NewAuditLogger returns an AuditLogger retaining at most limit entries.
func NewAuditLogger(limit int) *AuditLogger {
	if limit <= 0 {
		limit = 1000
	}
	return &AuditLogger{limit: limit}
}

// Record appends the log entry, evicting the oldest entry when full.
func (l *AuditLogger) Record(_ context.Context, log AuditLog) error {
	if l == nil {
		return errors.New("audit logger not initialised")
	}
	if log.Action == "" || log.Entity == "" {
		return errors.New("audit log requires action and entity")
	}
	if log.At.IsZero() {
		log.At = time.Now().UTC()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, log)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (l *AuditLogger) Recent(n int) []AuditLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]AuditLog, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
