package verification

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pharmasync/pharmasync/internal/shared"
)

// DefaultLookupDelay simulates the upstream registry's network latency.
const DefaultLookupDelay = 1500 * time.Millisecond

// RegistryPort abstracts registry access for the matcher. Records come back
// in registry order, which is the first-match tie-break.
type RegistryPort interface {
	ListRecords(ctx context.Context) ([]RegistryRecord, error)
}

// Matcher resolves an identifier against the registry. It is a pure lookup
// with a simulated latency, not a fraud-detection algorithm: authenticity is
// read off the matched record.
//
// Only the latest issued query may produce a visible verdict. Every Verify
// call takes a ticket from a generation counter; a lookup whose ticket is
// stale by the time it resolves returns ErrSuperseded instead of a verdict,
// so a stale verdict cannot be applied by convention-breaking callers.
type Matcher struct {
	registry   RegistryPort
	delay      time.Duration
	generation atomic.Uint64
	group      singleflight.Group
}

// NewMatcher builds a Matcher. A non-positive delay disables the simulated
// latency, which the tests rely on.
func NewMatcher(registry RegistryPort, delay time.Duration) *Matcher {
	return &Matcher{registry: registry, delay: delay}
}

// Verify resolves query against the registry and returns a verdict.
//
// The query is trimmed of surrounding whitespace; a blank query fails with
// shared.ErrEmptyQuery before the registry is consulted. Matching is exact
// against either ProductID or BatchNumber, first match wins. Absence of a
// match is the not_found outcome, not an error. Identical queries in flight
// at the same time share one lookup.
func (m *Matcher) Verify(ctx context.Context, query string) (Verdict, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Verdict{}, shared.ErrEmptyQuery
	}

	ticket := m.generation.Add(1)

	ch := m.group.DoChan(trimmed, func() (any, error) {
		return m.lookup(ctx, trimmed)
	})

	var verdict Verdict
	select {
	case <-ctx.Done():
		return Verdict{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Verdict{}, res.Err
		}
		verdict = res.Val.(Verdict)
	}

	if ticket != m.generation.Load() {
		return Verdict{}, ErrSuperseded
	}
	return verdict, nil
}

func (m *Matcher) lookup(ctx context.Context, query string) (Verdict, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Verdict{}, ctx.Err()
		case <-timer.C:
		}
	}

	records, err := m.registry.ListRecords(ctx)
	if err != nil {
		return Verdict{}, err
	}
	for _, record := range records {
		if record.ProductID == query || record.BatchNumber == query {
			outcome := OutcomeAuthentic
			if !record.IsAuthentic {
				outcome = OutcomeCounterfeit
			}
			return Verdict{
				Outcome: outcome,
				Query:   query,
				Result:  &Result{RegistryRecord: record, VerificationDate: time.Now().UTC()},
			}, nil
		}
	}
	return Verdict{Outcome: OutcomeNotFound, Query: query}, nil
}
