package analytics

import "sync"

// Tally accumulates verification outcome counts for the dashboard. It
// satisfies the verification metrics port so the matcher feeds it
// directly.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewTally builds an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// ObserveVerification records one verdict by outcome name.
func (t *Tally) ObserveVerification(outcome string) {
	t.mu.Lock()
	t.counts[outcome]++
	t.mu.Unlock()
}

// Snapshot returns a copy of the current counts.
func (t *Tally) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
