// Package memstore provides mutex-guarded in-memory record collections.
// Each entity type gets its own Collection; there is no persistence engine
// behind it. Collections hand out value copies so callers never share
// mutable state with the store.
package memstore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates the record id is absent from the collection.
var ErrNotFound = errors.New("memstore: record not found")

// Entity is implemented by stored record types. WithID returns a copy of the
// record carrying the assigned identity; identities are assigned once at
// creation and never reassigned.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
}

// Collection is an insertion-ordered in-memory record list. Insertion order
// is observable through List and is part of the contract: the verification
// registry relies on it as the first-match tie-break.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

// NewCollection returns an empty collection.
func NewCollection[T Entity[T]]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Create assigns a fresh identity, stores the record and returns the stored
// copy. Any identity already present on the input is discarded.
func (c *Collection[T]) Create(item T) T {
	stored := item.WithID(uuid.NewString())
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = append(c.order, stored.GetID())
	c.items[stored.GetID()] = stored
	return stored
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Update replaces the stored record in place, keeping its list position.
func (c *Collection[T]) Update(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if _, ok := c.items[item.GetID()]; !ok {
		return zero, ErrNotFound
	}
	c.items[item.GetID()] = item
	return item, nil
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns copies of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
