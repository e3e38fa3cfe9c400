// Package ids provides opaque identifiers for nodes and runtime instances,
// and the interning rules for primitive-valued instances.
package ids

import (
	"fmt"

	"fortio.org/safecast"
)

// ID is an opaque identifier. Nodes and instances are keyed by ID; the only
// operations the core performs on an ID are equality and use as a map key.
type ID string

// None is the zero value, never assigned to a real node or instance.
const None ID = ""

// NumberPrefix and StringPrefix mark interned primitive instance ids.
// A consumer must never choose a Generator that can produce an ID colliding
// with these prefixes.
const (
	NumberPrefix = "N!"
	StringPrefix = "S!"
)

// Generator is the external uuid-generator collaborator: any source of
// opaque ids that are globally unique across one linker run and do not
// collide with the interning prefixes above.
type Generator interface {
	NewID() ID
}

// NumberID formats the interning key for a rounded numeric value's canonical
// string form. The caller is responsible for rounding to the configured
// decimal precision before calling this.
func NumberID(canonical string) ID {
	return ID(NumberPrefix + canonical)
}

// StringID formats the interning key for a string instance.
func StringID(value string) ID {
	return ID(StringPrefix + value)
}

// Cache is a generic getOrUpdate(key)(compute) store: return the cached
// value for key, or compute-and-store once. Entries never change once set,
// so exposure to a single-threaded consumer is safe without coordination.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

// NewCache builds an empty cache with an optional capacity hint, guarding
// against an out-of-range hint with safecast rather than silently
// truncating it.
func NewCache[K comparable, V any](capHint uint) *Cache[K, V] {
	n, err := safecast.Conv[int](capHint)
	if err != nil {
		panic(fmt.Errorf("cache capacity overflow: %w", err))
	}
	return &Cache[K, V]{entries: make(map[K]V, n)}
}

// GetOrUpdate returns the cached value for key, computing and storing it on
// first miss. compute is invoked at most once per key.
func (c *Cache[K, V]) GetOrUpdate(key K, compute func() V) V {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := compute()
	c.entries[key] = v
	return v
}

// Peek returns the cached value without computing it.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Len reports how many entries have been computed so far.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// String returns the underlying string value of id.
func (id ID) String() string { return string(id) }

// IsValid reports whether id is anything other than None.
func (id ID) IsValid() bool { return id != None }
