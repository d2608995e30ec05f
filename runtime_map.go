package provenance

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// RuntimeKey is the runtime-branded counterpart of Key, minted by a
// RuntimeMap. Where Key carries its provenance in the type system,
// RuntimeKey carries it as data: the origin token of the map that minted
// it. Comparison with == therefore includes the origin, so keys from
// different runtime maps never compare equal even at the same index.
type RuntimeKey[Value any] struct {
	index  int
	origin uuid.UUID
}

// Index returns the key's slot index within the map that minted it.
func (k RuntimeKey[Value]) Index() int {
	return k.index
}

// String renders the slot index and a prefix of the origin token.
func (k RuntimeKey[Value]) String() string {
	return fmt.Sprintf("RuntimeKey(%d@%.8s)", k.index, k.origin)
}

// RuntimeMap is a provenance map identified by a freshly generated token
// instead of a type. It exists for callers that need arbitrarily many maps
// at runtime — per-request arenas, table-driven tests — where minting a new
// static tag type per map is impossible.
//
// The compile-time brand check of Map and TaggedMap becomes a runtime
// check here: every key carries a copy of its map's origin token, and
// resolving a key against a map that did not mint it panics. The token is
// drawn from uuid.New at construction, so construction never fails and the
// global tag registry is not involved; freshness of the token is the
// uniqueness guarantee.
//
// Slot semantics are identical to TaggedMap: append-only, mutate in place,
// never relocate. Not safe for concurrent mutation without external
// locking.
type RuntimeMap[Value any] struct {
	origin uuid.UUID
	slots  []*Value
}

// NewRuntime creates an empty map with a fresh origin token. Unlike New and
// NewTagged it cannot fail, and destroyed runtime maps do not leave a spent
// tag behind.
func NewRuntime[Value any]() *RuntimeMap[Value] {
	return &RuntimeMap[Value]{origin: uuid.New()}
}

// Insert appends value to the map and mints a key carrying the map's
// origin token. It never fails; equal values get distinct keys.
func (m *RuntimeMap[Value]) Insert(value Value) RuntimeKey[Value] {
	index := len(m.slots)
	m.slots = append(m.slots, &value)
	return RuntimeKey[Value]{index: index, origin: m.origin}
}

// Owns reports whether key was minted by this map.
func (m *RuntimeMap[Value]) Owns(key RuntimeKey[Value]) bool {
	return key.origin == m.origin
}

// checkOrigin is the runtime substitute for the compile-time brand check.
// Presenting a foreign key is a programmer error, so it faults instead of
// returning a wrong value.
func (m *RuntimeMap[Value]) checkOrigin(key RuntimeKey[Value]) {
	if key.origin != m.origin {
		panic(fmt.Sprintf("provenance: key %v was not minted by this map (origin %.8s)", key, m.origin))
	}
}

// Get returns the value stored at the key's slot. It panics if key was
// minted by a different runtime map.
func (m *RuntimeMap[Value]) Get(key RuntimeKey[Value]) Value {
	m.checkOrigin(key)
	return *m.slots[key.index]
}

// GetMut returns a stable pointer to the value stored at the key's slot.
// It panics if key was minted by a different runtime map.
func (m *RuntimeMap[Value]) GetMut(key RuntimeKey[Value]) *Value {
	m.checkOrigin(key)
	return m.slots[key.index]
}

// Len returns the number of values inserted so far. It never decreases.
func (m *RuntimeMap[Value]) Len() int {
	return len(m.slots)
}

// Keys returns an iterator over every key minted by this map, in insertion
// order.
func (m *RuntimeMap[Value]) Keys() iter.Seq[RuntimeKey[Value]] {
	return func(yield func(RuntimeKey[Value]) bool) {
		for i := range m.slots {
			if !yield(RuntimeKey[Value]{index: i, origin: m.origin}) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in insertion order.
func (m *RuntimeMap[Value]) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, slot := range m.slots {
			if !yield(*slot) {
				return
			}
		}
	}
}

// ValuesMut returns an iterator over pointers to the stored values in
// insertion order.
func (m *RuntimeMap[Value]) ValuesMut() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, slot := range m.slots {
			if !yield(slot) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in insertion order.
func (m *RuntimeMap[Value]) All() iter.Seq2[RuntimeKey[Value], Value] {
	return func(yield func(RuntimeKey[Value], Value) bool) {
		for i, slot := range m.slots {
			if !yield(RuntimeKey[Value]{index: i, origin: m.origin}, *slot) {
				return
			}
		}
	}
}

// Find returns the first value in insertion order satisfying the predicate.
func (m *RuntimeMap[Value]) Find(predicate func(Value) bool) (Value, bool) {
	for _, slot := range m.slots {
		if predicate(*slot) {
			return *slot, true
		}
	}
	var zero Value
	return zero, false
}

// FindMut returns a pointer to the first value in insertion order
// satisfying the predicate, or nil and false if none match.
func (m *RuntimeMap[Value]) FindMut(predicate func(Value) bool) (*Value, bool) {
	for _, slot := range m.slots {
		if predicate(*slot) {
			return slot, true
		}
	}
	return nil, false
}
