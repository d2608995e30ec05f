package provenance

import (
	"fmt"
	"iter"
)

// TaggedMap is a Map whose provenance tag is a type separate from the type
// of the stored values. This allows multiple maps storing the same value
// type to coexist, as long as each uses a distinct tag type:
//
//	type domestic struct{}
//	type foreign struct{}
//
//	dom, _ := provenance.NewTagged[domestic, Currency]()
//	fgn, _ := provenance.NewTagged[foreign, Currency]()
//
// Keys minted by one are not accepted by the other; Key[domestic] and
// Key[foreign] are incompatible types.
//
// A Map can be thought of as the special case TaggedMap[V, V], and that is
// how it is implemented. Both kinds draw tags from one shared pool, so a
// Map[int] and a TaggedMap[int, B] for any B compete for the same claim and
// only one of the two can ever be constructed. This coupling is deliberate
// and documented behavior, but should not be relied upon to stay this way
// across major versions.
//
// A TaggedMap is not safe for concurrent mutation without external locking.
type TaggedMap[Tag, Value any] struct {
	// Slots are boxed so that pointers handed out by GetMut, FindMut and
	// ValuesMut stay valid when the slice grows. A slot is never removed
	// or relocated for the life of the map.
	slots []*Value
}

// NewTagged creates an empty map after claiming the Tag type in the
// process-wide registry. It returns ErrTagClaimed if any map, live or
// destroyed, has ever claimed the same tag. This is the only operation in
// the package that can fail.
//
// Construction may be raced from multiple goroutines; exactly one caller
// per tag succeeds.
func NewTagged[Tag, Value any]() (*TaggedMap[Tag, Value], error) {
	t := tagOf[Tag]()
	if !claimTag(t) {
		return nil, fmt.Errorf("%w: %s", ErrTagClaimed, t)
	}
	return &TaggedMap[Tag, Value]{}, nil
}

// Insert appends value to the map and mints a key for its slot. It never
// fails, and inserting equal values yields distinct keys.
func (m *TaggedMap[Tag, Value]) Insert(value Value) Key[Tag] {
	index := len(m.slots)
	m.slots = append(m.slots, &value)
	return newKey[Tag](index)
}

// Get returns the value stored at the key's slot.
//
// Because only one map with this Tag can exist, any Key[Tag] was minted by
// this map and its slot is in bounds. The one exception is the forged zero
// value Key[Tag]{} used before any insert, which panics — a programmer
// error, not a recoverable condition.
func (m *TaggedMap[Tag, Value]) Get(key Key[Tag]) Value {
	return *m.slots[key.index]
}

// GetMut returns a pointer to the value stored at the key's slot. The
// pointer stays valid for the life of the map; slots never move. Mutating
// through it is visible to every later Get with the same key.
func (m *TaggedMap[Tag, Value]) GetMut(key Key[Tag]) *Value {
	return m.slots[key.index]
}

// Len returns the number of values inserted so far. It never decreases.
func (m *TaggedMap[Tag, Value]) Len() int {
	return len(m.slots)
}

// Keys returns an iterator over every key minted by this map, in insertion
// order. The sequence is finite and can be ranged over multiple times.
func (m *TaggedMap[Tag, Value]) Keys() iter.Seq[Key[Tag]] {
	return func(yield func(Key[Tag]) bool) {
		for i := range m.slots {
			if !yield(newKey[Tag](i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in insertion order.
func (m *TaggedMap[Tag, Value]) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, slot := range m.slots {
			if !yield(*slot) {
				return
			}
		}
	}
}

// ValuesMut returns an iterator over pointers to the stored values in
// insertion order, for mutating values in place during a scan.
func (m *TaggedMap[Tag, Value]) ValuesMut() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, slot := range m.slots {
			if !yield(slot) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in insertion order.
func (m *TaggedMap[Tag, Value]) All() iter.Seq2[Key[Tag], Value] {
	return func(yield func(Key[Tag], Value) bool) {
		for i, slot := range m.slots {
			if !yield(newKey[Tag](i), *slot) {
				return
			}
		}
	}
}

// Find scans in insertion order and returns the first value satisfying the
// predicate, stopping at the first match. The second result reports whether
// a match was found.
func (m *TaggedMap[Tag, Value]) Find(predicate func(Value) bool) (Value, bool) {
	for _, slot := range m.slots {
		if predicate(*slot) {
			return *slot, true
		}
	}
	var zero Value
	return zero, false
}

// FindMut scans in insertion order and returns a pointer to the first value
// satisfying the predicate, or nil and false if none match.
func (m *TaggedMap[Tag, Value]) FindMut(predicate func(Value) bool) (*Value, bool) {
	for _, slot := range m.slots {
		if predicate(*slot) {
			return slot, true
		}
	}
	return nil, false
}
