package provenance

import "iter"

// Map is a provenance map whose value type doubles as its provenance tag,
// sparing callers from declaring a separate tag type in the common case of
// one map per value type:
//
//	currencies, err := provenance.New[Currency]()
//	if err != nil { ... }
//	sek := currencies.Insert(Currency{Name: "Swedish Krona"})
//	name := currencies.Get(sek).Name
//
// A Map[V] is a TaggedMap[V, V]; the two kinds share one pool of tags, so a
// Map[V] and any TaggedMap[V, B] are mutually exclusive within a process.
type Map[Value any] struct {
	inner TaggedMap[Value, Value]
}

// New creates an empty map using Value itself as the provenance tag.
// It returns ErrTagClaimed if the tag has ever been claimed before.
func New[Value any]() (*Map[Value], error) {
	inner, err := NewTagged[Value, Value]()
	if err != nil {
		return nil, err
	}
	return &Map[Value]{inner: *inner}, nil
}

// Insert appends value to the map and mints a key for its slot. Equal
// values inserted twice get distinct keys.
func (m *Map[Value]) Insert(value Value) Key[Value] {
	return m.inner.Insert(value)
}

// Get returns the value stored at the key's slot.
func (m *Map[Value]) Get(key Key[Value]) Value {
	return m.inner.Get(key)
}

// GetMut returns a stable pointer to the value stored at the key's slot.
func (m *Map[Value]) GetMut(key Key[Value]) *Value {
	return m.inner.GetMut(key)
}

// Len returns the number of values inserted so far. It never decreases.
func (m *Map[Value]) Len() int {
	return m.inner.Len()
}

// Keys returns an iterator over every key minted by this map, in insertion
// order.
func (m *Map[Value]) Keys() iter.Seq[Key[Value]] {
	return m.inner.Keys()
}

// Values returns an iterator over the stored values in insertion order.
func (m *Map[Value]) Values() iter.Seq[Value] {
	return m.inner.Values()
}

// ValuesMut returns an iterator over pointers to the stored values in
// insertion order.
func (m *Map[Value]) ValuesMut() iter.Seq[*Value] {
	return m.inner.ValuesMut()
}

// All returns an iterator over key/value pairs in insertion order.
func (m *Map[Value]) All() iter.Seq2[Key[Value], Value] {
	return m.inner.All()
}

// Find returns the first value in insertion order satisfying the predicate.
func (m *Map[Value]) Find(predicate func(Value) bool) (Value, bool) {
	return m.inner.Find(predicate)
}

// FindMut returns a pointer to the first value in insertion order
// satisfying the predicate, or nil and false if none match.
func (m *Map[Value]) FindMut(predicate func(Value) bool) (*Value, bool) {
	return m.inner.FindMut(predicate)
}
