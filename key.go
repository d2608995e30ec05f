package provenance

import "fmt"

// Key is a lightweight handle referencing a value stored in a Map or
// TaggedMap. The Tag type parameter is never instantiated; it exists purely
// to brand the key with the provenance of the map that minted it, so that a
// key from one map cannot be presented to another. Since at most one map may
// exist per tag, a Key[T] accepted by a map's method signature is guaranteed
// to have been minted by that map.
//
// Keys are comparable with == and usable as Go map keys; identity is the
// slot index alone. They are freely copyable and dropping one has no effect
// on the map that minted it.
//
// The zero value Key[T]{} references slot 0 without having been minted.
// Resolving it against a map that has never had an insert is a programmer
// error and panics.
type Key[Tag any] struct {
	index int
}

// newKey mints a key for a slot. Deliberately unexported: only a map may
// mint keys, and only for slots it owns. That restriction is what makes
// unchecked resolution sound.
func newKey[Tag any](index int) Key[Tag] {
	return Key[Tag]{index: index}
}

// Index returns the key's slot index. Useful for ordering keys by insertion
// sequence; it carries no information about which map minted the key.
func (k Key[Tag]) Index() int {
	return k.index
}

// String renders the raw slot index for diagnostics. It deliberately does
// not name a map: a key carries no reference to its map, only a
// compile-time brand.
func (k Key[Tag]) String() string {
	return fmt.Sprintf("Key(%d)", k.index)
}
