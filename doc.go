// Package provenance provides append-only containers whose keys are
// guaranteed to be valid for the container that issued them.
//
// A key is minted when a value is inserted into a map. The key's generic
// type parameter brands it with the map's provenance tag, and because at
// most one map may ever exist per tag within a process, a key whose brand
// matches a map's tag can only have been minted by that exact map. Lookups
// therefore return the value directly, with no ok-flag or error to unwrap.
//
// Core components include:
//   - Map: a container whose value type doubles as its provenance tag
//   - TaggedMap: a container with a provenance tag separate from its value type
//   - Key: a copyable, comparable handle branded with a provenance tag
//   - RuntimeMap: a container identified by a runtime token instead of a type,
//     for callers that need arbitrarily many maps at runtime
//
// Tag uniqueness is enforced by a process-wide registry. The registry is
// monotonic: a tag once claimed is never released, even after the map that
// claimed it is gone. This removes an entire class of temporal bugs (a map
// recreated behind the back of outstanding keys) at the cost of tags being a
// non-renewable resource. Tests that need re-creatable maps should declare a
// fresh tag type per test or use RuntimeMap.
//
// Maps are append-only: once inserted, a value occupies its slot for the
// map's entire lifetime. It may be mutated in place through GetMut, but it is
// never removed or relocated, so issued keys never dangle.
//
// A single map is not safe for concurrent mutation; callers that share a map
// across goroutines must provide their own synchronization. Construction is
// safe to race from multiple goroutines: the registry guarantees exactly one
// winner per tag.
package provenance
