package provenance

import (
	"reflect"
	"sort"

	"github.com/sasha-s/go-deadlock"
)

// The tag registry is the process-wide record of every provenance tag that
// has ever been claimed by a map. It only grows: there is no release
// operation, so a destroyed map's tag stays spent for the remainder of the
// process. This is what lets lookups trust a key's brand — no second map for
// the same tag can ever come into existence, not even after the first is
// gone.
var (
	registryMu  deadlock.Mutex
	claimedTags = make(map[reflect.Type]struct{})
)

// claimTag atomically records t as claimed and reports whether the claim
// succeeded. When multiple goroutines race to claim the same tag, exactly
// one wins.
func claimTag(t reflect.Type) bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, taken := claimedTags[t]; taken {
		return false
	}
	claimedTags[t] = struct{}{}
	return true
}

// tagOf returns the identity of a tag type parameter. The pointer/Elem
// round trip works for any Tag, including interface types, without needing
// an instantiated value.
func tagOf[Tag any]() reflect.Type {
	return reflect.TypeOf((*Tag)(nil)).Elem()
}

// ClaimedTagCount returns the number of provenance tags claimed so far in
// this process. The count never decreases.
func ClaimedTagCount() int {
	registryMu.Lock()
	defer registryMu.Unlock()
	return len(claimedTags)
}

// ClaimedTags returns the names of all claimed provenance tags, sorted for
// stable output. Intended for diagnostics; the snapshot may be stale by the
// time it is read, but a tag present in it is guaranteed to stay claimed
// forever.
func ClaimedTags() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	out := make([]string, 0, len(claimedTags))
	for t := range claimedTags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}
