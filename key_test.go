package provenance

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEqualityByIndex(t *testing.T) {
	type ident struct{}

	m, err := NewTagged[ident, string]()
	require.NoError(t, err)

	k0 := m.Insert("a")
	k1 := m.Insert("b")

	assert.Equal(t, k0, k0)
	assert.NotEqual(t, k0, k1)

	// Keys enumerated later compare equal to the ones minted at insert.
	var enumerated []Key[ident]
	for k := range m.Keys() {
		enumerated = append(enumerated, k)
	}
	require.Len(t, enumerated, 2)
	assert.Equal(t, k0, enumerated[0])
	assert.Equal(t, k1, enumerated[1])
}

func TestKeyUsableAsGoMapKey(t *testing.T) {
	type lookup struct{}

	m, err := NewTagged[lookup, string]()
	require.NoError(t, err)

	names := map[Key[lookup]]string{}
	for _, n := range []string{"ada", "grace", "edsger"} {
		names[m.Insert(n)] = n
	}

	assert.Len(t, names, 3)
	for k, n := range names {
		assert.Equal(t, n, m.Get(k))
	}
}

func TestKeyOrderingByIndex(t *testing.T) {
	type seq struct{}

	m, err := NewTagged[seq, int]()
	require.NoError(t, err)

	keys := []Key[seq]{}
	for i := 0; i < 5; i++ {
		keys = append(keys, m.Insert(i))
	}

	shuffled := []Key[seq]{keys[3], keys[0], keys[4], keys[2], keys[1]}
	sort.Slice(shuffled, func(i, j int) bool {
		return shuffled[i].Index() < shuffled[j].Index()
	})
	assert.Equal(t, keys, shuffled)
}

func TestKeyString(t *testing.T) {
	type printable struct{}

	m, err := NewTagged[printable, bool]()
	require.NoError(t, err)

	k0 := m.Insert(true)
	k1 := m.Insert(false)

	assert.Equal(t, "Key(0)", k0.String())
	assert.Equal(t, "Key(1)", fmt.Sprintf("%v", k1))
}

func TestKeyCopySemantics(t *testing.T) {
	type copied struct{}

	m, err := NewTagged[copied, string]()
	require.NoError(t, err)

	original := m.Insert("value")
	duplicate := original

	// Copies are interchangeable and dropping them has no effect on the map.
	assert.Equal(t, m.Get(original), m.Get(duplicate))
	assert.Equal(t, 1, m.Len())
}
