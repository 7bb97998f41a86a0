package kosha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) *Kosha {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.Insert("Bavati", 1))
	require.NoError(t, b.Insert("Bavati", 2)) // duplicate key, second analysis
	require.NoError(t, b.Insert("rAmaH", 3))
	return b.Build()
}

func TestInsertRequiresLexicographicOrder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert("b", 1))
	err := b.Insert("a", 2)
	assert.Error(t, err)
}

func TestContainsKeyAndPrefix(t *testing.T) {
	k := buildSample(t)
	assert.True(t, k.ContainsKey("Bavati"))
	assert.False(t, k.ContainsKey("Bavat"))
	assert.True(t, k.ContainsPrefix("Bava"))
	assert.True(t, k.ContainsPrefix(""))
	assert.False(t, k.ContainsPrefix("xyz"))
}

func TestPrefixHoldsForEveryPrefixLength(t *testing.T) {
	k := buildSample(t)
	key := "rAmaH"
	for i := 0; i <= len(key); i++ {
		assert.True(t, k.ContainsPrefix(key[:i]), "prefix length %d", i)
	}
}

func TestGetAllReturnsEveryInsertedValueForKey(t *testing.T) {
	k := buildSample(t)
	values := k.GetAll("Bavati")
	assert.ElementsMatch(t, []uint64{1, 2}, values)
}

func TestGetAllForUniqueKey(t *testing.T) {
	k := buildSample(t)
	assert.Equal(t, []uint64{3}, k.GetAll("rAmaH"))
}

func TestStreamPreservesInsertionOrderAndOriginalKeys(t *testing.T) {
	k := buildSample(t)
	stream := k.Stream()
	require.Len(t, stream, 3)
	assert.Equal(t, "Bavati", stream[0].Key)
	assert.Equal(t, "Bavati", stream[1].Key)
	assert.Equal(t, "rAmaH", stream[2].Key)
}

func TestTooManyDuplicatesFails(t *testing.T) {
	b := NewBuilder()
	var err error
	for i := 0; i < MaxDuplicates; i++ {
		err = b.Insert("dup", uint64(i))
		require.NoError(t, err)
	}
	err = b.Insert("dup", uint64(MaxDuplicates))
	assert.Error(t, err)
}
