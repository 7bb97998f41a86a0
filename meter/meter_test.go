package meter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineFor builds a syllable string whose computed weights exactly match
// pattern: "k" + a long vowel for Guru, "k" + a short vowel for Laghu. The
// next syllable's leading consonant serves as the current vowel's single
// trailing consonant, which (per the classical rule) keeps a short vowel
// Laghu while a long vowel is always Guru regardless of what follows.
func lineFor(pattern []Weight) string {
	var sb strings.Builder
	for _, w := range pattern {
		sb.WriteByte('k')
		if w == Guru {
			sb.WriteByte('A')
		} else {
			sb.WriteByte('a')
		}
	}
	return sb.String()
}

func TestWeighDistinguishesLongAndShort(t *testing.T) {
	weights := Weigh("kA")
	require.Len(t, weights, 1)
	assert.Equal(t, Guru, weights[0])

	weights = Weigh("kaka")
	require.Len(t, weights, 2)
	assert.Equal(t, Laghu, weights[0])
}

func TestShortVowelBeforeClusterIsGuru(t *testing.T) {
	weights := Weigh("kakta")
	require.Len(t, weights, 2)
	assert.Equal(t, Guru, weights[0]) // 'a' before "kt" cluster
}

func TestGanasChunksIntoTriples(t *testing.T) {
	pada := VrttaPada{Weights: []Weight{Guru, Guru, Laghu, Guru, Laghu, Laghu}}
	ganas := pada.Ganas()
	require.Len(t, ganas, 2)
	assert.Equal(t, [3]Weight{Guru, Guru, Laghu}, ganas[0])
	assert.Equal(t, [3]Weight{Guru, Laghu, Laghu}, ganas[1])
}

func TestVasantatilakaFullMatch(t *testing.T) {
	lib := Default()
	require.Len(t, lib.Vrttas, 1)
	vrtta := lib.Vrttas[0]

	var full []Weight
	for _, p := range vrtta.Padas {
		full = append(full, p.Weights...)
	}
	line := lineFor(full)

	match, name := Classify(line)
	assert.Equal(t, FullMatch, match)
	assert.Equal(t, "vasantatilaka", name)
}

func TestPrefixMatchForPartialLine(t *testing.T) {
	lib := Default()
	full := lib.Vrttas[0].Padas[0].Weights[:7]
	line := lineFor(full)
	match, name := Classify(line)
	assert.Equal(t, Prefix, match)
	assert.Equal(t, "vasantatilaka", name)
}

func TestNoMatchForUnrelatedLine(t *testing.T) {
	match, _ := Classify(lineFor([]Weight{Laghu, Laghu, Laghu, Laghu}))
	assert.Equal(t, NoMatch, match)
}

func TestSetDefaultInjectsCustomLibrary(t *testing.T) {
	orig := Default()
	custom := &Library{Vrttas: []Vrtta{{Name: "toy", Padas: [4]VrttaPada{
		{Weights: []Weight{Guru, Laghu}}, {Weights: []Weight{Guru, Laghu}},
		{Weights: []Weight{Guru, Laghu}}, {Weights: []Weight{Guru, Laghu}},
	}}}}
	SetDefault(custom)
	match, name := Classify(lineFor([]Weight{Guru, Laghu, Guru, Laghu, Guru, Laghu, Guru, Laghu}))
	assert.Equal(t, FullMatch, match)
	assert.Equal(t, "toy", name)
	SetDefault(orig)
}
