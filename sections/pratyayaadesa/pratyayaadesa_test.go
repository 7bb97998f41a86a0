package pratyayaadesa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestCandidatesReturnsSingleEndingForLatPrathamaEka(t *testing.T) {
	got := Candidates("laT", "parasmaipada", "prathama", "eka")
	assert.Equal(t, []string{"ti"}, got)
}

func TestCandidatesReturnsBothOptionsForVaikalpikaCell(t *testing.T) {
	got := Candidates("liT", "parasmaipada", "madhyama", "eka")
	assert.ElementsMatch(t, []string{"Ta", "iTa"}, got)
}

func TestCandidatesReturnsNilForUnknownCell(t *testing.T) {
	got := Candidates("liw", "parasmaipada", "prathama", "eka")
	assert.Nil(t, got)
}

func TestInsertTinAddsTaggedTerm(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("BU"))
	idx := InsertTin(p, "ti")
	require.Equal(t, 1, idx)
	assert.Equal(t, "ti", p.Terms[idx].Text)
	assert.True(t, p.Terms[idx].HasTag(term.Tin))
	assert.True(t, p.Terms[idx].HasTag(term.Pratyaya))
}

func TestRunSupLooksUpAStemParadigm(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("rAma"))
	idx := RunSup(p, "pum", "prathama", "eka")
	require.Equal(t, 1, idx)
	assert.Equal(t, "s", p.Terms[idx].Text)
}

func TestRunSupReturnsNegativeOneForUnknownCell(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("rAma"))
	idx := RunSup(p, "pum", "saptami", "eka")
	assert.Equal(t, -1, idx)
}
