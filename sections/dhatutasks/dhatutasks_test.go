package dhatutasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestRunInsertsItAgamaForSetRootBeforeConsonantInitialAffix(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("BU"))
	p.AddTerm(term.New("tvA"))
	idx := Run(p, 1, true)
	require.Equal(t, 2, idx)
	assert.Equal(t, "i", p.Terms[1].Text)
	assert.True(t, p.Terms[1].HasTag(term.Agama))
	assert.Equal(t, "tvA", p.Terms[2].Text)
}

func TestRunIsNoOpForAnitRoot(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	p.AddTerm(term.New("tvA"))
	idx := Run(p, 1, false)
	assert.Equal(t, 1, idx)
	assert.Len(t, p.Terms, 2)
}

func TestRunIsNoOpBeforeVowelInitialAffix(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("BU"))
	p.AddTerm(term.New("ati"))
	idx := Run(p, 1, true)
	assert.Equal(t, 1, idx)
	assert.Len(t, p.Terms, 2)
}
