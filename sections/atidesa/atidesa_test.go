package atidesa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestBlocksStrengtheningForNgit(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	tm := term.New("Sa")
	tm.AddTag(term.Ngit)
	p.AddTerm(tm)
	assert.True(t, BlocksStrengthening(p, 0))
}

func TestBlocksStrengtheningForKit(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	tm := term.New("kvip")
	tm.AddTag(term.Kit)
	p.AddTerm(tm)
	assert.True(t, BlocksStrengthening(p, 0))
}

func TestBlocksStrengtheningIsFalseWithoutTheTags(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("Sap"))
	assert.False(t, BlocksStrengthening(p, 0))
}

func TestBlocksStrengtheningIsFalseForMissingIndex(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("Sap"))
	assert.False(t, BlocksStrengthening(p, 5))
}
