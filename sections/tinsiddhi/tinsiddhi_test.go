package tinsiddhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestRunReplacesJhiWithUsInLitParasmaipadaBahu(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	p.AddTerm(term.New("jhi"))
	Run(p, 1, "liT", "parasmaipada", "bahu")
	assert.Equal(t, "us", p.Terms[1].Text)
}

func TestRunLeavesOtherCellsAlone(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	p.AddTerm(term.New("jhi"))
	Run(p, 1, "laT", "parasmaipada", "bahu")
	assert.Equal(t, "jhi", p.Terms[1].Text)
}
