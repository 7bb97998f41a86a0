package acsandhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestRunAppliesSavarnaDirgha(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("vfkzA"))
	p.AddTerm(term.New("an"))
	Run(p)
	assert.Equal(t, "vfkzAn", p.Text())
}

func TestRunAppliesAyavayavaSandhi(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("Bo"))
	p.AddTerm(term.New("ati"))
	Run(p)
	assert.Equal(t, "Bavati", p.Text())
}

func TestRunLeavesConsonantBoundariesAlone(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	p.AddTerm(term.New("a"))
	p.AddTerm(term.New("te"))
	Run(p)
	assert.Equal(t, "pacate", p.Text())
}

func TestRunAppliesYanSandhi(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("newf"))
	p.AddTerm(term.New("e"))
	Run(p)
	assert.Equal(t, "newre", p.Text())
}

func TestRunSkipsSandhiInChandasiMode(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig(prakriya.WithChandasi(true)))
	p.AddTerm(term.New("vfkzA"))
	p.AddTerm(term.New("an"))
	Run(p)
	assert.Equal(t, "vfkzAan", p.Text())
}
