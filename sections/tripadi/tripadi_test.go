package tripadi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestRunReplacesFinalSWithVisarga(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("rAmas"))
	Run(p)
	assert.Equal(t, "rAmaH", p.Text())
}

func TestRunReplacesFinalRWithVisarga(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("punar"))
	Run(p)
	assert.Equal(t, "punaH", p.Text())
}

func TestRunLeavesOtherFinalsAlone(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("Bavati"))
	Run(p)
	assert.Equal(t, "Bavati", p.Text())
}

func TestRunPreservesFinalSInNlpMode(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig(prakriya.WithNlpMode(true)))
	p.AddTerm(term.New("rAmas"))
	Run(p)
	assert.Equal(t, "rAmas", p.Text())
}

func TestRunPreservesFinalRInNlpMode(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig(prakriya.WithNlpMode(true)))
	p.AddTerm(term.New("punar"))
	Run(p)
	assert.Equal(t, "punar", p.Text())
}
