package dvitva

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestAppliesOnlyForLit(t *testing.T) {
	assert.True(t, Applies("liT"))
	assert.False(t, Applies("laT"))
}

func TestRunTagsAbhyastaForLit(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	fired := Run(p, 0, "liT")
	assert.True(t, fired)
	assert.True(t, p.Terms[0].HasTag(term.Abhyasta))
}

func TestRunDoesNothingForOtherLakaras(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("pac"))
	fired := Run(p, 0, "laT")
	assert.False(t, fired)
	assert.False(t, p.Terms[0].HasTag(term.Abhyasta))
}
