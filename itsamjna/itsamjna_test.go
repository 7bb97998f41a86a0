package itsamjna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestStripsFinalKitMarker(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("DAk"))
	Run(p, 0)
	assert.Equal(t, "DA", p.Terms[0].Text)
	assert.True(t, p.Terms[0].HasTag(term.Kit))
}

func TestStripsInitialMarker(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("YiW"))
	Run(p, 0)
	assert.Equal(t, "iW", p.Terms[0].Text)
	assert.True(t, p.Terms[0].HasTag("Yit"))
}

func TestNoMarkersLeavesTextUnchanged(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("BU"))
	Run(p, 0)
	assert.Equal(t, "BU", p.Terms[0].Text)
}

func TestUpadeshaPreservedAfterStrip(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("DAk"))
	Run(p, 0)
	require.Equal(t, "DAk", p.Terms[0].Upadesha)
}

func TestRunAllIsIdempotentPerTerm(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	p.AddTerm(term.New("DAk"))
	RunAll(p)
	RunAll(p) // second call should be a no-op since Text != Upadesha now
	assert.Equal(t, "DA", p.Terms[0].Text)
}
