package lakarakarya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vidyapeetha/vyakarana/prakriya"
)

func TestRunSetsLakaraAndPrayogaTags(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	Run(p, "BU", "laT", "kartari", "")
	lakara, _ := p.TagValue("lakara")
	prayoga, _ := p.TagValue("prayoga")
	assert.Equal(t, "laT", lakara)
	assert.Equal(t, "kartari", prayoga)
}

func TestRunDefaultsUbhayapadinToParasmaipada(t *testing.T) {
	pada := Run(prakriya.New(prakriya.NewConfig()), "pac", "laT", "kartari", "")
	assert.Equal(t, "parasmaipada", pada)
}

func TestRunHonorsExplicitPada(t *testing.T) {
	pada := Run(prakriya.New(prakriya.NewConfig()), "pac", "laT", "kartari", "atmanepada")
	assert.Equal(t, "atmanepada", pada)
}

func TestRunDefaultsUnknownDhatuToParasmaipada(t *testing.T) {
	pada := Run(prakriya.New(prakriya.NewConfig()), "xyz", "laT", "kartari", "")
	assert.Equal(t, "parasmaipada", pada)
}
