package dhatukarya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/dhatupatha"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

func TestRunSeedsDhatuWithoutUpasarga(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	dhatu := dhatupatha.Dhatu{Upadesha: "BU", Code: "BU", Gana: 1, Artha: "sattAyAm"}
	idx := Run(p, dhatu, nil)
	require.Equal(t, 0, idx)
	assert.Equal(t, "BU", p.Terms[idx].Text)
	assert.True(t, p.Terms[idx].HasTag(term.Dhatu))
	assert.Equal(t, 1, p.Terms[idx].Gana)
}

func TestRunPrependsUpasargas(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	dhatu := dhatupatha.Dhatu{Upadesha: "ad", Code: "ad", Gana: 2}
	idx := Run(p, dhatu, []string{"pra"})
	require.Equal(t, 1, idx)
	assert.Equal(t, "pra", p.Terms[0].Text)
	assert.True(t, p.Terms[0].HasTag(term.Upasarga))
	assert.Equal(t, "ad", p.Terms[1].Text)
}

func TestRunNormalizesInitialRetroflexMarkers(t *testing.T) {
	p := prakriya.New(prakriya.NewConfig())
	dhatu := dhatupatha.Dhatu{Upadesha: "RI", Code: "RI", Gana: 1}
	idx := Run(p, dhatu, nil)
	assert.Equal(t, "nI", p.Terms[idx].Text)
}
