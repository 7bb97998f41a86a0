package prakriya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/term"
)

func newTestPrakriya() *Prakriya {
	p := New(NewConfig())
	p.AddTerm(term.New("Bu"))
	p.AddTerm(term.New("a"))
	p.AddTerm(term.New("ti"))
	return p
}

func TestTextConcatenationInvariant(t *testing.T) {
	p := newTestPrakriya()
	assert.Equal(t, "Buati", p.Text())
}

func TestOpAppliesAndRecordsHistory(t *testing.T) {
	p := newTestPrakriya()
	rule := Sutra("7.3.84")
	p.Op(rule, func(pr *Prakriya) {
		pr.Terms[0].ReplaceAntya("o")
	})
	require.Len(t, p.History, 1)
	assert.Equal(t, rule, p.History[0].Rule)
	assert.Equal(t, "Boati", p.History[0].Text)
}

func TestOpTermTargetsOneTerm(t *testing.T) {
	p := newTestPrakriya()
	p.OpTerm(Sutra("1.1.1"), 1, func(tm *term.Term) {
		tm.SetText("")
	})
	assert.Equal(t, "Buti", p.Text())
}

func TestOptDefaultsToAcceptAndLogsChoice(t *testing.T) {
	p := newTestPrakriya()
	rule := Varttika("x.1")
	fired := p.Opt(rule, func(pr *Prakriya) { pr.Terms[2].SetText("te") })
	assert.True(t, fired)
	require.Len(t, p.ChoiceLog, 1)
	assert.Equal(t, Accepted, p.ChoiceLog[0].Status)
	assert.Equal(t, "Buate", p.Text())
}

func TestOptHonorsReplayDecline(t *testing.T) {
	rule := Varttika("x.1")
	script := NewReplayScript()
	script.Pin(rule, Declined)
	p := New(NewConfig(WithReplay(script)))
	p.AddTerm(term.New("ti"))

	fired := p.Opt(rule, func(pr *Prakriya) { pr.Terms[0].SetText("tu") })
	assert.False(t, fired)
	assert.Equal(t, "ti", p.Text())
	assert.Equal(t, Declined, p.ChoiceLog[0].Status)
}

func TestEveryChoiceHasExactlyOneStatus(t *testing.T) {
	p := newTestPrakriya()
	p.Opt(Varttika("a"), func(*Prakriya) {})
	p.Opt(Varttika("b"), func(*Prakriya) {})
	require.Len(t, p.ChoiceLog, 2)
	for _, c := range p.ChoiceLog {
		assert.True(t, c.Status == Accepted || c.Status == Declined)
	}
}

func TestFindFirstAndLast(t *testing.T) {
	p := newTestPrakriya()
	p.Terms[0].AddTag(term.Dhatu)
	p.Terms[2].AddTag(term.Dhatu)
	assert.Equal(t, 0, p.FindFirst(term.Dhatu))
	assert.Equal(t, 2, p.FindLast(term.Dhatu))
	assert.Equal(t, -1, p.FindFirst(term.Krt))
}

func TestInsertAfterShiftsIndices(t *testing.T) {
	p := newTestPrakriya()
	p.InsertAfter(0, term.New("X"))
	assert.Equal(t, "X", p.Terms[1].Text)
	assert.Equal(t, "a", p.Terms[2].Text)
	assert.Equal(t, "BuXati", p.Text())
}

func TestCloneIsIndependent(t *testing.T) {
	p := newTestPrakriya()
	clone := p.Clone()
	clone.Terms[0].SetText("XX")
	assert.NotEqual(t, p.Text(), clone.Text())
}

func TestReplayScriptYAMLRoundTrip(t *testing.T) {
	script := NewReplayScript()
	script.Pin(Sutra("1.2.3"), Accepted)
	script.Pin(Varttika("v.1"), Declined)

	data, err := script.MarshalReplayYAML()
	require.NoError(t, err)

	parsed, err := ParseReplayYAML(data)
	require.NoError(t, err)

	status, ok := parsed.Lookup(Sutra("1.2.3"))
	require.True(t, ok)
	assert.Equal(t, Accepted, status)

	status, ok = parsed.Lookup(Varttika("v.1"))
	require.True(t, ok)
	assert.Equal(t, Declined, status)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.True(t, cfg.LogSteps)
	assert.False(t, cfg.Chandasi)
	assert.False(t, cfg.NlpMode)
}
