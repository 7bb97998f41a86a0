package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTermStartsUnstripped(t *testing.T) {
	tm := New("BU")
	require.Equal(t, "BU", tm.Upadesha)
	require.Equal(t, "BU", tm.Text)
	assert.False(t, tm.HasTag(Kit))
}

func TestTagOperations(t *testing.T) {
	tm := New("gam")
	tm.AddTags(Dhatu, Anga)
	assert.True(t, tm.HasTag(Dhatu))
	assert.True(t, tm.HasAnyTag(Pratyaya, Anga))
	assert.False(t, tm.HasAllTags(Dhatu, Pratyaya))
	tm.RemoveTag(Anga)
	assert.False(t, tm.HasTag(Anga))
}

func TestTextQueries(t *testing.T) {
	tm := New("Bavati")
	assert.Equal(t, "B", tm.Adi())
	assert.Equal(t, "i", tm.Antya())
	assert.Equal(t, "t", tm.Upadha())
	assert.Equal(t, 3, tm.NumVowels())
	assert.True(t, tm.EndsWith("ti"))
	assert.True(t, tm.StartsWith("Bav"))
}

func TestTextMutations(t *testing.T) {
	tm := New("gam")
	tm.ReplaceAntya("N")
	assert.Equal(t, "gaN", tm.Text)

	tm2 := New("kuz")
	tm2.ReplaceUpadha("o")
	assert.Equal(t, "koz", tm2.Text)

	tm3 := New("ram")
	tm3.Prepend("pra")
	assert.Equal(t, "praram", tm3.Text)
}

func TestCloneIsIndependent(t *testing.T) {
	tm := New("BU")
	tm.AddTag(Dhatu)
	clone := tm.Clone()
	clone.AddTag(Kit)
	assert.False(t, tm.HasTag(Kit))
	assert.True(t, clone.HasTag(Dhatu))
}

func TestViewConcatenatesText(t *testing.T) {
	a := New("BU")
	a.Text = "BO"
	b := New("a")
	b.Text = "ti"
	v := NewView(a, b)
	assert.Equal(t, "BOti", v.Text())
	assert.Equal(t, "B", v.Adi())
	assert.Equal(t, "i", v.Antya())
}

func TestIsEmptyAfterLuk(t *testing.T) {
	tm := New("s")
	tm.SetText("")
	assert.True(t, tm.IsEmpty())
}
