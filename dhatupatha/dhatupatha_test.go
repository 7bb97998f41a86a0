package dhatupatha

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidTsv(t *testing.T) {
	d, err := Parse(strings.NewReader("BU\tBU\t1\tsattAyAm\n"))
	require.NoError(t, err)
	entry, ok := d.Lookup("BU")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Gana)
	assert.Equal(t, "sattAyAm", entry.Artha)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("BU\tBU\tnotanumber\tsattAyAm\n"))
	assert.Error(t, err)
}

func TestParseRejectsWrongColumnCount(t *testing.T) {
	_, err := Parse(strings.NewReader("BU\tBU\n"))
	assert.Error(t, err)
}

func TestParseRejectsDuplicateCode(t *testing.T) {
	_, err := Parse(strings.NewReader("BU\tBU\t1\tx\nBU\tBU\t1\ty\n"))
	assert.Error(t, err)
}

func TestDefaultTableHasBhuAndPac(t *testing.T) {
	d := Default()
	_, ok := d.Lookup("BU")
	assert.True(t, ok)
	_, ok = d.Lookup("pac")
	assert.True(t, ok)
}

func TestSetDefaultInjection(t *testing.T) {
	orig := Default()
	custom, err := Parse(strings.NewReader("x\tx\t1\ty\n"))
	require.NoError(t, err)
	SetDefault(custom)
	_, ok := Default().Lookup("x")
	assert.True(t, ok)
	SetDefault(orig)
}
