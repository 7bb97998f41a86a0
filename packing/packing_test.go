package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackSubantaRoundTrip(t *testing.T) {
	rec := PackedRecord{Pos: PosSubanta, Subanta: &Subanta{
		Linga: Pum, Vacana: Eka, Vibhakti: Prathama, IsPurvapada: false, PratipadikaID: 42,
	}}
	word, err := Pack(rec)
	require.NoError(t, err)

	got, err := Unpack(word)
	require.NoError(t, err)
	require.NotNil(t, got.Subanta)
	assert.Equal(t, rec.Subanta.Linga, got.Subanta.Linga)
	assert.Equal(t, rec.Subanta.Vacana, got.Subanta.Vacana)
	assert.Equal(t, rec.Subanta.Vibhakti, got.Subanta.Vibhakti)
	assert.Equal(t, rec.Subanta.IsPurvapada, got.Subanta.IsPurvapada)
	assert.Equal(t, rec.Subanta.PratipadikaID, got.Subanta.PratipadikaID)
}

func TestPackUnpackTinantaRoundTrip(t *testing.T) {
	rec := PackedRecord{Pos: PosTinanta, Tinanta: &Tinanta{
		Lakara: Lat, Purusa: Prathamapurusa, Vacana: Eka, Pada: Parasmaipada, DhatuID: 7,
	}}
	word, err := Pack(rec)
	require.NoError(t, err)

	got, err := Unpack(word)
	require.NoError(t, err)
	require.NotNil(t, got.Tinanta)
	assert.Equal(t, *rec.Tinanta, *got.Tinanta)
}

func TestPackUnpackAvyayaRoundTrip(t *testing.T) {
	rec := PackedRecord{Pos: PosAvyaya, Avyaya: &Avyaya{PratipadikaID: 123456}}
	word, err := Pack(rec)
	require.NoError(t, err)
	got, err := Unpack(word)
	require.NoError(t, err)
	assert.Equal(t, rec.Avyaya.PratipadikaID, got.Avyaya.PratipadikaID)
}

func TestPackUnpackNone(t *testing.T) {
	word, err := Pack(PackedRecord{Pos: PosNone})
	require.NoError(t, err)
	got, err := Unpack(word)
	require.NoError(t, err)
	assert.Equal(t, PosNone, got.Pos)
}

func TestBitLayoutIsLittleEndianWithinWord(t *testing.T) {
	rec := PackedRecord{Pos: PosSubanta, Subanta: &Subanta{Linga: Stri, Vacana: Bahu, Vibhakti: Saptami, IsPurvapada: true, PratipadikaID: 1}}
	word, err := Pack(rec)
	require.NoError(t, err)
	assert.Equal(t, uint32(PosSubanta), word&0b11)
}

func TestPackerInternsStableIDs(t *testing.T) {
	pk := NewPacker()
	id1, err := pk.InternDhatu("BU")
	require.NoError(t, err)
	id2, err := pk.InternDhatu("qukfY")
	require.NoError(t, err)
	id1Again, err := pk.InternDhatu("BU")
	require.NoError(t, err)

	assert.Equal(t, uint32(0), id1)
	assert.Equal(t, uint32(1), id2)
	assert.Equal(t, id1, id1Again)
	assert.Equal(t, []string{"BU", "qukfY"}, pk.Dhatus())
}

func TestPackerRoundTripsByID(t *testing.T) {
	pk := NewPacker()
	id, err := pk.InternPratipadika("rAma")
	require.NoError(t, err)
	got, ok := pk.PratipadikaByID(id)
	require.True(t, ok)
	assert.Equal(t, "rAma", got)
}

func TestInternOverflowReturnsIDOverflowError(t *testing.T) {
	pk := &Packer{dhatuIdx: make(map[string]uint32), pratiIdx: make(map[string]uint32)}
	pk.dhatus = make([]string, idMask+1) // simulate a full table
	_, err := pk.InternDhatu("newroot")
	require.Error(t, err)
}

func TestPackSubantaOverflowingIDFails(t *testing.T) {
	_, err := Pack(PackedRecord{Pos: PosSubanta, Subanta: &Subanta{PratipadikaID: idMask + 1}})
	require.Error(t, err)
}
