package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyapeetha/vyakarana/prakriya"
)

func TestDeriveTinantaBhuLatPrathamaEka(t *testing.T) {
	results, err := DeriveTinanta(TinantaRequest{
		Dhatu: "BU", Lakara: "laT", Purusa: "prathama", Vacana: "eka",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bavati", results[0].Text())
}

func TestDeriveTinantaPacLatPrathamaEkaAtmanepada(t *testing.T) {
	results, err := DeriveTinanta(TinantaRequest{
		Dhatu: "pac", Lakara: "laT", Purusa: "prathama", Vacana: "eka", Pada: "atmanepada",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pacate", results[0].Text())
}

func TestDeriveTinantaPacLitPrathamaEka(t *testing.T) {
	results, err := DeriveTinanta(TinantaRequest{
		Dhatu: "pac", Lakara: "liT", Purusa: "prathama", Vacana: "eka",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "papAca", results[0].Text())
}

func TestDeriveTinantaPacLitMadhyamaEkaIsIrregular(t *testing.T) {
	results, err := DeriveTinanta(TinantaRequest{
		Dhatu: "pac", Lakara: "liT", Purusa: "madhyama", Vacana: "eka",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	got := []string{results[0].Text(), results[1].Text()}
	assert.ElementsMatch(t, []string{"papakTa", "peciTa"}, got)
}

func TestDeriveTinantaUnknownDhatu(t *testing.T) {
	_, err := DeriveTinanta(TinantaRequest{
		Dhatu: "xyz", Lakara: "laT", Purusa: "prathama", Vacana: "eka",
	})
	assert.Error(t, err)
}

func TestDeriveSubantaRamaPrathamaEka(t *testing.T) {
	results, err := DeriveSubanta(SubantaRequest{
		Pratipadika: "rAma", Linga: "pum", Vibhakti: "prathama", Vacana: "eka",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rAmaH", results[0].Text())
}

func TestDeriveSubantaVrkshaDvitiyaBahu(t *testing.T) {
	results, err := DeriveSubanta(SubantaRequest{
		Pratipadika: "vfkza", Linga: "pum", Vibhakti: "dvitiya", Vacana: "bahu",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "vfkzAn", results[0].Text())
}

func TestDeriveSubantaUnknownCell(t *testing.T) {
	_, err := DeriveSubanta(SubantaRequest{
		Pratipadika: "rAma", Linga: "pum", Vibhakti: "saptami", Vacana: "eka",
	})
	assert.Error(t, err)
}

func TestDeriveKrdantaAdPraKtvaIsSuppleted(t *testing.T) {
	results, err := DeriveKrdanta(KrdantaRequest{
		Dhatu: "ad", Upasargas: []string{"pra"}, Krt: "ktvA",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "prajagDya", results[0].Text())
}

func TestDeriveKrdantaAdKtaIsOptionallyAssimilated(t *testing.T) {
	results, err := DeriveKrdanta(KrdantaRequest{
		Dhatu: "ad", Krt: "kta",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	got := []string{results[0].Text(), results[1].Text()}
	assert.ElementsMatch(t, []string{"jagDa", "jagdDa"}, got)
}

func TestDeriveSamasaAvyayibhava(t *testing.T) {
	results, err := DeriveSamasa(SamasaRequest{
		Purva: "akza", Uttara: "pari", Kind: "avyayibhava",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "akzapari", results[0].Text())
}

func TestDeriveSamasaKarmadharayaSubstitutesMahat(t *testing.T) {
	results, err := DeriveSamasa(SamasaRequest{
		Purva: "mahat", Uttara: "deva", Kind: "karmadharaya",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "mahAdeva", results[0].Text())
}

func TestDeriveTaddhitantaRajanYan(t *testing.T) {
	results, err := DeriveTaddhitanta(TaddhitaRequest{
		Pratipadika: "rAjan", Taddhita: "yaN",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rAjanya", results[0].Text())
}

func TestDeriveVakyaConcatenatesWords(t *testing.T) {
	bhavati, err := DeriveTinanta(TinantaRequest{
		Dhatu: "BU", Lakara: "laT", Purusa: "prathama", Vacana: "eka",
	})
	require.NoError(t, err)
	rama, err := DeriveSubanta(SubantaRequest{
		Pratipadika: "rAma", Linga: "pum", Vibhakti: "prathama", Vacana: "eka",
	})
	require.NoError(t, err)

	vakya, err := DeriveVakya([]*prakriya.Prakriya{rama[0], bhavati[0]})
	require.NoError(t, err)
	assert.Equal(t, "rAmaHBavati", vakya.Text())
}

func TestDeriveVakyaRequiresAtLeastOneWord(t *testing.T) {
	_, err := DeriveVakya(nil)
	assert.Error(t, err)
}
