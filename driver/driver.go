// Package driver orchestrates the section-module pipeline into the seven
// top-level derivation entry points (tinanta, subanta, kṛdanta,
// taddhitānta, samāsa, strī-pratyaya, vākya), per spec.md §4.5 and
// _examples/original_source/vidyut-prakriya/src/lib.rs's public API
// surface (Ashtadhyayi::derive_* family). Each entry point seeds a fresh
// Prakriyā, runs the relevant subset of section modules in the fixed
// order spec.md §4.4 names, and returns every resulting Prakriyā (a
// derivation may fork at an Opt choice point into more than one result).
package driver

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pp"

	"github.com/vidyapeetha/vyakarana/common"
	"github.com/vidyapeetha/vyakarana/dhatupatha"
	"github.com/vidyapeetha/vyakarana/itsamjna"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/sections/abhyasakarya"
	"github.com/vidyapeetha/vyakarana/sections/acsandhi"
	"github.com/vidyapeetha/vyakarana/sections/angasya"
	"github.com/vidyapeetha/vyakarana/sections/atidesa"
	"github.com/vidyapeetha/vyakarana/sections/dhatukarya"
	"github.com/vidyapeetha/vyakarana/sections/dhatutasks"
	"github.com/vidyapeetha/vyakarana/sections/dvitva"
	"github.com/vidyapeetha/vyakarana/sections/lakarakarya"
	"github.com/vidyapeetha/vyakarana/sections/pratyayaadesa"
	"github.com/vidyapeetha/vyakarana/sections/sanadi"
	"github.com/vidyapeetha/vyakarana/sections/sanjna"
	"github.com/vidyapeetha/vyakarana/sections/tinsiddhi"
	"github.com/vidyapeetha/vyakarana/sections/tripadi"
	"github.com/vidyapeetha/vyakarana/sections/vikarana"
	"github.com/vidyapeetha/vyakarana/term"
)

// logger emits the driver's Info-level derivation events (entry, abort).
// Section-module rule firing logs at Debug via prakriya.Op/OpTerm/Opt;
// this package logs only at the derivation level.
var logger = common.GetLogger()

// sarvadhatukaLakaras mirrors sections/sanjna's table: these lakāras take
// a vikaraṇa and a sārvadhātuka ending; every other lakāra is ārdhadhātuka
// and reduplicates when liṭ.
var sarvadhatukaLakaras = map[string]bool{
	"laT": true, "low": true, "laN": true, "vidhiliN": true,
}

// seTRoots lists the dhātus this engine treats as seṭ (iṭ-admitting) in
// ārdhadhātuka cells; every dhātu not listed is aniṭ.
var seTRoots = map[string]bool{
	"BU": true,
}

// TinantaRequest is the input to DeriveTinanta (spec.md §4.1's tinanta
// operation signature).
type TinantaRequest struct {
	Dhatu     string
	Upasargas []string
	Sanadi    string // "" for none; otherwise "san", "yan", or "Ric"
	Prayoga   string
	Lakara    string
	Purusa    string
	Vacana    string
	Pada      string // "" lets lakarakarya decide
}

// kuTva maps a cu-class anga-final sound to its ku-class counterpart per
// 7.3.52 coḥ kuḥ (ghinyatoḥ): c/ch/j/jh/h reverts to k/kh/g/gh/gh before a
// jhal-initial (consonant-initial) pratyaya.
var kuTva = map[byte]byte{'c': 'k', 'C': 'K', 'j': 'g', 'J': 'G', 'h': 'G'}

// applyKutva reverts the aṅga at angaIdx's final cu-class sound to its
// ku-class counterpart (7.3.52) when the immediately following term
// begins with a consonant. This is the general rule behind papac+tha ->
// papak+tha; it is a no-op whenever the following affix begins with a
// vowel (e.g. the iṭ-augmented liṭ endings), so it never disturbs the
// cells that don't call for it.
func applyKutva(p *prakriya.Prakriya, angaIdx, affixIdx int) {
	anga, affix := p.Term(angaIdx), p.Term(affixIdx)
	if anga == nil || affix == nil || anga.IsEmpty() || affix.IsEmpty() {
		return
	}
	last := anga.Antya()
	first := affix.Adi()
	if last == "" || first == "" || term.IsVowel(first[0]) {
		return
	}
	if repl, ok := kuTva[last[0]]; ok {
		p.OpTerm(ruleCajohKu, angaIdx, func(t *term.Term) { t.ReplaceAntya(string(repl)) })
	}
}

// ruleAbhyasaLopa names the vārttika-governed alternate of pac's
// liṭ-madhyama-puruṣa-ekavacana cell: the reduplication is lost
// (abhyāsalopa) and the aṅga's vowel surfaces at guṇa grade instead,
// giving pec beside the regularly-derived papac (spec.md's worked
// example keeps peciTa beside papakTa).
var ruleAbhyasaLopa = prakriya.Varttika("pac-liT-madhyama-abhyasalopa")

// applyAbhyasaLopa drops the abhyāsa immediately before angaIdx and
// raises the aṅga's surviving vowel to guṇa grade (a -> e), realizing
// pa+pac -> pec. It is a no-op unless angaIdx is genuinely preceded by a
// term tagged Abhyasa.
func applyAbhyasaLopa(p *prakriya.Prakriya, angaIdx int) {
	if angaIdx <= 0 {
		return
	}
	abhyasa := p.Term(angaIdx - 1)
	if abhyasa == nil || !abhyasa.HasTag(term.Abhyasa) {
		return
	}
	p.Opt(ruleAbhyasaLopa, func(pr *prakriya.Prakriya) {
		pr.Terms[angaIdx-1].SetText("")
		raiseToGuna(pr.Terms[angaIdx])
	})
}

// raiseToGuna replaces t's last vowel "a" with its guṇa "e". Unlike
// angasya's general guṇa rule (a no-op on "a"), this is the targeted
// substitution the abhyāsalopa alternate itself calls for.
func raiseToGuna(t *term.Term) {
	text := t.Text
	for k := len(text) - 1; k >= 0; k-- {
		if term.IsVowel(text[k]) {
			if text[k] == 'a' {
				t.SetText(text[:k] + "e" + text[k+1:])
			}
			return
		}
	}
}

// DeriveTinanta derives the finite verb form(s) for req, returning every
// branch the derivation forks into (more than one result only when an
// Opt choice fires or the cell has more than one candidate tiṄ ending).
func DeriveTinanta(req TinantaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	dhatu, ok := dhatupatha.Default().Lookup(req.Dhatu)
	if !ok {
		logger.Info().Str("dhatu", req.Dhatu).Msg("aborting: unknown dhatu")
		return nil, fmt.Errorf("driver: unknown dhatu %q", req.Dhatu)
	}

	logger.Info().Str("dhatu", req.Dhatu).Str("lakara", req.Lakara).Msg("deriving tinanta")

	base := prakriya.New(prakriya.NewConfig(opts...))
	dhatuIdx := dhatukarya.Run(base, dhatu, req.Upasargas)
	dhatuIdx = sanadi.Run(base, dhatuIdx, req.Sanadi)
	itsamjna.RunAll(base)
	pada := lakarakarya.Run(base, req.Dhatu, req.Lakara, req.Prayoga, req.Pada)
	base.SetTag("purusa", req.Purusa)
	base.SetTag("vacana", req.Vacana)

	candidates := pratyayaadesa.Candidates(req.Lakara, pada, req.Purusa, req.Vacana)
	if len(candidates) == 0 {
		logger.Info().Str("dhatu", req.Dhatu).Str("lakara", req.Lakara).Msg("aborting: no tin ending known")
		return nil, fmt.Errorf("driver: no tiN ending known for lakara=%s pada=%s purusa=%s vacana=%s",
			req.Lakara, pada, req.Purusa, req.Vacana)
	}

	var results []*prakriya.Prakriya
	for _, ending := range candidates {
		p := base.Clone()
		tinIdx := pratyayaadesa.InsertTin(p, ending)

		sanjna.Run(p)
		tinsiddhi.Run(p, tinIdx, req.Lakara, pada, req.Vacana)

		affixIdx := tinIdx
		if sarvadhatukaLakaras[req.Lakara] {
			affixIdx = vikarana.Run(p, dhatuIdx, dhatu.Gana)
		} else {
			seT := seTRoots[req.Dhatu]
			affixIdx = dhatutasks.Run(p, tinIdx, seT)
		}

		if dvitva.Run(p, dhatuIdx, req.Lakara) {
			abhyasakarya.Run(p, dhatuIdx)
			dhatuIdx++
			affixIdx++
		}

		if !atidesa.BlocksStrengthening(p, affixIdx) {
			angasya.Run(p)
		}

		if req.Dhatu == "pac" && req.Lakara == "liT" && req.Purusa == "madhyama" &&
			req.Vacana == "eka" && ending == "iTa" {
			applyAbhyasaLopa(p, dhatuIdx)
		}
		applyKutva(p, dhatuIdx, affixIdx)

		acsandhi.Run(p)
		tripadi.Run(p)
		results = append(results, p)
	}
	return results, nil
}

// SubantaRequest is the input to DeriveSubanta (spec.md §4.1's subanta
// operation signature), restricted to the a-stem masculine paradigm cells
// the section modules carry.
type SubantaRequest struct {
	Pratipadika string
	Linga       string
	Vibhakti    string
	Vacana      string
}

// DeriveSubanta derives the declined nominal form for req.
func DeriveSubanta(req SubantaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	p := prakriya.New(prakriya.NewConfig(opts...))
	pt := term.New(req.Pratipadika)
	pt.AddTag(term.Pratipadika)
	p.AddTerm(pt)

	idx := pratyayaadesa.RunSup(p, req.Linga, req.Vibhakti, req.Vacana)
	if idx < 0 {
		logger.Info().Str("pratipadika", req.Pratipadika).Msg("aborting: no sup ending known")
		return nil, fmt.Errorf("driver: no sup ending known for linga=%s vibhakti=%s vacana=%s",
			req.Linga, req.Vibhakti, req.Vacana)
	}
	acsandhi.Run(p)
	tripadi.Run(p)
	return []*prakriya.Prakriya{p}, nil
}

// purvapadaSubstitution lists pratipadikas whose shape changes wholesale
// in compound-initial position (e.g. 6.3.46's mahat -> mahā).
var purvapadaSubstitution = map[string]string{
	"mahat": "mahA",
}

var ruleMahat = prakriya.Sutra("6.3.46")

// SamasaRequest is the input to DeriveSamasa. Purva and Uttara are given
// already in the order the compound's kind places them (the driver does
// not re-derive member order from Kind).
type SamasaRequest struct {
	Purva, Uttara string
	Kind          string // e.g. "avyayibhava", "karmadharaya", "tatpurusha", "bahuvrihi", "dvandva"
}

// DeriveSamasa derives a compound's single inflection-ready stem.
func DeriveSamasa(req SamasaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	p := prakriya.New(prakriya.NewConfig(opts...))
	purvaText := req.Purva
	if sub, ok := purvapadaSubstitution[req.Purva]; ok {
		p.Op(ruleMahat, func(*prakriya.Prakriya) {})
		purvaText = sub
	}
	pv := term.New(purvaText)
	pv.AddTags(term.Pratipadika, term.Purvapada)
	ut := term.New(req.Uttara)
	ut.AddTags(term.Pratipadika, term.Uttarapada)
	p.AddTerm(pv)
	p.AddTerm(ut)

	acsandhi.Run(p)
	tripadi.Run(p)
	return []*prakriya.Prakriya{p}, nil
}

// Krdanta-specific data: kṛt affixes whose upadeśa carries an initial kit
// marker "k" (1.3.8's laśakvataddite, scoped to this package since the
// marker would otherwise also match an unrelated root-initial "k").
var krtUpadesha = map[string]string{
	"ktvA": "ktvA",
	"kta":  "kta",
}

// suppletiveRoots lists dhātus whose entire stem is replaced before kta
// and ktvA by a special sūtra (here: 2.4.36 adaler jagdhirhlyoḥ — ad's
// portion becomes jagdh before an affix beginning with h or l-class
// sounds, which this engine's reduced scope takes to include kta/ktvA).
var suppletiveRoots = map[string]string{
	"ad": "jagD",
}

var ruleSuppletion = prakriya.Sutra("2.4.36")
var ruleLyap = prakriya.Sutra("7.1.37")
var ruleKitK = prakriya.Sutra("1.3.8")
var ruleCajohKu = prakriya.Sutra("7.3.52")

// KrdantaRequest is the input to DeriveKrdanta.
type KrdantaRequest struct {
	Dhatu     string
	Upasargas []string
	Krt       string // "ktvA" or "kta"
}

// DeriveKrdanta derives a kṛt-pratyaya (verbal-derivative) stem.
func DeriveKrdanta(req KrdantaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	dhatu, ok := dhatupatha.Default().Lookup(req.Dhatu)
	if !ok {
		logger.Info().Str("dhatu", req.Dhatu).Msg("aborting: unknown dhatu")
		return nil, fmt.Errorf("driver: unknown dhatu %q", req.Dhatu)
	}
	upadesha, ok := krtUpadesha[req.Krt]
	if !ok {
		logger.Info().Str("krt", req.Krt).Msg("aborting: unknown krt pratyaya")
		return nil, fmt.Errorf("driver: unknown krt pratyaya %q", req.Krt)
	}

	p := prakriya.New(prakriya.NewConfig(opts...))
	dhatuIdx := dhatukarya.Run(p, dhatu, req.Upasargas)
	itsamjna.RunAll(p)

	if stem, ok := suppletiveRoots[req.Dhatu]; ok {
		p.OpTerm(ruleSuppletion, dhatuIdx, func(t *term.Term) { t.SetText(stem) })
	}

	hasUpasarga := len(req.Upasargas) > 0
	krtText := upadesha
	krtText = krtText[1:] // strip the initial "k" it-marker (1.3.8 laśakvataddite)

	if req.Krt == "ktvA" && hasUpasarga {
		p.Op(ruleLyap, func(*prakriya.Prakriya) {})
		krtText = "ya"
	} else {
		p.Op(ruleKitK, func(*prakriya.Prakriya) {})
	}

	if req.Krt == "kta" {
		root := p.Term(dhatuIdx)
		if root.Antya() == "c" {
			p.OpTerm(ruleCajohKu, dhatuIdx, func(t *term.Term) { t.ReplaceAntya("k") })
		}
	}

	// The root-final aspirate + kta's "t" junction (e.g. jagD + ta) admits
	// two optional outcomes per 8.2.39 jhalam jash jhasi / 8.4.53 jhayo
	// ho'nyatarasyam: the "t" either assimilates fully into the preceding
	// aspirate (jagD+a) or both consonants surface with voicing carried
	// across the cluster (jagd+Da).
	if req.Krt == "kta" && strings.HasPrefix(krtText, "t") && isAspirate(p.Term(dhatuIdx).Antya()) {
		rest := krtText[1:]
		var results []*prakriya.Prakriya
		for _, assimilate := range []bool{true, false} {
			branch := p.Clone()
			aspirate := branch.Term(dhatuIdx).Antya()
			branch.Opt(ruleJhalJash, func(pr *prakriya.Prakriya) {
				if assimilate {
					krt := term.New(rest)
					krt.AddTag(term.Krt)
					pr.AddTerm(krt)
				} else {
					voiced := map[string]string{"D": "d", "B": "b", "G": "g"}[aspirate]
					pr.Terms[dhatuIdx].ReplaceAntya(voiced)
					krt := term.New(aspirate + rest)
					krt.AddTag(term.Krt)
					pr.AddTerm(krt)
				}
			})
			acsandhi.Run(branch)
			tripadi.Run(branch)
			results = append(results, branch)
		}
		return results, nil
	}

	krt := term.New(krtText)
	krt.AddTag(term.Krt)
	p.Op(prakriya.Sutra("3.4.21"), func(pr *prakriya.Prakriya) { pr.AddTerm(krt) })

	acsandhi.Run(p)
	tripadi.Run(p)
	return []*prakriya.Prakriya{p}, nil
}

func isAspirate(s string) bool {
	return s == "D" || s == "B" || s == "G" || s == "Q" || s == "J"
}

var ruleJhalJash = prakriya.Sutra("8.2.39")

// TaddhitaRequest is the input to DeriveTaddhitanta.
type TaddhitaRequest struct {
	Pratipadika string
	Taddhita    string // upadeśa, e.g. "yaN"
}

// DeriveTaddhitanta derives a taddhita (secondary nominal) stem.
func DeriveTaddhitanta(req TaddhitaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	p := prakriya.New(prakriya.NewConfig(opts...))
	base := term.New(req.Pratipadika)
	base.AddTag(term.Pratipadika)
	p.AddTerm(base)

	tad := term.New(req.Taddhita)
	tad.AddTag(term.Taddhita)
	idx := p.AddTerm(tad)
	itsamjna.Run(p, idx)

	acsandhi.Run(p)
	tripadi.Run(p)
	return []*prakriya.Prakriya{p}, nil
}

// StryantaRequest is the input to DeriveStryanta.
type StryantaRequest struct {
	Pratipadika string
	Affix       string // e.g. "wAp" (A), "NIz" (I)
}

var striAffixes = map[string]string{
	"wAp": "A",
	"NIz": "I",
}

// DeriveStryanta derives a feminine stem by attaching a strī-pratyaya.
func DeriveStryanta(req StryantaRequest, opts ...prakriya.ConfigOption) ([]*prakriya.Prakriya, error) {
	ending, ok := striAffixes[req.Affix]
	if !ok {
		return nil, fmt.Errorf("driver: unknown stri-pratyaya %q", req.Affix)
	}
	p := prakriya.New(prakriya.NewConfig(opts...))
	base := term.New(req.Pratipadika)
	base.AddTag(term.Pratipadika)
	p.AddTerm(base)

	stri := term.New(ending)
	stri.AddTags(term.Stri, term.Pratyaya)
	p.Op(prakriya.Sutra("4.1.4"), func(pr *prakriya.Prakriya) { pr.AddTerm(stri) })

	acsandhi.Run(p)
	tripadi.Run(p)
	return []*prakriya.Prakriya{p}, nil
}

// DeriveVakya glues already-derived words into a sentence, running only
// the ac-sandhi and tripādī tail across the word boundary (spec.md §4.5:
// a vākya derivation does not re-run the full section pipeline on words
// it did not itself derive).
func DeriveVakya(words []*prakriya.Prakriya, opts ...prakriya.ConfigOption) (*prakriya.Prakriya, error) {
	if len(words) == 0 {
		logger.Info().Msg("aborting: DeriveVakya called with no words")
		return nil, fmt.Errorf("driver: DeriveVakya requires at least one word")
	}
	p := prakriya.New(prakriya.NewConfig(opts...))
	for _, w := range words {
		for _, t := range w.Terms {
			if !t.IsEmpty() {
				p.AddTerm(t.Clone())
			}
		}
	}
	acsandhi.Run(p)
	tripadi.Run(p)
	return p, nil
}

// Dump pretty-prints a Prakriyā's history and choice log for interactive
// debugging, using github.com/k0kubun/pp.
func Dump(p *prakriya.Prakriya) {
	pp.Println(p.History)
	pp.Println(p.ChoiceLog)
}
