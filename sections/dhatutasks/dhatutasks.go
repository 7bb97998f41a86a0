// Package dhatutasks inserts the iṭ-āgama ("i") before an ārdhadhātuka
// affix that begins with a consonant, when the dhātu is seṭ. Grounded on
// spec.md §4.4 item 9 and
// _examples/original_source/vidyut-prakriya/src/dhatu_karya.rs's iṭ gate
// (7.2.35 "ārdhadhātukasyeḍ valādeḥ").
package dhatutasks

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleIt = prakriya.Sutra("7.2.35")

// valAdi lists consonants (hal excluding y, "val") that trigger iṭ on a
// following ārdhadhātuka affix.
const valAdi = "vrlYmNRnJBGQDjbgqdKPCWTcwtkpSzsh"

// Run inserts an "i" āgama term, tagged Agama, immediately before the
// affix at index i if affix starts with a val-class consonant and seT is
// true (the root takes seṭ in this cell).
func Run(p *prakriya.Prakriya, i int, seT bool) int {
	t := p.Term(i)
	if t == nil || !seT {
		return i
	}
	if t.Text == "" || !isValAdi(t.Text[0]) {
		return i
	}
	agama := term.New("i")
	agama.AddTag(term.Agama)
	p.Op(ruleIt, func(pr *prakriya.Prakriya) { pr.InsertBefore(i, agama) })
	return i + 1
}

func isValAdi(b byte) bool {
	for j := 0; j < len(valAdi); j++ {
		if valAdi[j] == b {
			return true
		}
	}
	return false
}
