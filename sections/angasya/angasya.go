// Package angasya strengthens an aṅga's final vowel (guṇa or vṛddhi)
// before a sārvadhātuka or ārdhadhātuka affix, per
// _examples/original_source/vidyut-prakriya/src/angasya.rs's guṇa/vṛddhi
// dispatch and spec.md §4.4 item 12. A full implementation walks every
// aṅgādhikāra sūtra (6.4.1-7.4.97); this module carries the single rule
// (sārvadhātuka/ārdhadhātuka guṇa, with a liṭ-prathama-puruṣa-ekavacana
// vṛddhi override) needed by the driver's tinanta scenarios.
package angasya

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/sounds"
	"github.com/vidyapeetha/vyakarana/term"
)

var (
	ruleGuna   = prakriya.Sutra("7.3.84")
	ruleVrddhi = prakriya.Sutra("7.2.115")
)

// Run strengthens the last non-empty term tagged Anga (the verbal root,
// once sanjna has run), applying vṛddhi in liṭ prathama-puruṣa ekavacana
// (the reduplicated perfect's strengthened grade, e.g. pac -> pAc) and
// guṇa otherwise.
func Run(p *prakriya.Prakriya) {
	i := -1
	for j, t := range p.Terms {
		if !t.IsEmpty() && t.HasTag(term.Anga) && t.HasTag(term.Dhatu) {
			i = j
		}
	}
	if i < 0 {
		return
	}

	lakara, _ := p.TagValue("lakara")
	purusa, _ := p.TagValue("purusa")
	vacana, _ := p.TagValue("vacana")

	if lakara == "liT" && purusa == "prathama" && vacana == "eka" {
		p.OpTerm(ruleVrddhi, i, func(t *term.Term) { strengthen(t, sounds.VrddhiOf) })
		return
	}
	p.OpTerm(ruleGuna, i, func(t *term.Term) { strengthen(t, sounds.GunaOf) })
}

// strengthen replaces the last vowel in t.Text (which may be the final
// sound, for vowel-ending roots, or the upadhā, for consonant-ending
// roots) with its guṇa/vṛddhi substitute.
func strengthen(t *term.Term, grade func(byte) string) {
	text := t.Text
	idx := -1
	for k := len(text) - 1; k >= 0; k-- {
		if term.IsVowel(text[k]) {
			idx = k
			break
		}
	}
	if idx < 0 {
		return
	}
	repl := grade(text[idx])
	if repl == "" {
		return
	}
	t.SetText(text[:idx] + repl + text[idx+1:])
}
