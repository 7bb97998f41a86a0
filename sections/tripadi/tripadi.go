// Package tripadi applies the fixed-order tripādī tail (Aṣṭādhyāyī 8.2-8.4):
// here, just the word-final visarga substitution for a bare "s" or "r"
// before pause (8.3.15 "kharavasānayoḥ visarjanīyaḥ"). Grounded on spec.md
// §4.4 item 14 and
// _examples/original_source/vidyut-prakriya/src/tripadi.rs's final pass.
// A full tripādī implementation (ruki, jaśtva, the full 8.2-8.4 run) is
// out of scope for the section subset this engine carries; see DESIGN.md.
package tripadi

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleVisarga = prakriya.Sutra("8.3.15")

// Run replaces a word-final bare "s" or "r" with visarga "H", unless
// Config.NlpMode is set: spec.md §6 has nlp_mode preserve word-final s/r
// that standard visarga-sandhi would otherwise transform, for downstream
// NLP consumers that expect the underlying consonant.
func Run(p *prakriya.Prakriya) {
	if p.Config.NlpMode {
		return
	}
	last := -1
	for i, t := range p.Terms {
		if !t.IsEmpty() {
			last = i
		}
	}
	if last < 0 {
		return
	}
	t := p.Terms[last]
	if t.Antya() == "s" || t.Antya() == "r" {
		p.OpTerm(ruleVisarga, last, func(tm *term.Term) { tm.ReplaceAntya("H") })
	}
}
