// Package vikarana inserts the conjugation-class vikaraṇa between the
// aṅga and the tiṄ ending of a tinanta derivation. Grounded on spec.md
// §4.4 item 8 and
// _examples/original_source/vidyut-prakriya/src/dhatu_karya.rs's
// gaṇa-to-vikaraṇa dispatch.
package vikarana

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleVikarana = prakriya.Sutra("3.1.68")

// upadeshaByGana gives the vikaraṇa's upadeśa for the conjugation classes
// the driver's scenarios exercise. Bhvādi (1) takes śap; adādi (2) takes
// a luk-elided (zero, hence absent) vikaraṇa.
var upadeshaByGana = map[int]string{
	1: "Sap",
	6: "Sa",
}

// Run inserts the vikaraṇa immediately after the aṅga (the dhātu term),
// if the root's gaṇa calls for an overt one, and strips its own markers
// locally (not via the generic itsamjna pass, since the marker sounds
// here — initial ś, final p — would otherwise also match unrelated
// root-initial/final sounds on terms itsamjna has not yet visited).
func Run(p *prakriya.Prakriya, dhatuIdx int, gana int) int {
	upadesha, ok := upadeshaByGana[gana]
	if !ok {
		return dhatuIdx
	}

	t := term.New(upadesha)
	t.AddTags(term.Pratyaya)

	var idx int
	p.Op(ruleVikarana, func(pr *prakriya.Prakriya) {
		pr.InsertAfter(dhatuIdx, t)
		idx = dhatuIdx + 1
	})

	p.OpTerm(prakriya.Sutra("1.3.8"), idx, func(tm *term.Term) {
		text := tm.Text
		if len(text) > 0 && text[0] == 'S' {
			text = text[1:]
			tm.AddTag(term.Sit)
		}
		if len(text) > 0 && text[len(text)-1] == 'p' {
			text = text[:len(text)-1]
			tm.AddTag(term.Pit)
		}
		tm.SetText(text)
	})
	return idx
}
