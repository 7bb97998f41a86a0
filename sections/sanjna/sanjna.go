// Package sanjna assigns the structural saṃjñās aṅga and
// sārvadhātuka/ārdhadhātuka (pada is not assigned here) once the final
// pratyaya has been inserted. Grounded on spec.md §4.4 item 5 and
// _examples/original_source/vidyut-prakriya/src/angasya.rs's anga-finding
// helpers.
package sanjna

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var (
	ruleAnga         = prakriya.Sutra("1.4.13")
	ruleSarvadhatuka = prakriya.Sutra("3.4.113")
	ruleArdhadhatuka = prakriya.Sutra("3.4.114")
)

// sarvadhatukaLakaras lists the lakāras whose tiṄ/śiT affixes are
// sārvadhātuka; every other lakāra's affixes are ārdhadhātuka.
var sarvadhatukaLakaras = map[string]bool{
	"laT": true, "low": true, "laN": true, "vidhiliN": true,
}

// Run tags every term before the last non-empty term as Anga, and tags the
// derivation's final affix with the
// sārvadhātuka/ārdhadhātuka saṃjñā implied by the recorded lakāra tag, if
// one was set by lakarakarya.
func Run(p *prakriya.Prakriya) {
	last := -1
	for i, t := range p.Terms {
		if !t.IsEmpty() {
			last = i
		}
	}
	if last < 0 {
		return
	}
	p.Op(ruleAnga, func(pr *prakriya.Prakriya) {
		for i := 0; i < last; i++ {
			if !pr.Terms[i].IsEmpty() {
				pr.Terms[i].AddTag(term.Anga)
			}
		}
	})

	lakara, ok := p.TagValue("lakara")
	if !ok {
		return
	}
	if sarvadhatukaLakaras[lakara] {
		p.OpTerm(ruleSarvadhatuka, last, func(t *term.Term) { t.AddTag(term.Sarvadhatuka) })
	} else {
		p.OpTerm(ruleArdhadhatuka, last, func(t *term.Term) { t.AddTag(term.Ardhadhatuka) })
	}
}
