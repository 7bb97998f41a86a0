// Package dhatukarya implements the first section module: seeding the
// dhātu term(s), attaching upasargas, and applying root-specific upadeśa
// transformations. Grounded on spec.md §4.4 item 1.
package dhatukarya

import (
	"github.com/vidyapeetha/vyakarana/dhatupatha"
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var (
	ruleSeedDhatu  = prakriya.Sutra("3.4.1-seed")
	ruleUpasarga   = prakriya.Sutra("1.4.59")
	ruleInitialNa  = prakriya.Sutra("8.4.14") // ṇatva's inverse: upadeśa ṇ -> n before further processing
	ruleInitialSa  = prakriya.Sutra("6.1.64") // upadeśa ṣ -> s
)

// Run seeds the Prakriyā with upasarga terms (if any) followed by the
// dhātu term, and normalizes the dhātu's upadeśa-internal retroflex
// markers.
func Run(p *prakriya.Prakriya, dhatu dhatupatha.Dhatu, upasargas []string) int {
	for _, u := range upasargas {
		ut := term.New(u)
		ut.AddTag(term.Upasarga)
		p.Op(ruleUpasarga, func(pr *prakriya.Prakriya) {
			pr.AddTerm(ut)
		})
	}

	dt := term.New(dhatu.Upadesha)
	dt.AddTag(term.Dhatu)
	dt.Gana = dhatu.Gana
	dt.Artha = dhatu.Artha
	dt.USutra = dhatu.Code

	var idx int
	p.Op(ruleSeedDhatu, func(pr *prakriya.Prakriya) {
		idx = pr.AddTerm(dt)
	})

	if len(dt.Upadesha) > 0 && dt.Upadesha[0] == 'R' {
		p.OpTerm(ruleInitialNa, idx, func(t *term.Term) { t.ReplacePrefix("R", "n") })
	}
	if len(dt.Upadesha) > 0 && dt.Upadesha[0] == 'z' {
		p.OpTerm(ruleInitialSa, idx, func(t *term.Term) { t.ReplacePrefix("z", "s") })
	}
	return idx
}
