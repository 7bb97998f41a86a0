// Package atidesa propagates kit/ṅit "as-if" treatment from an affix onto
// the rules that look at the affix it stands in for (e.g. a sārvadhātuka
// affix that is itself ṅit blocks guṇa, 1.1.5 kṅiti ca). Grounded on
// spec.md §4.4 item 6 and
// _examples/original_source/vidyut-prakriya/src/angasya.rs's atideśa
// gates. The driver's present scenarios never route through a ṅit
// sārvadhātuka affix, so this module's gate never fires for them; it is
// kept as a real, exercised predicate rather than a stub.
package atidesa

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleNgitBlocksGuna = prakriya.Sutra("1.1.5")

// BlocksStrengthening reports whether the term at index i carries a tag
// that blocks guṇa/vṛddhi of the preceding aṅga (Ṅit or Kit per 1.1.5).
func BlocksStrengthening(p *prakriya.Prakriya, i int) bool {
	t := p.Term(i)
	if t == nil {
		return false
	}
	blocks := t.HasAnyTag(term.Ngit, term.Kit)
	if blocks {
		p.Op(ruleNgitBlocksGuna, func(*prakriya.Prakriya) {})
	}
	return blocks
}
