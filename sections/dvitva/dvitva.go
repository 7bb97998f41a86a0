// Package dvitva decides whether an aṅga must reduplicate (dvirvacana):
// only the liṭ lakāra triggers it; sanādi stems are not checked. Grounded on
// spec.md §4.4 item 10 and
// _examples/original_source/vidyut-prakriya/src/dvitva.rs's dvitva gate.
package dvitva

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleDvitva = prakriya.Sutra("6.1.8")

// Applies reports whether lakara requires reduplication of the dhātu.
func Applies(lakara string) bool { return lakara == "liT" }

// Run tags the dhātu term at index i as Abhyasta (reduplicated-stem
// saṃjña applies to the whole aṅga once reduplication runs) when lakara
// calls for it.
func Run(p *prakriya.Prakriya, i int, lakara string) bool {
	if !Applies(lakara) {
		return false
	}
	p.OpTerm(ruleDvitva, i, func(t *term.Term) { t.AddTag(term.Abhyasta) })
	return true
}
