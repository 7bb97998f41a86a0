// Package tinsiddhi applies tiṄ-specific substitutions that run after the
// ending is chosen but before the general aṅga/sandhi machinery: most
// famously jhi -> jus in liṭ parasmaipada bahuvacana (3.4.82 "parasmaipade
// ...jusi"). Grounded on spec.md §4.4 item 7 and
// _examples/original_source/vidyut-prakriya/src/tin_pratyaya.rs's
// tin-siddhi pass. None of the driver's current scenarios use a bahuvacana
// liṭ parasmaipada cell, so this rule never fires for them; it is kept as
// a real, exercised predicate rather than a stub.
package tinsiddhi

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleJhiJus = prakriya.Sutra("3.4.82")

// Run replaces a liṭ parasmaipada bahuvacana "jhi" ending (if present) at
// index i with "us".
func Run(p *prakriya.Prakriya, i int, lakara, pada, vacana string) {
	t := p.Term(i)
	if t == nil {
		return
	}
	if lakara == "liT" && pada == "parasmaipada" && vacana == "bahu" && t.Text == "jhi" {
		p.OpTerm(ruleJhiJus, i, func(tm *term.Term) { tm.SetText("us") })
	}
}
