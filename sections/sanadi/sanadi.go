// Package sanadi inserts a sanādi affix (desiderative -san, intensive
// -yaṅ or causative -ṇic; no denominative affix is in its table)
// immediately after the dhātu, turning the result into a new derived
// dhātu. Grounded on
// spec.md §4.4 item 2 and
// _examples/original_source/vidyut-prakriya/src/dhatu_karya.rs's sanādi
// dispatch. None of the driver's current scenarios request a sanādi
// affix, so Run is a no-op unless kind is non-empty.
package sanadi

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleSanadi = prakriya.Sutra("3.1.32")

// upadeshaByKind gives the sanādi affix's upadeśa for each supported kind.
var upadeshaByKind = map[string]string{
	"san": "san",
	"yan": "yaN",
	"Ric": "Ric",
}

// Run inserts the sanādi affix after the term at index i, if kind is
// recognized, tagging the new term Sanadi and Dhatu (a sanādi-derived
// stem is itself a dhātu, per 3.1.32 "sanādyantā dhātavaḥ").
func Run(p *prakriya.Prakriya, i int, kind string) int {
	upadesha, ok := upadeshaByKind[kind]
	if !ok || kind == "" {
		return i
	}
	t := term.New(upadesha)
	t.AddTags(term.Sanadi, term.Dhatu)
	p.Op(ruleSanadi, func(pr *prakriya.Prakriya) { pr.InsertAfter(i, t) })
	return i + 1
}
