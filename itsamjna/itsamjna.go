// Package itsamjna strips marker sounds (anubandhas) from an upadeśa
// string and records them as tags, per P.1.3.2-1.3.9 as described in
// SPEC_FULL.md §4.3. This must run exactly once, before any other rule
// inspects the term, since markers migrate from the string representation
// into the tag set at this single point (spec.md §9).
package itsamjna

import (
	"strings"

	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

// markerRules enumerate, in order, the anubandha-stripping rules this
// module runs. Each rule matches a marker sound in a fixed position
// (initial or final) and records the corresponding tag.
type markerRule struct {
	rule     prakriya.Rule
	tag      term.Tag
	sound    string
	isSuffix bool // true: marker is a final sound; false: marker is initial
}

var rules = []markerRule{
	// P.1.3.5 ñituḍit svaritam ādyudāttam anudāttam: initial ñ, ṭ, ḍ are it.
	{prakriya.Sutra("1.3.5"), "Yit", "Y", false},
	{prakriya.Sutra("1.3.5"), "wit", "w", false},
	{prakriya.Sutra("1.3.5"), "qit", "q", false},
	// P.1.3.2 upadeśe'janunāsika it (a nasalized vowel is it) has no entry
	// in this table: no nasalized-vowel marker is recognized or stripped.
	// P.1.3.3 hal antyam: a final consonant is it.
	{prakriya.Sutra("1.3.3"), term.Kit, "k", true},
	{prakriya.Sutra("1.3.3"), term.Ngit, "N", true},
	{prakriya.Sutra("1.3.3"), term.Pit, "p", true},
	{prakriya.Sutra("1.3.3"), term.Sit, "S", true},
	{prakriya.Sutra("1.3.3"), term.Nit, "n", true},
	// P.1.3.6 ṣaḥ pratyayasya: initial ṣ is it in an affix.
	{prakriya.Sutra("1.3.6"), "zit", "z", false},
	// P.1.3.7 cuṭū: initial c/ṭ-varga consonants (other than the above) in
	// an affix are it; represented narrowly for the affixes this engine
	// actually instantiates.
	{prakriya.Sutra("1.3.7"), "cit", "c", false},
}

var hal = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvzSsh"

func isHal(b byte) bool { return strings.IndexByte(hal, b) >= 0 }

// Run strips markers from t.Upadesha, sets t.Text to the stripped surface
// form, and records one tag per marker found. It is idempotent only in the
// sense that running it twice on an already-stripped term is a no-op
// (there is nothing left to strip); callers must still ensure it runs
// exactly once per term, per spec.md §4.3.
func Run(p *prakriya.Prakriya, i int) {
	t := p.Term(i)
	if t == nil {
		return
	}
	text := t.Upadesha
	var applied []markerRule

	for {
		matched := false
		for _, r := range rules {
			if r.isSuffix {
				if strings.HasSuffix(text, r.sound) && len(text) > len(r.sound) {
					prev := text[len(text)-len(r.sound)-1]
					if isHal(prev) || term.IsVowel(prev) {
						text = text[:len(text)-len(r.sound)]
						applied = append(applied, r)
						matched = true
						break
					}
				}
			} else {
				if strings.HasPrefix(text, r.sound) {
					text = text[len(r.sound):]
					applied = append(applied, r)
					matched = true
					break
				}
			}
		}
		if !matched {
			break
		}
	}

	p.OpTerm(prakriya.Sutra("1.3.9"), i, func(tm *term.Term) {
		tm.SetText(text)
		for _, r := range applied {
			tm.AddTag(r.tag)
		}
	})
}

// RunAll applies Run to every term in the Prakriya that has not yet been
// stripped (Text still equals Upadesha).
func RunAll(p *prakriya.Prakriya) {
	for i, t := range p.Terms {
		if t.Text == t.Upadesha {
			Run(p, i)
		}
	}
}
