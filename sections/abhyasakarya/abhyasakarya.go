// Package abhyasakarya builds the abhyāsa (reduplicate) syllable and
// inserts it before the aṅga that dvitva marked Abhyasta. Grounded on
// spec.md §4.4 item 11 and
// _examples/original_source/vidyut-prakriya/src/dvitva.rs's abhyāsa
// construction (hrasvaḥ, halādiḥ śeṣaḥ).
package abhyasakarya

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/term"
)

var ruleAbhyasa = prakriya.Sutra("6.1.1")

var shorten = map[byte]byte{
	'A': 'a', 'I': 'i', 'U': 'u', 'F': 'f', 'X': 'x',
}

// shortenVowel returns the hrasva (short) grade of v (7.4.59), or v itself
// if already short.
func shortenVowel(v byte) byte {
	if s, ok := shorten[v]; ok {
		return s
	}
	return v
}

// build constructs the abhyāsa text for root: the root's first consonant
// (halādiḥ śeṣaḥ — a leading consonant cluster keeps only its first
// member) plus the root's first vowel, shortened.
func build(root string) string {
	i := 0
	var consonant string
	for i < len(root) && !term.IsVowel(root[i]) {
		if consonant == "" {
			consonant = string(root[i])
		}
		i++
	}
	if i >= len(root) {
		return consonant
	}
	v := shortenVowel(root[i])
	return consonant + string(v)
}

// Run inserts the abhyāsa term immediately before the dhātu term at index
// i, tagged Abhyasa, if dvitva marked that term Abhyasta.
func Run(p *prakriya.Prakriya, i int) int {
	t := p.Term(i)
	if t == nil || !t.HasTag(term.Abhyasta) {
		return i
	}
	abhyasa := term.New(build(t.Text))
	abhyasa.AddTag(term.Abhyasa)

	p.Op(ruleAbhyasa, func(pr *prakriya.Prakriya) {
		pr.InsertBefore(i, abhyasa)
	})
	return i + 1
}
