// Package acsandhi applies vowel-vowel (ac) sandhi across adjacent term
// boundaries: savarṇa-dīrgha, guṇa, vṛddhi, and the yaṇ/ayādi
// substitutions. Grounded on
// _examples/original_source/vidyut-prakriya/src/sounds.rs's sandhi helpers
// and spec.md §4.4 item 13.
package acsandhi

import (
	"github.com/vidyapeetha/vyakarana/prakriya"
	"github.com/vidyapeetha/vyakarana/sounds"
	"github.com/vidyapeetha/vyakarana/term"
)

var (
	ruleSavarna = prakriya.Sutra("6.1.101")
	ruleGuna    = prakriya.Sutra("6.1.87")
	ruleVrddhi  = prakriya.Sutra("6.1.88")
	ruleYan     = prakriya.Sutra("6.1.77")
	ruleAyavayava = prakriya.Sutra("6.1.78")
)

// Run walks adjacent non-empty term pairs and merges a vowel-final term
// with a vowel-initial term per the classical ac-sandhi rules. In
// Config.Chandasi mode, Run applies no vowel sandhi at all, at morpheme
// and word boundaries alike: Vedic verse routinely leaves hiatus unresolved, a
// looseness classical grammar records throughout the aṣṭādhyāyī's many
// "chandasi" vārttikas rather than as a single uniform rule this engine
// could derive cell-by-cell.
func Run(p *prakriya.Prakriya) {
	if p.Config.Chandasi {
		return
	}
	for {
		i, j := nextVowelBoundary(p)
		if i < 0 {
			return
		}
		applyOne(p, i, j)
	}
}

func nextVowelBoundary(p *prakriya.Prakriya) (int, int) {
	prev := -1
	for i, t := range p.Terms {
		if t.IsEmpty() {
			continue
		}
		if prev >= 0 {
			a := p.Terms[prev].Antya()
			b := t.Adi()
			if a != "" && b != "" && term.IsVowel(a[0]) && term.IsVowel(b[0]) {
				return prev, i
			}
		}
		prev = i
	}
	return -1, -1
}

func applyOne(p *prakriya.Prakriya, i, j int) {
	a := p.Terms[i].Antya()[0]
	b := p.Terms[j].Antya()
	bFirst := p.Terms[j].Adi()[0]

	if sounds.Savarna(a, bFirst) {
		dirgha := map[byte]byte{'a': 'A', 'A': 'A', 'i': 'I', 'I': 'I', 'u': 'U', 'U': 'U', 'f': 'F', 'F': 'F'}
		p.Op(ruleSavarna, func(pr *prakriya.Prakriya) {
			pr.Terms[i].ReplaceAntya(string(dirgha[a]))
			pr.Terms[j].Text = pr.Terms[j].Text[1:]
		})
		return
	}

	switch a {
	case 'a', 'A':
		switch bFirst {
		case 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X':
			repl := sounds.GunaOf(bFirst)
			p.Op(ruleGuna, func(pr *prakriya.Prakriya) {
				pr.Terms[i].ReplaceAntya("")
				pr.Terms[j].Text = repl + pr.Terms[j].Text[1:]
			})
			return
		case 'e', 'E', 'o', 'O':
			diph := map[byte]string{'e': "E", 'o': "O", 'E': "E", 'O': "O"}
			if d, ok := diph[bFirst]; ok {
				p.Op(ruleVrddhi, func(pr *prakriya.Prakriya) {
					pr.Terms[i].ReplaceAntya("")
					pr.Terms[j].Text = d + pr.Terms[j].Text[1:]
				})
				return
			}
		}
	case 'e', 'o', 'E', 'O':
		ayavayava := map[byte]string{'e': "ay", 'o': "av", 'E': "Ay", 'O': "Av"}
		p.Op(ruleAyavayava, func(pr *prakriya.Prakriya) {
			pr.Terms[i].ReplaceAntya(ayavayava[a])
		})
		return
	case 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X':
		yan := map[byte]string{'i': "y", 'I': "y", 'u': "v", 'U': "v", 'f': "r", 'F': "r", 'x': "l", 'X': "l"}
		p.Op(ruleYan, func(pr *prakriya.Prakriya) {
			pr.Terms[i].ReplaceAntya(yan[a])
		})
		return
	}
	_ = b
}
