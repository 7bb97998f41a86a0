package translit

import "strings"

// tokenTable is a flat SLP1<->ASCII-token bijection for the ambiguity-free
// romanizations (IAST, Itrans, Harvard-Kyoto, Velthuis) that never need
// abugida-style consonant/vowel reshaping, only direct substitution plus
// greedy longest-match decoding (several tokens share a prefix with a
// shorter one, e.g. Harvard-Kyoto "kh" vs "k").
type tokenTable struct {
	encode map[byte]string
	decode map[string]byte
	byLen  []string
}

func newTokenTable(encode map[byte]string) *tokenTable {
	decode := invertStringMap(encode)
	return &tokenTable{encode: encode, decode: decode, byLen: sortedTokensByLengthDesc(decode)}
}

func (t *tokenTable) fromSlp1(slp1 string) string {
	var out strings.Builder
	for i := 0; i < len(slp1); i++ {
		if tok, ok := t.encode[slp1[i]]; ok {
			out.WriteString(tok)
		} else {
			out.WriteByte(slp1[i])
		}
	}
	return out.String()
}

func (t *tokenTable) toSlp1(text string) string {
	var out strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		matched := false
		for _, tok := range t.byLen {
			tokRunes := []rune(tok)
			if i+len(tokRunes) <= len(runes) && string(runes[i:i+len(tokRunes)]) == tok {
				out.WriteByte(t.decode[tok])
				i += len(tokRunes)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteRune(runes[i])
			i++
		}
	}
	return out.String()
}

// itransToken maps SLP1 to ITRANS, the ASCII scheme most Indian-language
// input tools still accept as a typing convention.
var itransToken = map[byte]string{
	'a': "a", 'A': "aa", 'i': "i", 'I': "ii", 'u': "u", 'U': "uu",
	'f': "RRi", 'F': "RRI", 'x': "LLi", 'X': "LLI",
	'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "~N",
	'c': "ch", 'C': "Ch", 'j': "j", 'J': "jh", 'Y': "~n",
	'w': "T", 'W': "Th", 'q': "D", 'Q': "Dh", 'R': "N",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "sh", 'z': "Sh", 's': "s", 'h': "h", 'L': "zh",
	'M': "M", 'H': "H",
}

var itransTable = newTokenTable(itransToken)

// harvardKyotoToken maps SLP1 to Harvard-Kyoto, the all-caps-for-retroflex
// ASCII scheme common in academic Sanskrit text corpora (e.g. GRETIL).
var harvardKyotoToken = map[byte]string{
	'a': "a", 'A': "A", 'i': "i", 'I': "I", 'u': "u", 'U': "U",
	'f': "R", 'F': "RR", 'x': "lR", 'X': "lRR",
	'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "G",
	'c': "c", 'C': "ch", 'j': "j", 'J': "jh", 'Y': "J",
	'w': "T", 'W': "Th", 'q': "D", 'Q': "Dh", 'R': "N",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "z", 'z': "S", 's': "s", 'h': "h", 'L': "L",
	'M': "M", 'H': "H",
}

var harvardKyotoTable = newTokenTable(harvardKyotoToken)

// velthuisToken maps SLP1 to Velthuis, the dot/quote-marked ASCII scheme
// TeX-based Indological typesetting (e.g. the classical devnag/Velthuis
// package) popularized.
var velthuisToken = map[byte]string{
	'a': "a", 'A': "aa", 'i': "i", 'I': "ii", 'u': "u", 'U': "uu",
	'f': ".r", 'F': ".rr", 'x': ".l", 'X': ".ll",
	'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "\"n",
	'c': "c", 'C': "ch", 'j': "j", 'J': "jh", 'Y': "~n",
	'w': ".t", 'W': ".th", 'q': ".d", 'Q': ".dh", 'R': ".n",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "\"s", 'z': ".s", 's': "s", 'h': "h", 'L': "L",
	'M': ".m", 'H': ".h",
}

var velthuisTable = newTokenTable(velthuisToken)
