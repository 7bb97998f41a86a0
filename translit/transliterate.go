package translit

import (
	"fmt"
	"sort"
	"strings"

	iuliia "github.com/mehanizm/iuliia-go"
	"github.com/mozillazg/go-pinyin"
	"github.com/vidyapeetha/vyakarana"
)

func isSlp1Vowel(b byte) bool {
	for _, v := range vowelOrder {
		if v == b {
			return true
		}
	}
	return false
}

func isSlp1Consonant(b byte) bool {
	for _, c := range consonantOrder {
		if c == b {
			return true
		}
	}
	return false
}

// encodeIast converts SLP1 to IAST by direct token substitution.
func encodeIast(slp1 string) string {
	var out strings.Builder
	for i := 0; i < len(slp1); i++ {
		if tok, ok := iastToken[slp1[i]]; ok {
			out.WriteString(tok)
		} else {
			out.WriteByte(slp1[i])
		}
	}
	return out.String()
}

// iastTokensByLengthDesc supports longest-match decoding, since several
// IAST tokens ("kh", "ch", ...) share a prefix with a shorter token ("k").
var iastTokensByLengthDesc = sortedTokensByLengthDesc(reverseIast)

func sortedTokensByLengthDesc(m map[string]byte) []string {
	toks := make([]string, 0, len(m))
	for k := range m {
		toks = append(toks, k)
	}
	sort.Slice(toks, func(i, j int) bool { return len(toks[i]) > len(toks[j]) })
	return toks
}

// decodeIast converts IAST text to SLP1 via greedy longest-match
// tokenization.
func decodeIast(text string) string {
	var out strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		matched := false
		for _, tok := range iastTokensByLengthDesc {
			tokRunes := []rune(tok)
			if i+len(tokRunes) <= len(runes) && string(runes[i:i+len(tokRunes)]) == tok {
				out.WriteByte(reverseIast[tok])
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

// toSlp1 converts text in the given source scheme into the internal SLP1
// romanization. Devanagari, Bengali, Kannada, Telugu and Grantha use the
// abugidaSchemeTable/decodeAbugida engine in abugida.go; Khmer, Thai,
// Tibetan and Tamil additionally run a reshape pass (reshape.go) before
// that same decoder; Itrans,
// Harvard-Kyoto and Velthuis share the tokenTable engine in token.go.
func toSlp1(text string, source Scheme) (string, error) {
	switch source {
	case Slp1:
		return text, nil
	case Iast:
		return decodeIast(text), nil
	case Itrans:
		return itransTable.toSlp1(text), nil
	case HarvardKyoto:
		return harvardKyotoTable.toSlp1(text), nil
	case Velthuis:
		return velthuisTable.toSlp1(text), nil
	case CyrillicPractical:
		// iuliia-go's practical schemas romanize Cyrillic to Latin; chain
		// that romanization into the IAST decoder to reach SLP1.
		return decodeIast(cyrillicToLatin(text)), nil
	}
	if t, ok := abugidaSchemeTable[source]; ok {
		return decodeAbugida(text, t), nil
	}
	if r, ok := reshapeSchemeTable[source]; ok {
		return r.decode(text), nil
	}
	return "", fmt.Errorf("%w: %q is not a supported source scheme", vyakarana.ErrEnumParse, source)
}

// fromSlp1 converts internal SLP1 text into the given destination scheme.
func fromSlp1(slp1 string, dest Scheme) (string, error) {
	switch dest {
	case Slp1:
		return slp1, nil
	case Iast:
		return encodeIast(slp1), nil
	case Itrans:
		return itransTable.fromSlp1(slp1), nil
	case HarvardKyoto:
		return harvardKyotoTable.fromSlp1(slp1), nil
	case Velthuis:
		return velthuisTable.fromSlp1(slp1), nil
	}
	if t, ok := abugidaSchemeTable[dest]; ok {
		return encodeAbugida(slp1, t), nil
	}
	if r, ok := reshapeSchemeTable[dest]; ok {
		return r.encode(slp1), nil
	}
	return "", fmt.Errorf("%w: %q is not a supported destination scheme", vyakarana.ErrEnumParse, dest)
}

// Transliterate maps text from source to dest via the intermediate SLP1
// romanization, per SPEC_FULL.md §4.8.
func Transliterate(text string, source, dest Scheme) (string, error) {
	slp1, err := toSlp1(text, source)
	if err != nil {
		return "", err
	}
	return fromSlp1(slp1, dest)
}

// cyrillicToLatin romanizes Cyrillic-transliterated Sanskrit (as found in
// Russian Indological citations) to Latin via iuliia-go's Wikipedia
// practical scheme, giving github.com/mehanizm/iuliia-go a concrete,
// correctly-directioned role per SPEC_FULL.md §4.B.
func cyrillicToLatin(text string) string {
	return iuliia.Wikipedia.Translate(text)
}

// PinyinGloss renders a Chinese gloss (as found in bilingual Buddhist
// terminology dictionaries alongside a Sanskrit headword) as Pinyin
// syllables via github.com/mozillazg/go-pinyin. This is a standalone
// lookup helper, not part of the scheme-pair engine: go-pinyin converts
// Hanzi to Pinyin, a direction orthogonal to the Sanskrit scheme pairs
// above.
func PinyinGloss(hanzi string) string {
	args := pinyin.NewArgs()
	syllables := pinyin.Pinyin(hanzi, args)
	parts := make([]string, 0, len(syllables))
	for _, group := range syllables {
		if len(group) > 0 {
			parts = append(parts, group[0])
		}
	}
	return strings.Join(parts, " ")
}
