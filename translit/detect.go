package translit

import "strings"

// Detect guesses the scheme of text, per
// _examples/original_source/vidyut-lipi/src/detect.rs: Unicode-block
// classification for non-ASCII scripts, ASCII bigram/trigram heuristics
// for the Latin-alphabet schemes.
func Detect(text string) (Scheme, bool) {
	if isASCII(text) {
		return detectAscii(text)
	}
	blocks := map[rune]Scheme{
		0x0900 >> 7: Devanagari, 0x0980 >> 7: Bengali, 0x0B80 >> 7: Tamil,
		0x0C00 >> 7: Telugu, 0x0C80 >> 7: Kannada, 0x0E00 >> 7: Thai,
		0x0F00 >> 7: Tibetan, 0x0F80 >> 7: Tibetan, 0x1780 >> 7: Khmer,
		0x11300 >> 7: Grantha,
	}
	for _, r := range text {
		if s, ok := blocks[r>>7]; ok {
			return s, true
		}
	}
	return "", false
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return false
		}
	}
	return true
}

// slp1OnlyBytes are SLP1 consonant/vowel letters that never occur in plain
// IAST/HK/ITRANS ASCII romanizations, since those use diacritics (rendered
// as non-ASCII) or different digraphs for the same sounds.
const slp1OnlyBytes = "fFxXEOCYwWqQPB"

func detectAscii(text string) (Scheme, bool) {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(slp1OnlyBytes, text[i]) >= 0 {
			return Slp1, true
		}
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "r^i") {
		return Itrans, true
	}
	if strings.Contains(lower, ".r") {
		return Velthuis, true
	}
	if strings.Contains(text, "aa") || strings.Contains(text, "ii") || strings.Contains(text, "uu") {
		return Itrans, true
	}
	return HarvardKyoto, true
}
