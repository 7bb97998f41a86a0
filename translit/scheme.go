// Package translit implements the scheme-pair transliteration engine:
// mapping between Sanskrit/Indic romanizations and abugida scripts via an
// intermediate internal romanization (SLP1), plus CyrillicPractical (a
// source-only romanization) and the standalone PinyinGloss helper, both
// added in SPEC_FULL.md §4.B to exercise the rest of the teacher's
// dependency stack. Grounded on
// _examples/original_source/vidyut-lipi/src/detect.rs and SPEC_FULL.md
// §4.8.
package translit

// Scheme names every writing system this engine maps to or from. The
// distilled spec describes ~50 scheme pairs generically; this
// implementation concretely wires the classical Sanskrit/Indic core,
// every script spec.md §8 scenario 7 names, and the three ASCII
// romanizations and four reshaped abugidas SPEC_FULL.md §4.8 adds.
type Scheme string

const (
	Devanagari   Scheme = "Devanagari"
	Slp1         Scheme = "Slp1"
	Iast         Scheme = "Iast"
	Itrans       Scheme = "Itrans"
	HarvardKyoto Scheme = "HarvardKyoto"
	Velthuis     Scheme = "Velthuis"
	// CyrillicPractical is source-only: Russian Indological literature
	// sometimes cites Sanskrit terms in a practical Cyrillic
	// transliteration (e.g. Wikipedia's scheme). Decoding it is a real
	// direction for github.com/mehanizm/iuliia-go, which converts
	// Cyrillic to a Latin romanization; the destination direction
	// (Latin to Cyrillic) is not something that library does.
	CyrillicPractical Scheme = "CyrillicPractical"

	// Bengali, Kannada, Telugu and Grantha are the four additional Indic
	// abugidas spec.md §8 scenario 7 requires as destinations for
	// saMskRtam (SLP1). They share Devanagari's structure (independent
	// vowel / mātrā / consonant-with-inherent-a / virāma / anusvāra /
	// visarga) closely enough that encodeAbugida/decodeAbugida below
	// drive all five scripts off one engine parameterized by a per-script
	// abugidaTable.
	Bengali Scheme = "Bengali"
	Kannada Scheme = "Kannada"
	Telugu  Scheme = "Telugu"
	Grantha Scheme = "Grantha"

	// Khmer, Tamil, Thai and Tibetan are the four scripts spec.md §4.8
	// calls out by name as needing a pre/post "reshape" pass, each for a
	// different reason (see reshape.go): Khmer and Thai vowel/cluster
	// marks are stored in an order that diverges from left-to-right
	// phonetic order, Tibetan stacks subjoined consonants rather than
	// using virāma + a following base consonant, and Tamil resolves a
	// word-final bare consonant with an epenthetic vowel rather than a
	// visible virāma. Tamil script also has no separate aspirate or
	// voiced/voiceless letters for most consonant rows (a single glyph
	// like Tamil ta covers ta/tha/da/dha), so mapping Sanskrit's full
	// consonant inventory onto it is necessarily lossy; see tamilTable's
	// comment.
	Khmer   Scheme = "Khmer"
	Tamil   Scheme = "Tamil"
	Thai    Scheme = "Thai"
	Tibetan Scheme = "Tibetan"
)

// sound is one SLP1 phoneme: a vowel or a consonant base (without the
// inherent "a", for consonants).
type sound struct {
	slp1 byte
}

// vowelOrder lists SLP1 vowel sounds in the fixed order the independent and
// dependent (mātrā) Devanagari forms are tabulated against.
var vowelOrder = []byte{'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O'}

// consonantOrder lists SLP1 consonant sounds (without inherent vowel) in
// the order Devanagari akṣaras are tabulated against.
var consonantOrder = []byte{
	'k', 'K', 'g', 'G', 'N',
	'c', 'C', 'j', 'J', 'Y',
	'w', 'W', 'q', 'Q', 'R',
	't', 'T', 'd', 'D', 'n',
	'p', 'P', 'b', 'B', 'm',
	'y', 'r', 'l', 'v',
	'S', 'z', 's', 'h', 'L',
}

// devanagariIndependentVowel maps each SLP1 vowel to its independent
// (non-mātrā) Devanagari form.
var devanagariIndependentVowel = map[byte]string{
	'a': "अ", 'A': "आ", 'i': "इ", 'I': "ई", 'u': "उ", 'U': "ऊ",
	'f': "ऋ", 'F': "ॠ", 'x': "ऌ", 'X': "ॡ",
	'e': "ए", 'E': "ऐ", 'o': "ओ", 'O': "औ",
}

// devanagariMatra maps each SLP1 vowel (except 'a', whose mātrā is empty —
// the inherent vowel) to its dependent sign.
var devanagariMatra = map[byte]string{
	'A': "ा", 'i': "ि", 'I': "ी", 'u': "ु", 'U': "ू",
	'f': "ृ", 'F': "ॄ", 'x': "ॢ", 'X': "ॣ",
	'e': "े", 'E': "ै", 'o': "ो", 'O': "ौ",
}

// devanagariConsonant maps each SLP1 consonant base to its Devanagari
// akṣara (without inherent vowel mark — the glyph already assumes /a/).
var devanagariConsonant = map[byte]string{
	'k': "क", 'K': "ख", 'g': "ग", 'G': "घ", 'N': "ङ",
	'c': "च", 'C': "छ", 'j': "ज", 'J': "झ", 'Y': "ञ",
	'w': "ट", 'W': "ठ", 'q': "ड", 'Q': "ढ", 'R': "ण",
	't': "त", 'T': "थ", 'd': "द", 'D': "ध", 'n': "न",
	'p': "प", 'P': "फ", 'b': "ब", 'B': "भ", 'm': "म",
	'y': "य", 'r': "र", 'l': "ल", 'v': "व",
	'S': "श", 'z': "ष", 's': "स", 'h': "ह", 'L': "ळ",
}

const devanagariVirama = "्"
const devanagariAnusvara = "ं"
const devanagariVisarga = "ः"

func invertStringMap(m map[byte]string) map[string]byte {
	out := make(map[string]byte, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// iastToken / reverseIast give a direct 1:1 token table between IAST and
// SLP1 for the ambiguity-free ASCII-with-diacritics romanization.
var iastToken = map[byte]string{
	'a': "a", 'A': "ā", 'i': "i", 'I': "ī", 'u': "u", 'U': "ū",
	'f': "ṛ", 'F': "ṝ", 'x': "ḷ", 'X': "ḹ", 'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "ṅ",
	'c': "c", 'C': "ch", 'j': "j", 'J': "jh", 'Y': "ñ",
	'w': "ṭ", 'W': "ṭh", 'q': "ḍ", 'Q': "ḍh", 'R': "ṇ",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "ś", 'z': "ṣ", 's': "s", 'h': "h", 'L': "ḻ",
	'M': "ṃ", 'H': "ḥ",
}

var reverseIast = invertStringMap(iastToken)
