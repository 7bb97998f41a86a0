package translit

import (
	"sort"
	"strings"
)

// reshaper wraps an abugidaTable with an extra pre/post string transform
// for the four scripts (SPEC_FULL.md §4.8) whose written form diverges
// from the plain consonant-then-vowel-sign output of
// encodeAbugida/decodeAbugida: Thai preposes certain vowel signs before
// their consonant, Tibetan represents a consonant cluster by switching
// non-initial members to dedicated "subjoined" codepoints rather than by
// any vowel-killing mark, Khmer drops a word-final COENG, and Tamil
// resolves a word-final bare consonant with a "u" sign. post runs on
// encodeAbugida's output before it is returned to the caller; pre runs on
// decodeAbugida's input before decoding.
type reshaper struct {
	table *abugidaTable
	pre   func(string) string
	post  func(string) string
}

func (r *reshaper) encode(slp1 string) string {
	out := encodeAbugida(slp1, r.table)
	if r.post != nil {
		out = r.post(out)
	}
	return out
}

func (r *reshaper) decode(text string) string {
	if r.pre != nil {
		text = r.pre(text)
	}
	return decodeAbugida(text, r.table)
}

// --- Thai ---
//
// Thai's consonant inventory was extended specifically to transliterate
// Pali/Sanskrit (it carries a full set of retroflex and aspirate letters
// that plain Thai phonology does not otherwise distinguish), so the
// consonant-for-consonant correspondence below is close to exact. The one
// genuine reshape Thai needs: the vowel signs for e/ai/o/au are written
// (and stored, not just visually rendered) BEFORE the consonant they
// belong to, not after like every other Thai/Indic vowel sign.
// Long 'au' (O) is approximated with the long-ā sign rather than the
// genuine two-part เ...า digraph: that digraph wraps the consonant on
// both sides at once, which the single leading-glyph swap below cannot
// express without becoming a different, paired-delimiter reshape pass.
var thaiIndependentVowel = map[byte]string{
	'a': "อะ", 'A': "อา", 'i': "อิ", 'I': "อี", 'u': "อุ", 'U': "อู",
	'f': "ฤ", 'F': "ฤๅ", 'x': "ฦ", 'X': "ฦๅ",
	'e': "เอ", 'E': "ไอ", 'o': "โอ", 'O': "อา",
}

var thaiMatra = map[byte]string{
	'A': "า", 'i': "ิ", 'I': "ี", 'u': "ุ", 'U': "ู",
	'f': "ฤ", 'F': "ฤๅ", 'x': "ฦ", 'X': "ฦๅ",
	'e': "เ", 'E': "ไ", 'o': "โ", 'O': "า",
}

var thaiConsonant = map[byte]string{
	'k': "ก", 'K': "ข", 'g': "ค", 'G': "ฆ", 'N': "ง",
	'c': "จ", 'C': "ฉ", 'j': "ช", 'J': "ฌ", 'Y': "ญ",
	'w': "ฏ", 'W': "ฐ", 'q': "ฑ", 'Q': "ฒ", 'R': "ณ",
	't': "ต", 'T': "ถ", 'd': "ท", 'D': "ธ", 'n': "น",
	'p': "ป", 'P': "ผ", 'b': "พ", 'B': "ภ", 'm': "ม",
	'y': "ย", 'r': "ร", 'l': "ล", 'v': "ว",
	'S': "ศ", 'z': "ษ", 's': "ส", 'h': "ห", 'L': "ฬ",
}

const thaiVirama = "์"
const thaiAnusvara = "ง"
const thaiVisarga = "ะห"

var thaiTable = newAbugidaTable(thaiIndependentVowel, thaiMatra, thaiConsonant, thaiVirama, thaiAnusvara, thaiVisarga)

// thaiPreposed lists the Thai vowel-sign glyphs that must precede their
// consonant in storage order.
var thaiPreposed = []string{"เ", "ไ", "โ"}

// swapConsonantVowel moves each occurrence of consonant+sign to
// sign+consonant for every (consonant, sign) pair where sign is one of
// preposed and consonant is any glyph in consonants.
func swapConsonantVowel(text string, consonants map[byte]string, preposed []string, toFront bool) string {
	var pairs []string
	for _, cons := range consonants {
		for _, sign := range preposed {
			if toFront {
				pairs = append(pairs, cons+sign, sign+cons)
			} else {
				pairs = append(pairs, sign+cons, cons+sign)
			}
		}
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

var thaiReshaper = &reshaper{
	table: thaiTable,
	post:  func(s string) string { return swapConsonantVowel(s, thaiConsonant, thaiPreposed, true) },
	pre:   func(s string) string { return swapConsonantVowel(s, thaiConsonant, thaiPreposed, false) },
}

// --- Khmer ---
//
// Khmer consonants likewise preserve a near-complete Sanskrit/Pali
// inventory. Khmer's genuine reshape is different from Thai's: clusters
// are written consonant + COENG (U+17D2) + consonant, where COENG takes
// exactly the vowel-killing role Devanagari's virāma plays EXCEPT at the
// end of a word, where a bare final consonant carries no mark at all (a
// trailing COENG with nothing to subjoin is invalid Khmer). khmerTable
// therefore uses COENG as its virama, and the one reshape pass Khmer
// needs is stripping any COENG left dangling at the end of the string.
var khmerIndependentVowel = map[byte]string{
	'a': "អ", 'A': "អា", 'i': "ឥ", 'I': "ឦ", 'u': "ឧ", 'U': "ឩ",
	'f': "ឫ", 'F': "ឬ", 'x': "ឭ", 'X': "ឮ",
	'e': "ឯ", 'E': "ឰ", 'o': "ឱ", 'O': "ឳ",
}

var khmerMatra = map[byte]string{
	'A': "ា", 'i': "ិ", 'I': "ី", 'u': "ុ", 'U': "ូ",
	'f': "ឫ", 'F': "ឬ", 'x': "ឭ", 'X': "ឮ",
	'e': "េ", 'E': "ៃ", 'o': "ោ", 'O': "ៅ",
}

var khmerConsonant = map[byte]string{
	'k': "ក", 'K': "ខ", 'g': "គ", 'G': "ឃ", 'N': "ង",
	'c': "ច", 'C': "ឆ", 'j': "ជ", 'J': "ឈ", 'Y': "ញ",
	'w': "ដ", 'W': "ឋ", 'q': "ឌ", 'Q': "ឍ", 'R': "ណ",
	't': "ត", 'T': "ថ", 'd': "ទ", 'D': "ធ", 'n': "ន",
	'p': "ប", 'P': "ផ", 'b': "ព", 'B': "ភ", 'm': "ម",
	'y': "យ", 'r': "រ", 'l': "ល", 'v': "វ",
	'S': "ឝ", 'z': "ឞ", 's': "ស", 'h': "ហ", 'L': "ឡ",
}

const khmerCoeng = "្"
const khmerAnusvara = "ំ"
const khmerVisarga = "ះ"

var khmerTable = newAbugidaTable(khmerIndependentVowel, khmerMatra, khmerConsonant, khmerCoeng, khmerAnusvara, khmerVisarga)

var khmerReshaper = &reshaper{
	table: khmerTable,
	post:  func(s string) string { return strings.TrimSuffix(s, khmerCoeng) },
	pre:   func(s string) string { return s },
}

// --- Tibetan ---
//
// Tibetan's Unicode block carries dedicated letters for sounds plain
// Tibetan phonology lacks (gha, jha, ḍḍha, bha, dzha and the retroflex
// row) specifically so Sanskrit/Pali could be transliterated; the values
// below follow that block's layout but are lower-confidence than the
// Thai/Khmer tables above (the historical assignment is dense and this
// table covers the common cells, not every combining-mark variant). A
// consonant cluster is written by leaving the first consonant in its
// normal form and switching every subsequent member to its "subjoined"
// codepoint (U+0F90 range) instead of using any separate vowel-killing
// mark, so no visible virāma ever reaches the caller. tibetanTable still
// needs *some* virāma value internally, though: encodeAbugida/
// decodeAbugida's generic bare-consonant-before-consonant logic is the
// only place that knows which consonant in a cluster lacks its inherent
// vowel, and it only expresses that by emitting/consuming a virāma. So
// tibetanTable.virama is set to a private-use sentinel that never reaches
// a caller: the post pass (subjoinClusters) consumes
// "base + sentinel + base" and rewrites it to "base + subjoined(base)"
// before returning, and the pre pass (unsubjoinClusters) reverses that
// (subjoined(base) -> sentinel + base) so decodeAbugida's ordinary virāma
// handling can recover which consonant was bare.
var tibetanIndependentVowel = map[byte]string{
	'a': "ཨ", 'A': "ཨཱ", 'i': "ཨི", 'I': "ཨཱི", 'u': "ཨུ", 'U': "ཨཱུ",
	'f': "ཨྲྀ", 'F': "ཨཷ", 'x': "ཨླྀ", 'X': "ཨཹ",
	'e': "ཨེ", 'E': "ཨཻ", 'o': "ཨོ", 'O': "ཨཽ",
}

var tibetanMatra = map[byte]string{
	'A': "ཱ", 'i': "ི", 'I': "ཱི", 'u': "ུ", 'U': "ཱུ",
	'f': "ྲྀ", 'F': "ཷ", 'x': "ླྀ", 'X': "ཹ",
	'e': "ེ", 'E': "ཻ", 'o': "ོ", 'O': "ཽ",
}

// 'l' and 'L' (SLP1's dental vs. retroflex lateral) both land on "ལ":
// Tibetan phonology has no retroflex lateral, so the decode direction is
// lossy here the same way Tamil's collapsed consonant rows are lossy on
// aspiration.
var tibetanConsonant = map[byte]string{
	'k': "ཀ", 'K': "ཁ", 'g': "ག", 'G': "གྷ", 'N': "ང",
	'c': "ཙ", 'C': "ཚ", 'j': "ཛ", 'J': "ཛྷ", 'Y': "ཉ",
	'w': "ཊ", 'W': "ཋ", 'q': "ཌ", 'Q': "ཌྷ", 'R': "ཎ",
	't': "ཏ", 'T': "ཐ", 'd': "ད", 'D': "དྷ", 'n': "ན",
	'p': "པ", 'P': "ཕ", 'b': "བ", 'B': "བྷ", 'm': "མ",
	'y': "ཡ", 'r': "ར", 'l': "ལ", 'v': "ཝ",
	'S': "ཤ", 'z': "ཥ", 's': "ས", 'h': "ཧ", 'L': "ལ",
}

// tibetanSubjoined maps each base consonant glyph above to the dedicated
// "subjoined" codepoint (U+0F90-U+0FBC) used for every cluster member
// after the first.
var tibetanSubjoined = map[string]string{
	"ཀ": "ྐ", "ཁ": "ྑ", "ག": "ྒ", "གྷ": "ྒྷ", "ང": "ྔ",
	"ཙ": "ྩ", "ཚ": "ྪ", "ཛ": "ྫ", "ཛྷ": "ྫྷ", "ཉ": "ྙ",
	"ཊ": "ྚ", "ཋ": "ྛ", "ཌ": "ྜ", "ཌྷ": "ྜྷ", "ཎ": "ྞ",
	"ཏ": "ྟ", "ཐ": "ྠ", "ད": "ྡ", "དྷ": "ྡྷ", "ན": "ྣ",
	"པ": "ྤ", "ཕ": "ྥ", "བ": "ྦ", "བྷ": "ྦྷ", "མ": "ྨ",
	"ཡ": "ྱ", "ར": "ྲ", "ལ": "ླ", "ཝ": "ྭ",
	"ཤ": "ྴ", "ཥ": "ྵ", "ས": "ྶ", "ཧ": "ྷ",
}

var tibetanUnsubjoined = invertStringMapStr(tibetanSubjoined)

func invertStringMapStr(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// tibetanSubjoinedBaseByLenDesc and tibetanUnsubjoinedByLenDesc list match
// candidates longest-first: "གྷ" (2 runes) must be tried before "ག" (1
// rune) or subjoinClusters/unsubjoinClusters would peel off the prefix
// and strand the combining "ྷ".
var tibetanSubjoinedBaseByLenDesc = sortedStringKeysByLenDesc(tibetanSubjoined)
var tibetanUnsubjoinedByLenDesc = sortedStringKeysByLenDesc(tibetanUnsubjoined)

func sortedStringKeysByLenDesc(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len([]rune(keys[i])) > len([]rune(keys[j])) })
	return keys
}

const tibetanAnusvara = "ཾ"
const tibetanVisarga = "ཿ"

// tibetanVirama is the sentinel described above encodeAbugida/decodeAbugida
// use internally to mark a bare cluster-internal consonant. U+E000 is a
// Private Use Area codepoint: never assigned a real character, so it is
// safe as an internal-only marker. subjoinClusters always consumes it
// before the result reaches a caller, and unsubjoinClusters always
// reintroduces it right before decodeAbugida runs, so it never appears in
// text this package exchanges with the outside.
const tibetanVirama = "\uE000"

var tibetanTable = newAbugidaTable(tibetanIndependentVowel, tibetanMatra, tibetanConsonant, tibetanVirama, tibetanAnusvara, tibetanVisarga)

// subjoinClusters rewrites every "base + tibetanVirama + base" produced by
// encodeAbugida's generic bare-consonant flush into "base + subjoined(base)",
// which is how a real Tibetan cluster is written: the sentinel itself never
// reaches the caller.
func subjoinClusters(text string) string {
	var out strings.Builder
	runes := []rune(text)
	viramaRunes := []rune(tibetanVirama)
	for i := 0; i < len(runes); {
		if i+len(viramaRunes) <= len(runes) && string(runes[i:i+len(viramaRunes)]) == tibetanVirama {
			i += len(viramaRunes)
			matched := false
			for _, base := range tibetanSubjoinedBaseByLenDesc {
				baseRunes := []rune(base)
				if i+len(baseRunes) <= len(runes) && string(runes[i:i+len(baseRunes)]) == base {
					out.WriteString(tibetanSubjoined[base])
					i += len(baseRunes)
					matched = true
					break
				}
			}
			if !matched {
				// Word-final bare consonant: no following member to
				// subjoin onto. Drop the sentinel and leave the
				// preceding consonant in its plain form, same
				// simplification khmerReshaper.post makes for a
				// dangling COENG.
				continue
			}
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

// unsubjoinClusters reverses subjoinClusters: every subjoined glyph is
// restored to "tibetanVirama + base" so decodeAbugida's ordinary virāma
// handling can tell the preceding consonant was bare.
func unsubjoinClusters(text string) string {
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		matched := false
		for _, sub := range tibetanUnsubjoinedByLenDesc {
			subRunes := []rune(sub)
			if i+len(subRunes) <= len(runes) && string(runes[i:i+len(subRunes)]) == sub {
				out.WriteString(tibetanVirama)
				out.WriteString(tibetanUnsubjoined[sub])
				i += len(subRunes)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

var tibetanReshaper = &reshaper{
	table: tibetanTable,
	post:  subjoinClusters,
	pre:   unsubjoinClusters,
}

// --- Tamil ---
//
// spec.md §4.8 lists Tamil among the scripts needing a reshape pass for
// "superscripts that must follow the consonant they modify". Tamil vowel
// signs are already stored consonant-then-sign in Unicode (the leftward
// visual rendering of some signs is a font-shaping concern, not a
// storage-order one), so the genuine reshape Tamil needs lies elsewhere:
// real Tamil orthography for a Sanskrit word ending in a bare consonant
// does not leave it puLLi-marked (virāma'd) the way Devanagari would —
// it resolves the cluster with a short epenthetic "u" (SLP1 "vAk" ends in
// "கு", not "க்"), since a bare word-final consonant is foreign
// to native Tamil phonotactics. tamilReshaper's post pass performs that
// substitution; pre is the identity, since decoding a word that already
// ends in -u has no way to tell a genuine "u" from this epenthesis.
var tamilReshaper = &reshaper{
	table: tamilTable,
	post: func(s string) string {
		if strings.HasSuffix(s, tamilVirama) {
			return strings.TrimSuffix(s, tamilVirama) + tamilMatra['u']
		}
		return s
	},
	pre: func(s string) string { return s },
}

// reshapeSchemeTable dispatches a Scheme to its reshaper.
var reshapeSchemeTable = map[Scheme]*reshaper{
	Thai:    thaiReshaper,
	Khmer:   khmerReshaper,
	Tibetan: tibetanReshaper,
	Tamil:   tamilReshaper,
}
