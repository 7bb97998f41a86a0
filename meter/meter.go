// Package meter implements the akṣara-weight scanner and vṛtta/jāti
// matcher. Grounded on
// _examples/original_source/vidyut-chandas/src/padya.rs (VrttaWeight,
// MatchType, Gana, the YA_MA mnemonic array, VrttaPada.ganas()) and
// SPEC_FULL.md §4.9.
package meter

import (
	"github.com/gookit/color"
	"github.com/vidyapeetha/vyakarana/common"
)

// Weight is the classical heaviness of one akṣara (syllable).
type Weight byte

const (
	Laghu Weight = 'L'
	Guru  Weight = 'G'
)

// MatchType classifies how well a scanned line matches a meter definition.
type MatchType string

const (
	NoMatch    MatchType = "none"
	Prefix     MatchType = "prefix"
	PadaMatch  MatchType = "pada"
	FullMatch  MatchType = "full"
)

// Gana is one of the eight three-syllable mnemonic groups
// (yamātārājabhānasalagāḥ) used to describe vṛtta patterns tersely.
type Gana string

const (
	Ya Gana = "ya" // L G G
	Ma Gana = "ma" // G G G
	Ta Gana = "ta" // G G L
	Ra Gana = "ra" // G L G
	Ja Gana = "ja" // L G L
	Bha Gana = "bha" // G L L
	Na Gana = "na" // L L L
	Sa Gana = "sa" // L L G
)

// ganaPatterns maps each gaṇa to its three-weight pattern, per the
// yamātārājabhānasalagāḥ mnemonic.
var ganaPatterns = map[Gana][3]Weight{
	Ya:  {Laghu, Guru, Guru},
	Ma:  {Guru, Guru, Guru},
	Ta:  {Guru, Guru, Laghu},
	Ra:  {Guru, Laghu, Guru},
	Ja:  {Laghu, Guru, Laghu},
	Bha: {Guru, Laghu, Laghu},
	Na:  {Laghu, Laghu, Laghu},
	Sa:  {Laghu, Laghu, Guru},
}

// VrttaPada is one pāda (quarter-verse) of a vṛtta definition: a fixed
// sequence of weights, with optional caesura (yati) positions.
type VrttaPada struct {
	Weights []Weight
	Yati    []int
}

// Ganas chunks the pāda's weights into consecutive gaṇas of three weights
// each, per vidyut-chandas's VrttaPada.ganas(); trailing weights that do
// not fill a gaṇa are left out.
func (v VrttaPada) Ganas() [][3]Weight {
	var out [][3]Weight
	for i := 0; i+3 <= len(v.Weights); i += 3 {
		out = append(out, [3]Weight{v.Weights[i], v.Weights[i+1], v.Weights[i+2]})
	}
	return out
}

// Vrtta is a meter defined by a fixed syllable-weight pattern across four
// pādas.
type Vrtta struct {
	Name  string
	Padas [4]VrttaPada
}

// Jati is a meter defined by a per-pāda mātrā (mora) count instead of a
// fixed weight sequence.
type Jati struct {
	Name          string
	MatrasPerPada [4]int
	// Subtype constrains the tail pattern of each pāda beyond the raw
	// mātrā count. "vaitaliya" requires every pāda to end ra-la-ga
	// (G L G L [G|L-on-even-pāda]); "aupacchandasika" is the same with one
	// more gaṇa prefixed (G L G L G [G|L-on-even-pāda]). Grounded on
	// original_source/vidyut-chandas/src/padya.rs's JatiKind::Vaitaliyam/
	// Aupacchandasikam tail checks.
	Subtype string
}

// Library holds the known vṛtta and jāti definitions. Injectable for
// tests, defaults to a small built-in set (spec.md §9).
type Library struct {
	Vrttas []Vrtta
	Jatis  []Jati
}

var defaultLibrary = common.NewSingleton(buildDefaultLibrary)

// Default returns the process-wide default meter library.
func Default() *Library { return defaultLibrary.Get() }

// SetDefault installs a replacement meter library.
func SetDefault(l *Library) { defaultLibrary.Set(l) }

func buildDefaultLibrary() *Library {
	// Vasanta-tilakā: 14 syllables/pāda, gaṇas ta-bha-ja-ja-ga-ga
	// (G G L / G L L / L G L / L G L / G / G).
	pattern := []Weight{
		Guru, Guru, Laghu, // ta
		Guru, Laghu, Laghu, // bha
		Laghu, Guru, Laghu, // ja
		Laghu, Guru, Laghu, // ja
		Guru, Guru, // ga ga
	}
	pada := VrttaPada{Weights: pattern}
	return &Library{
		Vrttas: []Vrtta{
			{Name: "vasantatilaka", Padas: [4]VrttaPada{pada, pada, pada, pada}},
		},
		Jatis: []Jati{
			{Name: "arya", MatrasPerPada: [4]int{12, 18, 12, 15}},
			// Vaitālīya: odd pādas 14 mātrās, even pādas 16, tail ra-la-ga.
			{Name: "vaitaliya", MatrasPerPada: [4]int{14, 16, 14, 16}, Subtype: "vaitaliya"},
			// Aupacchandasika: Vaitālīya with one extra gaṇa (odd 14, even 18).
			{Name: "aupacchandasika", MatrasPerPada: [4]int{14, 18, 14, 18}, Subtype: "aupacchandasika"},
		},
	}
}

// Weigh scans a line in the internal romanization (SLP1) into its per-
// akṣara weights, per spec.md §4.9's classical weighing rule: long vowel
// -> guru; short vowel followed by a consonant cluster or final consonant
// -> guru; else laghu.
func Weigh(line string) []Weight {
	vowels := splitIntoAksharas(line)
	weights := make([]Weight, len(vowels))
	for i, ak := range vowels {
		weights[i] = weighAkshara(ak, i == len(vowels)-1)
	}
	return weights
}

type akshara struct {
	vowel        byte
	isLong       bool
	trailingHal  int // count of consonants immediately following, before the next vowel
}

func isVowelByte(b byte) bool {
	switch b {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

func isLongVowelByte(b byte) bool {
	switch b {
	case 'A', 'I', 'U', 'F', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

// splitIntoAksharas groups a romanized line into one akṣara per vowel,
// counting the consonants that trail it before the next vowel (or anusvāra
// /visarga, which count as a trailing consonant for weight purposes).
func splitIntoAksharas(line string) []akshara {
	var out []akshara
	i := 0
	for i < len(line) {
		if !isVowelByte(line[i]) {
			i++
			continue
		}
		ak := akshara{vowel: line[i], isLong: isLongVowelByte(line[i])}
		i++
		for i < len(line) && !isVowelByte(line[i]) {
			if line[i] != ' ' {
				ak.trailingHal++
			}
			i++
		}
		out = append(out, ak)
	}
	return out
}

func weighAkshara(ak akshara, isFinal bool) Weight {
	if ak.isLong {
		return Guru
	}
	if ak.trailingHal >= 2 {
		return Guru
	}
	if isFinal && ak.trailingHal >= 1 {
		return Guru
	}
	return Laghu
}

// Classify matches a scanned line's weights against the default library's
// vṛttas and jātis, returning the best MatchType found and the matching
// meter's name.
func Classify(line string) (MatchType, string) {
	return ClassifyWith(Default(), line)
}

// ClassifyWith is Classify parameterized over an explicit Library, for
// tests that inject a custom meter set.
func ClassifyWith(lib *Library, line string) (MatchType, string) {
	weights := Weigh(line)
	best := NoMatch
	bestName := ""
	for _, v := range lib.Vrttas {
		var full []Weight
		for _, p := range v.Padas {
			full = append(full, p.Weights...)
		}
		mt := matchWeights(weights, full, len(v.Padas[0].Weights))
		if rank(mt) > rank(best) {
			best, bestName = mt, v.Name
		}
	}
	for _, j := range lib.Jatis {
		mt := matchJati(weights, j)
		if rank(mt) > rank(best) {
			best, bestName = mt, j.Name
		}
	}
	return best, bestName
}

// matraValue is a weight's contribution in mātrās (morae): one for laghu,
// two for guru.
func matraValue(w Weight) int {
	if w == Guru {
		return 2
	}
	return 1
}

// matchJati groups weights into the jāti's four pādas by cumulative mātrā
// count, per vidyut-chandas's Jati::try_match: a pāda closes when its
// running mātrā total hits the target exactly, or — for the second and
// fourth (i_pada % 2 == 1) pādas only — falls exactly one mātrā short,
// since classical prosody allows the final laghu of an even pāda to stand
// in for a guru. More aksharas than the jāti has pāda slots is never a
// match.
func matchJati(weights []Weight, j Jati) MatchType {
	var padas [][]Weight
	curMatras := 0
	offset := 0
	for i := 0; i < len(weights); i++ {
		iPada := len(padas)
		if iPada >= len(j.MatrasPerPada) {
			return NoMatch
		}
		curMatras += matraValue(weights[i])
		target := j.MatrasPerPada[iPada]
		if curMatras == target || (iPada%2 == 1 && curMatras+1 == target) {
			padas = append(padas, weights[offset:i+1])
			offset = i + 1
			curMatras = 0
		}
	}
	if len(padas) != 4 {
		return NoMatch
	}
	switch j.Subtype {
	case "vaitaliya":
		if !allPadasMatchTail(padas, vaitaliyaTailOK) {
			return NoMatch
		}
	case "aupacchandasika":
		if !allPadasMatchTail(padas, aupacchandasikaTailOK) {
			return NoMatch
		}
	}
	if offset == len(weights) {
		return FullMatch
	}
	return PadaMatch
}

func allPadasMatchTail(padas [][]Weight, ok func(pada []Weight, isEvenPada bool) bool) bool {
	for i, pada := range padas {
		if !ok(pada, i%2 == 1) {
			return false
		}
	}
	return true
}

// vaitaliyaTailOK requires a pāda to end ra-la-ga (G L G L G); the final
// guru may stand as a laghu on the second and fourth (even) pādas.
func vaitaliyaTailOK(pada []Weight, isEvenPada bool) bool {
	n := len(pada)
	if n < 5 {
		return false
	}
	a, b, c, d, e := pada[n-5], pada[n-4], pada[n-3], pada[n-2], pada[n-1]
	return a == Guru && b == Laghu && c == Guru && d == Laghu && (e == Guru || isEvenPada)
}

// aupacchandasikaTailOK is vaitaliyaTailOK with one more gaṇa prefixed.
func aupacchandasikaTailOK(pada []Weight, isEvenPada bool) bool {
	n := len(pada)
	if n < 6 {
		return false
	}
	a, b, c, d, e, f := pada[n-6], pada[n-5], pada[n-4], pada[n-3], pada[n-2], pada[n-1]
	return a == Guru && b == Laghu && c == Guru && d == Laghu && e == Guru && (f == Guru || isEvenPada)
}

func rank(m MatchType) int {
	switch m {
	case FullMatch:
		return 3
	case PadaMatch:
		return 2
	case Prefix:
		return 1
	default:
		return 0
	}
}

func matchWeights(got, want []Weight, padaLen int) MatchType {
	n := len(got)
	if n > len(want) {
		n = len(want)
	}
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			if i == 0 {
				return NoMatch
			}
			return Prefix
		}
	}
	switch {
	case len(got) == len(want):
		return FullMatch
	case padaLen > 0 && len(got)%padaLen == 0 && len(got) > 0:
		return PadaMatch
	default:
		return Prefix
	}
}

// Highlight returns a Guru/Laghu colorized rendering of line's weights for
// display in a terminal, using github.com/gookit/color for interactive exploration
// of meter classification (SPEC_FULL.md §4.B) — a debug/CLI-adjacent
// convenience, not part of the core classification algorithm.
func Highlight(line string) string {
	weights := Weigh(line)
	s := ""
	for _, w := range weights {
		if w == Guru {
			s += color.FgRed.Render("G")
		} else {
			s += color.FgGreen.Render("L")
		}
	}
	return s
}
