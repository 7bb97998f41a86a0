// Package sounds implements the Śiva-sūtra pratyāhāra tables and phonetic
// attribute lookups (voiced, nasal, savarṇa, ...) consumed throughout the
// section modules. Grounded on the sound-class module referenced in
// _examples/original_source/_INDEX.md and on the classical Śiva-sūtra
// enumeration.
package sounds

import "github.com/vidyapeetha/vyakarana/common"

// The fourteen Śiva-sūtras, in SLP1, each written with its terminal
// it-marker (the markers themselves are what define pratyāhāra boundaries).
var sivasutras = []string{
	"aiuN", "fxk", "eON", "EOc", "hayavaraw", "laR",
	"YamaNaNanam", "JaBaY", "GaQaDaz", "jabagaqadaS",
	"KaPaCaWaTacawatav", "kapay", "SaSasar", "hal",
}

// Table holds the derived pratyāhāra membership and phonetic attribute
// lookups. It is built once and exposed through a common.Singleton so
// tests can inject a replacement (spec.md §9: "must be injectable for
// tests... but default to a built-in set").
type Table struct {
	// pratyahara maps a pratyāhāra name (e.g. "ac", "hal", "jhal") to its
	// member sounds.
	pratyahara map[string]string
}

var defaultTable = common.NewSingleton(buildDefault)

// Default returns the process-wide default sound table.
func Default() *Table { return defaultTable.Get() }

// SetDefault installs a replacement default table, e.g. in a test that
// wants to exercise an alternate phonetic scheme.
func SetDefault(t *Table) { defaultTable.Set(t) }

func buildDefault() *Table {
	t := &Table{pratyahara: make(map[string]string)}
	// Ad-hoc, hand-enumerated core pratyāhāras sufficient for the section
	// modules' predicates; not a full combinatorial pratyāhāra generator.
	t.pratyahara["ac"] = "aAiIuUfFxXeEoO"
	t.pratyahara["hal"] = "hyvrlYmNRnJBGQDjbgqdKPCWTcwtkpSzsh"
	t.pratyahara["yaR"] = "yvrl"
	t.pratyahara["jhal"] = "JBGQDjbgqdKPCWTcwtkpSzsh"
	t.pratyahara["khay"] = "KPCWTkpcwt"
	t.pratyahara["jhay"] = "JBGQDjbgqd"
	t.pratyahara["im"] = "iIuUfFxX"
	t.pratyahara["aT"] = "aA"
	return t
}

// InPratyahara reports whether sound (a single SLP1 byte, as a string) is a
// member of the named pratyāhāra.
func (t *Table) InPratyahara(name, sound string) bool {
	if sound == "" {
		return false
	}
	members, ok := t.pratyahara[name]
	if !ok {
		return false
	}
	for i := 0; i < len(members); i++ {
		if string(members[i]) == sound {
			return true
		}
	}
	return false
}

var shortVowels = map[byte]bool{'a': true, 'i': true, 'u': true, 'f': true, 'x': true}
var longVowels = map[byte]bool{'A': true, 'I': true, 'U': true, 'F': true, 'X': true, 'e': true, 'E': true, 'o': true, 'O': true}

// IsVowel reports whether b is any vowel sound.
func IsVowel(b byte) bool { return shortVowels[b] || longVowels[b] }

// IsShortVowel reports whether b is a short (hrasva) vowel.
func IsShortVowel(b byte) bool { return shortVowels[b] }

// IsLongVowel reports whether b is a long (dīrgha) vowel or a diphthong.
func IsLongVowel(b byte) bool { return longVowels[b] }

var voiced = map[byte]bool{}
var nasal = map[byte]bool{'N': true, 'Y': true, 'R': true, 'n': true, 'm': true}

func init() {
	for _, c := range "aAiIuUfFxXeEoOhyvrlYmNRnjbgqdJBGQD" {
		voiced[byte(c)] = true
	}
}

// IsVoiced reports whether b is a ghoṣa (voiced) sound.
func IsVoiced(b byte) bool { return voiced[b] }

// IsNasal reports whether b is an anunāsika sound.
func IsNasal(b byte) bool { return nasal[b] }

// Savarna reports whether two sounds belong to the same homorganic
// (savarṇa) class for sandhi purposes: same vowel quality ignoring length,
// per the aiuṇ/ṛḷk pratyāhāra groupings.
func Savarna(a, b byte) bool {
	group := func(c byte) int {
		switch c {
		case 'a', 'A':
			return 0
		case 'i', 'I':
			return 1
		case 'u', 'U':
			return 2
		case 'f', 'F':
			return 3
		case 'x', 'X':
			return 4
		default:
			return -1
		}
	}
	ga, gb := group(a), group(b)
	return ga >= 0 && ga == gb
}

// GunaOf returns the guṇa grade of a short vowel, or "" if v has no guṇa
// substitute (guṇa applies to a/i/u/ṛ/ḷ → a/e/o/ar/al).
func GunaOf(v byte) string {
	switch v {
	case 'a', 'A':
		return "a"
	case 'i', 'I':
		return "e"
	case 'u', 'U':
		return "o"
	case 'f', 'F':
		return "ar"
	case 'x', 'X':
		return "al"
	default:
		return ""
	}
}

// VrddhiOf returns the vṛddhi grade of a short vowel, or "" if none.
func VrddhiOf(v byte) string {
	switch v {
	case 'a', 'A':
		return "A"
	case 'i', 'I':
		return "E"
	case 'u', 'U':
		return "O"
	case 'f', 'F':
		return "Ar"
	case 'x', 'X':
		return "Al"
	default:
		return ""
	}
}
