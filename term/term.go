// Package term implements the mutable morphological segment that the rest
// of the derivation engine rewrites, plus the View abstraction over
// contiguous runs of segments. Grounded on
// _examples/original_source/vidyut-prakriya/src/prakriya.rs's Term type.
package term

import "strings"

// Tag is a grammatical category drawn from the closed ~150-member
// vocabulary described in SPEC_FULL.md §3: pratyaya kinds, lakāra, kāraka
// roles, section markers, sandhi markers, sañjñās (aṅga, pada, dhātu, guru,
// kit, ṅit, ...).
type Tag string

// A representative slice of the ~150-tag vocabulary; section packages add
// their own Tag constants as needed, since the vocabulary is open at the Go
// type level (a plain string) but closed by convention within the grammar.
const (
	Dhatu        Tag = "dhatu"
	Pratipadika  Tag = "pratipadika"
	Pratyaya     Tag = "pratyaya"
	Sup          Tag = "sup"
	Tin          Tag = "tin"
	Krt          Tag = "krt"
	Taddhita     Tag = "taddhita"
	Sanadi       Tag = "sanadi"
	Stri         Tag = "stri"
	Agama        Tag = "agama"
	Abhyasa      Tag = "abhyasa"
	Anga         Tag = "anga"
	Pada         Tag = "pada"
	Bha          Tag = "bha"
	Sarvadhatuka Tag = "sarvadhatuka"
	Ardhadhatuka Tag = "ardhadhatuka"
	Abhyasta     Tag = "abhyasta"
	Guru         Tag = "guru"
	Laghu        Tag = "laghu"
	Kit          Tag = "kit"
	Ngit         Tag = "ngit"
	Pit          Tag = "pit"
	Sit          Tag = "sit"
	Nit          Tag = "nit"
	Seti         Tag = "seti" // seṭ: it-āgama admitted
	Aniti        Tag = "aniti"
	Upasarga     Tag = "upasarga"
	Purvapada    Tag = "purvapada"
	Uttarapada   Tag = "uttarapada"
)

// Term is a single morphological segment under derivation.
type Term struct {
	// Upadesha is the form as originally stated, with marker sounds
	// present until the it-saṃjñā pass strips them.
	Upadesha string
	// Text is the term's current surface form.
	Text string
	// Tags is the term's tag set.
	Tags map[Tag]bool
	// Gana is the verbal root's conjugation class, if this term is a dhātu.
	Gana int
	// Antargana names a sub-list within a gaṇa that overrides the default
	// treatment for members of that sub-list (e.g. "kuṭādi", "tanādi").
	Antargana string
	// Artha is an optional meaning condition recorded for taddhita/kṛt
	// derivations that are sense-restricted.
	Artha string
	// USutra is the rule label (e.g. "10.1.1") the affix or root came from.
	USutra string
	// Sthanivat names the rule identifiers of the term(s) this term stands
	// in for (sthānivadbhāva bookkeeping), if any.
	Sthanivat []string
}

// New constructs a Term from an upadeśa string, with surface text initially
// identical to it (it-saṃjñā has not yet run).
func New(upadesha string) *Term {
	return &Term{
		Upadesha: upadesha,
		Text:     upadesha,
		Tags:     make(map[Tag]bool),
	}
}

// Clone returns a deep copy, used when the driver forks a Prakriyā at a
// choice point.
func (t *Term) Clone() *Term {
	tags := make(map[Tag]bool, len(t.Tags))
	for k, v := range t.Tags {
		tags[k] = v
	}
	sthanivat := append([]string(nil), t.Sthanivat...)
	c := *t
	c.Tags = tags
	c.Sthanivat = sthanivat
	return &c
}

// HasTag reports whether the term carries tag.
func (t *Term) HasTag(tag Tag) bool { return t.Tags[tag] }

// HasAnyTag reports whether the term carries any of tags.
func (t *Term) HasAnyTag(tags ...Tag) bool {
	for _, tag := range tags {
		if t.Tags[tag] {
			return true
		}
	}
	return false
}

// HasAllTags reports whether the term carries every tag in tags.
func (t *Term) HasAllTags(tags ...Tag) bool {
	for _, tag := range tags {
		if !t.Tags[tag] {
			return false
		}
	}
	return true
}

// AddTag adds tag to the term's tag set.
func (t *Term) AddTag(tag Tag) { t.Tags[tag] = true }

// AddTags adds every tag in tags.
func (t *Term) AddTags(tags ...Tag) {
	for _, tag := range tags {
		t.Tags[tag] = true
	}
}

// RemoveTag removes tag from the term's tag set.
func (t *Term) RemoveTag(tag Tag) { delete(t.Tags, tag) }

// IsEmpty reports whether the term has been lopa'd (emptied, not deleted —
// spec.md §3's invariant that terms are never removed mid-derivation).
func (t *Term) IsEmpty() bool { return t.Text == "" }

// --- text queries ---

// vowels is the SLP1 vowel alphabet used by the internal romanization.
const vowels = "aAiIuUfFxXeEoO"

// IsVowel reports whether the given SLP1 byte is a vowel.
func IsVowel(b byte) bool { return strings.IndexByte(vowels, b) >= 0 }

// Adi returns the term's initial sound, or "" if empty.
func (t *Term) Adi() string {
	if t.Text == "" {
		return ""
	}
	return string(t.Text[0])
}

// Antya returns the term's final sound, or "" if empty.
func (t *Term) Antya() string {
	if t.Text == "" {
		return ""
	}
	return string(t.Text[len(t.Text)-1])
}

// Upadha returns the penultimate sound, or "" if the term has fewer than
// two sounds.
func (t *Term) Upadha() string {
	if len(t.Text) < 2 {
		return ""
	}
	return string(t.Text[len(t.Text)-2])
}

// Len returns the number of bytes (SLP1 sounds are one byte each) in Text.
func (t *Term) Len() int { return len(t.Text) }

// NumVowels returns the number of vowel sounds in Text.
func (t *Term) NumVowels() int {
	n := 0
	for i := 0; i < len(t.Text); i++ {
		if IsVowel(t.Text[i]) {
			n++
		}
	}
	return n
}

// EndsWith reports whether Text ends with suffix.
func (t *Term) EndsWith(suffix string) bool { return strings.HasSuffix(t.Text, suffix) }

// StartsWith reports whether Text starts with prefix.
func (t *Term) StartsWith(prefix string) bool { return strings.HasPrefix(t.Text, prefix) }

// --- text mutations ---

// SetText replaces Text wholesale.
func (t *Term) SetText(s string) { t.Text = s }

// ReplacePrefix replaces a leading match of old with new. It is a no-op if
// Text does not start with old.
func (t *Term) ReplacePrefix(old, new string) {
	if strings.HasPrefix(t.Text, old) {
		t.Text = new + t.Text[len(old):]
	}
}

// ReplaceSuffix replaces a trailing match of old with new. It is a no-op if
// Text does not end with old.
func (t *Term) ReplaceSuffix(old, new string) {
	if strings.HasSuffix(t.Text, old) {
		t.Text = t.Text[:len(t.Text)-len(old)] + new
	}
}

// ReplaceAntya replaces the final sound with repl.
func (t *Term) ReplaceAntya(repl string) {
	if t.Text == "" {
		t.Text = repl
		return
	}
	t.Text = t.Text[:len(t.Text)-1] + repl
}

// ReplaceUpadha replaces the penultimate sound with repl.
func (t *Term) ReplaceUpadha(repl string) {
	if len(t.Text) < 2 {
		return
	}
	t.Text = t.Text[:len(t.Text)-2] + repl + t.Text[len(t.Text)-1:]
}

// ReplaceAt rewrites the substring [start, end) with repl.
func (t *Term) ReplaceAt(start, end int, repl string) {
	if start < 0 || end > len(t.Text) || start > end {
		return
	}
	t.Text = t.Text[:start] + repl + t.Text[end:]
}

// Prepend inserts s at the front of Text.
func (t *Term) Prepend(s string) { t.Text = s + t.Text }

// Append adds s to the end of Text.
func (t *Term) Append(s string) { t.Text += s }
