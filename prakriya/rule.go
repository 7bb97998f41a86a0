package prakriya

import "fmt"

// RuleSource is a tagged union over the grammatical source texts a rule
// identifier may come from, per SPEC_FULL.md §3.
type RuleSource string

const (
	Ashtadhyayi    RuleSource = "ashtadhyayi"
	Kashika        RuleSource = "kashika"
	Dhatupatha     RuleSource = "dhatupatha"
	Unadipatha     RuleSource = "unadipatha"
	Vartika        RuleSource = "vartika"
	Linganushasana RuleSource = "linganushasana"
	Phitsutra      RuleSource = "phitsutra"
	Kaumudi        RuleSource = "kaumudi"
)

// Rule is a rule identifier. String codes are opaque to the engine; only
// identity (Source, Code) matters for choice replay and history.
type Rule struct {
	Source RuleSource
	Code   string
}

// Sutra is a convenience constructor for an Aṣṭādhyāyī rule identifier,
// e.g. Sutra("1.3.1").
func Sutra(code string) Rule { return Rule{Source: Ashtadhyayi, Code: code} }

// Varttika constructs a vārttika rule identifier.
func Varttika(code string) Rule { return Rule{Source: Vartika, Code: code} }

// KaumudiRule constructs a Siddhānta-Kaumudī rule identifier.
func KaumudiRule(code string) Rule { return Rule{Source: Kaumudi, Code: code} }

func (r Rule) String() string { return fmt.Sprintf("%s:%s", r.Source, r.Code) }
