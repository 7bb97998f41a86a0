// Package prakriya implements the derivation: an ordered, mutable sequence
// of terms plus derivation-wide tags, a history log, a choice log and a
// config block. Grounded on
// _examples/original_source/vidyut-prakriya/src/prakriya.rs's Prakriya
// struct and its op/op_optional/op_term/find_*/view method family.
package prakriya

import (
	"github.com/vidyapeetha/vyakarana/common"
	"github.com/vidyapeetha/vyakarana/term"
)

// Step is one entry in the history log: the rule that fired and a snapshot
// of the resulting surface text (spec.md §3: "an ordered list of
// (rule-identifier, snapshot-string)").
type Step struct {
	Rule Rule
	Text string
}

// Choice is one entry in the choice log: an optional rule and whether it
// fired.
type Choice struct {
	Rule   Rule
	Status ChoiceStatus
}

// Tag is a derivation-wide grammatical category (lakāra, prayoga, puruṣa,
// vacana, liṅga, vibhakti, samāsa-type, ...).
type Tag string

// Prakriya is a single derivation. It is single-threaded and fully owned by
// one derivation call (SPEC_FULL.md §5): never share a *Prakriya across
// goroutines.
type Prakriya struct {
	Terms     []*term.Term
	Tags      map[Tag]string
	History   []Step
	ChoiceLog []Choice
	Config    Config
}

// New returns an empty Prakriya ready for seeding by a driver.
func New(cfg Config) *Prakriya {
	return &Prakriya{
		Tags:   make(map[Tag]string),
		Config: cfg,
	}
}

// Text returns the concatenated surface text of every term in order
// (spec.md §3's fundamental invariant).
func (p *Prakriya) Text() string {
	s := ""
	for _, t := range p.Terms {
		s += t.Text
	}
	return s
}

// SetTag records a derivation-wide tag value (e.g. Tag("lakara") = "law").
func (p *Prakriya) SetTag(tag Tag, value string) { p.Tags[tag] = value }

// TagValue returns the value recorded for tag, and whether it was set.
func (p *Prakriya) TagValue(tag Tag) (string, bool) {
	v, ok := p.Tags[tag]
	return v, ok
}

// HasTagValue reports whether tag is set to value.
func (p *Prakriya) HasTagValue(tag Tag, value string) bool {
	return p.Tags[tag] == value
}

// AddTerm appends t to the term sequence and returns its index.
func (p *Prakriya) AddTerm(t *term.Term) int {
	p.Terms = append(p.Terms, t)
	return len(p.Terms) - 1
}

// InsertAfter inserts t immediately after index i, shifting all later
// indices by one. Per spec.md §9: insertions are explicit and indices
// remain stable across a single phase because no rule retains an index
// across a phase boundary.
func (p *Prakriya) InsertAfter(i int, t *term.Term) {
	p.Terms = append(p.Terms, nil)
	copy(p.Terms[i+2:], p.Terms[i+1:])
	p.Terms[i+1] = t
}

// InsertBefore inserts t immediately before index i.
func (p *Prakriya) InsertBefore(i int, t *term.Term) {
	p.InsertAfter(i-1, t)
}

// Term returns the term at index i, or nil if out of range.
func (p *Prakriya) Term(i int) *term.Term {
	if i < 0 || i >= len(p.Terms) {
		return nil
	}
	return p.Terms[i]
}

// Op unconditionally applies fn to the Prakriya, then appends a history
// step (spec.md §4.2's `op(rule, fn)`).
func (p *Prakriya) Op(rule Rule, fn func(*Prakriya)) {
	fn(p)
	p.recordStep(rule)
}

// OpTerm applies fn to the term at index i, then appends a history step
// (spec.md §4.2's `op_term(rule, i, fn)`).
func (p *Prakriya) OpTerm(rule Rule, i int, fn func(*term.Term)) {
	t := p.Term(i)
	if t == nil {
		return
	}
	fn(t)
	p.recordStep(rule)
}

// Opt asks the choice arbiter whether the optional rule fires; if yes,
// applies fn and logs Accepted; if no, logs Declined and returns false.
// Matches spec.md §4.2's `opt(rule, fn)` exactly: "a pure function of
// (replay script, rule id). If the script pins this rule to Accept or
// Decline, honor it; otherwise default to Accept and append to the choice
// log."
func (p *Prakriya) Opt(rule Rule, fn func(*Prakriya)) bool {
	status := p.decide(rule)
	p.ChoiceLog = append(p.ChoiceLog, Choice{Rule: rule, Status: status})
	if status == Declined {
		logger.Debug().Str("rule", rule.String()).Msg("optional rule declined")
		return false
	}
	fn(p)
	p.recordStep(rule)
	return true
}

// decide is the pure choice arbiter.
func (p *Prakriya) decide(rule Rule) ChoiceStatus {
	if status, ok := p.Config.Replay.Lookup(rule); ok {
		return status
	}
	return Accepted
}

func (p *Prakriya) recordStep(rule Rule) {
	logger.Debug().Str("rule", rule.String()).Str("text", p.Text()).Msg("rule applied")
	if !p.Config.LogSteps {
		return
	}
	p.History = append(p.History, Step{Rule: rule, Text: p.Text()})
}

// FindFirst returns the index of the first non-empty term carrying tag, or
// -1 if none.
func (p *Prakriya) FindFirst(tag term.Tag) int {
	for i, t := range p.Terms {
		if !t.IsEmpty() && t.HasTag(tag) {
			return i
		}
	}
	return -1
}

// FindLast returns the index of the last non-empty term carrying tag, or -1
// if none.
func (p *Prakriya) FindLast(tag term.Tag) int {
	for i := len(p.Terms) - 1; i >= 0; i-- {
		if !p.Terms[i].IsEmpty() && p.Terms[i].HasTag(tag) {
			return i
		}
	}
	return -1
}

// FindPrevWhere returns the index of the nearest non-empty term before i
// satisfying pred, or -1.
func (p *Prakriya) FindPrevWhere(i int, pred func(*term.Term) bool) int {
	for j := i - 1; j >= 0; j-- {
		if !p.Terms[j].IsEmpty() && pred(p.Terms[j]) {
			return j
		}
	}
	return -1
}

// FindNextWhere returns the index of the nearest non-empty term after i
// satisfying pred, or -1.
func (p *Prakriya) FindNextWhere(i int, pred func(*term.Term) bool) int {
	for j := i + 1; j < len(p.Terms); j++ {
		if !p.Terms[j].IsEmpty() && pred(p.Terms[j]) {
			return j
		}
	}
	return -1
}

// View returns a term.View over the terms in [start, end], skipping empty
// terms, clamped to the valid range.
func (p *Prakriya) View(start, end int) *term.View {
	if start < 0 {
		start = 0
	}
	if end >= len(p.Terms) {
		end = len(p.Terms) - 1
	}
	var terms []*term.Term
	for i := start; i <= end && i < len(p.Terms); i++ {
		if !p.Terms[i].IsEmpty() {
			terms = append(terms, p.Terms[i])
		}
	}
	return term.NewView(terms...)
}

// Clone deep-copies the Prakriya so the driver can fork it at a choice
// point without mutating the original run.
func (p *Prakriya) Clone() *Prakriya {
	clone := &Prakriya{
		Tags:      make(map[Tag]string, len(p.Tags)),
		History:   append([]Step(nil), p.History...),
		ChoiceLog: append([]Choice(nil), p.ChoiceLog...),
		Config:    p.Config,
	}
	for k, v := range p.Tags {
		clone.Tags[k] = v
	}
	for _, t := range p.Terms {
		clone.Terms = append(clone.Terms, t.Clone())
	}
	return clone
}

// logger is shared across the package for any derivation-level debug logs.
var logger = common.GetLogger()
