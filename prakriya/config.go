package prakriya

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"
)

// ChoiceStatus records whether an optional rule fired.
type ChoiceStatus string

const (
	Accepted ChoiceStatus = "accepted"
	Declined ChoiceStatus = "declined"
)

// replayEntry is the YAML-serializable form of one pinned choice.
type replayEntry struct {
	Source string       `yaml:"source"`
	Code   string       `yaml:"code"`
	Status ChoiceStatus `yaml:"status"`
}

// ReplayScript pins the outcome of optional rules seen in prior runs, so
// the driver can enumerate every combination by re-running with each
// combination pinned (SPEC_FULL.md §4.2, §9 "Nondeterminism").
type ReplayScript struct {
	pins map[Rule]ChoiceStatus
}

// NewReplayScript returns an empty script (every optional rule defaults to
// Accept).
func NewReplayScript() *ReplayScript { return &ReplayScript{pins: make(map[Rule]ChoiceStatus)} }

// Pin fixes the outcome of rule to status.
func (r *ReplayScript) Pin(rule Rule, status ChoiceStatus) {
	if r.pins == nil {
		r.pins = make(map[Rule]ChoiceStatus)
	}
	r.pins[rule] = status
}

// Lookup returns the pinned status for rule, if any.
func (r *ReplayScript) Lookup(rule Rule) (ChoiceStatus, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.pins[rule]
	return s, ok
}

// MarshalReplayYAML serializes the script to YAML, e.g. for golden-file
// regression tests or as a derivation cache key.
func (r *ReplayScript) MarshalReplayYAML() ([]byte, error) {
	entries := make([]replayEntry, 0, len(r.pins))
	for rule, status := range r.pins {
		entries = append(entries, replayEntry{Source: string(rule.Source), Code: rule.Code, Status: status})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Source != entries[j].Source {
			return entries[i].Source < entries[j].Source
		}
		return entries[i].Code < entries[j].Code
	})
	return yaml.Marshal(entries)
}

// ParseReplayYAML builds a ReplayScript from YAML produced by
// MarshalReplayYAML.
func ParseReplayYAML(data []byte) (*ReplayScript, error) {
	var entries []replayEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("prakriya: parsing replay script: %w", err)
	}
	script := NewReplayScript()
	for _, e := range entries {
		script.Pin(Rule{Source: RuleSource(e.Source), Code: e.Code}, e.Status)
	}
	return script, nil
}

// Config holds per-derivation options, per SPEC_FULL.md §6.
type Config struct {
	LogSteps bool
	Chandasi bool
	NlpMode  bool
	Replay   *ReplayScript
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithLogSteps toggles step recording (default true).
func WithLogSteps(v bool) ConfigOption { return func(c *Config) { c.LogSteps = v } }

// WithChandasi allows chāndasa (Vedic/metrical) forms.
func WithChandasi(v bool) ConfigOption { return func(c *Config) { c.Chandasi = v } }

// WithNlpMode preserves word-final s/r that standard visarga-sandhi would
// transform, for downstream NLP consumers.
func WithNlpMode(v bool) ConfigOption { return func(c *Config) { c.NlpMode = v } }

// WithReplay pins a prior choice-log for this derivation.
func WithReplay(script *ReplayScript) ConfigOption {
	return func(c *Config) { c.Replay = script }
}

// NewConfig builds a Config with spec.md §6 defaults
// ({log_steps: true, is_chandasi: false, nlp_mode: false}), then applies
// opts in order. spec.md §6's use_svaras flag has no corresponding field:
// no term in this engine's lexicon or affix tables ever carries an accent
// mark to retain (see DESIGN.md), so there is nothing for such a flag to
// do.
func NewConfig(opts ...ConfigOption) Config {
	c := Config{LogSteps: true, Replay: NewReplayScript()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Replay == nil {
		c.Replay = NewReplayScript()
	}
	return c
}
