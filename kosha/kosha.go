// Package kosha implements the compact lexicon: an ordered map from
// surface-form bytes to packed 32-bit morphological records, with a
// duplicate-key extension scheme for the many-to-one case (one surface
// form, several morphological analyses). Grounded on
// _examples/original_source/vidyut-kosha/src/kosha.rs.
//
// No Go FST/transducer library appears anywhere in the retrieved example
// pack (see DESIGN.md), so this is a hand-written byte-trie honoring the
// same insertion-order and duplicate-tag contract a true minimized FST
// would: keys must arrive in lexicographic order, and the two-byte
// duplicate-tag alphabet is restricted to bytes 0..=64 so that extended
// keys always sort below any following ASCII key.
package kosha

import (
	"sort"

	"github.com/vidyapeetha/vyakarana"
	"github.com/vidyapeetha/vyakarana/packing"
)

// DupesPerByte is the per-byte alphabet size used for the duplicate-key
// extension tag (vidyut-kosha's DUPES_PER_BYTE).
const DupesPerByte = 65

// MaxDuplicates is the maximum number of records one surface-form key may
// hold (65^2).
const MaxDuplicates = DupesPerByte * DupesPerByte

type node struct {
	children map[byte]*node
	terminal bool
	value    uint64
}

func newNode() *node { return &node{children: make(map[byte]*node)} }

// Kosha is the built, read-only lexicon.
type Kosha struct {
	root    *node
	entries []entry // insertion-order record of (original key, value), for Stream
}

type entry struct {
	key   string
	value uint64
}

// Builder accumulates (key, value) insertions, which must arrive in
// lexicographic byte order, and produces a Kosha.
type Builder struct {
	root      *node
	entries   []entry
	lastKey   string
	dupeCount map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{root: newNode(), dupeCount: make(map[string]int)}
}

// createExtendedKey appends the two-byte duplicate tag for the n-th (0
// indexed, n>=1) repeat of key, using the 65-per-byte alphabet so the
// extension always sorts below any ASCII byte that could follow the same
// key in a legitimate insertion stream.
func createExtendedKey(key string, n int) (string, error) {
	if n <= 0 {
		return key, nil
	}
	if n >= MaxDuplicates {
		return "", vyakarana.ErrTooManyDuplicates
	}
	hi := byte(n / DupesPerByte)
	lo := byte(n % DupesPerByte)
	return key + string([]byte{hi, lo}), nil
}

// Insert adds (key, value). Insertions must arrive in non-decreasing
// lexicographic order of key (a transducer constraint, per spec.md §4.7);
// violating this returns an error.
func (b *Builder) Insert(key string, value uint64) error {
	if key < b.lastKey {
		return vyakarana.ErrDataFile
	}
	n := b.dupeCount[key]
	extended, err := createExtendedKey(key, n)
	if err != nil {
		return err
	}
	b.dupeCount[key] = n + 1
	b.insertExtended(extended, value)
	b.entries = append(b.entries, entry{key: key, value: value})
	b.lastKey = key
	return nil
}

func (b *Builder) insertExtended(key string, value uint64) {
	cur := b.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		next, ok := cur.children[c]
		if !ok {
			next = newNode()
			cur.children[c] = next
		}
		cur = next
	}
	cur.terminal = true
	cur.value = value
}

// Build finalizes the Builder into a read-only Kosha.
func (b *Builder) Build() *Kosha {
	return &Kosha{root: b.root, entries: b.entries}
}

func (k *Kosha) walk(key string) (*node, bool) {
	cur := k.root
	for i := 0; i < len(key); i++ {
		next, ok := cur.children[key[i]]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ContainsKey reports whether key was inserted at least once (a terminal
// node exists for its base, unextended form).
func (k *Kosha) ContainsKey(key string) bool {
	n, ok := k.walk(key)
	return ok && n.terminal
}

// ContainsPrefix reports whether key is a prefix of some inserted key:
// "success is defined by traversal did not fail" (spec.md §4.7), with no
// requirement of reaching a final state.
func (k *Kosha) ContainsPrefix(key string) bool {
	_, ok := k.walk(key)
	return ok
}

// GetAll returns every packed record inserted under key, including
// duplicates recovered from the two-byte extension subtree.
func (k *Kosha) GetAll(key string) []uint64 {
	var out []uint64
	n, ok := k.walk(key)
	if ok && n.terminal {
		out = append(out, n.value)
	}
	if ok {
		// Duplicates live at key + two extension bytes, each below
		// DupesPerByte; walk every such child pair in ascending tag order.
		his := sortedKeys(n.children)
		for _, hi := range his {
			if hi >= DupesPerByte {
				continue
			}
			hiNode := n.children[hi]
			los := sortedKeys(hiNode.children)
			for _, lo := range los {
				loNode := hiNode.children[lo]
				if loNode.terminal && lo < DupesPerByte {
					out = append(out, loNode.value)
				}
			}
		}
	}
	return out
}

func sortedKeys(m map[byte]*node) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Unpack decodes the low 32 bits of a stream/GetAll value into a
// packing.PackedRecord (the high 32 bits are reserved as zero, per
// SPEC_FULL.md §6).
func Unpack(value uint64) (packing.PackedRecord, error) {
	return packing.Unpack(uint32(value))
}

// Stream returns every (key, value) pair in the order they were inserted,
// using each entry's original (unextended) key.
func (k *Kosha) Stream() []struct {
	Key   string
	Value uint64
} {
	out := make([]struct {
		Key   string
		Value uint64
	}, len(k.entries))
	for i, e := range k.entries {
		out[i] = struct {
			Key   string
			Value uint64
		}{Key: e.key, Value: e.value}
	}
	return out
}
