package vyakarana

import "errors"

// Closed error taxonomy surfaced at the package boundary, per SPEC_FULL.md §7.
// There is no Abort value: the driver reports a derivation it cannot complete
// with a plain fmt.Errorf error that wraps none of the sentinels below.
var (
	// ErrMissingField is returned when a builder-style constructor is
	// invoked without all of its required inputs.
	ErrMissingField = errors.New("vyakarana: missing required field")

	// ErrEnumParse is returned when a caller-supplied string does not name
	// a known enum member (a lakāra, a vibhakti, a samāsa type, ...).
	ErrEnumParse = errors.New("vyakarana: unrecognized enum value")

	// ErrDataFile is returned when a data file (dhātupāṭha, lexicon,
	// meter library, ...) is absent or malformed.
	ErrDataFile = errors.New("vyakarana: data file error")

	// ErrTooManyDuplicates is returned by the kośa builder when more than
	// 4225 records share one surface-form key.
	ErrTooManyDuplicates = errors.New("vyakarana: too many duplicate keys")

	// ErrIDOverflow is returned by the packer when an interned dhātu-id or
	// prātipadika-id would exceed its allotted bit width. Resolves the
	// Open Question in spec.md §9.
	ErrIDOverflow = errors.New("vyakarana: interned id exceeds packed field width")
)
