// Package packing implements the fixed-width packed morphological record
// and the Packer/Unpacker that convert between it and a Pada value object.
// Bit-exact port of
// _examples/original_source/src/packing.rs's PartOfSpeech/PackedSubanta/
// PackedTinanta/PackedAvyaya/Packer/Unpacker, translated from Rust
// bitfield arithmetic into Go uint32 shifts and masks. See DESIGN.md for
// the field-width reconciliation against SPEC_FULL.md §9's Open Question.
package packing

import (
	"fmt"

	"github.com/vidyapeetha/vyakarana"
)

// PartOfSpeech is the 2-bit discriminant of a packed record.
type PartOfSpeech uint8

const (
	PosNone PartOfSpeech = iota
	PosSubanta
	PosTinanta
	PosAvyaya
)

// Field widths, in bits. idBits is shared by both the dhātu-id and the
// prātipadika-id fields: the distilled spec names them 20 and "21 min"
// respectively, but both must fit the same 30-bit payload alongside their
// sibling subfields (10 bits of linga/vacana/vibhakti/is-pūrvapada or
// lakāra/puruṣa/vacana/pada); 20 bits is the value that makes both layouts
// sum to exactly 30, so both id fields use it here (see DESIGN.md).
const (
	posBits  = 2
	idBits   = 20
	idMask   = (1 << idBits) - 1
	lingaBits     = 2
	vacanaBits    = 2
	vibhaktiBits  = 5
	purvapadaBits = 1
	lakaraBits    = 5
	purusaBits    = 2
	padaBits      = 1
)

// Linga, Vacana, Vibhakti, Lakara, Purusa, Pada are small enums packed
// into their respective bit fields.
type Linga uint8

const (
	Pum Linga = iota
	Stri
	Napumsaka
)

type Vacana uint8

const (
	Eka Vacana = iota
	Dvi
	Bahu
)

type Vibhakti uint8

const (
	Prathama Vibhakti = iota + 1
	Dvitiya
	Tritiya
	Caturthi
	Panchami
	Sasthi
	Saptami
	Sambodhana
)

type Lakara uint8

const (
	Lat Lakara = iota
	Lit
	Lut
	Lrt
	Let
	Lot
	Lan
	VidhiLin
	AshirLin
	Lun
	Lrn
)

type Purusa uint8

const (
	Prathamapurusa Purusa = iota
	Madhyama
	Uttama
)

type Pada uint8

const (
	Parasmaipada Pada = iota
	Atmanepada
)

// Subanta is the decoded payload of a nominal packed record.
type Subanta struct {
	Linga        Linga
	Vacana       Vacana
	Vibhakti     Vibhakti
	IsPurvapada  bool
	PratipadikaID uint32
}

// Tinanta is the decoded payload of a verbal packed record.
type Tinanta struct {
	Lakara  Lakara
	Purusa  Purusa
	Vacana  Vacana
	Pada    Pada
	DhatuID uint32
}

// Avyaya is the decoded payload of an indeclinable packed record.
type Avyaya struct {
	PratipadikaID uint32
}

// PackedRecord is the decoded form of a 32-bit packed word.
type PackedRecord struct {
	Pos     PartOfSpeech
	Subanta *Subanta
	Tinanta *Tinanta
	Avyaya  *Avyaya
}

// Pack encodes rec into its 32-bit little-endian word (bits [0,2) POS,
// bits [2,32) payload per SPEC_FULL.md §3/§6).
func Pack(rec PackedRecord) (uint32, error) {
	var payload uint32
	switch rec.Pos {
	case PosSubanta:
		s := rec.Subanta
		if s == nil {
			return 0, fmt.Errorf("%w: Subanta payload required", vyakarana.ErrMissingField)
		}
		if s.PratipadikaID > idMask {
			return 0, fmt.Errorf("%w: pratipadika id %d", vyakarana.ErrIDOverflow, s.PratipadikaID)
		}
		payload = uint32(s.Linga)
		payload |= uint32(s.Vacana) << lingaBits
		payload |= uint32(s.Vibhakti) << (lingaBits + vacanaBits)
		if s.IsPurvapada {
			payload |= 1 << (lingaBits + vacanaBits + vibhaktiBits)
		}
		payload |= s.PratipadikaID << (lingaBits + vacanaBits + vibhaktiBits + purvapadaBits)
	case PosTinanta:
		tn := rec.Tinanta
		if tn == nil {
			return 0, fmt.Errorf("%w: Tinanta payload required", vyakarana.ErrMissingField)
		}
		if tn.DhatuID > idMask {
			return 0, fmt.Errorf("%w: dhatu id %d", vyakarana.ErrIDOverflow, tn.DhatuID)
		}
		payload = uint32(tn.Lakara)
		payload |= uint32(tn.Purusa) << lakaraBits
		payload |= uint32(tn.Vacana) << (lakaraBits + purusaBits)
		payload |= uint32(tn.Pada) << (lakaraBits + purusaBits + vacanaBits)
		payload |= tn.DhatuID << (lakaraBits + purusaBits + vacanaBits + padaBits)
	case PosAvyaya:
		av := rec.Avyaya
		if av == nil {
			return 0, fmt.Errorf("%w: Avyaya payload required", vyakarana.ErrMissingField)
		}
		if av.PratipadikaID >= (1 << 30) {
			return 0, fmt.Errorf("%w: pratipadika id %d", vyakarana.ErrIDOverflow, av.PratipadikaID)
		}
		payload = av.PratipadikaID
	case PosNone:
		// payload unused
	default:
		return 0, fmt.Errorf("%w: unknown part of speech %d", vyakarana.ErrEnumParse, rec.Pos)
	}
	return uint32(rec.Pos) | (payload << posBits), nil
}

// Unpack decodes a 32-bit packed word back into a PackedRecord. Unpack(Pack(x)) == x
// for every representable record.
func Unpack(word uint32) (PackedRecord, error) {
	pos := PartOfSpeech(word & ((1 << posBits) - 1))
	payload := word >> posBits
	switch pos {
	case PosSubanta:
		linga := Linga(payload & ((1 << lingaBits) - 1))
		payload >>= lingaBits
		vacana := Vacana(payload & ((1 << vacanaBits) - 1))
		payload >>= vacanaBits
		vibhakti := Vibhakti(payload & ((1 << vibhaktiBits) - 1))
		payload >>= vibhaktiBits
		isPurvapada := payload&1 == 1
		payload >>= purvapadaBits
		return PackedRecord{Pos: pos, Subanta: &Subanta{
			Linga: linga, Vacana: vacana, Vibhakti: vibhakti,
			IsPurvapada: isPurvapada, PratipadikaID: payload & idMask,
		}}, nil
	case PosTinanta:
		lakara := Lakara(payload & ((1 << lakaraBits) - 1))
		payload >>= lakaraBits
		purusa := Purusa(payload & ((1 << purusaBits) - 1))
		payload >>= purusaBits
		vacana := Vacana(payload & ((1 << vacanaBits) - 1))
		payload >>= vacanaBits
		pada := Pada(payload & 1)
		payload >>= padaBits
		return PackedRecord{Pos: pos, Tinanta: &Tinanta{
			Lakara: lakara, Purusa: purusa, Vacana: vacana, Pada: pada,
			DhatuID: payload & idMask,
		}}, nil
	case PosAvyaya:
		return PackedRecord{Pos: pos, Avyaya: &Avyaya{PratipadikaID: payload & ((1 << 30) - 1)}}, nil
	case PosNone:
		return PackedRecord{Pos: pos}, nil
	default:
		return PackedRecord{}, fmt.Errorf("%w: unknown part of speech %d", vyakarana.ErrEnumParse, pos)
	}
}

// Packer interns dhātus and prātipadikas into side tables during lexicon
// construction, assigning each a stable index in first-seen order, and
// packs morphological records referencing those indices.
type Packer struct {
	dhatus       []string
	pratipadikas []string
	dhatuIdx     map[string]uint32
	pratiIdx     map[string]uint32
}

// NewPacker returns an empty Packer.
func NewPacker() *Packer {
	return &Packer{dhatuIdx: make(map[string]uint32), pratiIdx: make(map[string]uint32)}
}

// InternDhatu returns the stable id for dhatu, interning it if new. Returns
// ErrIDOverflow the moment a new id would not fit in idBits bits, resolving
// SPEC_FULL.md §9's Open Question explicitly rather than silently
// truncating.
func (pk *Packer) InternDhatu(dhatu string) (uint32, error) {
	if id, ok := pk.dhatuIdx[dhatu]; ok {
		return id, nil
	}
	id := uint32(len(pk.dhatus))
	if id > idMask {
		return 0, fmt.Errorf("%w: dhatu table has %d entries", vyakarana.ErrIDOverflow, id)
	}
	pk.dhatus = append(pk.dhatus, dhatu)
	pk.dhatuIdx[dhatu] = id
	return id, nil
}

// InternPratipadika returns the stable id for pratipadika, interning it if
// new, with the same overflow behavior as InternDhatu.
func (pk *Packer) InternPratipadika(pratipadika string) (uint32, error) {
	if id, ok := pk.pratiIdx[pratipadika]; ok {
		return id, nil
	}
	id := uint32(len(pk.pratipadikas))
	if id > idMask {
		return 0, fmt.Errorf("%w: pratipadika table has %d entries", vyakarana.ErrIDOverflow, id)
	}
	pk.pratipadikas = append(pk.pratipadikas, pratipadika)
	pk.pratiIdx[pratipadika] = id
	return id, nil
}

// Dhatus returns the interned dhātu side table, in insertion order (line
// number i corresponds to dhātu-id i, per SPEC_FULL.md §6).
func (pk *Packer) Dhatus() []string { return pk.dhatus }

// Pratipadikas returns the interned prātipadika side table, in insertion
// order.
func (pk *Packer) Pratipadikas() []string { return pk.pratipadikas }

// DhatuByID resolves a dhātu-id back to its string.
func (pk *Packer) DhatuByID(id uint32) (string, bool) {
	if int(id) >= len(pk.dhatus) {
		return "", false
	}
	return pk.dhatus[id], true
}

// PratipadikaByID resolves a prātipadika-id back to its string.
func (pk *Packer) PratipadikaByID(id uint32) (string, bool) {
	if int(id) >= len(pk.pratipadikas) {
		return "", false
	}
	return pk.pratipadikas[id], true
}
