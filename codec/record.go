package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// fieldOp is a type-erased binding between a field's codec and a pointer
// into the caller's struct. Field[T] is the only constructor, so every
// instance is monomorphized for its concrete T at construction time —
// there is no reflection anywhere on the encode/decode path.
type fieldOp interface {
	name() string
	headerSize(d Dialect) int
	isDynamic(d Dialect) bool
	sizeHint(d Dialect) int
	encode(d Dialect, buf *wire.Buffer, offset, origin int) (int, error)
	decode(d Dialect, view wire.View, offset, origin int) error
}

type field[T any] struct {
	fieldName string
	codec     Codec[T]
	get       func() T
	set       func(T)
}

func (f field[T]) name() string             { return f.fieldName }
func (f field[T]) headerSize(d Dialect) int { return f.codec.HeaderSize(d) }
func (f field[T]) isDynamic(d Dialect) bool { return f.codec.IsDynamic(d) }
func (f field[T]) sizeHint(d Dialect) int   { return f.codec.SizeHint(d, f.get()) }

func (f field[T]) encode(d Dialect, buf *wire.Buffer, offset, origin int) (int, error) {
	return f.codec.Encode(d, buf, offset, origin, f.get())
}

func (f field[T]) decode(d Dialect, view wire.View, offset, origin int) error {
	v, err := f.codec.Decode(d, view, offset, origin)
	if err != nil {
		return err
	}

	f.set(v)

	return nil
}

// Field binds name and codec to a pointer into the caller's record struct,
// for encoding that field's current value and decoding straight back into
// it. This is the hand-written equivalent of what a derivation macro would
// generate for one field.
func Field[T any](name string, codec Codec[T], ptr *T) fieldOp {
	return field[T]{
		fieldName: name,
		codec:     codec,
		get:       func() T { return *ptr },
		set:       func(v T) { *ptr = v },
	}
}

// Record derives a heterogeneous-tuple encoding from an ordered field
// list, per the record-derivation rule: HEADER_SIZE is the alignment-
// rounded sum of the fields' header sizes, IS_DYNAMIC is their
// disjunction under Solidity (Compact records are never relocated, same
// as Tuple), and a dynamic record is preceded by a 32-byte offset word
// under Solidity exactly like a dynamic tuple.
//
// Decode overwrites the fields bound at construction in place; since Go
// zero-initializes the struct those pointers live in, this is exactly
// the "default-initialized record, then overwrite fields" rule.
//
// If checkCollisions is set, NewRecord rejects field lists whose names
// collide under a 64-bit hash — an opt-in guard most records never need,
// used the way a wire name registry would detect an accidental duplicate.
type Record struct {
	fields []fieldOp
}

// NewRecord builds a Record from an ordered field list. When
// checkCollisions is true, it additionally verifies that no two distinct
// field names hash to the same 64-bit digest, returning InvalidData if
// they do — a constructor-time check, never repeated per encode/decode.
func NewRecord(checkCollisions bool, fields ...fieldOp) (*Record, error) {
	if checkCollisions {
		seen := make(map[uint64]string, len(fields))

		for _, f := range fields {
			h := xxhash.Sum64String(f.name())

			if existing, ok := seen[h]; ok && existing != f.name() {
				return nil, errs.NewInvalidData("Record", fmt.Sprintf(
					"field name hash collision between %q and %q", existing, f.name()))
			}

			seen[h] = f.name()
		}
	}

	return &Record{fields: fields}, nil
}

func (r *Record) inlineSize(d Dialect) int {
	size := 0
	for _, f := range r.fields {
		size += align.Word(f.headerSize(d), d.Align)
	}

	return size
}

func (r *Record) IsDynamic(d Dialect) bool {
	if !d.solidity() {
		return false
	}

	for _, f := range r.fields {
		if f.isDynamic(d) {
			return true
		}
	}

	return false
}

func (r *Record) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, r.IsDynamic(d), r.inlineSize(d))
}

func (r *Record) SizeHint(d Dialect) int {
	size := r.inlineSize(d)

	for _, f := range r.fields {
		size += f.sizeHint(d) - align.Word(f.headerSize(d), d.Align)
	}

	return size
}

// Encode writes the bound fields' current values. The return value is
// always HeaderSize(d), matching the Codec contract.
func (r *Record) Encode(d Dialect, buf *wire.Buffer, offset, origin int) (int, error) {
	base, bodyOrigin, err := tupleEncodeHead(d, buf, offset, origin, r.HeaderSize(d), r.IsDynamic(d))
	if err != nil {
		return 0, err
	}

	pos := base
	for _, f := range r.fields {
		if _, err := f.encode(d, buf, pos, bodyOrigin); err != nil {
			return 0, err
		}

		pos += align.Word(f.headerSize(d), d.Align)
	}

	return r.HeaderSize(d), nil
}

// Decode overwrites the bound fields, in declaration order, from view.
func (r *Record) Decode(d Dialect, view wire.View, offset, origin int) error {
	base, bodyOrigin, err := tupleDecodeHead(d, view, offset, origin, r.IsDynamic(d))
	if err != nil {
		return err
	}

	pos := base
	for _, f := range r.fields {
		if err := f.decode(d, view, pos, bodyOrigin); err != nil {
			return err
		}

		pos += align.Word(f.headerSize(d), d.Align)
	}

	return nil
}

func (r *Record) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, r.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, r.inlineSize(d), nil
}
