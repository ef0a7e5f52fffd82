package codec

import (
	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/wire"
)

// Tuple2 through Tuple8 encode fixed-arity heterogeneous records.
//
// A tuple's HeaderSize is the alignment-rounded sum of its fields' own
// HeaderSize under d — the same stride rule Array and Sequence elements
// use — UNLESS the tuple is used under Solidity and at least one field is
// dynamic: then, mirroring the ABI's head/tail rule for dynamic structs,
// the tuple itself becomes a dynamic value. Its reported HeaderSize
// shrinks to a single offset word, and Encode writes that offset
// (relative to origin) pointing to an out-of-line body where the fields
// are laid out inline, with the body's own start serving as the origin
// for any dynamic field inside it.
//
// Under Compact mode a tuple is never relocated — every reference is
// already an absolute buffer offset, so there is nothing to gain by
// moving the struct itself out of line. IsDynamic therefore always
// reports false under Compact.

func tupleIsDynamic(d Dialect, fields ...func(Dialect) bool) bool {
	if !d.solidity() {
		return false
	}

	for _, isDynamic := range fields {
		if isDynamic(d) {
			return true
		}
	}

	return false
}

func tupleInlineSize(d Dialect, headers ...func(Dialect) int) int {
	size := 0
	for _, headerSize := range headers {
		size += align.Word(headerSize(d), d.Align)
	}

	return size
}

func tupleHeaderSize(d Dialect, dynamic bool, inline int) int {
	if d.solidity() && dynamic {
		return align.Word(4, d.Align)
	}

	return inline
}

// tupleEncodeHead writes the offset-indirection word when needed and
// returns (bodyOffset, bodyOrigin, err). For a tuple encoded inline it
// reserves the header bytes at offset and returns offset for both.
func tupleEncodeHead(d Dialect, buf *wire.Buffer, offset, origin, header int, dynamic bool) (int, int, error) {
	if !(d.solidity() && dynamic) {
		buf.EnsureLen(offset + header)

		return offset, offset, nil
	}

	buf.EnsureLen(offset + header)

	payloadStart := buf.Len()
	if payloadStart < offset+header {
		payloadStart = offset + header
	}

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart-origin)); err != nil {
		return 0, 0, err
	}

	return payloadStart, payloadStart, nil
}

func tupleDecodeHead(d Dialect, view wire.View, offset, origin int, dynamic bool) (int, int, error) {
	if !(d.solidity() && dynamic) {
		return offset, offset, nil
	}

	rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return 0, 0, err
	}

	head := origin + int(rel)

	return head, head, nil
}

type Tuple2Val[A, B any] struct {
	V0 A
	V1 B
}

type Tuple2[A, B any] struct {
	F0 Codec[A]
	F1 Codec[B]
}

func (t Tuple2[A, B]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic)
}

func (t Tuple2[A, B]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize)
}

func (t Tuple2[A, B]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple2[A, B]) SizeHint(d Dialect, v Tuple2Val[A, B]) int {
	return t.inlineSize(d) + t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d) + t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
}

func (t Tuple2[A, B]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple2Val[A, B]) (int, error) {
	base, bodyOrigin, err := tupleEncodeHead(d, buf, offset, origin, t.HeaderSize(d), t.IsDynamic(d))
	if err != nil {
		return 0, err
	}

	pos := base
	if _, err := t.F0.Encode(d, buf, pos, bodyOrigin, v.V0); err != nil {
		return 0, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	if _, err := t.F1.Encode(d, buf, pos, bodyOrigin, v.V1); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple2[A, B]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple2Val[A, B], error) {
	var out Tuple2Val[A, B]

	base, bodyOrigin, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return out, err
	}

	pos := base

	out.V0, err = t.F0.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	out.V1, err = t.F1.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple2[A, B]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple3Val[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Tuple3[A, B, C any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
}

func (t Tuple3[A, B, C]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic)
}

func (t Tuple3[A, B, C]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize)
}

func (t Tuple3[A, B, C]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple3[A, B, C]) SizeHint(d Dialect, v Tuple3Val[A, B, C]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)

	return size
}

func (t Tuple3[A, B, C]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple3Val[A, B, C]) (int, error) {
	base, bodyOrigin, err := tupleEncodeHead(d, buf, offset, origin, t.HeaderSize(d), t.IsDynamic(d))
	if err != nil {
		return 0, err
	}

	pos := base
	if _, err := t.F0.Encode(d, buf, pos, bodyOrigin, v.V0); err != nil {
		return 0, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	if _, err := t.F1.Encode(d, buf, pos, bodyOrigin, v.V1); err != nil {
		return 0, err
	}
	pos += align.Word(t.F1.HeaderSize(d), d.Align)

	if _, err := t.F2.Encode(d, buf, pos, bodyOrigin, v.V2); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple3[A, B, C]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple3Val[A, B, C], error) {
	var out Tuple3Val[A, B, C]

	base, bodyOrigin, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return out, err
	}

	pos := base

	out.V0, err = t.F0.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	out.V1, err = t.F1.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F1.HeaderSize(d), d.Align)

	out.V2, err = t.F2.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple3[A, B, C]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple4Val[A, B, C, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 E
}

type Tuple4[A, B, C, E any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
	F3 Codec[E]
}

func (t Tuple4[A, B, C, E]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic, t.F3.IsDynamic)
}

func (t Tuple4[A, B, C, E]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize, t.F3.HeaderSize)
}

func (t Tuple4[A, B, C, E]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple4[A, B, C, E]) SizeHint(d Dialect, v Tuple4Val[A, B, C, E]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)
	size += t.F3.SizeHint(d, v.V3) - t.F3.HeaderSize(d)

	return size
}

func (t Tuple4[A, B, C, E]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple4Val[A, B, C, E]) (int, error) {
	base, bodyOrigin, err := tupleEncodeHead(d, buf, offset, origin, t.HeaderSize(d), t.IsDynamic(d))
	if err != nil {
		return 0, err
	}

	pos := base
	if _, err := t.F0.Encode(d, buf, pos, bodyOrigin, v.V0); err != nil {
		return 0, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	if _, err := t.F1.Encode(d, buf, pos, bodyOrigin, v.V1); err != nil {
		return 0, err
	}
	pos += align.Word(t.F1.HeaderSize(d), d.Align)

	if _, err := t.F2.Encode(d, buf, pos, bodyOrigin, v.V2); err != nil {
		return 0, err
	}
	pos += align.Word(t.F2.HeaderSize(d), d.Align)

	if _, err := t.F3.Encode(d, buf, pos, bodyOrigin, v.V3); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple4[A, B, C, E]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple4Val[A, B, C, E], error) {
	var out Tuple4Val[A, B, C, E]

	base, bodyOrigin, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return out, err
	}

	pos := base

	out.V0, err = t.F0.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F0.HeaderSize(d), d.Align)

	out.V1, err = t.F1.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F1.HeaderSize(d), d.Align)

	out.V2, err = t.F2.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F2.HeaderSize(d), d.Align)

	out.V3, err = t.F3.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple4[A, B, C, E]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}
