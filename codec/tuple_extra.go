package codec

import (
	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/wire"
)

// Tuple1 is the degenerate arity-1 case: a record of a single field,
// useful mainly as the identity a derivation macro would emit for a
// one-field record rather than something callers reach for directly.
type Tuple1[A any] struct {
	F0 Codec[A]
}

func (t Tuple1[A]) IsDynamic(d Dialect) bool { return tupleIsDynamic(d, t.F0.IsDynamic) }
func (t Tuple1[A]) inlineSize(d Dialect) int { return tupleInlineSize(d, t.F0.HeaderSize) }
func (t Tuple1[A]) HeaderSize(d Dialect) int { return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d)) }

func (t Tuple1[A]) SizeHint(d Dialect, v A) int {
	return t.inlineSize(d) + t.F0.SizeHint(d, v) - t.F0.HeaderSize(d)
}

func (t Tuple1[A]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v A) (int, error) {
	base, bodyOrigin, err := tupleEncodeHead(d, buf, offset, origin, t.HeaderSize(d), t.IsDynamic(d))
	if err != nil {
		return 0, err
	}

	if _, err := t.F0.Encode(d, buf, base, bodyOrigin, v); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple1[A]) Decode(d Dialect, view wire.View, offset, origin int) (A, error) {
	var out A

	base, bodyOrigin, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return out, err
	}

	return t.F0.Decode(d, view, base, bodyOrigin)
}

func (t Tuple1[A]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple5Val[A, B, C, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 E
	V4 F
}

type Tuple5[A, B, C, E, F any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
	F3 Codec[E]
	F4 Codec[F]
}

func (t Tuple5[A, B, C, E, F]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic, t.F3.IsDynamic, t.F4.IsDynamic)
}

func (t Tuple5[A, B, C, E, F]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize, t.F3.HeaderSize, t.F4.HeaderSize)
}

func (t Tuple5[A, B, C, E, F]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple5[A, B, C, E, F]) SizeHint(d Dialect, v Tuple5Val[A, B, C, E, F]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)
	size += t.F3.SizeHint(d, v.V3) - t.F3.HeaderSize(d)
	size += t.F4.SizeHint(d, v.V4) - t.F4.HeaderSize(d)

	return size
}

func (t Tuple5[A, B, C, E, F]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple5Val[A, B, C, E, F]) (int, error) {
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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	if _, err := t.F4.Encode(d, buf, pos, bodyOrigin, v.V4); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple5[A, B, C, E, F]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple5Val[A, B, C, E, F], error) {
	var out Tuple5Val[A, B, C, E, F]

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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	out.V4, err = t.F4.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple5[A, B, C, E, F]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple6Val[A, B, C, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 E
	V4 F
	V5 G
}

type Tuple6[A, B, C, E, F, G any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
	F3 Codec[E]
	F4 Codec[F]
	F5 Codec[G]
}

func (t Tuple6[A, B, C, E, F, G]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic, t.F3.IsDynamic, t.F4.IsDynamic, t.F5.IsDynamic)
}

func (t Tuple6[A, B, C, E, F, G]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize, t.F3.HeaderSize, t.F4.HeaderSize, t.F5.HeaderSize)
}

func (t Tuple6[A, B, C, E, F, G]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple6[A, B, C, E, F, G]) SizeHint(d Dialect, v Tuple6Val[A, B, C, E, F, G]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)
	size += t.F3.SizeHint(d, v.V3) - t.F3.HeaderSize(d)
	size += t.F4.SizeHint(d, v.V4) - t.F4.HeaderSize(d)
	size += t.F5.SizeHint(d, v.V5) - t.F5.HeaderSize(d)

	return size
}

func (t Tuple6[A, B, C, E, F, G]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple6Val[A, B, C, E, F, G]) (int, error) {
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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	if _, err := t.F4.Encode(d, buf, pos, bodyOrigin, v.V4); err != nil {
		return 0, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	if _, err := t.F5.Encode(d, buf, pos, bodyOrigin, v.V5); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple6[A, B, C, E, F, G]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple6Val[A, B, C, E, F, G], error) {
	var out Tuple6Val[A, B, C, E, F, G]

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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	out.V4, err = t.F4.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	out.V5, err = t.F5.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple6[A, B, C, E, F, G]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple7Val[A, B, C, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 E
	V4 F
	V5 G
	V6 H
}

type Tuple7[A, B, C, E, F, G, H any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
	F3 Codec[E]
	F4 Codec[F]
	F5 Codec[G]
	F6 Codec[H]
}

func (t Tuple7[A, B, C, E, F, G, H]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic, t.F3.IsDynamic, t.F4.IsDynamic, t.F5.IsDynamic, t.F6.IsDynamic)
}

func (t Tuple7[A, B, C, E, F, G, H]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize, t.F3.HeaderSize, t.F4.HeaderSize, t.F5.HeaderSize, t.F6.HeaderSize)
}

func (t Tuple7[A, B, C, E, F, G, H]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple7[A, B, C, E, F, G, H]) SizeHint(d Dialect, v Tuple7Val[A, B, C, E, F, G, H]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)
	size += t.F3.SizeHint(d, v.V3) - t.F3.HeaderSize(d)
	size += t.F4.SizeHint(d, v.V4) - t.F4.HeaderSize(d)
	size += t.F5.SizeHint(d, v.V5) - t.F5.HeaderSize(d)
	size += t.F6.SizeHint(d, v.V6) - t.F6.HeaderSize(d)

	return size
}

func (t Tuple7[A, B, C, E, F, G, H]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple7Val[A, B, C, E, F, G, H]) (int, error) {
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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	if _, err := t.F4.Encode(d, buf, pos, bodyOrigin, v.V4); err != nil {
		return 0, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	if _, err := t.F5.Encode(d, buf, pos, bodyOrigin, v.V5); err != nil {
		return 0, err
	}
	pos += align.Word(t.F5.HeaderSize(d), d.Align)

	if _, err := t.F6.Encode(d, buf, pos, bodyOrigin, v.V6); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple7[A, B, C, E, F, G, H]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple7Val[A, B, C, E, F, G, H], error) {
	var out Tuple7Val[A, B, C, E, F, G, H]

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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	out.V4, err = t.F4.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	out.V5, err = t.F5.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F5.HeaderSize(d), d.Align)

	out.V6, err = t.F6.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple7[A, B, C, E, F, G, H]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}

type Tuple8Val[A, B, C, E, F, G, H, I any] struct {
	V0 A
	V1 B
	V2 C
	V3 E
	V4 F
	V5 G
	V6 H
	V7 I
}

type Tuple8[A, B, C, E, F, G, H, I any] struct {
	F0 Codec[A]
	F1 Codec[B]
	F2 Codec[C]
	F3 Codec[E]
	F4 Codec[F]
	F5 Codec[G]
	F6 Codec[H]
	F7 Codec[I]
}

func (t Tuple8[A, B, C, E, F, G, H, I]) IsDynamic(d Dialect) bool {
	return tupleIsDynamic(d, t.F0.IsDynamic, t.F1.IsDynamic, t.F2.IsDynamic, t.F3.IsDynamic, t.F4.IsDynamic, t.F5.IsDynamic, t.F6.IsDynamic, t.F7.IsDynamic)
}

func (t Tuple8[A, B, C, E, F, G, H, I]) inlineSize(d Dialect) int {
	return tupleInlineSize(d, t.F0.HeaderSize, t.F1.HeaderSize, t.F2.HeaderSize, t.F3.HeaderSize, t.F4.HeaderSize, t.F5.HeaderSize, t.F6.HeaderSize, t.F7.HeaderSize)
}

func (t Tuple8[A, B, C, E, F, G, H, I]) HeaderSize(d Dialect) int {
	return tupleHeaderSize(d, t.IsDynamic(d), t.inlineSize(d))
}

func (t Tuple8[A, B, C, E, F, G, H, I]) SizeHint(d Dialect, v Tuple8Val[A, B, C, E, F, G, H, I]) int {
	size := t.inlineSize(d)
	size += t.F0.SizeHint(d, v.V0) - t.F0.HeaderSize(d)
	size += t.F1.SizeHint(d, v.V1) - t.F1.HeaderSize(d)
	size += t.F2.SizeHint(d, v.V2) - t.F2.HeaderSize(d)
	size += t.F3.SizeHint(d, v.V3) - t.F3.HeaderSize(d)
	size += t.F4.SizeHint(d, v.V4) - t.F4.HeaderSize(d)
	size += t.F5.SizeHint(d, v.V5) - t.F5.HeaderSize(d)
	size += t.F6.SizeHint(d, v.V6) - t.F6.HeaderSize(d)
	size += t.F7.SizeHint(d, v.V7) - t.F7.HeaderSize(d)

	return size
}

func (t Tuple8[A, B, C, E, F, G, H, I]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v Tuple8Val[A, B, C, E, F, G, H, I]) (int, error) {
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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	if _, err := t.F4.Encode(d, buf, pos, bodyOrigin, v.V4); err != nil {
		return 0, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	if _, err := t.F5.Encode(d, buf, pos, bodyOrigin, v.V5); err != nil {
		return 0, err
	}
	pos += align.Word(t.F5.HeaderSize(d), d.Align)

	if _, err := t.F6.Encode(d, buf, pos, bodyOrigin, v.V6); err != nil {
		return 0, err
	}
	pos += align.Word(t.F6.HeaderSize(d), d.Align)

	if _, err := t.F7.Encode(d, buf, pos, bodyOrigin, v.V7); err != nil {
		return 0, err
	}

	return t.HeaderSize(d), nil
}

func (t Tuple8[A, B, C, E, F, G, H, I]) Decode(d Dialect, view wire.View, offset, origin int) (Tuple8Val[A, B, C, E, F, G, H, I], error) {
	var out Tuple8Val[A, B, C, E, F, G, H, I]

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
	pos += align.Word(t.F3.HeaderSize(d), d.Align)

	out.V4, err = t.F4.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F4.HeaderSize(d), d.Align)

	out.V5, err = t.F5.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F5.HeaderSize(d), d.Align)

	out.V6, err = t.F6.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}
	pos += align.Word(t.F6.HeaderSize(d), d.Align)

	out.V7, err = t.F7.Decode(d, view, pos, bodyOrigin)
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t Tuple8[A, B, C, E, F, G, H, I]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	base, _, err := tupleDecodeHead(d, view, offset, origin, t.IsDynamic(d))
	if err != nil {
		return 0, 0, err
	}

	return base, t.inlineSize(d), nil
}
