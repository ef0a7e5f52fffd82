package codec

import (
	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// Sequence encodes a variable-length run of elements of a single element
// codec Elem, always as a dynamic value.
//
// Compact mode's static slot is three word-aligned u32 fields,
// [element_count | payload_offset | payload_byte_length], with elements laid
// out back-to-back at stride align_up(Elem.HeaderSize(d), d.Align) starting
// at payload_offset; dynamic elements append their own tails further out,
// exactly as a tuple field would.
//
// Solidity mode's static slot is a single word holding the offset (relative
// to origin) to the payload head: a 32-byte count word followed by
// element_count many element slots at stride align_up(Elem.HeaderSize(d),
// 32), with the first element slot (just past the count word) serving as
// the origin for any dynamic elements.
type Sequence[T any] struct {
	Elem Codec[T]
}

func (s Sequence[T]) elemStride(d Dialect) int {
	return align.Word(s.Elem.HeaderSize(d), d.Align)
}

func (Sequence[T]) offsetFieldWord(d Dialect) int {
	return align.Word(4, d.Align)
}

func (s Sequence[T]) HeaderSize(d Dialect) int {
	if d.solidity() {
		return s.offsetFieldWord(d)
	}

	return 3 * s.offsetFieldWord(d)
}

func (Sequence[T]) IsDynamic(Dialect) bool { return true }

func (s Sequence[T]) SizeHint(d Dialect, v []T) int {
	stride := s.elemStride(d)

	if d.solidity() {
		size := s.HeaderSize(d) + 32 + len(v)*stride
		for _, e := range v {
			if s.Elem.IsDynamic(d) {
				size += s.Elem.SizeHint(d, e) - stride
			}
		}

		return size
	}

	size := s.HeaderSize(d) + len(v)*stride
	for _, e := range v {
		if s.Elem.IsDynamic(d) {
			size += s.Elem.SizeHint(d, e) - stride
		}
	}

	return size
}

func (s Sequence[T]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v []T) (int, error) {
	header := s.HeaderSize(d)
	buf.EnsureLen(offset + header)

	payloadStart := buf.Len()
	if payloadStart < offset+header {
		payloadStart = offset + header
	}

	stride := s.elemStride(d)

	if d.solidity() {
		if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart-origin)); err != nil {
			return 0, err
		}

		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart, origin, uint32(len(v))); err != nil {
			return 0, err
		}

		elemsStart := payloadStart + 32
		buf.EnsureLen(elemsStart + len(v)*stride)

		for i, e := range v {
			elemOffset := elemsStart + i*stride
			if _, err := s.Elem.Encode(d, buf, elemOffset, elemsStart, e); err != nil {
				return 0, err
			}
		}

		return header, nil
	}

	word := s.offsetFieldWord(d)

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(len(v))); err != nil {
		return 0, err
	}

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+word, origin, uint32(payloadStart)); err != nil {
		return 0, err
	}

	buf.EnsureLen(payloadStart + len(v)*stride)

	for i, e := range v {
		elemOffset := payloadStart + i*stride
		if _, err := s.Elem.Encode(d, buf, elemOffset, payloadStart, e); err != nil {
			return 0, err
		}
	}

	byteLength := buf.Len() - payloadStart

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+2*word, origin, uint32(byteLength)); err != nil {
		return 0, err
	}

	return header, nil
}

func (s Sequence[T]) Decode(d Dialect, view wire.View, offset, origin int) ([]T, error) {
	stride := s.elemStride(d)

	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return nil, err
		}

		head := origin + int(rel)

		count, err := (Primitive[uint32]{}).Decode(d, view, head, origin)
		if err != nil {
			return nil, err
		}

		elemsStart := head + 32
		out := make([]T, count)

		for i := range out {
			elemOffset := elemsStart + i*stride

			val, err := s.Elem.Decode(d, view, elemOffset, elemsStart)
			if err != nil {
				return nil, err
			}

			out[i] = val
		}

		return out, nil
	}

	word := s.offsetFieldWord(d)

	count, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return nil, err
	}

	payloadStart, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
	if err != nil {
		return nil, err
	}

	out := make([]T, count)

	for i := range out {
		elemOffset := int(payloadStart) + i*stride

		val, err := s.Elem.Decode(d, view, elemOffset, int(payloadStart))
		if err != nil {
			return nil, err
		}

		out[i] = val
	}

	return out, nil
}

// PartialDecode reports (data_offset, element_count) — data_offset is the
// absolute position of the first element slot (after the Solidity count
// word, if present); element_count, not a byte length, since callers need
// the count to compute which element a given index lands on before
// decoding any of them.
func (s Sequence[T]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return 0, 0, err
		}

		head := origin + int(rel)
		if head < 0 {
			return 0, 0, errs.NewBufferOverflow("Sequence: negative payload offset")
		}

		count, err := (Primitive[uint32]{}).Decode(d, view, head, origin)
		if err != nil {
			return 0, 0, err
		}

		return head + 32, int(count), nil
	}

	word := s.offsetFieldWord(d)

	count, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return 0, 0, err
	}

	payloadStart, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
	if err != nil {
		return 0, 0, err
	}

	return int(payloadStart), int(count), nil
}
