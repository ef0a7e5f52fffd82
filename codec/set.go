package codec

import (
	"sort"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// Set encodes an associative container with no values — a single dynamic
// blob of elements in ascending order, the same sort-then-blob discipline
// as Map's keys side.
//
// Compact mode's static slot is three word-aligned u32 fields:
// [element_count, data_offset, data_length].
//
// Solidity mode's static slot is a single offset word (relative to
// origin) to the payload head: [count, values_relative_offset], itself
// serving as the origin for any dynamic element.
type Set[T comparable] struct {
	Elem Codec[T]
	Less func(a, b T) bool

	// VerifyOrder additionally rejects a decoded element blob that is not
	// in strict ascending order, beyond the mandatory count-mismatch check.
	VerifyOrder bool
}

func (Set[T]) offsetFieldWord(d Dialect) int { return align.Word(4, d.Align) }

func (s Set[T]) HeaderSize(d Dialect) int {
	if d.solidity() {
		return s.offsetFieldWord(d)
	}

	return 3 * s.offsetFieldWord(d)
}

func (Set[T]) IsDynamic(Dialect) bool { return true }

func (s Set[T]) SizeHint(d Dialect, v map[T]struct{}) int {
	stride := align.Word(s.Elem.HeaderSize(d), d.Align)
	size := s.HeaderSize(d) + len(v)*stride

	if d.solidity() {
		size += 64
	}

	return size
}

func (s Set[T]) sorted(v map[T]struct{}) []T {
	out := make([]T, 0, len(v))
	for k := range v {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool { return s.Less(out[i], out[j]) })

	return out
}

func (s Set[T]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v map[T]struct{}) (int, error) {
	elems := s.sorted(v)
	header := s.HeaderSize(d)
	buf.EnsureLen(offset + header)

	if d.solidity() {
		payloadStart := buf.Len()
		if payloadStart < offset+header {
			payloadStart = offset + header
		}

		if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart-origin)); err != nil {
			return 0, err
		}

		buf.EnsureLen(payloadStart + 64)

		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart, origin, uint32(len(elems))); err != nil {
			return 0, err
		}

		buf.EnsureLen(payloadStart + 64)

		valuesStart, _, err := encodeBlob(d, buf, s.Elem, payloadStart, elems)
		if err != nil {
			return 0, err
		}

		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart+32, origin, uint32(valuesStart-payloadStart)); err != nil {
			return 0, err
		}

		return header, nil
	}

	word := s.offsetFieldWord(d)

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(len(elems))); err != nil {
		return 0, err
	}

	dataStart, dataLen, err := encodeBlob(d, buf, s.Elem, origin, elems)
	if err != nil {
		return 0, err
	}

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+word, origin, uint32(dataStart)); err != nil {
		return 0, err
	}
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+2*word, origin, uint32(dataLen)); err != nil {
		return 0, err
	}

	return header, nil
}

func (s Set[T]) Decode(d Dialect, view wire.View, offset, origin int) (map[T]struct{}, error) {
	var elems []T
	var count int

	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return nil, err
		}

		head := origin + int(rel)

		c, err := (Primitive[uint32]{}).Decode(d, view, head, origin)
		if err != nil {
			return nil, err
		}
		count = int(c)

		valuesRel, err := (Primitive[uint32]{}).Decode(d, view, head+32, origin)
		if err != nil {
			return nil, err
		}

		elems, err = decodeBlob(d, view, s.Elem, head+int(valuesRel), head, count)
		if err != nil {
			return nil, err
		}
	} else {
		word := s.offsetFieldWord(d)

		c, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return nil, err
		}
		count = int(c)

		dataOffset, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
		if err != nil {
			return nil, err
		}

		elems, err = decodeBlob(d, view, s.Elem, int(dataOffset), origin, count)
		if err != nil {
			return nil, err
		}
	}

	if s.VerifyOrder {
		for i := 1; i < len(elems); i++ {
			if !s.Less(elems[i-1], elems[i]) {
				return nil, errs.NewInvalidData("Set.Decode", "elements are not in strict ascending order")
			}
		}
	}

	out := make(map[T]struct{}, count)
	for _, e := range elems {
		out[e] = struct{}{}
	}

	if len(out) != count {
		return nil, errs.NewInvalidData("Set.Decode", "duplicate element: decoded element count does not match declared count")
	}

	return out, nil
}

func (s Set[T]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return 0, 0, err
		}

		head := origin + int(rel)

		count, err := (Primitive[uint32]{}).Decode(d, view, head, origin)
		if err != nil {
			return 0, 0, err
		}

		valuesRel, err := (Primitive[uint32]{}).Decode(d, view, head+32, origin)
		if err != nil {
			return 0, 0, err
		}

		return head + int(valuesRel), int(count), nil
	}

	word := s.offsetFieldWord(d)

	count, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return 0, 0, err
	}

	dataOffset, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
	if err != nil {
		return 0, 0, err
	}

	return int(dataOffset), int(count), nil
}
