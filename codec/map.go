package codec

import (
	"sort"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// Map encodes an associative container as two parallel dynamic blobs: a
// keys blob and a values blob, both laid out exactly like a sequence's
// element region (no per-blob offset/count indirection of their own —
// the map's own header carries the single count and the two blob
// locations). Entries are sorted into ascending key order by Less before
// encoding, giving every encoder a single canonical byte representation
// for a given logical map.
//
// Compact mode's static slot is five word-aligned u32 fields:
// [element_count, keys_offset, keys_length, values_offset, values_length].
//
// Solidity mode's static slot is a single offset word (relative to
// origin) to a 128-byte payload head: [outer_offset, count,
// keys_relative_offset, values_relative_offset], where the two relative
// offsets are themselves relative to the payload head's own position —
// which also serves as the origin for any dynamic key or value.
type Map[K comparable, V any] struct {
	Key   Codec[K]
	Value Codec[V]
	Less  func(a, b K) bool

	// VerifyOrder additionally rejects a decoded key blob that is not in
	// strict ascending order, beyond the mandatory count-mismatch check.
	VerifyOrder bool
}

func (Map[K, V]) offsetFieldWord(d Dialect) int { return align.Word(4, d.Align) }

func (m Map[K, V]) HeaderSize(d Dialect) int {
	if d.solidity() {
		return m.offsetFieldWord(d)
	}

	return 5 * m.offsetFieldWord(d)
}

func (Map[K, V]) IsDynamic(Dialect) bool { return true }

func (m Map[K, V]) SizeHint(d Dialect, v map[K]V) int {
	keyStride := align.Word(m.Key.HeaderSize(d), d.Align)
	valStride := align.Word(m.Value.HeaderSize(d), d.Align)
	n := len(v)

	size := m.HeaderSize(d) + n*keyStride + n*valStride
	if d.solidity() {
		size += 128
	}

	return size
}

func (m Map[K, V]) entries(v map[K]V) ([]K, []V) {
	keys := make([]K, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return m.Less(keys[i], keys[j]) })

	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = v[k]
	}

	return keys, vals
}

// encodeBlob writes count elements back-to-back at the buffer's current
// tail using elemCodec, with origin as the enclosing reference frame, and
// returns (blobStart, byteLength).
func encodeBlob[T any](d Dialect, buf *wire.Buffer, elemCodec Codec[T], origin int, vs []T) (int, int, error) {
	stride := align.Word(elemCodec.HeaderSize(d), d.Align)
	start := buf.Len()
	buf.EnsureLen(start + len(vs)*stride)

	for i, v := range vs {
		if _, err := elemCodec.Encode(d, buf, start+i*stride, origin, v); err != nil {
			return 0, 0, err
		}
	}

	return start, buf.Len() - start, nil
}

func decodeBlob[T any](d Dialect, view wire.View, elemCodec Codec[T], base, origin, count int) ([]T, error) {
	stride := align.Word(elemCodec.HeaderSize(d), d.Align)
	out := make([]T, count)

	for i := range out {
		val, err := elemCodec.Decode(d, view, base+i*stride, origin)
		if err != nil {
			return nil, err
		}

		out[i] = val
	}

	return out, nil
}

func (m Map[K, V]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v map[K]V) (int, error) {
	keys, vals := m.entries(v)
	header := m.HeaderSize(d)
	buf.EnsureLen(offset + header)

	if d.solidity() {
		payloadStart := buf.Len()
		if payloadStart < offset+header {
			payloadStart = offset + header
		}

		if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart-origin)); err != nil {
			return 0, err
		}

		buf.EnsureLen(payloadStart + 128)

		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart, origin, uint32(payloadStart-origin)); err != nil {
			return 0, err
		}
		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart+32, origin, uint32(len(keys))); err != nil {
			return 0, err
		}

		buf.EnsureLen(payloadStart + 128)

		keysStart, _, err := encodeBlob(d, buf, m.Key, payloadStart, keys)
		if err != nil {
			return 0, err
		}
		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart+64, origin, uint32(keysStart-payloadStart)); err != nil {
			return 0, err
		}

		valuesStart, _, err := encodeBlob(d, buf, m.Value, payloadStart, vals)
		if err != nil {
			return 0, err
		}
		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart+96, origin, uint32(valuesStart-payloadStart)); err != nil {
			return 0, err
		}

		return header, nil
	}

	word := m.offsetFieldWord(d)

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(len(keys))); err != nil {
		return 0, err
	}

	keysStart, keysLen, err := encodeBlob(d, buf, m.Key, origin, keys)
	if err != nil {
		return 0, err
	}
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+word, origin, uint32(keysStart)); err != nil {
		return 0, err
	}
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+2*word, origin, uint32(keysLen)); err != nil {
		return 0, err
	}

	valuesStart, valuesLen, err := encodeBlob(d, buf, m.Value, origin, vals)
	if err != nil {
		return 0, err
	}
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+3*word, origin, uint32(valuesStart)); err != nil {
		return 0, err
	}
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+4*word, origin, uint32(valuesLen)); err != nil {
		return 0, err
	}

	return header, nil
}

func (m Map[K, V]) Decode(d Dialect, view wire.View, offset, origin int) (map[K]V, error) {
	var keys []K
	var vals []V
	var count int

	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return nil, err
		}

		head := origin + int(rel)

		c, err := (Primitive[uint32]{}).Decode(d, view, head+32, origin)
		if err != nil {
			return nil, err
		}
		count = int(c)

		keysRel, err := (Primitive[uint32]{}).Decode(d, view, head+64, origin)
		if err != nil {
			return nil, err
		}

		valuesRel, err := (Primitive[uint32]{}).Decode(d, view, head+96, origin)
		if err != nil {
			return nil, err
		}

		keys, err = decodeBlob(d, view, m.Key, head+int(keysRel), head, count)
		if err != nil {
			return nil, err
		}

		vals, err = decodeBlob(d, view, m.Value, head+int(valuesRel), head, count)
		if err != nil {
			return nil, err
		}
	} else {
		word := m.offsetFieldWord(d)

		c, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return nil, err
		}
		count = int(c)

		keysOffset, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
		if err != nil {
			return nil, err
		}

		valuesOffset, err := (Primitive[uint32]{}).Decode(d, view, offset+3*word, origin)
		if err != nil {
			return nil, err
		}

		keys, err = decodeBlob(d, view, m.Key, int(keysOffset), origin, count)
		if err != nil {
			return nil, err
		}

		vals, err = decodeBlob(d, view, m.Value, int(valuesOffset), origin, count)
		if err != nil {
			return nil, err
		}
	}

	if m.VerifyOrder {
		for i := 1; i < len(keys); i++ {
			if !m.Less(keys[i-1], keys[i]) {
				return nil, errs.NewInvalidData("Map.Decode", "keys are not in strict ascending order")
			}
		}
	}

	out := make(map[K]V, count)
	for i := range keys {
		out[keys[i]] = vals[i]
	}

	if len(out) != count {
		return nil, errs.NewInvalidData("Map.Decode", "duplicate key: decoded element count does not match declared count")
	}

	return out, nil
}

// PartialDecode reports (data_offset, element_count) of the keys blob —
// the same convention Sequence uses — since the keys blob is where a
// caller would start iterating a map without decoding both sides.
func (m Map[K, V]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return 0, 0, err
		}

		head := origin + int(rel)

		count, err := (Primitive[uint32]{}).Decode(d, view, head+32, origin)
		if err != nil {
			return 0, 0, err
		}

		keysRel, err := (Primitive[uint32]{}).Decode(d, view, head+64, origin)
		if err != nil {
			return 0, 0, err
		}

		return head + int(keysRel), int(count), nil
	}

	word := m.offsetFieldWord(d)

	count, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return 0, 0, err
	}

	keysOffset, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
	if err != nil {
		return 0, 0, err
	}

	return int(keysOffset), int(count), nil
}
