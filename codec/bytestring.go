package codec

import (
	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// ByteString encodes an arbitrary-length byte sequence as a dynamic value.
//
// Compact mode's static slot is two word-aligned u32 fields,
// [data_offset | data_length], both absolute into the buffer; the payload
// is the raw bytes, unpadded, appended at the tail.
//
// Solidity mode's static slot is a single word holding the offset (relative
// to the enclosing tuple's origin) to the payload head; the payload is a
// 32-byte length word followed by the raw bytes, right-padded with zeros to
// the next 32-byte boundary.
//
// PartialDecode reports (data_offset, data_length) as the absolute position
// and length of the raw content bytes — after the Solidity length word, if
// present — never the position of the length word itself.
type ByteString struct{}

var _ Codec[[]byte] = ByteString{}

func (ByteString) offsetFieldWord(d Dialect) int {
	return align.Word(4, d.Align)
}

func (b ByteString) HeaderSize(d Dialect) int {
	if d.solidity() {
		return b.offsetFieldWord(d)
	}

	return 2 * b.offsetFieldWord(d)
}

func (ByteString) IsDynamic(Dialect) bool { return true }

func (b ByteString) SizeHint(d Dialect, v []byte) int {
	if d.solidity() {
		return b.HeaderSize(d) + 32 + align.Up(len(v), 32)
	}

	return b.HeaderSize(d) + len(v)
}

func (b ByteString) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v []byte) (int, error) {
	header := b.HeaderSize(d)
	buf.EnsureLen(offset + header)

	payloadStart := buf.Len()
	if payloadStart < offset+header {
		payloadStart = offset + header
	}

	if d.solidity() {
		if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart-origin)); err != nil {
			return 0, err
		}

		if _, err := (Primitive[uint32]{}).Encode(d, buf, payloadStart, origin, uint32(len(v))); err != nil {
			return 0, err
		}

		dataStart := payloadStart + 32
		total := align.Up(len(v), 32)
		buf.EnsureLen(dataStart + total)
		copy(buf.Slice(dataStart, dataStart+len(v)), v)

		return header, nil
	}

	word := b.offsetFieldWord(d)
	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset, origin, uint32(payloadStart)); err != nil {
		return 0, err
	}

	if _, err := (Primitive[uint32]{}).Encode(d, buf, offset+word, origin, uint32(len(v))); err != nil {
		return 0, err
	}

	buf.EnsureLen(payloadStart + len(v))
	copy(buf.Slice(payloadStart, payloadStart+len(v)), v)

	return header, nil
}

func (b ByteString) Decode(d Dialect, view wire.View, offset, origin int) ([]byte, error) {
	dataOffset, dataLength, err := b.PartialDecode(d, view, offset, origin)
	if err != nil {
		return nil, err
	}

	raw, err := view.Slice(dataOffset, dataOffset+dataLength, "ByteString.Decode")
	if err != nil {
		return nil, err
	}

	out := make([]byte, dataLength)
	copy(out, raw)

	return out, nil
}

func (b ByteString) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	if d.solidity() {
		rel, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
		if err != nil {
			return 0, 0, err
		}

		head := origin + int(rel)
		if head < 0 {
			return 0, 0, errs.NewBufferOverflow("ByteString: negative payload offset")
		}

		length, err := (Primitive[uint32]{}).Decode(d, view, head, origin)
		if err != nil {
			return 0, 0, err
		}

		return head + 32, int(length), nil
	}

	word := b.offsetFieldWord(d)

	dataOffset, err := (Primitive[uint32]{}).Decode(d, view, offset, origin)
	if err != nil {
		return 0, 0, err
	}

	dataLength, err := (Primitive[uint32]{}).Decode(d, view, offset+word, origin)
	if err != nil {
		return 0, 0, err
	}

	return int(dataOffset), int(dataLength), nil
}
