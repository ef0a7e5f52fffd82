package codec

import (
	"fmt"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// FixedBytes encodes a fixed-N-byte value — a byte array, a 20-byte
// address, or an arbitrary-precision fixed-width integer — through the
// narrow []byte contract the spec reserves for these externally-defined
// types (this module imports no big-integer or address package: callers
// hand in N raw bytes and get N raw bytes back).
//
// ByteLike selects the Solidity ABI padding convention: byte-like values
// (address, fixed-bytes-N) are left-aligned with right-zero-pad;
// integer-like values (fixed-width unsigned integers) are right-aligned
// with left-zero-pad. Compact mode ignores ByteLike and always places the
// value at the dialect's byte-order-appropriate end of the aligned word.
type FixedBytes struct {
	N        int
	ByteLike bool
}

var _ Codec[[]byte] = FixedBytes{}

func (f FixedBytes) HeaderSize(d Dialect) int {
	if d.solidity() {
		return 32
	}

	return align.Word(f.N, d.Align)
}

func (FixedBytes) IsDynamic(Dialect) bool { return false }

func (f FixedBytes) SizeHint(d Dialect, _ []byte) int { return f.HeaderSize(d) }

func (f FixedBytes) Encode(d Dialect, buf *wire.Buffer, offset, _ int, v []byte) (int, error) {
	if len(v) != f.N {
		return 0, errs.NewInvalidData("FixedBytes", fmt.Sprintf("expected %d bytes, got %d", f.N, len(v)))
	}

	word := f.HeaderSize(d)
	slot := buf.Slice(offset, offset+word)

	high := f.placeHigh(d)
	if high {
		align.PlaceHigh(slot, v)
	} else {
		align.PlaceLow(slot, v)
	}

	return word, nil
}

func (f FixedBytes) Decode(d Dialect, view wire.View, offset, _ int) ([]byte, error) {
	word := f.HeaderSize(d)

	slot, err := view.Slice(offset, offset+word, "FixedBytes")
	if err != nil {
		return nil, err
	}

	var windowed []byte
	if f.placeHigh(d) {
		windowed = align.High(slot, f.N)
	} else {
		windowed = align.Low(slot, f.N)
	}

	out := make([]byte, f.N)
	copy(out, windowed)

	return out, nil
}

func (f FixedBytes) PartialDecode(d Dialect, _ wire.View, offset, _ int) (int, int, error) {
	return offset, f.HeaderSize(d), nil
}

// placeHigh reports whether the value's bytes go at the high end of the
// aligned word: under Solidity, integer-like types are right-aligned
// (high); under Compact, placement follows the dialect's byte order,
// exactly like a primitive.
func (f FixedBytes) placeHigh(d Dialect) bool {
	if d.solidity() {
		return !f.ByteLike
	}

	return d.bigEndian()
}
