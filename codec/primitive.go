package codec

import (
	"unsafe"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/wire"
)

// Integer is the set of fixed-width integer kinds the codec encodes
// directly. Signed 8-bit integers are deliberately absent — the spec only
// names u8/u16/u32/u64/i16/i32/i64/bool.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int16 | ~int32 | ~int64
}

// Primitive encodes a single fixed-width integer. HEADER_SIZE is
// size_of(T); encode/decode place the value's bytes at the aligned word's
// high end under big-endian and low end under little-endian, zero-filling
// the rest (zero-extension, never sign-extension — see SPEC_FULL.md §7.3).
type Primitive[T Integer] struct{}

var (
	_ Codec[uint8]  = Primitive[uint8]{}
	_ Codec[uint16] = Primitive[uint16]{}
	_ Codec[uint32] = Primitive[uint32]{}
	_ Codec[uint64] = Primitive[uint64]{}
	_ Codec[int16]  = Primitive[int16]{}
	_ Codec[int32]  = Primitive[int32]{}
	_ Codec[int64]  = Primitive[int64]{}
)

func (Primitive[T]) HeaderSize(Dialect) int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

func (Primitive[T]) IsDynamic(Dialect) bool { return false }

func (p Primitive[T]) SizeHint(d Dialect, _ T) int { return p.HeaderSize(d) }

func (p Primitive[T]) Encode(d Dialect, buf *wire.Buffer, offset, _ int, v T) (int, error) {
	size := p.HeaderSize(d)
	word := align.Word(size, d.Align)
	slot := buf.Slice(offset, offset+word)

	raw := make([]byte, size)
	putBits(d, raw, toUint64(v))

	if d.bigEndian() {
		align.PlaceHigh(slot, raw)
	} else {
		align.PlaceLow(slot, raw)
	}

	return word, nil
}

func (p Primitive[T]) Decode(d Dialect, view wire.View, offset, _ int) (T, error) {
	var zero T

	size := p.HeaderSize(d)
	word := align.Word(size, d.Align)

	slot, err := view.Slice(offset, offset+word, "primitive")
	if err != nil {
		return zero, err
	}

	var raw []byte
	if d.bigEndian() {
		raw = align.High(slot, size)
	} else {
		raw = align.Low(slot, size)
	}

	return fromUint64[T](getBits(d, raw, size)), nil
}

func (p Primitive[T]) PartialDecode(d Dialect, _ wire.View, offset, _ int) (int, int, error) {
	return offset, p.HeaderSize(d), nil
}

// Bool encodes a boolean as 0 or 1 via the u8 path, per spec §4.2.
type Bool struct{}

var _ Codec[bool] = Bool{}

func (Bool) HeaderSize(Dialect) int { return 1 }
func (Bool) IsDynamic(Dialect) bool { return false }
func (Bool) SizeHint(Dialect, bool) int { return 1 }

func (Bool) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v bool) (int, error) {
	var u uint8
	if v {
		u = 1
	}

	return Primitive[uint8]{}.Encode(d, buf, offset, origin, u)
}

func (Bool) Decode(d Dialect, view wire.View, offset, origin int) (bool, error) {
	u, err := Primitive[uint8]{}.Decode(d, view, offset, origin)
	if err != nil {
		return false, err
	}

	return u != 0, nil
}

func (Bool) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	return Primitive[uint8]{}.PartialDecode(d, view, offset, origin)
}

// toUint64 widens any supported integer kind to its zero-extended bit
// pattern in a uint64, preserving the underlying bytes rather than the
// signed numeric value (a negative int16 becomes its two's-complement
// uint16 pattern zero-extended, not a sign-extended uint64).
func toUint64[T Integer](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	default:
		panic("codec: unsupported integer type")
	}
}

func fromUint64[T Integer](bits uint64) T {
	var zero T

	switch any(zero).(type) {
	case uint8:
		return T(uint8(bits))
	case uint16:
		return T(uint16(bits))
	case uint32:
		return T(uint32(bits))
	case uint64:
		return T(bits)
	case int16:
		return T(int16(uint16(bits)))
	case int32:
		return T(int32(uint32(bits)))
	case int64:
		return T(int64(bits))
	default:
		panic("codec: unsupported integer type")
	}
}

// putBits writes the low len(raw) bytes of bits into raw using d's engine,
// for the widths the codec supports (1, 2, 4, 8).
func putBits(d Dialect, raw []byte, bits uint64) {
	switch len(raw) {
	case 1:
		raw[0] = byte(bits)
	case 2:
		d.Engine.PutUint16(raw, uint16(bits))
	case 4:
		d.Engine.PutUint32(raw, uint32(bits))
	case 8:
		d.Engine.PutUint64(raw, bits)
	default:
		panic("codec: unsupported width")
	}
}

func getBits(d Dialect, raw []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(raw[0])
	case 2:
		return uint64(d.Engine.Uint16(raw))
	case 4:
		return uint64(d.Engine.Uint32(raw))
	case 8:
		return d.Engine.Uint64(raw)
	default:
		panic("codec: unsupported width")
	}
}
