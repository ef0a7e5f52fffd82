// Package duocodec provides a dual-dialect binary serialization codec.
//
// Every encodable type implements codec.Codec[T] against a codec.Dialect —
// a (byte order, alignment, mode) triple — and this package supplies the
// two canonical dialects plus the four façade operations every dialect
// exposes for any such type.
//
// # Core Features
//
//   - Byte-exact Ethereum ABI compatibility under the Solidity dialect
//   - A denser, absolute-offset Compact dialect for native use
//   - Primitives, fixed-byte values, optionals, arrays, tuples of arity
//     1..8, dynamic byte strings, dynamic sequences, maps and sets
//   - Reflection-free record derivation via codec.Field/codec.Record
//   - Cheap partial decoding of dynamic regions without materializing
//     their contents
//
// # Basic Usage
//
//	u32 := codec.Primitive[uint32]{}
//	encoded, _ := duocodec.Encode(duocodec.Compact, u32, uint32(0x12345678))
//	v, _ := duocodec.Decode(duocodec.Compact, u32, encoded)
//
// For advanced usage — records, maps, sets, custom buffer sizing — use the
// codec and wire packages directly.
package duocodec

import (
	"github.com/duocodec/duocodec/codec"
	"github.com/duocodec/duocodec/wire"
)

// Solidity is the big-endian, 32-byte-word, Ethereum ABI-compatible dialect.
var Solidity = codec.Solidity

// Compact is the little-endian, 4-byte-word, absolute-offset dialect.
var Compact = codec.Compact

// Encode writes v under c's type using dialect d and returns the encoded
// bytes. v is treated as a one-element tuple: its own static slot starts
// at buffer offset 0, which is also its origin for any dynamic reference.
func Encode[T any](d codec.Dialect, c codec.Codec[T], v T) ([]byte, error) {
	buf := wire.Get()
	defer wire.Put(buf)

	if _, err := c.Encode(d, buf, 0, 0, v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// EncodeWithConfig behaves like Encode but pre-sizes the working buffer
// from cfg.BufferHint instead of drawing a default-sized buffer from the
// shared pool, avoiding growth copies when the caller already knows
// roughly how large the encoded form will be.
func EncodeWithConfig[T any](d codec.Dialect, cfg *codec.Config, c codec.Codec[T], v T) ([]byte, error) {
	hint := cfg.BufferHint
	if hint < wire.DefaultSize {
		hint = wire.DefaultSize
	}

	buf := wire.NewBuffer(hint)

	if _, err := c.Encode(d, buf, 0, 0, v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decode reconstructs a value of type T from data under dialect d.
func Decode[T any](d codec.Dialect, c codec.Codec[T], data []byte) (T, error) {
	view := wire.NewView(data)

	return c.Decode(d, view, 0, 0)
}

// PartialDecode reports (data_offset, data_length) for c's dynamic region
// in data, without materializing its contents.
func PartialDecode[T any](d codec.Dialect, c codec.Codec[T], data []byte) (int, int, error) {
	view := wire.NewView(data)

	return c.PartialDecode(d, view, 0, 0)
}

// SizeHint returns a lower bound on len(Encode(d, c, v)).
func SizeHint[T any](d codec.Dialect, c codec.Codec[T], v T) int {
	return c.SizeHint(d, v)
}
