package codec

import "github.com/duocodec/duocodec/wire"

// Codec is the capability every encodable type in this package implements:
// given a Dialect, it reports its fixed footprint and dynamism, and can
// encode/decode/partially-decode a value of type T at a position in a
// buffer. It is the Go rendering of the spec's "Encoder" trait — generic
// over T, parameterized by a runtime Dialect rather than a compile-time
// type parameter.
//
// offset is the absolute byte position of the value's static slot. origin
// is the absolute byte position of the enclosing tuple's static region —
// under Solidity mode, dynamic references are written relative to origin;
// under Compact mode, origin is ignored and references are absolute. A
// top-level call treats the value as a one-element tuple whose origin is
// its own offset.
type Codec[T any] interface {
	// HeaderSize returns the constant number of bytes the type occupies at
	// its static slot under d. Independent of the value.
	HeaderSize(d Dialect) int

	// IsDynamic reports whether the type appends payload to the buffer's
	// dynamic region under d.
	IsDynamic(d Dialect) bool

	// Encode writes v's static slot at offset (and, if dynamic, appends its
	// payload to buf's tail), returning the number of static-slot bytes
	// written: HeaderSize(d) rounded up to d's alignment word.
	Encode(d Dialect, buf *wire.Buffer, offset, origin int, v T) (int, error)

	// Decode reconstructs a value of type T from its static slot at offset.
	Decode(d Dialect, view wire.View, offset, origin int) (T, error)

	// PartialDecode reports the dynamic region's (dataOffset, dataLength)
	// for a dynamic type without materializing its contents. dataLength's
	// meaning is type-specific: byte length for byte strings, element
	// count for sequences, maps and sets (see Sequence.PartialDecode).
	PartialDecode(d Dialect, view wire.View, offset, origin int) (dataOffset, dataLength int, err error)

	// SizeHint returns a lower bound on len(Encode(v)) — never a
	// value-dependent "exact size" contract; callers use it to pre-size
	// buffers.
	SizeHint(d Dialect, v T) int
}
