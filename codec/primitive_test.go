package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocodec/duocodec/wire"
)

func encodeTop[T any](t *testing.T, d Dialect, c Codec[T], v T) []byte {
	t.Helper()

	buf := wire.NewBuffer(64)
	_, err := c.Encode(d, buf, 0, 0, v)
	require.NoError(t, err)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func decodeTop[T any](t *testing.T, d Dialect, c Codec[T], data []byte) T {
	t.Helper()

	view := wire.NewView(data)
	v, err := c.Decode(d, view, 0, 0)
	require.NoError(t, err)

	return v
}

func TestPrimitiveCompactU32Vector(t *testing.T) {
	got := encodeTop(t, Compact, Primitive[uint32]{}, uint32(0x12345678))
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, got)

	v := decodeTop(t, Compact, Primitive[uint32]{}, got)
	require.Equal(t, uint32(0x12345678), v)
}

func TestPrimitiveSoliditySolidityU32Vector(t *testing.T) {
	got := encodeTop(t, Solidity, Primitive[uint32]{}, uint32(0x12345678))
	require.Len(t, got, 32)

	want := make([]byte, 32)
	copy(want[28:], []byte{0x12, 0x34, 0x56, 0x78})
	require.Equal(t, want, got)

	v := decodeTop(t, Solidity, Primitive[uint32]{}, got)
	require.Equal(t, uint32(0x12345678), v)
}

func TestPrimitiveRoundTrip(t *testing.T) {
	for _, d := range []Dialect{Solidity, Compact} {
		require.Equal(t, uint8(7), decodeTop(t, d, Primitive[uint8]{}, encodeTop(t, d, Primitive[uint8]{}, uint8(7))))
		require.Equal(t, uint16(0xBEEF), decodeTop(t, d, Primitive[uint16]{}, encodeTop(t, d, Primitive[uint16]{}, uint16(0xBEEF))))
		require.Equal(t, uint64(1)<<40, decodeTop(t, d, Primitive[uint64]{}, encodeTop(t, d, Primitive[uint64]{}, uint64(1)<<40)))
		require.Equal(t, int32(-5), decodeTop(t, d, Primitive[int32]{}, encodeTop(t, d, Primitive[int32]{}, int32(-5))))
	}
}

func TestCompactSignedZeroExtends(t *testing.T) {
	got := encodeTop(t, Compact, Primitive[int16]{}, int16(-1))
	require.Equal(t, []byte{0xff, 0xff, 0x00, 0x00}, got)

	v := decodeTop(t, Compact, Primitive[int16]{}, got)
	require.Equal(t, int16(-1), v)
}

func TestBoolEncodeDecode(t *testing.T) {
	for _, d := range []Dialect{Solidity, Compact} {
		require.True(t, decodeTop(t, d, Bool{}, encodeTop(t, d, Bool{}, true)))
		require.False(t, decodeTop(t, d, Bool{}, encodeTop(t, d, Bool{}, false)))
	}
}

func TestHeaderSizeIndependentOfValue(t *testing.T) {
	p := Primitive[uint32]{}
	require.Equal(t, p.HeaderSize(Compact), p.HeaderSize(Compact))
	require.Equal(t, 4, p.HeaderSize(Compact))
	require.Equal(t, 4, p.HeaderSize(Solidity))
}

func TestSizeHintLowerBound(t *testing.T) {
	for _, d := range []Dialect{Solidity, Compact} {
		p := Primitive[uint32]{}
		v := uint32(42)
		require.LessOrEqual(t, p.SizeHint(d, v), len(encodeTop(t, d, p, v)))
	}
}
