package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteStringSolidityHelloWorldVector(t *testing.T) {
	got := encodeTop(t, Solidity, ByteString{}, []byte("hello world"))
	require.Len(t, got, 96)

	wantOffset := make([]byte, 32)
	wantOffset[31] = 32
	require.Equal(t, wantOffset, got[0:32])

	wantLen := make([]byte, 32)
	wantLen[31] = 11
	require.Equal(t, wantLen, got[32:64])

	wantContent := make([]byte, 32)
	copy(wantContent, "hello world")
	require.Equal(t, wantContent, got[64:96])

	v := decodeTop(t, Solidity, ByteString{}, got)
	require.Equal(t, []byte("hello world"), v)
}

func TestByteStringCompactRoundTrip(t *testing.T) {
	got := encodeTop(t, Compact, ByteString{}, []byte("hello world"))

	v := decodeTop(t, Compact, ByteString{}, got)
	require.Equal(t, []byte("hello world"), v)
}

func TestByteStringEmpty(t *testing.T) {
	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, ByteString{}, []byte{})
		v := decodeTop(t, d, ByteString{}, got)
		require.Empty(t, v)
	}
}

func TestByteStringPartialDecode(t *testing.T) {
	data := encodeTop(t, Compact, ByteString{}, []byte("abc"))
	view := viewOf(data)

	dataOffset, dataLength, err := ByteString{}.PartialDecode(Compact, view, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, dataLength)

	raw, err := view.Slice(dataOffset, dataOffset+dataLength, "test")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), raw)
}
