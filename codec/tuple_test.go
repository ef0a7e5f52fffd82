package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTuple2AllStaticIsInline(t *testing.T) {
	tup := Tuple2[uint32, uint16]{F0: Primitive[uint32]{}, F1: Primitive[uint16]{}}
	require.False(t, tup.IsDynamic(Solidity))
	require.False(t, tup.IsDynamic(Compact))

	v := Tuple2Val[uint32, uint16]{V0: 7, V1: 9}

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, tup, v)
		require.Equal(t, tup.HeaderSize(d), len(got))

		out := decodeTop(t, d, tup, got)
		require.Equal(t, v, out)
	}
}

func TestTuple3WithDynamicFieldWrapsUnderSolidityOnly(t *testing.T) {
	tup := Tuple3[uint32, []byte, bool]{
		F0: Primitive[uint32]{},
		F1: ByteString{},
		F2: Bool{},
	}
	require.True(t, tup.IsDynamic(Solidity))
	require.False(t, tup.IsDynamic(Compact))

	v := Tuple3Val[uint32, []byte, bool]{V0: 42, V1: []byte("payload"), V2: true}

	gotSolidity := encodeTop(t, Solidity, tup, v)
	require.Equal(t, 32, tup.HeaderSize(Solidity))
	outSolidity := decodeTop(t, Solidity, tup, gotSolidity)
	require.Equal(t, v, outSolidity)

	gotCompact := encodeTop(t, Compact, tup, v)
	require.Equal(t, tup.HeaderSize(Compact)+len(v.V1), len(gotCompact))
	outCompact := decodeTop(t, Compact, tup, gotCompact)
	require.Equal(t, v, outCompact)
}

func TestTuple4RoundTrip(t *testing.T) {
	tup := Tuple4[uint8, uint16, uint32, uint64]{
		F0: Primitive[uint8]{},
		F1: Primitive[uint16]{},
		F2: Primitive[uint32]{},
		F3: Primitive[uint64]{},
	}
	v := Tuple4Val[uint8, uint16, uint32, uint64]{V0: 1, V1: 2, V2: 3, V3: 4}

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, tup, v)
		out := decodeTop(t, d, tup, got)
		require.Equal(t, v, out)
	}
}

func TestTuple1RoundTrip(t *testing.T) {
	tup := Tuple1[uint32]{F0: Primitive[uint32]{}}
	v := uint32(123)

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, tup, v)
		out := decodeTop(t, d, tup, got)
		require.Equal(t, v, out)
	}
}

func TestTuple8RoundTrip(t *testing.T) {
	tup := Tuple8[uint8, uint8, uint8, uint8, uint8, uint8, uint8, []byte]{
		F0: Primitive[uint8]{}, F1: Primitive[uint8]{}, F2: Primitive[uint8]{}, F3: Primitive[uint8]{},
		F4: Primitive[uint8]{}, F5: Primitive[uint8]{}, F6: Primitive[uint8]{}, F7: ByteString{},
	}
	v := Tuple8Val[uint8, uint8, uint8, uint8, uint8, uint8, uint8, []byte]{
		V0: 1, V1: 2, V2: 3, V3: 4, V4: 5, V5: 6, V6: 7, V7: []byte("tail"),
	}

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, tup, v)
		out := decodeTop(t, d, tup, got)
		require.Equal(t, v, out)
	}
}

func TestTuplePartialDecode(t *testing.T) {
	tup := Tuple2[uint32, uint16]{F0: Primitive[uint32]{}, F1: Primitive[uint16]{}}
	v := Tuple2Val[uint32, uint16]{V0: 1, V1: 2}

	data := encodeTop(t, Compact, tup, v)
	view := viewOf(data)

	dataOffset, length, err := tup.PartialDecode(Compact, view, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, dataOffset)
	require.Equal(t, tup.inlineSize(Compact), length)
}
