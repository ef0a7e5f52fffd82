package duocodec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/duocodec/duocodec"
	"github.com/duocodec/duocodec/codec"
)

func TestEncodeDecodePrimitive(t *testing.T) {
	u32 := codec.Primitive[uint32]{}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, u32, uint32(0x12345678))
		require.NoError(t, err)

		v, err := duocodec.Decode(d, u32, encoded)
		require.NoError(t, err)
		require.Equal(t, uint32(0x12345678), v)
	}
}

func TestEncodeDecodeByteString(t *testing.T) {
	bs := codec.ByteString{}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, bs, []byte("hello world"))
		require.NoError(t, err)

		v, err := duocodec.Decode(d, bs, encoded)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), v)
	}
}

func TestEncodeDecodeSequence(t *testing.T) {
	seq := codec.Sequence[uint32]{Elem: codec.Primitive[uint32]{}}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, seq, []uint32{1, 2, 3, 4, 5})
		require.NoError(t, err)

		v, err := duocodec.Decode(d, seq, encoded)
		require.NoError(t, err)
		require.Equal(t, []uint32{1, 2, 3, 4, 5}, v)
	}
}

func TestEncodeDecodeTuple(t *testing.T) {
	tup := codec.Tuple2[uint32, []byte]{F0: codec.Primitive[uint32]{}, F1: codec.ByteString{}}
	v := codec.Tuple2Val[uint32, []byte]{V0: 42, V1: []byte("payload")}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, tup, v)
		require.NoError(t, err)

		out, err := duocodec.Decode(d, tup, encoded)
		require.NoError(t, err)
		require.Equal(t, v, out)
	}
}

func TestPartialDecodeByteString(t *testing.T) {
	bs := codec.ByteString{}

	encoded, err := duocodec.Encode(duocodec.Compact, bs, []byte("abc"))
	require.NoError(t, err)

	dataOffset, dataLength, err := duocodec.PartialDecode(duocodec.Compact, bs, encoded)
	require.NoError(t, err)
	require.Equal(t, 3, dataLength)
	require.GreaterOrEqual(t, dataOffset, 0)
}

func TestSizeHintIsLowerBound(t *testing.T) {
	u32 := codec.Primitive[uint32]{}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, u32, uint32(7))
		require.NoError(t, err)

		hint := duocodec.SizeHint(d, u32, uint32(7))
		require.LessOrEqual(t, hint, len(encoded))
	}
}

// TestEncodeDecodeNestedSequenceStructuralDiff round-trips a sequence of
// byte strings — a slice-of-slice aggregate where require.Equal's byte-wise
// comparison is serviceable but a structural diff reads better on failure,
// the same role go-cmp plays in the teacher's own aggregate comparisons.
func TestEncodeDecodeNestedSequenceStructuralDiff(t *testing.T) {
	seq := codec.Sequence[[]byte]{Elem: codec.ByteString{}}
	v := [][]byte{[]byte("alpha"), []byte("bravo"), []byte("charlie")}

	for _, d := range []codec.Dialect{duocodec.Solidity, duocodec.Compact} {
		encoded, err := duocodec.Encode(d, seq, v)
		require.NoError(t, err)

		out, err := duocodec.Decode(d, seq, encoded)
		require.NoError(t, err)

		if diff := cmp.Diff(v, out); diff != "" {
			t.Fatalf("decoded sequence mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeWithConfigBufferHint(t *testing.T) {
	u32 := codec.Primitive[uint32]{}

	cfg, err := codec.NewConfig(codec.WithBufferHint(128))
	require.NoError(t, err)

	encoded, err := duocodec.EncodeWithConfig(duocodec.Compact, cfg, u32, uint32(0xAABBCCDD))
	require.NoError(t, err)

	v, err := duocodec.Decode(duocodec.Compact, u32, encoded)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAABBCCDD), v)
}
