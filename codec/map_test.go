package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func uint32Less(a, b uint32) bool { return a < b }

func TestMapCompactRoundTrip(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}
	v := map[uint32]uint32{1: 5, 10: 20, 100: 60}

	got := encodeTop(t, Compact, m, v)
	out := decodeTop(t, Compact, m, got)
	require.Equal(t, v, out)
}

func TestMapSolidityRoundTrip(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}
	v := map[uint32]uint32{1: 5, 10: 20, 100: 60}

	got := encodeTop(t, Solidity, m, v)

	outerOffset := make([]byte, 32)
	outerOffset[31] = 32
	require.Equal(t, outerOffset, got[0:32])

	count := make([]byte, 32)
	count[31] = 3
	require.Equal(t, count, got[64:96])

	keysRel := make([]byte, 32)
	keysRel[31] = 128
	require.Equal(t, keysRel, got[96:128])

	valuesRel := make([]byte, 32)
	valuesRel[31] = 128 + 96
	require.Equal(t, valuesRel, got[128:160])

	out := decodeTop(t, Solidity, m, got)
	require.Equal(t, v, out)
}

func TestMapSortInvarianceAcrossInsertionOrder(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}

	a := map[uint32]uint32{1: 5, 10: 20, 100: 60}
	b := map[uint32]uint32{100: 60, 1: 5, 10: 20}

	for _, d := range []Dialect{Solidity, Compact} {
		gotA := encodeTop(t, d, m, a)
		gotB := encodeTop(t, d, m, b)
		require.Equal(t, gotA, gotB)
	}
}

func TestMapEmpty(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, m, map[uint32]uint32{})
		out := decodeTop(t, d, m, got)
		require.Empty(t, out)
	}
}

func TestMapVerifyOrderRejectsOutOfOrderKeys(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less, VerifyOrder: true}
	broken := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: func(a, b uint32) bool { return false }, VerifyOrder: true}

	v := map[uint32]uint32{1: 5, 10: 20, 100: 60}
	got := encodeTop(t, Compact, m, v)

	_, err := broken.Decode(Compact, viewOf(got), 0, 0)
	require.Error(t, err)
}

func TestMapSizeHintIsLowerBound(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}
	v := map[uint32]uint32{1: 5, 10: 20, 100: 60}

	for _, d := range []Dialect{Solidity, Compact} {
		got := encodeTop(t, d, m, v)
		require.LessOrEqual(t, m.SizeHint(d, v), len(got))
	}
}

func TestMapDecodeRejectsCountMismatch(t *testing.T) {
	m := Map[uint32, uint32]{Key: Primitive[uint32]{}, Value: Primitive[uint32]{}, Less: uint32Less}
	v := map[uint32]uint32{1: 5, 10: 20}
	got := encodeTop(t, Compact, m, v)

	// Corrupt the declared element count word (first four bytes) to claim
	// one more element than the blob actually contains distinct keys for.
	got[0] = 3

	_, err := m.Decode(Compact, viewOf(got), 0, 0)
	require.Error(t, err)
}
