package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferEnsureLenZeroFills(t *testing.T) {
	buf := NewBuffer(4)
	buf.Append([]byte{1, 2, 3})
	buf.EnsureLen(8)

	require.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0}, buf.Bytes())
}

func TestBufferEnsureLenNeverShrinks(t *testing.T) {
	buf := NewBuffer(4)
	buf.EnsureLen(8)
	buf.EnsureLen(2)

	require.Equal(t, 8, buf.Len())
}

func TestBufferSliceGrows(t *testing.T) {
	buf := NewBuffer(0)
	slot := buf.Slice(4, 8)
	require.Len(t, slot, 4)
	require.Equal(t, 8, buf.Len())
}

func TestBufferAppendReturnsOffset(t *testing.T) {
	buf := NewBuffer(0)
	buf.Append([]byte{1, 2})
	offset := buf.Append([]byte{3, 4})

	require.Equal(t, 2, offset)
	require.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
}

func TestPutDropsOversizedBuffers(t *testing.T) {
	buf := NewBuffer(MaxThreshold + 1)
	buf.EnsureLen(MaxThreshold + 1)
	Put(buf)

	got := Get()
	require.NotSame(t, buf, got)
}

func TestViewSliceBounds(t *testing.T) {
	v := NewView([]byte{1, 2, 3, 4})

	got, err := v.Slice(1, 3, "test")
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, got)

	_, err = v.Slice(1, 10, "test")
	require.Error(t, err)

	_, err = v.Slice(-1, 2, "test")
	require.Error(t, err)
}
