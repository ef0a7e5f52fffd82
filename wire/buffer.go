// Package wire provides the growable write buffer and read-only view the
// codec writes into and decodes from. The spec treats this abstraction as
// an external collaborator the codec is handed; no such library exists
// anywhere in the retrieved corpus, so this package is a minimal adaptation
// of the teacher's internal/pool.ByteBuffer, kept deliberately thin.
package wire

import (
	"sync"

	"github.com/duocodec/duocodec/errs"
)

// DefaultSize is the capacity a pooled Buffer starts with.
const (
	DefaultSize  = 1024
	MaxThreshold = 1024 * 256
)

// Buffer is a growable byte buffer. A single Buffer is owned exclusively by
// the in-flight Encode call that holds it; nothing in this package
// synchronizes concurrent access to the same Buffer.
type Buffer struct {
	b []byte
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents. The returned slice aliases
// the Buffer's storage and is invalidated by the next mutating call.
func (b *Buffer) Bytes() []byte { return b.b }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.b) }

// Reset empties the buffer while retaining its backing storage.
func (b *Buffer) Reset() { b.b = b.b[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.b)-len(b.b) >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.b) > 4*DefaultSize {
		growBy = cap(b.b) / 4
	}

	if growBy < n {
		growBy = n
	}

	grown := make([]byte, len(b.b), len(b.b)+growBy)
	copy(grown, b.b)
	b.b = grown
}

// EnsureLen grows the buffer, zero-filling as needed, so that Len() >= n.
// It never shrinks the buffer.
func (b *Buffer) EnsureLen(n int) {
	if len(b.b) >= n {
		return
	}

	b.Grow(n - len(b.b))
	start := len(b.b)
	b.b = b.b[:n]

	for i := start; i < n; i++ {
		b.b[i] = 0
	}
}

// Slice returns a mutable window [start:end) into the buffer, growing the
// buffer first if necessary. Panics if start > end; the grow step makes
// end > cap impossible.
func (b *Buffer) Slice(start, end int) []byte {
	if end < start {
		panic("wire: Slice: end before start")
	}

	b.EnsureLen(end)

	return b.b[start:end]
}

// Append writes data at the current tail of the buffer and returns the
// offset it was written at.
func (b *Buffer) Append(data []byte) int {
	offset := len(b.b)
	b.Grow(len(data))
	b.b = append(b.b, data...)

	return offset
}

// AppendZeros appends n zero bytes at the tail and returns the offset they
// start at.
func (b *Buffer) AppendZeros(n int) int {
	offset := len(b.b)
	b.EnsureLen(offset + n)

	return offset
}

var pool = sync.Pool{
	New: func() any { return NewBuffer(DefaultSize) },
}

// Get retrieves a reset Buffer from the shared pool.
func Get() *Buffer {
	buf, _ := pool.Get().(*Buffer)

	return buf
}

// Put returns buf to the shared pool. Buffers larger than MaxThreshold are
// dropped instead of pooled, to avoid pinning oversized allocations.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.b) > MaxThreshold {
		return
	}

	buf.Reset()
	pool.Put(buf)
}

// View is an immutable, borrowed read-only window over decoded bytes. It
// never copies or mutates the underlying slice; decoders slice it further
// as they descend into dynamic regions.
type View struct {
	b []byte
}

// NewView wraps data as a View. The caller retains ownership of data; the
// View must not outlive mutation of the backing array.
func NewView(data []byte) View { return View{b: data} }

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.b) }

// Remaining returns the number of bytes available at or after offset. A
// negative result is clamped to 0.
func (v View) Remaining(offset int) int {
	if offset >= len(v.b) {
		return 0
	}

	return len(v.b) - offset
}

// Slice returns the window [start:end) of the view, failing with a
// BufferTooSmallError if the view does not extend that far.
func (v View) Slice(start, end int, location string) ([]byte, error) {
	if start < 0 || end < start {
		return nil, errs.NewInvalidData(location, "negative or inverted slice bounds")
	}

	if end > len(v.b) {
		return nil, errs.NewDecodeBufferTooSmall(end, len(v.b), location)
	}

	return v.b[start:end], nil
}

// Bytes returns the full underlying slice. The caller must not modify it.
func (v View) Bytes() []byte { return v.b }
