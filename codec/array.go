package codec

import (
	"fmt"

	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/errs"
	"github.com/duocodec/duocodec/wire"
)

// Array encodes a fixed-length run of N elements of a single element codec
// Elem, inline in the static region — never dynamic, regardless of whether
// Elem itself is dynamic, since N is fixed at construction and every
// element's own dynamic tail (if any) is simply appended as the elements
// are encoded in order.
type Array[T any] struct {
	Elem Codec[T]
	N    int
}

func (a Array[T]) elemStride(d Dialect) int {
	return align.Word(a.Elem.HeaderSize(d), d.Align)
}

func (a Array[T]) HeaderSize(d Dialect) int {
	return a.N * a.elemStride(d)
}

func (Array[T]) IsDynamic(Dialect) bool { return false }

func (a Array[T]) SizeHint(d Dialect, v []T) int {
	size := a.HeaderSize(d)

	if a.Elem.IsDynamic(d) {
		stride := a.elemStride(d)
		for _, e := range v {
			size += a.Elem.SizeHint(d, e) - stride
		}
	}

	return size
}

func (a Array[T]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v []T) (int, error) {
	if len(v) != a.N {
		return 0, errs.NewInvalidData("Array", fmt.Sprintf("expected %d elements, got %d", a.N, len(v)))
	}

	header := a.HeaderSize(d)
	buf.EnsureLen(offset + header)

	stride := a.elemStride(d)

	for i, e := range v {
		elemOffset := offset + i*stride
		if _, err := a.Elem.Encode(d, buf, elemOffset, offset, e); err != nil {
			return 0, err
		}
	}

	return header, nil
}

func (a Array[T]) Decode(d Dialect, view wire.View, offset, _ int) ([]T, error) {
	stride := a.elemStride(d)
	out := make([]T, a.N)

	for i := range out {
		elemOffset := offset + i*stride

		val, err := a.Elem.Decode(d, view, elemOffset, offset)
		if err != nil {
			return nil, err
		}

		out[i] = val
	}

	return out, nil
}

func (a Array[T]) PartialDecode(d Dialect, _ wire.View, offset, _ int) (int, int, error) {
	return offset, a.HeaderSize(d), nil
}
