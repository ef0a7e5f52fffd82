package codec

import (
	"github.com/duocodec/duocodec/align"
	"github.com/duocodec/duocodec/wire"
)

// Optional encodes a presence flag alongside an inner value of a single
// element codec Elem. The flag occupies one aligned word ahead of Elem's own
// static slot; the absent variant still writes Elem's zero value into that
// slot (and, if Elem is dynamic, still appends its — empty — payload), so
// HeaderSize and IsDynamic never depend on presence.
type Optional[T any] struct {
	Elem Codec[T]
	Zero T
}

func (Optional[T]) flagWord(d Dialect) int {
	return align.Word(1, d.Align)
}

func (o Optional[T]) HeaderSize(d Dialect) int {
	return o.flagWord(d) + align.Word(o.Elem.HeaderSize(d), d.Align)
}

func (o Optional[T]) IsDynamic(d Dialect) bool { return o.Elem.IsDynamic(d) }

func (o Optional[T]) SizeHint(d Dialect, v *T) int {
	if v == nil {
		return o.HeaderSize(d)
	}

	size := o.flagWord(d) + o.Elem.HeaderSize(d)
	if o.Elem.IsDynamic(d) {
		size += o.Elem.SizeHint(d, *v) - o.Elem.HeaderSize(d)
	}

	return size
}

func (o Optional[T]) Encode(d Dialect, buf *wire.Buffer, offset, origin int, v *T) (int, error) {
	flagWord := o.flagWord(d)
	if _, err := (Bool{}).Encode(d, buf, offset, origin, v != nil); err != nil {
		return 0, err
	}

	innerOffset := offset + flagWord

	val := o.Zero
	if v != nil {
		val = *v
	}

	if _, err := o.Elem.Encode(d, buf, innerOffset, origin, val); err != nil {
		return 0, err
	}

	return o.HeaderSize(d), nil
}

func (o Optional[T]) Decode(d Dialect, view wire.View, offset, origin int) (*T, error) {
	present, err := (Bool{}).Decode(d, view, offset, origin)
	if err != nil {
		return nil, err
	}

	innerOffset := offset + o.flagWord(d)

	val, err := o.Elem.Decode(d, view, innerOffset, origin)
	if err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	return &val, nil
}

func (o Optional[T]) PartialDecode(d Dialect, view wire.View, offset, origin int) (int, int, error) {
	innerOffset := offset + o.flagWord(d)

	return o.Elem.PartialDecode(d, view, innerOffset, origin)
}
