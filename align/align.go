// Package align implements the alignment-sensitive byte placement the
// codec's higher layers build on: computing the aligned word for a value of
// a given size, and placing/extracting a value's bytes at one end of that
// word.
//
// Placement is expressed as "high" (the value's bytes occupy the end of the
// word with the largest index) or "low" (the value's bytes occupy the
// start), rather than in terms of byte order directly. Primitive and
// Compact fixed-width encoders choose high/low from the dialect's byte
// order; Solidity ABI fixed-width encoders choose it from whether the type
// is "integer-like" (right-aligned) or "byte-like" (left-aligned),
// independent of byte order. Keeping that decision in package codec and
// this package purely mechanical is what lets one field of code serve both
// conventions.
package align

// Up rounds n up to the next multiple of a, where a is a power of two.
//
//	Up(n, a) = (n + a - 1) &^ (a - 1)
func Up(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}

// Word returns the aligned word size, in bytes, for a value of size
// valueSize under alignment a: Up(max(a, valueSize), a).
func Word(valueSize, a int) int {
	w := valueSize
	if a > w {
		w = a
	}

	return Up(w, a)
}

// PlaceHigh zero-fills slot and copies value into its high end
// (slot[len(slot)-len(value):]). Panics if value is longer than slot.
func PlaceHigh(slot, value []byte) {
	if len(value) > len(slot) {
		panic("align: PlaceHigh: value longer than slot")
	}

	clear(slot)
	copy(slot[len(slot)-len(value):], value)
}

// PlaceLow zero-fills slot and copies value into its low end
// (slot[:len(value)]). Panics if value is longer than slot.
func PlaceLow(slot, value []byte) {
	if len(value) > len(slot) {
		panic("align: PlaceLow: value longer than slot")
	}

	clear(slot)
	copy(slot[:len(value)], value)
}

// High returns the valueSize-wide window at the high end of slot.
func High(slot []byte, valueSize int) []byte {
	return slot[len(slot)-valueSize:]
}

// Low returns the valueSize-wide window at the low end of slot.
func Low(slot []byte, valueSize int) []byte {
	return slot[:valueSize]
}
