// Package codec implements the type-driven encoders described by the
// codec's two wire dialects: a byte-exact Ethereum ABI dialect ("Solidity")
// and a denser native layout ("Compact"). Every encoder in this package is
// parameterized by a Dialect value rather than a compile-time type
// parameter — Go has no value-level generics, so the spec's const-generic
// Encoder<B, ALIGN, SOL_MODE> triple becomes a runtime struct passed
// explicitly to Encode/Decode/PartialDecode, with exactly two package vars
// (Solidity, Compact) most callers ever construct.
package codec

import (
	"github.com/duocodec/duocodec/endian"
)

// Mode selects the dialect's dynamic-region layout convention.
type Mode uint8

const (
	// ModeSolidity lays out dynamic references as offsets relative to the
	// enclosing tuple's origin, Ethereum ABI style.
	ModeSolidity Mode = iota
	// ModeCompact lays out dynamic references as absolute buffer offsets
	// with an explicit byte length alongside them.
	ModeCompact
)

func (m Mode) String() string {
	switch m {
	case ModeSolidity:
		return "Solidity"
	case ModeCompact:
		return "Compact"
	default:
		return "Unknown"
	}
}

// Dialect is the (byte order, alignment, mode) triple every encoder in this
// package is parameterized by.
type Dialect struct {
	Engine endian.EndianEngine
	Align  int
	Mode   Mode
}

// Solidity fixes the triple to (big-endian, 32-byte word, ModeSolidity) —
// byte-exact compatibility with the Ethereum contract ABI.
var Solidity = Dialect{Engine: endian.GetBigEndianEngine(), Align: 32, Mode: ModeSolidity}

// Compact fixes the triple to (little-endian, 4-byte word, ModeCompact) —
// the denser native layout.
var Compact = Dialect{Engine: endian.GetLittleEndianEngine(), Align: 4, Mode: ModeCompact}

// bigEndian reports whether d's engine places multi-byte values most
// significant byte first. The codec only ever constructs the two engine
// values returned by endian.GetBigEndianEngine/GetLittleEndianEngine, so
// identity comparison is sufficient (mirrors endian.CompareNativeEndian's
// own use of == on EndianEngine).
func (d Dialect) bigEndian() bool {
	return d.Engine == endian.GetBigEndianEngine()
}

// solidity reports whether d uses the Solidity dynamic-region convention.
func (d Dialect) solidity() bool {
	return d.Mode == ModeSolidity
}
