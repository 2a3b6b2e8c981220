// Package vint implements the EBML variable-length integer (VINT)
// codec: the width-prefixed unsigned integer encoding used for every
// element ID and element size on the wire, including the reserved
// "unknown size" sentinel.
//
// A VINT's first octet carries a single leading one-bit whose position
// (counting from the most significant bit) gives the total width in
// octets, 1 through 8. The remaining bits of the first octet, followed
// by the full bits of any subsequent octets, hold the value big-endian.
package vint

import "fmt"

// MaxWidth is the largest VINT width this codec accepts, per RFC 8794.
const MaxWidth = 8

// VInt is a decoded variable-length integer: an unsigned value together
// with the flag that distinguishes the reserved "unknown size" sentinel
// from an ordinary value that happens to be all-ones for its width.
type VInt struct {
	Value     uint64
	IsUnknown bool
}

// New returns the VInt wrapping v.
func New(v uint64) VInt {
	return VInt{Value: v}
}

// Unknown returns the VInt sentinel meaning "size unknown", used only
// by Segment and Cluster size fields in a streaming context.
func Unknown() VInt {
	return VInt{Value: 127, IsUnknown: true}
}

// Equal reports whether two VInts carry the same value and unknown-ness.
// The unknown sentinel is never equal to New(127) even though both
// carry Value == 127 internally.
func (v VInt) Equal(other VInt) bool {
	return v.Value == other.Value && v.IsUnknown == other.IsUnknown
}

// leadMask lists, for width N (1-indexed), the leading-one bit mask of
// the first octet.
var leadMask = [MaxWidth + 1]byte{
	0, 0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01,
}

// EncodeSize returns the minimal number of octets required to encode
// the unsigned value v as a VINT.
func EncodeSize(v uint64) int {
	for width := 1; width <= MaxWidth; width++ {
		// Payload bits available at this width: 7*width, minus the
		// all-ones sentinel value reserved for "unknown".
		maxVal := uint64(1)<<(7*width) - 2
		if v <= maxVal {
			return width
		}
	}
	return MaxWidth
}

// Decode reads a VInt from the front of buf, returning the value and
// the number of octets consumed. Decode never mutates buf.
//
// The single octet 0xFF decodes to the unknown sentinel; an all-ones
// payload at any wider width decodes as an ordinary value. A first
// octet of 0x00 is InvalidVInt; a buffer shorter than the declared
// width is OutOfBounds.
func Decode(buf []byte) (VInt, int, error) {
	return decode(buf, false)
}

// DecodeID reads a VInt from the front of buf exactly like Decode, but
// keeps the leading one-bit in Value: element IDs are compared in
// their encoded form, marker included.
func DecodeID(buf []byte) (VInt, int, error) {
	return decode(buf, true)
}

func decode(buf []byte, keepMarker bool) (VInt, int, error) {
	if len(buf) == 0 {
		return VInt{}, 0, ErrOutOfBounds
	}
	first := buf[0]
	if first == 0 {
		return VInt{}, 0, ErrInvalidVInt
	}

	width := 0
	for w := 1; w <= MaxWidth; w++ {
		if first&leadMask[w] != 0 {
			width = w
			break
		}
	}
	if width == 0 {
		return VInt{}, 0, ErrInvalidVInt
	}
	if len(buf) < width {
		return VInt{}, 0, ErrOutOfBounds
	}

	// bare accumulates the value with the leading marker bit stripped
	// from the first octet; word additionally retains that marker bit,
	// needed when the caller wants the ID's encoded identity preserved.
	bare := uint64(first &^ leadMask[width])
	word := uint64(first)
	for i := 1; i < width; i++ {
		bare = bare<<8 | uint64(buf[i])
		word = word<<8 | uint64(buf[i])
	}

	// Only the single-byte form 0xFF denotes "unknown size". A wider
	// VINT whose payload happens to be all-ones (e.g. the width-8
	// maximum 0x01 FF×7) is an ordinary, if extreme, value: nothing
	// but width 1 collides with the dedicated sentinel byte.
	if width == 1 && bare == 127 {
		return VInt{Value: 127, IsUnknown: true}, width, nil
	}
	if keepMarker {
		return VInt{Value: word}, width, nil
	}
	return VInt{Value: bare}, width, nil
}

// Encode appends v to buf using the minimal legal width, returning the
// extended slice. The value 127 widens to the two-octet form 0x40 0x7F
// since its one-octet form 0x7F would collide with the width-1 unknown
// sentinel.
func Encode(buf []byte, v uint64) []byte {
	return encodeWidth(buf, v, EncodeSize(v))
}

// EncodeID appends the already-assembled encoded word enc (marker bit
// included) to buf verbatim; element IDs are stored pre-encoded and
// never re-derived from a bare value.
func EncodeID(buf []byte, enc VInt, width int) []byte {
	return encodeWidth(buf, enc.Value, width)
}

// EncodeUnknown appends the unknown-size sentinel (0xFF, one octet) to buf.
func EncodeUnknown(buf []byte) []byte {
	return append(buf, 0xFF)
}

func encodeWidth(buf []byte, v uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	out[0] |= leadMask[width]
	return append(buf, out...)
}

// FromEncoded reconstructs a VInt from an already-assembled wire word
// (the bytes as they would appear on the wire, packed into a uint64,
// marker bit included) and its width.
func FromEncoded(word uint64, width int) VInt {
	if width == 1 && word == 0xFF {
		return VInt{Value: 127, IsUnknown: true}
	}
	return VInt{Value: word &^ (uint64(leadMask[width]) << (8 * uint(width-1)))}
}

// AsEncoded returns the wire word for v at the given width: the inverse
// of FromEncoded. Width must be at least EncodeSize(v.Value).
func AsEncoded(v VInt, width int) uint64 {
	if v.IsUnknown {
		return 0xFF
	}
	return uint64(leadMask[width])<<(8*uint(width-1)) | v.Value
}

// ErrInvalidVInt and ErrOutOfBounds are the two failure modes a VINT
// read can produce; they are wrapped with positional context by callers
// higher up the stack (see ebml.OverDecodeError / ebml.UnderDecodeError).
var (
	ErrInvalidVInt = fmt.Errorf("vint: invalid first octet (no leading one-bit)")
	ErrOutOfBounds = fmt.Errorf("vint: read past end of buffer")
)
