package ebml

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"
)

// DecodeUint decodes an EBML unsigned integer body: 0 to 8 octets,
// right-aligned big-endian, with a 0-length body meaning the value 0.
func DecodeUint(body []byte) uint64 {
	var v uint64
	for _, b := range body {
		v = v<<8 | uint64(b)
	}
	return v
}

// EncodeUint appends the minimal big-endian encoding of v, trimming
// leading zero octets; v == 0 always writes a single 0x00 octet.
func EncodeUint(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	i := 0
	for i < 7 && tmp[i] == 0x00 {
		i++
	}
	return append([]byte(nil), tmp[i:]...)
}

// DecodeInt decodes an EBML signed integer body: 0 to 8 octets,
// sign-extended from the MSB of the first octet. A 0-length body is
// the value 0.
func DecodeInt(body []byte) int64 {
	if len(body) == 0 {
		return 0
	}
	var v int64
	if body[0]&0x80 != 0 {
		v = -1 // all-ones sign extension
	}
	for _, b := range body {
		v = v<<8 | int64(b)
	}
	return v
}

// EncodeInt appends the minimal sign-preserving big-endian encoding of
// v. Leading 0x00 octets are trimmed when v >= 0 and leading 0xFF
// octets when v < 0, but trimming never crosses the point where the
// next octet's sign bit would disagree with v's sign: at least one
// octet is always written.
func EncodeInt(v int64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(v))

	fill := byte(0x00)
	if v < 0 {
		fill = 0xFF
	}
	i := 0
	for i < 7 && tmp[i] == fill && (tmp[i+1]&0x80 == fill&0x80) {
		i++
	}
	return append([]byte(nil), tmp[i:]...)
}

// DecodeFloat decodes an EBML float body: exactly 0, 4, or 8 octets
// big-endian. Any other length returns 0 with no error: the bad length
// is not reported as an UnderDecodeError, here or by the callers in
// package matroska.
func DecodeFloat(body []byte) float64 {
	switch len(body) {
	case 0:
		return 0
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(body)))
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(body))
	default:
		return 0
	}
}

// EncodeFloat appends the narrowest legal encoding of v: 4 octets if v
// round-trips exactly through float32 and is neither NaN nor outside
// float32's finite range, 8 octets otherwise.
func EncodeFloat(v float64) []byte {
	if fitsFloat32(v) {
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(float32(v)))
		return tmp[:]
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	return tmp[:]
}

func fitsFloat32(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	f32 := float32(v)
	if math.IsInf(float64(f32), 0) {
		return false
	}
	return float64(f32) == v
}

// DecodeString decodes an EBML ASCII/Text body: bytes up to the first
// NUL or the end of the buffer, whichever comes first.
func DecodeString(body []byte) string {
	if i := indexNUL(body); i >= 0 {
		body = body[:i]
	}
	return string(body)
}

// DecodeUTF8 decodes an EBML UTF-8 body identically to DecodeString but
// lossily repairs invalid UTF-8 instead of rejecting it, using the
// standard replacement character.
func DecodeUTF8(body []byte) string {
	s := DecodeString(body)
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func indexNUL(body []byte) int {
	for i, b := range body {
		if b == 0x00 {
			return i
		}
	}
	return -1
}

// EncodeString appends s verbatim (callers that need NUL-termination,
// e.g. to match a declared fixed width, do so themselves; the master
// encoder does not pad string bodies).
func EncodeString(s string) []byte {
	return []byte(s)
}

// EncodeUTF8 appends s verbatim; like EncodeString, it writes no NUL
// terminator or padding.
func EncodeUTF8(s string) []byte {
	return []byte(s)
}

// Date values are measured in nanoseconds relative to the EBML epoch,
// 2001-01-01T00:00:00 UTC. This package keeps them as the raw signed
// offset; presentation as an absolute time is a caller concern.

// DecodeDate decodes an EBML Date body: exactly 8 octets of signed
// nanoseconds since the EBML epoch.
func DecodeDate(body []byte) int64 {
	if len(body) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(body))
}

// EncodeDate appends the 8-octet signed nanosecond offset ns.
func EncodeDate(ns int64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(ns))
	return tmp[:]
}
