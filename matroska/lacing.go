package matroska

import (
	"github.com/gomkv/ebml"
	"github.com/gomkv/ebml/vint"
)

func unlaceXiph(payload []byte) ([][]byte, error) {
	if len(payload) < 1 {
		return nil, &ebml.MalformedLacingError{Reason: "xiph lacing: missing frame count byte"}
	}
	n := int(payload[0]) + 1
	pos := 1

	sizes := make([]int, 0, n)
	for i := 0; i < n-1; i++ {
		size := 0
		for {
			if pos >= len(payload) {
				return nil, &ebml.MalformedLacingError{Reason: "xiph lacing: truncated size run"}
			}
			b := payload[pos]
			pos++
			size += int(b)
			if b != 0xFF {
				break
			}
		}
		sizes = append(sizes, size)
	}

	total := 0
	for _, s := range sizes {
		total += s
	}
	lastSize := len(payload) - pos - total
	if lastSize < 0 {
		return nil, &ebml.MalformedLacingError{Reason: "xiph lacing: sizes exceed payload"}
	}
	sizes = append(sizes, lastSize)

	return sliceFrames(payload, pos, sizes)
}

// laceXiph is the inverse of unlaceXiph: frames[0:len-1] get an
// explicit 0xFF-run-terminated size; the last frame's size is implied
// by the remainder.
func laceXiph(frames [][]byte) []byte {
	out := []byte{byte(len(frames) - 1)}
	for _, f := range frames[:len(frames)-1] {
		size := len(f)
		for size >= 255 {
			out = append(out, 0xFF)
			size -= 255
		}
		out = append(out, byte(size))
	}
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

func unlaceFixed(payload []byte) ([][]byte, error) {
	if len(payload) < 1 {
		return nil, &ebml.MalformedLacingError{Reason: "fixed lacing: missing frame count byte"}
	}
	n := int(payload[0]) + 1
	rest := payload[1:]
	if len(rest)%n != 0 {
		return nil, &ebml.MalformedLacingError{Reason: "fixed lacing: remainder not divisible by frame count"}
	}
	size := len(rest) / n
	frames := make([][]byte, n)
	for i := 0; i < n; i++ {
		frames[i] = rest[i*size : (i+1)*size]
	}
	return frames, nil
}

// laceFixed requires every frame to share one size; callers with
// mixed sizes must use Xiph or EBML lacing instead.
func laceFixed(frames [][]byte) []byte {
	out := []byte{byte(len(frames) - 1)}
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

func unlaceEBML(payload []byte) ([][]byte, error) {
	if len(payload) < 1 {
		return nil, &ebml.MalformedLacingError{Reason: "ebml lacing: missing frame count byte"}
	}
	n := int(payload[0]) + 1
	pos := 1

	first, w, err := vint.Decode(payload[pos:])
	if err != nil {
		return nil, &ebml.MalformedLacingError{Reason: "ebml lacing: invalid first size"}
	}
	pos += w

	sizes := make([]int64, 0, n)
	sizes = append(sizes, int64(first.Value))
	prev := int64(first.Value)

	for i := 0; i < n-2; i++ {
		raw, w, err := vint.Decode(payload[pos:])
		if err != nil {
			return nil, &ebml.MalformedLacingError{Reason: "ebml lacing: invalid diff"}
		}
		pos += w
		diff := int64(raw.Value) - ebmlDiffBias(w)
		prev += diff
		if prev < 0 {
			return nil, &ebml.MalformedLacingError{Reason: "ebml lacing: negative frame length"}
		}
		sizes = append(sizes, prev)
	}

	total := int64(0)
	for _, s := range sizes {
		total += s
	}
	lastSize := int64(len(payload)-pos) - total
	if lastSize < 0 {
		return nil, &ebml.MalformedLacingError{Reason: "ebml lacing: sizes exceed payload"}
	}
	sizes = append(sizes, lastSize)

	intSizes := make([]int, len(sizes))
	for i, s := range sizes {
		intSizes[i] = int(s)
	}
	return sliceFrames(payload, pos, intSizes)
}

// laceEBML writes the first length as a plain VINT, then n-2 signed
// diffs each at the minimal width that represents them, and leaves
// the last length implicit.
func laceEBML(frames [][]byte) []byte {
	out := []byte{byte(len(frames) - 1)}
	out = append(out, vint.Encode(nil, uint64(len(frames[0])))...)

	prev := int64(len(frames[0]))
	for _, f := range frames[1 : len(frames)-1] {
		size := int64(len(f))
		diff := size - prev
		w := ebmlDiffWidth(diff)
		raw := uint64(diff + ebmlDiffBias(w))
		out = vint.EncodeID(out, vint.New(raw), w)
		prev = size
	}
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

// ebmlDiffBias is the midpoint subtracted from a width-w VINT's raw
// value to recover the signed diff it encodes.
func ebmlDiffBias(w int) int64 {
	return int64(1)<<(7*uint(w)-1) - 1
}

// ebmlDiffWidth returns the minimal width whose symmetric diff range
// [-bias(w), bias(w)] contains diff.
func ebmlDiffWidth(diff int64) int {
	for w := 1; w <= vint.MaxWidth; w++ {
		bias := ebmlDiffBias(w)
		if diff >= -bias && diff <= bias {
			return w
		}
	}
	return vint.MaxWidth
}

func sliceFrames(payload []byte, pos int, sizes []int) ([][]byte, error) {
	frames := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		if size < 0 || pos+size > len(payload) {
			return nil, &ebml.MalformedLacingError{Reason: "lacing: frame runs past payload"}
		}
		frames = append(frames, payload[pos:pos+size])
		pos += size
	}
	return frames, nil
}
