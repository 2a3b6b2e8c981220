package ebml

import "github.com/gomkv/ebml/vint"

// Header is the (id, size) pair that precedes every EBML element's
// body. ID is stored with its leading marker bit intact because
// element IDs are compared in their encoded form, not as bare
// integers.
type Header struct {
	ID   ElementID
	Size vint.VInt
}

// DecodeHeader reads an ID VINT followed by a size VINT from c.
func DecodeHeader(c Cursor) (Header, error) {
	idBytes, err := c.Slice(vint.MaxWidth)
	if err != nil {
		// The ID may legally be shorter than MaxWidth bytes from the
		// end of the buffer; retry with exactly what remains.
		idBytes, err = c.Slice(c.Remaining())
		if err != nil {
			return Header{}, err
		}
	}
	id, idWidth, err := vint.DecodeID(idBytes)
	if err != nil {
		return Header{}, err
	}
	if err = c.Advance(idWidth); err != nil {
		return Header{}, err
	}

	sizeBytes, err := c.Slice(vint.MaxWidth)
	if err != nil {
		sizeBytes, err = c.Slice(c.Remaining())
		if err != nil {
			return Header{}, err
		}
	}
	size, sizeWidth, err := vint.Decode(sizeBytes)
	if err != nil {
		return Header{}, err
	}
	if err = c.Advance(sizeWidth); err != nil {
		return Header{}, err
	}

	return Header{ID: ElementID(id.Value), Size: size}, nil
}

// EncodeHeader writes h's ID (verbatim, already-encoded) followed by
// its size VINT into s.
func EncodeHeader(s Sink, h Header) {
	s.AppendSlice(encodeIDBytes(h.ID))

	if h.Size.IsUnknown {
		s.AppendSlice([]byte{0xFF})
		return
	}
	s.AppendSlice(vint.Encode(nil, h.Size.Value))
}

// encodeIDBytes renders an already-encoded element ID back to wire
// bytes. The width is recovered from the position of the ID's leading
// one-bit, exactly as a decoder would have found it.
func encodeIDBytes(id ElementID) []byte {
	v := uint32(id)
	width := idByteWidth(v)
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func idByteWidth(v uint32) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}
