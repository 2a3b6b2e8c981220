package ebml

import "fmt"

// ElementID identifies an element by its encoded form, marker bit
// included; IDs are compared and logged in that form, never the
// marker-stripped bare value.
type ElementID uint32

// String renders an ElementID the way error messages and logs want it:
// hex, matching the constants declared in schema/elements_gen.go.
func (id ElementID) String() string {
	return fmt.Sprintf("0x%X", uint32(id))
}

// ShortReadError reports that a master element's body had leftover
// bytes after its children were fully decoded.
type ShortReadError struct {
	Parent   ElementID
	Leftover int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("ebml: short read: %d leftover bytes in body of %s", e.Leftover, e.Parent)
}

// OverDecodeError reports that decoding an element's body attempted to
// read past its declared size.
type OverDecodeError struct {
	ID  ElementID
	Err error
}

func (e *OverDecodeError) Error() string {
	return fmt.Sprintf("ebml: over-decode of %s: %v", e.ID, e.Err)
}

func (e *OverDecodeError) Unwrap() error { return e.Err }

// UnderDecodeError reports that decoding an element's body left bytes
// of its declared size unconsumed.
type UnderDecodeError struct {
	ID       ElementID
	Leftover int
}

func (e *UnderDecodeError) Error() string {
	return fmt.Sprintf("ebml: under-decode of %s: %d bytes unconsumed", e.ID, e.Leftover)
}

// MissingElementError reports a required child absent with no default.
type MissingElementError struct {
	ID     ElementID
	Parent ElementID
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("ebml: missing required element %s in %s", e.ID, e.Parent)
}

// DuplicateElementError reports a singleton child that appeared twice
// in one occurrence of its parent.
type DuplicateElementError struct {
	ID     ElementID
	Parent ElementID
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("ebml: duplicate element %s in %s", e.ID, e.Parent)
}

// BodySizeUnknownError reports that the in-memory decode path met an
// element whose size VINT was the unknown sentinel; only Segment and
// Cluster may carry unknown size, and only via the streaming collaborator.
type BodySizeUnknownError struct {
	ID ElementID
}

func (e *BodySizeUnknownError) Error() string {
	return fmt.Sprintf("ebml: element body size unknown for %s", e.ID)
}

// MalformedLacingError reports that a block's lacing sizes over- or
// under-run the bytes actually available.
type MalformedLacingError struct {
	Reason string
}

func (e *MalformedLacingError) Error() string {
	return fmt.Sprintf("ebml: malformed lacing data: %s", e.Reason)
}

// ErrOutOfBounds is returned when a read would run past the end of the
// buffer being decoded; a master decoder translates it into
// OverDecodeError once it knows which child was being read.
var ErrOutOfBounds = fmt.Errorf("ebml: read past end of buffer")
