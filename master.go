package ebml

import (
	"errors"

	"github.com/gomkv/ebml/vint"
)

// Cardinality classifies how many times a child element may legally
// appear within one occurrence of its parent master.
type Cardinality int

const (
	// Required children must appear exactly once; if a schema marks
	// the child type's HasDefault true, a missing occurrence is
	// rescued with that default instead of failing.
	Required Cardinality = iota
	// Optional children may appear at most once.
	Optional
	// Repeated children may appear any number of times, including
	// duplicates; no duplicate check applies to them.
	Repeated
)

// ChildRule describes one child ID's cardinality within a specific
// parent, plus (for Required children) whether the element type itself
// declares a default value that can rescue a missing occurrence.
type ChildRule struct {
	Cardinality Cardinality
	HasDefault  bool
}

// MasterSpec is the per-parent slice of the schema catalogue that
// DecodeMasterBody/EncodeMasterBody need: which child IDs are legal and
// how each may repeat. The schema package builds one of these per
// master element definition.
type MasterSpec struct {
	ID       ElementID
	Children map[ElementID]ChildRule
	// AllowDuplicates, when set, makes a repeated singleton keep its
	// first occurrence and silently drop later ones instead of
	// failing with DuplicateElementError. Off by default; callers
	// that want to tolerate malformed input set it explicitly.
	AllowDuplicates bool
}

// idCRC32 and idVoid are the two built-in children every master may
// carry regardless of what the schema says about it.
const (
	idCRC32 ElementID = 0xBF
	idVoid  ElementID = 0xEC
)

// DecodeMasterBody walks a master element's body: an optional leading
// CRC-32, then a child loop that enforces duplicate detection on
// required/optional children, collapses every Void into one aggregated
// size, and logs-and-skips anything the schema does not recognize.
// handle is called once per recognized,
// non-supplementary child with the child's raw body bytes; an error it
// returns is wrapped into OverDecodeError/UnderDecodeError so the
// caller can tell which child failed.
//
// DecodeMasterBody does not itself substitute defaults for missing
// required children — the caller initializes its destination struct's
// fields to their schema defaults before calling this function, exactly
// as a required-with-default field should read if absent, and only
// required fields with no default are checked here against what was
// actually seen.
func DecodeMasterBody(c Cursor, spec MasterSpec, handle func(id ElementID, body []byte) error) (crc32 []byte, voidSize int, err error) {
	seen := make(map[ElementID]bool)

	if c.Remaining() > 0 {
		peeked, peekErr := peekHeader(c)
		if peekErr == nil && peeked.ID == idCRC32 {
			h, herr := DecodeHeader(c)
			if herr != nil {
				return nil, 0, herr
			}
			body, berr := readBody(c, h)
			if berr != nil {
				return nil, 0, &OverDecodeError{ID: idCRC32, Err: berr}
			}
			crc32 = append([]byte(nil), body...)
		}
	}

	for c.HasRemaining() {
		h, herr := DecodeHeader(c)
		if herr != nil {
			// A header straddling the end of the body is a truncated
			// trailing element.
			return crc32, voidSize, &ShortReadError{Parent: spec.ID, Leftover: c.Remaining()}
		}

		if h.ID == idVoid {
			body, berr := readBody(c, h)
			if berr != nil {
				return crc32, voidSize, &OverDecodeError{ID: idVoid, Err: berr}
			}
			voidSize += len(body)
			continue
		}

		rule, known := spec.Children[h.ID]
		if !known {
			if _, berr := readBody(c, h); berr != nil {
				return crc32, voidSize, &OverDecodeError{ID: h.ID, Err: berr}
			}
			Log.Debugf("ebml: skipping unrecognized child %s of %s", h.ID, spec.ID)
			continue
		}

		if rule.Cardinality != Repeated {
			if seen[h.ID] {
				if spec.AllowDuplicates {
					if _, berr := readBody(c, h); berr != nil {
						return crc32, voidSize, &OverDecodeError{ID: h.ID, Err: berr}
					}
					continue
				}
				return crc32, voidSize, &DuplicateElementError{ID: h.ID, Parent: spec.ID}
			}
			seen[h.ID] = true
		}

		body, berr := readBody(c, h)
		if berr != nil {
			return crc32, voidSize, &OverDecodeError{ID: h.ID, Err: berr}
		}
		if err = handle(h.ID, body); err != nil {
			var short *ShortReadError
			if errors.As(err, &short) {
				return crc32, voidSize, &UnderDecodeError{ID: h.ID, Leftover: short.Leftover}
			}
			return crc32, voidSize, &OverDecodeError{ID: h.ID, Err: err}
		}
	}

	for id, rule := range spec.Children {
		if rule.Cardinality == Required && !rule.HasDefault && !seen[id] {
			return crc32, voidSize, &MissingElementError{ID: id, Parent: spec.ID}
		}
	}

	return crc32, voidSize, nil
}

// peekHeader decodes a header without advancing the cursor, used to
// look one header ahead for the optional CRC-32 prefix.
func peekHeader(c Cursor) (Header, error) {
	probe, err := c.Slice(c.Remaining())
	if err != nil {
		return Header{}, err
	}
	return DecodeHeader(NewCursor(probe))
}

func readBody(c Cursor, h Header) ([]byte, error) {
	if h.Size.IsUnknown {
		return nil, &BodySizeUnknownError{ID: h.ID}
	}
	body, err := c.Slice(int(h.Size.Value))
	if err != nil {
		return nil, err
	}
	if err = c.Advance(int(h.Size.Value)); err != nil {
		return nil, err
	}
	return body, nil
}

// ChildEntry is one child to be written by EncodeMasterBody: its ID and
// already-encoded body bytes.
type ChildEntry struct {
	ID   ElementID
	Body []byte
}

// EncodeMasterBody writes a master body: CRC-32 first if present, then
// entries in exactly the order given (EncodeMasterBody does not reorder
// them by cardinality), then a single aggregated Void of voidSize bytes
// last. voidSize of 0 emits no Void element.
func EncodeMasterBody(s Sink, crc32 []byte, entries []ChildEntry, voidSize int) {
	if crc32 != nil {
		EncodeHeader(s, Header{ID: idCRC32, Size: sizeOf(len(crc32))})
		s.AppendSlice(crc32)
	}
	for _, e := range entries {
		EncodeHeader(s, Header{ID: e.ID, Size: sizeOf(len(e.Body))})
		s.AppendSlice(e.Body)
	}
	if voidSize > 0 {
		EncodeHeader(s, Header{ID: idVoid, Size: sizeOf(voidSize)})
		s.AppendSlice(make([]byte, voidSize))
	}
}

func sizeOf(n int) vint.VInt { return vint.New(uint64(n)) }
