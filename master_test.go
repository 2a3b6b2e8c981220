package ebml

import (
	"testing"

	"github.com/gomkv/ebml/vint"
)

const (
	testParentID ElementID = 0x1000
	testReqID    ElementID = 0x81
	testOptID    ElementID = 0x82
	testRepID    ElementID = 0x83
)

func testSpec() MasterSpec {
	return MasterSpec{
		ID: testParentID,
		Children: map[ElementID]ChildRule{
			testReqID: {Cardinality: Required},
			testOptID: {Cardinality: Optional},
			testRepID: {Cardinality: Repeated},
		},
	}
}

// buildBody writes raw (id, body) pairs as a sequence of headers+bytes.
func buildBody(entries ...ChildEntry) []byte {
	s := NewSink()
	for _, e := range entries {
		EncodeHeader(s, Header{ID: e.ID, Size: vint.New(uint64(len(e.Body)))})
		s.AppendSlice(e.Body)
	}
	return s.Bytes()
}

func TestDecodeMasterBodyBasic(t *testing.T) {
	body := buildBody(
		ChildEntry{ID: testReqID, Body: []byte{0x01}},
		ChildEntry{ID: testRepID, Body: []byte{0x02}},
		ChildEntry{ID: testRepID, Body: []byte{0x03}},
	)

	seenIDs := map[ElementID][][]byte{}
	_, voidSize, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error {
		seenIDs[id] = append(seenIDs[id], append([]byte(nil), b...))
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeMasterBody() error = %v", err)
	}
	if voidSize != 0 {
		t.Errorf("voidSize = %d, want 0", voidSize)
	}
	if len(seenIDs[testReqID]) != 1 || seenIDs[testReqID][0][0] != 0x01 {
		t.Errorf("required child not decoded correctly: %v", seenIDs[testReqID])
	}
	if len(seenIDs[testRepID]) != 2 {
		t.Errorf("repeated children count = %d, want 2", len(seenIDs[testRepID]))
	}
}

func TestDecodeMasterBodyDuplicateSingleton(t *testing.T) {
	body := buildBody(
		ChildEntry{ID: testReqID, Body: []byte{0x01}},
		ChildEntry{ID: testOptID, Body: []byte{0x02}},
		ChildEntry{ID: testOptID, Body: []byte{0x03}},
	)

	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	dup, ok := err.(*DuplicateElementError)
	if !ok {
		t.Fatalf("expected *DuplicateElementError, got %v (%T)", err, err)
	}
	if dup.ID != testOptID || dup.Parent != testParentID {
		t.Errorf("unexpected duplicate error fields: %+v", dup)
	}
}

func TestDecodeMasterBodyMissingRequired(t *testing.T) {
	body := buildBody(ChildEntry{ID: testOptID, Body: []byte{0x02}})

	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	missing, ok := err.(*MissingElementError)
	if !ok {
		t.Fatalf("expected *MissingElementError, got %v (%T)", err, err)
	}
	if missing.ID != testReqID {
		t.Errorf("missing.ID = %s, want %s", missing.ID, testReqID)
	}
}

func TestDecodeMasterBodyMissingRequiredWithDefault(t *testing.T) {
	spec := testSpec()
	spec.Children[testReqID] = ChildRule{Cardinality: Required, HasDefault: true}

	body := buildBody(ChildEntry{ID: testOptID, Body: []byte{0x02}})
	_, _, err := DecodeMasterBody(NewCursor(body), spec, func(id ElementID, b []byte) error { return nil })
	if err != nil {
		t.Fatalf("DecodeMasterBody() error = %v, want nil (default rescues missing required)", err)
	}
}

func TestDecodeMasterBodyUnknownChildSkipped(t *testing.T) {
	body := buildBody(
		ChildEntry{ID: 0x9F, Body: []byte{0xAA, 0xBB}},
		ChildEntry{ID: testReqID, Body: []byte{0x01}},
	)

	var sawRequired bool
	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error {
		if id == testReqID {
			sawRequired = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeMasterBody() error = %v", err)
	}
	if !sawRequired {
		t.Error("required sibling of unknown element was not decoded")
	}
}

func TestDecodeMasterBodyVoidAggregation(t *testing.T) {
	body := buildBody(
		ChildEntry{ID: idVoid, Body: make([]byte, 3)},
		ChildEntry{ID: testReqID, Body: []byte{0x01}},
		ChildEntry{ID: idVoid, Body: make([]byte, 5)},
	)

	_, voidSize, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	if err != nil {
		t.Fatalf("DecodeMasterBody() error = %v", err)
	}
	if voidSize != 8 {
		t.Errorf("voidSize = %d, want 8", voidSize)
	}
}

func TestDecodeMasterBodyCRC32Prefix(t *testing.T) {
	body := buildBody(
		ChildEntry{ID: idCRC32, Body: []byte{0x11, 0x22, 0x33, 0x44}},
		ChildEntry{ID: testReqID, Body: []byte{0x01}},
	)

	crc, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	if err != nil {
		t.Fatalf("DecodeMasterBody() error = %v", err)
	}
	if string(crc) != string([]byte{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("crc32 = % X, want 11 22 33 44", crc)
	}
}

func TestDecodeMasterBodyShortRead(t *testing.T) {
	body := buildBody(ChildEntry{ID: testReqID, Body: []byte{0x01}})
	body = append(body, 0x40) // truncated trailing header: width-2 ID VINT with only one byte present

	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	short, ok := err.(*ShortReadError)
	if !ok {
		t.Fatalf("expected *ShortReadError, got %v (%T)", err, err)
	}
	if short.Parent != testParentID || short.Leftover != 1 {
		t.Errorf("unexpected short read error fields: %+v", short)
	}
}

func TestDecodeMasterBodyOverDecode(t *testing.T) {
	s := NewSink()
	EncodeHeader(s, Header{ID: testReqID, Size: vint.New(5)})
	s.AppendSlice([]byte{0x01}) // header claims 5 bytes, body supplies 1
	body := s.Bytes()

	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error { return nil })
	over, ok := err.(*OverDecodeError)
	if !ok {
		t.Fatalf("expected *OverDecodeError, got %v (%T)", err, err)
	}
	if over.ID != testReqID {
		t.Errorf("over.ID = %s, want %s", over.ID, testReqID)
	}
}

func TestDecodeMasterBodyUnderDecode(t *testing.T) {
	nested := buildBody(ChildEntry{ID: testReqID, Body: []byte{0x01}})
	nested = append(nested, 0x40) // truncated trailing header inside the nested master

	body := buildBody(ChildEntry{ID: testReqID, Body: nested})

	_, _, err := DecodeMasterBody(NewCursor(body), testSpec(), func(id ElementID, b []byte) error {
		_, _, nestedErr := DecodeMasterBody(NewCursor(b), testSpec(), func(ElementID, []byte) error { return nil })
		return nestedErr
	})
	under, ok := err.(*UnderDecodeError)
	if !ok {
		t.Fatalf("expected *UnderDecodeError, got %v (%T)", err, err)
	}
	if under.ID != testReqID || under.Leftover != 1 {
		t.Errorf("unexpected under decode error fields: %+v", under)
	}
}

func TestEncodeMasterBodyOrder(t *testing.T) {
	s := NewSink()
	EncodeMasterBody(s, []byte{1, 2, 3, 4}, []ChildEntry{
		{ID: testReqID, Body: []byte{0x01}},
		{ID: testOptID, Body: []byte{0x02}},
	}, 3)

	crc, voidSize, err := DecodeMasterBody(NewCursor(s.Bytes()), testSpec(), func(id ElementID, b []byte) error { return nil })
	if err != nil {
		t.Fatalf("round trip decode error = %v", err)
	}
	if string(crc) != string([]byte{1, 2, 3, 4}) {
		t.Errorf("crc32 = % X", crc)
	}
	if voidSize != 3 {
		t.Errorf("voidSize = %d, want 3", voidSize)
	}
}
