package vint

import "testing"

func TestDecodeTable(t *testing.T) {
	testCases := []struct {
		name  string
		bytes []byte
		value uint64
	}{
		{"width1 zero", []byte{0x80}, 0},
		{"width1 one", []byte{0x81}, 1},
		{"width2 255", []byte{0x40, 0xFF}, 255},
		{"width3 65536", []byte{0x21, 0x00, 0x00}, 65536},
		{"width8 max", []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 1<<56 - 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, n, err := Decode(tc.bytes)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if n != len(tc.bytes) {
				t.Errorf("consumed %d bytes, want %d", n, len(tc.bytes))
			}
			if got.Value != tc.value || got.IsUnknown {
				t.Errorf("Decode() = %+v, want value %d", got, tc.value)
			}

			encoded := Encode(nil, tc.value)
			if string(encoded) != string(tc.bytes) {
				t.Errorf("Encode(%d) = % X, want % X", tc.value, encoded, tc.bytes)
			}
		})
	}
}

func TestUnknownSentinel(t *testing.T) {
	got, n, err := Decode([]byte{0xFF})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != 1 || !got.IsUnknown {
		t.Fatalf("Decode(0xFF) = %+v, n=%d, want unknown width 1", got, n)
	}

	encoded := append([]byte(nil), EncodeUnknown(nil)...)
	if len(encoded) != 1 || encoded[0] != 0xFF {
		t.Errorf("EncodeUnknown() = % X, want [FF]", encoded)
	}

	if got.Equal(New(127)) {
		t.Error("unknown VInt must not equal New(127)")
	}
}

func TestSpecialCase127(t *testing.T) {
	encoded := Encode(nil, 127)
	want := []byte{0x40, 0x7F}
	if string(encoded) != string(want) {
		t.Errorf("Encode(127) = % X, want % X", encoded, want)
	}

	got, n, err := Decode(want)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != 2 || got.Value != 127 || got.IsUnknown {
		t.Errorf("Decode(0x40 0x7F) = %+v, n=%d, want value 127 known", got, n)
	}
}

// TestDecodeIDKeepsMarker verifies element IDs retain their leading bit.
func TestDecodeIDKeepsMarker(t *testing.T) {
	got, n, err := DecodeID([]byte{0x1A, 0x45, 0xDF, 0xA3})
	if err != nil {
		t.Fatalf("DecodeID() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("consumed %d bytes, want 4", n)
	}
	if got.Value != 0x1A45DFA3 {
		t.Errorf("DecodeID() = %#x, want 0x1A45DFA3", got.Value)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := Decode([]byte{0x00}); err != ErrInvalidVInt {
		t.Errorf("expected ErrInvalidVInt, got %v", err)
	}
	if _, _, err := Decode([]byte{0x10, 0x00}); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, _, err := Decode(nil); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds on empty buffer, got %v", err)
	}
}

func TestEncodeSizeMinimality(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
	}{
		{0, 1},
		{126, 1},
		{127, 2}, // special-cased, see TestSpecialCase127
		{1<<14 - 2, 2},
		{1<<14 - 1, 3},
		{1<<56 - 2, 8},
	}
	for _, c := range cases {
		enc := Encode(nil, c.v)
		if len(enc) != c.width {
			t.Errorf("Encode(%d) has width %d, want %d", c.v, len(enc), c.width)
		}
	}
}
