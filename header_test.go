package ebml

import (
	"testing"

	"github.com/gomkv/ebml/vint"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []Header{
		{ID: 0x1A45DFA3, Size: vint.New(0)},
		{ID: 0x18538067, Size: vint.New(42)},
		{ID: 0xA3, Size: vint.New(1 << 20)},
		{ID: 0x18538067, Size: vint.Unknown()},
	}

	for _, h := range cases {
		s := NewSink()
		EncodeHeader(s, h)
		got, err := DecodeHeader(NewCursor(s.Bytes()))
		if err != nil {
			t.Fatalf("DecodeHeader() error = %v", err)
		}
		if got.ID != h.ID {
			t.Errorf("ID = %s, want %s", got.ID, h.ID)
		}
		if got.Size.IsUnknown != h.Size.IsUnknown {
			t.Errorf("IsUnknown = %v, want %v", got.Size.IsUnknown, h.Size.IsUnknown)
		}
		if !h.Size.IsUnknown && got.Size.Value != h.Size.Value {
			t.Errorf("Size.Value = %d, want %d", got.Size.Value, h.Size.Value)
		}
	}
}

func TestDecodeHeaderShortBuffer(t *testing.T) {
	// A lone ID octet with no size VINT at all must fail, not panic.
	_, err := DecodeHeader(NewCursor([]byte{0xA3}))
	if err == nil {
		t.Fatal("DecodeHeader() error = nil, want error on truncated header")
	}
}

func TestDecodeHeaderSequential(t *testing.T) {
	s := NewSink()
	EncodeHeader(s, Header{ID: 0x80, Size: vint.New(1)})
	s.AppendSlice([]byte{0x42})
	EncodeHeader(s, Header{ID: 0x81, Size: vint.New(2)})
	s.AppendSlice([]byte{0x01, 0x02})

	c := NewCursor(s.Bytes())
	h1, err := DecodeHeader(c)
	if err != nil {
		t.Fatalf("first DecodeHeader() error = %v", err)
	}
	if h1.ID != 0x80 || h1.Size.Value != 1 {
		t.Fatalf("first header = %+v", h1)
	}
	if err := c.Advance(1); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}

	h2, err := DecodeHeader(c)
	if err != nil {
		t.Fatalf("second DecodeHeader() error = %v", err)
	}
	if h2.ID != 0x81 || h2.Size.Value != 2 {
		t.Fatalf("second header = %+v", h2)
	}
}
