package matroska

import (
	"bytes"
	"testing"
)

func TestUnlaceXiph(t *testing.T) {
	payload := []byte{0x03, 0xFF, 0x00, 0xFF, 0x01, 0x01}
	payload = append(payload, bytes.Repeat([]byte{0x02}, 255)...)
	payload = append(payload, bytes.Repeat([]byte{0x42}, 256)...)
	payload = append(payload, bytes.Repeat([]byte{0x38}, 1)...)
	payload = append(payload, bytes.Repeat([]byte{0x64}, 100)...)

	frames, err := unlaceXiph(payload)
	if err != nil {
		t.Fatalf("unlaceXiph: %v", err)
	}
	wantSizes := []int{255, 256, 1, 100}
	if len(frames) != len(wantSizes) {
		t.Fatalf("got %d frames, want %d", len(frames), len(wantSizes))
	}
	for i, want := range wantSizes {
		if len(frames[i]) != want {
			t.Errorf("frame %d: got size %d, want %d", i, len(frames[i]), want)
		}
	}
}

func TestLaceUnlaceXiphRoundTrip(t *testing.T) {
	frames := [][]byte{
		bytes.Repeat([]byte{0x01}, 255),
		bytes.Repeat([]byte{0x02}, 256),
		bytes.Repeat([]byte{0x03}, 1),
		bytes.Repeat([]byte{0x04}, 100),
	}
	laced := laceXiph(frames)
	got, err := unlaceXiph(laced)
	if err != nil {
		t.Fatalf("unlaceXiph: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("got %d frames, want %d", len(got), len(frames))
	}
	for i := range frames {
		if !bytes.Equal(got[i], frames[i]) {
			t.Errorf("frame %d mismatch", i)
		}
	}
}

func TestUnlaceFixed(t *testing.T) {
	payload := []byte{0x02} // N-1=2, 3 frames
	payload = append(payload, bytes.Repeat([]byte{0xAA}, 30)...)
	frames, err := unlaceFixed(payload)
	if err != nil {
		t.Fatalf("unlaceFixed: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for _, f := range frames {
		if len(f) != 10 {
			t.Errorf("frame size %d, want 10", len(f))
		}
	}
}

func TestUnlaceFixedNotDivisible(t *testing.T) {
	payload := []byte{0x02} // 3 frames
	payload = append(payload, bytes.Repeat([]byte{0xAA}, 31)...)
	if _, err := unlaceFixed(payload); err == nil {
		t.Fatal("expected error for non-divisible remainder")
	}
}

func TestLaceUnlaceFixedRoundTrip(t *testing.T) {
	frames := [][]byte{
		bytes.Repeat([]byte{0x01}, 16),
		bytes.Repeat([]byte{0x02}, 16),
		bytes.Repeat([]byte{0x03}, 16),
	}
	laced := laceFixed(frames)
	got, err := unlaceFixed(laced)
	if err != nil {
		t.Fatalf("unlaceFixed: %v", err)
	}
	for i := range frames {
		if !bytes.Equal(got[i], frames[i]) {
			t.Errorf("frame %d mismatch", i)
		}
	}
}

func TestUnlaceEBML(t *testing.T) {
	header := []byte{0x02, 0x43, 0x20, 0x5E, 0xD3}
	payload := append([]byte(nil), header...)
	payload = append(payload, bytes.Repeat([]byte{0x01}, 800)...)
	payload = append(payload, bytes.Repeat([]byte{0x02}, 500)...)
	payload = append(payload, bytes.Repeat([]byte{0x03}, 1000)...)

	frames, err := unlaceEBML(payload)
	if err != nil {
		t.Fatalf("unlaceEBML: %v", err)
	}
	wantSizes := []int{800, 500, 1000}
	if len(frames) != len(wantSizes) {
		t.Fatalf("got %d frames, want %d", len(frames), len(wantSizes))
	}
	for i, want := range wantSizes {
		if len(frames[i]) != want {
			t.Errorf("frame %d: got size %d, want %d", i, len(frames[i]), want)
		}
	}
}

func TestLaceUnlaceEBMLRoundTrip(t *testing.T) {
	frames := [][]byte{
		bytes.Repeat([]byte{0x01}, 800),
		bytes.Repeat([]byte{0x02}, 500),
		bytes.Repeat([]byte{0x03}, 1000),
		bytes.Repeat([]byte{0x04}, 2),
	}
	laced := laceEBML(frames)
	got, err := unlaceEBML(laced)
	if err != nil {
		t.Fatalf("unlaceEBML: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("got %d frames, want %d", len(got), len(frames))
	}
	for i := range frames {
		if !bytes.Equal(got[i], frames[i]) {
			t.Errorf("frame %d mismatch: got size %d, want %d", i, len(got[i]), len(frames[i]))
		}
	}
}

func TestEbmlDiffWidthMinimal(t *testing.T) {
	cases := []struct {
		diff int64
		want int
	}{
		{0, 1},
		{63, 1},
		{-63, 1},
		{64, 2},
		{-64, 2},
		{8191, 2},
		{-8191, 2},
	}
	for _, c := range cases {
		if got := ebmlDiffWidth(c.diff); got != c.want {
			t.Errorf("ebmlDiffWidth(%d) = %d, want %d", c.diff, got, c.want)
		}
	}
}
