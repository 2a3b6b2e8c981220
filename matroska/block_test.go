package matroska

import "testing"

func TestParseBlockNoLacing(t *testing.T) {
	// track=1, Δt=5, flags=keyframe (0x80, lacing bits 00), payload DE AD BE EF.
	data := []byte{0x81, 0x00, 0x05, 0x80, 0xDE, 0xAD, 0xBE, 0xEF}
	pb, err := parseBlock(data)
	if err != nil {
		t.Fatalf("parseBlock: %v", err)
	}
	if pb.track != 1 {
		t.Errorf("track = %d, want 1", pb.track)
	}
	if pb.relTS != 5 {
		t.Errorf("relTS = %d, want 5", pb.relTS)
	}
	if !pb.isKeyframe() {
		t.Error("expected keyframe flag set")
	}
	if len(pb.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(pb.frames))
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for i, b := range want {
		if pb.frames[0][i] != b {
			t.Errorf("frame byte %d = %#x, want %#x", i, pb.frames[0][i], b)
		}
	}
}

func TestFramesResolveAbsoluteTimestampAndKeyframe(t *testing.T) {
	simple := []byte{0x81, 0x00, 0x05, 0x80, 0xDE, 0xAD, 0xBE, 0xEF}
	c := Cluster{
		Timestamp:    1000,
		SimpleBlocks: [][]byte{simple},
		BlockGroups: []BlockGroupRaw{
			{Block: []byte{0x82, 0x00, 0x03, 0x00, 0x01, 0x02}, ReferenceBlock: []int64{-10}},
		},
	}
	frames, err := c.Frames()
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Timestamp != 1005 {
		t.Errorf("frame 0 timestamp = %d, want 1005", frames[0].Timestamp)
	}
	if !frames[0].IsKeyframe {
		t.Error("frame 0 should be keyframe (SimpleBlock flag)")
	}
	if frames[1].IsKeyframe {
		t.Error("frame 1 should not be keyframe: it references another block")
	}
	if frames[1].TrackNumber != 2 {
		t.Errorf("frame 1 track = %d, want 2", frames[1].TrackNumber)
	}
}
