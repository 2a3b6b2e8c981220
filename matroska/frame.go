package matroska

// Frame is one coded frame recovered from a Cluster's blocks, with its
// track and absolute timestamp resolved and its keyframe status known.
type Frame struct {
	Data          []byte
	TrackNumber   uint64
	Timestamp     int64
	IsKeyframe    bool
	IsInvisible   bool
	IsDiscardable bool
}

// Frames unpacks every SimpleBlock and BlockGroup in the cluster into
// its constituent Frames: first the frames of every SimpleBlock, then
// those of every BlockGroup, each kind in its own order within the
// cluster. How the two kinds were interleaved in the original cluster
// is not kept, so it is not reflected in the result. The result is a finite
// snapshot: callers that need it again call Frames a second time
// rather than holding a cursor into it.
func (c Cluster) Frames() ([]Frame, error) {
	var out []Frame

	for _, raw := range c.SimpleBlocks {
		pb, err := parseBlock(raw)
		if err != nil {
			return nil, err
		}
		for _, data := range pb.frames {
			out = append(out, Frame{
				Data:          data,
				TrackNumber:   pb.track,
				Timestamp:     int64(c.Timestamp) + int64(pb.relTS),
				IsKeyframe:    pb.isKeyframe(),
				IsInvisible:   pb.isInvisible(),
				IsDiscardable: pb.isDiscardable(),
			})
		}
	}

	for _, bg := range c.BlockGroups {
		pb, err := parseBlock(bg.Block)
		if err != nil {
			return nil, err
		}
		// A BlockGroup carries no keyframe flag of its own; a block with
		// no ReferenceBlock entries references nothing and is a keyframe.
		isKeyframe := len(bg.ReferenceBlock) == 0
		for _, data := range pb.frames {
			out = append(out, Frame{
				Data:          data,
				TrackNumber:   pb.track,
				Timestamp:     int64(c.Timestamp) + int64(pb.relTS),
				IsKeyframe:    isKeyframe,
				IsInvisible:   pb.isInvisible(),
				IsDiscardable: pb.isDiscardable(),
			})
		}
	}

	return out, nil
}
