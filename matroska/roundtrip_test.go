package matroska

import (
	"testing"

	"github.com/gomkv/ebml"
	"github.com/gomkv/ebml/schema"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Header: EBMLHeader{
			DocType:            "matroska",
			DocTypeVersion:     4,
			DocTypeReadVersion: 2,
			EBMLVersion:        1,
			EBMLReadVersion:    1,
			EBMLMaxIDLength:    4,
			EBMLMaxSizeLength:  8,
		},
		Segment: Segment{
			Info: &Info{
				TimestampScale: 1000000,
				Title:          "sample",
				MuxingApp:      "gomkv",
				WritingApp:     "gomkv",
				HasDuration:    true,
				Duration:       12345.5,
			},
			Tracks: []TrackEntry{
				{
					TrackNumber: 1,
					TrackUID:    1001,
					TrackType:   1,
					FlagEnabled: 1,
					FlagDefault: 1,
					Language:    "eng",
					CodecID:     "V_MPEG4/ISO/AVC",
					Video:       &Video{PixelWidth: 1920, PixelHeight: 1080},
				},
				{
					TrackNumber: 2,
					TrackUID:    1002,
					TrackType:   2,
					FlagEnabled: 1,
					FlagDefault: 0,
					Language:    "eng",
					CodecID:     "A_OPUS",
					Audio:       &Audio{SamplingFrequency: 48000, Channels: 2},
				},
			},
			Clusters: []Cluster{
				{
					Timestamp: 1000,
					SimpleBlocks: [][]byte{
						{0x81, 0x00, 0x00, 0x80, 0x01, 0x02, 0x03},
					},
					BlockGroups: []BlockGroupRaw{
						{
							Block:          []byte{0x82, 0x00, 0x05, 0x00, 0x04, 0x05},
							ReferenceBlock: []int64{-40},
						},
					},
				},
			},
			Tags: []Tag{
				{SimpleTags: []SimpleTag{{TagName: "ARTIST", TagString: "Someone"}}},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()
	wire := Encode(doc)

	got, err := Decode(wire)
	require.NoError(t, err)

	require.Equal(t, doc.Header.DocType, got.Header.DocType)
	require.Equal(t, doc.Header.DocTypeVersion, got.Header.DocTypeVersion)

	require.NotNil(t, got.Segment.Info)
	require.Equal(t, doc.Segment.Info.Title, got.Segment.Info.Title)
	require.InEpsilon(t, doc.Segment.Info.Duration, got.Segment.Info.Duration, 1e-9)

	require.Len(t, got.Segment.Tracks, 2)
	require.Equal(t, doc.Segment.Tracks[0].CodecID, got.Segment.Tracks[0].CodecID)
	require.NotNil(t, got.Segment.Tracks[0].Video)
	require.Equal(t, doc.Segment.Tracks[0].Video.PixelWidth, got.Segment.Tracks[0].Video.PixelWidth)
	require.NotNil(t, got.Segment.Tracks[1].Audio)
	require.Equal(t, doc.Segment.Tracks[1].Audio.SamplingFrequency, got.Segment.Tracks[1].Audio.SamplingFrequency)

	require.Len(t, got.Segment.Clusters, 1)
	frames, err := got.Segment.Clusters[0].Frames()
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.True(t, frames[0].IsKeyframe)
	require.False(t, frames[1].IsKeyframe)

	require.Len(t, got.Segment.Tags, 1)
	require.Equal(t, "ARTIST", got.Segment.Tags[0].SimpleTags[0].TagName)
}

func TestDecodeRejectsDuplicateSingleton(t *testing.T) {
	body := ebml.NewSink()
	ebml.EncodeMasterBody(body, nil, []ebml.ChildEntry{
		{ID: schema.IDTimestampScale, Body: ebml.EncodeUint(1000000)},
		{ID: schema.IDTimestampScale, Body: ebml.EncodeUint(2000000)},
	}, 0)

	spec, ok := schema.Default.MasterSpec(schema.IDInfo)
	require.True(t, ok)

	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body.Bytes()), spec, func(ebml.ElementID, []byte) error { return nil })
	require.Error(t, err)
	var dup *ebml.DuplicateElementError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, schema.IDTimestampScale, dup.ID)
	require.Equal(t, schema.IDInfo, dup.Parent)

	spec.AllowDuplicates = true
	_, _, err = ebml.DecodeMasterBody(ebml.NewCursor(body.Bytes()), spec, func(ebml.ElementID, []byte) error { return nil })
	require.NoError(t, err)
}
