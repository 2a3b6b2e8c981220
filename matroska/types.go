// Package matroska builds a typed element tree on top of the ebml and
// schema packages, and implements the SimpleBlock/BlockGroup/lacing
// layer that turns Cluster payloads into media frames.
package matroska

// Document is the root of a decoded Matroska file: the mandatory EBML
// header plus the single top-level Segment this package supports
// (multi-segment files are a streaming-navigator concern, out of
// scope here).
type Document struct {
	Header  EBMLHeader
	Segment Segment
}

// EBMLHeader mirrors the EBML master: the handshake every Matroska
// file opens with before its Segment.
type EBMLHeader struct {
	DocType            string
	DocTypeVersion     uint64
	DocTypeReadVersion uint64
	EBMLVersion        uint64
	EBMLReadVersion    uint64
	EBMLMaxIDLength    uint64
	EBMLMaxSizeLength  uint64
}

// Segment holds every top-level child this package understands.
// SeekHead, Cluster and Tags may repeat; the rest are singletons.
type Segment struct {
	SeekHeads   []SeekHead
	Info        *Info
	Tracks      []TrackEntry
	Cues        []CuePoint
	Chapters    []EditionEntry
	Tags        []Tag
	Attachments []AttachedFile
	Clusters    []Cluster
}

// SeekHead is a list of seek entries pointing at other top-level
// elements by byte offset; this package parses it but does not use it
// for navigation (that's the streaming navigator's job).
type SeekHead struct {
	Seeks []Seek
}

// Seek is one (element ID, byte offset) pointer.
type Seek struct {
	ID       []byte
	Position uint64
}

// Info carries the segment's timing and identification metadata.
type Info struct {
	TimestampScale uint64
	Duration       float64
	HasDuration    bool
	DateUTC        int64
	HasDateUTC     bool
	Title          string
	MuxingApp      string
	WritingApp     string
}

// TrackEntry describes one audio, video, or subtitle track.
type TrackEntry struct {
	TrackNumber      uint64
	TrackUID         uint64
	TrackType        uint64
	FlagEnabled      uint64
	FlagDefault      uint64
	FlagForced       uint64
	Language         string
	CodecID          string
	CodecPrivate     []byte
	CodecName        string
	Video            *Video
	Audio            *Audio
	ContentEncodings []ContentEncoding
}

// Video carries the pixel dimensions of a video track.
type Video struct {
	PixelWidth  uint64
	PixelHeight uint64
}

// Audio carries the sampling rate and channel count of an audio track.
type Audio struct {
	SamplingFrequency float64
	Channels          uint64
}

// ContentEncoding describes one transformation (currently only
// compression) applied to a track's frame payloads before muxing.
type ContentEncoding struct {
	CompAlgo    uint64
	HasCompAlgo bool
}

// Cluster holds one time window's worth of blocks.
type Cluster struct {
	Timestamp    uint64
	SimpleBlocks [][]byte
	BlockGroups  []BlockGroupRaw
}

// BlockGroupRaw is a BlockGroup's raw fields, ready for Frames() to
// turn the contained Block payload into typed frames.
type BlockGroupRaw struct {
	Block          []byte
	BlockDuration  uint64
	HasDuration    bool
	ReferenceBlock []int64
	DiscardPadding int64
}

// CuePoint is one entry of the cue index.
type CuePoint struct {
	CueTime        uint64
	TrackPositions []CueTrackPositions
}

// CueTrackPositions locates one track's data within a cue.
type CueTrackPositions struct {
	CueTrack           uint64
	CueClusterPosition uint64
}

// EditionEntry is one alternative chapter sequence.
type EditionEntry struct {
	Chapters []ChapterAtom
}

// ChapterAtom is one chapter; it may nest further chapters under
// itself, mirroring the self-recursive schema definition.
type ChapterAtom struct {
	ChapterTimeStart uint64
	Displays         []ChapterDisplay
	Children         []ChapterAtom
}

// ChapterDisplay is one localized chapter title.
type ChapterDisplay struct {
	ChapString string
}

// Tag is a group of SimpleTags. A Targets child is accepted on decode
// but not kept, and Encode writes none.
type Tag struct {
	SimpleTags []SimpleTag
}

// SimpleTag is one name/value metadata pair.
type SimpleTag struct {
	TagName   string
	TagString string
}

// AttachedFile is one embedded file (cover art, fonts, and so on).
type AttachedFile struct {
	FileName     string
	FileMimeType string
	FileData     []byte
}
