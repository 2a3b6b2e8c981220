package matroska

import (
	"fmt"

	"github.com/gomkv/ebml"
	"github.com/gomkv/ebml/schema"
)

// decoder carries the per-call options through the recursive descent;
// it has no mutable state; ChapterAtom nesting depth is passed down as
// an argument.
type decoder struct {
	opts options
}

// spec fetches id's MasterSpec from the catalogue and applies this
// decode call's duplicate-tolerance option.
func (d *decoder) spec(id ebml.ElementID) ebml.MasterSpec {
	s, _ := schema.Default.MasterSpec(id)
	s.AllowDuplicates = !d.opts.strictDuplicate
	return s
}

// Decode reads a full Matroska document (EBML header + one Segment)
// from buf.
func Decode(buf []byte, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &decoder{opts: o}

	c := ebml.NewCursor(buf)

	h, err := ebml.DecodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("matroska: decode EBML header: %w", err)
	}
	if h.ID != schema.IDEBML {
		return nil, fmt.Errorf("matroska: expected EBML element, got %s", h.ID)
	}
	body, err := sliceBody(c, h)
	if err != nil {
		return nil, fmt.Errorf("matroska: read EBML body: %w", err)
	}
	header, err := d.decodeEBMLHeader(body)
	if err != nil {
		return nil, fmt.Errorf("matroska: decode EBML header: %w", err)
	}

	h, err = ebml.DecodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("matroska: decode Segment header: %w", err)
	}
	if h.ID != schema.IDSegment {
		return nil, fmt.Errorf("matroska: expected Segment element, got %s", h.ID)
	}
	body, err = sliceBody(c, h)
	if err != nil {
		return nil, fmt.Errorf("matroska: read Segment body: %w", err)
	}
	segment, err := d.decodeSegment(body)
	if err != nil {
		return nil, fmt.Errorf("matroska: decode Segment: %w", err)
	}

	return &Document{Header: header, Segment: segment}, nil
}

// sliceBody reads h's declared-size body out of c and advances past
// it; Decode requires every element's size to be known, unlike the
// streaming navigator this package does not implement.
func sliceBody(c ebml.Cursor, h ebml.Header) ([]byte, error) {
	if h.Size.IsUnknown {
		return nil, &ebml.BodySizeUnknownError{ID: h.ID}
	}
	body, err := c.Slice(int(h.Size.Value))
	if err != nil {
		return nil, err
	}
	if err := c.Advance(int(h.Size.Value)); err != nil {
		return nil, err
	}
	return body, nil
}

func (d *decoder) decodeEBMLHeader(body []byte) (EBMLHeader, error) {
	h := EBMLHeader{
		EBMLVersion:        1,
		EBMLReadVersion:    1,
		EBMLMaxIDLength:    4,
		EBMLMaxSizeLength:  8,
		DocTypeVersion:     1,
		DocTypeReadVersion: 1,
	}
	spec := d.spec(schema.IDEBML)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDDocType:
			h.DocType = ebml.DecodeString(b)
		case schema.IDDocTypeVersion:
			h.DocTypeVersion = ebml.DecodeUint(b)
		case schema.IDDocTypeReadVersion:
			h.DocTypeReadVersion = ebml.DecodeUint(b)
		case schema.IDEBMLVersion:
			h.EBMLVersion = ebml.DecodeUint(b)
		case schema.IDEBMLReadVersion:
			h.EBMLReadVersion = ebml.DecodeUint(b)
		case schema.IDEBMLMaxIDLength:
			h.EBMLMaxIDLength = ebml.DecodeUint(b)
		case schema.IDEBMLMaxSizeLength:
			h.EBMLMaxSizeLength = ebml.DecodeUint(b)
		}
		return nil
	})
	return h, err
}

func (d *decoder) decodeSegment(body []byte) (Segment, error) {
	var seg Segment
	spec := d.spec(schema.IDSegment)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDSeekHead:
			sh, err := d.decodeSeekHead(b)
			if err != nil {
				return err
			}
			seg.SeekHeads = append(seg.SeekHeads, sh)
		case schema.IDInfo:
			info, err := d.decodeInfo(b)
			if err != nil {
				return err
			}
			seg.Info = &info
		case schema.IDTracks:
			tracks, err := d.decodeTracks(b)
			if err != nil {
				return err
			}
			seg.Tracks = tracks
		case schema.IDCues:
			cues, err := d.decodeCues(b)
			if err != nil {
				return err
			}
			seg.Cues = cues
		case schema.IDChapters:
			chapters, err := d.decodeChapters(b)
			if err != nil {
				return err
			}
			seg.Chapters = chapters
		case schema.IDTags:
			tags, err := d.decodeTags(b)
			if err != nil {
				return err
			}
			seg.Tags = append(seg.Tags, tags...)
		case schema.IDAttachments:
			atts, err := d.decodeAttachments(b)
			if err != nil {
				return err
			}
			seg.Attachments = atts
		case schema.IDCluster:
			cl, err := d.decodeCluster(b)
			if err != nil {
				return err
			}
			seg.Clusters = append(seg.Clusters, cl)
		}
		return nil
	})
	return seg, err
}

func (d *decoder) decodeSeekHead(body []byte) (SeekHead, error) {
	var sh SeekHead
	spec := d.spec(schema.IDSeekHead)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDSeek {
			return nil
		}
		seek, err := d.decodeSeek(b)
		if err != nil {
			return err
		}
		sh.Seeks = append(sh.Seeks, seek)
		return nil
	})
	return sh, err
}

func (d *decoder) decodeSeek(body []byte) (Seek, error) {
	var s Seek
	spec := d.spec(schema.IDSeek)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDSeekID:
			s.ID = append([]byte(nil), b...)
		case schema.IDSeekPosition:
			s.Position = ebml.DecodeUint(b)
		}
		return nil
	})
	return s, err
}

func (d *decoder) decodeInfo(body []byte) (Info, error) {
	info := Info{TimestampScale: 1000000}
	spec := d.spec(schema.IDInfo)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDTimestampScale:
			info.TimestampScale = ebml.DecodeUint(b)
		case schema.IDDuration:
			info.Duration = ebml.DecodeFloat(b)
			info.HasDuration = true
		case schema.IDDateUTC:
			info.DateUTC = ebml.DecodeDate(b)
			info.HasDateUTC = true
		case schema.IDTitle:
			info.Title = ebml.DecodeUTF8(b)
		case schema.IDMuxingApp:
			info.MuxingApp = ebml.DecodeUTF8(b)
		case schema.IDWritingApp:
			info.WritingApp = ebml.DecodeUTF8(b)
		}
		return nil
	})
	return info, err
}

func (d *decoder) decodeTracks(body []byte) ([]TrackEntry, error) {
	var entries []TrackEntry
	spec := d.spec(schema.IDTracks)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDTrackEntry {
			return nil
		}
		entry, err := d.decodeTrackEntry(b)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func (d *decoder) decodeTrackEntry(body []byte) (TrackEntry, error) {
	te := TrackEntry{FlagEnabled: 1, FlagDefault: 1, FlagForced: 0, Language: "eng"}
	spec := d.spec(schema.IDTrackEntry)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDTrackNumber:
			te.TrackNumber = ebml.DecodeUint(b)
		case schema.IDTrackUID:
			te.TrackUID = ebml.DecodeUint(b)
		case schema.IDTrackType:
			te.TrackType = ebml.DecodeUint(b)
		case schema.IDFlagEnabled:
			te.FlagEnabled = ebml.DecodeUint(b)
		case schema.IDFlagDefault:
			te.FlagDefault = ebml.DecodeUint(b)
		case schema.IDFlagForced:
			te.FlagForced = ebml.DecodeUint(b)
		case schema.IDLanguage:
			te.Language = ebml.DecodeString(b)
		case schema.IDCodecID:
			te.CodecID = ebml.DecodeString(b)
		case schema.IDCodecPrivate:
			te.CodecPrivate = append([]byte(nil), b...)
		case schema.IDCodecName:
			te.CodecName = ebml.DecodeUTF8(b)
		case schema.IDVideo:
			v, err := d.decodeVideo(b)
			if err != nil {
				return err
			}
			te.Video = &v
		case schema.IDAudio:
			a, err := d.decodeAudio(b)
			if err != nil {
				return err
			}
			te.Audio = &a
		case schema.IDContentEncodings:
			ce, err := d.decodeContentEncodings(b)
			if err != nil {
				return err
			}
			te.ContentEncodings = ce
		}
		return nil
	})
	return te, err
}

func (d *decoder) decodeVideo(body []byte) (Video, error) {
	var v Video
	spec := d.spec(schema.IDVideo)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDPixelWidth:
			v.PixelWidth = ebml.DecodeUint(b)
		case schema.IDPixelHeight:
			v.PixelHeight = ebml.DecodeUint(b)
		}
		return nil
	})
	return v, err
}

func (d *decoder) decodeAudio(body []byte) (Audio, error) {
	a := Audio{SamplingFrequency: 8000, Channels: 1}
	spec := d.spec(schema.IDAudio)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDSamplingFrequency:
			a.SamplingFrequency = ebml.DecodeFloat(b)
		case schema.IDChannels:
			a.Channels = ebml.DecodeUint(b)
		}
		return nil
	})
	return a, err
}

func (d *decoder) decodeContentEncodings(body []byte) ([]ContentEncoding, error) {
	var out []ContentEncoding
	spec := d.spec(schema.IDContentEncodings)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDContentEncoding {
			return nil
		}
		ce, err := d.decodeContentEncoding(b)
		if err != nil {
			return err
		}
		out = append(out, ce)
		return nil
	})
	return out, err
}

func (d *decoder) decodeContentEncoding(body []byte) (ContentEncoding, error) {
	var ce ContentEncoding
	spec := d.spec(schema.IDContentEncoding)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDContentCompression {
			return nil
		}
		compSpec := d.spec(schema.IDContentCompression)
		_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(b), compSpec, func(innerID ebml.ElementID, innerBody []byte) error {
			if innerID == schema.IDContentCompAlgo {
				ce.CompAlgo = ebml.DecodeUint(innerBody)
				ce.HasCompAlgo = true
			}
			return nil
		})
		return err
	})
	return ce, err
}

func (d *decoder) decodeCluster(body []byte) (Cluster, error) {
	var cl Cluster
	spec := d.spec(schema.IDCluster)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDTimestamp:
			cl.Timestamp = ebml.DecodeUint(b)
		case schema.IDSimpleBlock:
			cl.SimpleBlocks = append(cl.SimpleBlocks, append([]byte(nil), b...))
		case schema.IDBlockGroup:
			bg, err := d.decodeBlockGroup(b)
			if err != nil {
				return err
			}
			cl.BlockGroups = append(cl.BlockGroups, bg)
		}
		return nil
	})
	return cl, err
}

func (d *decoder) decodeBlockGroup(body []byte) (BlockGroupRaw, error) {
	var bg BlockGroupRaw
	spec := d.spec(schema.IDBlockGroup)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDBlock:
			bg.Block = append([]byte(nil), b...)
		case schema.IDBlockDuration:
			bg.BlockDuration = ebml.DecodeUint(b)
			bg.HasDuration = true
		case schema.IDReferenceBlock:
			bg.ReferenceBlock = append(bg.ReferenceBlock, ebml.DecodeInt(b))
		case schema.IDDiscardPadding:
			bg.DiscardPadding = ebml.DecodeInt(b)
		}
		return nil
	})
	return bg, err
}

func (d *decoder) decodeCues(body []byte) ([]CuePoint, error) {
	var cues []CuePoint
	spec := d.spec(schema.IDCues)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDCuePoint {
			return nil
		}
		cp, err := d.decodeCuePoint(b)
		if err != nil {
			return err
		}
		cues = append(cues, cp)
		return nil
	})
	return cues, err
}

func (d *decoder) decodeCuePoint(body []byte) (CuePoint, error) {
	var cp CuePoint
	spec := d.spec(schema.IDCuePoint)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDCueTime:
			cp.CueTime = ebml.DecodeUint(b)
		case schema.IDCueTrackPositions:
			ctp, err := d.decodeCueTrackPositions(b)
			if err != nil {
				return err
			}
			cp.TrackPositions = append(cp.TrackPositions, ctp)
		}
		return nil
	})
	return cp, err
}

func (d *decoder) decodeCueTrackPositions(body []byte) (CueTrackPositions, error) {
	var ctp CueTrackPositions
	spec := d.spec(schema.IDCueTrackPositions)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDCueTrack:
			ctp.CueTrack = ebml.DecodeUint(b)
		case schema.IDCueClusterPosition:
			ctp.CueClusterPosition = ebml.DecodeUint(b)
		}
		return nil
	})
	return ctp, err
}

func (d *decoder) decodeChapters(body []byte) ([]EditionEntry, error) {
	var editions []EditionEntry
	spec := d.spec(schema.IDChapters)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDEditionEntry {
			return nil
		}
		ee, err := d.decodeEditionEntry(b, 0)
		if err != nil {
			return err
		}
		editions = append(editions, ee)
		return nil
	})
	return editions, err
}

func (d *decoder) decodeEditionEntry(body []byte, depth int) (EditionEntry, error) {
	var ee EditionEntry
	spec := d.spec(schema.IDEditionEntry)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDChapterAtom {
			return nil
		}
		ca, err := d.decodeChapterAtom(b, depth+1)
		if err != nil {
			return err
		}
		ee.Chapters = append(ee.Chapters, ca)
		return nil
	})
	return ee, err
}

// decodeChapterAtom recurses into nested ChapterAtoms, guarded by
// opts.maxDepth since the schema allows unbounded self-nesting.
func (d *decoder) decodeChapterAtom(body []byte, depth int) (ChapterAtom, error) {
	if depth > d.opts.maxDepth {
		return ChapterAtom{}, fmt.Errorf("matroska: ChapterAtom nesting exceeds max depth %d", d.opts.maxDepth)
	}
	var ca ChapterAtom
	spec := d.spec(schema.IDChapterAtom)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDChapterTimeStart:
			ca.ChapterTimeStart = ebml.DecodeUint(b)
		case schema.IDChapterDisplay:
			cd, err := d.decodeChapterDisplay(b)
			if err != nil {
				return err
			}
			ca.Displays = append(ca.Displays, cd)
		case schema.IDChapterAtom:
			child, err := d.decodeChapterAtom(b, depth+1)
			if err != nil {
				return err
			}
			ca.Children = append(ca.Children, child)
		}
		return nil
	})
	return ca, err
}

func (d *decoder) decodeChapterDisplay(body []byte) (ChapterDisplay, error) {
	var cd ChapterDisplay
	spec := d.spec(schema.IDChapterDisplay)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id == schema.IDChapString {
			cd.ChapString = ebml.DecodeUTF8(b)
		}
		return nil
	})
	return cd, err
}

func (d *decoder) decodeTags(body []byte) ([]Tag, error) {
	var tags []Tag
	spec := d.spec(schema.IDTags)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDTag {
			return nil
		}
		tag, err := d.decodeTag(b)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
		return nil
	})
	return tags, err
}

func (d *decoder) decodeTag(body []byte) (Tag, error) {
	var tag Tag
	spec := d.spec(schema.IDTag)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDSimpleTag {
			return nil
		}
		st, err := d.decodeSimpleTag(b)
		if err != nil {
			return err
		}
		tag.SimpleTags = append(tag.SimpleTags, st)
		return nil
	})
	return tag, err
}

func (d *decoder) decodeSimpleTag(body []byte) (SimpleTag, error) {
	var st SimpleTag
	spec := d.spec(schema.IDSimpleTag)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDTagName:
			st.TagName = ebml.DecodeUTF8(b)
		case schema.IDTagString:
			st.TagString = ebml.DecodeUTF8(b)
		}
		return nil
	})
	return st, err
}

func (d *decoder) decodeAttachments(body []byte) ([]AttachedFile, error) {
	var atts []AttachedFile
	spec := d.spec(schema.IDAttachments)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		if id != schema.IDAttachedFile {
			return nil
		}
		af, err := d.decodeAttachedFile(b)
		if err != nil {
			return err
		}
		atts = append(atts, af)
		return nil
	})
	return atts, err
}

func (d *decoder) decodeAttachedFile(body []byte) (AttachedFile, error) {
	var af AttachedFile
	spec := d.spec(schema.IDAttachedFile)
	_, _, err := ebml.DecodeMasterBody(ebml.NewCursor(body), spec, func(id ebml.ElementID, b []byte) error {
		switch id {
		case schema.IDFileName:
			af.FileName = ebml.DecodeUTF8(b)
		case schema.IDFileMimeType:
			af.FileMimeType = ebml.DecodeString(b)
		case schema.IDFileData:
			af.FileData = append([]byte(nil), b...)
		}
		return nil
	})
	return af, err
}
