package matroska

import (
	"github.com/gomkv/ebml"
	"github.com/gomkv/ebml/schema"
	"github.com/gomkv/ebml/vint"
)

// Encode writes doc as a full Matroska document: the EBML header
// followed by its one Segment.
func Encode(doc *Document) []byte {
	s := ebml.NewSink()

	headerBody := ebml.NewSink()
	encodeEBMLHeader(headerBody, doc.Header)
	ebml.EncodeHeader(s, ebml.Header{ID: schema.IDEBML, Size: vint.New(uint64(headerBody.Len()))})
	s.AppendSlice(headerBody.Bytes())

	segBody := ebml.NewSink()
	encodeSegment(segBody, doc.Segment)
	ebml.EncodeHeader(s, ebml.Header{ID: schema.IDSegment, Size: vint.New(uint64(segBody.Len()))})
	s.AppendSlice(segBody.Bytes())

	return s.Bytes()
}

func encodeEBMLHeader(s ebml.Sink, h EBMLHeader) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDDocType, Body: ebml.EncodeString(h.DocType)},
		{ID: schema.IDDocTypeVersion, Body: ebml.EncodeUint(h.DocTypeVersion)},
		{ID: schema.IDDocTypeReadVersion, Body: ebml.EncodeUint(h.DocTypeReadVersion)},
		{ID: schema.IDEBMLMaxIDLength, Body: ebml.EncodeUint(h.EBMLMaxIDLength)},
		{ID: schema.IDEBMLMaxSizeLength, Body: ebml.EncodeUint(h.EBMLMaxSizeLength)},
	}
	if h.EBMLVersion != 0 {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDEBMLVersion, Body: ebml.EncodeUint(h.EBMLVersion)})
	}
	if h.EBMLReadVersion != 0 {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDEBMLReadVersion, Body: ebml.EncodeUint(h.EBMLReadVersion)})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

// encodeSegment writes SeekHeads first, then Info and Tracks, then the
// Clusters, then Cues, Chapters, Tags and Attachments. Unlike the other
// encoders here, it does not put all repeated children after the
// optional singletons.
func encodeSegment(s ebml.Sink, seg Segment) {
	var entries []ebml.ChildEntry

	for _, sh := range seg.SeekHeads {
		b := ebml.NewSink()
		encodeSeekHead(b, sh)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDSeekHead, Body: b.Bytes()})
	}
	if seg.Info != nil {
		b := ebml.NewSink()
		encodeInfo(b, *seg.Info)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDInfo, Body: b.Bytes()})
	}
	if len(seg.Tracks) > 0 {
		b := ebml.NewSink()
		encodeTracks(b, seg.Tracks)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDTracks, Body: b.Bytes()})
	}
	for _, cl := range seg.Clusters {
		b := ebml.NewSink()
		encodeCluster(b, cl)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCluster, Body: b.Bytes()})
	}
	if len(seg.Cues) > 0 {
		b := ebml.NewSink()
		encodeCues(b, seg.Cues)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCues, Body: b.Bytes()})
	}
	if len(seg.Chapters) > 0 {
		b := ebml.NewSink()
		encodeChapters(b, seg.Chapters)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDChapters, Body: b.Bytes()})
	}
	if len(seg.Tags) > 0 {
		b := ebml.NewSink()
		encodeTags(b, seg.Tags)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDTags, Body: b.Bytes()})
	}
	if len(seg.Attachments) > 0 {
		b := ebml.NewSink()
		encodeAttachments(b, seg.Attachments)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDAttachments, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeSeekHead(s ebml.Sink, sh SeekHead) {
	var entries []ebml.ChildEntry
	for _, seek := range sh.Seeks {
		b := ebml.NewSink()
		ebml.EncodeMasterBody(b, nil, []ebml.ChildEntry{
			{ID: schema.IDSeekID, Body: seek.ID},
			{ID: schema.IDSeekPosition, Body: ebml.EncodeUint(seek.Position)},
		}, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDSeek, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeInfo(s ebml.Sink, info Info) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDTimestampScale, Body: ebml.EncodeUint(info.TimestampScale)},
	}
	if info.HasDuration {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDDuration, Body: ebml.EncodeFloat(info.Duration)})
	}
	if info.HasDateUTC {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDDateUTC, Body: ebml.EncodeDate(info.DateUTC)})
	}
	if info.Title != "" {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDTitle, Body: ebml.EncodeString(info.Title)})
	}
	if info.MuxingApp != "" {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDMuxingApp, Body: ebml.EncodeString(info.MuxingApp)})
	}
	if info.WritingApp != "" {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDWritingApp, Body: ebml.EncodeString(info.WritingApp)})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeTracks(s ebml.Sink, tracks []TrackEntry) {
	var entries []ebml.ChildEntry
	for _, te := range tracks {
		b := ebml.NewSink()
		encodeTrackEntry(b, te)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDTrackEntry, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeTrackEntry(s ebml.Sink, te TrackEntry) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDTrackNumber, Body: ebml.EncodeUint(te.TrackNumber)},
		{ID: schema.IDTrackUID, Body: ebml.EncodeUint(te.TrackUID)},
		{ID: schema.IDTrackType, Body: ebml.EncodeUint(te.TrackType)},
		{ID: schema.IDFlagEnabled, Body: ebml.EncodeUint(te.FlagEnabled)},
		{ID: schema.IDFlagDefault, Body: ebml.EncodeUint(te.FlagDefault)},
		{ID: schema.IDFlagForced, Body: ebml.EncodeUint(te.FlagForced)},
		{ID: schema.IDLanguage, Body: ebml.EncodeString(te.Language)},
	}
	if te.CodecID != "" {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCodecID, Body: ebml.EncodeString(te.CodecID)})
	}
	if te.CodecPrivate != nil {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCodecPrivate, Body: te.CodecPrivate})
	}
	if te.CodecName != "" {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCodecName, Body: ebml.EncodeUTF8(te.CodecName)})
	}
	if te.Video != nil {
		b := ebml.NewSink()
		ebml.EncodeMasterBody(b, nil, []ebml.ChildEntry{
			{ID: schema.IDPixelWidth, Body: ebml.EncodeUint(te.Video.PixelWidth)},
			{ID: schema.IDPixelHeight, Body: ebml.EncodeUint(te.Video.PixelHeight)},
		}, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDVideo, Body: b.Bytes()})
	}
	if te.Audio != nil {
		b := ebml.NewSink()
		ebml.EncodeMasterBody(b, nil, []ebml.ChildEntry{
			{ID: schema.IDSamplingFrequency, Body: ebml.EncodeFloat(te.Audio.SamplingFrequency)},
			{ID: schema.IDChannels, Body: ebml.EncodeUint(te.Audio.Channels)},
		}, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDAudio, Body: b.Bytes()})
	}
	if len(te.ContentEncodings) > 0 {
		b := ebml.NewSink()
		var ceEntries []ebml.ChildEntry
		for _, ce := range te.ContentEncodings {
			ceb := ebml.NewSink()
			if ce.HasCompAlgo {
				compb := ebml.NewSink()
				ebml.EncodeMasterBody(compb, nil, []ebml.ChildEntry{
					{ID: schema.IDContentCompAlgo, Body: ebml.EncodeUint(ce.CompAlgo)},
				}, 0)
				ebml.EncodeMasterBody(ceb, nil, []ebml.ChildEntry{
					{ID: schema.IDContentCompression, Body: compb.Bytes()},
				}, 0)
			}
			ceEntries = append(ceEntries, ebml.ChildEntry{ID: schema.IDContentEncoding, Body: ceb.Bytes()})
		}
		ebml.EncodeMasterBody(b, nil, ceEntries, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDContentEncodings, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeCluster(s ebml.Sink, cl Cluster) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDTimestamp, Body: ebml.EncodeUint(cl.Timestamp)},
	}
	for _, sb := range cl.SimpleBlocks {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDSimpleBlock, Body: sb})
	}
	for _, bg := range cl.BlockGroups {
		b := ebml.NewSink()
		encodeBlockGroup(b, bg)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDBlockGroup, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeBlockGroup(s ebml.Sink, bg BlockGroupRaw) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDBlock, Body: bg.Block},
	}
	if bg.HasDuration {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDBlockDuration, Body: ebml.EncodeUint(bg.BlockDuration)})
	}
	if bg.DiscardPadding != 0 {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDDiscardPadding, Body: ebml.EncodeInt(bg.DiscardPadding)})
	}
	for _, ref := range bg.ReferenceBlock {
		entries = append(entries, ebml.ChildEntry{ID: schema.IDReferenceBlock, Body: ebml.EncodeInt(ref)})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeCues(s ebml.Sink, cues []CuePoint) {
	var entries []ebml.ChildEntry
	for _, cp := range cues {
		b := ebml.NewSink()
		var posEntries []ebml.ChildEntry
		for _, tp := range cp.TrackPositions {
			pb := ebml.NewSink()
			ebml.EncodeMasterBody(pb, nil, []ebml.ChildEntry{
				{ID: schema.IDCueTrack, Body: ebml.EncodeUint(tp.CueTrack)},
				{ID: schema.IDCueClusterPosition, Body: ebml.EncodeUint(tp.CueClusterPosition)},
			}, 0)
			posEntries = append(posEntries, ebml.ChildEntry{ID: schema.IDCueTrackPositions, Body: pb.Bytes()})
		}
		cpEntries := append([]ebml.ChildEntry{
			{ID: schema.IDCueTime, Body: ebml.EncodeUint(cp.CueTime)},
		}, posEntries...)
		ebml.EncodeMasterBody(b, nil, cpEntries, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDCuePoint, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeChapters(s ebml.Sink, editions []EditionEntry) {
	var entries []ebml.ChildEntry
	for _, ee := range editions {
		b := ebml.NewSink()
		var atoms []ebml.ChildEntry
		for _, ca := range ee.Chapters {
			ab := ebml.NewSink()
			encodeChapterAtom(ab, ca)
			atoms = append(atoms, ebml.ChildEntry{ID: schema.IDChapterAtom, Body: ab.Bytes()})
		}
		ebml.EncodeMasterBody(b, nil, atoms, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDEditionEntry, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeChapterAtom(s ebml.Sink, ca ChapterAtom) {
	entries := []ebml.ChildEntry{
		{ID: schema.IDChapterTimeStart, Body: ebml.EncodeUint(ca.ChapterTimeStart)},
	}
	for _, d := range ca.Displays {
		db := ebml.NewSink()
		ebml.EncodeMasterBody(db, nil, []ebml.ChildEntry{
			{ID: schema.IDChapString, Body: ebml.EncodeUTF8(d.ChapString)},
		}, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDChapterDisplay, Body: db.Bytes()})
	}
	for _, child := range ca.Children {
		cb := ebml.NewSink()
		encodeChapterAtom(cb, child)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDChapterAtom, Body: cb.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeTags(s ebml.Sink, tags []Tag) {
	var entries []ebml.ChildEntry
	for _, tag := range tags {
		b := ebml.NewSink()
		var simpleEntries []ebml.ChildEntry
		for _, st := range tag.SimpleTags {
			sb := ebml.NewSink()
			ebml.EncodeMasterBody(sb, nil, []ebml.ChildEntry{
				{ID: schema.IDTagName, Body: ebml.EncodeUTF8(st.TagName)},
				{ID: schema.IDTagString, Body: ebml.EncodeUTF8(st.TagString)},
			}, 0)
			simpleEntries = append(simpleEntries, ebml.ChildEntry{ID: schema.IDSimpleTag, Body: sb.Bytes()})
		}
		ebml.EncodeMasterBody(b, nil, simpleEntries, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDTag, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}

func encodeAttachments(s ebml.Sink, atts []AttachedFile) {
	var entries []ebml.ChildEntry
	for _, af := range atts {
		b := ebml.NewSink()
		ebml.EncodeMasterBody(b, nil, []ebml.ChildEntry{
			{ID: schema.IDFileName, Body: ebml.EncodeUTF8(af.FileName)},
			{ID: schema.IDFileMimeType, Body: ebml.EncodeString(af.FileMimeType)},
			{ID: schema.IDFileData, Body: af.FileData},
		}, 0)
		entries = append(entries, ebml.ChildEntry{ID: schema.IDAttachedFile, Body: b.Bytes()})
	}
	ebml.EncodeMasterBody(s, nil, entries, 0)
}
