package matroska

import (
	"encoding/binary"
	"fmt"

	"github.com/gomkv/ebml/vint"
)

const (
	flagKeyframe    = 0x80
	flagInvisible   = 0x08
	flagDiscardable = 0x01
	flagLacingMask  = 0x06
	flagLacingShift = 1
)

const (
	lacingNone  = 0
	lacingXiph  = 1
	lacingFixed = 2
	lacingEBML  = 3
)

// parsedBlock is the common layout shared by SimpleBlock and the Block
// nested in a BlockGroup: track number, cluster-relative timestamp,
// flags, and the frame payloads the lacing code unpacked.
type parsedBlock struct {
	track  uint64
	relTS  int16
	flags  byte
	frames [][]byte
}

func parseBlock(data []byte) (parsedBlock, error) {
	track, n, err := vint.Decode(data)
	if err != nil {
		return parsedBlock{}, fmt.Errorf("matroska: block track number: %w", err)
	}
	data = data[n:]
	if len(data) < 3 {
		return parsedBlock{}, fmt.Errorf("matroska: block too short for timestamp and flags")
	}
	relTS := int16(binary.BigEndian.Uint16(data[:2]))
	flags := data[2]
	payload := data[3:]

	lacingCode := (flags & flagLacingMask) >> flagLacingShift
	var frames [][]byte
	var err2 error
	switch lacingCode {
	case lacingNone:
		frames = [][]byte{payload}
	case lacingXiph:
		frames, err2 = unlaceXiph(payload)
	case lacingFixed:
		frames, err2 = unlaceFixed(payload)
	case lacingEBML:
		frames, err2 = unlaceEBML(payload)
	}
	if err2 != nil {
		return parsedBlock{}, err2
	}

	return parsedBlock{track: track.Value, relTS: relTS, flags: flags, frames: frames}, nil
}

func (b parsedBlock) isKeyframe() bool  { return b.flags&flagKeyframe != 0 }
func (b parsedBlock) isInvisible() bool { return b.flags&flagInvisible != 0 }
func (b parsedBlock) isDiscardable() bool {
	return b.flags&flagDiscardable != 0
}
