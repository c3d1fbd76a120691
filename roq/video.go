/*
NAME
  video.go

DESCRIPTION
  video.go implements recursive VQ macroblock reconstruction with motion
  compensation against the previous frame.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package roq

// Block modes, drawn two bits at a time from the mode-word bitstream.
const (
	modeMOT = 0 // skip: retain last frame's block.
	modeFCC = 1 // motion compensation.
	modeSLD = 2 // codebook tile, verbatim or upsampled.
	modeCCC = 3 // subdivide into four smaller blocks.
)

// modeReader draws 2-bit block modes from little-endian 16-bit words
// embedded in the chunk payload, and single bytes for opcode operands,
// both from the same linear cursor into buf, matching the original
// dreamroqlib bytestream management.
type modeReader struct {
	buf       []byte
	index     int
	wordBits  uint   // bits remaining un-consumed in wordVal
	wordVal   uint16 // current 16-bit mode word
}

func newModeReader(buf []byte) *modeReader {
	return &modeReader{buf: buf}
}

func (m *modeReader) getByte() (byte, bool) {
	if m.index >= len(m.buf) {
		return 0, false
	}
	b := m.buf[m.index]
	m.index++
	return b, true
}

func (m *modeReader) getMode() (int, bool) {
	if m.wordBits == 0 {
		lo, ok := m.getByte()
		if !ok {
			return 0, false
		}
		hi, ok := m.getByte()
		if !ok {
			return 0, false
		}
		m.wordVal = uint16(hi)<<8 | uint16(lo)
		m.wordBits = 16
	}
	m.wordBits -= 2
	return int((m.wordVal >> m.wordBits) & 0x3), true
}

// videoDecoder is an empty type with no methods. QuadVQ chunks are
// decoded by Stream.decodeVQ and Stream.decodeBlock; all persistent
// state (codebooks, dimensions, frame parity) lives on Stream.
type videoDecoder struct{}

// decodeVQ reconstructs one frame from a QuadVQ chunk payload into the
// "this" frame of s's ping-pong buffer, motion-compensating against the
// "last" frame. On success it returns the freshly decoded frame; on any
// bitstream or bounds violation it returns BadVQStream and the frame is
// discarded (the ping-pong parity is not advanced).
func (s *Stream) decodeVQ(arg uint16, payload []byte) (*Frame, error) {
	mx := int(int8(arg >> 8))
	my := int(int8(arg))

	nextCount := s.vqCount + 1
	thisIdx := nextCount % 2
	this := s.frames[thisIdx]
	last := s.frames[1-thisIdx]

	mr := newModeReader(payload)

	for mbY := 0; mbY < s.mbH; mbY++ {
		for mbX := 0; mbX < s.mbW; mbX++ {
			blockX0, blockY0 := mbX*16, mbY*16
			for b := 0; b < 4; b++ {
				bx := blockX0 + (b%2)*8
				by := blockY0 + (b/2)*8
				mode, ok := mr.getMode()
				if !ok {
					return nil, newError("decodeVQ", BadVQStream, nil)
				}
				if err := s.decodeBlock(mr, this, last, mode, bx, by, 8, mx, my); err != nil {
					return nil, err
				}
			}
		}
	}

	// End-of-chunk invariant: cursor must land within 2 bytes of the end.
	if mr.index < len(payload)-2 {
		return nil, newError("decodeVQ", BadVQStream, nil)
	}

	s.vqCount = nextCount
	return this, nil
}

// decodeBlock decodes a single size x size block (8x8 at the macroblock
// level, or 4x4 when recursing from a CCC split) at (bx,by) in this,
// per the mode drawn for it.
func (s *Stream) decodeBlock(mr *modeReader, this, last *Frame, mode, bx, by, size, mx, my int) error {
	switch mode {
	case modeMOT:
		return this.copyBlockFrom(last, bx, by, bx, by, size)

	case modeFCC:
		d, ok := mr.getByte()
		if !ok {
			return newError("decodeBlock", BadVQStream, nil)
		}
		srcX := bx + 8 - int(d>>4) - mx
		srcY := by + 8 - int(d&0xF) - my
		if srcX < 0 || srcY < 0 || srcX+size > this.stride || srcY+size > this.texHeight {
			return newError("decodeBlock", BadVQStream, nil)
		}
		return this.copyBlockFrom(last, bx, by, srcX, srcY, size)

	case modeSLD:
		idx, ok := mr.getByte()
		if !ok {
			return newError("decodeBlock", BadVQStream, nil)
		}
		if size == 8 {
			this.paintUpsampled4x4(s.cb.cb4x4[idx], bx, by)
		} else {
			this.paintTile4x4(s.cb.cb4x4[idx], bx, by)
		}
		return nil

	case modeCCC:
		if size == 4 {
			// Innermost split: four 2x2 codebook tiles, one per quadrant.
			for q := 0; q < 4; q++ {
				idx, ok := mr.getByte()
				if !ok {
					return newError("decodeBlock", BadVQStream, nil)
				}
				qx := bx + (q%2)*2
				qy := by + (q/2)*2
				this.paintTile2x2(s.cb.cb2x2[idx], qx, qy)
			}
			return nil
		}
		// Subdivide size x size into four (size/2)x(size/2) subblocks,
		// each with its own mode drawn from the same bit source.
		half := size / 2
		for sb := 0; sb < 4; sb++ {
			sx := bx + (sb%2)*half
			sy := by + (sb/2)*half
			subMode, ok := mr.getMode()
			if !ok {
				return newError("decodeBlock", BadVQStream, nil)
			}
			if err := s.decodeBlock(mr, this, last, subMode, sx, sy, half, mx, my); err != nil {
				return err
			}
		}
		return nil
	}
	return newError("decodeBlock", BadVQStream, nil)
}
