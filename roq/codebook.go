/*
NAME
  codebook.go

DESCRIPTION
  codebook.go holds the 256-entry 2x2 and 4x4 RGB565 codebooks, the
  YUV->RGB lookup tables, and the audio delta lookup table.

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

// codebookSize is the number of entries in each codebook.
const codebookSize = 256

// tile2x2 is four RGB565 pixels laid out as a 2x2 tile (row-major).
type tile2x2 [4]uint16

// tile4x4 is sixteen RGB565 pixels laid out as a 4x4 tile (row-major).
type tile4x4 [16]uint16

// codebookState holds the per-Stream codebooks and precomputed LUTs.
// LUTs are write-once at construction; the codebooks are overwritten
// on each codebook chunk.
type codebookState struct {
	cb2x2 [codebookSize]tile2x2
	cb4x4 [codebookSize]tile4x4

	yyLUT   [256]int16
	crRLUT  [256]int16
	cbBLUT  [256]int16
	crGLUT  [256]int16
	cbGLUT  [256]int16
	sndSqrLUT [256]int16
}

// newCodebookState builds the write-once LUTs from the standard YUV->RGB
// coefficients: Y scale 1.164 about 16; Cr->R 1.596 about 128; Cb->B
// 2.017 about 128; Cr->G -0.813 about 128; Cb->G -0.392 about 128.
// The audio delta table is the signed square: for i in [0,128), entry i
// is i^2 and entry i+128 is -(i^2).
func newCodebookState() *codebookState {
	cs := &codebookState{}
	for i := 0; i < 256; i++ {
		cs.yyLUT[i] = int16(1.164 * float64(i-16))
		cs.crRLUT[i] = int16(1.596 * float64(i-128))
		cs.cbBLUT[i] = int16(2.017 * float64(i-128))
		cs.crGLUT[i] = int16(-0.813 * float64(i-128))
		cs.cbGLUT[i] = int16(-0.392 * float64(i-128))
	}
	for i := 0; i < 128; i++ {
		sq := int16(i * i)
		cs.sndSqrLUT[i] = sq
		cs.sndSqrLUT[i+128] = -sq
	}
	return cs
}

func clampByte(v int16) int16 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// packRGB565 packs 8-bit R, G, B components into a single RGB565 value:
// 5 bits red, 6 bits green, 5 bits blue, MSB to LSB.
func packRGB565(r, g, b int16) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3
}

// yuvToRGB565 converts a single YUV sample to its clamped RGB565 packing
// using the codebook state's precomputed LUTs.
func (cs *codebookState) yuvToRGB565(y, u, v uint8) uint16 {
	yp := cs.yyLUT[y]
	r := clampByte(yp + cs.crRLUT[v])
	g := clampByte(yp + cs.crGLUT[v] + cs.cbGLUT[u])
	b := clampByte(yp + cs.cbBLUT[u])
	return packRGB565(r, g, b)
}

// unpackQuadCodebook decodes a QuadCodebook chunk payload into the
// cb2x2 and cb4x4 tables. It fails with BadCodebook
// if the declared counts don't exactly account for the payload size;
// that check runs before either pass, so on failure neither codebook
// has been modified.
func (cs *codebookState) unpackQuadCodebook(arg uint16, buf []byte) error {
	count2x2 := int(arg >> 8)
	if count2x2 == 0 {
		count2x2 = codebookSize
	}
	count4x4 := int(arg & 0xFF)
	if count4x4 == 0 && count2x2*6 < len(buf) {
		count4x4 = codebookSize
	}
	if count2x2*6+count4x4*4 != len(buf) {
		return newError("unpackQuadCodebook", BadCodebook, nil)
	}

	off := 0
	for i := 0; i < count2x2; i++ {
		y0, y1, y2, y3 := buf[off], buf[off+1], buf[off+2], buf[off+3]
		u, v := buf[off+4], buf[off+5]
		off += 6
		cs.cb2x2[i] = tile2x2{
			cs.yuvToRGB565(y0, u, v),
			cs.yuvToRGB565(y1, u, v),
			cs.yuvToRGB565(y2, u, v),
			cs.yuvToRGB565(y3, u, v),
		}
	}

	for i := 0; i < count4x4; i++ {
		var t tile4x4
		for q := 0; q < 4; q++ {
			idx := buf[off]
			off++
			src := cs.cb2x2[idx]
			// quadrants in raster order: top-left, top-right,
			// bottom-left, bottom-right.
			rowOff := (q / 2) * 8
			colOff := (q % 2) * 2
			t[rowOff+colOff+0] = src[0]
			t[rowOff+colOff+1] = src[1]
			t[rowOff+colOff+4] = src[2]
			t[rowOff+colOff+5] = src[3]
		}
		cs.cb4x4[i] = t
	}

	return nil
}
