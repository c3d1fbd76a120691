/*
NAME
  frame.go

DESCRIPTION
  frame.go implements Frame, one owned RGB565 surface of the Stream's
  ping-pong pair, and the block-painting primitives VideoDecoder uses.

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

// Frame is one owned RGB565 surface of size stride x texHeight,
// zero-initialized at creation.
type Frame struct {
	pix      []uint16
	stride   int
	texHeight int
}

func newFrame(stride, texHeight int) *Frame {
	return &Frame{
		pix:      make([]uint16, stride*texHeight),
		stride:   stride,
		texHeight: texHeight,
	}
}

// Pix returns the frame's packed RGB565 pixel data, row-major with the
// frame's stride.
func (f *Frame) Pix() []uint16 { return f.pix }

// Stride returns the frame's row stride in pixels.
func (f *Frame) Stride() int { return f.stride }

// TexHeight returns the frame's allocated height in pixels.
func (f *Frame) TexHeight() int { return f.texHeight }

func (f *Frame) at(x, y int) int { return y*f.stride + x }

// copyBlockFrom copies a size x size block from src at (srcX,srcY) into
// f at (dstX,dstY). Used for both MOT (src is the last frame, same
// coordinates) and FCC (motion-compensated source offset): MOT is
// treated as an explicit copy from the last frame rather than a no-op.
func (f *Frame) copyBlockFrom(src *Frame, dstX, dstY, srcX, srcY, size int) error {
	for row := 0; row < size; row++ {
		so := src.at(srcX, srcY+row)
		do := f.at(dstX, dstY+row)
		copy(f.pix[do:do+size], src.pix[so:so+size])
	}
	return nil
}

// paintUpsampled4x4 writes a 4x4 codebook tile into an 8x8 destination
// region, replicating each source pixel into a 2x2 destination square
// (SLD at the 8x8 level).
func (f *Frame) paintUpsampled4x4(t tile4x4, x, y int) {
	for i := 0; i < 16; i++ {
		row, col := i/4, i%4
		v := t[i]
		o := f.at(x+col*2, y+row*2)
		f.pix[o] = v
		f.pix[o+1] = v
		o += f.stride
		f.pix[o] = v
		f.pix[o+1] = v
	}
}

// paintTile4x4 writes a 4x4 codebook tile verbatim into a 4x4
// destination region (SLD at the 4x4 level).
func (f *Frame) paintTile4x4(t tile4x4, x, y int) {
	for row := 0; row < 4; row++ {
		o := f.at(x, y+row)
		copy(f.pix[o:o+4], t[row*4:row*4+4])
	}
}

// paintTile2x2 writes a 2x2 codebook tile into a 2x2 destination region
// (the innermost CCC split).
func (f *Frame) paintTile2x2(t tile2x2, x, y int) {
	o := f.at(x, y)
	f.pix[o] = t[0]
	f.pix[o+1] = t[1]
	o += f.stride
	f.pix[o] = t[2]
	f.pix[o+1] = t[3]
}
