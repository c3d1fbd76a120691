//go:build withcv
// +build withcv

/*
NAME
  previewsink.go

DESCRIPTION
  previewsink.go implements player.RenderSink as a desktop preview
  window, gated behind the withcv build tag exactly as cmd/rv/probe.go
  gates its GoCV-dependent turbidity probe. It is a non-hardware
  stand-in for a tile/texture uploader: it unpacks RGB565 into an
  image.RGBA, upscales it with golang.org/x/image/draw for legibility,
  and displays it with gocv.IMShow.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package previewsink

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"gocv.io/x/gocv"

	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

// Sink displays decoded frames in a GoCV window, scaled up by factor.
type Sink struct {
	l      logging.Logger
	win    *gocv.Window
	factor int

	rgba *image.RGBA
	out  *image.RGBA
	mat  gocv.Mat
}

// New returns a Sink titled title, upscaling frames by factor (at
// least 1).
func New(l logging.Logger, title string, factor int) *Sink {
	if factor < 1 {
		factor = 1
	}
	return &Sink{l: l, win: gocv.NewWindow(title), factor: factor}
}

// Upload unpacks frame's RGB565 pixels for width x height into an
// RGBA buffer, cropping off the stride/texHeight padding.
func (s *Sink) Upload(frame *roq.Frame, width, height, stride, texHeight int) error {
	if s.rgba == nil || s.rgba.Rect.Dx() != width || s.rgba.Rect.Dy() != height {
		s.rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		s.out = image.NewRGBA(image.Rect(0, 0, width*s.factor, height*s.factor))
	}

	pix := frame.Pix()
	for y := 0; y < height; y++ {
		row := y * stride
		for x := 0; x < width; x++ {
			v := pix[row+x]
			r := uint8((v>>11)&0x1F) << 3
			g := uint8((v>>5)&0x3F) << 2
			b := uint8(v&0x1F) << 3
			o := s.rgba.PixOffset(x, y)
			s.rgba.Pix[o] = r
			s.rgba.Pix[o+1] = g
			s.rgba.Pix[o+2] = b
			s.rgba.Pix[o+3] = 0xFF
		}
	}

	draw.ApproxBiLinear.Scale(s.out, s.out.Bounds(), s.rgba, s.rgba.Bounds(), draw.Over, nil)

	mat, err := gocv.ImageToMatRGBA(s.out)
	if err != nil {
		return fmt.Errorf("previewsink: converting image: %w", err)
	}
	if !s.mat.Empty() {
		s.mat.Close()
	}
	s.mat = mat
	return nil
}

// Present shows the most recently uploaded frame and pumps the GoCV
// event loop.
func (s *Sink) Present() error {
	if s.mat.Empty() {
		return nil
	}
	s.win.IMShow(s.mat)
	s.win.WaitKey(1)
	return nil
}

// Close releases the preview window and backing Mat.
func (s *Sink) Close() error {
	if !s.mat.Empty() {
		s.mat.Close()
	}
	return s.win.Close()
}
