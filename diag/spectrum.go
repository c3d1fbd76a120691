/*
NAME
  spectrum.go

DESCRIPTION
  spectrum.go implements Spectrum, a debug FFT view over a decoded
  audio block, grounded on codec/pcm/filters.go's use of
  github.com/mjibson/go-dsp/fft for PCM filtering.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package diag provides playback diagnostics: frame-pacing jitter
// reports and audio spectrum views, neither part of the core decode
// or playback path.
package diag

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum computes the magnitude spectrum of one channel of
// interleaved signed 16-bit little-endian PCM, as decoded by
// roq.Stream's audio callback.
func Spectrum(pcm []byte, channels, channel int) ([]float64, error) {
	if channel < 0 || channel >= channels {
		return nil, fmt.Errorf("diag: channel %d out of range for %d channels", channel, channels)
	}
	frameBytes := 2 * channels
	if len(pcm)%frameBytes != 0 {
		return nil, fmt.Errorf("diag: pcm length %d not a multiple of frame size %d", len(pcm), frameBytes)
	}

	n := len(pcm) / frameBytes
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		o := i*frameBytes + channel*2
		v := int16(pcm[o]) | int16(pcm[o+1])<<8
		samples[i] = float64(v)
	}

	spectrum := fft.FFTReal(samples)
	mags := make([]float64, len(spectrum)/2)
	for i := range mags {
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return mags, nil
}
