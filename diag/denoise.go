/*
NAME
  denoise.go

DESCRIPTION
  denoise.go implements Denoise, an optional low-pass pass over a
  decoded audio block, adapting codec/pcm's SelectiveFrequencyFilter
  (originally built for live-capture PCM) to RoQ's fixed 22050Hz
  squared-delta audio output.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package diag

import (
	"fmt"

	"github.com/ausocean/roq/codec/pcm"
)

// Denoise runs a lowpass filter with cutoff cutoffHz over a block of
// interleaved signed 16-bit little-endian PCM, as decoded by
// roq.Stream's audio callback. It exists for offline inspection of a
// dump's audio track; the real-time playback path never calls it.
func Denoise(data []byte, channels int, rate, cutoffHz uint) ([]byte, error) {
	f, err := pcm.NewLowPass(float64(cutoffHz), pcm.BufferFormat{
		SFormat:  pcm.S16_LE,
		Rate:     rate,
		Channels: uint(channels),
	}, 127)
	if err != nil {
		return nil, fmt.Errorf("diag: building lowpass filter: %w", err)
	}

	out, err := f.Apply(pcm.Buffer{
		Format: pcm.BufferFormat{SFormat: pcm.S16_LE, Rate: rate, Channels: uint(channels)},
		Data:   data,
	})
	if err != nil {
		return nil, fmt.Errorf("diag: applying lowpass filter: %w", err)
	}
	return out, nil
}
