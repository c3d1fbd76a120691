/*
NAME
  sinks.go

DESCRIPTION
  sinks.go defines the renderer and PCM sink interfaces the player
  drives: a hardware-specific tile/texture uploader and a PCM sink
  driver, named by contract only; device/alsasink, device/wavsink and
  device/previewsink are concrete implementations.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "github.com/ausocean/roq/roq"

// RenderSink uploads a decoded frame's pixel buffer and presents it.
// Upload corresponds to the load-slot write; Present corresponds to
// the render-slot display, matching the FrameSlots handoff.
type RenderSink interface {
	// Upload copies frame's pixel data (stride*texHeight*2 bytes) into
	// the sink's current load slot.
	Upload(frame *roq.Frame, width, height, stride, texHeight int) error

	// Present displays the most recently uploaded frame.
	Present() error

	// Close releases any resources the sink holds.
	Close() error
}

// PCMSink is a pull-based audio output: it requests bytes from the
// player's ring buffer rather than having them pushed, matching the
// Dreamcast AICA callback contract.
type PCMSink interface {
	// Start begins streaming at the given sample rate and channel
	// count, matching roq-player.c's snd_stream_start.
	Start(rate, channels int) error

	// Poll services the sink for one iteration. device/alsasink and
	// device/wavsink read one period of PCM from the ring buffer inside
	// Poll and hand it to their device or file.
	Poll() error

	// SetVolume passes a 0..255 volume, already clamped by the Player,
	// to the sink.
	SetVolume(vol int) error

	// Stop halts streaming.
	Stop() error

	// Close releases any resources the sink holds.
	Close() error
}
