/*
NAME
  config.go

DESCRIPTION
  config.go defines Config, the plain-struct configuration for a
  player.Player, in the shape of revid/config.Config: validated fields,
  no functional options.

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

import (
	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/utils/logging"
)

// SampleRate is the fixed PCM output rate RoQ audio is decoded to.
const SampleRate = 22050

// DefaultVolume is the default PCM sink volume (0..255), matching
// roq-player.c's snd_stream.vol = 240 default.
const DefaultVolume = 240

// RingCapacity is the PCM ring buffer's fixed capacity in bytes,
// matching roq-player.c's AUDIO_DECODE_BUFFER_SIZE.
const RingCapacity = 1024 * 1024

// Config holds the parameters of a Player. A zero Config is invalid;
// use NewConfig to get one with defaults applied, then override fields.
type Config struct {
	// Logger receives the player's diagnostic output. Must be set.
	Logger logging.Logger

	// Loop restarts playback from the first post-signature chunk on
	// end-of-stream instead of ending.
	Loop bool

	// Volume is the initial PCM sink volume, 0..255. New treats zero or
	// a negative value as unset and uses DefaultVolume instead.
	Volume int

	// FrameIntervalOverride, if non-zero, overrides the target frame
	// interval computed from the stream's framerate. Used by tests.
	FrameIntervalOverride int

	// Ring is the PCM ring buffer onAudioPCM writes decoded audio into.
	// Set this to the same *ring.Buffer passed to the PCMSink's
	// constructor (e.g. alsasink.New, wavsink.New) so the sink actually
	// reads what the player decodes. If nil, New allocates a private
	// buffer of RingCapacity bytes that no external sink can reach.
	Ring *ring.Buffer
}

// NewConfig returns a Config with DefaultVolume applied and the given
// logger set.
func NewConfig(log logging.Logger) Config {
	return Config{Logger: log, Volume: DefaultVolume}
}
