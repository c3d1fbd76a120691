/*
NAME
  player.go

DESCRIPTION
  player.go implements Player, the public facade and worker state
  machine driving a roq.Stream against a RenderSink and a PCMSink. It
  is grounded on roq-player.c's sound/video handler threads and on
  revid.Revid's Start/Stop/Update lifecycle shape.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package player drives a decoded RoQ stream's audio and video workers
// against injected sinks, under a small cooperative state machine.
package player

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ausocean/roq/internal/frameslots"
	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

// Status is a worker's position in the Null→Ready→Resuming→Streaming→
// Pausing/Stopping→Ready→…→Done state machine.
type Status int32

const (
	StatusNull Status = iota
	StatusReady
	StatusResuming
	StatusStreaming
	StatusPausing
	StatusStopping
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNull:
		return "null"
	case StatusReady:
		return "ready"
	case StatusResuming:
		return "resuming"
	case StatusStreaming:
		return "streaming"
	case StatusPausing:
		return "pausing"
	case StatusStopping:
		return "stopping"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// decodedFrame is what the video worker pulls from FrameSlots: a
// decoded frame plus the dimensions its callback carried.
type decodedFrame struct {
	frame                             *roq.Frame
	width, height, stride, texHeight int
}

// Player is the public facade over a decoding Stream and its worker
// pair. Create with New; release with Shutdown.
type Player struct {
	stream *roq.Stream
	log    logging.Logger

	ring   *ring.Buffer
	frames *frameslots.Slots
	clock  *PacingClock

	renderSink RenderSink
	pcmSink    PCMSink

	audioStatus atomic.Int32
	videoStatus atomic.Int32
	channels    atomic.Int32
	volume      atomic.Int32
	paused      atomic.Bool

	playMu      sync.Mutex
	playingLoop bool

	wg sync.WaitGroup

	errno Errno
}

// New creates a Player over stream, driving renderSink and pcmSink.
// The returned Player's workers are started but idle (Ready) until
// Play is called.
func New(stream *roq.Stream, renderSink RenderSink, pcmSink PCMSink, cfg Config) (*Player, error) {
	if stream == nil {
		setLastErrno(SourceError)
		return nil, newError("New", SourceError, nil)
	}
	if cfg.Logger == nil {
		setLastErrno(FormatInitFailure)
		return nil, newError("New", FormatInitFailure, fmt.Errorf("config: Logger is required"))
	}

	pcmRing := cfg.Ring
	if pcmRing == nil {
		pcmRing = ring.New(RingCapacity)
	}

	p := &Player{
		stream:     stream,
		log:        cfg.Logger,
		ring:       pcmRing,
		frames:     frameslots.New(),
		renderSink: renderSink,
		pcmSink:    pcmSink,
	}

	framerate := stream.Framerate()
	if framerate <= 0 {
		framerate = 30
	}
	p.clock = NewPacingClock(framerate)
	if cfg.FrameIntervalOverride > 0 {
		p.clock.SetInterval(time.Duration(cfg.FrameIntervalOverride) * time.Millisecond)
	}

	vol := cfg.Volume
	if vol <= 0 {
		vol = DefaultVolume
	}
	p.volume.Store(int32(vol))
	p.audioStatus.Store(int32(StatusReady))
	p.videoStatus.Store(int32(StatusReady))
	stream.SetLoop(cfg.Loop)

	stream.SetVideoCallback(p.onVideoFrame, nil)
	stream.SetAudioCallback(p.onAudioPCM, nil)

	p.wg.Add(2)
	go p.audioWorker()
	go p.videoWorker()

	return p, nil
}

func (p *Player) onVideoFrame(frame *roq.Frame, width, height, stride, texHeight int, _ interface{}) {
	if p.renderSink == nil {
		return
	}
	p.frames.Load(decodedFrame{frame, width, height, stride, texHeight})
}

func (p *Player) onAudioPCM(pcm []byte, channels int, _ interface{}) {
	if p.pcmSink == nil {
		return
	}
	p.channels.Store(int32(channels))
	if err := p.ring.Write(pcm); err != nil {
		p.log.Warning("dropping audio block, ring buffer overflow", "error", err.Error())
	}
}

// Play drives the decode loop until the stream ends or Stop is
// called, invoking frameCB once per iteration for input polling.
// Guarded against re-entry by playingLoop, since frameCB is free to
// call Play again (a controller's "select/start" button, for
// instance): the outer call proceeds, the re-entrant one is a no-op.
func (p *Player) Play(frameCB func()) {
	if Status(p.audioStatus.Load()) == StatusStreaming {
		return
	}

	p.playMu.Lock()
	if p.playingLoop {
		p.playMu.Unlock()
		return
	}
	p.playingLoop = true
	p.playMu.Unlock()
	defer func() {
		p.playMu.Lock()
		p.playingLoop = false
		p.playMu.Unlock()
	}()

	p.paused.Store(false)
	p.audioStatus.Store(int32(StatusResuming))
	p.videoStatus.Store(int32(StatusStreaming))

	for {
		if frameCB != nil {
			frameCB()
		}
		if Status(p.audioStatus.Load()) == StatusNull {
			break
		}
		if !p.paused.Load() {
			p.stream.Decode()
		}
		if p.stream.HasEnded() {
			break
		}
	}
}

// Pause stops feeding the PCM sink and suspends decoding without
// rewinding, leaving the video worker idle until Play resumes it.
func (p *Player) Pause() {
	p.paused.Store(true)
	st := Status(p.audioStatus.Load())
	if st != StatusReady && st != StatusPausing {
		p.audioStatus.Store(int32(StatusPausing))
	}
}

// Stop pauses, rewinds the stream to its first post-signature chunk,
// and clears the audio ring buffer.
func (p *Player) Stop() error {
	p.paused.Store(true)
	if err := p.stream.Rewind(); err != nil {
		return newError("Stop", SourceError, err)
	}
	st := Status(p.audioStatus.Load())
	if st != StatusReady && st != StatusStopping {
		p.audioStatus.Store(int32(StatusStopping))
	}
	return nil
}

// Volume clamps vol to 0..255 and forwards it to the PCM sink.
func (p *Player) Volume(vol int) error {
	if vol > 255 {
		vol = 255
	}
	if vol < 0 {
		vol = 0
	}
	p.volume.Store(int32(vol))
	if p.pcmSink == nil {
		return nil
	}
	return p.pcmSink.SetVolume(vol)
}

// IsPlaying reports whether the audio worker is currently streaming.
func (p *Player) IsPlaying() bool {
	return Status(p.audioStatus.Load()) == StatusStreaming
}

// SetLoop sets whether end-of-stream rewinds instead of ending.
// Idempotent: calling it twice with the same value has the same
// effect as calling it once.
func (p *Player) SetLoop(loop bool) { p.stream.SetLoop(loop) }

// GetLoop reports the current loop setting.
func (p *Player) GetLoop() bool { return p.stream.Loop() }

// HasEnded reports whether the underlying stream has ended.
func (p *Player) HasEnded() bool { return p.stream.HasEnded() }

// Ring returns the PCM ring buffer onAudioPCM writes decoded audio
// into: the same buffer a PCMSink must be constructed against
// (directly, or via Config.Ring) for audio to actually reach it.
func (p *Player) Ring() *ring.Buffer { return p.ring }

// Errno returns the last player-side error recorded on this Player.
func (p *Player) Errno() Errno { return p.errno }

// Shutdown transitions both workers to Done, joins them, and releases
// the PCM sink, render sink, and underlying stream, in that order.
func (p *Player) Shutdown() error {
	p.audioStatus.Store(int32(StatusDone))
	p.videoStatus.Store(int32(StatusDone))
	p.frames.Close()
	p.wg.Wait()

	if p.pcmSink != nil {
		p.pcmSink.Stop()
		p.pcmSink.Close()
	}
	if p.renderSink != nil {
		p.renderSink.Close()
	}
	return p.stream.Destroy()
}

func (p *Player) audioWorker() {
	defer p.wg.Done()
	for {
		switch Status(p.audioStatus.Load()) {
		case StatusDone, StatusError:
			return

		case StatusResuming:
			channels := int(p.channels.Load())
			if channels == 0 {
				channels = 1
			}
			if p.pcmSink == nil {
				p.audioStatus.Store(int32(StatusStreaming))
				continue
			}
			if err := p.pcmSink.Start(SampleRate, channels); err != nil {
				p.log.Error("failed to start PCM sink", "error", err.Error())
				p.errno = SndInitFailure
				p.audioStatus.Store(int32(StatusError))
				continue
			}
			p.pcmSink.SetVolume(int(p.volume.Load()))
			p.audioStatus.Store(int32(StatusStreaming))

		case StatusPausing:
			if p.pcmSink != nil {
				p.pcmSink.Stop()
			}
			p.audioStatus.Store(int32(StatusReady))

		case StatusStopping:
			if p.pcmSink != nil {
				p.pcmSink.Stop()
			}
			p.ring.Reset()
			p.audioStatus.Store(int32(StatusReady))

		case StatusStreaming:
			if p.pcmSink != nil {
				if err := p.pcmSink.Poll(); err != nil {
					p.log.Error("PCM sink poll failed", "error", err.Error())
				}
			}
			time.Sleep(15 * time.Millisecond)

		default: // Null, Ready.
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (p *Player) videoWorker() {
	defer p.wg.Done()
	for {
		switch Status(p.videoStatus.Load()) {
		case StatusDone, StatusError:
			return

		case StatusStreaming:
			raw := p.frames.Ready()
			if raw == nil {
				return
			}
			df := raw.(decodedFrame)
			p.clock.Wait()
			if p.renderSink != nil {
				if err := p.renderSink.Upload(df.frame, df.width, df.height, df.stride, df.texHeight); err != nil {
					p.log.Error("render upload failed", "error", err.Error())
				} else if err := p.renderSink.Present(); err != nil {
					p.log.Error("render present failed", "error", err.Error())
				}
			}
			p.clock.Mark()
			p.frames.Release()

		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}
