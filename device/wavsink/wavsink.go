/*
NAME
  wavsink.go

DESCRIPTION
  wavsink.go implements player.PCMSink by draining the PCM ring buffer
  into a go-audio/wav.Encoder, giving headless environments such as
  tests an inspectable .wav of decoded audio without real hardware.
  cmd/roqdump writes its WAV with its own encoder, not this sink.
  New, grounded on device/alsa.go's device-adaptation shape but
  backed by a file instead of a card.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wavsink records decoded PCM audio to a WAV file.
package wavsink

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/utils/logging"
)

const pollPeriodBytes = 4410

const bitDepth = 16

// Sink drains src into a WAV file at path, opened on Start and
// flushed on Stop.
type Sink struct {
	l    logging.Logger
	path string
	src  *ring.Buffer

	mu       sync.Mutex
	f        *os.File
	enc      *wav.Encoder
	channels int
}

// New returns a Sink that will write path on Start.
func New(l logging.Logger, src *ring.Buffer, path string) *Sink {
	return &Sink{l: l, src: src, path: path}
}

// Start opens path and begins a WAV encoder at the given rate and
// channel count.
func (s *Sink) Start(rate, channels int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("wavsink: creating %s: %w", s.path, err)
	}
	s.f = f
	s.channels = channels
	s.enc = wav.NewEncoder(f, rate, bitDepth, channels, 1)
	s.l.Info("wavsink: recording started", "path", s.path, "rate", rate, "channels", channels)
	return nil
}

// Poll drains one period of PCM from the ring buffer (skipping the
// call entirely on underflow, unlike alsasink, since a WAV file has no
// deadline to meet) and appends it to the WAV encoder.
func (s *Sink) Poll() error {
	s.mu.Lock()
	enc := s.enc
	s.mu.Unlock()
	if enc == nil {
		return nil
	}
	if s.src.Underflow(pollPeriodBytes) {
		return nil
	}

	buf := make([]byte, pollPeriodBytes)
	if err := s.src.Read(buf); err != nil {
		return fmt.Errorf("wavsink: ring read: %w", err)
	}

	samples := make([]int, len(buf)/2)
	for i := range samples {
		samples[i] = int(int16(buf[2*i]) | int16(buf[2*i+1])<<8)
	}

	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: s.channels, SampleRate: 22050},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enc == nil {
		return nil
	}
	return s.enc.Write(ib)
}

// SetVolume is a no-op for a file sink; scaling decoded PCM would
// defeat the point of a lossless reference recording.
func (s *Sink) SetVolume(vol int) error { return nil }

// Stop finalizes and closes the WAV encoder and its backing file.
func (s *Sink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enc == nil {
		return nil
	}
	err := s.enc.Close()
	s.f.Close()
	s.enc = nil
	s.f = nil
	return err
}

// Close is equivalent to Stop for this sink.
func (s *Sink) Close() error { return s.Stop() }
