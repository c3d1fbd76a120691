/*
NAME
  alsasink.go

DESCRIPTION
  alsasink.go implements player.PCMSink against real ALSA playback
  hardware via yobert/alsa, adapting device/alsa.go's card/device
  negotiation and mutex-guarded state from a capture device to a
  playback device pulling from the player's PCM ring buffer.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package alsasink drives an ALSA playback device as a player.PCMSink.
package alsasink

import (
	"errors"
	"fmt"
	"sync"

	yalsa "github.com/yobert/alsa"

	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/utils/logging"
)

const pkg = "alsasink: "

// pollPeriodBytes is how many bytes of S16_LE PCM are pulled from the
// ring buffer and written to the device per Poll call. At 22050 Hz
// mono this is roughly 100ms of audio; stereo doubles the byte rate
// for the same duration.
const pollPeriodBytes = 4410

// Sink drives a named (or first available) ALSA playback device,
// pulling PCM from a caller-supplied ring.Buffer.
type Sink struct {
	l     logging.Logger
	title string

	mu  sync.Mutex
	dev *yalsa.Device
	src *ring.Buffer

	volume int
}

// New returns a Sink reading PCM from src. title selects a specific
// ALSA device by name; an empty title uses the first playback-capable
// device found.
func New(l logging.Logger, src *ring.Buffer, title string) *Sink {
	return &Sink{l: l, src: src, title: title}
}

// Start opens and negotiates the ALSA device for the given rate and
// channel count, matching roq-player.c's snd_stream_start call made
// on entering the Resuming state.
func (s *Sink) Start(rate, channels int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dev != nil {
		s.l.Debug(pkg + "device already open, closing before restart")
		s.dev.Close()
		s.dev = nil
	}

	s.l.Debug(pkg + "opening sound card")
	cards, err := yalsa.OpenCards()
	if err != nil {
		return fmt.Errorf("%sopening cards: %w", pkg, err)
	}
	defer yalsa.CloseCards(cards)

	for _, card := range cards {
		devices, err := card.Devices()
		if err != nil {
			continue
		}
		for _, dev := range devices {
			if dev.Type != yalsa.PCM || !dev.Play {
				continue
			}
			if dev.Title == s.title || s.title == "" {
				s.dev = dev
				break
			}
		}
		if s.dev != nil {
			break
		}
	}
	if s.dev == nil {
		return errors.New(pkg + "no ALSA playback device found")
	}

	if err := s.dev.Open(); err != nil {
		return fmt.Errorf("%sopening device: %w", pkg, err)
	}

	negChannels, err := s.dev.NegotiateChannels(channels)
	if err != nil {
		return fmt.Errorf("%snegotiating channels: %w", pkg, err)
	}
	s.l.Debug(pkg+"negotiated channels", "channels", negChannels)

	negRate, err := s.dev.NegotiateRate(rate)
	if err != nil {
		return fmt.Errorf("%snegotiating rate: %w", pkg, err)
	}
	s.l.Debug(pkg+"negotiated rate", "rate", negRate)

	if _, err := s.dev.NegotiateFormat(yalsa.S16_LE); err != nil {
		return fmt.Errorf("%snegotiating format: %w", pkg, err)
	}

	if _, err := s.dev.NegotiatePeriodSize(pollPeriodBytes); err != nil {
		return fmt.Errorf("%snegotiating period size: %w", pkg, err)
	}
	if _, err := s.dev.NegotiateBufferSize(pollPeriodBytes * 4); err != nil {
		return fmt.Errorf("%snegotiating buffer size: %w", pkg, err)
	}

	if err := s.dev.Prepare(); err != nil {
		return fmt.Errorf("%spreparing device: %w", pkg, err)
	}

	s.l.Info(pkg + "ALSA playback device ready")
	return nil
}

// Poll pulls one period of PCM from the ring buffer (silence if
// underflowing, matching aica_callback's thd_pass-and-retry posture
// loosely — here we write zeros rather than spin) and writes it to
// the device.
func (s *Sink) Poll() error {
	s.mu.Lock()
	dev := s.dev
	s.mu.Unlock()
	if dev == nil {
		return nil
	}

	buf := make([]byte, pollPeriodBytes)
	if s.src.Underflow(pollPeriodBytes) {
		s.l.Debug(pkg + "ring buffer underflow, writing silence")
	} else if err := s.src.Read(buf); err != nil {
		return fmt.Errorf("%sring read: %w", pkg, err)
	}

	samples := make([]int32, len(buf)/2)
	for i := range samples {
		samples[i] = int32(int16(buf[2*i]) | int16(buf[2*i+1])<<8)
	}
	if _, err := dev.Write(samples); err != nil {
		return fmt.Errorf("%sdevice write: %w", pkg, err)
	}
	return nil
}

// SetVolume records vol (already clamped to 0..255 by the caller). The
// recorded value is not applied to the PCM written to the device.
func (s *Sink) SetVolume(vol int) error {
	s.volume = vol
	return nil
}

// Stop closes the ALSA device. Matches snd_stream_stop; the device
// can be reopened by a subsequent Start.
func (s *Sink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return nil
	}
	s.dev.Close()
	s.dev = nil
	return nil
}

// Close releases the sink. Equivalent to Stop for this sink.
func (s *Sink) Close() error {
	return s.Stop()
}
