package alsasink

import (
	"testing"

	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/utils/logging"
)

func TestPollWithoutOpenDeviceIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), "")
	if err := s.Poll(); err != nil {
		t.Fatalf("Poll before Start should be a no-op, got: %v", err)
	}
}

func TestStopWithoutOpenDeviceIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), "")
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop before Start should be a no-op, got: %v", err)
	}
}

func TestSetVolumeRecordsValue(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), "")
	if err := s.SetVolume(128); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	if s.volume != 128 {
		t.Errorf("volume = %d, want 128", s.volume)
	}
}

// TestStartAgainstRealHardware exercises the full device-negotiation
// path. Not all testing environments have an ALSA playback device, so
// a failure to open one skips rather than fails, matching
// device/alsa's own hardware-dependent test.
func TestStartAgainstRealHardware(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1<<20), "")
	if err := s.Start(22050, 1); err != nil {
		t.Skipf("no ALSA playback device available: %v", err)
	}
	defer s.Close()

	if err := s.Poll(); err != nil {
		t.Errorf("Poll against an open device: %v", err)
	}
}
