package wavsink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/utils/logging"
)

func TestStartCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	s := New((*logging.TestLogger)(t), ring.New(1024), path)
	if err := s.Start(22050, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist after Start: %v", path, err)
	}
}

func TestPollWithoutStartIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), filepath.Join(t.TempDir(), "out.wav"))
	if err := s.Poll(); err != nil {
		t.Fatalf("Poll before Start should be a no-op, got: %v", err)
	}
}

func TestPollDrainsRingIntoWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	r := ring.New(1 << 20)
	s := New((*logging.TestLogger)(t), r, path)
	if err := s.Start(22050, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	block := make([]byte, pollPeriodBytes)
	if err := r.Write(block); err != nil {
		t.Fatalf("ring Write: %v", err)
	}
	if err := s.Poll(); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty WAV file after a drained Poll")
	}
}

func TestSetVolumeIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), filepath.Join(t.TempDir(), "out.wav"))
	if err := s.SetVolume(128); err != nil {
		t.Fatalf("SetVolume should always succeed as a no-op, got: %v", err)
	}
}

func TestStopWithoutStartIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), ring.New(1024), filepath.Join(t.TempDir(), "out.wav"))
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop before Start should be a no-op, got: %v", err)
	}
}
