package frameslots

import (
	"testing"
	"time"
)

func TestLoadReadyRoundTrip(t *testing.T) {
	s := New()
	s.Load("frame0")
	got := s.Ready()
	if got != "frame0" {
		t.Fatalf("Ready() = %v, want frame0", got)
	}
}

func TestLoadBlocksWhenBothSlotsHeld(t *testing.T) {
	s := New()
	s.Load("a")
	s.Load("b")

	done := make(chan struct{})
	go func() {
		s.Load("c")
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Load should block while both slots are held and unreleased")
	case <-time.After(50 * time.Millisecond):
	}

	// Dequeue and release one slot; the pending Load should now proceed.
	s.Ready()
	s.Release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Load did not unblock after Release")
	}
}

func TestReadyDoesNotFreeSlotUntilRelease(t *testing.T) {
	s := New()
	s.Load("a")
	s.Load("b")
	s.Ready() // dequeues "a", slot still held

	done := make(chan struct{})
	go func() {
		s.Load("c") // should block: no slot has been released yet
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Load should still block: Ready() alone must not free a slot")
	case <-time.After(50 * time.Millisecond):
	}

	s.Release()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Load did not unblock after Release")
	}
}

func TestTryReadyNonBlocking(t *testing.T) {
	s := New()
	if _, ok := s.TryReady(); ok {
		t.Fatal("TryReady() should report false with nothing published")
	}
	s.Load("a")
	got, ok := s.TryReady()
	if !ok || got != "a" {
		t.Fatalf("TryReady() = %v, %v; want a, true", got, ok)
	}
}

func TestCloseUnblocksReady(t *testing.T) {
	s := New()
	done := make(chan interface{})
	go func() {
		done <- s.Ready()
	}()

	select {
	case <-done:
		t.Fatal("Ready() should block with nothing published")
	case <-time.After(50 * time.Millisecond):
	}

	s.Close()
	select {
	case got := <-done:
		if got != nil {
			t.Fatalf("Ready() after Close() = %v, want nil", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Close() did not unblock a pending Ready()")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New()
	s.Close()
	s.Close() // must not panic
}
