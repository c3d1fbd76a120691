/*
NAME
  frameslots.go

DESCRIPTION
  frameslots.go implements FrameSlots, a two-slot decoded-frame pool
  that decouples the video decode worker from the display/output
  worker. It is grounded on the counting-semaphore pattern in
  device/alsa.go's buffer handoff between the capture goroutine and
  the ALSA write loop, generalized to a fixed pool of two, and on
  roq-player.c's vid_stream.frame_index double-buffered texture
  upload: a slot is only freed for reuse once the consumer has finished
  presenting it, not merely once it has been dequeued.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frameslots provides a two-slot pool used to hand decoded
// video frames from a decode worker to a display worker without
// either blocking the other beyond the pool's depth of two.
package frameslots

import "sync"

// Slots is a fixed two-slot pool. One producer calls Load to publish a
// decoded frame; one consumer calls Ready to wait for and take the
// oldest published frame, then Release once it is done with it. Load
// blocks while both slots are occupied-and-unreleased; Ready blocks
// while no slot has been published.
type Slots struct {
	mu        sync.Mutex
	loadSem   chan struct{} // counts free (released) slots
	readySem  chan struct{} // counts published, not-yet-taken slots
	slots     [2]interface{}
	nextLoad  int
	nextReady int
	closed    bool
}

// New returns an empty Slots pool with both slots free.
func New() *Slots {
	s := &Slots{
		loadSem:  make(chan struct{}, 2),
		readySem: make(chan struct{}, 2),
	}
	s.loadSem <- struct{}{}
	s.loadSem <- struct{}{}
	return s
}

// Load publishes frame into the next free slot, blocking if both slots
// are currently occupied and unreleased. After Close it returns without
// publishing anything.
func (s *Slots) Load(frame interface{}) {
	if _, ok := <-s.loadSem; !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.slots[s.nextLoad%2] = frame
	s.nextLoad++
	// Never blocks: loadSem admits at most two unreleased frames, and
	// readySem has room for two.
	s.readySem <- struct{}{}
}

// Ready blocks until a frame has been published, then returns it. The
// slot it occupied remains reserved until Release is called. It
// returns nil if Close was called while waiting or before Ready was
// called at all.
func (s *Slots) Ready() interface{} {
	if _, ok := <-s.readySem; !ok {
		return nil
	}
	s.mu.Lock()
	frame := s.slots[s.nextReady%2]
	s.nextReady++
	s.mu.Unlock()
	return frame
}

// TryReady returns the oldest published frame and true without
// blocking, or nil and false if no slot is currently published or
// Close has been called.
func (s *Slots) TryReady() (interface{}, bool) {
	var ok bool
	select {
	case _, ok = <-s.readySem:
		if !ok {
			return nil, false
		}
	default:
		return nil, false
	}
	s.mu.Lock()
	frame := s.slots[s.nextReady%2]
	s.nextReady++
	s.mu.Unlock()
	return frame, true
}

// Release frees the slot most recently returned by Ready/TryReady for
// reuse by the producer, matching the point in roq-player.c's
// roq_video_cb where frame_index toggles only after the PVR scene has
// finished presenting.
func (s *Slots) Release() {
	s.loadSem <- struct{}{}
}

// Close unblocks any pending or future Load/Ready calls, used to
// break the workers out of their loops during shutdown. Calls after
// the first do nothing.
func (s *Slots) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.loadSem)
	close(s.readySem)
}
