/*
NAME
  clock.go

DESCRIPTION
  clock.go implements PacingClock, a monotonic millisecond clock used
  by the video worker to hold a target frame interval, grounded on
  roq-player.c's get_current_time/target_frame_time/last_frame_time
  trio (arch/timer.h's timer_ms_gettime, reimplemented with
  time.Since against a monotonic start).

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

import "time"

// PacingClock tracks a target frame interval and sleeps off the
// remainder between a frame's render start and the interval deadline.
type PacingClock struct {
	start    time.Time
	interval time.Duration
	last     time.Duration

	// Samples records each observed interval since the previous Mark
	// call, for diag.Summarize and diag.WriteHistogram to report on.
	Samples []time.Duration
}

// NewPacingClock returns a PacingClock targeting 1000/framerate ms
// per frame. framerate must be positive.
func NewPacingClock(framerate int) *PacingClock {
	return &PacingClock{
		start:    time.Now(),
		interval: time.Second / time.Duration(framerate),
	}
}

// SetInterval overrides the target frame interval directly, used when
// a caller wants an explicit millisecond interval instead of deriving
// one from a framerate.
func (c *PacingClock) SetInterval(d time.Duration) { c.interval = d }

// elapsed returns time since the clock's last Mark (or creation).
func (c *PacingClock) elapsed() time.Duration {
	return time.Since(c.start) - c.last
}

// Wait blocks for the remainder of the target frame interval since the
// previous Mark, if any remains, matching roq-player.c's
// thd_sleep(target_frame_time - elapsed_time) guard.
func (c *PacingClock) Wait() {
	if remaining := c.interval - c.elapsed(); remaining > 0 {
		time.Sleep(remaining)
	}
}

// Mark records the actual interval observed since the previous Mark
// and resets the elapsed-time baseline.
func (c *PacingClock) Mark() {
	now := time.Since(c.start)
	c.Samples = append(c.Samples, now-c.last)
	c.last = now
}
