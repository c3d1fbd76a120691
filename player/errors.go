/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the player-side error taxonomy (player_errno in
  roq-player.c), attached per-Player, with a package-level fallback
  for legacy-style callers whose New call failed before a handle
  existed.

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

import "fmt"

// Errno is the player-side error code, mirroring roq-player.c's
// player_errno values.
type Errno int

const (
	Success Errno = iota
	SourceError
	SndInitFailure
	FormatInitFailure
	OutOfMemory
	OutOfVidMemory
)

func (e Errno) String() string {
	switch e {
	case Success:
		return "success"
	case SourceError:
		return "source error"
	case SndInitFailure:
		return "sound init failure"
	case FormatInitFailure:
		return "format init failure"
	case OutOfMemory:
		return "out of memory"
	case OutOfVidMemory:
		return "out of video memory"
	default:
		return fmt.Sprintf("player errno %d", int(e))
	}
}

// Error wraps an Errno with the operation and underlying cause.
type Error struct {
	Code Errno
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("player: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("player: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, code Errno, err error) *Error {
	return &Error{Op: op, Code: code, Err: err}
}

var lastErrno Errno

// LastErrno returns the last player-side error recorded by a New
// call that failed before returning a *Player. Callers holding a
// *Player should prefer its Errno method.
func LastErrno() Errno { return lastErrno }

func setLastErrno(e Errno) { lastErrno = e }
