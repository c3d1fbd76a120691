/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the RoQ error taxonomy. The last error code is kept
  per Stream (Stream.Errno); a package-level fallback (LastErrno), in
  the manner of the original dreamroq library's roq_errno global, is
  set only by creation calls that fail without returning a Stream.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package roq

import "fmt"

// Errno is a process-wide error code, numbered to match the original
// dreamroq library's roq_errno values so that callers porting from the
// C API see the same numbering.
type Errno int

// Decoder-level error codes.
const (
	Success Errno = iota
	FileOpen
	FileRead
	ChunkTooLarge
	BadCodebook
	InvalidPicSize
	NoMemory
	BadVQStream
	InvalidDimension
	RenderProblem
	ClientProblem
)

func (e Errno) String() string {
	switch e {
	case Success:
		return "success"
	case FileOpen:
		return "file open failure"
	case FileRead:
		return "file read failure"
	case ChunkTooLarge:
		return "chunk too large"
	case BadCodebook:
		return "bad codebook"
	case InvalidPicSize:
		return "invalid picture size"
	case NoMemory:
		return "out of memory"
	case BadVQStream:
		return "bad VQ stream"
	case InvalidDimension:
		return "invalid dimension"
	case RenderProblem:
		return "render problem"
	case ClientProblem:
		return "client problem"
	default:
		return fmt.Sprintf("roq errno %d", int(e))
	}
}

// Error wraps an Errno with context, satisfying the error interface while
// still allowing callers to recover the underlying code with errors.As.
type Error struct {
	Code Errno
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("roq: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("roq: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, code Errno, err error) *Error {
	return &Error{Op: op, Code: code, Err: err}
}

// lastErrno is the package-level fallback used only when a caller has no
// handle to query (e.g. a failed create returned nil). Any call that
// returns a *Stream or *Error should be preferred over this; it exists
// purely for legacy-style callers, mirroring the C library's global
// last_error.
var lastErrno Errno

// LastErrno returns the most recent error code recorded by a failed
// create call that returned no handle.
func LastErrno() Errno { return lastErrno }

func setLastErrno(e Errno) { lastErrno = e }
