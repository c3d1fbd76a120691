/*
NAME
  source.go

DESCRIPTION
  source.go provides byteSource, a unified read/seek/eof abstraction over
  a file, borrowed memory, or owned memory, matching the roq_buffer_t
  variants of the original dreamroq library.

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

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Whence values for byteSource.seek, mirroring io.Seeker's Start/Current
// subset (RoQ never seeks from the end).
const (
	SeekStart = iota
	SeekCurrent
)

// scratchSize is the size of the file-backed source's reusable read
// buffer, matching the chunk-size cap enforced by ChunkReader.
const scratchSize = 64 * 1024

// byteSource is the unified read/seek/eof abstraction underlying a
// Stream's input, whether file- or memory-backed. Implementations are
// not safe for concurrent use; a Stream owns exactly one byteSource.
type byteSource interface {
	// read advances the window by n bytes, returning the slice just
	// read. It fails if fewer than n bytes remain.
	read(n int) ([]byte, error)

	// data returns the slice read by the most recent successful read.
	data() []byte

	// seek repositions the source.
	seek(offset int64, whence int) error

	// eof reports whether no further bytes are available.
	eof() bool

	// destroy releases backing storage if owned.
	destroy() error
}

// errShortRead is returned by read when the source has fewer than the
// requested number of bytes remaining.
var errShortRead = errors.New("roq: short read")

// fileSource is a byteSource backed by an *os.File, reusing a fixed
// scratch buffer the way the C library reuses its ROQ_BUFFER_DEFAULT_SIZE
// buffer for file-mode playback.
type fileSource struct {
	f         *os.File
	closeWhen bool
	scratch   [scratchSize]byte
	lastRead  []byte
	hitEOF    bool
}

func newFileSource(f *os.File, closeWhenDone bool) *fileSource {
	return &fileSource{f: f, closeWhen: closeWhenDone}
}

func (s *fileSource) read(n int) ([]byte, error) {
	if n > len(s.scratch) {
		return nil, fmt.Errorf("roq: read of %d exceeds scratch size %d", n, len(s.scratch))
	}
	_, err := io.ReadFull(s.f, s.scratch[:n])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			s.hitEOF = true
		}
		return nil, errShortRead
	}
	s.lastRead = s.scratch[:n]
	return s.lastRead, nil
}

func (s *fileSource) data() []byte { return s.lastRead }

func (s *fileSource) seek(offset int64, whence int) error {
	var w int
	switch whence {
	case SeekStart:
		w = io.SeekStart
	case SeekCurrent:
		w = io.SeekCurrent
	default:
		return fmt.Errorf("roq: unsupported whence %d", whence)
	}
	_, err := s.f.Seek(offset, w)
	if err == nil {
		s.hitEOF = false
	}
	return err
}

func (s *fileSource) eof() bool {
	if s.hitEOF {
		return true
	}
	pos, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return true
	}
	info, err := s.f.Stat()
	if err != nil {
		return true
	}
	return pos >= info.Size()
}

func (s *fileSource) destroy() error {
	if s.closeWhen {
		return s.f.Close()
	}
	return nil
}

// memSource is a byteSource backed by an in-memory byte slice, used for
// both the borrowed-memory and owned-memory construction paths. Reads
// return subslices without copying.
type memSource struct {
	bytes     []byte
	start     int
	end       int
	freeWhen  bool
	lastStart int
	lastEnd   int
}

func newMemSource(b []byte, freeWhenDone bool) *memSource {
	return &memSource{bytes: b, freeWhen: freeWhenDone}
}

func (s *memSource) read(n int) ([]byte, error) {
	if s.end+n > len(s.bytes) {
		return nil, errShortRead
	}
	s.lastStart = s.end
	s.start = s.end
	s.end += n
	s.lastEnd = s.end
	return s.bytes[s.lastStart:s.lastEnd], nil
}

func (s *memSource) data() []byte { return s.bytes[s.lastStart:s.lastEnd] }

func (s *memSource) seek(offset int64, whence int) error {
	switch whence {
	case SeekStart:
		s.end = int(offset)
		s.start = s.end
	case SeekCurrent:
		s.end += int(offset)
		s.start = s.end
	default:
		return fmt.Errorf("roq: unsupported whence %d", whence)
	}
	if s.end < 0 || s.end > len(s.bytes) {
		return fmt.Errorf("roq: seek out of range")
	}
	return nil
}

func (s *memSource) eof() bool { return s.end >= len(s.bytes) }

func (s *memSource) destroy() error {
	if s.freeWhen {
		s.bytes = nil
	}
	return nil
}
