/*
NAME
  stream.go

DESCRIPTION
  stream.go implements Stream, the top-level RoQ decoder handle, and its
  decode loop: chunk dispatch, codebook and frame maintenance,
  loop/ended bookkeeping, and delivery to the installed video/audio
  sinks.

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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// VideoCallback receives a freshly decoded frame. user is whatever was
// passed to SetVideoCallback, threaded through unchanged.
type VideoCallback func(frame *Frame, width, height, stride, texHeight int, user interface{})

// AudioCallback receives a block of interleaved signed 16-bit
// little-endian PCM. user is whatever was passed to SetAudioCallback.
type AudioCallback func(pcm []byte, channels int, user interface{})

// Stream is a RoQ decoder instance: a byteSource, its codebooks and
// ping-pong frame pair, and chunk-dispatch state. A Stream must be
// created with one of NewFromFilename, NewFromFileHandle, or
// NewFromMemory, and released with Destroy.
type Stream struct {
	src byteSource
	cb  *codebookState
	log logging.Logger

	width, height int
	mbW, mbH      int
	stride        int
	texHeight     int
	framerate     int

	frames  [2]*Frame
	vqCount int

	channels     int
	currentFrame int
	hasEnded     bool
	loop         bool

	videoCB   VideoCallback
	videoUser interface{}
	audioCB   AudioCallback
	audioUser interface{}

	errno   Errno
	lastErr error
}

// NewFromFilename opens the named file and creates a Stream reading it.
func NewFromFilename(path string, log logging.Logger) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		setLastErrno(FileOpen)
		return nil, newError("NewFromFilename", FileOpen, err)
	}
	return newStream(newFileSource(f, true), log)
}

// NewFromFileHandle creates a Stream reading an already-open file,
// optionally closing it on Destroy.
func NewFromFileHandle(f *os.File, closeOnDestroy bool, log logging.Logger) (*Stream, error) {
	return newStream(newFileSource(f, closeOnDestroy), log)
}

// NewFromMemory creates a Stream reading an in-memory byte slice,
// optionally releasing it on Destroy.
func NewFromMemory(b []byte, freeOnDestroy bool, log logging.Logger) (*Stream, error) {
	return newStream(newMemSource(b, freeOnDestroy), log)
}

// newStream reads the signature chunk and searches for the Info chunk.
// If EOF is reached before an Info chunk appears (a signature-only
// stream), creation still succeeds with zero dimensions; the first
// Decode call on such a stream ends immediately.
func newStream(src byteSource, log logging.Logger) (*Stream, error) {
	if log == nil {
		log = logging.New(logging.Info, io.Discard, false)
	}
	s := &Stream{src: src, cb: newCodebookState(), log: log}

	hdr, err := readChunkHeader(src)
	if err != nil {
		src.destroy()
		setLastErrno(FileRead)
		return nil, newError("newStream", FileRead, err)
	}
	if hdr.id != idSignature || hdr.size != 0xFFFFFFFF {
		src.destroy()
		setLastErrno(FileRead)
		return nil, newError("newStream", FileRead, fmt.Errorf("missing RoQ signature"))
	}
	s.framerate = int(hdr.arg)
	log.Debug("parsed RoQ signature", "framerate", s.framerate)

	for {
		if src.eof() {
			break
		}
		hdr, err := readChunkHeader(src)
		if err != nil {
			src.destroy()
			setLastErrno(FileRead)
			return nil, newError("newStream", FileRead, err)
		}
		if hdr.id != idInfo {
			if err := skip(src, hdr.size); err != nil {
				src.destroy()
				setLastErrno(FileRead)
				return nil, newError("newStream", FileRead, err)
			}
			continue
		}
		payload, err := src.read(int(hdr.size))
		if err != nil {
			src.destroy()
			setLastErrno(FileRead)
			return nil, newError("newStream", FileRead, err)
		}
		if err := s.applyInfo(payload); err != nil {
			src.destroy()
			setLastErrno(s.errno)
			return nil, err
		}
		break
	}

	// Rewind to the first post-signature chunk.
	if err := src.seek(chunkHeaderSize, SeekStart); err != nil {
		src.destroy()
		return nil, newError("newStream", FileRead, err)
	}

	if s.stride == 0 {
		s.stride, s.texHeight = 0, 0
		s.frames[0] = newFrame(0, 0)
		s.frames[1] = newFrame(0, 0)
	}

	return s, nil
}

// applyInfo validates and applies an Info chunk's width/height, then
// allocates the zeroed ping-pong frame pair.
func (s *Stream) applyInfo(payload []byte) error {
	width := int(payload[0]) | int(payload[1])<<8
	height := int(payload[2]) | int(payload[3])<<8

	if width&0xF != 0 || height&0xF != 0 {
		s.errno = InvalidPicSize
		return newError("applyInfo", InvalidPicSize, nil)
	}
	if width < 8 || width > 1024 || height < 8 || height > 1024 {
		s.errno = InvalidDimension
		return newError("applyInfo", InvalidDimension, nil)
	}

	s.width, s.height = width, height
	s.mbW, s.mbH = width/16, height/16
	s.log.Debug("applied Info chunk", "width", width, "height", height)

	s.stride = 8
	for s.stride < width {
		s.stride <<= 1
	}
	s.texHeight = 8
	for s.texHeight < height {
		s.texHeight <<= 1
	}

	s.frames[0] = newFrame(s.stride, s.texHeight)
	s.frames[1] = newFrame(s.stride, s.texHeight)

	return nil
}

func skip(src byteSource, n uint32) error {
	return src.seek(int64(n), SeekCurrent)
}

// SetVideoCallback installs fn as the Stream's video sink. user is
// passed through unchanged on every call.
func (s *Stream) SetVideoCallback(fn VideoCallback, user interface{}) {
	s.videoCB, s.videoUser = fn, user
}

// SetAudioCallback installs fn as the Stream's audio sink. user is
// passed through unchanged on every call.
func (s *Stream) SetAudioCallback(fn AudioCallback, user interface{}) {
	s.audioCB, s.audioUser = fn, user
}

// SetLoop sets whether EOF rewinds to the start instead of ending the
// stream. Repeated calls with the same value are idempotent.
func (s *Stream) SetLoop(loop bool) { s.loop = loop }

// Loop reports the current loop setting.
func (s *Stream) Loop() bool { return s.loop }

// HasEnded reports whether the stream has reached end-of-stream with
// looping disabled.
func (s *Stream) HasEnded() bool { return s.hasEnded }

// Width returns the decoded picture width.
func (s *Stream) Width() int { return s.width }

// Height returns the decoded picture height.
func (s *Stream) Height() int { return s.height }

// Framerate returns the framerate declared by the signature chunk.
func (s *Stream) Framerate() int { return s.framerate }

// CurrentFrame returns the number of frames successfully decoded.
func (s *Stream) CurrentFrame() int { return s.currentFrame }

// Channels returns the channel count of the most recently decoded
// audio block (0 before any audio chunk has been decoded).
func (s *Stream) Channels() int { return s.channels }

// Errno returns the last error code recorded on this Stream.
func (s *Stream) Errno() Errno { return s.errno }

// LastError returns the stack-carrying error recorded by the most
// recent Decode call when it failed reading a chunk header, unpacking a
// codebook, or decoding a VQ chunk. It is nil after any other Decode
// outcome, including payload read failures, which set only Errno.
func (s *Stream) LastError() error { return s.lastErr }

// Rewind seeks back to the first post-signature chunk and clears the
// end-of-stream and frame-parity state, as the C library's roq_rewind
// does.
func (s *Stream) Rewind() error {
	s.vqCount = 0
	s.currentFrame = 0
	s.hasEnded = false
	return s.src.seek(chunkHeaderSize, SeekStart)
}

// Destroy releases the Stream's backing source.
func (s *Stream) Destroy() error {
	return s.src.destroy()
}

func (s *Stream) handleEnd() {
	if s.loop {
		s.Rewind()
		return
	}
	s.hasEnded = true
}

// Decode advances the stream by dispatching chunks until at least one
// video frame (if a video sink is installed) and one audio block (if
// an audio sink is installed) have been delivered, or until decoding
// can make no further progress. It returns true on progress, false on
// end-of-stream or failure (see Errno for the reason in the latter
// case).
func (s *Stream) Decode() bool {
	s.lastErr = nil

	decodeVideo := s.videoCB != nil
	decodeAudio := s.audioCB != nil
	if !decodeVideo && !decodeAudio {
		return false
	}

	if s.src.eof() {
		s.handleEnd()
	}
	if s.hasEnded {
		return false
	}

	var videoEnded, audioEnded, videoDecoded, audioDecoded bool

	for {
		if s.src.eof() {
			// No more chunks to dispatch; stop making progress rather
			// than spin. Treat as end-of-stream for whichever sink is
			// still outstanding.
			if decodeVideo && !videoDecoded {
				videoEnded = true
			}
			if decodeAudio && !audioDecoded {
				audioEnded = true
			}
			break
		}

		hdr, err := readChunkHeader(s.src)
		if err != nil {
			s.errno = FileRead
			s.lastErr = errors.Wrap(err, "reading chunk header")
			return false
		}

		switch hdr.id {
		case idInfo, idPacket, idJPEG:
			if err := skip(s.src, hdr.size); err != nil {
				s.errno = FileRead
				return false
			}

		case idQuadCodebook:
			if !decodeVideo {
				if err := skip(s.src, hdr.size); err != nil {
					s.errno = FileRead
					return false
				}
				break
			}
			if decodeAudio && !audioDecoded && (videoDecoded || videoEnded) {
				audioDecoded = true
				if err := s.src.seek(-chunkHeaderSize, SeekCurrent); err != nil {
					s.errno = FileRead
					return false
				}
				continue
			}
			payload, err := s.src.read(int(hdr.size))
			if err != nil {
				s.errno = FileRead
				return false
			}
			if err := s.cb.unpackQuadCodebook(hdr.arg, payload); err != nil {
				s.errno = BadCodebook
				s.lastErr = errors.Wrap(err, "unpacking quad codebook")
				s.log.Error("rejected codebook chunk", "error", err.Error())
				return false
			}

		case idQuadVQ:
			if !decodeVideo {
				if err := skip(s.src, hdr.size); err != nil {
					s.errno = FileRead
					return false
				}
				break
			}
			payload, err := s.src.read(int(hdr.size))
			if err != nil {
				s.errno = FileRead
				return false
			}
			frame, err := s.decodeVQ(hdr.arg, payload)
			if err != nil {
				s.errno = BadVQStream
				s.lastErr = errors.Wrap(err, "decoding quad VQ chunk")
				s.log.Warning("discarding frame after bad VQ stream", "error", err.Error())
				videoEnded = true
				break
			}
			videoDecoded = true
			s.videoCB(frame, s.width, s.height, s.stride, s.texHeight, s.videoUser)

		case idSoundMono:
			if !decodeAudio {
				if err := skip(s.src, hdr.size); err != nil {
					s.errno = FileRead
					return false
				}
				break
			}
			payload, err := s.src.read(int(hdr.size))
			if err != nil {
				s.errno = FileRead
				return false
			}
			s.channels = 1
			pcm := s.cb.decodeMonoAudio(hdr.arg, payload)
			audioDecoded = true
			s.audioCB(pcm, 1, s.audioUser)

		case idSoundStereo:
			if !decodeAudio {
				if err := skip(s.src, hdr.size); err != nil {
					s.errno = FileRead
					return false
				}
				break
			}
			payload, err := s.src.read(int(hdr.size))
			if err != nil {
				s.errno = FileRead
				return false
			}
			s.channels = 2
			pcm := s.cb.decodeStereoAudio(hdr.arg, payload)
			audioDecoded = true
			s.audioCB(pcm, 2, s.audioUser)

		default:
			if err := skip(s.src, hdr.size); err != nil {
				s.errno = FileRead
				return false
			}
		}

		if !((decodeVideo && !videoDecoded && !videoEnded) ||
			(decodeAudio && !audioDecoded && !audioEnded)) {
			break
		}
	}

	if videoEnded || audioEnded {
		s.handleEnd()
		return false
	}

	s.currentFrame++
	return true
}
