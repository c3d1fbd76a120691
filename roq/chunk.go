/*
NAME
  chunk.go

DESCRIPTION
  chunk.go implements the 8-byte RoQ chunk header parser.

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

import "encoding/binary"

// Chunk ids recognized by the RoQ bitstream.
const (
	idSignature    = 0x1084
	idInfo         = 0x1001
	idQuadCodebook = 0x1002
	idQuadVQ       = 0x1011
	idJPEG         = 0x1012
	idSoundMono    = 0x1020
	idSoundStereo  = 0x1021
	idPacket       = 0x1030
)

// chunkHeaderSize is the fixed size of a chunk header: id, size, arg.
const chunkHeaderSize = 8

// chunkSizeCap is the fixed cap on a chunk's payload size (64 KiB).
const chunkSizeCap = 64 * 1024

// chunk is a parsed RoQ chunk header.
type chunk struct {
	id   uint16
	size uint32
	arg  uint16
}

// readChunkHeader consumes exactly 8 little-endian bytes from src and
// parses them into a chunk header. It rejects headers whose declared
// size exceeds the fixed chunk cap, except for the signature chunk
// whose size field is the sentinel 0xFFFFFFFF.
func readChunkHeader(src byteSource) (chunk, error) {
	b, err := src.read(chunkHeaderSize)
	if err != nil {
		return chunk{}, newError("readChunkHeader", FileRead, err)
	}
	c := chunk{
		id:   binary.LittleEndian.Uint16(b[0:2]),
		size: binary.LittleEndian.Uint32(b[2:6]),
		arg:  binary.LittleEndian.Uint16(b[6:8]),
	}
	if c.id != idSignature && c.size > chunkSizeCap {
		return chunk{}, newError("readChunkHeader", ChunkTooLarge, nil)
	}
	return c, nil
}
