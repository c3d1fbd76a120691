package player

import "encoding/binary"

// RoQ chunk ids, mirrored from the unexported constants in package roq
// (this is an external test package, so it can't reference them
// directly); see roq/chunk.go for the authoritative definitions.
const (
	fixtureIDSignature    = 0x1084
	fixtureIDInfo         = 0x1001
	fixtureIDQuadCodebook = 0x1002
	fixtureIDQuadVQ       = 0x1011
	fixtureIDSoundMono    = 0x1020
)

func encodeChunkHeader(id uint16, size uint32, arg uint16) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], id)
	binary.LittleEndian.PutUint32(b[2:6], size)
	binary.LittleEndian.PutUint16(b[6:8], arg)
	return b
}

func encodeChunk(id uint16, arg uint16, payload []byte) []byte {
	b := encodeChunkHeader(id, uint32(len(payload)), arg)
	return append(b, payload...)
}

// minimalRoQStream builds a single-frame, audio-free, 16x16 RoQ stream,
// identical in shape to roq's own internal test fixture.
func minimalRoQStream(framerate uint16) []byte {
	var buf []byte
	buf = append(buf, encodeChunkHeader(fixtureIDSignature, 0xFFFFFFFF, framerate)...)
	buf = append(buf, encodeChunk(fixtureIDInfo, 0, []byte{16, 0, 16, 0, 0, 0, 0, 0})...)
	buf = append(buf, encodeChunk(fixtureIDQuadCodebook, (1<<8)|1, []byte{
		128, 128, 128, 128, 128, 128,
		0, 0, 0, 0,
	})...)
	buf = append(buf, encodeChunk(fixtureIDQuadVQ, 0, []byte{
		0x00, 0xAA,
		0, 0, 0, 0,
	})...)
	return buf
}

// minimalRoQStreamWithAudio builds the same single-frame 16x16 stream as
// minimalRoQStream, plus a trailing mono sound chunk, so decoding it
// exercises onAudioPCM and writes PCM bytes into the player's ring.
func minimalRoQStreamWithAudio(framerate uint16) []byte {
	buf := minimalRoQStream(framerate)
	buf = append(buf, encodeChunk(fixtureIDSoundMono, 0, []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
	})...)
	return buf
}
