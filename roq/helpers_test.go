package roq

import "encoding/binary"

// encodeChunkHeader builds an 8-byte little-endian chunk header, the
// inverse of readChunkHeader, for constructing in-memory fixtures.
func encodeChunkHeader(id uint16, size uint32, arg uint16) []byte {
	b := make([]byte, chunkHeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], id)
	binary.LittleEndian.PutUint32(b[2:6], size)
	binary.LittleEndian.PutUint16(b[6:8], arg)
	return b
}

// encodeChunk builds a full chunk (header + payload).
func encodeChunk(id uint16, arg uint16, payload []byte) []byte {
	b := encodeChunkHeader(id, uint32(len(payload)), arg)
	return append(b, payload...)
}

// minimalVideoStream builds a 16x16 single-macroblock RoQ stream: a
// signature, an Info chunk, a codebook with one 2x2 and one 4x4 entry,
// and one QuadVQ chunk that paints all four 8x8 blocks from that 4x4
// entry via SLD mode.
func minimalVideoStream(framerate uint16) []byte {
	var buf []byte
	buf = append(buf, encodeChunkHeader(idSignature, 0xFFFFFFFF, framerate)...)
	buf = append(buf, encodeChunk(idInfo, 0, []byte{16, 0, 16, 0, 0, 0, 0, 0})...)
	buf = append(buf, encodeChunk(idQuadCodebook, (1<<8)|1, []byte{
		128, 128, 128, 128, 128, 128, // one 2x2 entry: y0..y3, u, v
		0, 0, 0, 0, // one 4x4 entry: four indices into cb2x2, all 0
	})...)
	// Mode word selecting SLD (0b10) for all four 8x8 blocks, packed into
	// the high byte (first four 2-bit draws come off the top of the
	// word), followed by four codebook-index bytes (all 0).
	buf = append(buf, encodeChunk(idQuadVQ, 0, []byte{
		0x00, 0xAA, // lo, hi
		0, 0, 0, 0, // four SLD indices
	})...)
	return buf
}

// appendMonoAudio appends a SoundMono chunk to buf.
func appendMonoAudio(buf []byte, arg uint16, payload []byte) []byte {
	return append(buf, encodeChunk(idSoundMono, arg, payload)...)
}
