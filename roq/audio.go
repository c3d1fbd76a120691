/*
NAME
  audio.go

DESCRIPTION
  audio.go implements the mono/stereo differential audio decode,
  producing interleaved signed 16-bit little-endian PCM.

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

// decodeMonoAudio decodes a SoundMono chunk payload into interleaved
// (trivially mono) signed 16-bit little-endian PCM. The accumulator is
// initialized from arg and advances by snd_sqr[b] per input byte.
func (cs *codebookState) decodeMonoAudio(arg uint16, payload []byte) []byte {
	out := make([]byte, len(payload)*2)
	acc := int16(arg)
	for i, b := range payload {
		acc += cs.sndSqrLUT[b]
		out[i*2] = byte(acc)
		out[i*2+1] = byte(uint16(acc) >> 8)
	}
	return out
}

// decodeStereoAudio decodes a SoundStereo chunk payload into interleaved
// L,R signed 16-bit little-endian PCM. Left and right accumulators are
// initialized independently from arg's high and low bytes and advance
// on alternating input bytes.
func (cs *codebookState) decodeStereoAudio(arg uint16, payload []byte) []byte {
	out := make([]byte, len(payload)*2)
	left := int16(arg & 0xFF00)
	right := int16(arg&0xFF) << 8
	for i := 0; i+1 < len(payload); i += 2 {
		left += cs.sndSqrLUT[payload[i]]
		right += cs.sndSqrLUT[payload[i+1]]
		out[i*2] = byte(left)
		out[i*2+1] = byte(uint16(left) >> 8)
		out[i*2+2] = byte(right)
		out[i*2+3] = byte(uint16(right) >> 8)
	}
	return out
}
