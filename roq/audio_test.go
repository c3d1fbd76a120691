package roq

import "testing"

func TestDecodeMonoAudioLength(t *testing.T) {
	cs := newCodebookState()
	pcm := cs.decodeMonoAudio(0, []byte{0, 0, 0, 0, 0})
	if len(pcm) != 10 {
		t.Fatalf("len(pcm) = %d, want 10", len(pcm))
	}
}

func TestDecodeMonoAudioAccumulatesFromArg(t *testing.T) {
	cs := newCodebookState()
	// A single zero-byte input means the accumulator never changes from
	// its initial value, so the output should equal arg verbatim.
	pcm := cs.decodeMonoAudio(1000, []byte{0})
	got := int16(pcm[0]) | int16(pcm[1])<<8
	if got != 1000 {
		t.Errorf("got %d, want 1000", got)
	}
}

func TestDecodeStereoAudioInterleaving(t *testing.T) {
	cs := newCodebookState()
	pcm := cs.decodeStereoAudio(0, []byte{0, 0, 0, 0})
	if len(pcm) != 8 {
		t.Fatalf("len(pcm) = %d, want 8", len(pcm))
	}
	// With a zero arg and zero-valued input bytes both channels should
	// stay at their initial value (0) throughout.
	for i := 0; i < len(pcm); i += 2 {
		v := int16(pcm[i]) | int16(pcm[i+1])<<8
		if v != 0 {
			t.Errorf("sample at byte %d = %d, want 0", i, v)
		}
	}
}

func TestDecodeStereoAudioOddPayloadTruncates(t *testing.T) {
	cs := newCodebookState()
	// An odd-length payload means the last unpaired byte is never
	// consumed; the output buffer is still sized len(payload)*2, but
	// only the paired-off prefix is written.
	pcm := cs.decodeStereoAudio(0, []byte{0, 0, 0})
	if len(pcm) != 6 {
		t.Fatalf("len(pcm) = %d, want 6", len(pcm))
	}
}
