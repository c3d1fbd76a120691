package roq

import "testing"

func TestReadChunkHeaderRejectsOversizeChunk(t *testing.T) {
	src := newMemSource(encodeChunkHeader(idInfo, chunkSizeCap+1, 0), false)
	if _, err := readChunkHeader(src); err == nil {
		t.Fatal("expected an error for a chunk exceeding the size cap")
	}
}

func TestReadChunkHeaderAllowsSignatureSentinel(t *testing.T) {
	src := newMemSource(encodeChunkHeader(idSignature, 0xFFFFFFFF, 30), false)
	c, err := readChunkHeader(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.id != idSignature || c.arg != 30 {
		t.Fatalf("got %+v", c)
	}
}

func TestReadChunkHeaderShortRead(t *testing.T) {
	src := newMemSource([]byte{1, 2, 3}, false)
	if _, err := readChunkHeader(src); err == nil {
		t.Fatal("expected a short-read error")
	}
}
