package ring

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	b := New(8)
	if err := b.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", b.Size())
	}
	out := make([]byte, 3)
	if err := b.Read(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", out)
	}
	if b.Size() != 0 {
		t.Fatalf("Size() = %d, want 0 after draining", b.Size())
	}
}

func TestWriteOverflowRejectedAndLeavesBufferUnchanged(t *testing.T) {
	b := New(4)
	if err := b.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Write([]byte{4, 5}); err == nil {
		t.Fatal("expected an overflow error")
	}
	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3 (failed write should not partially apply)", b.Size())
	}
}

func TestReadUnderflowRejectedAndLeavesBufferUnchanged(t *testing.T) {
	b := New(4)
	b.Write([]byte{1, 2})
	out := make([]byte, 3)
	if err := b.Read(out); err == nil {
		t.Fatal("expected an underflow error")
	}
	if b.Size() != 2 {
		t.Fatalf("Size() = %d, want 2 (failed read should not partially apply)", b.Size())
	}
}

func TestOverflowUnderflowPredicates(t *testing.T) {
	b := New(4)
	b.Write([]byte{1, 2})
	if !b.Overflow(3) {
		t.Error("Overflow(3) should be true with only 2 bytes free")
	}
	if b.Overflow(2) {
		t.Error("Overflow(2) should be false with exactly 2 bytes free")
	}
	if !b.Underflow(3) {
		t.Error("Underflow(3) should be true with only 2 bytes stored")
	}
	if b.Underflow(2) {
		t.Error("Underflow(2) should be false with exactly 2 bytes stored")
	}
}

func TestWrapsAroundCapacity(t *testing.T) {
	b := New(4)
	b.Write([]byte{1, 2, 3})
	out := make([]byte, 2)
	b.Read(out) // drains [1 2], tail advances to 2, size=1

	if err := b.Write([]byte{4, 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out = make([]byte, 3)
	if err := b.Read(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte{3, 4, 5}) {
		t.Fatalf("got %v, want [3 4 5]", out)
	}
}

func TestReset(t *testing.T) {
	b := New(4)
	b.Write([]byte{1, 2, 3})
	b.Reset()
	if b.Size() != 0 {
		t.Fatalf("Size() after Reset() = %d, want 0", b.Size())
	}
	if err := b.Write([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("unexpected error after Reset(): %v", err)
	}
}
