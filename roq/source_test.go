package roq

import "testing"

func TestMemSourceReadAdvancesAndEOF(t *testing.T) {
	s := newMemSource([]byte{1, 2, 3, 4}, false)
	if s.eof() {
		t.Fatal("fresh source should not be at EOF")
	}
	b, err := s.read(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 2 || b[0] != 1 || b[1] != 2 {
		t.Fatalf("got %v, want [1 2]", b)
	}
	if s.eof() {
		t.Fatal("should not be at EOF after reading 2 of 4 bytes")
	}
	if _, err := s.read(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.eof() {
		t.Fatal("should be at EOF after reading all bytes")
	}
}

func TestMemSourceReadPastEndFails(t *testing.T) {
	s := newMemSource([]byte{1, 2}, false)
	if _, err := s.read(3); err == nil {
		t.Fatal("expected a short-read error")
	}
}

func TestMemSourceSeekStartAndCurrent(t *testing.T) {
	s := newMemSource([]byte{1, 2, 3, 4, 5}, false)
	if err := s.seek(2, SeekStart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := s.read(1)
	if err != nil || b[0] != 3 {
		t.Fatalf("got %v, %v; want [3], nil", b, err)
	}
	if err := s.seek(-1, SeekCurrent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err = s.read(1)
	if err != nil || b[0] != 3 {
		t.Fatalf("got %v, %v; want [3], nil", b, err)
	}
}

func TestMemSourceSeekOutOfRangeFails(t *testing.T) {
	s := newMemSource([]byte{1, 2, 3}, false)
	if err := s.seek(10, SeekStart); err == nil {
		t.Fatal("expected an out-of-range seek error")
	}
}

func TestMemSourceDestroyReleasesOwnedMemory(t *testing.T) {
	s := newMemSource([]byte{1, 2, 3}, true)
	if err := s.destroy(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.bytes != nil {
		t.Error("destroy should release owned memory")
	}
}

func TestMemSourceDestroyKeepsBorrowedMemory(t *testing.T) {
	s := newMemSource([]byte{1, 2, 3}, false)
	if err := s.destroy(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.bytes == nil {
		t.Error("destroy should not release borrowed memory")
	}
}
