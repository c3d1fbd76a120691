package roq

import "testing"

func TestErrorMessageIncludesWrappedError(t *testing.T) {
	inner := newError("readChunkHeader", FileRead, errShortRead)
	msg := inner.Error()
	if msg == "" {
		t.Fatal("expected a non-empty error message")
	}
	if inner.Unwrap() != errShortRead {
		t.Errorf("Unwrap() = %v, want errShortRead", inner.Unwrap())
	}
}

func TestErrorMessageWithoutWrappedError(t *testing.T) {
	err := newError("applyInfo", InvalidDimension, nil)
	if err.Unwrap() != nil {
		t.Error("Unwrap() should be nil when no underlying error was given")
	}
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestLastErrno(t *testing.T) {
	setLastErrno(BadVQStream)
	if LastErrno() != BadVQStream {
		t.Errorf("LastErrno() = %v, want BadVQStream", LastErrno())
	}
}

func TestErrnoStringUnknownCode(t *testing.T) {
	var e Errno = 999
	if e.String() == "" {
		t.Fatal("expected a non-empty string for an unknown errno")
	}
}
