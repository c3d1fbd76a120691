package player

import (
	stderrors "errors"
	"testing"
)

func TestErrnoStringKnownCodes(t *testing.T) {
	cases := map[Errno]string{
		Success:            "success",
		SourceError:        "source error",
		SndInitFailure:     "sound init failure",
		FormatInitFailure:  "format init failure",
		OutOfMemory:        "out of memory",
		OutOfVidMemory:     "out of video memory",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("Errno(%d).String() = %q, want %q", int(code), got, want)
		}
	}
}

func TestErrnoStringUnknownCode(t *testing.T) {
	got := Errno(99).String()
	if got == "" {
		t.Fatal("unknown errno should still produce a non-empty string")
	}
}

func TestErrorMessageWithWrappedCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := newError("New", SourceError, cause)
	want := "player: New: source error: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, err) {
		t.Fatal("error should be comparable to itself")
	}
	if stderrors.Unwrap(err) != cause {
		t.Error("Unwrap should return the wrapped cause")
	}
}

func TestErrorMessageWithoutWrappedCause(t *testing.T) {
	err := newError("Volume", FormatInitFailure, nil)
	want := "player: Volume: format init failure"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if stderrors.Unwrap(err) != nil {
		t.Error("Unwrap should return nil when no cause was given")
	}
}

func TestLastErrnoRecordsSetLastErrno(t *testing.T) {
	setLastErrno(OutOfVidMemory)
	if got := LastErrno(); got != OutOfVidMemory {
		t.Errorf("LastErrno() = %v, want %v", got, OutOfVidMemory)
	}
}
