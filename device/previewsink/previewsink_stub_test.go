//go:build !withcv
// +build !withcv

package previewsink

import (
	"testing"

	"github.com/ausocean/utils/logging"
)

func TestStubSinkIsANoOp(t *testing.T) {
	s := New((*logging.TestLogger)(t), "preview", 2)
	if err := s.Upload(nil, 16, 16, 16, 16); err != nil {
		t.Errorf("Upload: %v", err)
	}
	if err := s.Present(); err != nil {
		t.Errorf("Present: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
