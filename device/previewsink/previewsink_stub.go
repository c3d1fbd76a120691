//go:build !withcv
// +build !withcv

/*
NAME
  previewsink_stub.go

DESCRIPTION
  previewsink_stub.go replaces the GoCV-backed preview sink when built
  without the withcv tag, matching cmd/rv/probe_circleci.go's pattern
  for environments without OpenCV installed.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package previewsink

import (
	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

// Sink is a no-op stand-in for builds without GoCV.
type Sink struct{}

// New returns a no-op Sink for CircleCI-style builds lacking OpenCV.
func New(l logging.Logger, title string, factor int) *Sink { return &Sink{} }

func (s *Sink) Upload(frame *roq.Frame, width, height, stride, texHeight int) error { return nil }

func (s *Sink) Present() error { return nil }

func (s *Sink) Close() error { return nil }
