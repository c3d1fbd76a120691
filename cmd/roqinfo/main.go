/*
NAME
  roqinfo is a small CLI that opens a RoQ file and prints its stream
  metadata.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements roqinfo, printing a .roq file's stream
// metadata without decoding any video or audio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: roqinfo <file.roq>")
		os.Exit(2)
	}

	log := logging.New(logging.Info, os.Stderr, true)

	s, err := roq.NewFromFilename(flag.Arg(0), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roqinfo: %v\n", err)
		os.Exit(1)
	}
	defer s.Destroy()

	fmt.Printf("width:     %d\n", s.Width())
	fmt.Printf("height:    %d\n", s.Height())
	fmt.Printf("framerate: %d\n", s.Framerate())
}
