/*
NAME
  roqdump is a headless decoder: it dumps every frame of a .roq file
  to a numbered PPM image and the decoded audio to a single WAV file,
  for use as golden-file fixtures in tests.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements roqdump, a headless RoQ decoder producing
// PPM frames and a WAV audio track for golden-file testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ausocean/roq/codec/pcm"
	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

const dumpSampleRate = 22050

func main() {
	outDir := flag.String("out", ".", "output directory for frames and audio")
	format := flag.String("format", "S16_LE", "PCM sample format of the decoded audio (S16_LE or S32_LE)")
	mono := flag.Bool("mono", false, "reduce stereo audio to mono (left channel) before writing")
	amplify := flag.Float64("amplify", 0, "amplification factor applied to audio before writing; 0 disables")
	resampleRate := flag.Uint("resample", 0, "resample audio to this rate in Hz before writing; 0 disables")
	filterKind := flag.String("filter", "none", "frequency filter to apply: none, lowpass, highpass, bandpass, bandstop")
	cutoff := flag.Float64("cutoff", 0, "filter cutoff frequency in Hz (lower cutoff for bandpass/bandstop)")
	cutoff2 := flag.Float64("cutoff2", 0, "upper cutoff frequency in Hz, for bandpass/bandstop only")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: roqdump -out <dir> <file.roq>")
		os.Exit(2)
	}

	log := logging.New(logging.Info, os.Stderr, true)

	sformat, err := pcm.SFFromString(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roqdump: %v\n", err)
		os.Exit(2)
	}

	s, err := roq.NewFromFilename(flag.Arg(0), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roqdump: %v\n", err)
		os.Exit(1)
	}
	defer s.Destroy()

	wavFile, err := os.Create(filepath.Join(*outDir, "audio.wav"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "roqdump: %v\n", err)
		os.Exit(1)
	}
	defer wavFile.Close()

	var enc *wav.Encoder
	var filter pcm.AudioFilter
	var filterBuilt bool

	frameNum := 0
	s.SetVideoCallback(func(frame *roq.Frame, width, height, stride, texHeight int, _ interface{}) {
		path := filepath.Join(*outDir, fmt.Sprintf("frame%04d.ppm", frameNum))
		if err := writePPM(path, frame, width, height, stride); err != nil {
			log.Error("failed writing frame", "path", path, "error", err.Error())
		}
		frameNum++
	}, nil)

	s.SetAudioCallback(func(data []byte, channels int, _ interface{}) {
		wantHz := *resampleRate
		if wantHz == 0 {
			wantHz = dumpSampleRate
		}
		log.Info("decoded audio chunk", "bytes", len(data),
			"nominal", pcm.DataSize(dumpSampleRate, uint(channels), 16, float64(len(data))/(dumpSampleRate*2*float64(channels))))

		buf := pcm.Buffer{
			Format: pcm.BufferFormat{SFormat: sformat, Rate: dumpSampleRate, Channels: uint(channels)},
			Data:   data,
		}

		if !filterBuilt {
			filter, err = buildFilter(*filterKind, *cutoff, *cutoff2, buf.Format)
			if err != nil {
				log.Error("failed to build audio filter, continuing unfiltered", "error", err.Error())
			}
			filterBuilt = true
		}
		if filter != nil {
			out, err := filter.Apply(buf)
			if err != nil {
				log.Error("audio filter failed, using unfiltered audio", "error", err.Error())
			} else {
				buf.Data = out
			}
		}

		if *amplify > 0 {
			out, err := pcm.NewAmplifier(*amplify).Apply(buf)
			if err != nil {
				log.Error("amplification failed, using unamplified audio", "error", err.Error())
			} else {
				buf.Data = out
			}
		}

		if *mono && buf.Format.Channels == 2 {
			mbuf, err := pcm.StereoToMono(buf)
			if err != nil {
				log.Error("stereo-to-mono reduction failed", "error", err.Error())
			} else {
				buf = mbuf
			}
		}

		if buf.Format.Rate != wantHz {
			rbuf, err := pcm.Resample(buf, wantHz)
			if err != nil {
				log.Error("resample failed, writing at native rate", "error", err.Error())
			} else {
				buf = rbuf
			}
		}

		if enc == nil {
			enc = wav.NewEncoder(wavFile, int(buf.Format.Rate), 16, int(buf.Format.Channels), 1)
		}
		samples := make([]int, len(buf.Data)/2)
		for i := range samples {
			samples[i] = int(int16(buf.Data[2*i]) | int16(buf.Data[2*i+1])<<8)
		}
		ibuf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: int(buf.Format.Channels), SampleRate: int(buf.Format.Rate)},
			Data:           samples,
			SourceBitDepth: 16,
		}
		if err := enc.Write(ibuf); err != nil {
			log.Error("failed writing audio", "error", err.Error())
		}
	}, nil)

	for s.Decode() {
	}
	if enc != nil {
		enc.Close()
	}

	log.Info("dump complete", "frames", frameNum, "width", s.Width(), "height", s.Height())
}

// buildFilter constructs the frequency filter requested by -filter,
// using the taps count roqdump always asks for (127, matching
// diag.Denoise's lowpass filter). "none" returns a nil filter.
func buildFilter(kind string, cutoff, cutoff2 float64, format pcm.BufferFormat) (pcm.AudioFilter, error) {
	const taps = 127
	// Each constructor returns a typed *SelectiveFrequencyFilter; a nil
	// error-path result must not be forwarded to the AudioFilter return
	// as-is, since a nil concrete pointer boxed into an interface is a
	// non-nil interface value (filter != nil would then be true).
	var (
		f   *pcm.SelectiveFrequencyFilter
		err error
	)
	switch kind {
	case "none":
		return nil, nil
	case "lowpass":
		f, err = pcm.NewLowPass(cutoff, format, taps)
	case "highpass":
		f, err = pcm.NewHighPass(cutoff, format, taps)
	case "bandpass":
		f, err = pcm.NewBandPass(cutoff, cutoff2, format, taps)
	case "bandstop":
		f, err = pcm.NewBandStop(cutoff, cutoff2, format, taps)
	default:
		return nil, fmt.Errorf("unknown filter kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// writePPM writes a binary PPM (P6) of frame's width x height region,
// discarding the stride/texture_height padding.
func writePPM(path string, frame *roq.Frame, width, height, stride int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	pix := frame.Pix()
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		off := y * stride
		for x := 0; x < width; x++ {
			v := pix[off+x]
			row[x*3] = byte((v>>11)&0x1F) << 3
			row[x*3+1] = byte((v>>5)&0x3F) << 2
			row[x*3+2] = byte(v&0x1F) << 3
		}
		if _, err := f.Write(row); err != nil {
			return err
		}
	}
	return nil
}
