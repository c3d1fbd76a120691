/*
NAME
  roqplay is the full interactive RoQ player: ALSA playback, an
  optional desktop preview window, an optional GPIO button pad, a
  watched directory of incoming files, and systemd readiness/watchdog
  notification when run as a service.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements roqplay, an interactive RoQ playback client.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/fsnotify/fsnotify"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/roq/device/alsasink"
	"github.com/ausocean/roq/device/gpiopoller"
	"github.com/ausocean/roq/device/previewsink"
	"github.com/ausocean/roq/internal/ring"
	"github.com/ausocean/roq/player"
	"github.com/ausocean/roq/roq"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, matching cmd/speaker's lumberjack setup.
const (
	logPath      = "roqplay.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

const watchdogInterval = 10 * time.Second

func main() {
	loop := flag.Bool("loop", false, "loop each file")
	volume := flag.Int("volume", player.DefaultVolume, "initial playback volume, 0..255")
	watchDir := flag.String("watch", "", "directory to watch for new .roq files")
	runDaemon := flag.Bool("daemon", false, "notify systemd of readiness and send watchdog pings")
	preview := flag.Bool("preview", false, "show a desktop preview window")
	gpio := flag.Bool("gpio", false, "poll a GPIO button pad for transport controls")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	queue := append([]string{}, flag.Args()...)
	if len(queue) == 0 && *watchDir == "" {
		fmt.Fprintln(os.Stderr, "usage: roqplay [flags] <file.roq> [more.roq ...]")
		os.Exit(2)
	}

	var newFiles chan string
	if *watchDir != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Error("failed to start file watcher", "error", err.Error())
			os.Exit(1)
		}
		defer watcher.Close()
		if err := watcher.Add(*watchDir); err != nil {
			log.Error("failed to watch directory", "dir", *watchDir, "error", err.Error())
			os.Exit(1)
		}
		newFiles = make(chan string, 16)
		go func() {
			for ev := range watcher.Events {
				if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 && strings.HasSuffix(ev.Name, ".roq") {
					newFiles <- ev.Name
				}
			}
		}()
		log.Info("watching directory for new RoQ files", "dir", *watchDir)
	}

	var poller *gpiopoller.Poller
	if *gpio {
		var err error
		poller, err = gpiopoller.New(log)
		if err != nil {
			log.Warning("gpio disabled, failed to initialize", "error", err.Error())
		} else {
			go poller.Run(20 * time.Millisecond)
			defer poller.Close()
		}
	}

	if *runDaemon {
		if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
			log.Warning("systemd notify failed", "error", err.Error())
		}
	}

	lastWatchdog := time.Now()

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		if err := playOne(log, path, *loop, *volume, *preview, poller, *runDaemon, &lastWatchdog); err != nil {
			log.Error("playback failed", "path", path, "error", err.Error())
		}

		select {
		case f := <-newFiles:
			queue = append(queue, f)
		default:
		}
	}
}

func playOne(log logging.Logger, path string, loop bool, volume int, preview bool, poller *gpiopoller.Poller, daemonMode bool, lastWatchdog *time.Time) error {
	log.Info("opening file", "path", filepath.Base(path))

	stream, err := roq.NewFromFilename(path, log)
	if err != nil {
		return err
	}

	pcmRing := ring.New(player.RingCapacity)
	audioSink := alsasink.New(log, pcmRing, "")

	var renderSink player.RenderSink
	if preview {
		renderSink = previewsink.New(log, filepath.Base(path), 2)
	}

	cfg := player.NewConfig(log)
	cfg.Loop = loop
	cfg.Volume = volume
	cfg.Ring = pcmRing // same buffer audioSink reads from, so decoded audio is actually heard

	p, err := player.New(stream, renderSink, audioSink, cfg)
	if err != nil {
		return err
	}

	p.Play(func() {
		if daemonMode && time.Since(*lastWatchdog) > watchdogInterval {
			daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			*lastWatchdog = time.Now()
		}
		if poller == nil {
			return
		}
		select {
		case btn := <-poller.Presses:
			switch btn {
			case gpiopoller.ButtonPlayPause:
				if p.IsPlaying() {
					p.Pause()
				} else {
					p.Play(nil)
				}
			case gpiopoller.ButtonStop:
				p.Stop()
			case gpiopoller.ButtonLoop:
				p.SetLoop(!p.GetLoop())
			}
		default:
		}
	})

	return p.Shutdown()
}
