/*
NAME
  gpiopoller.go

DESCRIPTION
  gpiopoller.go implements a controller-input poller, reading a small
  button pad over GPIO on a Raspberry Pi. Grounded on
  cmd/speaker/main.go's use of github.com/kidoman/embd for hardware
  I/O, generalized from its one-shot I2C amplifier write to a polled
  set of embd.DigitalPin reads for play/pause/stop/loop buttons.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package gpiopoller polls a GPIO button pad for player transport
// controls (play/pause/stop/loop), the Raspberry-Pi analogue of the
// Dreamcast controller polling in dreamroq-player.c.
package gpiopoller

import (
	"fmt"
	"time"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"

	"github.com/ausocean/utils/logging"
)

// Button names an action a button pin triggers.
type Button int

const (
	ButtonPlayPause Button = iota
	ButtonStop
	ButtonLoop
)

// Poller reads a fixed set of GPIO pins and reports rising edges
// (button presses) via a channel of Button.
type Poller struct {
	l        logging.Logger
	pins     map[Button]embd.DigitalPin
	last     map[Button]int
	Presses  chan Button
	stop     chan struct{}
}

// pinNumbers maps each Button to the BCM GPIO pin it reads.
var pinNumbers = map[Button]int{
	ButtonPlayPause: 17,
	ButtonStop:      27,
	ButtonLoop:      22,
}

// New initializes the embd GPIO subsystem and opens the button pins.
func New(l logging.Logger) (*Poller, error) {
	if err := embd.InitGPIO(); err != nil {
		return nil, fmt.Errorf("gpiopoller: embd.InitGPIO: %w", err)
	}

	p := &Poller{
		l:       l,
		pins:    make(map[Button]embd.DigitalPin),
		last:    make(map[Button]int),
		Presses: make(chan Button, 8),
		stop:    make(chan struct{}),
	}

	for btn, n := range pinNumbers {
		pin, err := embd.NewDigitalPin(n)
		if err != nil {
			embd.CloseGPIO()
			return nil, fmt.Errorf("gpiopoller: opening pin %d: %w", n, err)
		}
		if err := pin.SetDirection(embd.In); err != nil {
			embd.CloseGPIO()
			return nil, fmt.Errorf("gpiopoller: setting direction on pin %d: %w", n, err)
		}
		p.pins[btn] = pin
	}

	return p, nil
}

// Run polls the button pins every interval until Close is called,
// sending a Button on Presses for each low-to-high transition.
func (p *Poller) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			for btn, pin := range p.pins {
				v, err := pin.Read()
				if err != nil {
					p.l.Error("gpiopoller: read failed", "button", int(btn), "error", err.Error())
					continue
				}
				if v == 1 && p.last[btn] == 0 {
					select {
					case p.Presses <- btn:
					default:
						p.l.Warning("gpiopoller: presses channel full, dropping event")
					}
				}
				p.last[btn] = v
			}
		}
	}
}

// Close stops polling and releases the GPIO pins.
func (p *Poller) Close() error {
	close(p.stop)
	for _, pin := range p.pins {
		pin.Close()
	}
	embd.CloseGPIO()
	return nil
}
