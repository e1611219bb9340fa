// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/goglitch"
	"github.com/google/goglitch/cwlite"
	"github.com/google/goglitch/rpi"
	"github.com/google/goglitch/serialport"

	"github.com/golang/glog"
)

const defaultCwLitePin = "tio3"

type hardware struct {
	act goglitch.ActuatorInterface
	src goglitch.ByteSourceInterface
	// Closed in reverse order. The actuator restores the idle level on Close.
	closers []io.Closer
}

func (h *hardware) Close() {
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i].Close(); err != nil {
			glog.Errorf("Close failed: %v", err)
		}
	}
	h.closers = nil
}

func openHardware(prof *goglitch.Profile, attack goglitch.AttackType) (*hardware, error) {
	var err error
	h := &hardware{}
	switch prof.Backend {
	case goglitch.BackendCwLite:
		err = h.openCwLite(prof, attack)
	default:
		err = h.openPi(prof, attack)
	}
	if err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func (h *hardware) openPi(prof *goglitch.Profile, attack goglitch.AttackType) error {
	fmt.Printf("Initializing periph. . .")
	drivers, err := rpi.Init()
	if err != nil {
		fmt.Println(" ERROR")
		return err
	}
	fmt.Println(" SUCCESS")
	glog.Infof("Loaded drivers: %s", strings.Join(drivers, ", "))

	outPin := prof.OutputPin
	if outPin == "" {
		outPin = rpi.DefaultOutputPin
	}
	var inPin string
	if attack == goglitch.AttackTimed {
		if inPin = prof.InputPin; inPin == "" {
			inPin = rpi.DefaultInputPin
		}
	}
	act, err := rpi.OpenActuator(outPin, inPin)
	if err != nil {
		return err
	}
	h.act = act
	h.closers = append(h.closers, act)

	if attack == goglitch.AttackSerial {
		src, err := serialport.Open(prof.Device, prof.Baud)
		if err != nil {
			if ports, perr := serialport.Ports(); perr == nil && len(ports) > 0 {
				glog.Infof("Available serial devices: %s", strings.Join(ports, ", "))
			}
			return err
		}
		h.src = src
		h.closers = append(h.closers, src)
	}
	return nil
}

func (h *hardware) openCwLite(prof *goglitch.Profile, attack goglitch.AttackType) error {
	board, err := cwlite.OpenBoard()
	if err != nil {
		return err
	}
	h.closers = append(h.closers, board)

	pin := prof.OutputPin
	if pin == "" {
		pin = defaultCwLitePin
	}
	act, err := board.NewActuator(pin)
	if err != nil {
		return fmt.Errorf("Configuring %s: %w", pin, err)
	}
	h.act = act
	h.closers = append(h.closers, act)

	if attack == goglitch.AttackSerial {
		usart, err := board.NewUsart(prof.Baud)
		if err != nil {
			return err
		}
		h.src = usart
		h.closers = append(h.closers, usart)
	}
	return nil
}
