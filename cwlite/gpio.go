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

// Glitch line on a CWLite target IO pin, power-sense on the trigger input.
package cwlite

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/google/goglitch"
)

const (
	ioRouteGpio  uint8 = 0x40
	ioRouteGpioE uint8 = 0x80

	statusExtMask uint8 = 0x04

	// nRST is controlled through byte 6 of the IO route register.
	nrstByte     = 6
	nrstEnable   = 1 << 0
	nrstHighMask = 1 << 1
)

// Pin names accepted by NewActuator, mapped to IO route register bytes.
var Pins = map[string]int{
	"tio1": 0,
	"tio2": 1,
	"tio3": 2,
	"tio4": 3,
	"nrst": nrstByte,
}

// Implements goglitch.ActuatorInterface. The idle level is high.
type Actuator struct {
	mem *Memory
	pin int
}

func NewActuator(mem *Memory, pin string) (*Actuator, error) {
	idx, ok := Pins[pin]
	if !ok {
		return nil, fmt.Errorf("%w: unknown CWLite pin %q", goglitch.ErrInvalidParameter, pin)
	}
	a := &Actuator{mem, idx}
	if err := a.set(goglitch.High); err != nil {
		return nil, fmt.Errorf("%w: setting %s as output: %v", goglitch.ErrInit, pin, err)
	}
	return a, nil
}

func (a *Actuator) set(level goglitch.Level) error {
	buf := make([]byte, 8)
	if err := a.mem.Read(addrIoRoute, buf); err != nil {
		return err
	}
	if a.pin == nrstByte {
		buf[a.pin] |= nrstEnable
		if level == goglitch.High {
			buf[a.pin] |= nrstHighMask
		} else {
			buf[a.pin] &= ^uint8(nrstHighMask)
		}
	} else {
		buf[a.pin] = ioRouteGpioE
		if level == goglitch.High {
			buf[a.pin] |= ioRouteGpio
		}
	}
	glog.V(1).Infof("[io-route] pin %d -> %v", a.pin, level)
	return a.mem.Write(addrIoRoute, buf, true)
}

func (a *Actuator) Assert() error {
	return a.set(goglitch.Low)
}

func (a *Actuator) Deassert() error {
	return a.set(goglitch.High)
}

// Reports the state of the digital trigger input.
func (a *Actuator) ReadInput() (goglitch.Level, error) {
	status := make([]byte, 1)
	if err := a.mem.Read(addrStatus, status); err != nil {
		return goglitch.Low, fmt.Errorf("%w: reading status: %v", goglitch.ErrSource, err)
	}
	return goglitch.Level(status[0]&statusExtMask != 0), nil
}

func (a *Actuator) Close() error {
	return a.Deassert()
}
