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

// Glitch line and power-sense input on Raspberry Pi GPIO pins.
package rpi

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/google/goglitch"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// BCM numbering. The output drives the MUX select line, the input senses
// the target's VCC.
const (
	DefaultOutputPin = "GPIO4"
	DefaultInputPin  = "GPIO17"
)

// Loads the host drivers and returns the names of the ones that loaded.
func Init() ([]string, error) {
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: periph host init: %v", goglitch.ErrInit, err)
	}
	var names []string
	for _, d := range state.Loaded {
		names = append(names, d.String())
	}
	for _, f := range state.Failed {
		glog.Warningf("periph driver %s failed: %v", f.D, f.Err)
	}
	return names, nil
}

// Implements goglitch.ActuatorInterface. The glitch line idles high so the
// target rail stays connected; asserting drives it low.
type Actuator struct {
	out  gpio.PinIO
	in   gpio.PinIO
	idle gpio.Level
}

// Looks up pins by name. inName may be empty when no power-sense input is
// wired.
func OpenActuator(outName, inName string) (*Actuator, error) {
	out := gpioreg.ByName(outName)
	if out == nil {
		return nil, fmt.Errorf("%w: %s is a bad gpio pin", goglitch.ErrInit, outName)
	}
	var in gpio.PinIO
	if inName != "" {
		if in = gpioreg.ByName(inName); in == nil {
			return nil, fmt.Errorf("%w: %s is a bad gpio pin", goglitch.ErrInit, inName)
		}
	}
	return NewActuator(out, in)
}

func NewActuator(out, in gpio.PinIO) (*Actuator, error) {
	a := &Actuator{out: out, in: in, idle: gpio.High}
	if err := out.Out(a.idle); err != nil {
		return nil, fmt.Errorf("%w: setting %s as output: %v", goglitch.ErrInit, out, err)
	}
	if in != nil {
		if err := in.In(gpio.PullDown, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("%w: setting %s as input: %v", goglitch.ErrInit, in, err)
		}
	}
	glog.Infof("Glitch line on %s (idle %v), power-sense on %v", out, a.idle, in)
	return a, nil
}

func (a *Actuator) Assert() error {
	return a.out.Out(!a.idle)
}

func (a *Actuator) Deassert() error {
	return a.out.Out(a.idle)
}

func (a *Actuator) ReadInput() (goglitch.Level, error) {
	if a.in == nil {
		return goglitch.Low, fmt.Errorf("%w: no power-sense pin configured", goglitch.ErrSource)
	}
	return goglitch.Level(a.in.Read() == gpio.High), nil
}

// Leaves the glitch line at its idle level.
func (a *Actuator) Close() error {
	return a.Deassert()
}
