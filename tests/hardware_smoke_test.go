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

// Hardware smoke tests. Skipped unless the hardware flags are given:
//
// $ go test ./tests -pi-loopback=/dev/ttyAMA0
// $ go test ./tests -cwlite
package main

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/google/goglitch"
	"github.com/google/goglitch/cwlite"
	"github.com/google/goglitch/rpi"
	"github.com/google/goglitch/serialport"
	"go.bug.st/serial"
)

var (
	piLoopback = flag.String("pi-loopback", "", "Serial device whose TX is wired to its RX")
	cwliteFlag = flag.Bool("cwlite", false, "Run tests against an attached CWLite")
)

// Writes the trigger phrases to a looped-back port and expects one full
// glitch cycle on the default pins.
func TestPiSerialLoopback(t *testing.T) {
	if *piLoopback == "" {
		t.Skip("-pi-loopback not set")
	}
	if _, err := rpi.Init(); err != nil {
		t.Fatal(err)
	}
	act, err := rpi.OpenActuator(rpi.DefaultOutputPin, "")
	if err != nil {
		t.Fatal(err)
	}
	defer act.Close()

	src, err := serialport.Open(*piLoopback, 115200)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	tx, err := serial.Open(*piLoopback, &serial.Mode{BaudRate: 115200})
	if err != nil {
		t.Fatal(err)
	}
	defer tx.Close()

	mode := &goglitch.SerialMode{Source: src, Start: []byte("START"), Stop: []byte("STOP")}
	s, err := goglitch.NewSession(mode, act, goglitch.WithPollTimeout(5*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	go tx.Write([]byte("boot...STARTxxxSTOP\n"))
	if state, err := s.Run(context.Background()); err != nil || state != goglitch.StateReleased {
		t.Errorf("Run = %v, %v; expected StateReleased", state, err)
	}
}

// Toggles the glitch pin and reads the trigger input once.
func TestCwLiteActuator(t *testing.T) {
	if !*cwliteFlag {
		t.Skip("-cwlite not set")
	}
	board, err := cwlite.OpenBoard()
	if err != nil {
		t.Fatal(err)
	}
	defer board.Close()

	act, err := board.NewActuator("tio3")
	if err != nil {
		t.Fatal(err)
	}
	defer act.Close()
	if err = act.Assert(); err != nil {
		t.Errorf("Assert failed: %v", err)
	}
	if err = act.Deassert(); err != nil {
		t.Errorf("Deassert failed: %v", err)
	}
	if _, err = act.ReadInput(); err != nil {
		t.Errorf("ReadInput failed: %v", err)
	}
}
