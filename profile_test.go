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

package goglitch_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/goglitch"
)

func TestLoadSerialProfile(t *testing.T) {
	src := `
attack: serial
backend: pi
device: /dev/ttyUSB0
baud: 115200
start: "Hit any key"
stop: "=>"
pollTimeout: 30s
`
	p, err := goglitch.LoadProfileIo(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadProfileIo failed: %v", err)
	}
	if a, _ := p.AttackType(); a != goglitch.AttackSerial {
		t.Errorf("AttackType() = %v, expected serial", a)
	}
	if p.Start != "Hit any key" || p.Stop != "=>" || p.Baud != 115200 || p.PollTimeout != 30*time.Second {
		t.Errorf("Unexpected profile %+v", p)
	}
}

func TestLoadTimedProfile(t *testing.T) {
	p, err := goglitch.LoadProfileIo(strings.NewReader("attack: timed\nstartDelay: 5\nstopDelay: 300\n"))
	if err != nil {
		t.Fatalf("LoadProfileIo failed: %v", err)
	}
	if a, _ := p.AttackType(); a != goglitch.AttackTimed {
		t.Errorf("AttackType() = %v, expected timed", a)
	}
}

func TestLoadProfileRejects(t *testing.T) {
	cases := []string{
		"attack: laser\n",
		"attack: timed\nstartDelay: 0\nstopDelay: 1\n",
		"attack: timed\nstartDelay: 1\nstopDelay: 301\n",
		"attack: serial\ndevice: /dev/ttyS0\nbaud: 250001\nstart: a\nstop: b\n",
		"attack: serial\ndevice: /dev/ttyS0\nbaud: 9600\nstart: \"\"\nstop: b\n",
		"attack: serial\nbaud: 9600\nstart: a\nstop: b\n",
		"attack: serial\nbackend: fpga\n",
		"attack: timed\nstartDelay: 1\nstopDelay: 1\nbogus: 1\n",
	}
	for _, c := range cases {
		if _, err := goglitch.LoadProfileIo(strings.NewReader(c)); !errors.Is(err, goglitch.ErrInvalidParameter) {
			t.Errorf("LoadProfileIo(%q) err = %v, expected ErrInvalidParameter", c, err)
		}
	}
}

func TestCwLiteProfileNeedsNoDevice(t *testing.T) {
	src := "attack: serial\nbackend: cwlite\nbaud: 38400\nstart: a\nstop: b\n"
	if _, err := goglitch.LoadProfileIo(strings.NewReader(src)); err != nil {
		t.Errorf("LoadProfileIo failed: %v", err)
	}
}

func TestProfileKeepsSubSecondPollTimeout(t *testing.T) {
	p, err := goglitch.LoadProfileIo(strings.NewReader("attack: timed\nstartDelay: 1\nstopDelay: 1\npollTimeout: 500ms\n"))
	if err != nil {
		t.Fatalf("LoadProfileIo failed: %v", err)
	}
	if p.PollTimeout != 500*time.Millisecond {
		t.Errorf("PollTimeout = %v, expected 500ms", p.PollTimeout)
	}
}
