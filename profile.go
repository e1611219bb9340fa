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

// YAML session profiles, so an attack can be repeated without prompts.
package goglitch

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AttackType int

const (
	AttackTimed  AttackType = 1
	AttackSerial AttackType = 2
)

type Backend string

const (
	BackendPi     Backend = "pi"
	BackendCwLite Backend = "cwlite"
)

// Example:
//
//	attack: serial
//	backend: pi
//	device: /dev/ttyUSB0
//	baud: 115200
//	start: "Hit any key"
//	stop: "=>"
//	pollTimeout: 30s
type Profile struct {
	Attack     string  `yaml:"attack"`
	Backend    Backend `yaml:"backend"`
	OutputPin  string  `yaml:"outputPin"`
	InputPin   string  `yaml:"inputPin"`
	Device     string  `yaml:"device"`
	Baud       int     `yaml:"baud"`
	Start      string  `yaml:"start"`
	Stop       string  `yaml:"stop"`
	StartDelay int     `yaml:"startDelay"`
	StopDelay  int     `yaml:"stopDelay"`
	// Duration string such as "30s" or "500ms"; zero waits forever.
	PollTimeout time.Duration `yaml:"pollTimeout"`
}

func (p *Profile) AttackType() (AttackType, error) {
	switch p.Attack {
	case "timed", "TIMED", "1":
		return AttackTimed, nil
	case "serial", "SERIAL", "2":
		return AttackSerial, nil
	}
	return 0, fmt.Errorf("%w: attack %q (expects timed or serial)", ErrInvalidParameter, p.Attack)
}

// Checks every field the chosen attack uses.
func (p *Profile) Validate() error {
	attack, err := p.AttackType()
	if err != nil {
		return err
	}
	switch p.Backend {
	case "", BackendPi, BackendCwLite:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalidParameter, p.Backend)
	}
	if p.PollTimeout < 0 {
		return fmt.Errorf("%w: poll timeout %v", ErrInvalidParameter, p.PollTimeout)
	}
	if attack == AttackTimed {
		if err = ValidateDelay(p.StartDelay); err != nil {
			return fmt.Errorf("startDelay: %w", err)
		}
		if err = ValidateDelay(p.StopDelay); err != nil {
			return fmt.Errorf("stopDelay: %w", err)
		}
		return nil
	}
	if err = ValidateBaud(p.Baud); err != nil {
		return err
	}
	// The ChipWhisperer USART needs no device path.
	if p.Backend != BackendCwLite {
		if err = ValidateDevice(p.Device); err != nil {
			return err
		}
	}
	if err = ValidatePhrase([]byte(p.Start)); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err = ValidatePhrase([]byte(p.Stop)); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

// Exported for testing.
func LoadProfileIo(src io.Reader) (*Profile, error) {
	p := &Profile{}
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	err := dec.Decode(p)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing profile: %v", ErrInvalidParameter, err)
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func LoadProfile(filename string) (*Profile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Error opening profile: %v", err)
	}
	defer f.Close()
	return LoadProfileIo(f)
}

func (p *Profile) Save(filename string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("yaml.Marshal failed: %v", err)
	}
	return os.WriteFile(filename, data, 0644)
}
