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

// Interactive operator prompts. Any invalid answer aborts; there is no
// retry loop.
package util

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/goglitch"
)

type Prompter struct {
	rd  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{bufio.NewReader(in), out}
}

// Reads one line. Surrounding newlines are dropped, inner spaces are kept.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.rd.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return "", fmt.Errorf("Reading answer: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) Int(question string) (int, error) {
	line, err := p.Line(question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", goglitch.ErrInvalidParameter, line)
	}
	return v, nil
}

// Asks for the attack and its parameters in the order the hardware is set
// up: attack type, then serial settings or delays.
func (p *Prompter) Profile() (*goglitch.Profile, error) {
	prof := &goglitch.Profile{}
	choice, err := p.Int("What type of attack? TIMED [1] or SERIAL [2]: ")
	if err != nil {
		return nil, err
	}
	switch goglitch.AttackType(choice) {
	case goglitch.AttackTimed:
		prof.Attack = "timed"
		fmt.Fprintf(p.out, "Attack style: TIMED\n\n")
		return prof, p.timed(prof)
	case goglitch.AttackSerial:
		prof.Attack = "serial"
		fmt.Fprintf(p.out, "Attack style: SERIAL\n\n")
		return prof, p.serial(prof)
	}
	return nil, fmt.Errorf("%w: invalid selection %d, expect 1 or 2", goglitch.ErrInvalidParameter, choice)
}

func (p *Prompter) serial(prof *goglitch.Profile) error {
	var err error
	if prof.Baud, err = p.Int("What BAUD (9600, 115200, 38400, etc): "); err != nil {
		return err
	}
	if err = goglitch.ValidateBaud(prof.Baud); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Baud = %d\n\n", prof.Baud)

	if prof.Device, err = p.Line("Enter serial device descriptor: "); err != nil {
		return err
	}
	if err = goglitch.ValidateDevice(prof.Device); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Device descriptor = `%s`\n\n", prof.Device)

	phrases := []struct {
		verb string
		dst  *string
	}{
		{"start", &prof.Start},
		{"stop", &prof.Stop},
	}
	for _, ph := range phrases {
		q := fmt.Sprintf("What phrase would you like to %s glitching on? (no longer than %d characters):\n",
			ph.verb, goglitch.MaxPhraseLen)
		if *ph.dst, err = p.Line(q); err != nil {
			return err
		}
		if err = goglitch.ValidatePhrase([]byte(*ph.dst)); err != nil {
			return fmt.Errorf("%s %w", ph.verb, err)
		}
		fmt.Fprintf(p.out, "Trigger string length = %d\nGlitch string = '%s'\n\n", len(*ph.dst), *ph.dst)
	}
	return nil
}

func (p *Prompter) timed(prof *goglitch.Profile) error {
	var err error
	if prof.StartDelay, err = p.Int("How long after boot to start glitching (1 - 300 secs): "); err != nil {
		return err
	}
	if err = goglitch.ValidateDelay(prof.StartDelay); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "startTime = %d\n\n", prof.StartDelay)

	if prof.StopDelay, err = p.Int("How long after glitching has started to stop (1 - 300 secs): "); err != nil {
		return err
	}
	if err = goglitch.ValidateDelay(prof.StopDelay); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "stopTime = %d\n\n", prof.StopDelay)
	return nil
}
