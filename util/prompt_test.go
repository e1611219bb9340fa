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

package util_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/goglitch"
	"github.com/google/goglitch/util"
)

func TestPromptSerialProfile(t *testing.T) {
	in := strings.NewReader("2\n115200\n/dev/ttyUSB0\nHit any key\n=>\n")
	out := &bytes.Buffer{}
	p, err := util.NewPrompter(in, out).Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	want := goglitch.Profile{Attack: "serial", Baud: 115200, Device: "/dev/ttyUSB0",
		Start: "Hit any key", Stop: "=>"}
	if *p != want {
		t.Errorf("Profile = %+v, expected %+v", *p, want)
	}
	if err = p.Validate(); err != nil {
		t.Errorf("Prompted profile does not validate: %v", err)
	}
	if !strings.Contains(out.String(), "Attack style: SERIAL") {
		t.Errorf("Missing attack style in output:\n%s", out.String())
	}
}

func TestPromptTimedProfile(t *testing.T) {
	in := strings.NewReader("1\n 5 \n300")
	p, err := util.NewPrompter(in, &bytes.Buffer{}).Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.Attack != "timed" || p.StartDelay != 5 || p.StopDelay != 300 {
		t.Errorf("Unexpected profile %+v", p)
	}
}

func TestPromptAbortsOnInvalidAnswer(t *testing.T) {
	cases := []string{
		"3\n",
		"x\n",
		"1\n0\n",
		"1\n10\n301\n",
		"2\n0\n",
		"2\n250001\n",
		"2\n9600\n\n",
		"2\n9600\n/dev/ttyS0\n\n",
		"2\n9600\n/dev/ttyS0\nstart\n" + strings.Repeat("s", 100) + "\n",
	}
	for _, c := range cases {
		_, err := util.NewPrompter(strings.NewReader(c), &bytes.Buffer{}).Profile()
		if !errors.Is(err, goglitch.ErrInvalidParameter) {
			t.Errorf("Profile(%q) err = %v, expected ErrInvalidParameter", c, err)
		}
	}
}

func TestPromptFailsOnClosedInput(t *testing.T) {
	if _, err := util.NewPrompter(strings.NewReader(""), &bytes.Buffer{}).Profile(); err == nil {
		t.Errorf("Profile on empty input expected to fail")
	}
}
