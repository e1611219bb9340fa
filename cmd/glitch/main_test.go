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
	"testing"
	"time"

	"github.com/google/goglitch"
)

type closer struct {
	name  string
	order *[]string
}

func (c closer) Close() error {
	*c.order = append(*c.order, c.name)
	return nil
}

func TestHardwareClosesInReverseOrder(t *testing.T) {
	var order []string
	h := &hardware{}
	for _, n := range []string{"board", "actuator", "usart"} {
		h.closers = append(h.closers, closer{n, &order})
	}
	h.Close()
	h.Close()
	want := []string{"usart", "actuator", "board"}
	if len(order) != len(want) {
		t.Fatalf("Closed %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Closed %v, expected %v", order, want)
			break
		}
	}
}

func TestFlagsOverrideProfile(t *testing.T) {
	*backendFlag = "cwlite"
	*outPinFlag = "nrst"
	defer func() {
		*backendFlag = ""
		*outPinFlag = ""
	}()
	prof := &goglitch.Profile{Attack: "serial", Backend: goglitch.BackendPi, OutputPin: "GPIO4", InputPin: "GPIO17"}
	applyFlags(prof)
	if prof.Backend != goglitch.BackendCwLite || prof.OutputPin != "nrst" || prof.InputPin != "GPIO17" {
		t.Errorf("Unexpected profile after flags: %+v", prof)
	}
}

func TestPollTimeoutFlagKeepsSubSecond(t *testing.T) {
	*pollTimeoutFlag = 500 * time.Millisecond
	defer func() { *pollTimeoutFlag = 0 }()
	prof := &goglitch.Profile{Attack: "timed", StartDelay: 1, StopDelay: 1}
	applyFlags(prof)
	if prof.PollTimeout != 500*time.Millisecond {
		t.Errorf("PollTimeout = %v, expected 500ms", prof.PollTimeout)
	}
}
