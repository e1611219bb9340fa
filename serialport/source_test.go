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

package serialport

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/goglitch"
)

// Returns one chunk per Read; an empty chunk is a read timeout.
type fakePort struct {
	chunks  []string
	err     error
	timeout time.Duration
	closed  bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		return 0, p.err
	}
	n := copy(b, p.chunks[0])
	p.chunks = p.chunks[1:]
	return n, nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	p.timeout = t
	return nil
}

func TestSourcePoll(t *testing.T) {
	p := &fakePort{chunks: []string{"", "ab", "", "c"}, err: fmt.Errorf("device unplugged")}
	s, err := newSource(p)
	if err != nil {
		t.Fatal(err)
	}
	if p.timeout != readTimeout {
		t.Errorf("Read timeout %v, expected %v", p.timeout, readTimeout)
	}

	var got []byte
	var empty int
	for i := 0; i < 5; i++ {
		b, ok, err := s.Poll()
		if err != nil {
			t.Fatalf("Poll #%d failed: %v", i, err)
		}
		if !ok {
			empty++
			continue
		}
		got = append(got, b)
	}
	if string(got) != "abc" || empty != 2 {
		t.Errorf("Polled %q with %d empty polls, expected abc with 2", got, empty)
	}
	if _, _, err = s.Poll(); !errors.Is(err, goglitch.ErrSource) {
		t.Errorf("Poll err = %v, expected ErrSource", err)
	}
	s.Close()
	if !p.closed {
		t.Errorf("Close did not close the port")
	}
}

func TestOpenRejectsParameters(t *testing.T) {
	if _, err := Open("", 9600); !errors.Is(err, goglitch.ErrInvalidParameter) {
		t.Errorf("Open with empty device: err = %v", err)
	}
	if _, err := Open("/dev/ttyUSB0", 250001); !errors.Is(err, goglitch.ErrInvalidParameter) {
		t.Errorf("Open with baud 250001: err = %v", err)
	}
}
