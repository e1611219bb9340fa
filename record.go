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

// Persists session events as run records.
package goglitch

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

const RecordExt = ".json.gz"

type Record struct {
	Mode       string    `json:"mode"`
	Device     string    `json:"device,omitempty"`
	Baud       int       `json:"baud,omitempty"`
	Start      string    `json:"start,omitempty"`
	Stop       string    `json:"stop,omitempty"`
	StartDelay int       `json:"startDelay,omitempty"`
	StopDelay  int       `json:"stopDelay,omitempty"`
	Began      time.Time `json:"began"`
	Result     State     `json:"result"`
	Err        string    `json:"err,omitempty"`
	// State and power-on events. Per-byte events are only counted.
	Events []Event `json:"events"`
	Bytes  int     `json:"bytes"`
}

func NewRecord(mode Mode) *Record {
	r := &Record{Mode: mode.Name(), Began: time.Now()}
	switch m := mode.(type) {
	case *SerialMode:
		r.Start = string(m.Start)
		r.Stop = string(m.Stop)
	case *TimedMode:
		r.StartDelay = m.StartDelay
		r.StopDelay = m.StopDelay
	}
	return r
}

// Observe is a session observer.
func (r *Record) Observe(ev Event) {
	if ev.Kind == EventByte {
		r.Bytes++
		return
	}
	r.Events = append(r.Events, ev)
}

func (r *Record) Finish(state State, err error) {
	r.Result = state
	if err != nil {
		r.Err = err.Error()
	}
}

func (r *Record) stateTime(state State) (time.Time, bool) {
	for _, ev := range r.Events {
		if ev.Kind == EventState && ev.State == state {
			return ev.Time, true
		}
	}
	return time.Time{}, false
}

// Time the glitch line spent asserted.
func (r *Record) GlitchDuration() (time.Duration, bool) {
	on, ok := r.stateTime(StateTriggered)
	if !ok {
		return 0, false
	}
	off, ok := r.stateTime(StateReleased)
	if !ok {
		return 0, false
	}
	return off.Sub(on), true
}

// How much later than requested each timed transition happened.
func (r *Record) Overshoot() []time.Duration {
	var out []time.Duration
	var prev time.Time
	for _, ev := range r.Events {
		switch {
		case ev.Kind == EventPowerOn:
			prev = ev.Time
		case ev.Kind == EventState && ev.Delay > 0 && !prev.IsZero():
			out = append(out, ev.Time.Sub(prev)-ev.Delay)
			prev = ev.Time
		}
	}
	return out
}

// Exported for testing.
func LoadRecordIo(src io.Reader) (*Record, error) {
	zipper, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("gzip NewReader failed %v", err)
	}
	r := &Record{}
	if err = json.NewDecoder(zipper).Decode(r); err != nil {
		return nil, fmt.Errorf("JSON decoder failed %v", err)
	}
	return r, nil
}

func LoadRecord(filename string) (*Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Error opening record file: %v", err)
	}
	defer f.Close()
	return LoadRecordIo(f)
}

// Exported for testing.
func (r *Record) SaveIo(dst io.Writer) error {
	var err error
	zipper := gzip.NewWriter(dst)
	if err = json.NewEncoder(zipper).Encode(r); err != nil {
		return fmt.Errorf("JSON encoder failed %v", err)
	}
	if err = zipper.Close(); err != nil {
		return fmt.Errorf("gzip close failed %v", err)
	}
	return nil
}

func (r *Record) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Error creating record file: %v", err)
	}
	defer f.Close()
	return r.SaveIo(f)
}
