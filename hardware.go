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

// Hardware collaborators consumed by a session.
package goglitch

import (
	"io"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/google/goglitch ByteSourceInterface
type ByteSourceInterface interface {
	io.Closer
	// Returns the next byte from the target. ok is false when no byte is
	// available yet; that is not an error and the caller polls again.
	Poll() (b byte, ok bool, err error)
}

type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "High"
	}
	return "Low"
}

//go:generate mockgen -destination=mocks/actuator.go -package=mocks github.com/google/goglitch ActuatorInterface
type ActuatorInterface interface {
	// Close restores the idle level before releasing the pins.
	io.Closer
	// Drives the glitch control line to the glitch-active level.
	Assert() error
	// Restores the glitch control line to its idle level.
	Deassert() error
	// Samples the power-sense input. Only used by timed attacks.
	ReadInput() (Level, error)
}
