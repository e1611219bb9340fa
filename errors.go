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

// Error kinds reported by sessions and hardware backends.
package goglitch

import (
	"errors"
	"fmt"
)

var (
	// Operator input outside the documented range. Never reaches a session.
	ErrInvalidParameter = errors.New("invalid parameter")
	// A GPIO, serial or USB resource could not be initialized or opened.
	ErrInit = errors.New("hardware init failed")
	// The byte source or input pin faulted during an active session.
	ErrSource = errors.New("source read failed")
	// A busy-poll phase exceeded the configured poll timeout.
	ErrPollTimeout = errors.New("poll timed out")

	// Trigger phrase empty or longer than MaxPhraseLen. Wraps
	// ErrInvalidParameter.
	ErrInvalidPhrase = fmt.Errorf("%w: trigger phrase", ErrInvalidParameter)
)
