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

// Range checks for operator supplied parameters.
package goglitch

import (
	"fmt"
)

const (
	MaxBaudRate  = 250000
	MaxPhraseLen = 99
	MaxDeviceLen = 99
	MaxDelaySecs = 300
)

func ValidateBaud(baud int) error {
	if baud <= 0 || baud > MaxBaudRate {
		return fmt.Errorf("%w: baud rate %d (expects 1 to %d)", ErrInvalidParameter, baud, MaxBaudRate)
	}
	return nil
}

func ValidatePhrase(phrase []byte) error {
	if len(phrase) == 0 || len(phrase) > MaxPhraseLen {
		return fmt.Errorf("%w: length %d (expects 1 to %d)",
			ErrInvalidPhrase, len(phrase), MaxPhraseLen)
	}
	return nil
}

// Delays are whole seconds.
func ValidateDelay(secs int) error {
	if secs <= 0 || secs > MaxDelaySecs {
		return fmt.Errorf("%w: delay %d (expects 1 to %d secs)", ErrInvalidParameter, secs, MaxDelaySecs)
	}
	return nil
}

func ValidateDevice(device string) error {
	if len(device) == 0 || len(device) > MaxDeviceLen {
		return fmt.Errorf("%w: device descriptor %q (expects 1 to %d characters)",
			ErrInvalidParameter, device, MaxDeviceLen)
	}
	return nil
}
