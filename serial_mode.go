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

// Serial attack: glitch between a start and a stop phrase seen on the
// target's serial output.
package goglitch

import (
	"context"
	"fmt"
)

type SerialMode struct {
	Source ByteSourceInterface
	Start  []byte
	Stop   []byte
}

func (m *SerialMode) Name() string {
	return "SERIAL"
}

func (m *SerialMode) Validate() error {
	if m.Source == nil {
		return fmt.Errorf("%w: missing serial source", ErrInvalidParameter)
	}
	if err := ValidatePhrase(m.Start); err != nil {
		return fmt.Errorf("start %w", err)
	}
	if err := ValidatePhrase(m.Stop); err != nil {
		return fmt.Errorf("stop %w", err)
	}
	return nil
}

// Each phase gets a fresh matcher, so the stop phrase needs len(Stop) new
// bytes before it can match even if it overlaps the start phrase.
func (m *SerialMode) drive(ctx context.Context, s *Session) error {
	phases := []struct {
		phrase []byte
		next   State
	}{
		{m.Start, StateTriggered},
		{m.Stop, StateReleased},
	}
	for _, p := range phases {
		matcher, err := NewMatcher(p.phrase)
		if err != nil {
			return err
		}
		if err = s.driveMatcher(ctx, m.Source, matcher); err != nil {
			return fmt.Errorf("Waiting for %q: %w", p.phrase, err)
		}
		if err = s.enter(p.next, 0); err != nil {
			return err
		}
	}
	return nil
}
