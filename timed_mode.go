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

// Timed attack: glitch for a fixed window at a fixed delay after the target
// powers on.
package goglitch

import (
	"context"
	"fmt"
	"time"
)

// Delays are in whole seconds.
type TimedMode struct {
	StartDelay int
	StopDelay  int
}

func (m *TimedMode) Name() string {
	return "TIMED"
}

func (m *TimedMode) Validate() error {
	if err := ValidateDelay(m.StartDelay); err != nil {
		return fmt.Errorf("start %w", err)
	}
	if err := ValidateDelay(m.StopDelay); err != nil {
		return fmt.Errorf("stop %w", err)
	}
	return nil
}

func (m *TimedMode) drive(ctx context.Context, s *Session) error {
	if err := s.waitForPowerOn(ctx); err != nil {
		return fmt.Errorf("Waiting for target power: %w", err)
	}
	phases := []struct {
		delay time.Duration
		next  State
	}{
		{time.Duration(m.StartDelay) * time.Second, StateTriggered},
		{time.Duration(m.StopDelay) * time.Second, StateReleased},
	}
	for _, p := range phases {
		if err := s.clock.Sleep(ctx, p.delay); err != nil {
			return err
		}
		if err := s.enter(p.next, p.delay); err != nil {
			return err
		}
	}
	return nil
}
