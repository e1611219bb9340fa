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

// Armed -> Triggered -> Released state machine shared by all attack modes.
package goglitch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
)

//go:generate stringer -type State
type State int

const (
	StateArmed     State = iota
	StateTriggered State = iota
	StateReleased  State = iota
	StateAborted   State = iota
)

//go:generate stringer -type EventKind
type EventKind int

const (
	// Session changed state.
	EventState EventKind = iota
	// A byte was pushed into the active matcher.
	EventByte EventKind = iota
	// Power-sense input went high.
	EventPowerOn EventKind = iota
)

type Event struct {
	Time  time.Time `json:"t"`
	Kind  EventKind `json:"kind"`
	State State     `json:"state"`
	// Bytes pushed into the active matcher since the phase started.
	Count int `json:"n,omitempty"`
	// Matcher window after the byte, or at the match for state events.
	Window []byte `json:"w,omitempty"`
	// Requested delay that preceded a timed transition.
	Delay time.Duration `json:"delay,omitempty"`
	Err   string        `json:"err,omitempty"`
}

// A closed set of attacks. Implemented by SerialMode and TimedMode.
type Mode interface {
	Name() string
	Validate() error
	drive(ctx context.Context, s *Session) error
}

type Option func(s *Session)

// Receives every state change and, in serial mode, every byte.
// Called synchronously from the polling loop.
func WithObserver(observer func(Event)) Option {
	return func(s *Session) {
		s.observers = append(s.observers, observer)
	}
}

func WithClock(clock Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// Runs between empty polls. Without it the poll loops spin, which keeps
// trigger latency lowest.
func WithYield(yield func()) Option {
	return func(s *Session) {
		s.yield = yield
	}
}

// Bounds each busy-poll phase. Zero waits forever.
func WithPollTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		s.pollTimeout = timeout
	}
}

type Session struct {
	mode        Mode
	act         ActuatorInterface
	state       State
	clock       Clock
	observers   []func(Event)
	yield       func()
	pollTimeout time.Duration

	// Set once Assert was attempted, cleared once Deassert succeeds.
	asserted bool
	// Window of the last matcher at its match.
	matched []byte
}

func NewSession(mode Mode, act ActuatorInterface, opts ...Option) (*Session, error) {
	if mode == nil {
		return nil, fmt.Errorf("%w: missing attack mode", ErrInvalidParameter)
	}
	if act == nil {
		return nil, fmt.Errorf("%w: missing actuator", ErrInvalidParameter)
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		mode:  mode,
		act:   act,
		state: StateArmed,
		clock: WallClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Runs the attack to completion. The glitch line is back at its idle level
// when Run returns, whether or not it fails.
func (s *Session) Run(ctx context.Context) (state State, err error) {
	if s.state != StateArmed {
		return s.state, fmt.Errorf("Session already ran (state = %v)", s.state)
	}
	glog.Infof("Arming %s attack", s.mode.Name())
	s.emit(Event{Kind: EventState, State: StateArmed})

	defer func() {
		if err == nil {
			return
		}
		if s.asserted {
			glog.Warningf("Aborting while glitching, restoring idle level")
			if derr := s.act.Deassert(); derr != nil {
				glog.Errorf("Failed restoring idle level: %v", derr)
				err = errors.Join(err, fmt.Errorf("restoring idle level: %w", derr))
			} else {
				s.asserted = false
			}
		}
		s.state = StateAborted
		state = s.state
		s.emit(Event{Kind: EventState, State: StateAborted, Err: err.Error()})
	}()

	if err = s.mode.drive(ctx, s); err != nil {
		return s.state, err
	}
	if s.state != StateReleased {
		return s.state, fmt.Errorf("%s attack finished in state %v", s.mode.Name(), s.state)
	}
	return s.state, nil
}

// Runs the entry action of next. Only Armed->Triggered and
// Triggered->Released are legal.
func (s *Session) enter(next State, delay time.Duration) error {
	switch {
	case s.state == StateArmed && next == StateTriggered:
		s.asserted = true
		if err := s.act.Assert(); err != nil {
			return fmt.Errorf("Assert failed: %w", err)
		}
		glog.Info("GLITCHING INITIATED")
	case s.state == StateTriggered && next == StateReleased:
		if err := s.act.Deassert(); err != nil {
			return fmt.Errorf("Deassert failed: %w", err)
		}
		s.asserted = false
		glog.Info("GLITCHING CEASED")
	default:
		return fmt.Errorf("Illegal transition %v -> %v", s.state, next)
	}
	s.state = next
	s.emit(Event{Kind: EventState, State: next, Window: s.matched, Delay: delay})
	s.matched = nil
	return nil
}

func (s *Session) emit(ev Event) {
	if len(s.observers) == 0 {
		return
	}
	ev.Time = s.clock.Now()
	for _, o := range s.observers {
		o(ev)
	}
}

func (s *Session) deadline() time.Time {
	if s.pollTimeout <= 0 {
		return time.Time{}
	}
	return s.clock.Now().Add(s.pollTimeout)
}

// Fails once ctx is done or the phase deadline has passed.
func (s *Session) proceed(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !deadline.IsZero() && s.clock.Now().After(deadline) {
		return fmt.Errorf("%w after %v in state %v", ErrPollTimeout, s.pollTimeout, s.state)
	}
	return nil
}

func (s *Session) idle() {
	if s.yield != nil {
		s.yield()
	}
}

func sourceError(err error) error {
	if errors.Is(err, ErrSource) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSource, err)
}

// Busy-polls src, feeding m, until m matches. NoData leaves m untouched.
func (s *Session) driveMatcher(ctx context.Context, src ByteSourceInterface, m *Matcher) error {
	var count int
	verbose := bool(glog.V(1))
	deadline := s.deadline()
	observed := len(s.observers) > 0
	for {
		if err := s.proceed(ctx, deadline); err != nil {
			return err
		}
		b, ok, err := src.Poll()
		if err != nil {
			return sourceError(err)
		}
		if !ok {
			s.idle()
			continue
		}
		count++
		matched := m.Push(b)
		var window []byte
		if verbose || observed || matched {
			window = m.Window()
		}
		if verbose {
			glog.Infof("%d: buff = %q", count, window)
		}
		if observed {
			s.emit(Event{Kind: EventByte, State: s.state, Count: count, Window: window})
		}
		if matched {
			s.matched = window
			return nil
		}
	}
}

// Busy-polls the power-sense input until it reads High.
func (s *Session) waitForPowerOn(ctx context.Context) error {
	deadline := s.deadline()
	for {
		if err := s.proceed(ctx, deadline); err != nil {
			return err
		}
		level, err := s.act.ReadInput()
		if err != nil {
			return sourceError(err)
		}
		if level == High {
			s.emit(Event{Kind: EventPowerOn, State: s.state})
			return nil
		}
		s.idle()
	}
}
