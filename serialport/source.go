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

// Target serial console as a polled byte source.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/google/goglitch"
	"go.bug.st/serial"
)

// The read returns as soon as a byte arrives, so this only bounds how long
// an empty poll blocks.
const readTimeout = time.Millisecond

type port interface {
	io.ReadCloser
	SetReadTimeout(t time.Duration) error
}

// Implements goglitch.ByteSourceInterface.
type Source struct {
	port port
	buf  [256]byte
	n    int
	pos  int
}

// Opens device at baud, 8N1.
func Open(device string, baud int) (*Source, error) {
	if err := goglitch.ValidateDevice(device); err != nil {
		return nil, err
	}
	if err := goglitch.ValidateBaud(baud); err != nil {
		return nil, err
	}
	p, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't open serial device %s: %v", goglitch.ErrInit, device, describe(err))
	}
	s, err := newSource(p)
	if err != nil {
		p.Close()
		return nil, err
	}
	glog.Infof("Opened %s at %d baud", device, baud)
	return s, nil
}

func newSource(p port) (*Source, error) {
	if err := p.SetReadTimeout(readTimeout); err != nil {
		return nil, fmt.Errorf("%w: setting read timeout: %v", goglitch.ErrInit, err)
	}
	return &Source{port: p}, nil
}

func describe(err error) string {
	var portErr *serial.PortError
	if errors.As(err, &portErr) {
		return portErr.EncodedErrorString()
	}
	return err.Error()
}

func (s *Source) Poll() (byte, bool, error) {
	if s.pos < s.n {
		b := s.buf[s.pos]
		s.pos++
		return b, true, nil
	}
	n, err := s.port.Read(s.buf[:])
	if err != nil {
		return 0, false, fmt.Errorf("%w: serial read failed: %v", goglitch.ErrSource, describe(err))
	}
	if n == 0 {
		return 0, false, nil
	}
	s.n, s.pos = n, 1
	return s.buf[0], true, nil
}

func (s *Source) Close() error {
	return s.port.Close()
}

// Lists serial devices, for the operator prompt.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
