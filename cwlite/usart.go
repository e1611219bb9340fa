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

// Target USART bridged by the CWLite, polled one byte at a time.
package cwlite

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/google/goglitch"
)

type command uint16

const (
	cmdInit    command = 0x10
	cmdEnable  command = 0x11
	cmdDisable command = 0x12
	cmdNumWait command = 0x14
)

type StopBits uint8

const (
	StopBitsOne StopBits = 0
	StopBitsTwo StopBits = 2
)

type Parity uint8

const (
	ParityNone Parity = 0
	ParityOdd  Parity = 1
	ParityEven Parity = 2
)

// Struct layout matches what cmdInit expects, so don't change this.
type UsartConfig struct {
	BaudRate uint32
	StopBits StopBits
	Parity   Parity
	DataBits uint8
}

// Implements goglitch.ByteSourceInterface.
type Usart struct {
	dev  DeviceInterface
	conf UsartConfig
	buf  [maxCtrlLen - 1]byte
	n    int
	pos  int
}

func NewUsart(dev DeviceInterface, baud int) (*Usart, error) {
	if err := goglitch.ValidateBaud(baud); err != nil {
		return nil, err
	}
	u := &Usart{dev: dev, conf: UsartConfig{uint32(baud), StopBitsOne, ParityNone, 8}}
	glog.Infof("USART configuration: %+v", u.conf)
	if err := u.configWrite(cmdInit, u.conf); err != nil {
		return nil, fmt.Errorf("%w: cmdInit failed: %v", goglitch.ErrInit, err)
	}
	if err := u.configWrite(cmdEnable, []byte{}); err != nil {
		return nil, fmt.Errorf("%w: cmdEnable failed: %v", goglitch.ErrInit, err)
	}
	return u, nil
}

func (u *Usart) configRead(cmd command, data interface{}) error {
	glog.V(2).Infof("[usart-config-read]: cmd = %v", cmd)
	return u.dev.ControlIn(ReqUsart0Config, uint16(cmd), data)
}

func (u *Usart) configWrite(cmd command, data interface{}) error {
	glog.V(1).Infof("[usart-config-write]: cmd = %v", cmd)
	return u.dev.ControlOut(ReqUsart0Config, uint16(cmd), data)
}

// Returns the number of bytes waiting to be read.
func (u *Usart) inWaiting() (int, error) {
	var numBytes uint32
	if err := u.configRead(cmdNumWait, &numBytes); err != nil {
		return 0, fmt.Errorf("cmdNumWait failed: %v", err)
	}
	return int(numBytes), nil
}

// Serves buffered bytes first, then fetches whatever the CWLite holds.
func (u *Usart) Poll() (byte, bool, error) {
	if u.pos < u.n {
		b := u.buf[u.pos]
		u.pos++
		return b, true, nil
	}
	waiting, err := u.inWaiting()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", goglitch.ErrSource, err)
	}
	if waiting == 0 {
		return 0, false, nil
	}
	if waiting > len(u.buf) {
		waiting = len(u.buf)
	}
	if err = u.dev.ControlIn(ReqUsart0Data, 0, u.buf[:waiting]); err != nil {
		return 0, false, fmt.Errorf("%w: dataRead failed: %v", goglitch.ErrSource, err)
	}
	u.n, u.pos = waiting, 1
	return u.buf[0], true, nil
}

func (u *Usart) Close() error {
	if err := u.configWrite(cmdDisable, []byte{}); err != nil {
		return fmt.Errorf("cmdDisable failed: %v", err)
	}
	return nil
}
