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

package cwlite

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/google/goglitch"
)

// An opened CWLite with a programmed FPGA.
type Board struct {
	dev DeviceInterface
	Mem *Memory
}

func IsProgrammed(dev DeviceInterface) (bool, error) {
	var status uint32
	if err := dev.ControlIn(ReqFpgaStatus, 0, &status); err != nil {
		return false, fmt.Errorf("ReqFpgaStatus: %v", err)
	}
	return status&1 == 1, nil
}

// The FPGA bitstream is not shipped here; load it once with the
// ChipWhisperer tools before using the board.
func NewBoard(dev DeviceInterface) (*Board, error) {
	programmed, err := IsProgrammed(dev)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", goglitch.ErrInit, err)
	}
	if !programmed {
		return nil, fmt.Errorf("%w: CWLite FPGA is not programmed", goglitch.ErrInit)
	}
	return &Board{dev, NewMemory(dev)}, nil
}

func OpenBoard() (*Board, error) {
	dev, err := OpenDevice()
	if err != nil {
		return nil, err
	}
	b, err := NewBoard(dev)
	if err != nil {
		dev.Close()
		return nil, err
	}
	glog.Info("CWLite opened")
	return b, nil
}

func (b *Board) NewUsart(baud int) (*Usart, error) {
	return NewUsart(b.dev, baud)
}

func (b *Board) NewActuator(pin string) (*Actuator, error) {
	return NewActuator(b.Mem, pin)
}

func (b *Board) Close() error {
	return b.dev.Close()
}
