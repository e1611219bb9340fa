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

// FPGA register access over control transfers.
package cwlite

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

type Address uint32

const (
	addrStatus  Address = 2
	addrIoRoute Address = 55
)

// Control transfers carry at most this many data bytes.
const maxCtrlLen = 48

type AddressBlock struct {
	Dlen uint32
	Addr uint32
}

type Memory struct {
	dev DeviceInterface
}

func NewMemory(dev DeviceInterface) *Memory {
	return &Memory{dev}
}

func (m *Memory) Read(addr Address, data []byte) error {
	glog.V(1).Infof("[ext-mem-read]: addr = %v, dlen = %v", addr, len(data))
	if len(data) >= maxCtrlLen {
		return fmt.Errorf("Register read of %d bytes too large", len(data))
	}
	info := AddressBlock{uint32(len(data)), uint32(addr)}
	if err := m.dev.ControlOut(ReqMemReadCtrl, 0, &info); err != nil {
		return fmt.Errorf("ControlOut AddressBlock failed: %v", err)
	}
	if err := m.dev.ControlIn(ReqMemReadCtrl, 0, data); err != nil {
		return fmt.Errorf("ReqMemReadCtrl data failed: %v", err)
	}
	return nil
}

// Writes data to addr. With validate set, reads the register back and
// compares it.
func (m *Memory) Write(addr Address, data []byte, validate bool) error {
	glog.V(1).Infof("[ext-mem-write]: addr = %v, dlen = %v", addr, len(data))
	if len(data) >= maxCtrlLen {
		return fmt.Errorf("Register write of %d bytes too large", len(data))
	}
	buf := new(bytes.Buffer)
	info := AddressBlock{uint32(len(data)), uint32(addr)}
	if err := binary.Write(buf, binary.LittleEndian, info); err != nil {
		return fmt.Errorf("binary.Write failed: %v", err)
	}
	buf.Write(data)
	if err := m.dev.ControlOut(ReqMemWriteCtrl, 0, buf.Bytes()); err != nil {
		return fmt.Errorf("ControlOut AddressBlock failed: %v", err)
	}
	if !validate {
		return nil
	}
	actual := make([]byte, len(data))
	if err := m.Read(addr, actual); err != nil {
		return fmt.Errorf("Read for verify failed %v", err)
	}
	if !bytes.Equal(data, actual) {
		return fmt.Errorf("Write verification failed")
	}
	return nil
}
