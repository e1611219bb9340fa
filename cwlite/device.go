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

// Low-level control endpoint access to a ChipWhisperer-Lite.
// Only control transfers are used: register reads are a few bytes each.
package cwlite

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/goglitch"
	"github.com/google/gousb"
)

const (
	cwliteVid = 0x2b3e
	cwlitePid = 0xace2

	cwliteMjVersion = 0
	cwliteMnVersion = 11
)

type Request uint8

const (
	ReqMemReadCtrl  Request = 0x12
	ReqMemWriteCtrl Request = 0x13
	ReqFpgaStatus   Request = 0x15
	ReqFwVersion    Request = 0x17
	ReqUsart0Data   Request = 0x1a
	ReqUsart0Config Request = 0x1b
)

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlVendor | gousb.ControlInterface
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlVendor | gousb.ControlInterface
)

//go:generate mockgen -destination=mocks/device.go -package=mocks github.com/google/goglitch/cwlite DeviceInterface
type DeviceInterface interface {
	io.Closer
	// Sends a request over the control endpoint. data is encoded / decoded
	// little-endian with encoding/binary.
	ControlIn(request Request, val uint16, data interface{}) error
	ControlOut(request Request, val uint16, data interface{}) error
}

type Device struct {
	ctx *gousb.Context
	dev *gousb.Device
}

type FwVersion struct {
	Major uint8
	Minor uint8
	Debug uint8
}

func OpenDevice() (*Device, error) {
	var err error
	d := &Device{ctx: gousb.NewContext()}

	d.dev, err = d.ctx.OpenDeviceWithVIDPID(cwliteVid, cwlitePid)
	if d.dev == nil && err == nil {
		d.Close()
		return nil, fmt.Errorf("%w: CWLite device not found", goglitch.ErrInit)
	}
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("%w: opening CWLite device: %v", goglitch.ErrInit, err)
	}

	ver := FwVersion{}
	if err = d.ControlIn(ReqFwVersion, 0, &ver); err != nil {
		d.Close()
		return nil, fmt.Errorf("%w: reading FW version: %v", goglitch.ErrInit, err)
	}
	if ver.Major != cwliteMjVersion || ver.Minor != cwliteMnVersion {
		d.Close()
		return nil, fmt.Errorf("%w: unexpected FW version %v", goglitch.ErrInit, ver)
	}
	glog.V(1).Infof("CWLite firmware %d.%d.%d", ver.Major, ver.Minor, ver.Debug)
	return d, nil
}

func (d *Device) Close() error {
	glog.V(1).Infof("Closing USB device")
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return nil
}

func (d *Device) ControlIn(request Request, val uint16, data interface{}) error {
	size := binary.Size(data)
	if size == -1 {
		return fmt.Errorf("Failed to get data size")
	}
	buf := make([]byte, size)
	n, err := d.dev.Control(rTypeControlIn, uint8(request), val, 0, buf)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(buf) {
		return fmt.Errorf("Failed to read entire buffer %v vs %v", n, len(buf))
	}
	if err = binary.Read(bytes.NewReader(buf), binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	glog.V(2).Infof("[usb-ctrl IN]: request = %#x, val = %x, data =\n%s",
		uint8(request), val, hex.Dump(buf))
	return nil
}

func (d *Device) ControlOut(request Request, val uint16, data interface{}) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Write failed: %v", err)
	}
	n, err := d.dev.Control(rTypeControlOut, uint8(request), val, 0, buf.Bytes())
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != buf.Len() {
		return fmt.Errorf("Failed to write entire buffer %v vs %v", n, buf.Len())
	}
	glog.V(2).Infof("[usb-ctrl OUT]: request = %#x, val = %x, data =\n%s",
		uint8(request), val, hex.Dump(buf.Bytes()))
	return nil
}
