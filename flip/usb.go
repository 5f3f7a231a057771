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

package flip

import (
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"

	"github.com/muyachang/atmel-usbdfu"
)

const (
	atmelVid = 0x03eb
	// PID of the AT90USB64x/128x DFU bootloader. Other parts in the
	// family enumerate with neighboring PIDs.
	dfuPid = 0x2ff0
)

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlClass | gousb.ControlInterface
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlClass | gousb.ControlInterface
)

// UsbTransport carries DFU requests over the device's control endpoint.
type UsbTransport struct {
	ctx       *gousb.Context
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	// bInterfaceNumber of the claimed DFU interface, sent as wIndex.
	intfNum uint16
}

// OpenUsbTransport claims the DFU interface of an attached bootloader.
func OpenUsbTransport() (*UsbTransport, error) {
	return openUsbTransport(atmelVid, dfuPid)
}

func openUsbTransport(vid, pid gousb.ID) (*UsbTransport, error) {
	t := &UsbTransport{}
	t.ctx = gousb.NewContext()

	var err error
	t.dev, err = t.ctx.OpenDeviceWithVIDPID(vid, pid)
	if t.dev == nil && err == nil {
		t.Close()
		return nil, fmt.Errorf("DFU device %s:%s not found", vid, pid)
	}

	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Opening DFU device: %v", err)
	}

	// The bootloader exposes a single DFU interface: #0 alt #0 in the
	// active config.
	t.intf, t.intf_done, err = t.dev.DefaultInterface()
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Claiming default interface: %v", err)
	}
	t.intfNum = uint16(t.intf.Setting.Number)
	return t, nil
}

func (t *UsbTransport) Close() error {
	glog.V(1).Infof("Closing USB transport")
	if t.intf_done != nil {
		t.intf_done()
		t.intf_done = nil
	}
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.dev != nil {
		t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
	return nil
}

func (t *UsbTransport) ControlOut(request usbdfu.Request, value uint16, data []byte) error {
	n, err := t.dev.Control(rTypeControlOut, uint8(request), value, t.intfNum, data)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(data) {
		return fmt.Errorf("Failed to write entire buffer %v vs %v", n, len(data))
	}
	glog.V(2).Infof("[usb-ctrl OUT]: request = %v, value = %x, data =\n%s",
		request, value, hex.Dump(data))
	return nil
}

func (t *UsbTransport) ControlIn(request usbdfu.Request, value uint16, data []byte) error {
	n, err := t.dev.Control(rTypeControlIn, uint8(request), value, t.intfNum, data)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(data) {
		return fmt.Errorf("Failed to read entire buffer %v vs %v", n, len(data))
	}
	glog.V(2).Infof("[usb-ctrl IN]: request = %v, value = %x, data =\n%s",
		request, value, hex.Dump(data))
	return nil
}
