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

// Host-side FLIP client: drives the DFU bootloader over a control
// transport.
package flip

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/muyachang/atmel-usbdfu"
)

// DefaultPacketSize is the control endpoint size of the supported devices.
const DefaultPacketSize = 64

//go:generate mockgen -destination=mocks/transporter.go -package=mocks github.com/muyachang/atmel-usbdfu/flip Transporter

// Transporter carries DFU class control requests to the device.
type Transporter interface {
	ControlOut(request usbdfu.Request, value uint16, data []byte) error
	ControlIn(request usbdfu.Request, value uint16, data []byte) error
	Close() error
}

// Client issues FLIP commands through the DFU control-transfer envelope.
type Client struct {
	t          Transporter
	packetSize int
}

// Option configures a Client.
type Option func(*Client)

// WithPacketSize overrides the device's control endpoint size, which the
// client needs to pad streamed download stages correctly.
func WithPacketSize(n int) Option {
	return func(c *Client) { c.packetSize = n }
}

// Takes ownership of t: the client closes it on Close().
func NewClient(t Transporter, opts ...Option) *Client {
	c := &Client{t: t, packetSize: DefaultPacketSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Close() error {
	if c.t != nil {
		err := c.t.Close()
		c.t = nil
		return err
	}
	return nil
}

func command(group usbdfu.Group, data ...byte) []byte {
	cmd := make([]byte, 6)
	cmd[0] = byte(group)
	copy(cmd[1:], data)
	return cmd
}

// Status polls DFU_GETSTATUS. The returned state is the state after the
// poll transition the request itself triggers.
func (c *Client) Status() (usbdfu.Status, usbdfu.State, error) {
	buf := make([]byte, 6)
	if err := c.t.ControlIn(usbdfu.ReqGetStatus, 0, buf); err != nil {
		return 0, 0, fmt.Errorf("DFU_GETSTATUS failed: %v", err)
	}
	return usbdfu.Status(buf[0]), usbdfu.State(buf[4]), nil
}

// State polls DFU_GETSTATE, which does not transition the device.
func (c *Client) State() (usbdfu.State, error) {
	buf := make([]byte, 1)
	if err := c.t.ControlIn(usbdfu.ReqGetState, 0, buf); err != nil {
		return 0, fmt.Errorf("DFU_GETSTATE failed: %v", err)
	}
	return usbdfu.State(buf[0]), nil
}

func (c *Client) ClearStatus() error {
	if err := c.t.ControlOut(usbdfu.ReqClrStatus, 0, nil); err != nil {
		return fmt.Errorf("DFU_CLRSTATUS failed: %v", err)
	}
	return nil
}

func (c *Client) Abort() error {
	if err := c.t.ControlOut(usbdfu.ReqAbort, 0, nil); err != nil {
		return fmt.Errorf("DFU_ABORT failed: %v", err)
	}
	return nil
}

func (c *Client) Detach() error {
	if err := c.t.ControlOut(usbdfu.ReqDetach, 0, nil); err != nil {
		return fmt.Errorf("DFU_DETACH failed: %v", err)
	}
	return nil
}

func (c *Client) sendCommand(cmd []byte) error {
	if err := c.t.ControlOut(usbdfu.ReqDnload, 0, cmd); err != nil {
		return fmt.Errorf("DFU_DNLOAD failed: %v", err)
	}
	return nil
}

// expectOk polls status and fails unless the device reports OK in the
// given state.
func (c *Client) expectOk(state usbdfu.State, op string) error {
	status, st, err := c.Status()
	if err != nil {
		return err
	}
	if status != usbdfu.StatusOk || st != state {
		return fmt.Errorf("%s: device reports %v/%v", op, status, st)
	}
	return nil
}

// Program streams data into the selected memory starting at start. The
// data stage carries the padded command packet, the data itself, and a
// trailing filler packet when the data ends exactly on a packet boundary
// so the device can observe the window close.
func (c *Client) Program(op byte, start uint16, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("nothing to program")
	}
	end := start + uint16(len(data)) - 1
	glog.V(1).Infof("[flip-program]: op=%#02x window [%#04x, %#04x]", op, start, end)

	cmd := command(usbdfu.GroupDownload, op, byte(start>>8), byte(start), byte(end>>8), byte(end))
	stage := make([]byte, c.packetSize, c.packetSize+len(data)+c.packetSize)
	copy(stage, cmd)
	stage = append(stage, data...)
	if len(data)%c.packetSize == 0 {
		filler := make([]byte, c.packetSize)
		for i := range filler {
			filler[i] = 0xFF
		}
		stage = append(stage, filler...)
	}

	if err := c.sendCommand(stage); err != nil {
		return err
	}
	return c.expectOk(usbdfu.StateDfuIdle, "program")
}

// Read streams n bytes out of the selected memory starting at start.
func (c *Client) Read(op byte, start uint16, n int) ([]byte, error) {
	end := start + uint16(n)
	glog.V(1).Infof("[flip-read]: op=%#02x window [%#04x, %#04x)", op, start, end)

	cmd := command(usbdfu.GroupUpload, op, byte(start>>8), byte(start), byte(end>>8), byte(end))
	if err := c.sendCommand(cmd); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := c.t.ControlIn(usbdfu.ReqUpload, 0, buf); err != nil {
		return nil, fmt.Errorf("DFU_UPLOAD failed: %v", err)
	}
	if err := c.expectOk(usbdfu.StateDfuIdle, "read"); err != nil {
		return nil, err
	}
	return buf, nil
}

// BlankCheck scans [start, end) of the selected memory. If the range is
// not blank it fetches the first non-blank address and clears the
// resulting error state.
func (c *Client) BlankCheck(op byte, start, end uint16) (blank bool, firstNonBlank uint16, err error) {
	glog.V(1).Infof("[flip-blank]: op=%#02x window [%#04x, %#04x)", op, start, end)

	cmd := command(usbdfu.GroupUpload, op, byte(start>>8), byte(start), byte(end>>8), byte(end))
	if err = c.sendCommand(cmd); err != nil {
		return false, 0, err
	}
	status, _, err := c.Status()
	if err != nil {
		return false, 0, err
	}
	if status == usbdfu.StatusOk {
		return true, 0, nil
	}
	if status != usbdfu.StatusErrCheckErased {
		return false, 0, fmt.Errorf("blank check: device reports %v", status)
	}

	buf := make([]byte, 2)
	if err = c.t.ControlIn(usbdfu.ReqUpload, 0, buf); err != nil {
		return false, 0, fmt.Errorf("DFU_UPLOAD failed: %v", err)
	}
	if err = c.ClearStatus(); err != nil {
		return false, 0, err
	}
	return false, uint16(buf[1])<<8 | uint16(buf[0]), nil
}

// Erase wipes the whole selected memory.
func (c *Client) Erase(op byte) error {
	glog.V(1).Infof("[flip-erase]: op=%#02x", op)
	if err := c.sendCommand(command(usbdfu.GroupExec, op, 0xFF)); err != nil {
		return err
	}
	return c.expectOk(usbdfu.StateDfuIdle, "erase")
}

// SelectPageBank sets the 64KB page bank used by subsequent dataflash
// windows.
func (c *Client) SelectPageBank(bank byte) error {
	glog.V(1).Infof("[flip-select]: bank=%d", bank)
	if err := c.sendCommand(command(usbdfu.GroupSelect, usbdfu.OpSelectMemory, usbdfu.OpSelectMemoryPage, bank)); err != nil {
		return err
	}
	return c.expectOk(usbdfu.StateDfuIdle, "select page bank")
}

// ReadRegister fetches one bootloader/device identity byte.
func (c *Client) ReadRegister(category, field byte) (byte, error) {
	if err := c.sendCommand(command(usbdfu.GroupRead, category, field)); err != nil {
		return 0, err
	}
	buf := make([]byte, 1)
	if err := c.t.ControlIn(usbdfu.ReqUpload, 0, buf); err != nil {
		return 0, fmt.Errorf("DFU_UPLOAD failed: %v", err)
	}
	return buf[0], nil
}

func (c *Client) ProgramFlash(start uint16, data []byte) error {
	return c.Program(usbdfu.OpFlash, start, data)
}

func (c *Client) ProgramEeprom(start uint16, data []byte) error {
	return c.Program(usbdfu.OpEeprom, start, data)
}

func (c *Client) ProgramDataflash(start uint16, data []byte) error {
	return c.Program(usbdfu.OpDataflash, start, data)
}

func (c *Client) ReadFlash(start uint16, n int) ([]byte, error) {
	return c.Read(usbdfu.OpFlash, start, n)
}

// ReadEeprom uses the display opcode; plain 0x01 on the upload group is
// the flash blank check.
func (c *Client) ReadEeprom(start uint16, n int) ([]byte, error) {
	return c.Read(usbdfu.OpDisplayEeprom, start, n)
}

func (c *Client) ReadDataflash(start uint16, n int) ([]byte, error) {
	return c.Read(usbdfu.OpDataflash, start, n)
}

func (c *Client) BlankCheckFlash(start, end uint16) (bool, uint16, error) {
	return c.BlankCheck(usbdfu.OpBlankCheckFlash, start, end)
}

func (c *Client) BlankCheckEeprom(start, end uint16) (bool, uint16, error) {
	return c.BlankCheck(usbdfu.OpBlankCheckEeprom, start, end)
}

func (c *Client) BlankCheckDataflash(start, end uint16) (bool, uint16, error) {
	return c.BlankCheck(usbdfu.OpBlankCheckDataflash, start, end)
}

func (c *Client) EraseFlash() error     { return c.Erase(usbdfu.OpFlash) }
func (c *Client) EraseEeprom() error    { return c.Erase(usbdfu.OpEeprom) }
func (c *Client) EraseDataflash() error { return c.Erase(usbdfu.OpDataflash) }

// DeviceInfo describes the bootloader and part, as reported over the
// Read command group.
type DeviceInfo struct {
	BootloaderVersion byte
	BootloaderID1     byte
	BootloaderID2     byte
	ManufacturerCode  byte
	FamilyCode        byte
	ProductName       byte
	ProductRevision   byte
}

// ReadDeviceInfo fetches all identity registers.
func (c *Client) ReadDeviceInfo() (*DeviceInfo, error) {
	type reg struct {
		category, field byte
		dst             *byte
	}
	info := &DeviceInfo{}
	regs := []reg{
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldVersion, &info.BootloaderVersion},
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldID1, &info.BootloaderID1},
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldID2, &info.BootloaderID2},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldMaker, &info.ManufacturerCode},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldFamily, &info.FamilyCode},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldProduct, &info.ProductName},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldRevision, &info.ProductRevision},
	}
	for _, r := range regs {
		b, err := c.ReadRegister(r.category, r.field)
		if err != nil {
			return nil, err
		}
		*r.dst = b
	}
	return info, nil
}

// terminate sends the empty DFU_DNLOAD that ends the update session.
func (c *Client) terminate() error {
	err := c.t.ControlOut(usbdfu.ReqDnload, 0, nil)
	if err != nil && !errors.Is(err, usbdfu.ErrSessionEnded) {
		return fmt.Errorf("DFU_DNLOAD (terminate) failed: %v", err)
	}
	return nil
}

// StartApplicationWatchdog asks the device to reset into the application
// via a short watchdog timeout.
func (c *Client) StartApplicationWatchdog() error {
	if err := c.sendCommand(command(usbdfu.GroupExec, usbdfu.OpStartApp, usbdfu.StartAppWatchdog)); err != nil {
		return err
	}
	return c.terminate()
}

// StartApplicationJump asks the device to jump directly to addr after
// shutting the bootloader down.
func (c *Client) StartApplicationJump(addr uint16) error {
	cmd := command(usbdfu.GroupExec, usbdfu.OpStartApp, usbdfu.StartAppJump, 0, byte(addr>>8), byte(addr))
	if err := c.sendCommand(cmd); err != nil {
		return err
	}
	return c.terminate()
}
