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

// DFU control-request engine carrying the FLIP vendor command protocol.
package usbdfu

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/muyachang/atmel-usbdfu/memory"
)

// ErrSessionEnded is returned by HandleSetup once the host has terminated
// the update session and control is due to pass to the application.
var ErrSessionEnded = errors.New("usbdfu: session ended, application start requested")

//go:generate mockgen -destination=mocks/board.go -package=mocks github.com/muyachang/atmel-usbdfu BoardInterface

// BoardInterface is the reset/startup collaborator behind the Exec group.
type BoardInterface interface {
	// ArmWatchdog starts a short watchdog timeout; the device resets
	// itself into the application once communications finish.
	ArmWatchdog() error
	// Shutdown tears down the USB interface and the memory transport
	// before control leaves the bootloader.
	Shutdown() error
	// Jump transfers control to the application entry point. On real
	// hardware it does not return.
	Jump(addr memory.Address) error
}

// MemoryMap binds the three FLIP memory selectors to their backends.
type MemoryMap struct {
	Flash     memory.Target
	Eeprom    memory.Target
	Dataflash memory.Target
}

type blankResult struct {
	cmd  Command
	addr memory.Address
}

// Session owns all protocol state of one bootloader run: the DFU class
// state and status registers, the 64KB page bank, the last decoded FLIP
// command and the pending blank-check result. It is single-owner state;
// every mutation happens on the one control-flow path that services the
// current control request.
type Session struct {
	ep    EndpointInterface
	board BoardInterface
	mem   MemoryMap
	ident Identity

	state    State
	status   Status
	pageBank uint8

	lastCommand Command
	haveCommand bool
	pending     *blankResult

	appStart memory.Address
}

// Option configures a Session.
type Option func(*Session)

// WithIdentity overrides the identity registers served by the Read group.
func WithIdentity(id Identity) Option {
	return func(s *Session) { s.ident = id }
}

// NewSession returns a session in the reset state: dfuIDLE, status OK,
// page bank 0, application entry at the reset vector.
func NewSession(ep EndpointInterface, board BoardInterface, mem MemoryMap, opts ...Option) *Session {
	s := &Session{
		ep:     ep,
		board:  board,
		mem:    mem,
		ident:  DefaultIdentity(),
		state:  StateDfuIdle,
		status: StatusOk,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current DFU class state.
func (s *Session) State() State { return s.state }

// Status returns the current DFU class status.
func (s *Session) Status() Status { return s.status }

// PageBank returns the current 64KB page bank selector.
func (s *Session) PageBank() uint8 { return s.pageBank }

// AppStart returns the application entry address the host selected.
func (s *Session) AppStart() memory.Address { return s.appStart }

// HandleSetup services one DFU class control request from start to status
// stage. It blocks, busy-waiting through the endpoint, until the request
// including any streamed data phase has completed.
func (s *Session) HandleSetup(p SetupPacket) error {
	glog.V(1).Infof("[dfu]: %v wValue=%#04x wLength=%d state=%v", p.Request, p.Value, p.Length, s.state)
	s.ep.ClearSETUP()

	var err error
	switch p.Request {
	case ReqDetach:
		// Acknowledged, nothing to do.

	case ReqDnload:
		if p.Length == 0 {
			// Empty DNLOAD terminates the session: tear down and
			// hand control to the application.
			if err = s.board.Shutdown(); err != nil {
				return fmt.Errorf("board Shutdown failed: %v", err)
			}
			if err = s.board.Jump(s.appStart); err != nil {
				return fmt.Errorf("board Jump failed: %v", err)
			}
			return ErrSessionEnded
		}
		err = s.handleDnload(p)

	case ReqUpload:
		err = s.handleUpload()

	case ReqGetStatus:
		err = s.handleGetStatus()

	case ReqClrStatus:
		s.clear()

	case ReqGetState:
		err = s.handleGetState()

	case ReqAbort:
		s.clear()
	}

	s.ep.ClearStatusStage()
	return err
}

// handleDnload reads the 6-byte FLIP command from the first OUT packet and
// either runs it immediately or retains it for the follow-up DFU_UPLOAD.
func (s *Session) handleDnload(p SetupPacket) error {
	if err := s.ep.WaitUntilReadyToReceive(); err != nil {
		return fmt.Errorf("endpoint receive wait failed: %v", err)
	}
	raw := make([]byte, 0, 6)
	n := int(p.Length)
	if n > 6 {
		n = 6
	}
	for i := 0; i < n; i++ {
		raw = append(raw, s.ep.ReadByte())
	}
	s.ep.ClearOUT()

	cmd := DecodeCommand(raw)
	s.lastCommand = cmd
	s.haveCommand = true
	glog.V(1).Infof("[flip]: group=%v data=% x", cmd.Group, cmd.Data)

	if !cmd.Recognized() {
		s.failUnknown()
		return nil
	}
	if cmd.Deferred() {
		// Completed by the host's next DFU_UPLOAD request.
		return nil
	}
	return s.process(cmd)
}

// handleUpload resolves the retained command: a pending blank-check result
// fetch, a streamed memory read, or an identity register read. Each branch
// is explicit; nothing falls through to status handling.
func (s *Session) handleUpload() error {
	if !s.haveCommand {
		s.failUnknown()
		return s.writeEmptyIN()
	}

	if s.lastCommand.IsBlankCheck() {
		// The host is fetching the first non-blank address found by the
		// blank check it submitted via DFU_DNLOAD.
		var result uint16
		if s.pending != nil && s.pending.cmd == s.lastCommand {
			result = uint16(s.pending.addr)
			s.pending = nil
		}
		if err := s.ep.WaitUntilReadyToSend(); err != nil {
			return fmt.Errorf("endpoint send wait failed: %v", err)
		}
		s.ep.WriteWordLE(result)
		s.ep.ClearIN()
		return nil
	}

	switch s.lastCommand.Group {
	case GroupUpload:
		return s.processUploadDisplay(s.lastCommand)
	case GroupRead:
		return s.processRead(s.lastCommand)
	}
	s.failUnknown()
	return s.writeEmptyIN()
}

func (s *Session) handleGetStatus() error {
	s.pollTransition()
	if err := s.ep.WaitUntilReadyToSend(); err != nil {
		return fmt.Errorf("endpoint send wait failed: %v", err)
	}
	// Fixed 6-byte layout: status, 3-byte poll timeout, state, status
	// description string index.
	s.ep.WriteByte(byte(s.status))
	s.ep.WriteByte(0)
	s.ep.WriteByte(0)
	s.ep.WriteByte(0)
	s.ep.WriteByte(byte(s.state))
	s.ep.WriteByte(0)
	s.ep.ClearIN()
	return nil
}

func (s *Session) handleGetState() error {
	if err := s.ep.WaitUntilReadyToSend(); err != nil {
		return fmt.Errorf("endpoint send wait failed: %v", err)
	}
	s.ep.WriteByte(byte(s.state))
	s.ep.ClearIN()
	return nil
}

// pollTransition advances the state on a status poll. All states not
// listed are fixed points.
func (s *Session) pollTransition() {
	switch s.state {
	case StateDfuDnloadSync:
		s.state = StateDfuDnloadIdle
	case StateDfuUploadIdle:
		s.state = StateDfuIdle
	case StateDfuManifestSync:
		s.state = StateDfuIdle
	}
}

// clear is the common effect of DFU_CLRSTATUS and DFU_ABORT.
func (s *Session) clear() {
	s.state = StateDfuIdle
	s.status = StatusOk
}

func (s *Session) failUnknown() {
	glog.V(1).Infof("[dfu]: unrecognized command %v % x", s.lastCommand.Group, s.lastCommand.Data)
	s.state = StateDfuError
	s.status = StatusErrUnknown
}

func (s *Session) writeEmptyIN() error {
	if err := s.ep.WaitUntilReadyToSend(); err != nil {
		return fmt.Errorf("endpoint send wait failed: %v", err)
	}
	s.ep.ClearIN()
	return nil
}

// process routes an immediately-executed FLIP command.
func (s *Session) process(cmd Command) error {
	switch cmd.Group {
	case GroupDownload:
		return s.processDownload(cmd)
	case GroupUpload:
		// Only blank checks arrive here; display reads are deferred.
		return s.processBlankCheck(cmd)
	case GroupExec:
		return s.processExec(cmd)
	case GroupSelect:
		s.processSelect(cmd)
		return nil
	}
	s.failUnknown()
	return nil
}

func (s *Session) downloadTarget(op byte) (memory.Target, bool, bool) {
	switch op {
	case OpFlash:
		return s.mem.Flash, false, true
	case OpEeprom:
		return s.mem.Eeprom, false, true
	case OpDataflash:
		return s.mem.Dataflash, true, true
	}
	return nil, false, false
}

func (s *Session) displayTarget(op byte) (memory.Target, bool, bool) {
	switch op {
	case OpFlash:
		return s.mem.Flash, false, true
	case OpDisplayEeprom:
		return s.mem.Eeprom, false, true
	case OpDataflash:
		return s.mem.Dataflash, true, true
	}
	return nil, false, false
}

func (s *Session) blankCheckTarget(op byte) (memory.Target, bool, bool) {
	switch op {
	case OpBlankCheckFlash:
		return s.mem.Flash, false, true
	case OpBlankCheckEeprom:
		return s.mem.Eeprom, false, true
	case OpBlankCheckDataflash:
		return s.mem.Dataflash, true, true
	}
	return nil, false, false
}

// window resolves the command's address fields against the page bank.
// Targets addressed beyond 64KB see bank-extended effective addresses.
func (s *Session) window(cmd Command, banked bool) (memory.Address, memory.Address) {
	if banked {
		return cmd.BankedWindow(s.pageBank)
	}
	start, end := cmd.Window()
	return memory.Address(start), memory.Address(end)
}

// processDownload streams OUT packets into the selected target until the
// cursor passes the window's inclusive end address. Each packet is
// acknowledged whether or not it completed the window; the state moves to
// dfuDNLOAD-SYNC between packets and to dfuMANIFEST-SYNC once done.
func (s *Session) processDownload(cmd Command) error {
	t, banked, ok := s.downloadTarget(cmd.Data[0])
	if !ok {
		s.failUnknown()
		return nil
	}
	if s.state != StateDfuIdle {
		s.state = StateDfuError
		return nil
	}
	start, end := s.window(cmd, banked)
	glog.V(1).Infof("[dfu-download]: %s window [%#06x, %#06x]", t.Name(), start, end)

	if err := t.BeginWrite(start); err != nil {
		return fmt.Errorf("%s BeginWrite failed: %v", t.Name(), err)
	}
	g := t.Granularity()
	unit := make([]byte, g)
	cur := start

	for s.state != StateDfuManifestSync {
		if err := s.ep.WaitUntilReadyToReceive(); err != nil {
			return fmt.Errorf("endpoint receive wait failed: %v", err)
		}
		s.state = StateDfuDnBusy

		for i := memory.Address(0); i+g <= memory.Address(s.ep.PacketSize()); i += g {
			if cur > end {
				if err := t.EndWrite(); err != nil {
					return fmt.Errorf("%s EndWrite failed: %v", t.Name(), err)
				}
				s.state = StateDfuManifestSync
				break
			}
			if g == 2 {
				binary.LittleEndian.PutUint16(unit, s.ep.ReadWordLE())
			} else {
				unit[0] = s.ep.ReadByte()
			}
			if err := t.Write(unit); err != nil {
				return fmt.Errorf("%s Write failed: %v", t.Name(), err)
			}
			cur += g
		}

		s.ep.ClearOUT()

		// Wait for the host to solicit the status before more data.
		if s.state == StateDfuDnBusy {
			s.state = StateDfuDnloadSync
		}
	}
	return nil
}

// processUploadDisplay streams the selected window out through IN packets.
// Packets are always filled to the endpoint size; the host discards the
// tail of the final packet beyond its requested length.
func (s *Session) processUploadDisplay(cmd Command) error {
	t, banked, ok := s.displayTarget(cmd.Data[0])
	if !ok {
		s.failUnknown()
		return s.writeEmptyIN()
	}
	if s.state != StateDfuIdle {
		s.state = StateDfuError
		return nil
	}
	start, end := s.window(cmd, banked)
	glog.V(1).Infof("[dfu-upload]: %s window [%#06x, %#06x)", t.Name(), start, end)

	s.state = StateDfuUploadIdle

	if err := t.BeginRead(start); err != nil {
		return fmt.Errorf("%s BeginRead failed: %v", t.Name(), err)
	}
	g := t.Granularity()
	unit := make([]byte, g)

	for cur := start; cur < end; {
		if err := s.ep.WaitUntilReadyToSend(); err != nil {
			return fmt.Errorf("endpoint send wait failed: %v", err)
		}
		for i := memory.Address(0); i+g <= memory.Address(s.ep.PacketSize()); i += g {
			if err := t.Read(unit); err != nil {
				return fmt.Errorf("%s Read failed: %v", t.Name(), err)
			}
			if g == 2 {
				s.ep.WriteWordLE(binary.LittleEndian.Uint16(unit))
			} else {
				s.ep.WriteByte(unit[0])
			}
			cur += g
		}
		s.ep.ClearIN()
	}

	if err := t.EndRead(); err != nil {
		return fmt.Errorf("%s EndRead failed: %v", t.Name(), err)
	}
	return nil
}

// processBlankCheck scans the window immediately, without streaming and
// without an idle precondition. A clean window leaves state and status
// untouched; the first violation records its address for a follow-up
// DFU_UPLOAD, flags errCHECK_ERASED and stops the scan.
func (s *Session) processBlankCheck(cmd Command) error {
	t, banked, ok := s.blankCheckTarget(cmd.Data[0])
	if !ok {
		s.failUnknown()
		return nil
	}
	start, end := s.window(cmd, banked)
	glog.V(1).Infof("[dfu-blank]: %s window [%#06x, %#06x)", t.Name(), start, end)

	addr, clean, err := t.BlankCheck(start, end)
	if err != nil {
		return fmt.Errorf("%s BlankCheck failed: %v", t.Name(), err)
	}
	if !clean {
		s.state = StateDfuError
		s.status = StatusErrCheckErased
		s.pending = &blankResult{cmd: cmd, addr: addr}
	}
	return nil
}

func (s *Session) processExec(cmd Command) error {
	switch cmd.Data[0] {
	case OpFlash:
		if cmd.Data[1] == OpEraseTerminator {
			if err := s.mem.Flash.EraseAll(); err != nil {
				return fmt.Errorf("flash EraseAll failed: %v", err)
			}
			return nil
		}

	case OpEeprom:
		if cmd.Data[1] == OpEraseTerminator {
			if err := s.mem.Eeprom.EraseAll(); err != nil {
				return fmt.Errorf("eeprom EraseAll failed: %v", err)
			}
		}
		// Anything else under 0x01 is the set-configuration command,
		// which this bootloader accepts and ignores.
		return nil

	case OpDataflash:
		if cmd.Data[1] == OpEraseTerminator {
			if err := s.mem.Dataflash.EraseAll(); err != nil {
				return fmt.Errorf("dataflash EraseAll failed: %v", err)
			}
			return nil
		}

	case OpStartApp:
		switch cmd.Data[1] {
		case StartAppWatchdog:
			if err := s.board.ArmWatchdog(); err != nil {
				return fmt.Errorf("board ArmWatchdog failed: %v", err)
			}
			return nil
		case StartAppJump:
			s.appStart = memory.Address(cmd.Data[3])<<8 | memory.Address(cmd.Data[4])
			return nil
		}
	}
	s.failUnknown()
	return nil
}

func (s *Session) processRead(cmd Command) error {
	if err := s.ep.WaitUntilReadyToSend(); err != nil {
		return fmt.Errorf("endpoint send wait failed: %v", err)
	}
	b, ok := s.ident.Register(cmd.Data[0], cmd.Data[1])
	if ok {
		s.ep.WriteByte(b)
	} else {
		s.failUnknown()
	}
	s.ep.ClearIN()
	return nil
}

func (s *Session) processSelect(cmd Command) {
	if cmd.Data[0] == OpSelectMemory && cmd.Data[1] == OpSelectMemoryPage {
		s.pageBank = cmd.Data[2]
		glog.V(1).Infof("[dfu-select]: page bank %d", s.pageBank)
		return
	}
	s.failUnknown()
}
