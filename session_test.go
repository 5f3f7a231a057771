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

package usbdfu_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/muyachang/atmel-usbdfu"
	"github.com/muyachang/atmel-usbdfu/memory"
	"github.com/muyachang/atmel-usbdfu/memory/mocks"
	usbdfumocks "github.com/muyachang/atmel-usbdfu/mocks"
	"github.com/muyachang/atmel-usbdfu/sim"
)

const packetSize = 64

type fixture struct {
	ep    *sim.Endpoint
	flash *sim.Flash
	eep   *sim.Eeprom
	df    *sim.Dataflash
	board *sim.Board
	sess  *usbdfu.Session
}

func newFixture() *fixture {
	f := &fixture{
		ep:    sim.NewEndpoint(packetSize),
		flash: sim.NewFlash(0x10000, 256, 0xF000),
		eep:   sim.NewEeprom(0x1000),
		df:    sim.NewDataflash(256, 512),
		board: &sim.Board{},
	}
	f.sess = usbdfu.NewSession(f.ep, f.board, usbdfu.MemoryMap{
		Flash:     memory.NewFlash(f.flash),
		Eeprom:    memory.NewEeprom(f.eep),
		Dataflash: memory.NewDataflash(f.df),
	})
	return f
}

func (f *fixture) setup(t *testing.T, req usbdfu.Request, length uint16) {
	t.Helper()
	err := f.sess.HandleSetup(usbdfu.SetupPacket{
		RequestType: 0x21, Request: req, Length: length})
	if err != nil {
		t.Fatalf("%v failed: %v", req, err)
	}
}

// dnload submits one FLIP command, optionally followed by a streamed data
// stage, through a single DFU_DNLOAD request.
func (f *fixture) dnload(t *testing.T, cmd []byte, data []byte) {
	t.Helper()
	f.ep.QueueOUT(cmd)
	if data != nil {
		f.ep.QueueStream(data)
		if len(data)%packetSize == 0 {
			// A window closing exactly on a packet boundary needs one
			// more packet for the engine to observe the end address.
			filler := bytes.Repeat([]byte{0xFF}, packetSize)
			f.ep.QueueOUT(filler)
		}
	}
	f.setup(t, usbdfu.ReqDnload, uint16(len(cmd)+len(data)))
	f.ep.FlushOUT()
}

func (f *fixture) getStatus(t *testing.T) (usbdfu.Status, usbdfu.State) {
	t.Helper()
	f.setup(t, usbdfu.ReqGetStatus, 6)
	buf := f.ep.TakeIN()
	if len(buf) != 6 {
		t.Fatalf("DFU_GETSTATUS returned %d bytes, want 6", len(buf))
	}
	if buf[1] != 0 || buf[2] != 0 || buf[3] != 0 || buf[5] != 0 {
		t.Errorf("Unexpected filler bytes in status response (% x)", buf)
	}
	return usbdfu.Status(buf[0]), usbdfu.State(buf[4])
}

func (f *fixture) getState(t *testing.T) usbdfu.State {
	t.Helper()
	f.setup(t, usbdfu.ReqGetState, 1)
	buf := f.ep.TakeIN()
	if len(buf) != 1 {
		t.Fatalf("DFU_GETSTATE returned %d bytes, want 1", len(buf))
	}
	return usbdfu.State(buf[0])
}

func downloadCmd(op byte, start, end uint16) []byte {
	return []byte{byte(usbdfu.GroupDownload), op,
		byte(start >> 8), byte(start), byte(end >> 8), byte(end)}
}

func uploadCmd(op byte, start, end uint16) []byte {
	return []byte{byte(usbdfu.GroupUpload), op,
		byte(start >> 8), byte(start), byte(end >> 8), byte(end)}
}

func pattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

func TestGetStatusResponseLayout(t *testing.T) {
	f := newFixture()
	status, state := f.getStatus(t)
	if status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Errorf("Fresh session reports %v/%v", status, state)
	}
}

func TestGetStateDoesNotTransition(t *testing.T) {
	f := newFixture()
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x1000, 0x100F), pattern(16))

	// The download completed; DFU_GETSTATE observes dfuMANIFEST-SYNC
	// without disturbing it.
	if state := f.getState(t); state != usbdfu.StateDfuManifestSync {
		t.Errorf("State after download = %v, want dfuMANIFEST-SYNC", state)
	}
	if state := f.getState(t); state != usbdfu.StateDfuManifestSync {
		t.Errorf("Repeated DFU_GETSTATE moved the state to %v", state)
	}
	// DFU_GETSTATUS performs the poll transition and reports the state
	// after it.
	if _, state := f.getStatus(t); state != usbdfu.StateDfuIdle {
		t.Errorf("Status poll reports %v, want dfuIDLE", state)
	}
	if _, state := f.getStatus(t); state != usbdfu.StateDfuIdle {
		t.Errorf("dfuIDLE is not a poll fixed point, got %v", state)
	}
}

func TestDownloadFlashWritesWindow(t *testing.T) {
	f := newFixture()
	data := pattern(16)
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x1000, 0x100F), data)

	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}
	if got := f.flash.Bytes()[0x1000:0x1010]; !bytes.Equal(got, data) {
		t.Errorf("Flash contents mismatch (% x)", got)
	}
	// One page touched: exactly one erase and one commit, in that order.
	want := []string{
		fmt.Sprintf("erase %#06x", 0x1000),
		fmt.Sprintf("commit %#06x", 0x1000),
	}
	if len(f.flash.Journal) != len(want) ||
		f.flash.Journal[0] != want[0] || f.flash.Journal[1] != want[1] {
		t.Errorf("Unexpected page journal %v", f.flash.Journal)
	}
}

func TestDownloadSpanningPagesErasesBeforeCommit(t *testing.T) {
	f := newFixture()
	// [0x0F00, 0x11FF] spans pages 0x0F00, 0x1000 and 0x1100.
	data := pattern(3 * 256)
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x0F00, 0x11FF), data)

	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}
	if got := f.flash.Bytes()[0x0F00:0x1200]; !bytes.Equal(got, data) {
		t.Errorf("Flash contents mismatch across pages")
	}
	want := []string{
		fmt.Sprintf("erase %#06x", 0x0F00),
		fmt.Sprintf("erase %#06x", 0x1000),
		fmt.Sprintf("commit %#06x", 0x0F00),
		fmt.Sprintf("erase %#06x", 0x1100),
		fmt.Sprintf("commit %#06x", 0x1000),
		fmt.Sprintf("commit %#06x", 0x1100),
	}
	if len(f.flash.Journal) != len(want) {
		t.Fatalf("Unexpected page journal %v", f.flash.Journal)
	}
	for i := range want {
		if f.flash.Journal[i] != want[i] {
			t.Errorf("Journal[%d] = %q, want %q", i, f.flash.Journal[i], want[i])
		}
	}
}

func TestDownloadEeprom(t *testing.T) {
	f := newFixture()
	data := pattern(10)
	f.dnload(t, downloadCmd(usbdfu.OpEeprom, 0x20, 0x29), data)

	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}
	if got := f.eep.Bytes()[0x20:0x2A]; !bytes.Equal(got, data) {
		t.Errorf("EEPROM contents mismatch (% x)", got)
	}
}

func TestDownloadWhileNotIdleTouchesNothing(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// A target that must see zero calls.
	flash := mocks.NewMockTarget(mockCtrl)
	ep := sim.NewEndpoint(packetSize)
	sess := usbdfu.NewSession(ep, &sim.Board{}, usbdfu.MemoryMap{
		Flash:     flash,
		Eeprom:    mocks.NewMockTarget(mockCtrl),
		Dataflash: mocks.NewMockTarget(mockCtrl),
	})

	// Force the error state with an unrecognized group.
	ep.QueueOUT([]byte{0x07, 0, 0, 0, 0, 0})
	if err := sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0x21, Request: usbdfu.ReqDnload, Length: 6}); err != nil {
		t.Fatalf("DFU_DNLOAD failed: %v", err)
	}

	ep.QueueOUT(downloadCmd(usbdfu.OpFlash, 0, 0x0F))
	ep.QueueStream(pattern(16))
	if err := sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0x21, Request: usbdfu.ReqDnload, Length: 22}); err != nil {
		t.Fatalf("DFU_DNLOAD failed: %v", err)
	}
	if sess.State() != usbdfu.StateDfuError {
		t.Errorf("Busy download should leave dfuERROR, got %v", sess.State())
	}
}

func TestUploadDisplayFlash(t *testing.T) {
	f := newFixture()
	data := pattern(32)
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x0100, 0x011F), data)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}

	// Display read is deferred: command via DFU_DNLOAD, data via DFU_UPLOAD.
	f.dnload(t, uploadCmd(usbdfu.OpFlash, 0x0100, 0x0120), nil)
	f.setup(t, usbdfu.ReqUpload, 32)
	got := f.ep.TakeIN()
	// Packets are filled to the endpoint size; compare the requested prefix.
	if len(got) < 32 || !bytes.Equal(got[:32], data) {
		t.Errorf("Upload returned % x", got)
	}

	if state := f.getState(t); state != usbdfu.StateDfuUploadIdle {
		t.Errorf("State after upload = %v, want dfuUPLOAD-IDLE", state)
	}
	if _, state := f.getStatus(t); state != usbdfu.StateDfuIdle {
		t.Errorf("Status poll reports %v, want dfuIDLE", state)
	}
}

func TestUploadDisplayEeprom(t *testing.T) {
	f := newFixture()
	data := pattern(8)
	f.dnload(t, downloadCmd(usbdfu.OpEeprom, 0x40, 0x47), data)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}

	f.dnload(t, uploadCmd(usbdfu.OpDisplayEeprom, 0x40, 0x48), nil)
	f.setup(t, usbdfu.ReqUpload, 8)
	got := f.ep.TakeIN()
	if len(got) < 8 || !bytes.Equal(got[:8], data) {
		t.Errorf("Upload returned % x", got)
	}
}

func TestUploadWithoutCommand(t *testing.T) {
	f := newFixture()
	f.setup(t, usbdfu.ReqUpload, 2)
	if got := f.ep.TakeIN(); len(got) != 0 {
		t.Errorf("Expected a zero-length IN packet, got % x", got)
	}
	if status, state := f.getStatus(t); status != usbdfu.StatusErrUnknown || state != usbdfu.StateDfuError {
		t.Errorf("Session reports %v/%v, want errUNKNOWN/dfuERROR", status, state)
	}
}

func TestBlankCheckClean(t *testing.T) {
	f := newFixture()
	f.dnload(t, uploadCmd(usbdfu.OpBlankCheckFlash, 0x1000, 0x2000), nil)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Errorf("Clean blank check reports %v/%v", status, state)
	}
}

func TestBlankCheckViolationAndResultFetch(t *testing.T) {
	f := newFixture()
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x1234, 0x1234), []byte{0x00, 0x00})
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}

	f.dnload(t, uploadCmd(usbdfu.OpBlankCheckFlash, 0x1000, 0x2000), nil)
	if status, state := f.getStatus(t); status != usbdfu.StatusErrCheckErased || state != usbdfu.StateDfuError {
		t.Fatalf("Violated blank check reports %v/%v", status, state)
	}

	// Recover the error state; the recorded address survives the clear.
	f.setup(t, usbdfu.ReqClrStatus, 0)
	f.setup(t, usbdfu.ReqUpload, 2)
	got := f.ep.TakeIN()
	if len(got) != 2 {
		t.Fatalf("Result fetch returned %d bytes, want 2", len(got))
	}
	if addr := uint16(got[1])<<8 | uint16(got[0]); addr != 0x1234 {
		t.Errorf("First non-blank address = %#04x, want 0x1234", addr)
	}

	// The result is consumed: a second fetch reads zero.
	f.setup(t, usbdfu.ReqUpload, 2)
	got = f.ep.TakeIN()
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("Consumed result fetch returned % x", got)
	}
}

func TestClrStatusAndAbortClearErrors(t *testing.T) {
	f := newFixture()
	for _, req := range []usbdfu.Request{usbdfu.ReqClrStatus, usbdfu.ReqAbort} {
		f.dnload(t, []byte{0x07, 0, 0, 0, 0, 0}, nil)
		if status, state := f.getStatus(t); status != usbdfu.StatusErrUnknown || state != usbdfu.StateDfuError {
			t.Fatalf("Unknown group reports %v/%v", status, state)
		}
		f.setup(t, req, 0)
		if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
			t.Errorf("%v left session at %v/%v", req, status, state)
		}
	}
}

func TestUnknownDownloadOpcode(t *testing.T) {
	f := newFixture()
	f.dnload(t, downloadCmd(0x20, 0, 0x0F), nil)
	if status, state := f.getStatus(t); status != usbdfu.StatusErrUnknown || state != usbdfu.StateDfuError {
		t.Errorf("Unknown opcode reports %v/%v", status, state)
	}
}

func TestSelectPageBankAddressesHighDataflash(t *testing.T) {
	f := newFixture()
	f.dnload(t, []byte{byte(usbdfu.GroupSelect), usbdfu.OpSelectMemory, usbdfu.OpSelectMemoryPage, 1, 0, 0}, nil)
	if f.sess.PageBank() != 1 {
		t.Fatalf("PageBank = %d, want 1", f.sess.PageBank())
	}

	data := pattern(16)
	f.dnload(t, downloadCmd(usbdfu.OpDataflash, 0x0000, 0x000F), data)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}
	if got := f.df.Bytes()[0x10000:0x10010]; !bytes.Equal(got, data) {
		t.Errorf("Dataflash bank 1 contents mismatch (% x)", got)
	}
	// Flash windows ignore the bank.
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x0200, 0x020F), data)
	if got := f.flash.Bytes()[0x0200:0x0210]; !bytes.Equal(got, data) {
		t.Errorf("Banked session corrupted the flash window (% x)", got)
	}
}

func TestReadIdentityRegisters(t *testing.T) {
	f := newFixture()
	cases := []struct {
		category, field byte
		want            byte
	}{
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldVersion, usbdfu.BootloaderVersion},
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldID1, usbdfu.BootloaderID1},
		{usbdfu.ReadBootloaderInfo, usbdfu.FieldID2, usbdfu.BootloaderID2},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldMaker, usbdfu.ManufacturerCode},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldFamily, usbdfu.FamilyCode},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldProduct, usbdfu.ProductName},
		{usbdfu.ReadDeviceInfo, usbdfu.FieldRevision, usbdfu.ProductRevision},
	}
	for _, c := range cases {
		f.dnload(t, []byte{byte(usbdfu.GroupRead), c.category, c.field, 0, 0, 0}, nil)
		f.setup(t, usbdfu.ReqUpload, 1)
		got := f.ep.TakeIN()
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("Register (%#02x, %#02x) = % x, want %#02x", c.category, c.field, got, c.want)
		}
	}
}

func TestReadUnknownRegister(t *testing.T) {
	f := newFixture()
	f.dnload(t, []byte{byte(usbdfu.GroupRead), 0x02, 0x00, 0, 0, 0}, nil)
	f.setup(t, usbdfu.ReqUpload, 1)
	if got := f.ep.TakeIN(); len(got) != 0 {
		t.Errorf("Unknown register returned % x", got)
	}
	if status, state := f.getStatus(t); status != usbdfu.StatusErrUnknown || state != usbdfu.StateDfuError {
		t.Errorf("Session reports %v/%v, want errUNKNOWN/dfuERROR", status, state)
	}
}

func TestExecEraseFlash(t *testing.T) {
	f := newFixture()
	f.dnload(t, downloadCmd(usbdfu.OpFlash, 0x1000, 0x100F), pattern(16))
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Download left session at %v/%v", status, state)
	}

	f.dnload(t, []byte{byte(usbdfu.GroupExec), usbdfu.OpFlash, usbdfu.OpEraseTerminator, 0, 0, 0}, nil)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Fatalf("Erase left session at %v/%v", status, state)
	}
	for i, b := range f.flash.Bytes()[0x1000:0x1010] {
		if b != memory.BlankByte {
			t.Fatalf("Flash byte %#04x not erased (%#02x)", 0x1000+i, b)
		}
	}
}

func TestExecStartAppWatchdog(t *testing.T) {
	f := newFixture()
	f.dnload(t, []byte{byte(usbdfu.GroupExec), usbdfu.OpStartApp, usbdfu.StartAppWatchdog, 0, 0, 0}, nil)
	if !f.board.WatchdogArmed {
		t.Errorf("Watchdog not armed")
	}

	err := f.sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0x21, Request: usbdfu.ReqDnload, Length: 0})
	if !errors.Is(err, usbdfu.ErrSessionEnded) {
		t.Fatalf("Empty DFU_DNLOAD returned %v, want ErrSessionEnded", err)
	}
	if !f.board.ShutdownDone {
		t.Errorf("Board not shut down")
	}
}

func TestExecStartAppJump(t *testing.T) {
	f := newFixture()
	f.dnload(t, []byte{byte(usbdfu.GroupExec), usbdfu.OpStartApp, usbdfu.StartAppJump, 0, 0x12, 0x34}, nil)
	if f.sess.AppStart() != 0x1234 {
		t.Fatalf("AppStart = %#04x, want 0x1234", f.sess.AppStart())
	}

	err := f.sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0x21, Request: usbdfu.ReqDnload, Length: 0})
	if !errors.Is(err, usbdfu.ErrSessionEnded) {
		t.Fatalf("Empty DFU_DNLOAD returned %v, want ErrSessionEnded", err)
	}
	if !f.board.Jumped || f.board.JumpAddr != 0x1234 {
		t.Errorf("Jump not taken (jumped=%v addr=%#04x)", f.board.Jumped, f.board.JumpAddr)
	}
}

func TestExecSetConfigurationIsAccepted(t *testing.T) {
	f := newFixture()
	f.dnload(t, []byte{byte(usbdfu.GroupExec), usbdfu.OpSetConfig, 0x00, 0, 0, 0}, nil)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Errorf("Set configuration reports %v/%v", status, state)
	}
}

func TestGetStatusEndpointSequence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ep := usbdfumocks.NewMockEndpointInterface(mockCtrl)
	gomock.InOrder(
		ep.EXPECT().ClearSETUP(),
		ep.EXPECT().WaitUntilReadyToSend().Return(nil),
		ep.EXPECT().WriteByte(byte(usbdfu.StatusOk)),
		ep.EXPECT().WriteByte(byte(0)),
		ep.EXPECT().WriteByte(byte(0)),
		ep.EXPECT().WriteByte(byte(0)),
		ep.EXPECT().WriteByte(byte(usbdfu.StateDfuIdle)),
		ep.EXPECT().WriteByte(byte(0)),
		ep.EXPECT().ClearIN(),
		ep.EXPECT().ClearStatusStage(),
	)

	sess := usbdfu.NewSession(ep, &sim.Board{}, usbdfu.MemoryMap{})
	err := sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0xA1, Request: usbdfu.ReqGetStatus, Length: 6})
	if err != nil {
		t.Errorf("DFU_GETSTATUS failed: %v", err)
	}
}

func TestShutdownFailurePropagates(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ep := usbdfumocks.NewMockEndpointInterface(mockCtrl)
	ep.EXPECT().ClearSETUP()
	board := usbdfumocks.NewMockBoardInterface(mockCtrl)
	board.EXPECT().Shutdown().Return(errors.New("usb teardown stuck"))

	sess := usbdfu.NewSession(ep, board, usbdfu.MemoryMap{})
	err := sess.HandleSetup(usbdfu.SetupPacket{RequestType: 0x21, Request: usbdfu.ReqDnload, Length: 0})
	if err == nil || errors.Is(err, usbdfu.ErrSessionEnded) {
		t.Errorf("Expected shutdown error, got %v", err)
	}
}

func TestDetachIsAcknowledged(t *testing.T) {
	f := newFixture()
	f.setup(t, usbdfu.ReqDetach, 0)
	if status, state := f.getStatus(t); status != usbdfu.StatusOk || state != usbdfu.StateDfuIdle {
		t.Errorf("Detach left session at %v/%v", status, state)
	}
}
