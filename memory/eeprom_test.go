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

package memory_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/muyachang/atmel-usbdfu/memory"
	"github.com/muyachang/atmel-usbdfu/memory/mocks"
)

func TestEepromWriteIsImmediate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockEepromInterface(mockCtrl)
	gomock.InOrder(
		hw.EXPECT().WriteByte(memory.Address(0x20), byte(0xAA)).Return(nil),
		hw.EXPECT().WriteByte(memory.Address(0x21), byte(0xBB)).Return(nil),
	)

	e := memory.NewEeprom(hw)
	if err := e.BeginWrite(0x20); err != nil {
		t.Fatalf("BeginWrite failed: %v", err)
	}
	if err := e.Write([]byte{0xAA}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := e.Write([]byte{0xBB}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := e.EndWrite(); err != nil {
		t.Errorf("EndWrite failed: %v", err)
	}
}

func TestEepromRead(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockEepromInterface(mockCtrl)
	gomock.InOrder(
		hw.EXPECT().ReadByte(memory.Address(0x10)).Return(byte(0x42)),
		hw.EXPECT().ReadByte(memory.Address(0x11)).Return(byte(0x43)),
	)

	e := memory.NewEeprom(hw)
	if err := e.BeginRead(0x10); err != nil {
		t.Fatalf("BeginRead failed: %v", err)
	}
	out := make([]byte, 1)
	for _, want := range []byte{0x42, 0x43} {
		if err := e.Read(out); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if out[0] != want {
			t.Errorf("Unexpected byte read (%#02x, want %#02x)", out[0], want)
		}
	}
}

func TestEepromEraseAll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockEepromInterface(mockCtrl)
	hw.EXPECT().Size().Return(memory.Address(3)).AnyTimes()
	gomock.InOrder(
		hw.EXPECT().WriteByte(memory.Address(0), byte(memory.BlankByte)).Return(nil),
		hw.EXPECT().WriteByte(memory.Address(1), byte(memory.BlankByte)).Return(nil),
		hw.EXPECT().WriteByte(memory.Address(2), byte(memory.BlankByte)).Return(nil),
	)

	e := memory.NewEeprom(hw)
	if err := e.EraseAll(); err != nil {
		t.Errorf("EraseAll failed: %v", err)
	}
}

func TestEepromBlankCheck(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockEepromInterface(mockCtrl)
	hw.EXPECT().ReadByte(gomock.Any()).DoAndReturn(func(addr memory.Address) byte {
		if addr == 2 {
			return 0x7F
		}
		return memory.BlankByte
	}).AnyTimes()

	e := memory.NewEeprom(hw)
	addr, blank, err := e.BlankCheck(0, 8)
	if err != nil {
		t.Fatalf("BlankCheck failed: %v", err)
	}
	if blank || addr != 2 {
		t.Errorf("BlankCheck expected first non-blank at 2, got %#04x (blank=%v)", addr, blank)
	}
}
