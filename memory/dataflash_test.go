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

func TestDataflashWriteFlushesAtPageBoundary(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockDataflashInterface(mockCtrl)
	hw.EXPECT().PageSize().Return(memory.Address(4)).AnyTimes()
	gomock.InOrder(
		// Window [2, 6): starts mid-page 0, ends mid-page 1.
		hw.EXPECT().Select(),
		hw.EXPECT().ConfigureWrite(byte(memory.DataflashCmdBuffer1Write),
			memory.Address(0), memory.Address(2)).Return(nil),
		hw.EXPECT().SendByte(byte(0x11)),
		hw.EXPECT().SendByte(byte(0x22)),
		// Page boundary: flush page 0, reopen the buffer for page 1.
		hw.EXPECT().ToggleCS(),
		hw.EXPECT().ConfigureWrite(byte(memory.DataflashCmdBuffer1ToMainWithErase),
			memory.Address(0), memory.Address(0)).Return(nil),
		hw.EXPECT().ToggleCS(),
		hw.EXPECT().WaitWhileBusy(),
		hw.EXPECT().ConfigureWrite(byte(memory.DataflashCmdBuffer1Write),
			memory.Address(1), memory.Address(0)).Return(nil),
		hw.EXPECT().SendByte(byte(0x33)),
		hw.EXPECT().SendByte(byte(0x44)),
		// EndWrite flushes the partial page 1.
		hw.EXPECT().ToggleCS(),
		hw.EXPECT().ConfigureWrite(byte(memory.DataflashCmdBuffer1ToMainWithErase),
			memory.Address(1), memory.Address(0)).Return(nil),
		hw.EXPECT().ToggleCS(),
		hw.EXPECT().WaitWhileBusy(),
		hw.EXPECT().Deselect(),
	)

	d := memory.NewDataflash(hw)
	if err := d.BeginWrite(2); err != nil {
		t.Fatalf("BeginWrite failed: %v", err)
	}
	for _, b := range []byte{0x11, 0x22, 0x33, 0x44} {
		if err := d.Write([]byte{b}); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := d.EndWrite(); err != nil {
		t.Errorf("EndWrite failed: %v", err)
	}
}

func TestDataflashRead(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockDataflashInterface(mockCtrl)
	hw.EXPECT().PageSize().Return(memory.Address(4)).AnyTimes()
	gomock.InOrder(
		hw.EXPECT().Select(),
		hw.EXPECT().ConfigureRead(byte(memory.DataflashCmdContinuousArrayRead),
			memory.Address(1), memory.Address(1)).Return(nil),
		hw.EXPECT().ReceiveByte().Return(byte(0xAB)),
		hw.EXPECT().Deselect(),
	)

	d := memory.NewDataflash(hw)
	if err := d.BeginRead(5); err != nil {
		t.Fatalf("BeginRead failed: %v", err)
	}
	out := make([]byte, 1)
	if err := d.Read(out); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if out[0] != 0xAB {
		t.Errorf("Unexpected byte read (%#02x)", out[0])
	}
	if err := d.EndRead(); err != nil {
		t.Errorf("EndRead failed: %v", err)
	}
}

func TestDataflashEraseAll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hw := mocks.NewMockDataflashInterface(mockCtrl)
	gomock.InOrder(
		hw.EXPECT().Select(),
		hw.EXPECT().SendByte(byte(0xC7)),
		hw.EXPECT().SendByte(byte(0x94)),
		hw.EXPECT().SendByte(byte(0x80)),
		hw.EXPECT().SendByte(byte(0x9A)),
		hw.EXPECT().ToggleCS(),
		hw.EXPECT().WaitWhileBusy(),
		hw.EXPECT().Deselect(),
	)

	d := memory.NewDataflash(hw)
	if err := d.EraseAll(); err != nil {
		t.Errorf("EraseAll failed: %v", err)
	}
}
