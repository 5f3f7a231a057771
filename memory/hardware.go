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

package memory

// Address is a byte address in one of the target address spaces.
type Address uint32

//go:generate mockgen -destination=mocks/hardware.go -package=mocks github.com/muyachang/atmel-usbdfu/memory FlashInterface,EepromInterface,DataflashInterface

// FlashInterface is the self-programming capability of the internal flash:
// a page buffer filled word by word, committed to an erased page, with the
// read-while-write section locked out until re-enabled. Erase and commit
// block until the memory controller finishes.
type FlashInterface interface {
	PageSize() Address
	// BootSectionStart is the first address of the resident bootloader;
	// bulk erase must stop below it.
	BootSectionStart() Address

	PageErase(addr Address) error
	PageFill(addr Address, word uint16) error
	PageWrite(addr Address) error
	EnableRWW() error

	ReadWord(addr Address) uint16
	ReadByte(addr Address) byte
}

// EepromInterface is the byte-addressable internal EEPROM. Writes block
// until the cell completes.
type EepromInterface interface {
	Size() Address
	WriteByte(addr Address, b byte) error
	ReadByte(addr Address) byte
}

// Dataflash SPI opcodes.
const (
	DataflashCmdBuffer1Write          = 0x84
	DataflashCmdBuffer1ToMainWithErase = 0x83
	DataflashCmdContinuousArrayRead   = 0xE8
)

// DataflashChipEraseSequence is the 4-byte global chip erase command.
var DataflashChipEraseSequence = [4]byte{0xC7, 0x94, 0x80, 0x9A}

// DataflashInterface is the external serial dataflash transport: chip
// select control, opcode/page/offset command setup and raw byte shifting.
// A command phase is delimited by toggling the chip select line.
type DataflashInterface interface {
	PageSize() Address

	Select()
	Deselect()
	ToggleCS()

	// ConfigureWrite opens an addressed command (opcode + page + offset)
	// in the write direction; ConfigureRead does the same for reads.
	ConfigureWrite(opcode byte, page, offset Address) error
	ConfigureRead(opcode byte, page, offset Address) error

	SendByte(b byte)
	ReceiveByte() byte
	WaitWhileBusy()
}
