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

package usbdfu

import (
	"github.com/muyachang/atmel-usbdfu/memory"
)

// Group is the first byte of a FLIP command envelope.
type Group uint8

const (
	GroupDownload Group = 1
	GroupUpload   Group = 3
	GroupExec     Group = 4
	GroupRead     Group = 5
	GroupSelect   Group = 6
)

func (g Group) String() string {
	switch g {
	case GroupDownload:
		return "DOWNLOAD"
	case GroupUpload:
		return "UPLOAD"
	case GroupExec:
		return "EXEC"
	case GroupRead:
		return "READ"
	case GroupSelect:
		return "SELECT"
	}
	return "UNRECOGNIZED"
}

// Memory selectors used as the first payload byte of the Download and
// Upload groups.
const (
	OpFlash     = 0x00
	OpEeprom    = 0x01
	OpDataflash = 0x10

	// Upload-only variants.
	OpDisplayEeprom       = 0x02
	OpBlankCheckFlash     = 0x01
	OpBlankCheckEeprom    = 0x03
	OpBlankCheckDataflash = 0x11
)

// Exec group opcodes.
const (
	OpEraseTerminator = 0xFF
	OpSetConfig       = 0x01
	OpStartApp        = 0x03

	StartAppWatchdog = 0x00
	StartAppJump     = 0x01
)

// Select group opcodes.
const (
	OpSelectMemory     = 0x03
	OpSelectMemoryPage = 0x00
)

// Command is a decoded FLIP command envelope: a group byte followed by a
// 5-byte payload (opcode plus address/parameter bytes). A Command is
// immutable once decoded; the session retains the last one verbatim so a
// follow-up DFU_UPLOAD can be resolved against it.
type Command struct {
	Group Group
	Data  [5]byte
}

// DecodeCommand parses the raw bytes of a DFU_DNLOAD payload into a FLIP
// command. Short payloads leave the remaining parameter bytes zero.
func DecodeCommand(raw []byte) Command {
	var cmd Command
	if len(raw) == 0 {
		return cmd
	}
	cmd.Group = Group(raw[0])
	for i := 0; i < 5 && i+1 < len(raw); i++ {
		cmd.Data[i] = raw[i+1]
	}
	return cmd
}

// Window extracts the big-endian start and end address fields from the
// command payload. End is inclusive on the Download path and exclusive on
// the Upload path; the caller picks the interpretation.
func (c Command) Window() (start, end uint16) {
	start = uint16(c.Data[1])<<8 | uint16(c.Data[2])
	end = uint16(c.Data[3])<<8 | uint16(c.Data[4])
	return start, end
}

// BankedWindow extends the 16-bit window fields with the current 64KB page
// bank, forming effective 24-bit addresses for targets larger than 64KB.
func (c Command) BankedWindow(bank uint8) (start, end memory.Address) {
	s, e := c.Window()
	start = memory.Address(bank)<<16 | memory.Address(s)
	end = memory.Address(bank)<<16 | memory.Address(e)
	return start, end
}

// IsBlankCheck reports whether the command is one of the Upload-group blank
// check operations (flash, EEPROM or dataflash).
func (c Command) IsBlankCheck() bool {
	if c.Group != GroupUpload {
		return false
	}
	switch c.Data[0] {
	case OpBlankCheckFlash, OpBlankCheckEeprom, OpBlankCheckDataflash:
		return true
	}
	return false
}

// Deferred reports whether the command completes during a later DFU_UPLOAD
// request rather than inside the DFU_DNLOAD that carried it. Data reads and
// identity reads produce IN data, so they wait for the host's second
// request; everything else (writes, blank checks, exec, select) runs
// immediately.
func (c Command) Deferred() bool {
	switch c.Group {
	case GroupDownload, GroupExec, GroupSelect:
		return false
	case GroupUpload:
		return !c.IsBlankCheck()
	case GroupRead:
		return true
	}
	return false
}

// Recognized reports whether the group byte names a known FLIP group.
func (c Command) Recognized() bool {
	switch c.Group {
	case GroupDownload, GroupUpload, GroupExec, GroupRead, GroupSelect:
		return true
	}
	return false
}
