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

package sim

import (
	"bytes"
	"fmt"

	"github.com/muyachang/atmel-usbdfu/memory"
)

type dataflashMode int

const (
	dfIdle dataflashMode = iota
	dfBufferWrite
	dfArrayRead
)

// Dataflash simulates a single-buffer serial dataflash: an addressed
// command opens a buffer-write or continuous-read session, raw bytes shift
// through SendByte/ReceiveByte, and a buffer-to-main command flushes the
// page. Raw opcode bytes sent outside a session accumulate until the chip
// select toggles, which is how the global chip erase arrives.
type Dataflash struct {
	mem      []byte
	buf      []byte
	pageSize memory.Address

	selected bool
	mode     dataflashMode
	cursor   memory.Address
	cmdBuf   []byte

	Journal []string
}

func NewDataflash(pageSize, pages memory.Address) *Dataflash {
	d := &Dataflash{
		mem:      make([]byte, pageSize*pages),
		buf:      make([]byte, pageSize),
		pageSize: pageSize,
	}
	for i := range d.mem {
		d.mem[i] = memory.BlankByte
	}
	d.resetBuf()
	return d
}

func (d *Dataflash) resetBuf() {
	for i := range d.buf {
		d.buf[i] = memory.BlankByte
	}
}

func (d *Dataflash) PageSize() memory.Address { return d.pageSize }

func (d *Dataflash) Select() { d.selected = true }

func (d *Dataflash) Deselect() {
	d.selected = false
	d.mode = dfIdle
	d.cmdBuf = nil
}

func (d *Dataflash) ToggleCS() {
	if bytes.Equal(d.cmdBuf, memory.DataflashChipEraseSequence[:]) {
		for i := range d.mem {
			d.mem[i] = memory.BlankByte
		}
		d.Journal = append(d.Journal, "chip-erase")
	}
	d.cmdBuf = nil
}

func (d *Dataflash) ConfigureWrite(opcode byte, page, offset memory.Address) error {
	switch opcode {
	case memory.DataflashCmdBuffer1Write:
		d.mode = dfBufferWrite
		d.cursor = offset
		return nil
	case memory.DataflashCmdBuffer1ToMainWithErase:
		base := page * d.pageSize
		if base+d.pageSize > memory.Address(len(d.mem)) {
			return fmt.Errorf("page flush beyond dataflash end: page %d", page)
		}
		copy(d.mem[base:base+d.pageSize], d.buf)
		d.resetBuf()
		d.mode = dfIdle
		d.Journal = append(d.Journal, fmt.Sprintf("flush page %d", page))
		return nil
	}
	return fmt.Errorf("unsupported dataflash write opcode %#02x", opcode)
}

func (d *Dataflash) ConfigureRead(opcode byte, page, offset memory.Address) error {
	if opcode != memory.DataflashCmdContinuousArrayRead {
		return fmt.Errorf("unsupported dataflash read opcode %#02x", opcode)
	}
	d.mode = dfArrayRead
	d.cursor = page*d.pageSize + offset
	return nil
}

func (d *Dataflash) SendByte(b byte) {
	if d.mode == dfBufferWrite {
		d.buf[d.cursor%d.pageSize] = b
		d.cursor++
		return
	}
	d.cmdBuf = append(d.cmdBuf, b)
}

func (d *Dataflash) ReceiveByte() byte {
	if d.mode != dfArrayRead || d.cursor >= memory.Address(len(d.mem)) {
		return memory.BlankByte
	}
	b := d.mem[d.cursor]
	d.cursor++
	return b
}

func (d *Dataflash) WaitWhileBusy() {}

// Bytes exposes the simulated array for test assertions.
func (d *Dataflash) Bytes() []byte { return d.mem }
