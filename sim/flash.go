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
	"fmt"

	"github.com/muyachang/atmel-usbdfu/memory"
)

// Flash simulates the self-programmed internal flash: a page buffer filled
// word by word and committed to main memory as a unit. Journal records the
// erase/commit sequence for ordering assertions.
type Flash struct {
	mem       []byte
	pageBuf   []byte
	pageSize  memory.Address
	bootStart memory.Address

	Journal []string
}

// NewFlash returns a blank flash of the given total size. The boot section
// occupies [bootStart, size).
func NewFlash(size, pageSize, bootStart memory.Address) *Flash {
	f := &Flash{
		mem:       make([]byte, size),
		pageBuf:   make([]byte, pageSize),
		pageSize:  pageSize,
		bootStart: bootStart,
	}
	for i := range f.mem {
		f.mem[i] = memory.BlankByte
	}
	f.resetPageBuf()
	return f
}

func (f *Flash) resetPageBuf() {
	for i := range f.pageBuf {
		f.pageBuf[i] = memory.BlankByte
	}
}

func (f *Flash) PageSize() memory.Address         { return f.pageSize }
func (f *Flash) BootSectionStart() memory.Address { return f.bootStart }

func (f *Flash) pageBase(addr memory.Address) memory.Address {
	return addr - addr%f.pageSize
}

func (f *Flash) PageErase(addr memory.Address) error {
	base := f.pageBase(addr)
	if base+f.pageSize > memory.Address(len(f.mem)) {
		return fmt.Errorf("page erase beyond flash end: %#06x", addr)
	}
	for i := memory.Address(0); i < f.pageSize; i++ {
		f.mem[base+i] = memory.BlankByte
	}
	f.Journal = append(f.Journal, fmt.Sprintf("erase %#06x", base))
	return nil
}

func (f *Flash) PageFill(addr memory.Address, word uint16) error {
	off := addr % f.pageSize
	if off+1 >= f.pageSize {
		return fmt.Errorf("page fill word straddles page at %#06x", addr)
	}
	f.pageBuf[off] = byte(word)
	f.pageBuf[off+1] = byte(word >> 8)
	return nil
}

func (f *Flash) PageWrite(addr memory.Address) error {
	base := f.pageBase(addr)
	if base+f.pageSize > memory.Address(len(f.mem)) {
		return fmt.Errorf("page write beyond flash end: %#06x", addr)
	}
	copy(f.mem[base:base+f.pageSize], f.pageBuf)
	f.resetPageBuf()
	f.Journal = append(f.Journal, fmt.Sprintf("commit %#06x", base))
	return nil
}

func (f *Flash) EnableRWW() error { return nil }

func (f *Flash) ReadByte(addr memory.Address) byte {
	if addr >= memory.Address(len(f.mem)) {
		return memory.BlankByte
	}
	return f.mem[addr]
}

func (f *Flash) ReadWord(addr memory.Address) uint16 {
	return uint16(f.ReadByte(addr+1))<<8 | uint16(f.ReadByte(addr))
}

// Bytes exposes the simulated array for test assertions.
func (f *Flash) Bytes() []byte { return f.mem }
