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

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

// Flash programs the internal flash through the word-granular page buffer.
// Entering a new page erases it; the previous page is committed at that
// same boundary, so a page is never committed before it has been filled.
type Flash struct {
	hw FlashInterface

	// write session cursor
	cur    Address
	start  Address
	active bool
}

func NewFlash(hw FlashInterface) *Flash {
	return &Flash{hw: hw}
}

func (f *Flash) Name() string         { return "flash" }
func (f *Flash) Granularity() Address { return 2 }
func (f *Flash) PageSize() Address    { return f.hw.PageSize() }

func (f *Flash) BeginWrite(start Address) error {
	glog.V(1).Infof("[flash-write]: begin at %#04x", start)
	f.cur = start
	f.start = start
	f.active = true
	return nil
}

func (f *Flash) Write(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("flash writes whole words, got %d bytes", len(data))
	}
	if f.cur%f.hw.PageSize() == 0 {
		if err := f.hw.PageErase(f.cur); err != nil {
			return fmt.Errorf("PageErase failed: %v", err)
		}
		if f.cur != f.start {
			if err := f.hw.PageWrite(f.cur - 2); err != nil {
				return fmt.Errorf("PageWrite failed: %v", err)
			}
		}
		// Writing locks out the RWW section; unlock it again so code
		// can keep executing between pages.
		if err := f.hw.EnableRWW(); err != nil {
			return fmt.Errorf("EnableRWW failed: %v", err)
		}
	}
	word := binary.LittleEndian.Uint16(data)
	if err := f.hw.PageFill(f.cur, word); err != nil {
		return fmt.Errorf("PageFill failed: %v", err)
	}
	f.cur += 2
	return nil
}

func (f *Flash) EndWrite() error {
	if !f.active {
		return nil
	}
	f.active = false
	if f.cur == f.start {
		return nil
	}
	// Commit the last, possibly partial, page of the window.
	if err := f.hw.PageWrite(f.cur - 2); err != nil {
		return fmt.Errorf("PageWrite failed: %v", err)
	}
	if err := f.hw.EnableRWW(); err != nil {
		return fmt.Errorf("EnableRWW failed: %v", err)
	}
	glog.V(1).Infof("[flash-write]: committed through %#04x", f.cur-2)
	return nil
}

func (f *Flash) BeginRead(start Address) error {
	f.cur = start
	return nil
}

func (f *Flash) Read(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("flash reads whole words, got %d bytes", len(data))
	}
	binary.LittleEndian.PutUint16(data, f.hw.ReadWord(f.cur))
	f.cur += 2
	return nil
}

func (f *Flash) EndRead() error { return nil }

func (f *Flash) BlankCheck(start, end Address) (Address, bool, error) {
	for addr := start; addr < end; addr++ {
		if f.hw.ReadByte(addr) != BlankByte {
			glog.V(1).Infof("[flash-blank]: non-blank byte at %#04x", addr)
			return addr, false, nil
		}
	}
	return 0, true, nil
}

// EraseAll clears the application section, stopping below the resident
// bootloader.
func (f *Flash) EraseAll() error {
	pageSize := f.hw.PageSize()
	for addr := Address(0); addr < f.hw.BootSectionStart(); addr += pageSize {
		if err := f.hw.PageErase(addr); err != nil {
			return fmt.Errorf("PageErase failed: %v", err)
		}
	}
	if err := f.hw.EnableRWW(); err != nil {
		return fmt.Errorf("EnableRWW failed: %v", err)
	}
	glog.V(1).Infof("[flash-erase]: application section cleared")
	return nil
}
