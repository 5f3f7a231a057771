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
	"fmt"

	"github.com/golang/glog"
)

// Eeprom is the byte-addressable internal EEPROM: no page buffering, every
// byte lands immediately.
type Eeprom struct {
	hw  EepromInterface
	cur Address
}

func NewEeprom(hw EepromInterface) *Eeprom {
	return &Eeprom{hw: hw}
}

func (e *Eeprom) Name() string         { return "eeprom" }
func (e *Eeprom) Granularity() Address { return 1 }
func (e *Eeprom) PageSize() Address    { return 1 }

func (e *Eeprom) BeginWrite(start Address) error {
	glog.V(1).Infof("[eeprom-write]: begin at %#04x", start)
	e.cur = start
	return nil
}

func (e *Eeprom) Write(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("eeprom writes single bytes, got %d bytes", len(data))
	}
	if err := e.hw.WriteByte(e.cur, data[0]); err != nil {
		return fmt.Errorf("WriteByte failed: %v", err)
	}
	e.cur++
	return nil
}

func (e *Eeprom) EndWrite() error { return nil }

func (e *Eeprom) BeginRead(start Address) error {
	e.cur = start
	return nil
}

func (e *Eeprom) Read(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("eeprom reads single bytes, got %d bytes", len(data))
	}
	data[0] = e.hw.ReadByte(e.cur)
	e.cur++
	return nil
}

func (e *Eeprom) EndRead() error { return nil }

func (e *Eeprom) BlankCheck(start, end Address) (Address, bool, error) {
	for addr := start; addr < end; addr++ {
		if e.hw.ReadByte(addr) != BlankByte {
			glog.V(1).Infof("[eeprom-blank]: non-blank byte at %#04x", addr)
			return addr, false, nil
		}
	}
	return 0, true, nil
}

func (e *Eeprom) EraseAll() error {
	for addr := Address(0); addr < e.hw.Size(); addr++ {
		if err := e.hw.WriteByte(addr, BlankByte); err != nil {
			return fmt.Errorf("WriteByte failed: %v", err)
		}
	}
	glog.V(1).Infof("[eeprom-erase]: %d bytes cleared", e.hw.Size())
	return nil
}
