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

// Eeprom simulates the byte-addressable internal EEPROM.
type Eeprom struct {
	mem []byte
}

func NewEeprom(size memory.Address) *Eeprom {
	e := &Eeprom{mem: make([]byte, size)}
	for i := range e.mem {
		e.mem[i] = memory.BlankByte
	}
	return e
}

func (e *Eeprom) Size() memory.Address { return memory.Address(len(e.mem)) }

func (e *Eeprom) WriteByte(addr memory.Address, b byte) error {
	if addr >= memory.Address(len(e.mem)) {
		return fmt.Errorf("eeprom write beyond end: %#06x", addr)
	}
	e.mem[addr] = b
	return nil
}

func (e *Eeprom) ReadByte(addr memory.Address) byte {
	if addr >= memory.Address(len(e.mem)) {
		return memory.BlankByte
	}
	return e.mem[addr]
}

// Bytes exposes the simulated array for test assertions.
func (e *Eeprom) Bytes() []byte { return e.mem }
