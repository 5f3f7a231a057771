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

// Paged memory targets behind the DFU streaming loops.
package memory

// The blank (erased) value of every technology in scope.
const BlankByte = 0xFF

//go:generate mockgen -destination=mocks/target.go -package=mocks github.com/muyachang/atmel-usbdfu/memory Target

// Target is one programmable memory presented to the streaming engine.
// A write session runs BeginWrite, a sequence of Write calls at ascending
// addresses, then EndWrite; the target owns all page bookkeeping inside
// the session (erase on page entry, commit on page exit, final partial
// page committed by EndWrite). Read sessions are the same shape. Write
// and Read move exactly Granularity bytes per call, little-endian when
// the granule is a word.
type Target interface {
	Name() string
	// Granularity is the number of bytes moved per streamed unit.
	Granularity() Address
	PageSize() Address

	BeginWrite(start Address) error
	Write(data []byte) error
	EndWrite() error

	BeginRead(start Address) error
	Read(data []byte) error
	EndRead() error

	// BlankCheck scans [start, end) and returns the address of the first
	// byte that is not BlankByte, if any.
	BlankCheck(start, end Address) (addr Address, clean bool, err error)

	// EraseAll restores the entire target to the blank state.
	EraseAll() error
}
