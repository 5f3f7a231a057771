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

// Bootloader and device identity bytes served by the FLIP Read group.
const (
	BootloaderVersionMajor = 2
	BootloaderVersionMinor = 0
	BootloaderVersion      = BootloaderVersionMajor<<4 | BootloaderVersionMinor
	BootloaderID1          = 0xDC
	BootloaderID2          = 0xFB

	ManufacturerCode = 0x1E
	FamilyCode       = 0x94
	ProductName      = 0x13
	ProductRevision  = 0x14
)

// Read group info categories and field ids.
const (
	ReadBootloaderInfo = 0x00
	ReadDeviceInfo     = 0x01

	FieldVersion  = 0x00
	FieldID1      = 0x01
	FieldID2      = 0x02
	FieldMaker    = 0x30
	FieldFamily   = 0x31
	FieldProduct  = 0x60
	FieldRevision = 0x61
)

// Identity is the register file behind the Read group: one fixed byte per
// (category, field) pair.
type Identity struct {
	Version      uint8
	ID1          uint8
	ID2          uint8
	Manufacturer uint8
	Family       uint8
	Product      uint8
	Revision     uint8
}

// DefaultIdentity returns the identity bytes of this bootloader build.
func DefaultIdentity() Identity {
	return Identity{
		Version:      BootloaderVersion,
		ID1:          BootloaderID1,
		ID2:          BootloaderID2,
		Manufacturer: ManufacturerCode,
		Family:       FamilyCode,
		Product:      ProductName,
		Revision:     ProductRevision,
	}
}

// Register returns the identity byte addressed by the 2-level Read opcode.
func (id Identity) Register(category, field byte) (byte, bool) {
	switch category {
	case ReadBootloaderInfo:
		switch field {
		case FieldVersion:
			return id.Version, true
		case FieldID1:
			return id.ID1, true
		case FieldID2:
			return id.ID2, true
		}
	case ReadDeviceInfo:
		switch field {
		case FieldMaker:
			return id.Manufacturer, true
		case FieldFamily:
			return id.Family, true
		case FieldProduct:
			return id.Product, true
		case FieldRevision:
			return id.Revision, true
		}
	}
	return 0, false
}
