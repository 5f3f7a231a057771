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

package usbdfu_test

import (
	"testing"

	"github.com/muyachang/atmel-usbdfu"
	"github.com/muyachang/atmel-usbdfu/memory"
)

func TestDecodeCommand(t *testing.T) {
	cmd := usbdfu.DecodeCommand([]byte{0x01, 0x00, 0x12, 0x34, 0x56, 0x78})
	if cmd.Group != usbdfu.GroupDownload {
		t.Errorf("Unexpected group (%v)", cmd.Group)
	}
	if cmd.Data != [5]byte{0x00, 0x12, 0x34, 0x56, 0x78} {
		t.Errorf("Unexpected payload (% x)", cmd.Data)
	}
}

func TestDecodeCommandShortPayload(t *testing.T) {
	cmd := usbdfu.DecodeCommand([]byte{0x06, 0x03})
	if cmd.Group != usbdfu.GroupSelect {
		t.Errorf("Unexpected group (%v)", cmd.Group)
	}
	if cmd.Data != [5]byte{0x03, 0, 0, 0, 0} {
		t.Errorf("Short payload should leave zeros (% x)", cmd.Data)
	}
	if cmd = usbdfu.DecodeCommand(nil); cmd.Recognized() {
		t.Errorf("Empty payload should not decode to a known group")
	}
}

func TestCommandWindow(t *testing.T) {
	cmd := usbdfu.DecodeCommand([]byte{0x01, 0x00, 0x12, 0x34, 0x56, 0x78})
	start, end := cmd.Window()
	if start != 0x1234 || end != 0x5678 {
		t.Errorf("Unexpected window [%#04x, %#04x]", start, end)
	}
}

func TestCommandBankedWindow(t *testing.T) {
	cmd := usbdfu.DecodeCommand([]byte{0x01, 0x10, 0x00, 0x00, 0x0F, 0xFF})
	start, end := cmd.BankedWindow(1)
	if start != memory.Address(0x10000) || end != memory.Address(0x10FFF) {
		t.Errorf("Unexpected banked window [%#06x, %#06x]", start, end)
	}
}

func TestCommandClassification(t *testing.T) {
	cases := []struct {
		name       string
		raw        []byte
		recognized bool
		deferred   bool
		blankCheck bool
	}{
		{"download flash", []byte{0x01, 0x00}, true, false, false},
		{"display flash", []byte{0x03, 0x00}, true, true, false},
		{"display eeprom", []byte{0x03, 0x02}, true, true, false},
		{"blank check flash", []byte{0x03, 0x01}, true, false, true},
		{"blank check eeprom", []byte{0x03, 0x03}, true, false, true},
		{"blank check dataflash", []byte{0x03, 0x11}, true, false, true},
		{"exec erase", []byte{0x04, 0x00, 0xFF}, true, false, false},
		{"read identity", []byte{0x05, 0x00, 0x00}, true, true, false},
		{"select page", []byte{0x06, 0x03, 0x00, 0x01}, true, false, false},
		{"unknown group", []byte{0x07, 0x00}, false, false, false},
	}
	for _, c := range cases {
		cmd := usbdfu.DecodeCommand(c.raw)
		if cmd.Recognized() != c.recognized {
			t.Errorf("%s: Recognized() = %v", c.name, cmd.Recognized())
		}
		if cmd.Deferred() != c.deferred {
			t.Errorf("%s: Deferred() = %v", c.name, cmd.Deferred())
		}
		if cmd.IsBlankCheck() != c.blankCheck {
			t.Errorf("%s: IsBlankCheck() = %v", c.name, cmd.IsBlankCheck())
		}
	}
}
