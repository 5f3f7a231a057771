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

package util_test

import (
	"bytes"
	"os"
	"path"
	"testing"

	"github.com/muyachang/atmel-usbdfu"
	"github.com/muyachang/atmel-usbdfu/flip"
	"github.com/muyachang/atmel-usbdfu/memory"
	"github.com/muyachang/atmel-usbdfu/sim"
	"github.com/muyachang/atmel-usbdfu/util"
)

func newSimClient() (*flip.Client, *sim.Flash) {
	flash := sim.NewFlash(0x10000, 256, 0xF000)
	ep := sim.NewEndpoint(flip.DefaultPacketSize)
	sess := usbdfu.NewSession(ep, &sim.Board{}, usbdfu.MemoryMap{
		Flash:     memory.NewFlash(flash),
		Eeprom:    memory.NewEeprom(sim.NewEeprom(0x1000)),
		Dataflash: memory.NewDataflash(sim.NewDataflash(256, 512)),
	})
	return flip.NewClient(sim.NewLoopback(sess, ep)), flash
}

func TestProgramDevice(t *testing.T) {
	c, flash := newSimClient()
	defer c.Close()

	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 3)
	}
	firmware := []util.Segment{
		{Address: 0x0000, Data: data[:44]},
		{Address: 0x1000, Data: data[44:]},
	}
	if err := util.ProgramDevice(c, firmware); err != nil {
		t.Fatalf("ProgramDevice failed: %v", err)
	}
	if got := flash.Bytes()[0x0000:0x002C]; !bytes.Equal(got, data[:44]) {
		t.Errorf("First segment mismatch (% x)", got)
	}
	if got := flash.Bytes()[0x1000:0x1100]; !bytes.Equal(got, data[44:]) {
		t.Errorf("Second segment mismatch (% x)", got)
	}
}

func TestLoadIntelHexFile(t *testing.T) {
	hexImage := ":100000000102030405060708090A0B0C0D0E0F1068\n" +
		":00000001FF\n"
	filename := path.Join(t.TempDir(), "firmware.hex")
	if err := os.WriteFile(filename, []byte(hexImage), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	segments, err := util.LoadIntelHexFile(filename)
	if err != nil {
		t.Fatalf("LoadIntelHexFile failed: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("Unexpected number of segments (%v)", len(segments))
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if segments[0].Address != 0 || !bytes.Equal(segments[0].Data, want) {
		t.Errorf("Unexpected segment %#x % x", segments[0].Address, segments[0].Data)
	}
}

func TestLoadIntelHexFileMissing(t *testing.T) {
	if _, err := util.LoadIntelHexFile(path.Join(t.TempDir(), "nope.hex")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
