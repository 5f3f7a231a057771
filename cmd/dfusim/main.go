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

// Exercises the bootloader engine against simulated hardware: loads a
// .hex image (or a generated test pattern), programs it through the full
// DFU/FLIP path and dumps the resulting memory images for the viewer.
package main

import (
	"flag"
	"os"
	"path"

	"github.com/golang/glog"

	"github.com/muyachang/atmel-usbdfu"
	"github.com/muyachang/atmel-usbdfu/flip"
	"github.com/muyachang/atmel-usbdfu/memory"
	"github.com/muyachang/atmel-usbdfu/sim"
	"github.com/muyachang/atmel-usbdfu/util"
)

var (
	firmwareFile = flag.String("firmware", "", "Optional .hex firmware file name")
	dumpDir      = flag.String("dump", "dumps", "Directory for memory image dumps")

	flashSize = flag.Int("flash_size", 0x10000, "Simulated flash size in bytes")
	pageSize  = flag.Int("page_size", 256, "Simulated flash page size in bytes")
	bootStart = flag.Int("boot_start", 0xF000, "Simulated boot section start address")
)

func init() {
	flag.Parse()
}

func testPattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func main() {
	defer glog.Flush()

	flash := sim.NewFlash(memory.Address(*flashSize), memory.Address(*pageSize), memory.Address(*bootStart))
	board := &sim.Board{}
	mem := usbdfu.MemoryMap{
		Flash:     memory.NewFlash(flash),
		Eeprom:    memory.NewEeprom(sim.NewEeprom(0x1000)),
		Dataflash: memory.NewDataflash(sim.NewDataflash(528, 128)),
	}
	ep := sim.NewEndpoint(flip.DefaultPacketSize)
	sess := usbdfu.NewSession(ep, board, mem)
	c := flip.NewClient(sim.NewLoopback(sess, ep))
	defer c.Close()

	info, err := c.ReadDeviceInfo()
	if err != nil {
		glog.Fatalf("Failed reading device info: %v", err)
	}
	glog.Infof("Simulated bootloader %d.%d, part %02x %02x %02x",
		info.BootloaderVersion>>4, info.BootloaderVersion&0x0F,
		info.ManufacturerCode, info.FamilyCode, info.ProductName)

	var firmware []util.Segment
	if len(*firmwareFile) != 0 {
		if firmware, err = util.LoadIntelHexFile(*firmwareFile); err != nil {
			glog.Fatalf("Failed loading hex file: %v", err)
		}
	} else {
		firmware = []util.Segment{{Address: 0x1000, Data: testPattern(1000)}}
	}

	if err = util.ProgramDevice(c, firmware); err != nil {
		glog.Fatalf("Failed programming simulated device: %v", err)
	}
	glog.Infof("Flash journal: %d page operations", len(flash.Journal))

	if err = os.MkdirAll(*dumpDir, 0755); err != nil {
		glog.Fatalf("Failed creating dump directory: %v", err)
	}
	out := path.Join(*dumpDir, "flash.bin")
	if err = os.WriteFile(out, flash.Bytes(), 0644); err != nil {
		glog.Fatalf("Failed writing flash image: %v", err)
	}
	glog.Infof("Flash image dumped to %s", out)
}
