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

package util

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"

	"github.com/muyachang/atmel-usbdfu/flip"
)

// Writes firmware to flash.
// Erases the chip, checks the target range is blank, streams each segment
// down, reads the contents back and verifies them.
func ProgramDevice(c *flip.Client, firmware []Segment) error {
	glog.Info("Erasing flash")
	if err := c.EraseFlash(); err != nil {
		return fmt.Errorf("Failed to erase flash: %v", err)
	}

	for _, seg := range firmware {
		start := uint16(seg.Address)
		end := start + uint16(len(seg.Data))
		blank, addr, err := c.BlankCheckFlash(start, end)
		if err != nil {
			return fmt.Errorf("Blank check failed: %v", err)
		}
		if !blank {
			return fmt.Errorf("Flash not blank after erase at %#04x", addr)
		}

		glog.Infof("Programming %d bytes at %#04x", len(seg.Data), start)
		if err = c.ProgramFlash(start, seg.Data); err != nil {
			return fmt.Errorf("Failed to write to flash: %v", err)
		}

		glog.Info("Verifying contents")
		mem, err := c.ReadFlash(start, len(seg.Data))
		if err != nil {
			return fmt.Errorf("Failed to read flash contents: %v", err)
		}
		if !bytes.Equal(seg.Data, mem) {
			return fmt.Errorf("Data verification failed")
		}
	}
	glog.Info("Device programmed successfully")
	return nil
}

// ProgramFlashFile programs a .hex image into an attached bootloader and
// restarts the device into the new application.
func ProgramFlashFile(filename string) error {
	firmware, err := LoadIntelHexFile(filename)
	if err != nil {
		return fmt.Errorf("Failed loading hex file: %v", err)
	}

	t, err := flip.OpenUsbTransport()
	if err != nil {
		return fmt.Errorf("Failed opening DFU device: %v", err)
	}
	c := flip.NewClient(t)
	defer c.Close()

	info, err := c.ReadDeviceInfo()
	if err != nil {
		return fmt.Errorf("Failed reading device info: %v", err)
	}
	glog.Infof("Bootloader %d.%d on part %02x %02x %02x",
		info.BootloaderVersion>>4, info.BootloaderVersion&0x0F,
		info.ManufacturerCode, info.FamilyCode, info.ProductName)

	if err = ProgramDevice(c, firmware); err != nil {
		return err
	}
	return c.StartApplicationWatchdog()
}
