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

// Dataflash streams through the device's buffer 1: bytes accumulate in the
// buffer at the intra-page offset, and each page boundary flushes the
// buffer to main memory with a combined erase+program command before a new
// buffer session opens for the next page.
type Dataflash struct {
	hw DataflashInterface

	cur    Address
	start  Address
	active bool
}

func NewDataflash(hw DataflashInterface) *Dataflash {
	return &Dataflash{hw: hw}
}

func (d *Dataflash) Name() string         { return "dataflash" }
func (d *Dataflash) Granularity() Address { return 1 }
func (d *Dataflash) PageSize() Address    { return d.hw.PageSize() }

func (d *Dataflash) BeginWrite(start Address) error {
	glog.V(1).Infof("[dataflash-write]: begin at %#06x", start)
	pageSize := d.hw.PageSize()
	d.hw.Select()
	if err := d.hw.ConfigureWrite(DataflashCmdBuffer1Write, start/pageSize, start%pageSize); err != nil {
		return fmt.Errorf("ConfigureWrite failed: %v", err)
	}
	d.cur = start
	d.start = start
	d.active = true
	return nil
}

// flushPage writes buffer 1 back to the given main memory page.
func (d *Dataflash) flushPage(page Address) error {
	d.hw.ToggleCS()
	if err := d.hw.ConfigureWrite(DataflashCmdBuffer1ToMainWithErase, page, 0); err != nil {
		return fmt.Errorf("ConfigureWrite failed: %v", err)
	}
	d.hw.ToggleCS()
	d.hw.WaitWhileBusy()
	return nil
}

func (d *Dataflash) Write(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("dataflash writes single bytes, got %d bytes", len(data))
	}
	pageSize := d.hw.PageSize()
	if d.cur != d.start && d.cur%pageSize == 0 {
		if err := d.flushPage(d.cur/pageSize - 1); err != nil {
			return err
		}
		if err := d.hw.ConfigureWrite(DataflashCmdBuffer1Write, d.cur/pageSize, 0); err != nil {
			return fmt.Errorf("ConfigureWrite failed: %v", err)
		}
	}
	d.hw.SendByte(data[0])
	d.cur++
	return nil
}

func (d *Dataflash) EndWrite() error {
	if !d.active {
		return nil
	}
	d.active = false
	if d.cur != d.start {
		// Flush the final, possibly partial, page.
		if err := d.flushPage((d.cur - 1) / d.hw.PageSize()); err != nil {
			return err
		}
	}
	d.hw.Deselect()
	glog.V(1).Infof("[dataflash-write]: done through %#06x", d.cur)
	return nil
}

func (d *Dataflash) BeginRead(start Address) error {
	pageSize := d.hw.PageSize()
	d.hw.Select()
	if err := d.hw.ConfigureRead(DataflashCmdContinuousArrayRead, start/pageSize, start%pageSize); err != nil {
		return fmt.Errorf("ConfigureRead failed: %v", err)
	}
	d.cur = start
	return nil
}

func (d *Dataflash) Read(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("dataflash reads single bytes, got %d bytes", len(data))
	}
	data[0] = d.hw.ReceiveByte()
	d.cur++
	return nil
}

func (d *Dataflash) EndRead() error {
	d.hw.Deselect()
	return nil
}

func (d *Dataflash) BlankCheck(start, end Address) (Address, bool, error) {
	if err := d.BeginRead(start); err != nil {
		return 0, false, err
	}
	defer d.EndRead()
	for addr := start; addr < end; addr++ {
		if d.hw.ReceiveByte() != BlankByte {
			glog.V(1).Infof("[dataflash-blank]: non-blank byte at %#06x", addr)
			return addr, false, nil
		}
	}
	return 0, true, nil
}

// EraseAll issues the global chip erase command sequence.
func (d *Dataflash) EraseAll() error {
	d.hw.Select()
	for _, b := range DataflashChipEraseSequence {
		d.hw.SendByte(b)
	}
	d.hw.ToggleCS()
	d.hw.WaitWhileBusy()
	d.hw.Deselect()
	glog.V(1).Infof("[dataflash-erase]: chip erased")
	return nil
}
