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
	"github.com/muyachang/atmel-usbdfu/memory"
)

// Board records the reset/startup actions the engine requests.
type Board struct {
	WatchdogArmed bool
	ShutdownDone  bool
	Jumped        bool
	JumpAddr      memory.Address
}

func (b *Board) ArmWatchdog() error {
	b.WatchdogArmed = true
	return nil
}

func (b *Board) Shutdown() error {
	b.ShutdownDone = true
	return nil
}

func (b *Board) Jump(addr memory.Address) error {
	b.Jumped = true
	b.JumpAddr = addr
	return nil
}
