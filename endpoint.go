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

//go:generate mockgen -destination=mocks/endpoint.go -package=mocks github.com/muyachang/atmel-usbdfu EndpointInterface

// EndpointInterface is the control-endpoint capability consumed by the
// engine. The Wait methods model the hardware ready-flag busy-waits: they
// block until an OUT packet has arrived (receive) or the IN bank is free
// (send). Byte and word accessors move data through the endpoint FIFO of
// the packet currently banked; words are little-endian on the wire.
type EndpointInterface interface {
	WaitUntilReadyToReceive() error
	WaitUntilReadyToSend() error

	ReadByte() byte
	ReadWordLE() uint16
	WriteByte(b byte)
	WriteWordLE(w uint16)

	// ClearOUT acknowledges the received OUT packet and frees its bank.
	ClearOUT()
	// ClearIN hands the written IN packet to the host.
	ClearIN()
	// ClearSETUP acknowledges the setup stage of a control request.
	ClearSETUP()
	// ClearStatusStage completes the status stage of a control request.
	ClearStatusStage()

	// PacketSize is the fixed control endpoint bank size in bytes.
	PacketSize() int
}
