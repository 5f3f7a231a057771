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

// Simulated bootloader hardware: control endpoint, flash, EEPROM,
// dataflash and board, for tests and for running the engine off-device.
package sim

import (
	"errors"
)

// ErrNoOUTPacket is returned when the engine waits for an OUT packet the
// host never queued. On real hardware this wait would spin forever.
var ErrNoOUTPacket = errors.New("sim: no OUT packet queued")

// Endpoint is an in-memory control endpoint. The host side queues OUT
// packets and collects completed IN packets; the engine side consumes the
// usbdfu.EndpointInterface methods.
type Endpoint struct {
	packetSize int

	out    [][]byte
	outPos int

	in   []byte
	sent [][]byte
}

func NewEndpoint(packetSize int) *Endpoint {
	return &Endpoint{packetSize: packetSize}
}

func (e *Endpoint) PacketSize() int { return e.packetSize }

// QueueOUT queues one OUT packet as-is.
func (e *Endpoint) QueueOUT(p []byte) {
	e.out = append(e.out, p)
}

// QueueStream splits a data stage into endpoint-sized OUT packets.
func (e *Endpoint) QueueStream(data []byte) {
	for len(data) > e.packetSize {
		e.QueueOUT(data[:e.packetSize])
		data = data[e.packetSize:]
	}
	e.QueueOUT(data)
}

// TakeIN returns everything sent on the IN direction since the last call
// and resets the capture.
func (e *Endpoint) TakeIN() []byte {
	var buf []byte
	for _, p := range e.sent {
		buf = append(buf, p...)
	}
	e.sent = nil
	return buf
}

// INPackets returns the individual IN packets sent since the last TakeIN.
func (e *Endpoint) INPackets() [][]byte { return e.sent }

// PendingOUT returns the number of OUT packets not yet consumed.
func (e *Endpoint) PendingOUT() int { return len(e.out) }

func (e *Endpoint) WaitUntilReadyToReceive() error {
	if len(e.out) == 0 {
		return ErrNoOUTPacket
	}
	return nil
}

func (e *Endpoint) WaitUntilReadyToSend() error { return nil }

func (e *Endpoint) ReadByte() byte {
	if len(e.out) == 0 || e.outPos >= len(e.out[0]) {
		// Reading past the packet drains the FIFO's idle state.
		return 0
	}
	b := e.out[0][e.outPos]
	e.outPos++
	return b
}

func (e *Endpoint) ReadWordLE() uint16 {
	lo := e.ReadByte()
	hi := e.ReadByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (e *Endpoint) WriteByte(b byte) {
	e.in = append(e.in, b)
}

func (e *Endpoint) WriteWordLE(w uint16) {
	e.WriteByte(byte(w))
	e.WriteByte(byte(w >> 8))
}

func (e *Endpoint) ClearOUT() {
	if len(e.out) > 0 {
		e.out = e.out[1:]
	}
	e.outPos = 0
}

func (e *Endpoint) ClearIN() {
	e.sent = append(e.sent, e.in)
	e.in = nil
}

func (e *Endpoint) ClearSETUP() {}

func (e *Endpoint) ClearStatusStage() {}

// FlushOUT drops OUT packets a refused request left unconsumed, the way a
// new setup stage resets the hardware FIFO.
func (e *Endpoint) FlushOUT() {
	e.out = nil
	e.outPos = 0
}
