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
	"fmt"

	"github.com/muyachang/atmel-usbdfu"
)

// Request type bits of a DFU class interface request.
const (
	requestTypeOut = 0x21
	requestTypeIn  = 0xA1
)

// Loopback connects a host-side FLIP client directly to a live engine
// session: every control transfer is queued on the simulated endpoint and
// serviced synchronously by the session. It implements flip.Transporter.
type Loopback struct {
	sess *usbdfu.Session
	ep   *Endpoint
}

func NewLoopback(sess *usbdfu.Session, ep *Endpoint) *Loopback {
	return &Loopback{sess: sess, ep: ep}
}

func (l *Loopback) ControlOut(request usbdfu.Request, value uint16, data []byte) error {
	if len(data) > 0 {
		l.ep.QueueStream(data)
	}
	err := l.sess.HandleSetup(usbdfu.SetupPacket{
		RequestType: requestTypeOut,
		Request:     request,
		Value:       value,
		Length:      uint16(len(data)),
	})
	// A refused request may leave part of the data stage unconsumed.
	l.ep.FlushOUT()
	l.ep.TakeIN()
	return err
}

func (l *Loopback) ControlIn(request usbdfu.Request, value uint16, data []byte) error {
	err := l.sess.HandleSetup(usbdfu.SetupPacket{
		RequestType: requestTypeIn,
		Request:     request,
		Value:       value,
		Length:      uint16(len(data)),
	})
	if err != nil {
		return err
	}
	buf := l.ep.TakeIN()
	if len(buf) < len(data) {
		return fmt.Errorf("short response: got %d bytes, want %d", len(buf), len(data))
	}
	copy(data, buf)
	return nil
}

func (l *Loopback) Close() error { return nil }
