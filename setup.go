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

// Request is a DFU class-specific control request code.
type Request uint8

const (
	ReqDetach    Request = 0
	ReqDnload    Request = 1
	ReqUpload    Request = 2
	ReqGetStatus Request = 3
	ReqClrStatus Request = 4
	ReqGetState  Request = 5
	ReqAbort     Request = 6
)

func (r Request) String() string {
	switch r {
	case ReqDetach:
		return "DFU_DETACH"
	case ReqDnload:
		return "DFU_DNLOAD"
	case ReqUpload:
		return "DFU_UPLOAD"
	case ReqGetStatus:
		return "DFU_GETSTATUS"
	case ReqClrStatus:
		return "DFU_CLRSTATUS"
	case ReqGetState:
		return "DFU_GETSTATE"
	case ReqAbort:
		return "DFU_ABORT"
	}
	return "DFU_UNKNOWN"
}

// SetupPacket is the 8-byte USB control request header as it arrives on the
// default endpoint.
type SetupPacket struct {
	RequestType uint8
	Request     Request
	Value       uint16
	Index       uint16
	Length      uint16
}
