// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import "github.com/strattonite/gremlin-go/gson"

// event is anything the control goroutine can receive on its single
// event channel. The control goroutine is the only reader of this
// channel and the only owner of the pending-request map and timeout
// queue, so no lock is needed around either.
type event interface{ isEvent() }

// wsEvent carries one inbound frame read off the websocket by the reader
// goroutine.
type wsEvent struct{ data []byte }

func (wsEvent) isEvent() {}

// submitEvent asks the control loop to send a new bytecode request and
// register its reply channel under the request id it generates.
type submitEvent struct {
	bytecode gson.Bytecode
	reply    chan submitOutcome
}

func (submitEvent) isEvent() {}

// submitOutcome is the single value ever sent on a submitEvent's reply
// channel: either the accumulated response chunks, or the error that
// ended the request.
type submitOutcome struct {
	chunks [][]byte
	err    error
}

// timeoutTickEvent fires on a 100ms cadence, prompting the control loop
// to drain any pending requests whose deadline has passed.
type timeoutTickEvent struct{}

func (timeoutTickEvent) isEvent() {}

// killEvent asks the control loop to close the connection and fail every
// pending request with ErrClientClosed.
type killEvent struct{}

func (killEvent) isEvent() {}
