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

import (
	"errors"
	"fmt"
)

var (
	// ErrConnecting is returned when the initial websocket dial fails.
	ErrConnecting = errors.New("transport: error connecting to gremlin server")
	// ErrNetworkError is returned when the underlying websocket write
	// fails while submitting a request.
	ErrNetworkError = errors.New("transport: network error sending gremlin request")
	// ErrRequestTimeout is returned when a submitted request's deadline
	// elapses before a response arrives.
	ErrRequestTimeout = errors.New("transport: gremlin request exceeded timeout")
	// ErrExecution is returned when the control loop cannot be reached,
	// i.e. the connection has already been closed out from under the
	// caller.
	ErrExecution = errors.New("transport: error sending bytecode to processor (connection may have been closed)")
	// ErrClientClosed is returned to every pending request when the
	// connection is closed while requests are still outstanding.
	ErrClientClosed = errors.New("transport: connection closed")
	// ErrNoClients is returned to every pending request when an inbound
	// response cannot be parsed or carries no requestId at all — a
	// protocol-fatal condition distinct from an intentional shutdown.
	ErrNoClients = errors.New("transport: no available clients (protocol fatal: malformed or unattributable response)")
)

// ResponseError reports a Gremlin server response carrying a non-success
// status code. Body holds the message from the response's status field,
// not the full response bytes.
type ResponseError struct {
	Code int
	Body string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("transport: server response error (%d): %s", e.Code, e.Body)
}
