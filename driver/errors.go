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

// Package driver is the public façade of the Gremlin client: a single
// connection (Client) and a read/write-routing connection pool (Pool)
// built on top of the internal multiplexer and wire packages.
package driver

import (
	"github.com/strattonite/gremlin-go/internal/transport"
)

var (
	// ErrConnecting is returned when dialing a Gremlin server fails.
	ErrConnecting = transport.ErrConnecting
	// ErrNetwork is returned when sending a request over an established
	// connection fails.
	ErrNetwork = transport.ErrNetworkError
	// ErrTimeout is returned when a request's deadline elapses before a
	// response arrives.
	ErrTimeout = transport.ErrRequestTimeout
	// ErrExecution is returned when a request cannot be handed to the
	// connection's control loop at all.
	ErrExecution = transport.ErrExecution
	// ErrClosed is returned to in-flight requests when the connection is
	// closed out from under them.
	ErrClosed = transport.ErrClientClosed
	// ErrNoClients is returned both by a Pool, when no client is
	// registered for the role (read or write) a traversal requires, and
	// by a Client, when the underlying connection reports a protocol-
	// fatal response it cannot attribute to any request. Both cases
	// share this identity so callers can test for either with a single
	// errors.Is check.
	ErrNoClients = transport.ErrNoClients
)

// ResponseError reports a Gremlin server response with a non-success
// status code.
type ResponseError = transport.ResponseError
