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

package driver

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/strattonite/gremlin-go/internal/telemetry"
	"github.com/strattonite/gremlin-go/internal/transport"
	"github.com/strattonite/gremlin-go/process"
)

// Client is a single Gremlin server connection. Most callers should
// reach for a Pool instead, which routes reads and writes across a
// collection of Clients; Client is exposed directly for callers who
// want to manage their own topology.
//
// A Client obtained from Dial is the main handle for its connection;
// Clone hands out subordinate handles that share the same connection.
// Only closing the main handle tears the connection down — closing a
// clone is a no-op, matching the pool's need to pass a Client around
// without any one borrower being able to pull the connection out from
// under the rest.
type Client struct {
	mux  *transport.Multiplexer
	main bool
}

// connSeq numbers the connections this process dials, so that each one's
// metrics carry a distinct connection label.
var connSeq atomic.Uint64

// Dial opens a single connection to url. timeout bounds how long a
// submitted traversal waits for a response; reg and log, if non-nil,
// receive metrics and structured logs for this connection. The
// returned Client is the connection's main handle.
func Dial(ctx context.Context, url string, timeout time.Duration, reg prometheus.Registerer, log *logrus.Logger) (*Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	metrics := telemetry.New(reg, fmt.Sprintf("%s#%d", url, connSeq.Add(1)))
	entry := log.WithField("endpoint", url)
	mux, err := transport.Dial(ctx, url, timeout, metrics, entry)
	if err != nil {
		return nil, err
	}
	return &Client{mux: mux, main: true}, nil
}

// Clone returns a subordinate handle onto c's connection. The clone
// shares the connection with c and every other clone derived from it;
// closing it has no effect, since only the main handle's Close triggers
// shutdown.
func (c *Client) Clone() *Client {
	return &Client{mux: c.mux}
}

// Execute submits t's bytecode and waits for the full (possibly
// multi-chunk) result set, returning it undecoded as a Response.
// Connection-level errors (ErrNetwork, ErrTimeout, ErrExecution,
// ErrClosed, ErrNoClients) and a *ResponseError for a non-success server
// status surface here; GraphSON decoding errors surface later, from
// Parse or ParseOne.
func (c *Client) Execute(t process.Traversal) (*Response, error) {
	chunks, err := c.mux.Submit(t.Bytecode)
	if err != nil {
		return nil, err
	}
	return &Response{chunks: chunks}, nil
}

// Close shuts the connection down, failing any in-flight request with
// ErrClosed. A no-op on a subordinate handle returned by Clone; only
// the main handle's Close tears the underlying connection down.
func (c *Client) Close() {
	if !c.main {
		return
	}
	c.mux.Close()
}
