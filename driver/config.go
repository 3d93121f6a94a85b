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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// defaultTimeout is applied whenever an Options.Timeout is left at its
// zero value, matching the original driver's 30 second default.
const defaultTimeout = 30 * time.Second

// Options configures a Pool. Zero-value fields fall back to sensible
// defaults in NewPool; there is no requirement to set every field.
type Options struct {
	// SingleEndpoint, if set, is used for both reads and writes and takes
	// precedence over ReadEndpoint/WriteEndpoint.
	SingleEndpoint string

	// ReadEndpoint is the websocket URL traversals with no mutating step
	// (see process.Traversal.IsMutating) are submitted to. Ignored if
	// SingleEndpoint is set.
	ReadEndpoint string
	// WriteEndpoint is the websocket URL traversals containing a mutating
	// step (see process.Traversal.IsMutating) are submitted to. Ignored
	// if SingleEndpoint is set.
	WriteEndpoint string

	// ReadClients is the number of connections to open against
	// ReadEndpoint (or SingleEndpoint). 0 defaults to 1.
	ReadClients int
	// WriteClients is the number of connections to open against
	// WriteEndpoint. 0 defaults to 1. Ignored when the write endpoint
	// equals the read endpoint (as with SingleEndpoint): writes then share
	// the read connections.
	WriteClients int

	// Timeout bounds how long a submitted traversal waits for a response.
	// 0 defaults to 30s.
	Timeout time.Duration

	// Metrics, if non-nil, receives one labeled set of Prometheus
	// instruments per underlying connection.
	Metrics prometheus.Registerer
	// Logger receives structured connection lifecycle events. Defaults to
	// logrus's standard logger if nil.
	Logger *logrus.Logger
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout
}

func (o Options) readClients() int {
	if o.ReadClients <= 0 {
		return 1
	}
	return o.ReadClients
}

func (o Options) writeClients() int {
	if o.WriteClients <= 0 {
		return 1
	}
	return o.WriteClients
}

func (o Options) readEndpoint() string {
	if o.SingleEndpoint != "" {
		return o.SingleEndpoint
	}
	return o.ReadEndpoint
}

func (o Options) writeEndpoint() string {
	if o.SingleEndpoint != "" {
		return o.SingleEndpoint
	}
	return o.WriteEndpoint
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
