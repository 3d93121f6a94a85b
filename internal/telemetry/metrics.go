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

// Package telemetry provides opt-in Prometheus metrics for the Gremlin
// client's multiplexer. Every exported method is safe to call on a nil
// *Metrics (as a no-op), so call sites never need to branch on whether
// metrics were configured.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and gauges a single multiplexer connection
// reports. Construct one with New and register it with a Prometheus
// registerer; a nil *Metrics is always safe to call into.
type Metrics struct {
	requestsSent      prometheus.Counter
	requestsTimedOut  prometheus.Counter
	responsesError    prometheus.Counter
	pendingRequests   prometheus.Gauge
}

// New builds a Metrics instance labeled with the given connection name
// (the driver passes the endpoint URL followed by a per-process
// connection number) and registers it with reg.
func New(reg prometheus.Registerer, connection string) *Metrics {
	labels := prometheus.Labels{"connection": connection}
	m := &Metrics{
		requestsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gremlin_requests_sent_total",
			Help:        "Total bytecode requests sent to the Gremlin server.",
			ConstLabels: labels,
		}),
		requestsTimedOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gremlin_requests_timed_out_total",
			Help:        "Total requests that exceeded the configured timeout before a response arrived.",
			ConstLabels: labels,
		}),
		responsesError: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gremlin_responses_error_total",
			Help:        "Total responses received with a non-success status code.",
			ConstLabels: labels,
		}),
		pendingRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "gremlin_pending_requests",
			Help:        "Number of requests awaiting a response on this connection.",
			ConstLabels: labels,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requestsSent, m.requestsTimedOut, m.responsesError, m.pendingRequests)
	}
	return m
}

func (m *Metrics) RequestSent() {
	if m == nil {
		return
	}
	m.requestsSent.Inc()
}

func (m *Metrics) RequestTimedOut() {
	if m == nil {
		return
	}
	m.requestsTimedOut.Inc()
}

func (m *Metrics) ResponseError() {
	if m == nil {
		return
	}
	m.responsesError.Inc()
}

func (m *Metrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.pendingRequests.Set(float64(n))
}
