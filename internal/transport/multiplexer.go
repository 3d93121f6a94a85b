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

// Package transport implements the concurrent multiplexer that shares a
// single Gremlin websocket connection across many in-flight requests: one
// reader goroutine, one 100ms timeout-ticker goroutine, and one control
// goroutine that owns all mutable state and is the only one that ever
// touches the pending-request map or the timeout queue.
package transport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/internal/telemetry"
	"github.com/strattonite/gremlin-go/wire"
)

const tickerInterval = 100 * time.Millisecond

// Multiplexer owns one websocket connection and fans the bytecode
// requests of arbitrarily many concurrent callers across it, matching
// each inbound frame back to its caller by request id.
type Multiplexer struct {
	conn      *websocket.Conn
	events    chan event
	timeout   time.Duration
	metrics   *telemetry.Metrics
	log       *logrus.Entry
	wg        sync.WaitGroup
	stopped   uint32
	closeOnce sync.Once
}

type pendingEntry struct {
	chunks [][]byte
	reply  chan submitOutcome
}

type timeoutEntry struct {
	deadline time.Time
	id       uuid.UUID
}

// Dial opens a websocket connection to url and starts the multiplexer's
// three goroutines. timeout bounds how long a submitted request waits
// for a response before failing with ErrRequestTimeout.
func Dial(ctx context.Context, url string, timeout time.Duration, metrics *telemetry.Metrics, log *logrus.Entry) (*Multiplexer, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	dialer := websocket.Dialer{}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnecting, err)
	}

	m := &Multiplexer{
		conn:    conn,
		events:  make(chan event, 64),
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}

	m.wg.Add(3)
	go m.readLoop()
	go m.tickLoop()
	go func() {
		defer m.wg.Done()
		m.controlLoop()
	}()

	log.WithField("url", url).Info("gremlin multiplexer connected")
	return m, nil
}

// Submit sends bc as a bytecode request and blocks until either a final
// response arrives, the request times out, or the connection closes.
// Called after Close, it fails at once with ErrExecution.
func (m *Multiplexer) Submit(bc gson.Bytecode) ([][]byte, error) {
	if atomic.LoadUint32(&m.stopped) == 1 {
		return nil, ErrExecution
	}
	reply := make(chan submitOutcome, 1)
	select {
	case m.events <- submitEvent{bytecode: bc, reply: reply}:
	default:
		// the control loop's inbound buffer is saturated or gone; treat
		// either as an execution failure rather than blocking forever.
		select {
		case m.events <- submitEvent{bytecode: bc, reply: reply}:
		case <-time.After(m.timeout):
			return nil, ErrExecution
		}
	}
	out := <-reply
	return out.chunks, out.err
}

// Close gracefully shuts the multiplexer down: the control loop closes
// the websocket and fails every pending request with ErrClientClosed.
// Idempotent — calling it more than once is a no-op after the first.
func (m *Multiplexer) Close() {
	if !atomic.CompareAndSwapUint32(&m.stopped, 0, 1) {
		return
	}
	m.events <- killEvent{}
	m.wg.Wait()
}

func (m *Multiplexer) readLoop() {
	defer m.wg.Done()
	for {
		_, data, err := m.conn.ReadMessage()
		if err != nil {
			return
		}
		select {
		case m.events <- wsEvent{data: data}:
		default:
			// control loop is gone or backed up past capacity; drop the
			// frame rather than block the reader indefinitely.
		}
	}
}

func (m *Multiplexer) tickLoop() {
	defer m.wg.Done()
	ticker := time.NewTicker(tickerInterval)
	defer ticker.Stop()
	for range ticker.C {
		select {
		case m.events <- timeoutTickEvent{}:
		default:
		}
		if atomic.LoadUint32(&m.stopped) == 1 {
			return
		}
	}
}

// controlLoop is the sole owner of pending and timeouts: every read and
// write of either happens on this goroutine, so neither needs a lock.
func (m *Multiplexer) controlLoop() {
	pending := make(map[uuid.UUID]*pendingEntry)
	var timeouts []timeoutEntry

	setPendingGauge := func() { m.metrics.SetPending(len(pending)) }

	for evt := range m.events {
		switch e := evt.(type) {
		case wsEvent:
			m.handleInbound(e.data, pending, setPendingGauge)
		case submitEvent:
			m.handleSubmit(e, pending, &timeouts, setPendingGauge)
		case timeoutTickEvent:
			m.handleTimeouts(pending, &timeouts, setPendingGauge)
		case killEvent:
			m.handleKill(pending)
			return
		}
	}
}

func (m *Multiplexer) handleInbound(data []byte, pending map[uuid.UUID]*pendingEntry, setGauge func()) {
	header, err := wire.ParseHeader(data)
	if err != nil {
		m.log.WithError(err).Warn("gremlin: malformed response header, draining pending requests")
		m.drainAll(pending, ErrNoClients)
		setGauge()
		return
	}
	if header.RequestID == nil {
		m.log.Warn("gremlin: response missing requestId, draining pending requests")
		m.drainAll(pending, ErrNoClients)
		setGauge()
		return
	}

	id := *header.RequestID
	switch header.Code {
	case wire.SuccessCode, wire.NoContentCode:
		if entry, ok := pending[id]; ok {
			entry.chunks = append(entry.chunks, data)
			entry.reply <- submitOutcome{chunks: entry.chunks}
			delete(pending, id)
			setGauge()
		}
	case wire.PartialResponseCode:
		if entry, ok := pending[id]; ok {
			entry.chunks = append(entry.chunks, data)
		}
	default:
		if entry, ok := pending[id]; ok {
			m.metrics.ResponseError()
			entry.reply <- submitOutcome{err: &ResponseError{Code: header.Code, Body: header.Message}}
			delete(pending, id)
			setGauge()
		}
	}
}

func (m *Multiplexer) handleSubmit(e submitEvent, pending map[uuid.UUID]*pendingEntry, timeouts *[]timeoutEntry, setGauge func()) {
	req := wire.NewRequest(e.bytecode)
	body, err := req.Marshal()
	if err != nil {
		e.reply <- submitOutcome{err: fmt.Errorf("%w: %v", ErrNetworkError, err)}
		return
	}
	frame := wire.Frame(body)
	if err := m.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		e.reply <- submitOutcome{err: fmt.Errorf("%w: %v", ErrNetworkError, err)}
		return
	}
	pending[req.RequestID] = &pendingEntry{reply: e.reply}
	*timeouts = append(*timeouts, timeoutEntry{deadline: time.Now().Add(m.timeout), id: req.RequestID})
	m.metrics.RequestSent()
	setGauge()
}

func (m *Multiplexer) handleTimeouts(pending map[uuid.UUID]*pendingEntry, timeouts *[]timeoutEntry, setGauge func()) {
	now := time.Now()
	q := *timeouts
	i := 0
	for i < len(q) && !q[i].deadline.After(now) {
		entry, ok := pending[q[i].id]
		if ok {
			delete(pending, q[i].id)
			entry.reply <- submitOutcome{err: ErrRequestTimeout}
			m.metrics.RequestTimedOut()
		}
		i++
	}
	if i > 0 {
		*timeouts = append([]timeoutEntry{}, q[i:]...)
		setGauge()
	}
}

func (m *Multiplexer) handleKill(pending map[uuid.UUID]*pendingEntry) {
	_ = m.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	m.drainAll(pending, ErrClientClosed)
	_ = m.conn.Close()
}

func (m *Multiplexer) drainAll(pending map[uuid.UUID]*pendingEntry, err error) {
	for id, entry := range pending {
		entry.reply <- submitOutcome{err: err}
		delete(pending, id)
	}
}
