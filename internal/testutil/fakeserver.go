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

// Package testutil provides a fake Gremlin-server websocket endpoint for
// exercising the driver and transport packages without a real database.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/wire"
)

// Chunk is one frame a fake server sends back in reply to a request: a
// status code/message plus an already-encoded GraphSON result.data array.
type Chunk struct {
	Code    int
	Message string
	Data    []gson.Value
}

// IncomingRequest is what the fake server hands to a Handler: the
// request id the real server would echo back, and the decoded bytecode.
type IncomingRequest struct {
	RequestID string
	Bytecode  gson.Bytecode
}

// Handler decides how the fake server replies to one incoming request.
type Handler func(IncomingRequest) []Chunk

// Server is a fake Gremlin endpoint. Its URL field is a ws:// URL ready
// to pass to transport.Dial.
type Server struct {
	*httptest.Server
	URL string
}

// NewServer starts a fake Gremlin-server websocket endpoint backed by
// handler. Each incoming request is handled on its own goroutine, so a
// handler that sleeps before replying (to simulate request B finishing
// before request A) doesn't hold up any other in-flight request; writes
// back to the one shared connection are serialized by a mutex, since
// gorilla/websocket connections aren't safe for concurrent writers. The
// server is closed automatically when the test completes.
func NewServer(t *testing.T, handler Handler) *Server {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("/gremlin", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var writeMu sync.Mutex
		var wg sync.WaitGroup
		defer wg.Wait()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			body, err := wire.Unframe(data)
			if err != nil {
				return
			}
			req, err := decodeIncoming(body)
			if err != nil {
				return
			}
			wg.Add(1)
			go func(req IncomingRequest) {
				defer wg.Done()
				for _, chunk := range handler(req) {
					reply, err := encodeChunk(req.RequestID, chunk)
					if err != nil {
						return
					}
					writeMu.Lock()
					err = conn.WriteMessage(websocket.BinaryMessage, reply)
					writeMu.Unlock()
					if err != nil {
						return
					}
				}
			}(req)
		}
	})
	hs := httptest.NewServer(mux)
	t.Cleanup(hs.Close)
	return &Server{
		Server: hs,
		URL:    "ws" + strings.TrimPrefix(hs.URL, "http") + "/gremlin",
	}
}

type rawRequest struct {
	RequestID string `json:"requestId"`
	Args      struct {
		Gremlin json.RawMessage `json:"gremlin"`
	} `json:"args"`
}

func decodeIncoming(body []byte) (IncomingRequest, error) {
	var raw rawRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return IncomingRequest{}, err
	}
	v, _, err := gson.Decode(raw.Args.Gremlin)
	if err != nil {
		return IncomingRequest{}, err
	}
	bc, _ := v.(gson.Bytecode)
	return IncomingRequest{RequestID: raw.RequestID, Bytecode: bc}, nil
}

type rawResponse struct {
	RequestID string `json:"requestId"`
	Status    struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"status"`
	Result struct {
		Data json.RawMessage `json:"data"`
	} `json:"result"`
}

func encodeChunk(requestID string, chunk Chunk) ([]byte, error) {
	resp := rawResponse{RequestID: requestID}
	resp.Status.Message = chunk.Message
	resp.Status.Code = chunk.Code
	if chunk.Data != nil {
		dataJSON, err := gson.Marshal(gson.List(chunk.Data))
		if err != nil {
			return nil, err
		}
		resp.Result.Data = dataJSON
	} else {
		resp.Result.Data = json.RawMessage("null")
	}
	return json.Marshal(resp)
}
