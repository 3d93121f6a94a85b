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

// Package wire implements the Gremlin request/response envelopes and the
// framed-WebSocket mime-prefix transport encoding, separate from the
// GraphSON value codec: the envelope's own fields (requestId, status
// code/message) travel as plain untagged JSON, only the bytecode argument
// and result payload are GraphSON-tagged.
package wire

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/strattonite/gremlin-go/gson"
)

// MimeType names the GraphSON v2.0 serialization the server should use
// to read the frame body and reply with. Every outbound message starts
// with "!" followed by it (see mimePrefix).
const MimeType = "application/vnd.gremlin-v2.0+json"

// Request is the bytecode-submission envelope: op="bytecode",
// processor="traversal", a single gremlin argument, and the "g" alias.
type Request struct {
	RequestID uuid.UUID
	Bytecode  gson.Bytecode
}

type requestEnvelope struct {
	RequestID string       `json:"requestId"`
	Op        string       `json:"op"`
	Processor string       `json:"processor"`
	Args      requestArgs  `json:"args"`
}

type requestArgs struct {
	Gremlin json.RawMessage `json:"gremlin"`
	Aliases requestAliases  `json:"aliases"`
}

type requestAliases struct {
	G string `json:"g"`
}

// NewRequest builds a bytecode-submission request for the given
// traversal bytecode, generating a fresh request id.
func NewRequest(bc gson.Bytecode) Request {
	return Request{RequestID: uuid.New(), Bytecode: bc}
}

// Marshal renders the request body (without the mime-prefix frame
// header) as bytes ready to send over the wire.
func (r Request) Marshal() ([]byte, error) {
	gremlin, err := gson.Marshal(r.Bytecode)
	if err != nil {
		return nil, err
	}
	env := requestEnvelope{
		RequestID: r.RequestID.String(),
		Op:        "bytecode",
		Processor: "traversal",
		Args: requestArgs{
			Gremlin: gremlin,
			Aliases: requestAliases{G: "g"},
		},
	}
	return json.Marshal(env)
}

// mimePrefix is the literal frame prefix every outbound message carries:
// a "!" marker immediately followed by MimeType, with no length byte —
// the server recognizes the prefix by its literal bytes, not a count.
const mimePrefix = "!" + MimeType

// Frame wraps a request body in the mime-prefix frame the Gremlin server
// expects: the literal "!"+MimeType prefix followed immediately by the
// JSON body, nothing else.
func Frame(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(mimePrefix)
	buf.Write(body)
	return buf.Bytes()
}

// Unframe strips the mime-prefix header from an inbound frame and
// returns the JSON body, verifying the advertised content type.
func Unframe(frame []byte) ([]byte, error) {
	if len(frame) < len(mimePrefix) {
		return nil, errFrame("truncated mime header")
	}
	if string(frame[:len(mimePrefix)]) != mimePrefix {
		return nil, errFrame("unexpected content type prefix")
	}
	return frame[len(mimePrefix):], nil
}

func errFrame(msg string) error {
	return &FrameError{Message: msg}
}

// FrameError reports a malformed wire frame.
type FrameError struct {
	Message string
}

func (e *FrameError) Error() string { return "wire: " + e.Message }
