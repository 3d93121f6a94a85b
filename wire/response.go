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

package wire

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/strattonite/gremlin-go/gson"
)

// ResponseHeader is the status portion of a response frame, parsed ahead
// of the (possibly large) result payload so a caller can branch on the
// status code before paying to decode data it may not need.
type ResponseHeader struct {
	RequestID *uuid.UUID
	Code      int
	Message   string
}

// Response is one decoded chunk of a (possibly partial, 206) Gremlin
// response: its header plus the GraphSON-decoded result.data array.
type Response struct {
	Header ResponseHeader
	Data   []gson.Value
}

type responseEnvelope struct {
	RequestID *string         `json:"requestId"`
	Status    responseStatus  `json:"status"`
	Result    responseResult  `json:"result"`
}

type responseStatus struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type responseResult struct {
	Data json.RawMessage `json:"data"`
}

// ParseHeader decodes only the requestId/status portion of a response
// body, leaving the result payload untouched.
func ParseHeader(body []byte) (ResponseHeader, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ResponseHeader{}, err
	}
	return toHeader(env)
}

// Parse decodes a full response body: header plus GraphSON-decoded
// result data. A null or absent result.data yields an empty slice, not
// an error, matching a no-content (204) response.
func Parse(body []byte) (Response, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Response{}, err
	}
	header, err := toHeader(env)
	if err != nil {
		return Response{}, err
	}
	var data []gson.Value
	if len(env.Result.Data) > 0 && string(env.Result.Data) != "null" {
		data, err = gson.DecodeResultArray(env.Result.Data)
		if err != nil {
			return Response{}, err
		}
	}
	return Response{Header: header, Data: data}, nil
}

func toHeader(env responseEnvelope) (ResponseHeader, error) {
	h := ResponseHeader{Code: env.Status.Code, Message: env.Status.Message}
	if env.RequestID != nil {
		id, err := uuid.Parse(*env.RequestID)
		if err != nil {
			return ResponseHeader{}, err
		}
		h.RequestID = &id
	}
	return h, nil
}

// PartialResponseCode is the status code a multi-chunk traversal result
// uses for every chunk but the last.
const PartialResponseCode = 206

// SuccessCode is the status code a final, complete response carries.
const SuccessCode = 200

// NoContentCode is the status code returned when a traversal produced no
// results (e.g. a pure side-effecting mutation).
const NoContentCode = 204
