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
	"fmt"

	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/wire"
)

// Response is the raw result of a submitted traversal: the chunk buffer
// handed back by the connection, not yet decoded as GraphSON. Execute
// returns one of these, so that a network or protocol error (ErrNetwork,
// ErrTimeout, ErrClosed, ErrNoClients) is distinguishable from a decoding
// error, which only Parse or ParseOne can raise.
type Response struct {
	chunks [][]byte
}

// Parse decodes r's result.data values and type-asserts each one as T,
// the concrete gson.Value a traversal's terminal step is expected to
// produce (gson.Vertex after a vertex-returning traversal, gson.Int64
// after a count, and so on).
func Parse[T gson.Value](r *Response) ([]T, error) {
	values, err := decodeChunks(r.chunks)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		t, ok := v.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("driver: result value is %T, not %T", v, want)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseOne is Parse for a traversal expected to resolve to exactly one
// value, such as a count() or a single next().
func ParseOne[T gson.Value](r *Response) (T, error) {
	var zero T
	values, err := Parse[T](r)
	if err != nil {
		return zero, err
	}
	if len(values) != 1 {
		return zero, fmt.Errorf("driver: expected exactly one result value, got %d", len(values))
	}
	return values[0], nil
}

func decodeChunks(chunks [][]byte) ([]gson.Value, error) {
	var values []gson.Value
	for _, chunk := range chunks {
		resp, err := wire.Parse(chunk)
		if err != nil {
			return nil, err
		}
		values = append(values, resp.Data...)
	}
	return values, nil
}
