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

package gson

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalarsRoundTrip(t *testing.T) {
	u := uuid.New()
	cases := []struct {
		name string
		v    Value
	}{
		{"date", Date(1700000000)},
		{"timestamp", Timestamp(1700000000)},
		{"double", Double(3.5)},
		{"float", Float(2.25)},
		{"int32", Int32(42)},
		{"int64", Int64(-9000000000)},
		{"uuid", UUID(u)},
		{"str", Str("hello graph")},
		{"bool-true", Bool(true)},
		{"bool-false", Bool(false)},
		{"null", Null{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := Marshal(tc.v)
			require.NoError(t, err)
			dec, n, err := Decode(enc)
			require.NoError(t, err)
			require.Equal(t, len(enc), n)
			require.Equal(t, tc.v, dec)
		})
	}
}

func TestDecodeVertex(t *testing.T) {
	raw := []byte(`{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int64","@value":7},"label":"person"}}`)
	v, _, err := Decode(raw)
	require.NoError(t, err)
	vertex, ok := v.(Vertex)
	require.True(t, ok)
	require.Equal(t, "person", vertex.Label)
	require.Equal(t, Int64(7), vertex.ID)
}

func TestDecodeEdge(t *testing.T) {
	raw := []byte(`{"@type":"g:Edge","@value":{"id":{"@type":"g:Int64","@value":1},"label":"knows","inVLabel":"person","outVLabel":"person","inV":{"@type":"g:Int64","@value":2},"outV":{"@type":"g:Int64","@value":3}}}`)
	v, _, err := Decode(raw)
	require.NoError(t, err)
	edge, ok := v.(Edge)
	require.True(t, ok)
	require.Equal(t, "knows", edge.Label)
	require.Equal(t, "person", edge.InVLabel)
	require.Equal(t, Int64(2), edge.InV)
	require.Equal(t, Int64(3), edge.OutV)
}

func TestDecodeMapAndList(t *testing.T) {
	raw := []byte(`{"a":{"@type":"g:Int32","@value":1},"b":["x","y"]}`)
	v, _, err := Decode(raw)
	require.NoError(t, err)
	m, ok := v.(Map)
	require.True(t, ok)
	require.Equal(t, Int32(1), m["a"])
	list, ok := m["b"].(List)
	require.True(t, ok)
	require.Equal(t, List{Str("x"), Str("y")}, list)
}

func TestDecodeResultArrayUnwrapsTopLevelTraverser(t *testing.T) {
	raw := []byte(`[{"@type":"g:Traverser","@value":{"bulk":3,"value":{"@type":"g:Int64","@value":10}}},{"@type":"g:Int64","@value":20}]`)
	values, err := DecodeResultArray(raw)
	require.NoError(t, err)
	require.Equal(t, []Value{Int64(10), Int64(20)}, values)
}

func TestDecodeResultArrayDoesNotUnwrapNestedTraverser(t *testing.T) {
	// A g:Traverser envelope appearing anywhere other than an element of
	// the outermost result.data array is not a recognized value variant —
	// unwrapping is a top-level-only special case, not general dispatch.
	raw := []byte(`[[{"@type":"g:Traverser","@value":{"bulk":1,"value":{"@type":"g:Int32","@value":1}}}]]`)
	_, err := DecodeResultArray(raw)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindInvalidDataType, de.Kind)
}

func TestDecodeBareNumberIsInvalidDataType(t *testing.T) {
	_, _, err := Decode([]byte(`42`))
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindInvalidDataType, de.Kind)
}

func TestDecodeBytecode(t *testing.T) {
	raw := []byte(`{"@type":"g:Bytecode","@value":{"step":[["V",{"@type":"g:Int32","@value":1}],["count"]]}}`)
	v, _, err := Decode(raw)
	require.NoError(t, err)
	bc, ok := v.(Bytecode)
	require.True(t, ok)
	require.Len(t, bc.Step, 2)
	require.Equal(t, Str("V"), bc.Step[0][0])
	require.Equal(t, Int32(1), bc.Step[0][1])
	require.Equal(t, Step{Str("count")}, bc.Step[1])
}

func TestDecodePredicate(t *testing.T) {
	raw := []byte(`{"@type":"g:P","@value":{"predicate":"gte","value":{"@type":"g:Int32","@value":5}}}`)
	v, _, err := Decode(raw)
	require.NoError(t, err)
	p, ok := v.(Predicate)
	require.True(t, ok)
	require.Equal(t, PredicateGte, p.Op)
	require.Equal(t, Int32(5), p.Value)
}
