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

package process

import (
	"testing"

	"github.com/strattonite/gremlin-go/gson"
	"github.com/stretchr/testify/require"
)

func TestBuildBytecodeMatchesStepOrder(t *testing.T) {
	sub := Underscore.V(gson.Str("ANOTHER_USER_ID"))
	g := G.V(gson.Str("USER_ID")).AddE(gson.Str("edge_label")).To(Arg(sub)).Id()

	bc := g.Bytecode
	require.Len(t, bc.Step, 4)
	require.Equal(t, gson.Str("V"), bc.Step[0][0])
	require.Equal(t, gson.Str("USER_ID"), bc.Step[0][1])
	require.Equal(t, gson.Str("addE"), bc.Step[1][0])
	require.Equal(t, gson.Str("to"), bc.Step[2][0])

	nested, ok := bc.Step[2][1].(gson.Bytecode)
	require.True(t, ok)
	require.Len(t, nested.Step, 1)
	require.Equal(t, gson.Str("V"), nested.Step[0][0])

	require.Equal(t, gson.Str("id"), bc.Step[3][0])
}

func TestIsMutatingClassification(t *testing.T) {
	cases := []struct {
		name      string
		build     func() Traversal
		wantTrue  bool
	}{
		{"plain read", func() Traversal { return G.V().Has(gson.Str("name")).Values() }, false},
		{"addV", func() Traversal { return G.AddV(gson.Str("person")) }, true},
		{"addE", func() Traversal { return G.V().AddE(gson.Str("knows")) }, true},
		{"drop", func() Traversal { return G.V().Drop() }, true},
		{"property", func() Traversal { return G.V().Property(gson.Str("k"), gson.Str("v")) }, true},
		{"mergeV", func() Traversal { return Underscore.Start().MergeV(gson.Map{}) }, true},
		{"mergeE", func() Traversal { return Underscore.Start().MergeE(gson.Map{}) }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantTrue, tc.build().IsMutating())
		})
	}
}

func TestTraversalSourceProducesFreshTraversalEachCall(t *testing.T) {
	first := G.V(gson.Str("a"))
	second := G.V(gson.Str("b"))
	require.Len(t, first.Bytecode.Step, 1)
	require.Len(t, second.Bytecode.Step, 1)
	require.NotEqual(t, first.Bytecode.Step[0][1], second.Bytecode.Step[0][1])
}

func TestPredicateConstructors(t *testing.T) {
	v := Gt(21)
	p, ok := v.(gson.Predicate)
	require.True(t, ok)
	require.Equal(t, gson.PredicateGt, p.Op)
	require.Equal(t, gson.Int64(21), p.Value)
}

func TestTextPredicateConstructors(t *testing.T) {
	v := StartingWith("mar")
	p, ok := v.(gson.TextPredicate)
	require.True(t, ok)
	require.Equal(t, gson.TextPredicateStartingWith, p.Op)
	require.Equal(t, "mar", p.Value)
}
