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

	"github.com/stretchr/testify/require"
)

func TestBytecodeAddStepPrependsOpName(t *testing.T) {
	var bc Bytecode
	bc.AddStep("has", Str("name"), Str("marko"))
	require.Len(t, bc.Step, 1)
	require.Equal(t, Step{Str("has"), Str("name"), Str("marko")}, bc.Step[0])
}

func TestBytecodeNoArgStep(t *testing.T) {
	var bc Bytecode
	bc.NoArgStep("count")
	require.Equal(t, Step{Str("count")}, bc.Step[0])
}

func TestBytecodeIsMutating(t *testing.T) {
	cases := []struct {
		name     string
		steps    []string
		mutating bool
	}{
		{"read only", []string{"V", "has", "values"}, false},
		{"addV", []string{"V", "addV"}, true},
		{"addE", []string{"addE"}, true},
		{"drop", []string{"V", "drop"}, true},
		{"property", []string{"property"}, true},
		{"mergeV", []string{"mergeV"}, true},
		{"mergeE", []string{"mergeE"}, true},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var bc Bytecode
			for _, s := range tc.steps {
				bc.NoArgStep(s)
			}
			require.Equal(t, tc.mutating, bc.IsMutating())
		})
	}
}

func TestBytecodeMonotonic(t *testing.T) {
	var bc Bytecode
	for i, op := range []string{"V", "out", "out", "values"} {
		bc.NoArgStep(op)
		require.Len(t, bc.Step, i+1)
	}
}
