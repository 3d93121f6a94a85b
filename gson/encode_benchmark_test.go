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

import "testing"

// BenchmarkMarshalVertex measures the cost of encoding a single tagged
// vertex value, the unit of work repeated across a result.data array.
func BenchmarkMarshalVertex(b *testing.B) {
	v := Vertex{ID: Int64(42), Label: "person"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecodeResultArray measures decoding a small result array of
// two tagged vertices, without g:Traverser wrappers.
func BenchmarkDecodeResultArray(b *testing.B) {
	body, err := Marshal(List{
		Vertex{ID: Int64(1), Label: "person"},
		Vertex{ID: Int64(2), Label: "person"},
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeResultArray(body); err != nil {
			b.Fatal(err)
		}
	}
}
