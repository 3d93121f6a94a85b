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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFrameMatchesLiteralMimePrefix pins Frame's output against the exact
// byte sequence a real server expects: the literal marker
// "!application/vnd.gremlin-v2.0+json" immediately followed by the body,
// with no length byte or other framing in between.
func TestFrameMatchesLiteralMimePrefix(t *testing.T) {
	body := []byte(`{"requestId":"x"}`)
	want := append([]byte("!application/vnd.gremlin-v2.0+json"), body...)

	got := Frame(body)

	assert.Equal(t, want, got)
	assert.Equal(t, byte('!'), got[0])
	assert.Equal(t, "application/vnd.gremlin-v2.0+json", string(got[1:len(MimeType)+1]))
}

func TestUnframeRejectsWrongPrefix(t *testing.T) {
	_, err := Unframe([]byte(`{"requestId":"x"}`))
	assert.Error(t, err)
}
