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

package driver_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strattonite/gremlin-go/driver"
	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/process"
)

// TestIntegrationAgainstRealServer only runs when TEST_URL is set to a
// real Gremlin server's websocket endpoint. It is skipped otherwise, the
// same opt-in behavior as the reference driver's integration test.
func TestIntegrationAgainstRealServer(t *testing.T) {
	testURL := os.Getenv("TEST_URL")
	if testURL == "" {
		t.Skip("integration test not run, missing TEST_URL env var")
	}

	c, err := driver.Dial(context.Background(), testURL, 5*time.Second, nil, nil)
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Execute(process.G.V().Sample(process.Arg(1)))
	require.NoError(t, err)
	vals, err := driver.Parse[gson.Value](resp)
	require.NoError(t, err)
	t.Logf("result: %v", vals)
}
