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

package transport_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/internal/telemetry"
	"github.com/strattonite/gremlin-go/internal/testutil"
	"github.com/strattonite/gremlin-go/internal/transport"
	"github.com/strattonite/gremlin-go/wire"
)

func dial(t *testing.T, url string, timeout time.Duration) *transport.Multiplexer {
	t.Helper()
	mux, err := transport.Dial(context.Background(), url, timeout, telemetry.New(nil, url), nil)
	require.NoError(t, err)
	t.Cleanup(mux.Close)
	return mux
}

func bytecodeOf(label string) gson.Bytecode {
	var bc gson.Bytecode
	bc.AddStep("V", gson.Str(label))
	return bc
}

// TestSubmitCorrelatesOutOfOrderResponses proves two concurrent Submit
// calls each get back their own result even when the server replies to
// the second request before the first: correlation is purely by request
// id, never by submission order.
func TestSubmitCorrelatesOutOfOrderResponses(t *testing.T) {
	srv := testutil.NewServer(t, func(req testutil.IncomingRequest) []testutil.Chunk {
		label, _ := req.Bytecode.Step[0][1].(gson.Str)
		if label == "slow" {
			time.Sleep(75 * time.Millisecond)
		}
		return []testutil.Chunk{{Code: wire.SuccessCode, Data: []gson.Value{label}}}
	})
	mux := dial(t, srv.URL, 2*time.Second)

	var wg sync.WaitGroup
	results := make(map[string][][]byte, 2)
	var mu sync.Mutex
	for _, label := range []string{"slow", "fast"} {
		wg.Add(1)
		go func(label string) {
			defer wg.Done()
			chunks, err := mux.Submit(bytecodeOf(label))
			require.NoError(t, err)
			mu.Lock()
			results[label] = chunks
			mu.Unlock()
		}(label)
	}
	wg.Wait()

	for label, chunks := range results {
		require.Len(t, chunks, 1)
		resp, err := wire.Parse(chunks[0])
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, gson.Str(label), resp.Data[0])
	}
}

// TestHandleTimeoutsFIFOOrder proves requests time out in the order they
// were submitted, not in reverse, by submitting three staggered requests
// the fake server never answers: each fails with ErrRequestTimeout, and,
// indexed by submission order, none is observed to time out more than
// 10ms before the request submitted ahead of it.
func TestHandleTimeoutsFIFOOrder(t *testing.T) {
	srv := testutil.NewServer(t, func(req testutil.IncomingRequest) []testutil.Chunk {
		return nil
	})
	mux := dial(t, srv.URL, 150*time.Millisecond)

	const n = 3
	done := make(chan int, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := mux.Submit(bytecodeOf("x"))
			assert.ErrorIs(t, err, transport.ErrRequestTimeout)
			done <- i
		}(i)
		time.Sleep(20 * time.Millisecond)
	}

	elapsed := make([]time.Duration, n)
	for k := 0; k < n; k++ {
		i := <-done
		elapsed[i] = time.Since(start)
	}
	for i := 1; i < len(elapsed); i++ {
		assert.True(t, elapsed[i] >= elapsed[i-1]-10*time.Millisecond,
			"timeouts should resolve in roughly submission order")
	}
}

// TestCloseDrainsPendingAndRejectsFurtherSubmits matches spec.md's
// shutdown scenario: Close fails every in-flight request, is idempotent,
// and any Submit issued afterward fails fast instead of hanging.
func TestCloseDrainsPendingAndRejectsFurtherSubmits(t *testing.T) {
	block := make(chan struct{})
	srv := testutil.NewServer(t, func(req testutil.IncomingRequest) []testutil.Chunk {
		<-block
		return []testutil.Chunk{{Code: wire.SuccessCode}}
	})
	mux, err := transport.Dial(context.Background(), srv.URL, 5*time.Second, telemetry.New(nil, srv.URL), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		_, submitErr = mux.Submit(bytecodeOf("pending"))
	}()
	time.Sleep(50 * time.Millisecond)

	mux.Close()
	mux.Close() // idempotent: must not panic or double-close the connection

	wg.Wait()
	assert.ErrorIs(t, submitErr, transport.ErrClientClosed)

	_, err = mux.Submit(bytecodeOf("after-close"))
	assert.ErrorIs(t, err, transport.ErrExecution)

	close(block)
}
