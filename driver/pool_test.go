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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonite/gremlin-go/driver"
	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/internal/testutil"
	"github.com/strattonite/gremlin-go/process"
	"github.com/strattonite/gremlin-go/wire"
)

func replyWith(label gson.Str) testutil.Handler {
	return func(req testutil.IncomingRequest) []testutil.Chunk {
		return []testutil.Chunk{{Code: wire.SuccessCode, Data: []gson.Value{label}}}
	}
}

func TestPoolRoutesReadsAndWrites(t *testing.T) {
	reads := testutil.NewServer(t, replyWith("read"))
	writes := testutil.NewServer(t, replyWith("write"))

	p, err := driver.NewPool(context.Background(), driver.Options{
		ReadEndpoint:  reads.URL,
		WriteEndpoint: writes.URL,
		ReadClients:   2,
		WriteClients:  2,
		Timeout:       time.Second,
	})
	require.NoError(t, err)
	defer p.Close()

	resp, err := p.Execute(process.G.V())
	require.NoError(t, err)
	vals, err := driver.Parse[gson.Str](resp)
	require.NoError(t, err)
	assert.Equal(t, []gson.Str{gson.Str("read")}, vals)

	resp, err = p.Execute(process.G.AddV(gson.Str("person")))
	require.NoError(t, err)
	vals, err = driver.Parse[gson.Str](resp)
	require.NoError(t, err)
	assert.Equal(t, []gson.Str{gson.Str("write")}, vals)
}

func TestPoolSingleEndpointSharesClients(t *testing.T) {
	srv := testutil.NewServer(t, replyWith("both"))

	p, err := driver.NewPool(context.Background(), driver.Options{
		SingleEndpoint: srv.URL,
		Timeout:        time.Second,
	})
	require.NoError(t, err)
	defer p.Close()

	for _, tr := range []process.Traversal{process.G.V(), process.G.AddV(gson.Str("x"))} {
		resp, err := p.Execute(tr)
		require.NoError(t, err)
		vals, err := driver.Parse[gson.Str](resp)
		require.NoError(t, err)
		assert.Equal(t, []gson.Str{gson.Str("both")}, vals)
	}
}

func TestPoolNoClientsForRole(t *testing.T) {
	reads := testutil.NewServer(t, replyWith("read"))

	p, err := driver.NewPool(context.Background(), driver.Options{
		ReadEndpoint: reads.URL,
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Execute(process.G.AddV(gson.Str("person")))
	assert.ErrorIs(t, err, driver.ErrNoClients)
}
