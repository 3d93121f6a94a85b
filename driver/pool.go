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
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/strattonite/gremlin-go/process"
)

// Pool is a collection of Clients split into a read pool and a write
// pool. A traversal is routed to the write pool if process.Traversal's
// IsMutating reports true, to the read pool otherwise, with a client
// picked at random from whichever pool applies.
//
// A Pool with SingleEndpoint configured uses the same underlying
// connections for both roles.
type Pool struct {
	readers []*Client
	writers []*Client
}

// NewPool dials every connection Options calls for (ReadClients
// connections against the read endpoint, WriteClients against the
// write endpoint) and returns a Pool ready to route traversals across
// them. If dialing any connection fails, every connection already
// opened is closed and the error is returned.
func NewPool(ctx context.Context, opts Options) (*Pool, error) {
	p := &Pool{}
	log := opts.logger()

	readEndpoint := opts.readEndpoint()
	writeEndpoint := opts.writeEndpoint()
	sameEndpoint := readEndpoint != "" && readEndpoint == writeEndpoint

	if readEndpoint != "" {
		for i := 0; i < opts.readClients(); i++ {
			c, err := Dial(ctx, readEndpoint, opts.timeout(), opts.Metrics, log)
			if err != nil {
				p.Close()
				return nil, err
			}
			p.readers = append(p.readers, c)
		}
	}

	switch {
	case sameEndpoint:
		p.writers = p.readers
	case writeEndpoint != "":
		for i := 0; i < opts.writeClients(); i++ {
			c, err := Dial(ctx, writeEndpoint, opts.timeout(), opts.Metrics, log)
			if err != nil {
				p.Close()
				return nil, err
			}
			p.writers = append(p.writers, c)
		}
	}

	return p, nil
}

// Execute routes t to a randomly chosen client in the pool appropriate
// to its mutating status and waits for its full result set, returned
// undecoded as a Response (see Client.Execute).
func (p *Pool) Execute(t process.Traversal) (*Response, error) {
	c, err := p.pick(t)
	if err != nil {
		return nil, err
	}
	return c.Execute(t)
}

func (p *Pool) pick(t process.Traversal) (*Client, error) {
	pool := p.readers
	role := "read"
	if t.IsMutating() {
		pool = p.writers
		role = "write"
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no %s clients configured", ErrNoClients, role)
	}
	return pool[rand.IntN(len(pool))], nil
}

// Close shuts down every connection in the pool. Safe to call more than
// once and safe to call on a partially constructed Pool.
func (p *Pool) Close() {
	seen := make(map[*Client]bool)
	var wg sync.WaitGroup
	closeAll := func(clients []*Client) {
		for _, c := range clients {
			if c == nil || seen[c] {
				continue
			}
			seen[c] = true
			wg.Add(1)
			go func(c *Client) {
				defer wg.Done()
				c.Close()
			}(c)
		}
	}
	closeAll(p.readers)
	closeAll(p.writers)
	wg.Wait()
}
