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

import "github.com/strattonite/gremlin-go/gson"

// TraversalSource is the graph-level entry point (`g` in Gremlin idiom)
// for starting a new traversal. It carries no state of its own: every
// call hands back a fresh Traversal, the same way the reference source
// clones an empty traversal before delegating to it on each call.
type TraversalSource struct{}

// G is the package-level traversal source singleton.
var G TraversalSource

func (TraversalSource) V(args ...gson.Value) Traversal {
	return newTraversal().V(args...)
}

func (TraversalSource) E(args ...gson.Value) Traversal {
	return newTraversal().E(args...)
}

func (TraversalSource) AddV(args ...gson.Value) Traversal {
	return newTraversal().AddV(args...)
}

func (TraversalSource) AddE(args ...gson.Value) Traversal {
	return newTraversal().AddE(args...)
}

func (TraversalSource) Inject(args ...gson.Value) Traversal {
	return newTraversal().Inject(args...)
}

// Anonymous is the entry point for sub-traversals used as step arguments
// (`__` in Gremlin idiom, e.g. `g.V().out().where(__.has("age", gt(21)))`).
// Every step catalogue method a Traversal supports is also reachable from
// here, started fresh the same way.
type Anonymous struct{}

// Underscore is the package-level anonymous-traversal source singleton.
var Underscore Anonymous

func (Anonymous) Start() Traversal { return newTraversal() }

func (Anonymous) V(args ...gson.Value) Traversal {
	return newTraversal().V(args...)
}

func (Anonymous) E(args ...gson.Value) Traversal {
	return newTraversal().E(args...)
}

func (Anonymous) AddV(args ...gson.Value) Traversal {
	return newTraversal().AddV(args...)
}

func (Anonymous) AddE(args ...gson.Value) Traversal {
	return newTraversal().AddE(args...)
}

func (Anonymous) Inject(args ...gson.Value) Traversal {
	return newTraversal().Inject(args...)
}
