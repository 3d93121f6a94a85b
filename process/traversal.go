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

// Package process implements the fluent Gremlin traversal DSL: a
// Traversal accumulates an ordered list of steps into a gson.Bytecode as
// each builder method is called, mirroring the step-by-step bytecode
// construction of the reference traversal machine.
package process

import (
	"github.com/google/uuid"

	"github.com/strattonite/gremlin-go/gson"
)

// Traversal is a linear builder over a gson.Bytecode: every step method
// consumes the receiver and returns a new value with the step appended.
// Values must be threaded through, never branched from a shared variable,
// the same way the reference implementation's traversal is a move-only
// value — reusing a Traversal after passing it to a step method produces
// a bytecode missing whatever was appended since, not a panic.
type Traversal struct {
	Bytecode gson.Bytecode
}

// newTraversal returns an empty traversal. TraversalSource and Anonymous
// both hand these out fresh on every call rather than keeping any builder
// state of their own.
func newTraversal() Traversal {
	return Traversal{}
}

// IsMutating reports whether this traversal contains a write step, the
// signal a connection pool uses to route it to a write-capable client.
func (t Traversal) IsMutating() bool {
	return t.Bytecode.IsMutating()
}

func (t Traversal) addStep(op string, args ...gson.Value) Traversal {
	t.Bytecode.AddStep(op, args...)
	return t
}

func (t Traversal) noArgStep(op string) Traversal {
	t.Bytecode.NoArgStep(op)
	return t
}

// Arg coerces an arbitrary Go value into a gson.Value suitable for use as
// a step argument. A Traversal argument is wrapped as a nested g:Bytecode
// value, matching the way anonymous sub-traversals are embedded in a
// parent step's argument list.
func Arg(v interface{}) gson.Value {
	switch t := v.(type) {
	case gson.Value:
		return t
	case Traversal:
		return t.Bytecode
	case string:
		return gson.Str(t)
	case bool:
		return gson.Bool(t)
	case int:
		return gson.Int64(int64(t))
	case int32:
		return gson.Int32(t)
	case int64:
		return gson.Int64(t)
	case float32:
		return gson.Float(t)
	case float64:
		return gson.Double(t)
	case uuid.UUID:
		return gson.UUID(t)
	case nil:
		return gson.Null{}
	default:
		return gson.Str(fmtFallback(v))
	}
}

// fmtFallback stringifies a value this package has no direct coercion
// for, rather than silently dropping it. Callers passing unsupported
// types should prefer an explicit gson.Value constructor.
func fmtFallback(v interface{}) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return "<unsupported argument>"
}

// Args maps a slice of interface{} through Arg, for the common case of a
// step taking a variable-length argument list.
func Args(vs ...interface{}) []gson.Value {
	out := make([]gson.Value, len(vs))
	for i, v := range vs {
		out[i] = Arg(v)
	}
	return out
}

func (t Traversal) V(args ...gson.Value) Traversal    { return t.addStep("V", args...) }
func (t Traversal) E(args ...gson.Value) Traversal    { return t.addStep("E", args...) }
func (t Traversal) AddE(args ...gson.Value) Traversal { return t.addStep("addE", args...) }
func (t Traversal) AddV(args ...gson.Value) Traversal { return t.addStep("addV", args...) }
func (t Traversal) Aggregate(args ...gson.Value) Traversal {
	return t.addStep("aggregate", args...)
}
func (t Traversal) And(args ...gson.Value) Traversal { return t.addStep("and", args...) }
func (t Traversal) As(args ...gson.Value) Traversal  { return t.addStep("as", args...) }
func (t Traversal) Barrier(args ...gson.Value) Traversal {
	return t.addStep("barrier", args...)
}
func (t Traversal) Both(args ...gson.Value) Traversal  { return t.addStep("both", args...) }
func (t Traversal) BothE(args ...gson.Value) Traversal { return t.addStep("bothE", args...) }
func (t Traversal) BothV(args ...gson.Value) Traversal { return t.addStep("bothV", args...) }

// Branch takes no arguments in the reference bytecode, unlike most
// other steps in this catalogue — an upstream oddity this DSL preserves.
func (t Traversal) Branch() Traversal { return t.noArgStep("branch") }

func (t Traversal) By(args ...gson.Value) Traversal   { return t.addStep("by", args...) }
func (t Traversal) Call(args ...gson.Value) Traversal { return t.addStep("call", args...) }
func (t Traversal) Cap(args ...gson.Value) Traversal  { return t.addStep("cap", args...) }
func (t Traversal) Choose(args ...gson.Value) Traversal {
	return t.addStep("choose", args...)
}
func (t Traversal) Coalesce(args ...gson.Value) Traversal {
	return t.addStep("coalesce", args...)
}
func (t Traversal) Coin(args ...gson.Value) Traversal { return t.addStep("coin", args...) }
func (t Traversal) ConnectedComponent(args ...gson.Value) Traversal {
	return t.addStep("connectedComponent", args...)
}
func (t Traversal) Constant(args ...gson.Value) Traversal {
	return t.addStep("constant", args...)
}
func (t Traversal) Count() Traversal { return t.noArgStep("count") }
func (t Traversal) CyclicPath(args ...gson.Value) Traversal {
	return t.addStep("cyclicPath", args...)
}
func (t Traversal) Dedup(args ...gson.Value) Traversal { return t.addStep("dedup", args...) }
func (t Traversal) Drop() Traversal                    { return t.noArgStep("drop") }
func (t Traversal) Element() Traversal                 { return t.noArgStep("element") }
func (t Traversal) ElementMap(args ...gson.Value) Traversal {
	return t.addStep("elementMap", args...)
}
func (t Traversal) Emit(args ...gson.Value) Traversal { return t.addStep("emit", args...) }
func (t Traversal) Fail() Traversal                   { return t.noArgStep("fail") }
func (t Traversal) Filter(args ...gson.Value) Traversal {
	return t.addStep("filter", args...)
}
func (t Traversal) FlatMap() Traversal { return t.noArgStep("flatMap") }
func (t Traversal) Fold() Traversal    { return t.noArgStep("fold") }
func (t Traversal) From(args ...gson.Value) Traversal { return t.addStep("from", args...) }
func (t Traversal) Group(args ...gson.Value) Traversal { return t.addStep("group", args...) }
func (t Traversal) GroupCount(args ...gson.Value) Traversal {
	return t.addStep("groupCount", args...)
}
func (t Traversal) Has(args ...gson.Value) Traversal     { return t.addStep("has", args...) }
func (t Traversal) HasId(args ...gson.Value) Traversal   { return t.addStep("hasId", args...) }
func (t Traversal) HasKey(args ...gson.Value) Traversal  { return t.addStep("hasKey", args...) }
func (t Traversal) HasLabel(args ...gson.Value) Traversal {
	return t.addStep("hasLabel", args...)
}
func (t Traversal) HasNot(args ...gson.Value) Traversal { return t.addStep("hasNot", args...) }
func (t Traversal) HasValue(args ...gson.Value) Traversal {
	return t.addStep("hasValue", args...)
}
func (t Traversal) Id() Traversal       { return t.noArgStep("id") }
func (t Traversal) Identity() Traversal { return t.noArgStep("identity") }
func (t Traversal) In(args ...gson.Value) Traversal  { return t.addStep("in", args...) }
func (t Traversal) InE(args ...gson.Value) Traversal { return t.addStep("inE", args...) }
func (t Traversal) InV(args ...gson.Value) Traversal { return t.addStep("inV", args...) }
func (t Traversal) Index() Traversal                 { return t.noArgStep("index") }
func (t Traversal) Inject(args ...gson.Value) Traversal {
	return t.addStep("inject", args...)
}
func (t Traversal) Is(args ...gson.Value) Traversal  { return t.addStep("is", args...) }
func (t Traversal) Key() Traversal                   { return t.noArgStep("key") }
func (t Traversal) Label() Traversal                 { return t.noArgStep("label") }
func (t Traversal) Limit(args ...gson.Value) Traversal { return t.addStep("limit", args...) }
func (t Traversal) Local(args ...gson.Value) Traversal { return t.addStep("local", args...) }
func (t Traversal) Loops() Traversal                   { return t.noArgStep("loops") }
func (t Traversal) Map(args ...gson.Value) Traversal   { return t.addStep("map", args...) }
func (t Traversal) Match(args ...gson.Value) Traversal { return t.addStep("match", args...) }
func (t Traversal) Math(args ...gson.Value) Traversal  { return t.addStep("math", args...) }
func (t Traversal) Max() Traversal                     { return t.noArgStep("max") }
func (t Traversal) Mean() Traversal                    { return t.noArgStep("mean") }
func (t Traversal) MergeE(args ...gson.Value) Traversal {
	return t.addStep("mergeE", args...)
}
func (t Traversal) MergeV(args ...gson.Value) Traversal {
	return t.addStep("mergeV", args...)
}
func (t Traversal) Min() Traversal  { return t.noArgStep("min") }
func (t Traversal) None() Traversal { return t.noArgStep("none") }
func (t Traversal) Not(args ...gson.Value) Traversal { return t.addStep("not", args...) }
func (t Traversal) Option(args ...gson.Value) Traversal {
	return t.addStep("option", args...)
}
func (t Traversal) Or(args ...gson.Value) Traversal { return t.addStep("or", args...) }
func (t Traversal) Order() Traversal                { return t.noArgStep("order") }
func (t Traversal) OtherV(args ...gson.Value) Traversal {
	return t.addStep("otherV", args...)
}
func (t Traversal) Out(args ...gson.Value) Traversal  { return t.addStep("out", args...) }
func (t Traversal) OutE(args ...gson.Value) Traversal { return t.addStep("outE", args...) }
func (t Traversal) OutV(args ...gson.Value) Traversal { return t.addStep("outV", args...) }
func (t Traversal) PageRank() Traversal               { return t.noArgStep("pageRank") }
func (t Traversal) Path() Traversal                   { return t.noArgStep("path") }
func (t Traversal) PeerPressure() Traversal           { return t.noArgStep("peerPressure") }
func (t Traversal) Profile() Traversal                { return t.noArgStep("profile") }
func (t Traversal) Program(args ...gson.Value) Traversal {
	return t.addStep("program", args...)
}
func (t Traversal) Project(args ...gson.Value) Traversal {
	return t.addStep("project", args...)
}
func (t Traversal) Properties(args ...gson.Value) Traversal {
	return t.addStep("properties", args...)
}
func (t Traversal) Property(args ...gson.Value) Traversal {
	return t.addStep("property", args...)
}
func (t Traversal) PropertyMap(args ...gson.Value) Traversal {
	return t.addStep("propertyMap", args...)
}
func (t Traversal) Range(args ...gson.Value) Traversal { return t.addStep("range", args...) }
func (t Traversal) Read(args ...gson.Value) Traversal  { return t.addStep("read", args...) }
func (t Traversal) Repeat(args ...gson.Value) Traversal {
	return t.addStep("repeat", args...)
}
func (t Traversal) Sack(args ...gson.Value) Traversal { return t.addStep("sack", args...) }
func (t Traversal) Sample(args ...gson.Value) Traversal {
	return t.addStep("sample", args...)
}
func (t Traversal) Select(args ...gson.Value) Traversal {
	return t.addStep("select", args...)
}
func (t Traversal) ShortestPath(args ...gson.Value) Traversal {
	return t.addStep("shortestPath", args...)
}
func (t Traversal) SideEffect(args ...gson.Value) Traversal {
	return t.addStep("sideEffect", args...)
}
func (t Traversal) SimplePath(args ...gson.Value) Traversal {
	return t.addStep("simplePath", args...)
}
func (t Traversal) Skip(args ...gson.Value) Traversal { return t.addStep("skip", args...) }
func (t Traversal) Store(args ...gson.Value) Traversal { return t.addStep("store", args...) }
func (t Traversal) Subgraph(args ...gson.Value) Traversal {
	return t.addStep("subgraph", args...)
}
func (t Traversal) Sum() Traversal { return t.noArgStep("sum") }
func (t Traversal) Tail(args ...gson.Value) Traversal { return t.addStep("tail", args...) }
func (t Traversal) TimeLimit(args ...gson.Value) Traversal {
	return t.addStep("timeLimit", args...)
}
func (t Traversal) Times(args ...gson.Value) Traversal { return t.addStep("times", args...) }
func (t Traversal) To(args ...gson.Value) Traversal    { return t.addStep("to", args...) }
func (t Traversal) ToE(args ...gson.Value) Traversal   { return t.addStep("toE", args...) }
func (t Traversal) ToV(args ...gson.Value) Traversal   { return t.addStep("toV", args...) }
func (t Traversal) Tree(args ...gson.Value) Traversal  { return t.addStep("tree", args...) }
func (t Traversal) Unfold() Traversal                  { return t.noArgStep("unfold") }
func (t Traversal) Union(args ...gson.Value) Traversal { return t.addStep("union", args...) }
func (t Traversal) Until(args ...gson.Value) Traversal { return t.addStep("until", args...) }
func (t Traversal) Value() Traversal                   { return t.noArgStep("value") }
func (t Traversal) ValueMap(args ...gson.Value) Traversal {
	return t.addStep("valueMap", args...)
}
func (t Traversal) Values(args ...gson.Value) Traversal {
	return t.addStep("values", args...)
}
func (t Traversal) Where(args ...gson.Value) Traversal { return t.addStep("where", args...) }
func (t Traversal) With(args ...gson.Value) Traversal  { return t.addStep("with", args...) }
func (t Traversal) Write() Traversal                   { return t.noArgStep("write") }
