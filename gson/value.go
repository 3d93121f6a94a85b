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

// Package gson implements the GraphSON v2.0 value model used on the
// Gremlin wire protocol: a type-tagged JSON encoding for a small set of
// scalar, graph-element, process-token, and composite values.
//
// Collapses the original GValue/StepValue/Process three-tier split into a
// single open Value interface used uniformly for both directions of the
// wire: building a request's arguments and parsing a response's results.
package gson

import "github.com/google/uuid"

// Value is any GraphSON-encodable datum: a scalar literal, a graph
// element, a process token, or a composite (list, map, bytecode).
// Implementations are sealed to this package's concrete types.
type Value interface {
	isValue()
}

// Scalars

type Date int64

func (Date) isValue() {}

type Timestamp int64

func (Timestamp) isValue() {}

type Double float64

func (Double) isValue() {}

type Float float32

func (Float) isValue() {}

type Int32 int32

func (Int32) isValue() {}

type Int64 int64

func (Int64) isValue() {}

type UUID uuid.UUID

func (UUID) isValue() {}

// Str is a bare JSON string, encoded untagged per the literal-value rule.
type Str string

func (Str) isValue() {}

// Bool is a bare JSON boolean, encoded untagged.
type Bool bool

func (Bool) isValue() {}

// Null is the bare JSON null literal.
type Null struct{}

func (Null) isValue() {}

// Composites

// List is an ordered, heterogeneous JSON array. Nested lists never have
// their elements traverser-unwrapped; only the outermost result.data array
// does.
type List []Value

func (List) isValue() {}

// Map is an untagged JSON object whose keys are plain strings.
type Map map[string]Value

func (Map) isValue() {}

// Graph elements

type Vertex struct {
	ID    Value
	Label string
}

func (Vertex) isValue() {}

type Edge struct {
	ID        Value
	Label     string
	InVLabel  string
	OutVLabel string
	InV       Value
	OutV      Value
}

func (Edge) isValue() {}

type VertexProperty struct {
	ID    Value
	Label string
	Value Value
}

func (VertexProperty) isValue() {}

type Property struct {
	Key   string
	Value Value
}

func (Property) isValue() {}

// Path is a g:Path result value. A client never puts one in a request,
// but Marshal encodes it like any other value.
type Path struct {
	Labels  Value
	Objects Value
}

func (Path) isValue() {}

// Process tokens

type Cardinality string

const (
	CardinalityList   Cardinality = "list"
	CardinalitySet    Cardinality = "set"
	CardinalitySingle Cardinality = "single"
)

func (Cardinality) isValue() {}

type Operator string

const (
	OperatorAbs    Operator = "abs"
	OperatorAcos   Operator = "acos"
	OperatorAsin   Operator = "asin"
	OperatorAtan   Operator = "atan"
	OperatorCbrt   Operator = "cbrt"
	OperatorCeil   Operator = "ceil"
	OperatorCos    Operator = "cos"
	OperatorCosh   Operator = "cosh"
	OperatorExp    Operator = "exp"
	OperatorFloor  Operator = "floor"
	OperatorLog    Operator = "log"
	OperatorLog10  Operator = "log10"
	OperatorLog2   Operator = "log2"
	OperatorSin    Operator = "sin"
	OperatorSinh   Operator = "sinh"
	OperatorSqrt   Operator = "sqrt"
	OperatorTan    Operator = "tan"
	OperatorTanh   Operator = "tanh"
	OperatorSignum Operator = "signum"
)

func (Operator) isValue() {}

type Order string

const (
	OrderAsc     Order = "asc"
	OrderDesc    Order = "desc"
	OrderShuffle Order = "shuffle"
)

func (Order) isValue() {}

// PredicateOp names one of the comparison predicates a P token can carry.
type PredicateOp string

const (
	PredicateEq      PredicateOp = "eq"
	PredicateNeq     PredicateOp = "neq"
	PredicateLt      PredicateOp = "lt"
	PredicateLte     PredicateOp = "lte"
	PredicateGt      PredicateOp = "gt"
	PredicateGte     PredicateOp = "gte"
	PredicateInside  PredicateOp = "inside"
	PredicateOutside PredicateOp = "outside"
	PredicateBetween PredicateOp = "between"
)

// Predicate is a g:P token: an operator name plus its operand.
type Predicate struct {
	Op    PredicateOp
	Value Value
}

func (Predicate) isValue() {}

type TextPredicateOp string

const (
	TextPredicateStartingWith    TextPredicateOp = "startingWith"
	TextPredicateEndingWith      TextPredicateOp = "endingWith"
	TextPredicateContaining      TextPredicateOp = "containing"
	TextPredicateNotStartingWith TextPredicateOp = "notStartingWith"
	TextPredicateNotEndingWith   TextPredicateOp = "notEndingWith"
	TextPredicateNotContaining   TextPredicateOp = "notContaining"
)

// TextPredicate is a g:TextP token: a string-matching operator and operand.
type TextPredicate struct {
	Op    TextPredicateOp
	Value string
}

func (TextPredicate) isValue() {}

// Bytecode is the g:Bytecode composite value: an ordered list of steps,
// each an ordered list of values whose first element names the operator.
type Bytecode struct {
	Step []Step
}

func (Bytecode) isValue() {}

// Step is one bytecode instruction: [opName, arg0, arg1, ...].
type Step []Value

// AddStep appends a step with the given operator name and arguments.
func (b *Bytecode) AddStep(op string, args ...Value) {
	step := make(Step, 0, len(args)+1)
	step = append(step, Str(op))
	step = append(step, args...)
	b.Step = append(b.Step, step)
}

// NoArgStep appends a step that carries no arguments.
func (b *Bytecode) NoArgStep(op string) {
	b.Step = append(b.Step, Step{Str(op)})
}

// mutatingSteps is the set of step names that write to the graph, used by
// IsMutating to decide whether a traversal must run against a write-capable
// client in a pool.
var mutatingSteps = map[string]bool{
	"addV":     true,
	"addE":     true,
	"drop":     true,
	"property": true,
	"mergeV":   true,
	"mergeE":   true,
}

// IsMutating reports whether any step in the bytecode is a write operation.
func (b Bytecode) IsMutating() bool {
	for _, step := range b.Step {
		if len(step) == 0 {
			continue
		}
		if name, ok := step[0].(Str); ok && mutatingSteps[string(name)] {
			return true
		}
	}
	return false
}
