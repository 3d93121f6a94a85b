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

// Predicate constructors, one per comparison operator this client
// supports as a step argument (e.g. has("age", Gt(21))).

func Eq(v interface{}) gson.Value      { return predicate(gson.PredicateEq, v) }
func Neq(v interface{}) gson.Value     { return predicate(gson.PredicateNeq, v) }
func Lt(v interface{}) gson.Value      { return predicate(gson.PredicateLt, v) }
func Lte(v interface{}) gson.Value     { return predicate(gson.PredicateLte, v) }
func Gt(v interface{}) gson.Value      { return predicate(gson.PredicateGt, v) }
func Gte(v interface{}) gson.Value     { return predicate(gson.PredicateGte, v) }
func Inside(v interface{}) gson.Value  { return predicate(gson.PredicateInside, v) }
func Outside(v interface{}) gson.Value { return predicate(gson.PredicateOutside, v) }
func Between(v interface{}) gson.Value { return predicate(gson.PredicateBetween, v) }

func predicate(op gson.PredicateOp, v interface{}) gson.Value {
	return gson.Predicate{Op: op, Value: Arg(v)}
}

// Text predicate constructors.

func StartingWith(s string) gson.Value    { return textPredicate(gson.TextPredicateStartingWith, s) }
func EndingWith(s string) gson.Value      { return textPredicate(gson.TextPredicateEndingWith, s) }
func Containing(s string) gson.Value      { return textPredicate(gson.TextPredicateContaining, s) }
func NotStartingWith(s string) gson.Value { return textPredicate(gson.TextPredicateNotStartingWith, s) }
func NotEndingWith(s string) gson.Value   { return textPredicate(gson.TextPredicateNotEndingWith, s) }
func NotContaining(s string) gson.Value   { return textPredicate(gson.TextPredicateNotContaining, s) }

func textPredicate(op gson.TextPredicateOp, s string) gson.Value {
	return gson.TextPredicate{Op: op, Value: s}
}

// Cardinality and Order tokens, passed as step arguments where the server
// expects a g:Cardinality / g:Order value. Operator tokens are the
// gson.Operator constants, used directly.

const (
	CardinalityList   = gson.CardinalityList
	CardinalitySet    = gson.CardinalitySet
	CardinalitySingle = gson.CardinalitySingle

	OrderAsc     = gson.OrderAsc
	OrderDesc    = gson.OrderDesc
	OrderShuffle = gson.OrderShuffle
)
