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

import "fmt"

// ErrorKind classifies a decode failure the way the wire format can fail,
// independent of the Go error message attached to it.
type ErrorKind int

const (
	KindEOF ErrorKind = iota
	KindInvalidUTF8
	KindExpectedSeparator
	KindInvalidSyntax
	KindInvalidDataType
	KindParseInt
	KindParseFloat
	KindCustom
)

func (k ErrorKind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindInvalidUTF8:
		return "invalid utf8"
	case KindExpectedSeparator:
		return "expected separator"
	case KindInvalidSyntax:
		return "invalid syntax"
	case KindInvalidDataType:
		return "invalid data type"
	case KindParseInt:
		return "parse int"
	case KindParseFloat:
		return "parse float"
	default:
		return "custom"
	}
}

// DecodeError reports a GraphSON decode failure at a byte offset, mirroring
// the original deserializer's error enum one variant at a time.
type DecodeError struct {
	Kind     ErrorKind
	Offset   int
	Expected string
	Got      string
	Message  string
}

func (e *DecodeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gson: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	if e.Expected != "" || e.Got != "" {
		return fmt.Sprintf("gson: %s at offset %d: expected %q, got %q", e.Kind, e.Offset, e.Expected, e.Got)
	}
	return fmt.Sprintf("gson: %s at offset %d", e.Kind, e.Offset)
}

func errEOF(offset int) error {
	return &DecodeError{Kind: KindEOF, Offset: offset}
}

func errSyntax(offset int, expected, got string) error {
	return &DecodeError{Kind: KindInvalidSyntax, Offset: offset, Expected: expected, Got: got}
}

func errSeparator(offset int, expected, got string) error {
	return &DecodeError{Kind: KindExpectedSeparator, Offset: offset, Expected: expected, Got: got}
}

func errDataType(offset int, message string) error {
	return &DecodeError{Kind: KindInvalidDataType, Offset: offset, Message: message}
}

func errCustom(offset int, message string) error {
	return &DecodeError{Kind: KindCustom, Offset: offset, Message: message}
}
