// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ir models the host stack-based intermediate representation that
// the algebra package analyzes and emits into.  The real compiler owns these
// types; this package is a standalone stand-in exposing exactly the surface
// the algebra analyzer consumes (§6 of the accompanying design notes).
package ir

import "fmt"

// Kind identifies the shape of value carried by a Value.
type Kind uint8

// The value kinds the analyzer is able to reason about, plus the two it
// rejects outright (Char, Box).
const (
	KindNum Kind = iota
	KindByte
	KindComplex
	KindChar
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "num"
	case KindByte:
		return "byte"
	case KindComplex:
		return "complex"
	case KindChar:
		return "char"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a scalar (or higher-rank) literal as it appears in a Push node.
// Rank above zero means the literal is an array rather than a scalar.
type Value struct {
	Kind Kind
	Rank uint
	Num  float64
	Cx   complex128
}

// Num constructs a scalar numeric value.
func Num(v float64) Value {
	return Value{Kind: KindNum, Num: v}
}

// Byte constructs a scalar byte (boolean-ish) value, stored widened to float64.
func Byte(v float64) Value {
	return Value{Kind: KindByte, Num: v}
}

// Cx constructs a scalar complex value.
func Cx(v complex128) Value {
	return Value{Kind: KindComplex, Cx: v}
}

// Char constructs a scalar character value; the algebra analyzer always
// rejects these (NonReal).
func Char() Value {
	return Value{Kind: KindChar}
}

// Box constructs a scalar boxed value; the algebra analyzer always rejects
// these (NonReal).
func Box() Value {
	return Value{Kind: KindBox}
}

// Array wraps any of the above at a non-zero rank, which the analyzer always
// rejects (NonScalar) regardless of Kind.
func Array(v Value, rank uint) Value {
	v.Rank = rank
	return v
}
