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

// Package algebra reconstructs the closed-form symbolic expression computed
// by a fragment of host stack IR, and can invert, differentiate or
// integrate it with respect to the single free variable.
package algebra

import "fmt"

// Kind identifies why an analysis failed.  All kinds are recoverable: the
// caller decides whether to fall back to another strategy or surface the
// error.
type Kind uint8

// The error taxonomy of §7.
const (
	// TooManyVariables is raised when the analyzer pops from an empty
	// stack: the fragment consumes more inputs than the single declared
	// variable.
	TooManyVariables Kind = iota
	// NotSupported is raised when a primitive, combinator or value isn't
	// modelled by the analyzer.
	NotSupported
	// NoOutput is raised when analysis leaves the stack empty.
	NoOutput
	// TooManyOutputs is raised when analysis leaves more than one value
	// on the stack.
	TooManyOutputs
	// NonScalar is raised when a Push carries a non-scalar value, or when
	// Pow/Log is given a non-scalar exponent or base.
	NonScalar
	// NonReal is raised when a Push carries a non-numeric scalar (char or
	// box).
	NonReal
	// TooComplex is raised when the inverter sees a non-polynomial
	// expression or one of degree above two, or when calculus
	// encounters a nested Base::Expr.
	TooComplex
	// InterpreterBug is raised when an internal stack-arity invariant is
	// violated (a combinator was given the wrong number of sub-functions).
	InterpreterBug
	// NoInverse is raised when a CustomInverse node lacks a normal
	// branch.
	NoInverse
)

func (k Kind) String() string {
	switch k {
	case TooManyVariables:
		return "too many variables"
	case NotSupported:
		return "not supported"
	case NoOutput:
		return "no output"
	case TooManyOutputs:
		return "too many outputs"
	case NonScalar:
		return "non-scalar"
	case NonReal:
		return "non-real"
	case TooComplex:
		return "too complex"
	case InterpreterBug:
		return "interpreter bug"
	case NoInverse:
		return "no inverse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the error type every entry point in this package returns.
type Error struct {
	Kind Kind
	// Detail carries the extra context NotSupported needs (the name of
	// the offending primitive, combinator or node), and is empty for
	// every other Kind.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case TooManyVariables:
		return "too many variables: the algebra system only supports a single variable"
	case NotSupported:
		return fmt.Sprintf("the algebra system does not support %s", e.Detail)
	case NoOutput:
		return "not enough outputs for the algebra system"
	case TooManyOutputs:
		return "too many outputs for the algebra system"
	case NonScalar:
		return "the algebra system only supports scalars"
	case NonReal:
		return "the algebra system only supports reals"
	case TooComplex:
		return "algebraic expression is too complex"
	case InterpreterBug:
		return "bug in the interpreter"
	case NoInverse:
		return "no inverse found"
	default:
		return e.Kind.String()
	}
}

func errOf(kind Kind) *Error { return &Error{Kind: kind} }

func notSupported(detail string) *Error {
	return &Error{Kind: NotSupported, Detail: detail}
}
