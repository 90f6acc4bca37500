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
package algebra

// Base is the thing a Term raises to a power (§3.2): either the single free
// variable X, or an opaque nested sub-expression.  Modelled as a struct
// rather than an interface so that Term (and therefore Expr's term map) can
// be built from plain, deep-copyable values without relying on Go's
// (non-recursive-friendly) map-key comparability.
type Base struct {
	// IsX is true for the X case; false for the Expr case.
	IsX bool
	sub *Expr
}

// X constructs the free-variable base.
func X() Base { return Base{IsX: true} }

// NestedExpr wraps an opaque sub-expression as a base, used whenever an
// operation cannot be absorbed into a plain X term (e.g. sqrt of a
// multi-term expression).
func NestedExpr(e Expr) Base {
	cp := e.Clone()
	return Base{sub: &cp}
}

// Sub returns the nested expression and true, or the zero Expr and false if
// this base is X.
func (b Base) Sub() (Expr, bool) {
	if b.IsX {
		return Expr{}, false
	}

	return *b.sub, true
}

// Compare totally orders bases: X sorts before any Expr(_), and two Expr
// bases compare by recursive comparison of their underlying expressions
// (§3.2).
func (b Base) Compare(o Base) int {
	switch {
	case b.IsX && o.IsX:
		return 0
	case b.IsX:
		return -1
	case o.IsX:
		return 1
	default:
		return b.sub.Compare(*o.sub)
	}
}

// Equal reports whether two bases compare equal.
func (b Base) Equal(o Base) bool { return b.Compare(o) == 0 }
