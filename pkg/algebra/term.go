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

import "math"

// Term is base^power (§3.3). The power is a real exponent which may be
// fractional, zero or negative.
type Term struct {
	Base  Base
	Power float64
}

// NewTerm constructs a term.
func NewTerm(base Base, power float64) Term {
	return Term{Base: base, Power: power}
}

// TermOfX constructs the term X^1, the seed value the interpreter's stack
// starts with.
func TermOfX() Term { return Term{Base: X(), Power: 1} }

// comparePower orders two powers with NaN sorted last, but consistently:
// two NaNs compare equal to each other.
func comparePower(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare totally orders terms: by base first, then by power (§3.3).
func (t Term) Compare(o Term) int {
	if c := t.Base.Compare(o.Base); c != 0 {
		return c
	}

	return comparePower(t.Power, o.Power)
}

// Equal reports whether two terms denote the same map key: equal bases and
// equal (or mutually-NaN) powers. NaN powers dedupe rather than multiply
// (§3.3) because map insertion is driven by Compare, not by distinguishing
// individual NaN payloads.
func (t Term) Equal(o Term) bool { return t.Compare(o) == 0 }

// IsConstantTerm reports whether this is the term used to represent plain
// constants, X^0.
func (t Term) IsConstantTerm() bool { return t.Base.IsX && t.Power == 0 }
