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

import "github.com/arrlang/algebra/pkg/ir"

// Derivative reconstructs the closed-form expression denoted by node and
// differentiates it term-by-term with respect to X via the power rule
// (§4.3). Any term whose base is not X (a nested sub-expression) makes the
// whole thing TooComplex, matching the restriction calculus places on top
// of the inverter's.
func Derivative(node ir.Node, asm *ir.Assembly, tracer Tracer) (ir.Node, *Error) {
	result := analyze([]ir.Node{node}, asm, tracer)
	if result.err != nil {
		return nil, result.err
	}

	deriv := NewExpr()
	found := false

	result.expr.Terms(func(t Term, c Complex) {
		if found {
			return
		}

		if !t.Base.IsX {
			found = true
			return
		}

		coef := c.Mul(Real(t.Power))
		if coef.IsZero() {
			return
		}

		deriv.insert(NewTerm(X(), t.Power-1), coef)
	})

	if found {
		return nil, errOf(TooComplex)
	}

	if deriv.Len() == 0 {
		deriv = FromFloat(0)
	}

	return Lower(deriv, result.anyComplex, asm.SentinelSpan()), nil
}

// Integral reconstructs the closed-form expression denoted by node and
// integrates it term-by-term with respect to X via the reverse power rule
// (§4.3), with the same TooComplex restriction as Derivative. Unlike
// Derivative, a zero-coefficient term after integration is kept rather than
// dropped.
func Integral(node ir.Node, asm *ir.Assembly, tracer Tracer) (ir.Node, *Error) {
	result := analyze([]ir.Node{node}, asm, tracer)
	if result.err != nil {
		return nil, result.err
	}

	integ := NewExpr()
	found := false

	result.expr.Terms(func(t Term, c Complex) {
		if found {
			return
		}

		if !t.Base.IsX {
			found = true
			return
		}

		power := t.Power + 1
		integ.insert(NewTerm(X(), power), c.Div(Real(power)))
	})

	if found {
		return nil, errOf(TooComplex)
	}

	return Lower(integ, result.anyComplex, asm.SentinelSpan()), nil
}
