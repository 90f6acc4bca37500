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

import (
	"math"

	"github.com/arrlang/algebra/pkg/ir"
)

// Lower serializes an Expr back into host IR (§4.4): the single entry point
// both the derivative and integral passes end on.
func Lower(e Expr, anyComplex bool, span ir.SpanID) ir.Node {
	node := ir.Empty()
	lowerInto(&node, e, anyComplex, span)

	return node
}

// lowerInto mirrors algebra.rs's recur: each term of expr contributes one
// factor, chained onto node with Add once more than one term has landed.
func lowerInto(node *ir.Node, expr Expr, anyComplex bool, span ir.SpanID) {
	i := 0
	expr.Terms(func(term Term, coef Complex) {
		switch {
		case coef.IsZero():
			*node = ir.Seq(*node, pushReal(0, span), &ir.Prim{Op: ir.Mul, At: span})
		case term.Power == 0:
			*node = ir.Seq(*node, &ir.Prim{Op: ir.Pop, At: span}, pushReal(1, span))
		default:
			if term.Base.IsX {
				if i > 0 {
					*node = &ir.Mod{
						Op:   ir.On,
						Subs: []ir.SigNode{ir.NewSigNode(*node, 1, 1)},
						At:   span,
					}
				}
			} else {
				sub, _ := term.Base.Sub()
				lowerInto(node, sub, anyComplex, span)
			}

			if term.Power != 1 {
				*node = ir.Seq(*node, pushReal(term.Power, span), &ir.Prim{Op: ir.Pow, At: span})
			}
		}

		if !coef.IsZero() && !coef.Equal(ONE) {
			*node = ir.Seq(*node, pushCoeff(coef, anyComplex, span), &ir.Prim{Op: ir.Mul, At: span})
		}

		if i > 0 {
			*node = ir.Seq(*node, &ir.Prim{Op: ir.Add, At: span})
		}

		i++
	})
}

// pushReal always pushes a real float64 literal, regardless of anyComplex -
// used for exponents and the synthetic "1.0" constant term, which are never
// meaningfully complex.
func pushReal(v float64, _ ir.SpanID) ir.Node {
	return &ir.Push{Value: ir.Num(v)}
}

// pushCoeff pushes a coefficient, gated on whether any complex literal was
// ever observed during analysis: once any_complex is set, every literal is
// pushed as a complex value so the host's own arithmetic stays in the
// complex domain end to end (§4.4).
func pushCoeff(c Complex, anyComplex bool, _ ir.SpanID) ir.Node {
	if anyComplex {
		return &ir.Push{Value: ir.Cx(complex128(c))}
	}

	re, ok := c.IntoReal()
	if !ok {
		re = math.NaN()
	}

	return &ir.Push{Value: ir.Num(re)}
}
