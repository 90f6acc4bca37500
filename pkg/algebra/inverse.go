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

// AlgebraicInverse reconstructs the closed-form expression a fragment of
// host IR denotes and, if it is a polynomial in X of degree at most two,
// emits IR computing its inverse (§4.3).
//
// The three results mirror the original's Result<Node, Option<AlgebraError>>:
// ok is false when the fragment was never "handled" as algebra at all (the
// caller should silently fall back to another inversion strategy, not
// surface an error); ok is true with a non-nil err when the fragment was
// handled but isn't invertible in closed form; ok is true with a nil err and
// a usable node otherwise.
func AlgebraicInverse(nodes []ir.Node, asm *ir.Assembly, tracer Tracer) (node ir.Node, ok bool, err *Error) {
	result := analyze(nodes, asm, tracer)
	if !result.handled {
		return nil, false, nil
	}

	if result.err != nil {
		return nil, true, result.err
	}

	expr := result.expr

	c, expr := expr.Remove(NewTerm(X(), 0))
	b, expr := expr.Remove(NewTerm(X(), 1))
	rawA, expr := expr.Remove(NewTerm(X(), 2))

	var a Complex
	hasA := !rawA.IsZero()
	if hasA {
		a = rawA
	}

	if expr.Len() != 0 {
		return nil, true, errOf(TooComplex)
	}

	span := asm.SentinelSpan()
	push := func(x Complex) ir.Node { return pushCoeff(x, result.anyComplex, span) }
	prim := func(op ir.Primitive) ir.Node { return &ir.Prim{Op: op, At: span} }

	var out ir.Node

	switch {
	case hasA && b.IsZero():
		// Quadratic, no linear term: x = sqrt((y - c) / a).
		out = ir.Seq(
			push(c), prim(ir.Sub),
			push(a), prim(ir.Div),
			prim(ir.Sqrt),
		)
	case hasA:
		// Full quadratic: the positive root of the quadratic formula.
		out = ir.Seq(
			push(c), prim(ir.Flip), prim(ir.Sub),
			push(Real(-4).Mul(a)), prim(ir.Mul),
			push(b.Mul(b)), prim(ir.Add),
			prim(ir.Sqrt),
			prim(ir.Dup),
			push(b), prim(ir.Sub),
			prim(ir.Flip), prim(ir.Neg),
			push(b), prim(ir.Sub),
			prim(ir.Max),
			push(Real(2).Mul(a)), prim(ir.Div),
		)
	case b.IsZero():
		// Constant: x is irrelevant, always c. The coefficient is pushed
		// raw here, matching the original's unconditional complex push
		// for this one branch (it never consults any_complex).
		out = ir.Seq(prim(ir.Pop), &ir.Push{Value: ir.Cx(complex128(c))})
	case c.IsZero():
		// Linear through the origin: x = y / b (or a cheaper equivalent
		// at the edges).
		switch {
		case b.Equal(ONE):
			out = prim(ir.Identity)
		case b.Abs() > 1:
			out = ir.Seq(push(b), prim(ir.Div))
		default:
			out = ir.Seq(push(ONE.Div(b)), prim(ir.Mul))
		}
	default:
		// General linear: x = (y - c) / b.
		out = ir.Seq(push(c), prim(ir.Sub), push(b), prim(ir.Div))
	}

	return out, true, nil
}
