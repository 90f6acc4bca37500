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

// visitPrim interprets a single scalar primitive against the symbolic
// stack (§4.2).
func (e *env) visitPrim(op ir.Primitive) *Error {
	switch op {
	case ir.Identity:
		a, err := e.pop()
		if err != nil {
			return err
		}

		e.push(a)
	case ir.Pop:
		if _, err := e.pop(); err != nil {
			return err
		}
	case ir.Dup:
		a, err := e.pop()
		if err != nil {
			return err
		}

		e.push(a)
		e.push(a)
	case ir.Flip:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(a)
		e.push(b)
	case ir.Over:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(b)
		e.push(a)
		e.push(b)
	case ir.Neg:
		a, err := e.pop()
		if err != nil {
			return err
		}

		e.push(a.Neg())
		e.handled++
	case ir.Not:
		a, err := e.pop()
		if err != nil {
			return err
		}

		e.push(FromFloat(1).Sub(a))
		e.handled++
	case ir.Sqrt:
		a, err := e.pop()
		if err != nil {
			return err
		}

		e.push(a.Sqrt())
		e.handled++
	case ir.Add:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(b.Add(a))
		e.handled++
	case ir.Sub:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(b.Sub(a))
		e.handled++
	case ir.Mul:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(b.Mul(a))
		e.handled++
	case ir.Div:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		e.push(b.Div(a))
		e.handled++
	case ir.Pow:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		res, ok := b.Pow(a)
		if !ok {
			return errOf(NonScalar)
		}

		e.push(res)
		e.handled++
	case ir.Log:
		a, err := e.pop()
		if err != nil {
			return err
		}

		b, err := e.pop()
		if err != nil {
			return err
		}

		res, ok := b.Log(a)
		if !ok {
			return errOf(NonScalar)
		}

		e.push(res)
		e.handled++
	case ir.Complex:
		return e.visitComplexPrim()
	default:
		return notSupported(string(op))
	}

	return nil
}

// visitComplexPrim interprets the Complex primitive: combine two popped
// values b (real part) and a (imaginary part) into b + a*i.
func (e *env) visitComplexPrim() *Error {
	a, err := e.pop()
	if err != nil {
		return err
	}

	b, err := e.pop()
	if err != nil {
		return err
	}

	ac, aok := a.AsConstant()
	bc, bok := b.AsConstant()

	if aok && bok {
		e.push(ConstExpr(bc.Add(ac.Mul(I))))
	} else {
		im := a.Mul(ConstExpr(I))
		e.push(b.Add(im))
	}

	e.anyComplex = true

	return nil
}

// visitMod interprets a stack combinator (§4.2).
func (e *env) visitMod(op ir.ModOp, subs []ir.SigNode) *Error {
	switch op {
	case ir.Dip:
		f, err := oneOp(subs)
		if err != nil {
			return err
		}

		a, perr := e.pop()
		if perr != nil {
			return perr
		}

		if verr := e.visit(f.Node); verr != nil {
			return verr
		}

		e.push(a)
	case ir.Gap:
		f, err := oneOp(subs)
		if err != nil {
			return err
		}

		if _, perr := e.pop(); perr != nil {
			return perr
		}

		if verr := e.visit(f.Node); verr != nil {
			return verr
		}
	case ir.On:
		f, err := oneOp(subs)
		if err != nil {
			return err
		}

		a, perr := e.pop()
		if perr != nil {
			return perr
		}

		e.push(a)

		if verr := e.visit(f.Node); verr != nil {
			return verr
		}

		e.push(a)
	case ir.By:
		return e.visitBy(subs)
	case ir.Both:
		return e.visitBoth(subs)
	case ir.Bracket:
		return e.visitBracket(subs)
	case ir.Fork:
		return e.visitFork(subs)
	default:
		return notSupported(string(op))
	}

	return nil
}

func oneOp(subs []ir.SigNode) (ir.SigNode, *Error) {
	if len(subs) != 1 {
		return ir.SigNode{}, errOf(InterpreterBug)
	}

	return subs[0], nil
}

func twoOps(subs []ir.SigNode) (ir.SigNode, ir.SigNode, *Error) {
	if len(subs) != 2 {
		return ir.SigNode{}, ir.SigNode{}, errOf(InterpreterBug)
	}

	return subs[0], subs[1], nil
}

// popN pops n values, preserving their original (bottom-to-top) order.
func (e *env) popN(n uint) ([]Expr, *Error) {
	vals := make([]Expr, n)
	for i := uint(0); i < n; i++ {
		v, err := e.pop()
		if err != nil {
			return nil, err
		}

		vals[n-1-i] = v
	}

	return vals, nil
}

func (e *env) pushAll(vals []Expr) {
	for _, v := range vals {
		e.push(v)
	}
}

func (e *env) visitBy(subs []ir.SigNode) *Error {
	f, err := oneOp(subs)
	if err != nil {
		return err
	}

	args, perr := e.popN(f.Sig.Args)
	if perr != nil {
		return perr
	}

	if len(args) > 0 {
		e.push(args[0])
	}

	e.pushAll(args)

	return e.visit(f.Node)
}

func (e *env) visitBoth(subs []ir.SigNode) *Error {
	f, err := oneOp(subs)
	if err != nil {
		return err
	}

	args, perr := e.popN(f.Sig.Args)
	if perr != nil {
		return perr
	}

	if verr := e.visit(f.Node); verr != nil {
		return verr
	}

	e.pushAll(args)

	return e.visit(f.Node)
}

func (e *env) visitBracket(subs []ir.SigNode) *Error {
	f, g, err := twoOps(subs)
	if err != nil {
		return err
	}

	args, perr := e.popN(f.Sig.Args)
	if perr != nil {
		return perr
	}

	if verr := e.visit(g.Node); verr != nil {
		return verr
	}

	e.pushAll(args)

	return e.visit(f.Node)
}

// visitFork interprets the Fork combinator: f's arguments are popped (as
// many as f declares), the top min(f.args, g.args) of them feed g first,
// then all of f's args feed f, fed back in reverse of how popN restores
// them (§4.2; the asymmetric restore order is deliberate - see DESIGN.md).
func (e *env) visitFork(subs []ir.SigNode) *Error {
	f, g, err := twoOps(subs)
	if err != nil {
		return err
	}

	// vals is in (deepest ... top) order, as popN always returns.
	vals, perr := e.popN(f.Sig.Args)
	if perr != nil {
		return perr
	}

	gCount := f.Sig.Args
	if g.Sig.Args < gCount {
		gCount = g.Sig.Args
	}

	var forG []Expr
	if f.Sig.Args > g.Sig.Args {
		forG = vals[f.Sig.Args-gCount:]
	} else {
		forG = vals
	}

	e.pushAll(forG)

	if verr := e.visit(g.Node); verr != nil {
		return verr
	}

	for i := len(vals) - 1; i >= 0; i-- {
		e.push(vals[i])
	}

	return e.visit(f.Node)
}

// visitCustomInverse interprets a CustomInverse node: obverses are never
// modelled, and a missing normal branch is a genuine NoInverse.
func (e *env) visitCustomInverse(ci ir.CustomInverse) *Error {
	if ci.IsObverse {
		return notSupported("custom inverses")
	}

	if !ci.HasNormal {
		return errOf(NoInverse)
	}

	return e.visit(ci.Normal)
}
