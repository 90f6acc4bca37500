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
	"github.com/arrlang/algebra/pkg/ir"
)

// env is the abstract interpreter's state (§4.2): a stack of symbolic
// expressions standing in for the host's actual value stack, plus the
// bookkeeping the inverter later consults.
type env struct {
	asm        *ir.Assembly
	stack      []Expr
	callStack  []ir.SpanID
	handled    uint
	anyComplex bool
	tracer     Tracer
}

func newEnv(asm *ir.Assembly, tracer Tracer) *env {
	return &env{
		asm:    asm,
		stack:  []Expr{VarX()},
		tracer: tracer,
	}
}

func (e *env) pop() (Expr, *Error) {
	if len(e.stack) == 0 {
		return Expr{}, errOf(TooManyVariables)
	}

	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	return top, nil
}

func (e *env) push(v Expr) { e.stack = append(e.stack, v) }

// result extracts the single surviving expression (§4.2's "result
// extraction"): zero entries is NoOutput, more than one is TooManyOutputs.
func (e *env) result() (Expr, *Error) {
	switch len(e.stack) {
	case 0:
		return Expr{}, errOf(NoOutput)
	case 1:
		return e.stack[0], nil
	default:
		return Expr{}, errOf(TooManyOutputs)
	}
}

// handledClassification implements §4.2's "handled" heuristic: handled is
// true once at least two algebra primitives have fired, or any residual
// stack entry is complex-shape.
func (e *env) handledClassification() bool {
	if e.handled >= 2 {
		return true
	}

	for _, v := range e.stack {
		if v.IsComplexShape() {
			return true
		}
	}

	return false
}

// analysis bundles the outcome of running the interpreter to completion (or
// failure) over a node sequence: the resulting expression (or the error
// that stopped analysis), whether the run counts as "handled" algebra, and
// whether any complex literal was observed.
type analysis struct {
	expr       Expr
	err        *Error
	handled    bool
	anyComplex bool
}

// analyze runs the abstract interpreter over a sequence of nodes, starting
// from the canonical single-variable stack {X^1}.
func analyze(nodes []ir.Node, asm *ir.Assembly, tracer Tracer) analysis {
	e := newEnv(asm, tracer)

	for _, n := range nodes {
		if err := e.visit(n); err != nil {
			result := analysis{err: err, handled: e.handledClassification(), anyComplex: e.anyComplex}
			tracer.Tracef("analysis failed: %v (handled=%v)", err, result.handled)

			return result
		}
	}

	expr, err := e.result()
	result := analysis{expr: expr, err: err, handled: e.handledClassification(), anyComplex: e.anyComplex}
	tracer.Tracef("analysis done: handled=%v any_complex=%v err=%v", result.handled, result.anyComplex, err)

	return result
}

// Analyze is the public entry point onto the abstract interpreter: it
// reconstructs the closed-form expression a sequence of nodes denotes,
// without attempting inversion or calculus.
func Analyze(nodes []ir.Node, asm *ir.Assembly, tracer Tracer) (Expr, *Error) {
	result := analyze(nodes, asm, tracer)
	return result.expr, result.err
}

// visit interprets a single node, tracking the call-stack span trail while
// doing so (§4.2).
func (e *env) visit(n ir.Node) *Error {
	if span, ok := ir.SpanOf(n); ok {
		e.callStack = append(e.callStack, span)
		defer func() { e.callStack = e.callStack[:len(e.callStack)-1] }()
	}

	return e.visitImpl(n)
}

func (e *env) visitImpl(n ir.Node) *Error {
	switch node := n.(type) {
	case *ir.Run:
		for _, child := range node.Children {
			if err := e.visit(child); err != nil {
				return err
			}
		}

		return nil
	case *ir.Call:
		fn := e.asm.Lookup(node.Func)
		if fn.IsEmpty() {
			return errOf(InterpreterBug)
		}

		return e.visit(fn.Unwrap().Body)
	case *ir.Push:
		return e.visitPush(node.Value)
	case *ir.Prim:
		return e.visitPrim(node.Op)
	case *ir.ImplPrim:
		return notSupported(node.Name)
	case *ir.Mod:
		return e.visitMod(node.Op, node.Subs)
	case *ir.ImplMod:
		return notSupported(node.Name)
	case *ir.CustomInverseNode:
		return e.visitCustomInverse(node.Inverse)
	case *ir.CopyToUnder, *ir.PushUnder, *ir.PopUnder:
		return nil
	default:
		return notSupported(n.String())
	}
}

func (e *env) visitPush(v ir.Value) *Error {
	if v.Rank > 0 {
		return errOf(NonScalar)
	}

	switch v.Kind {
	case ir.KindNum, ir.KindByte:
		e.push(FromFloat(v.Num))
	case ir.KindComplex:
		e.push(ConstExpr(Complex(v.Cx)))
		e.anyComplex = true
	default:
		return errOf(NonReal)
	}

	return nil
}
