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
package main

import (
	"fmt"
	"strconv"

	"github.com/arrlang/algebra/pkg/ir"
)

// parseProgram reads a textual program into a sequence of IR nodes, one per
// top-level form, against a freshly constructed assembly.
//
// The grammar is a small, purpose-built lisp: just enough to exercise every
// node variant the analyzer understands, and nothing more:
//
//	N                    a bare real scalar literal (a "run" element shorthand)
//	(push N)             a real scalar literal
//	(pushc RE IM)         a complex scalar literal
//	(prim NAME)           a primitive, e.g. (prim add)
//	(call NAME)           invoke a function declared in the assembly
//	(run N...)            a sequence
//	(mod OP (sig A O N)...) a combinator over one or more sub-functions
//
// Unlike a general-purpose s-expression reader, this parser never builds an
// intermediate symbolic tree: each form is turned directly into the ir.Node
// it denotes as it is read, and every token it consumes is tracked by
// line/column so a *parseError always points straight at the offending
// character.
func parseProgram(text string, asm *ir.Assembly) ([]ir.Node, error) {
	p := &parser{text: []rune(text), line: 1, col: 1}

	var nodes []ir.Node

	for {
		p.skipSpace()
		if p.atEOF() {
			return nodes, nil
		}

		n, err := p.parseNode(asm)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}
}

// parser scans the program text one rune at a time, tracking the line and
// column of the current position so errors can be reported precisely
// without a separate source-map pass.
type parser struct {
	text []rune
	pos  int
	line int
	col  int
}

// parseError is a structured error carrying the exact line/column a parse
// failure arose at.
type parseError struct {
	line, col int
	msg       string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.line, e.col, e.msg)
}

func (p *parser) errorf(format string, args ...any) *parseError {
	return &parseError{line: p.line, col: p.col, msg: fmt.Sprintf(format, args...)}
}

func (p *parser) atEOF() bool { return p.pos >= len(p.text) }

func (p *parser) peek() rune {
	if p.atEOF() {
		return 0
	}

	return p.text[p.pos]
}

func (p *parser) advance() rune {
	r := p.text[p.pos]
	p.pos++

	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}

	return r
}

// skipSpace consumes whitespace and ";"-prefixed line comments.
func (p *parser) skipSpace() {
	for !p.atEOF() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.advance()
		case ';':
			for !p.atEOF() && p.peek() != '\n' {
				p.advance()
			}
		default:
			return
		}
	}
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
}

// readToken consumes a maximal run of non-delimiter runes: a symbol, a
// number, or an operator name.
func (p *parser) readToken() (string, error) {
	p.skipSpace()

	if p.atEOF() || p.peek() == ')' {
		return "", p.errorf("expected a token")
	}

	start := p.pos

	for !p.atEOF() && !isDelimiter(p.peek()) {
		p.advance()
	}

	if p.pos == start {
		return "", p.errorf("unexpected character %q", p.peek())
	}

	return string(p.text[start:p.pos]), nil
}

func (p *parser) readFloat() (float64, error) {
	tok, err := p.readToken()
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.errorf("expected a number, got %q", tok)
	}

	return v, nil
}

func (p *parser) readUint() (uint, error) {
	tok, err := p.readToken()
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, p.errorf("expected a non-negative integer, got %q", tok)
	}

	return uint(v), nil
}

func (p *parser) expect(r rune) error {
	p.skipSpace()

	if p.atEOF() || p.peek() != r {
		return p.errorf("expected %q", r)
	}

	p.advance()

	return nil
}

// parseNode reads either a bare numeric literal or a parenthesized form and
// returns the ir.Node it denotes.
func (p *parser) parseNode(asm *ir.Assembly) (ir.Node, error) {
	p.skipSpace()

	if p.peek() == '(' {
		return p.parseForm(asm)
	}

	tok, err := p.readToken()
	if err != nil {
		return nil, err
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, p.errorf("unrecognized bare symbol %q", tok)
	}

	return &ir.Push{Value: ir.Num(v)}, nil
}

// parseForm reads a "(head ...)" form and dispatches directly on head into
// the ir.Node it constructs, without ever materializing an intermediate
// symbolic tree.
func (p *parser) parseForm(asm *ir.Assembly) (ir.Node, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}

	head, err := p.readToken()
	if err != nil {
		return nil, err
	}

	span := asm.SentinelSpan()

	var node ir.Node

	switch head {
	case "push":
		v, ferr := p.readFloat()
		if ferr != nil {
			return nil, ferr
		}

		node = &ir.Push{Value: ir.Num(v)}
	case "pushc":
		re, rerr := p.readFloat()
		if rerr != nil {
			return nil, rerr
		}

		im, ierr := p.readFloat()
		if ierr != nil {
			return nil, ierr
		}

		node = &ir.Push{Value: ir.Cx(complex(re, im))}
	case "prim":
		name, terr := p.readToken()
		if terr != nil {
			return nil, terr
		}

		node = &ir.Prim{Op: ir.Primitive(name), At: span}
	case "call":
		name, terr := p.readToken()
		if terr != nil {
			return nil, terr
		}

		id, ferr := funcByName(asm, name)
		if ferr != nil {
			return nil, p.errorf("%s", ferr)
		}

		node = &ir.Call{Func: id, At: span}
	case "run":
		children, rerr := p.parseNodeList(asm)
		if rerr != nil {
			return nil, rerr
		}

		return &ir.Run{Children: children}, nil
	case "mod":
		return p.parseMod(asm, span)
	default:
		return nil, p.errorf("unknown node kind %q", head)
	}

	if err := p.expect(')'); err != nil {
		return nil, err
	}

	return node, nil
}

// parseNodeList reads zero or more nodes up to the closing ")" of the
// enclosing form, consuming that ")".
func (p *parser) parseNodeList(asm *ir.Assembly) ([]ir.Node, error) {
	var nodes []ir.Node

	for {
		p.skipSpace()

		if p.atEOF() {
			return nil, p.errorf("unexpected end-of-file")
		}

		if p.peek() == ')' {
			p.advance()
			return nodes, nil
		}

		n, err := p.parseNode(asm)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}
}

// parseMod reads the operator symbol and one or more "(sig A O NODE)"
// sub-functions of a "(mod OP (sig ...)...)" form, consuming the closing ")".
func (p *parser) parseMod(asm *ir.Assembly, span ir.SpanID) (ir.Node, error) {
	op, err := p.readToken()
	if err != nil {
		return nil, err
	}

	var subs []ir.SigNode

	for {
		p.skipSpace()

		if p.atEOF() {
			return nil, p.errorf("unexpected end-of-file")
		}

		if p.peek() == ')' {
			p.advance()
			break
		}

		sig, serr := p.parseSig(asm)
		if serr != nil {
			return nil, serr
		}

		subs = append(subs, sig)
	}

	if len(subs) == 0 {
		return nil, p.errorf("mod requires at least one sub-function")
	}

	return &ir.Mod{Op: ir.ModOp(op), Subs: subs, At: span}, nil
}

// parseSig reads a single "(sig ARGS OUTPUTS NODE)" sub-function.
func (p *parser) parseSig(asm *ir.Assembly) (ir.SigNode, error) {
	if err := p.expect('('); err != nil {
		return ir.SigNode{}, err
	}

	head, err := p.readToken()
	if err != nil {
		return ir.SigNode{}, err
	}

	if head != "sig" {
		return ir.SigNode{}, p.errorf("sub-function must start with 'sig', got %q", head)
	}

	argc, err := p.readUint()
	if err != nil {
		return ir.SigNode{}, err
	}

	outc, err := p.readUint()
	if err != nil {
		return ir.SigNode{}, err
	}

	body, err := p.parseNode(asm)
	if err != nil {
		return ir.SigNode{}, err
	}

	if err := p.expect(')'); err != nil {
		return ir.SigNode{}, err
	}

	return ir.NewSigNode(body, argc, outc), nil
}

func funcByName(asm *ir.Assembly, name string) (ir.FuncID, error) {
	for i, fn := range asm.Functions {
		if fn.Name == name {
			return ir.FuncID(i), nil
		}
	}

	return 0, fmt.Errorf("undeclared function %q", name)
}
