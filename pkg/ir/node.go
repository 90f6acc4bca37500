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
package ir

import "fmt"

// SpanID is an opaque handle into an Assembly's span table, used only for
// diagnostics.
type SpanID uint

// FuncID identifies a function within an Assembly.
type FuncID uint

// Node is a single instruction of the host stack IR.  It is a closed
// (sealed) tagged union: the concrete types below are the only
// implementations, mirroring the way the host's own term/expression trees
// are modelled as a small family of structs behind a marker method.
type Node interface {
	fmt.Stringer
	isNode()
}

// Run sequences zero or more nodes.
type Run struct {
	Children []Node
}

func (*Run) isNode() {}
func (r *Run) String() string {
	return fmt.Sprintf("run%v", r.Children)
}

// Call invokes a named function from the enclosing Assembly.
type Call struct {
	Func FuncID
	At   SpanID
}

func (*Call) isNode() {}
func (c *Call) String() string { return fmt.Sprintf("call(%d)", c.Func) }

// Push places a literal scalar (or higher-rank array) value on the stack.
type Push struct {
	Value Value
}

func (*Push) isNode() {}
func (p *Push) String() string {
	switch p.Value.Kind {
	case KindComplex:
		return fmt.Sprintf("push(%v)", p.Value.Cx)
	default:
		return fmt.Sprintf("push(%v)", p.Value.Num)
	}
}

// Prim applies a single scalar primitive.
type Prim struct {
	Op Primitive
	At SpanID
}

func (*Prim) isNode() {}
func (p *Prim) String() string { return string(p.Op) }

// Mod applies a stack combinator over one or more sub-functions.
type Mod struct {
	Op   ModOp
	Subs []SigNode
	At   SpanID
}

func (*Mod) isNode() {}
func (m *Mod) String() string { return fmt.Sprintf("%s%v", m.Op, m.Subs) }

// ImplPrim is an implementation-detail primitive the algebra system never
// models (always NotSupported).
type ImplPrim struct {
	Name string
	At   SpanID
}

func (*ImplPrim) isNode() {}
func (p *ImplPrim) String() string { return "impl:" + p.Name }

// ImplMod is an implementation-detail combinator the algebra system never
// models (always NotSupported).
type ImplMod struct {
	Name string
	Subs []SigNode
	At   SpanID
}

func (*ImplMod) isNode() {}
func (m *ImplMod) String() string { return "impl:" + m.Name }

// CustomInverseNode carries a user-defined inverse pair; the algebra system
// executes the normal branch if present, and never the obverse.
type CustomInverseNode struct {
	Inverse CustomInverse
	At      SpanID
}

func (*CustomInverseNode) isNode() {}
func (c *CustomInverseNode) String() string { return "custominverse" }

// CopyToUnder, PushUnder and PopUnder manipulate the host's "under" stack,
// which is invisible to this analyzer: all three are no-ops here.
type CopyToUnder struct{ At SpanID }

func (*CopyToUnder) isNode()          {}
func (*CopyToUnder) String() string   { return "copy-to-under" }

// PushUnder pushes onto the under stack; a no-op for this analyzer.
type PushUnder struct{ At SpanID }

func (*PushUnder) isNode()         {}
func (*PushUnder) String() string  { return "push-under" }

// PopUnder pops from the under stack; a no-op for this analyzer.
type PopUnder struct{ At SpanID }

func (*PopUnder) isNode()        {}
func (*PopUnder) String() string { return "pop-under" }

// Empty constructs the empty sequence, the identity element for Seq.
func Empty() Node { return &Run{} }

// Seq constructs a Run over the given children, flattening any that are
// themselves empty Runs.
func Seq(children ...Node) Node {
	out := make([]Node, 0, len(children))

	for _, c := range children {
		if r, ok := c.(*Run); ok && len(r.Children) == 0 {
			continue
		}

		out = append(out, c)
	}

	return &Run{out}
}

// SpanOf extracts the diagnostic span carried by a node, if any. Run and
// Push carry no span of their own.
func SpanOf(n Node) (SpanID, bool) {
	switch v := n.(type) {
	case *Call:
		return v.At, true
	case *Prim:
		return v.At, true
	case *Mod:
		return v.At, true
	case *ImplPrim:
		return v.At, true
	case *ImplMod:
		return v.At, true
	case *CustomInverseNode:
		return v.At, true
	case *CopyToUnder:
		return v.At, true
	case *PushUnder:
		return v.At, true
	case *PopUnder:
		return v.At, true
	default:
		return 0, false
	}
}
