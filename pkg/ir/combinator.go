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

// ModOp names a stack combinator: a Mod node applies one or more
// sub-functions (SigNode) according to the combinator's own stack
// choreography, rather than a plain scalar operation.
type ModOp string

// The combinators the algebra interpreter understands (§4.2).
const (
	Dip     ModOp = "dip"
	Gap     ModOp = "gap"
	On      ModOp = "on"
	By      ModOp = "by"
	Both    ModOp = "both"
	Bracket ModOp = "bracket"
	Fork    ModOp = "fork"
)

// Signature declares the stack arity of a sub-function: how many values it
// consumes and how many it leaves behind.
type Signature struct {
	Args    uint
	Outputs uint
}

// SigNode pairs a sub-function body with its declared signature.
type SigNode struct {
	Node Node
	Sig  Signature
}

// NewSigNode constructs a SigNode.
func NewSigNode(node Node, args, outputs uint) SigNode {
	return SigNode{Node: node, Sig: Signature{Args: args, Outputs: outputs}}
}

// CustomInverse describes a CustomInverse node's payload: either an
// "obverse" (a user-supplied alternate forward definition, never analyzable)
// or a normal inverse branch that may or may not be present.
type CustomInverse struct {
	IsObverse bool
	// Normal holds the node to execute when this is not an obverse and a
	// normal (forward-equivalent) branch was actually defined.
	Normal    Node
	HasNormal bool
}
