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

import "github.com/arrlang/algebra/pkg/util"

// Function is a named, callable body within an Assembly.
type Function struct {
	Name string
	Body Node
}

// Assembly is the compiled unit a Call node resolves against, and the
// source of the sentinel "current" span used when lowering synthesized
// code (§4.3 step 4, §9 "host-IR coupling").
type Assembly struct {
	Functions []Function
	Spans     []SpanID
}

// NewAssembly constructs an empty assembly with a single sentinel span,
// matching the convention that `spans.len() - 1` always names a valid,
// synthetic "current" location.
func NewAssembly() *Assembly {
	return &Assembly{Spans: []SpanID{0}}
}

// Declare registers a function body and returns its id.
func (a *Assembly) Declare(name string, body Node) FuncID {
	id := FuncID(len(a.Functions))
	a.Functions = append(a.Functions, Function{Name: name, Body: body})

	return id
}

// Lookup returns the function registered under the given id.
func (a *Assembly) Lookup(id FuncID) util.Option[Function] {
	if int(id) >= len(a.Functions) {
		return util.None[Function]()
	}

	return util.Some(a.Functions[id])
}

// SentinelSpan returns the "current" span, i.e. the last entry of the span
// table. This is the span the inverter and lowerer attach to all
// newly-synthesized nodes.
func (a *Assembly) SentinelSpan() SpanID {
	return SpanID(len(a.Spans) - 1)
}
