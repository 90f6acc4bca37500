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

// Primitive names a scalar stack operation.  The set the host language
// actually supports is far larger than what the algebra system understands;
// an unrecognised value is simply a Primitive the interpreter has never seen
// and will report as unsupported.
type Primitive string

// Stack shuffles: pure stack manipulation, never touch algebra.
const (
	Identity Primitive = "identity"
	Pop      Primitive = "pop"
	Dup      Primitive = "dup"
	Flip     Primitive = "flip"
	Over     Primitive = "over"
)

// Unary algebra primitives.
const (
	Neg  Primitive = "neg"
	Not  Primitive = "not"
	Sqrt Primitive = "sqrt"
)

// Binary algebra primitives.
const (
	Add     Primitive = "add"
	Sub     Primitive = "sub"
	Mul     Primitive = "mul"
	Div     Primitive = "div"
	Pow     Primitive = "pow"
	Log     Primitive = "log"
	Complex Primitive = "complex"
)

// Max is not interpreted by the abstract interpreter (it is not one of the
// primitives §4.2 lists), but is emitted by the inverter's full-quadratic
// closed form (§4.3) to select the positive root.
const Max Primitive = "max"
