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
	"math/cmplx"
	"strconv"
)

// Complex is the field the symbolic kernel keeps coefficients in (§3.1): a
// pair of IEEE-754 doubles, with the usual field operations plus the
// handful of transcendental ones the kernel needs.
type Complex complex128

// NewComplex constructs a complex value from its real and imaginary parts.
func NewComplex(re, im float64) Complex {
	return Complex(complex(re, im))
}

// Real constructs a complex value with a zero imaginary part.
func Real(re float64) Complex {
	return Complex(complex(re, 0))
}

// I, ZERO and ONE are the distinguished constants §3.1 calls for.
var (
	I    = Complex(complex(0, 1))
	ZERO = Complex(complex(0, 0))
	ONE  = Complex(complex(1, 0))
)

// Re returns the real part.
func (c Complex) Re() float64 { return real(complex128(c)) }

// Im returns the imaginary part.
func (c Complex) Im() float64 { return imag(complex128(c)) }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex { return Complex(complex128(c) + complex128(o)) }

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex { return Complex(complex128(c) - complex128(o)) }

// Mul returns c * o.
func (c Complex) Mul(o Complex) Complex { return Complex(complex128(c) * complex128(o)) }

// Div returns c / o.
func (c Complex) Div(o Complex) Complex { return Complex(complex128(c) / complex128(o)) }

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex(-complex128(c)) }

// Sqrt returns the principal complex square root of c.
func (c Complex) Sqrt() Complex { return Complex(cmplx.Sqrt(complex128(c))) }

// Powf raises c to a real power p.
func (c Complex) Powf(p float64) Complex {
	return Complex(cmplx.Pow(complex128(c), complex(p, 0)))
}

// Log returns the logarithm of c to a real base.
func (c Complex) Log(base float64) Complex {
	return Complex(cmplx.Log(complex128(c)) / complex(math.Log(base), 0))
}

// Abs returns the modulus of c.
func (c Complex) Abs() float64 { return cmplx.Abs(complex128(c)) }

// IntoReal is the partial projection of §3.1: it succeeds iff the imaginary
// part is exactly zero.
func (c Complex) IntoReal() (float64, bool) {
	if imag(complex128(c)) == 0 {
		return real(complex128(c)), true
	}

	return 0, false
}

// IsZero reports whether c is exactly the zero value.
func (c Complex) IsZero() bool { return c == ZERO }

// IsNaNLike reports whether either component is NaN.
func (c Complex) IsNaNLike() bool {
	return math.IsNaN(c.Re()) || math.IsNaN(c.Im())
}

// Equal reports exact equality (no tolerance).
func (c Complex) Equal(o Complex) bool { return c == o }

func (c Complex) String() string {
	re, im := c.Re(), c.Im()
	if im == 0 {
		return strconv.FormatFloat(re, 'g', -1, 64)
	}

	sign := "+"
	if im < 0 {
		sign, im = "-", -im
	}

	return strconv.FormatFloat(re, 'g', -1, 64) + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}
