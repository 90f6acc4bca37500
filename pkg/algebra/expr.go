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
	"fmt"
	"sort"
	"strings"
)

// entry is one (term, coefficient) pair of an Expr.
type entry struct {
	Term  Term
	Coeff Complex
}

// Expr is a finite sum of coef*term (§3.4): Σ cᵢ·baseᵢ^powerᵢ.  It is kept
// as a slice sorted by Term.Compare, rather than a native Go map, because
// Term can nest an Expr inside its Base and Go map keys cannot carry
// value-semantic, recursively-comparable payloads.  The array-backed,
// linear-scan-to-merge shape mirrors the teacher's own array-polynomial
// implementation (pkg/util/poly's ArrayPoly/Monomial pair), generalized
// here from big.Int monomials over an arbitrary variable set to
// Complex-coefficient terms over a single variable.
type Expr struct {
	terms []entry
}

// NewExpr constructs the empty expression (no terms at all).
func NewExpr() Expr { return Expr{} }

// ConstExpr constructs the constant expression equivalent to c: the single
// entry {(X, 0) -> c}.
func ConstExpr(c Complex) Expr {
	return Expr{terms: []entry{{Term: NewTerm(X(), 0), Coeff: c}}}
}

// FromFloat constructs a real constant expression.
func FromFloat(v float64) Expr { return ConstExpr(Real(v)) }

// VarX constructs the expression denoting the free variable itself, X^1.
func VarX() Expr {
	return Expr{terms: []entry{{Term: TermOfX(), Coeff: ONE}}}
}

// FromTerm constructs the expression 1*term.
func FromTerm(t Term) Expr {
	return Expr{terms: []entry{{Term: t, Coeff: ONE}}}
}

// Clone returns a copy of the term list. Nested Base.Expr sub-expressions
// are shared with the original rather than copied.
func (e Expr) Clone() Expr {
	terms := make([]entry, len(e.terms))
	copy(terms, e.terms)

	return Expr{terms: terms}
}

// Len returns the number of terms currently stored. A zero coefficient may
// remain transiently (§3.4) - callers that care must treat a zero
// coefficient as absent themselves.
func (e Expr) Len() int { return len(e.terms) }

// Terms iterates the (term, coefficient) pairs in Term order.
func (e Expr) Terms(fn func(Term, Complex)) {
	for _, en := range e.terms {
		fn(en.Term, en.Coeff)
	}
}

// Get returns the coefficient stored against an exactly-matching term, or
// ZERO and false.
func (e Expr) Get(t Term) (Complex, bool) {
	if i, ok := e.find(t); ok {
		return e.terms[i].Coeff, true
	}

	return ZERO, false
}

// Remove returns the coefficient for a term (or ZERO if absent) together
// with a copy of this expression with that term removed.
func (e Expr) Remove(t Term) (Complex, Expr) {
	i, ok := e.find(t)
	if !ok {
		return ZERO, e.Clone()
	}

	terms := make([]entry, 0, len(e.terms)-1)
	terms = append(terms, e.terms[:i]...)
	terms = append(terms, e.terms[i+1:]...)

	return e.terms[i].Coeff, Expr{terms: terms}
}

func (e Expr) find(t Term) (int, bool) {
	i := sort.Search(len(e.terms), func(i int) bool {
		return e.terms[i].Term.Compare(t) >= 0
	})
	if i < len(e.terms) && e.terms[i].Term.Equal(t) {
		return i, true
	}

	return 0, false
}

// insert adds coeff onto whatever is already stored against term (or
// inserts a fresh entry), preserving sort order. This is the one mutating
// primitive every arithmetic operation below is built from.
func (e *Expr) insert(t Term, c Complex) {
	i := sort.Search(len(e.terms), func(i int) bool {
		return e.terms[i].Term.Compare(t) >= 0
	})

	if i < len(e.terms) && e.terms[i].Term.Equal(t) {
		e.terms[i].Coeff = e.terms[i].Coeff.Add(c)
		return
	}

	e.terms = append(e.terms, entry{})
	copy(e.terms[i+1:], e.terms[i:])
	e.terms[i] = entry{Term: t, Coeff: c}
}

// AsConstant returns the coefficient iff this expression is exactly the
// single entry (X, 0) -> c (§3.4, §4.1).
func (e Expr) AsConstant() (Complex, bool) {
	if len(e.terms) != 1 {
		return ZERO, false
	}

	en := e.terms[0]
	if en.Term.IsConstantTerm() {
		return en.Coeff, true
	}

	return ZERO, false
}

// IsConstant reports whether e denotes a plain constant.
func (e Expr) IsConstant() bool {
	_, ok := e.AsConstant()
	return ok
}

// IsComplexShape implements §3.4/§9's "complex-shape" heuristic. The source
// condition (term.power != 0.0 || term.power != 1.0) is a tautology for any
// finite power - no power can equal both 0 and 1 - so it reduces to "this
// expression has at least one term". That degenerate behaviour is preserved
// deliberately (see DESIGN.md): it is what the handled-classification in
// §4.2 actually exercises.
func (e Expr) IsComplexShape() bool { return len(e.terms) > 0 }

// Compare totally orders expressions: shorter expressions first, then by
// the first position at which their (term, coefficient) pairs diverge.
func (e Expr) Compare(o Expr) int {
	if c := len(e.terms) - len(o.terms); c != 0 {
		if c < 0 {
			return -1
		}

		return 1
	}

	for i := range e.terms {
		a, b := e.terms[i], o.terms[i]
		if c := a.Term.Compare(b.Term); c != 0 {
			return c
		}

		if !a.Coeff.Equal(b.Coeff) && !(a.Coeff.IsNaNLike() && b.Coeff.IsNaNLike()) {
			if c := comparePower(a.Coeff.Re(), b.Coeff.Re()); c != 0 {
				return c
			}

			if c := comparePower(a.Coeff.Im(), b.Coeff.Im()); c != 0 {
				return c
			}
		}
	}

	return 0
}

// Equal reports structural equality: same length, same terms in the same
// order, coefficients equal (NaN-bearing coefficients compare equal to any
// other NaN-bearing coefficient, mirroring Term's NaN handling).
func (e Expr) Equal(o Expr) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}

	for i := range e.terms {
		a, b := e.terms[i], o.terms[i]
		if !a.Term.Equal(b.Term) {
			return false
		}

		if a.Coeff.Equal(b.Coeff) {
			continue
		}

		if a.Coeff.IsNaNLike() && b.Coeff.IsNaNLike() {
			continue
		}

		return false
	}

	return true
}

// String renders e as a readable sum of terms, mirroring the density of the
// original Debug impl without trying to match it byte-for-byte.
func (e Expr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}

	var b strings.Builder

	for i, en := range e.terms {
		if i > 0 {
			b.WriteString(" + ")
		}

		switch {
		case en.Term.Power == 0:
			fmt.Fprintf(&b, "%v", en.Coeff)
		case en.Coeff.Equal(ONE):
			b.WriteString(termString(en.Term))
		case en.Coeff.Equal(ONE.Neg()):
			b.WriteString("-" + termString(en.Term))
		default:
			fmt.Fprintf(&b, "%v%s", en.Coeff, termString(en.Term))
		}
	}

	return b.String()
}

func termString(t Term) string {
	base := "X"
	if !t.Base.IsX {
		sub, _ := t.Base.Sub()
		base = "(" + sub.String() + ")"
	}

	if t.Power == 1 {
		return base
	}

	return fmt.Sprintf("%s^%v", base, t.Power)
}

// Neg negates every coefficient.
func (e Expr) Neg() Expr {
	out := e.Clone()
	for i := range out.terms {
		out.terms[i].Coeff = out.terms[i].Coeff.Neg()
	}

	return out
}

// Add merges two term maps, summing coefficients on key collision.
func (e Expr) Add(o Expr) Expr {
	out := e.Clone()
	o.Terms(func(t Term, c Complex) { out.insert(t, c) })

	return out
}

// Sub merges two term maps, subtracting the right-hand coefficients.
func (e Expr) Sub(o Expr) Expr {
	out := e.Clone()
	o.Terms(func(t Term, c Complex) { out.insert(t, c.Neg()) })

	return out
}

// Mul distributes multiplication over all term pairs, combining bases per
// the table in §4.1.
func (e Expr) Mul(o Expr) Expr {
	out := NewExpr()

	e.Terms(func(ta Term, ca Complex) {
		o.Terms(func(tb Term, cb Complex) {
			mulCombine(&out, ta, ca, tb, cb)
		})
	})

	return out
}

func mulCombine(out *Expr, ta Term, ca Complex, tb Term, cb Complex) {
	switch {
	case ta.Base.IsX && tb.Base.IsX:
		out.insert(NewTerm(X(), ta.Power+tb.Power), ca.Mul(cb))
	case ta.Base.IsX && !tb.Base.IsX:
		sub, _ := tb.Base.Sub()
		sub.Terms(func(t Term, c Complex) {
			out.insert(NewTerm(t.Base, t.Power+ta.Power), ca.Mul(c).Mul(cb))
		})
	case !ta.Base.IsX && tb.Base.IsX:
		sub, _ := ta.Base.Sub()
		sub.Terms(func(t Term, c Complex) {
			out.insert(NewTerm(t.Base, t.Power+tb.Power), ca.Mul(c).Mul(cb))
		})
	default:
		suba, _ := ta.Base.Sub()
		subb, _ := tb.Base.Sub()
		prod := suba.Mul(subb)
		prod.Terms(func(t Term, c Complex) {
			out.insert(t, c.Mul(ca).Mul(cb))
		})
	}
}

// Div has the same shape as Mul, except the X-by-X case subtracts powers
// and divides coefficients; the two mixed cases and the Expr-by-Expr case
// keep Mul's power-ADDITION shape and only divide coefficients (§4.1's
// "division asymmetry", preserved deliberately - see DESIGN.md and §9).
func (e Expr) Div(o Expr) Expr {
	out := NewExpr()

	e.Terms(func(ta Term, ca Complex) {
		o.Terms(func(tb Term, cb Complex) {
			divCombine(&out, ta, ca, tb, cb)
		})
	})

	return out
}

func divCombine(out *Expr, ta Term, ca Complex, tb Term, cb Complex) {
	switch {
	case ta.Base.IsX && tb.Base.IsX:
		out.insert(NewTerm(X(), ta.Power-tb.Power), ca.Div(cb))
	case ta.Base.IsX && !tb.Base.IsX:
		// total-self (ca) divided by total-rhs (inner coeff * outer cb).
		sub, _ := tb.Base.Sub()
		sub.Terms(func(t Term, c Complex) {
			out.insert(NewTerm(t.Base, t.Power+ta.Power), ca.Div(c.Mul(cb)))
		})
	case !ta.Base.IsX && tb.Base.IsX:
		// total-self (inner coeff * outer ca) divided by total-rhs (cb).
		sub, _ := ta.Base.Sub()
		sub.Terms(func(t Term, c Complex) {
			out.insert(NewTerm(t.Base, t.Power+tb.Power), c.Mul(ca).Div(cb))
		})
	default:
		suba, _ := ta.Base.Sub()
		subb, _ := tb.Base.Sub()
		prod := suba.Div(subb)
		prod.Terms(func(t Term, c Complex) {
			out.insert(t, c.Mul(ca).Div(cb))
		})
	}
}

// Pow raises e to a real constant power, multiplying every power by p and
// raising every coefficient to the p-th power. Fails when other is not a
// real constant (§4.1).
func (e Expr) Pow(other Expr) (Expr, bool) {
	c, ok := other.AsConstant()
	if !ok {
		return Expr{}, false
	}

	p, ok := c.IntoReal()
	if !ok {
		return Expr{}, false
	}

	out := e.Clone()
	for i := range out.terms {
		out.terms[i].Term.Power *= p
		out.terms[i].Coeff = out.terms[i].Coeff.Powf(p)
	}

	return out, true
}

// Log divides every power by a real constant base and takes the
// coefficient's logarithm to that base. Fails when other is not a real
// constant (§4.1).
func (e Expr) Log(other Expr) (Expr, bool) {
	c, ok := other.AsConstant()
	if !ok {
		return Expr{}, false
	}

	base, ok := c.IntoReal()
	if !ok {
		return Expr{}, false
	}

	out := e.Clone()
	for i := range out.terms {
		out.terms[i].Term.Power /= base
		out.terms[i].Coeff = out.terms[i].Coeff.Log(base)
	}

	return out, true
}

// Sqrt takes the complex square root. If e has at most one term, the power
// is halved and the coefficient's square root is taken in place; otherwise
// the whole expression is wrapped opaquely as a single term of power 0.5
// (§4.1).
func (e Expr) Sqrt() Expr {
	if len(e.terms) <= 1 {
		out := e.Clone()
		for i := range out.terms {
			out.terms[i].Term.Power *= 0.5
			out.terms[i].Coeff = out.terms[i].Coeff.Sqrt()
		}

		return out
	}

	return FromTerm(NewTerm(NestedExpr(e), 0.5))
}
