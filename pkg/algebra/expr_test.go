package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprConstAndVar(t *testing.T) {
	c, ok := FromFloat(3).AsConstant()
	assert.True(t, ok)
	assert.Equal(t, Real(3), c)

	_, ok = VarX().AsConstant()
	assert.False(t, ok)
}

func TestExprAddCombinesLikeTerms(t *testing.T) {
	// (2X + 1) + (3X + 4) = 5X + 5
	a := VarX().Mul(FromFloat(2)).Add(FromFloat(1))
	b := VarX().Mul(FromFloat(3)).Add(FromFloat(4))

	sum := a.Add(b)

	assert.Equal(t, 2, sum.Len())

	coef, ok := sum.Get(TermOfX())
	assert.True(t, ok)
	assert.Equal(t, Real(5), coef)

	coef, ok = sum.Get(NewTerm(X(), 0))
	assert.True(t, ok)
	assert.Equal(t, Real(5), coef)
}

func TestExprMulXTimesX(t *testing.T) {
	// X * X = X^2
	prod := VarX().Mul(VarX())

	coef, ok := prod.Get(NewTerm(X(), 2))
	assert.True(t, ok)
	assert.Equal(t, ONE, coef)
}

func TestExprDivXByX(t *testing.T) {
	// X / X = X^0 = 1
	quot := VarX().Div(VarX())

	coef, ok := quot.Get(NewTerm(X(), 0))
	assert.True(t, ok)
	assert.Equal(t, ONE, coef)
}

func TestExprPow(t *testing.T) {
	squared, ok := VarX().Pow(FromFloat(2))
	assert.True(t, ok)

	coef, ok := squared.Get(NewTerm(X(), 2))
	assert.True(t, ok)
	assert.Equal(t, ONE, coef)

	// Non-constant exponent is rejected.
	_, ok = VarX().Pow(VarX())
	assert.False(t, ok)
}

func TestExprSqrtOfSingleTermHalvesPower(t *testing.T) {
	squared, _ := VarX().Pow(FromFloat(2))

	root := squared.Sqrt()

	coef, ok := root.Get(TermOfX())
	assert.True(t, ok)
	assert.Equal(t, ONE, coef)
}

func TestExprSqrtOfMultiTermWrapsOpaquely(t *testing.T) {
	poly := VarX().Add(FromFloat(1))

	root := poly.Sqrt()

	assert.Equal(t, 1, root.Len())

	coef, ok := root.AsConstant()
	assert.False(t, ok)
	_ = coef
}

func TestExprIsComplexShape(t *testing.T) {
	assert.False(t, NewExpr().IsComplexShape())
	assert.True(t, FromFloat(0).IsComplexShape())
	assert.True(t, VarX().IsComplexShape())
}

func TestExprEqualTreatsNaNCoefficientsAsEqual(t *testing.T) {
	nanExpr1 := ConstExpr(Real(nanFloat()))
	nanExpr2 := ConstExpr(Real(nanFloat()))

	assert.True(t, nanExpr1.Equal(nanExpr2))
}

func nanFloat() float64 {
	var zero float64
	return zero / zero
}
