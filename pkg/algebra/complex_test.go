package algebra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(3, 4)
	b := NewComplex(1, -2)

	assert.Equal(t, NewComplex(4, 2), a.Add(b))
	assert.Equal(t, NewComplex(2, 6), a.Sub(b))
	assert.True(t, a.Mul(b).Equal(NewComplex(11, -2)))
	assert.Equal(t, NewComplex(-3, -4), a.Neg())
}

func TestComplexIntoReal(t *testing.T) {
	re, ok := Real(5).IntoReal()
	assert.True(t, ok)
	assert.Equal(t, 5.0, re)

	_, ok = I.IntoReal()
	assert.False(t, ok)
}

func TestComplexSqrtOfNegativeOne(t *testing.T) {
	got := Real(-1).Sqrt()
	assert.InDelta(t, 0, got.Re(), 1e-9)
	assert.InDelta(t, 1, got.Im(), 1e-9)
}

func TestComplexIsNaNLike(t *testing.T) {
	assert.True(t, NewComplex(math.NaN(), 0).IsNaNLike())
	assert.True(t, NewComplex(0, math.NaN()).IsNaNLike())
	assert.False(t, ZERO.IsNaNLike())
}

func TestComplexString(t *testing.T) {
	assert.Equal(t, "3", Real(3).String())
	assert.Equal(t, "3+4i", NewComplex(3, 4).String())
	assert.Equal(t, "3-4i", NewComplex(3, -4).String())
}
