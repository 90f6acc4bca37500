package algebra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermCompareOrdersByBaseThenPower(t *testing.T) {
	x0 := NewTerm(X(), 0)
	x1 := NewTerm(X(), 1)
	x2 := NewTerm(X(), 2)

	assert.Negative(t, x0.Compare(x1))
	assert.Negative(t, x1.Compare(x2))
	assert.Positive(t, x2.Compare(x0))
	assert.Zero(t, x1.Compare(NewTerm(X(), 1)))
}

func TestTermNaNPowersCompareEqual(t *testing.T) {
	a := NewTerm(X(), math.NaN())
	b := NewTerm(X(), math.NaN())

	assert.True(t, a.Equal(b))
	assert.Zero(t, a.Compare(b))
}

func TestTermIsConstantTerm(t *testing.T) {
	assert.True(t, NewTerm(X(), 0).IsConstantTerm())
	assert.False(t, NewTerm(X(), 1).IsConstantTerm())
	assert.False(t, TermOfX().IsConstantTerm())
}

func TestTermNestedBaseSortsAfterX(t *testing.T) {
	nested := NewTerm(NestedExpr(VarX()), 1)
	plain := NewTerm(X(), 5)

	assert.Negative(t, plain.Compare(nested))
	assert.Positive(t, nested.Compare(plain))
}
