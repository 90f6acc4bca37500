package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrlang/algebra/pkg/ir"
)

func TestDerivativeOfLinearTerm(t *testing.T) {
	// d/dX (3X + 1) = 3
	nodes := ir.Seq(push(3), prim(ir.Mul), push(1), prim(ir.Add))
	asm := ir.NewAssembly()

	node, err := Derivative(nodes, asm, NopTracer{})
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)

	coef, ok := result.AsConstant()
	assert.True(t, ok)
	assert.Equal(t, Real(3), coef)
}

func TestDerivativeOfSquareIsLinear(t *testing.T) {
	// d/dX (X^2) = 2X
	nodes := ir.Seq(prim(ir.Dup), prim(ir.Mul))
	asm := ir.NewAssembly()

	node, err := Derivative(nodes, asm, NopTracer{})
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)
	assert.Equal(t, 1, result.Len())

	coef, ok := result.Get(TermOfX())
	assert.True(t, ok)
	assert.Equal(t, Real(2), coef)
}

func TestDerivativeOfConstantIsZero(t *testing.T) {
	// d/dX (pop, push 7) = 0. The zero result lowers to "push 0, mul",
	// which re-analyses to the single term 0*X.
	nodes := ir.Seq(prim(ir.Pop), push(7))
	asm := ir.NewAssembly()

	node, err := Derivative(nodes, asm, NopTracer{})
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)

	coef, ok := result.Get(TermOfX())
	assert.True(t, ok)
	assert.Equal(t, Real(0), coef)
}

func TestDerivativeRejectsNestedExpression(t *testing.T) {
	// sqrt(X + 1 + 1) wraps as an opaque nested base: TooComplex.
	nodes := ir.Seq(push(1), prim(ir.Add), push(1), prim(ir.Add), prim(ir.Sqrt))
	asm := ir.NewAssembly()

	_, err := Derivative(nodes, asm, NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooComplex, err.Kind)
}

func TestIntegralOfIdentityIsHalfSquare(t *testing.T) {
	// integral of X with respect to X = X^2 / 2
	asm := ir.NewAssembly()

	node, err := Integral(prim(ir.Identity), asm, NopTracer{})
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)
	assert.Equal(t, 1, result.Len())

	coef, ok := result.Get(NewTerm(X(), 2))
	assert.True(t, ok)
	assert.Equal(t, Real(0.5), coef)
}

func TestIntegralRejectsNestedExpression(t *testing.T) {
	nodes := ir.Seq(push(1), prim(ir.Add), push(1), prim(ir.Add), prim(ir.Sqrt))
	asm := ir.NewAssembly()

	_, err := Integral(nodes, asm, NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooComplex, err.Kind)
}

func TestCalculusPropagatesAnalysisErrors(t *testing.T) {
	nodes := ir.Seq(prim(ir.Pop), prim(ir.Pop))
	asm := ir.NewAssembly()

	_, err := Derivative(nodes, asm, NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooManyVariables, err.Kind)

	_, err = Integral(nodes, asm, NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooManyVariables, err.Kind)
}
