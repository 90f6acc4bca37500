package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrlang/algebra/pkg/ir"
)

func TestAlgebraicInverseLinearThroughOrigin(t *testing.T) {
	// X * 2 inverts to y / 2
	nodes := []ir.Node{push(2), prim(ir.Mul)}
	asm := ir.NewAssembly()

	node, ok, err := AlgebraicInverse(nodes, asm, NopTracer{})
	assert.True(t, ok)
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)
	assert.Equal(t, 1, result.Len())

	coef, gok := result.Get(TermOfX())
	assert.True(t, gok)
	assert.Equal(t, Real(0.5), coef)
}

func TestAlgebraicInverseIdentity(t *testing.T) {
	nodes := []ir.Node{prim(ir.Identity)}

	node, ok, err := AlgebraicInverse(nodes, ir.NewAssembly(), NopTracer{})
	assert.True(t, ok)
	assert.Nil(t, err)

	p, isPrim := node.(*ir.Prim)
	assert.True(t, isPrim)
	assert.Equal(t, ir.Identity, p.Op)
}

func TestAlgebraicInverseGeneralLinear(t *testing.T) {
	// X * 2 + 3 inverts to (y - 3) / 2
	nodes := []ir.Node{push(2), prim(ir.Mul), push(3), prim(ir.Add)}
	asm := ir.NewAssembly()

	node, ok, err := AlgebraicInverse(nodes, asm, NopTracer{})
	assert.True(t, ok)
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)
	assert.Equal(t, 2, result.Len())

	linear, lok := result.Get(TermOfX())
	assert.True(t, lok)
	assert.Equal(t, Real(0.5), linear)

	constant, cok := result.Get(NewTerm(X(), 0))
	assert.True(t, cok)
	assert.Equal(t, Real(-1.5), constant)
}

func TestAlgebraicInverseConstant(t *testing.T) {
	// discard X, push a constant: always inverts to "pop, push 5"
	nodes := []ir.Node{prim(ir.Pop), push(5)}
	asm := ir.NewAssembly()

	node, ok, err := AlgebraicInverse(nodes, asm, NopTracer{})
	assert.True(t, ok)
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)

	coef, cok := result.AsConstant()
	assert.True(t, cok)
	assert.Equal(t, Real(5), coef)
}

func TestAlgebraicInverseSimpleQuadratic(t *testing.T) {
	// X^2 inverts to sqrt((y - 0) / 1). Re-analysing that keeps the zero
	// X^0 entry "push 0, sub" leaves behind, so Sqrt sees two terms and
	// wraps them as one nested base raised to 0.5.
	nodes := []ir.Node{prim(ir.Dup), prim(ir.Mul)}
	asm := ir.NewAssembly()

	node, ok, err := AlgebraicInverse(nodes, asm, NopTracer{})
	assert.True(t, ok)
	assert.Nil(t, err)
	assert.NotNil(t, node)

	result, rerr := Analyze([]ir.Node{node}, asm, NopTracer{})
	assert.Nil(t, rerr)
	assert.Equal(t, 1, result.Len())

	inner := VarX().Sub(FromFloat(0)).Div(FromFloat(1))
	coef, gok := result.Get(NewTerm(NestedExpr(inner), 0.5))
	assert.True(t, gok)
	assert.Equal(t, ONE, coef)
}

func TestAlgebraicInverseTooComplex(t *testing.T) {
	// sqrt(X + 2) wraps opaquely as an Expr-nested base, so after removing
	// the X^0/X^1/X^2 terms there's a leftover term: TooComplex.
	nodes := []ir.Node{push(1), prim(ir.Add), push(1), prim(ir.Add), prim(ir.Sqrt)}

	_, ok, err := AlgebraicInverse(nodes, ir.NewAssembly(), NopTracer{})
	assert.True(t, ok)
	assert.NotNil(t, err)
	assert.Equal(t, TooComplex, err.Kind)
}

func TestAlgebraicInverseNotHandled(t *testing.T) {
	// An empty stack after failure has no complex-shape residue and
	// never incremented handled, so the inverter reports itself as not
	// applicable rather than surfacing TooManyVariables as a real error.
	nodes := []ir.Node{prim(ir.Pop), prim(ir.Pop)}
	asm := ir.NewAssembly()

	result := analyze(nodes, asm, NopTracer{})
	assert.False(t, result.handled)

	_, ok, err := AlgebraicInverse(nodes, asm, NopTracer{})
	assert.False(t, ok)
	assert.Nil(t, err)
}
