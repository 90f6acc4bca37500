package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrlang/algebra/pkg/ir"
)

func prim(op ir.Primitive) ir.Node { return &ir.Prim{Op: op, At: 0} }
func push(v float64) ir.Node       { return &ir.Push{Value: ir.Num(v)} }

func TestAnalyzeIdentityIsTheVariableItself(t *testing.T) {
	expr, err := Analyze([]ir.Node{prim(ir.Identity)}, ir.NewAssembly(), NopTracer{})
	assert.Nil(t, err)
	assert.True(t, expr.Equal(VarX()))
}

func TestAnalyzeLinearExpression(t *testing.T) {
	// X * 2 + 3
	nodes := []ir.Node{push(2), prim(ir.Mul), push(3), prim(ir.Add)}

	expr, err := Analyze(nodes, ir.NewAssembly(), NopTracer{})
	assert.Nil(t, err)

	coef, ok := expr.Get(TermOfX())
	assert.True(t, ok)
	assert.Equal(t, Real(2), coef)

	coef, ok = expr.Get(NewTerm(X(), 0))
	assert.True(t, ok)
	assert.Equal(t, Real(3), coef)
}

func TestAnalyzeTooManyVariables(t *testing.T) {
	_, err := Analyze([]ir.Node{prim(ir.Pop), prim(ir.Pop)}, ir.NewAssembly(), NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooManyVariables, err.Kind)
}

func TestAnalyzeTooManyOutputs(t *testing.T) {
	_, err := Analyze([]ir.Node{prim(ir.Dup)}, ir.NewAssembly(), NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooManyOutputs, err.Kind)
}

func TestAnalyzeNonScalarPush(t *testing.T) {
	node := &ir.Push{Value: ir.Array(ir.Num(1), 1)}

	_, err := Analyze([]ir.Node{node}, ir.NewAssembly(), NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, NonScalar, err.Kind)
}

func TestAnalyzeUnsupportedPrimitive(t *testing.T) {
	_, err := Analyze([]ir.Node{&ir.ImplPrim{Name: "reduce"}}, ir.NewAssembly(), NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, NotSupported, err.Kind)
}

func TestAnalyzeComplexLiteralCombination(t *testing.T) {
	// discard the initial variable, push 5 then 3; complex takes the top
	// value (3) as the imaginary part => 5 + 3i
	nodes := []ir.Node{prim(ir.Pop), push(5), push(3), prim(ir.Complex)}

	expr, err := Analyze(nodes, ir.NewAssembly(), NopTracer{})
	assert.Nil(t, err)

	coef, ok := expr.AsConstant()
	assert.True(t, ok)
	assert.Equal(t, NewComplex(5, 3), coef)
}

func TestAnalyzeDipPreservesTheDippedValue(t *testing.T) {
	// push(10), Dip[X+1]: dip pops 10, runs (X+1) against the variable
	// underneath, then restores 10 - leaving two values on the stack.
	f := ir.NewSigNode(ir.Seq(push(1), prim(ir.Add)), 1, 1)
	nodes := []ir.Node{push(10), &ir.Mod{Op: ir.Dip, Subs: []ir.SigNode{f}, At: 0}}

	_, err := Analyze(nodes, ir.NewAssembly(), NopTracer{})
	assert.NotNil(t, err)
	assert.Equal(t, TooManyOutputs, err.Kind)
}
