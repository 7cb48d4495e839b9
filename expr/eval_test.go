package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorable/expr"
)

//----------------------------------------------------------------------------//
// Eval Tests
//----------------------------------------------------------------------------//

// TestEval_CompositeTree evaluates 2x + x·y + (2y)² at (x, y) = (3, 4).
func TestEval_CompositeTree(t *testing.T) {
	prod, err := expr.NewProduct([]expr.Node{
		mustFactor(t, 0, 1.0),
		mustFactor(t, 1, 1.0),
	}, 1)
	require.NoError(t, err)
	sq, err := expr.NewSquare(expr.VarOperand(1), 2.0, 1)
	require.NoError(t, err)
	sum, err := expr.NewSum([]expr.Node{mustSummand(t, 0, 2.0), prod, sq}, 0)
	require.NoError(t, err)

	got, err := sum.Eval([]float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 6+12+64, got, 1e-12)
}

// TestEval_Operators spot-checks the operator semantics at a single point.
func TestEval_Operators(t *testing.T) {
	x := []float64{2.0, 0.25}

	div, err := expr.NewDivide(expr.VarOperand(0), expr.VarOperand(1), 3.0, 1.0, 0)
	require.NoError(t, err)
	got, err := div.Eval(x)
	require.NoError(t, err)
	require.InDelta(t, 24.0, got, 1e-12)

	pow, err := expr.NewPower(expr.VarOperand(0), expr.ConstOperand(3), 1.0, 1.0, 0)
	require.NoError(t, err)
	got, err = pow.Eval(x)
	require.NoError(t, err)
	require.InDelta(t, 8.0, got, 1e-12)

	sp, err := expr.NewSignPower(0, 2.0, 0)
	require.NoError(t, err)
	got, err = sp.Eval([]float64{-3.0})
	require.NoError(t, err)
	require.InDelta(t, -9.0, got, 1e-12)

	neg, err := expr.NewNegate(expr.VarOperand(0), 2.0, 0)
	require.NoError(t, err)
	got, err = neg.Eval(x)
	require.NoError(t, err)
	require.InDelta(t, -4.0, got, 1e-12)

	cosine, err := expr.NewCosine(expr.VarOperand(0), 1.0, 0)
	require.NoError(t, err)
	got, err = cosine.Eval([]float64{math.Pi})
	require.NoError(t, err)
	require.InDelta(t, -1.0, got, 1e-12)
}

// TestEval_IndexRange verifies the out-of-range sentinel on every leaf form.
func TestEval_IndexRange(t *testing.T) {
	x := []float64{1.0}

	s := mustSummand(t, 3, 1.0)
	_, err := s.Eval(x)
	require.ErrorIs(t, err, expr.ErrIndexRange)

	sq, err := expr.NewSquare(expr.VarOperand(3), 1.0, 0)
	require.NoError(t, err)
	_, err = sq.Eval(x)
	require.ErrorIs(t, err, expr.ErrIndexRange)

	sp, err := expr.NewSignPower(3, 2.0, 0)
	require.NoError(t, err)
	_, err = sp.Eval(x)
	require.ErrorIs(t, err, expr.ErrIndexRange)
}

//----------------------------------------------------------------------------//
// Clone Tests
//----------------------------------------------------------------------------//

// TestClone_Independence mutates the original tree after cloning and checks
// the clone is unaffected, including its cached bounds.
func TestClone_Independence(t *testing.T) {
	inner, err := expr.NewSquare(expr.VarOperand(0), 1.0, 1)
	require.NoError(t, err)
	sum, err := expr.NewSum([]expr.Node{mustSummand(t, 0, 1.0), inner}, 0)
	require.NoError(t, err)

	cp := sum.Clone().(*expr.Sum)

	// Swap an entity of the original; the clone keeps its own.
	sum.Entities[1] = mustSummand(t, 0, 100.0)

	got, err := cp.Eval([]float64{3})
	require.NoError(t, err)
	require.InDelta(t, 3+9, got, 1e-12)

	mutated, err := sum.Eval([]float64{3})
	require.NoError(t, err)
	require.InDelta(t, 3+300, mutated, 1e-12)

	// Bounds caches are independent too.
	vars := []expr.Interval{{Lower: 0, Upper: 2}}
	_, err = cp.ComputeBounds(vars)
	require.NoError(t, err)
	require.Equal(t, expr.Unbounded(), sum.Entities[0].(*expr.Summand).Bounds())
}

// TestClone_OperandChild verifies deep copying through an operand slot.
func TestClone_OperandChild(t *testing.T) {
	child, err := expr.NewSum([]expr.Node{mustSummand(t, 0, 1.0)}, 1)
	require.NoError(t, err)
	sq, err := expr.NewSquare(expr.ChildOperand(child), 1.0, 0)
	require.NoError(t, err)

	cp := sq.Clone().(*expr.Square)
	require.NotSame(t, sq.Arg.Expr, cp.Arg.Expr)

	child.Entities[0] = mustSummand(t, 0, -7.0)
	got, err := cp.Eval([]float64{2})
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-12)
}
