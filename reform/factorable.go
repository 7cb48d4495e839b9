package reform

import (
	"github.com/katalvlaran/factorable/expr"
	"github.com/katalvlaran/factorable/model"
)

// IsFactorable reports whether every nonlinear root of inst is in
// factorable form: all operand slots atomic, every Sum entity a Summand,
// and every Product a chain of at most two variable factors. It is the
// postcondition of Reformulate and a cheap no-op check before calling it.
func IsFactorable(inst *model.Instance) bool {
	if inst == nil {
		return false
	}
	for _, key := range inst.NonlinearKeys() {
		if !factorableRoot(inst.Nonlinear[key]) {
			return false
		}
	}

	return true
}

// factorableRoot checks one nonlinear root without descending past the
// first operator: a factorable root has no composite children at all.
func factorableRoot(root expr.Node) bool {
	switch n := root.(type) {
	case *expr.Summand, *expr.Factor, *expr.SignPower:
		return true
	case *expr.Sum:
		for _, entity := range n.Entities {
			if _, ok := entity.(*expr.Summand); !ok {
				return false
			}
		}

		return true
	case *expr.Product:
		nVars := 0
		for _, factor := range n.Factors {
			leaf, ok := factor.(*expr.Factor)
			if !ok {
				return false
			}
			if leaf.VarIndex != expr.NoVar {
				nVars++
			}
		}

		return nVars <= 2
	case *expr.Square:
		return n.Arg.Atomic()
	case *expr.Cosine:
		return n.Arg.Atomic()
	case *expr.Sine:
		return n.Arg.Atomic()
	case *expr.Negate:
		return n.Arg.Atomic()
	case *expr.Squareroot:
		return n.Arg.Atomic()
	case *expr.Exp:
		return n.Arg.Atomic()
	case *expr.Abs:
		return n.Arg.Atomic()
	case *expr.Ln:
		return n.Arg.Atomic()
	case *expr.Log10:
		return n.Arg.Atomic()
	case *expr.Power:
		return n.Base.Atomic() && n.Exponent.Atomic()
	case *expr.Divide:
		// A quotient always leaves through the fraction rewrite; its
		// presence means reformulation has not run.
		return false
	default:
		return false
	}
}
