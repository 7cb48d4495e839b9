package reform

import (
	"fmt"

	"github.com/katalvlaran/factorable/expr"
	"github.com/katalvlaran/factorable/model"
)

// substitute introduces one auxiliary variable y for the sub-expression arg
// and the defining equality constraint -y + arg == 0. The variable inherits
// the bounds propagated through arg, the constraint's nonlinear slot holds
// arg itself, and the constraint index joins the worklist so arg is
// rewritten in a later iteration. Returns the new variable's index.
func (eng *engine) substitute(arg expr.Node) (int, error) {
	iv, err := arg.ComputeBounds(eng.varBounds)
	if err != nil {
		return 0, err
	}

	eng.nAux++
	v := model.NewVariable(fmt.Sprintf("%s%d", eng.opts.AuxPrefix, eng.nAux))
	v.Lb, v.Ub = iv.Lower, iv.Upper
	varIdx := eng.inst.AddVariable(v)
	eng.varBounds = append(eng.varBounds, iv)

	conIdx := eng.inst.AddConstraint(model.ConstraintInfo{
		Name: eng.nextConstraintName(),
		Lb:   0,
		Ub:   0,
	})
	eng.inst.Linear[conIdx] = []model.LinearTerm{{Var: varIdx, Coef: -1.0}}
	eng.inst.Quadratic[conIdx] = nil
	eng.inst.Nonlinear[conIdx] = arg
	eng.worklist = append(eng.worklist, conIdx)

	eng.log.Debug().
		Str("variable", v.Name).
		Int("constraint", conIdx).
		Str("kind", arg.Kind().String()).
		Str("bounds", iv.String()).
		Msg("substituted sub-expression")

	return varIdx, nil
}

// nextConstraintName numbers the constraint about to be appended, 1-based
// so the first introduced constraint of a virgin instance reads e1.
func (eng *engine) nextConstraintName() string {
	return fmt.Sprintf("%s%d", eng.opts.ConstraintPrefix, len(eng.inst.Constraints)+1)
}

// rewriteFraction replaces the quotient at constraint idx by a fresh
// variable z and a new constraint z*denominator == numerator. Both operand
// slots of d must already be atomic and the denominator is a variable by
// construction. The quotient's place in the original constraint is taken
// by z with linear coefficient +1.0.
func (eng *engine) rewriteFraction(idx int, d *expr.Divide) error {
	iv, err := d.ComputeBounds(eng.varBounds)
	if err != nil {
		return err
	}

	eng.nAux++
	z := model.NewVariable(fmt.Sprintf("%s%d", eng.opts.AuxPrefix, eng.nAux))
	z.Lb, z.Ub = iv.Lower, iv.Upper
	zIdx := eng.inst.AddVariable(z)
	eng.varBounds = append(eng.varBounds, iv)

	eng.inst.Linear[idx] = append(eng.inst.Linear[idx], model.LinearTerm{Var: zIdx, Coef: 1.0})
	delete(eng.inst.Nonlinear, idx)

	// z*denominator == numerator, with the constant numerator folded into
	// the constraint bound.
	var bound float64
	var linear []model.LinearTerm
	if d.Num.IsConst {
		if d.NumCoef != 1.0 {
			return fmt.Errorf("%w: coefficient %v at constraint %d", ErrConstNumerator, d.NumCoef, idx)
		}
		bound = d.Num.Value
	} else {
		linear = []model.LinearTerm{{Var: d.Num.Var, Coef: -d.NumCoef}}
	}

	conIdx := eng.inst.AddConstraint(model.ConstraintInfo{
		Name: eng.nextConstraintName(),
		Lb:   bound,
		Ub:   bound,
	})
	eng.inst.Linear[conIdx] = linear
	eng.inst.Quadratic[conIdx] = []model.QuadTerm{{Var1: zIdx, Var2: d.Den.Var, Coef: d.DenCoef}}

	eng.log.Debug().
		Str("variable", z.Name).
		Int("original_constraint", idx).
		Int("fraction_constraint", conIdx).
		Msg("rewrote quotient as bilinear constraint")

	return nil
}
