package reform

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/factorable/expr"
	"github.com/katalvlaran/factorable/logger"
	"github.com/katalvlaran/factorable/model"
)

// Sentinel errors of the reformulation engine. All of them are fatal: they
// indicate an instance outside the supported operator set, never a
// condition to approximate around.
var (
	// ErrNilInstance indicates a nil input instance.
	ErrNilInstance = errors.New("reform: instance is nil")

	// ErrIncomplete indicates an instance whose ingestion never completed.
	ErrIncomplete = errors.New("reform: instance ingestion not completed")

	// ErrUnsupported indicates a nonlinear root of an unimplemented kind.
	ErrUnsupported = errors.New("reform: unimplemented nonlinearity")

	// ErrConstNumerator indicates a constant fraction numerator with a
	// coefficient other than 1.0, which the fraction rewrite does not
	// handle.
	ErrConstNumerator = errors.New("reform: constant numerator requires coefficient 1.0")
)

// Options configures the reformulation pass.
//   - AuxPrefix: name prefix of introduced auxiliary variables (aux1, …).
//   - ConstraintPrefix: name prefix of introduced defining constraints,
//     numbered by their 1-based constraint index (e7, …).
type Options struct {
	AuxPrefix        string
	ConstraintPrefix string
}

// DefaultOptions returns the canonical naming scheme.
func DefaultOptions() Options {
	return Options{AuxPrefix: "aux", ConstraintPrefix: "e"}
}

// engine is the mutable state of one reformulation pass over a private
// instance clone.
type engine struct {
	inst *model.Instance
	opts Options

	// varBounds mirrors the variable sequence as intervals and grows in
	// lockstep with it.
	varBounds []expr.Interval

	// worklist holds the constraint indices whose nonlinear root still
	// needs rewriting; substitutions append to it.
	worklist []int

	nAux int
	log  zerolog.Logger
}

// Reformulate rewrites every nonlinear constraint of inst into factorable
// form. It operates on a deep clone - the argument is left untouched - and
// returns the rewritten instance together with the number of auxiliary
// variables introduced. Reformulating an already-factorable instance
// returns zero new variables.
func Reformulate(inst *model.Instance, opts Options) (*model.Instance, int, error) {
	if inst == nil {
		return nil, 0, ErrNilInstance
	}
	if !inst.Completed() {
		return nil, 0, ErrIncomplete
	}
	if opts.AuxPrefix == "" {
		opts.AuxPrefix = DefaultOptions().AuxPrefix
	}
	if opts.ConstraintPrefix == "" {
		opts.ConstraintPrefix = DefaultOptions().ConstraintPrefix
	}

	eng := &engine{
		inst: inst.Clone(),
		opts: opts,
		log:  logger.Logger().With().Str("component", "reform").Logger(),
	}
	eng.varBounds = eng.inst.VariableBounds()
	// Deterministic processing order: ascending constraint index, the
	// objective's reserved index first.
	eng.worklist = eng.inst.NonlinearKeys()

	for i := 0; i < len(eng.worklist); i++ {
		if err := eng.rewrite(eng.worklist[i]); err != nil {
			return nil, 0, err
		}
	}

	eng.log.Info().
		Str("instance", eng.inst.Name).
		Int("aux_variables", eng.nAux).
		Int("constraints", len(eng.inst.Constraints)).
		Msg("reformulated to factorable form")

	return eng.inst, eng.nAux, nil
}

// rewrite brings the nonlinear root at constraint index idx into
// factorable form, queueing any hoisted sub-expressions.
func (eng *engine) rewrite(idx int) error {
	root, ok := eng.inst.Nonlinear[idx]
	if !ok {
		return nil
	}

	switch n := root.(type) {
	case *expr.Sum:
		return eng.rewriteSum(n)
	case *expr.Product:
		return eng.rewriteProduct(n)
	case *expr.Square:
		return eng.atomize(&n.Arg)
	case *expr.Cosine:
		return eng.atomize(&n.Arg)
	case *expr.Sine:
		return eng.atomize(&n.Arg)
	case *expr.Negate:
		return eng.atomize(&n.Arg)
	case *expr.Squareroot:
		return eng.atomize(&n.Arg)
	case *expr.Exp:
		return eng.atomize(&n.Arg)
	case *expr.Abs:
		return eng.atomize(&n.Arg)
	case *expr.Ln:
		return eng.atomize(&n.Arg)
	case *expr.Log10:
		return eng.atomize(&n.Arg)
	case *expr.Power:
		if err := eng.atomize(&n.Base); err != nil {
			return err
		}

		return eng.atomize(&n.Exponent)
	case *expr.Divide:
		if err := eng.atomize(&n.Num); err != nil {
			return err
		}
		if err := eng.atomize(&n.Den); err != nil {
			return err
		}

		return eng.rewriteFraction(idx, n)
	case *expr.SignPower:
		// Atomic by construction.
		return nil
	default:
		return fmt.Errorf("%w: %s at constraint %d", ErrUnsupported, root.Kind(), idx)
	}
}

// rewriteSum replaces every composite entity with a Summand pointing at a
// fresh auxiliary variable.
func (eng *engine) rewriteSum(n *expr.Sum) error {
	for i, entity := range n.Entities {
		if _, atomic := entity.(*expr.Summand); atomic {
			continue
		}
		auxIdx, err := eng.substitute(entity)
		if err != nil {
			return err
		}
		leaf, err := expr.NewSummand(auxIdx, 1.0, 1)
		if err != nil {
			return err
		}
		if _, err := leaf.ComputeBounds(eng.varBounds); err != nil {
			return err
		}
		n.Entities[i] = leaf
	}

	return nil
}

// rewriteProduct first replaces every composite factor with a fresh
// variable Factor, then reduces the variable factors to a bilinear chain:
// the two most recently added ones are folded into a two-factor
// sub-product, substituted, and the resulting Factor pushed back until at
// most two remain.
func (eng *engine) rewriteProduct(n *expr.Product) error {
	// Positions of factors referencing a variable, in ascending order.
	var varPos []int
	for i, factor := range n.Factors {
		if leaf, atomic := factor.(*expr.Factor); atomic {
			if leaf.VarIndex != expr.NoVar {
				varPos = append(varPos, i)
			}

			continue
		}
		factorAux, err := eng.substituteFactor(factor)
		if err != nil {
			return err
		}
		n.Factors[i] = factorAux
		varPos = append(varPos, i)
	}

	for len(varPos) > 2 {
		// Pop the two most recently added positions; i1 > i2, so removing
		// i1 first leaves i2 valid.
		i1 := varPos[len(varPos)-1]
		i2 := varPos[len(varPos)-2]
		varPos = varPos[:len(varPos)-2]

		sub, err := expr.NewProduct([]expr.Node{n.Factors[i1], n.Factors[i2]}, 2)
		if err != nil {
			return err
		}
		if _, err := sub.ComputeBounds(eng.varBounds); err != nil {
			return err
		}
		factorAux, err := eng.substituteFactor(sub)
		if err != nil {
			return err
		}

		n.Factors = append(n.Factors[:i1], n.Factors[i1+1:]...)
		n.Factors = append(n.Factors[:i2], n.Factors[i2+1:]...)
		n.Factors = append(n.Factors, factorAux)
		varPos = append(varPos, len(n.Factors)-1)
	}

	return nil
}

// substituteFactor substitutes node and wraps the fresh variable in a
// Factor with computed bounds.
func (eng *engine) substituteFactor(node expr.Node) (*expr.Factor, error) {
	auxIdx, err := eng.substitute(node)
	if err != nil {
		return nil, err
	}
	leaf, err := expr.NewFactor(auxIdx, 1.0, 1)
	if err != nil {
		return nil, err
	}
	if _, err := leaf.ComputeBounds(eng.varBounds); err != nil {
		return nil, err
	}

	return leaf, nil
}

// atomize replaces a composite operand slot with a reference to a fresh
// auxiliary variable; atomic slots are left alone.
func (eng *engine) atomize(op *expr.Operand) error {
	if op.Atomic() {
		return nil
	}
	auxIdx, err := eng.substitute(op.Expr)
	if err != nil {
		return err
	}
	*op = expr.VarOperand(auxIdx)

	return nil
}
