package model

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for instance construction and validation.
var (
	// ErrIndexRange indicates a variable or constraint index out of range.
	ErrIndexRange = errors.New("model: index out of range")

	// ErrFreeConstraint indicates a constraint unbounded on both sides.
	ErrFreeConstraint = errors.New("model: constraint unbounded on both sides")

	// ErrNoObjective indicates an instance without an objective.
	ErrNoObjective = errors.New("model: instance has no objective")
)

// VarKind classifies a decision variable.
type VarKind uint8

// Variable kinds, in OSiL tag order C, I, B.
const (
	Continuous VarKind = iota
	Integer
	Binary
)

// String returns the OSiL type letter of the kind.
func (k VarKind) String() string {
	switch k {
	case Integer:
		return "I"
	case Binary:
		return "B"
	default:
		return "C"
	}
}

// Variable is a decision variable. Bounds use ±Inf for "unbounded"; fresh
// variables default to [0, +Inf) and kind Continuous.
type Variable struct {
	Name string
	Lb   float64
	Ub   float64
	Kind VarKind
}

// NewVariable returns a continuous variable with the default bounds
// [0, +Inf).
func NewVariable(name string) Variable {
	return Variable{Name: name, Lb: 0, Ub: math.Inf(1), Kind: Continuous}
}

// Direction is the optimization sense of the objective.
type Direction uint8

// Objective directions.
const (
	Minimize Direction = iota
	Maximize
)

// String returns the OSiL spelling of the direction.
func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}

	return "min"
}

// ParseDirection maps the OSiL maxOrMin attribute to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "min":
		return Minimize, nil
	case "max":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("model: unknown objective direction %q", s)
	}
}

// Objective is the single linear objective of an instance: a mapping from
// variable index to coefficient plus a constant offset.
type Objective struct {
	Name      string
	Direction Direction
	Coeffs    map[int]float64
	Constant  float64
}

// Eval evaluates the linear objective under the valuation x.
func (o *Objective) Eval(x []float64) (float64, error) {
	total := o.Constant
	for idx, coef := range o.Coeffs {
		if idx < 0 || idx >= len(x) {
			return 0, ErrIndexRange
		}
		total += coef * x[idx]
	}

	return total, nil
}

// clone returns a deep copy of the objective.
func (o *Objective) clone() *Objective {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Coeffs = make(map[int]float64, len(o.Coeffs))
	for k, v := range o.Coeffs {
		cp.Coeffs[k] = v
	}

	return &cp
}

// ConstraintInfo is the metadata of one constraint: its name and its
// bounds (±Inf for unbounded; equal bounds express an equality).
type ConstraintInfo struct {
	Name string
	Lb   float64
	Ub   float64
}

// Equality reports whether the constraint fixes its body to a single value.
func (c ConstraintInfo) Equality() bool {
	return c.Lb == c.Ub && !math.IsInf(c.Lb, 0)
}

// Validate rejects a constraint unbounded on both sides.
func (c ConstraintInfo) Validate() error {
	if math.IsInf(c.Lb, -1) && math.IsInf(c.Ub, 1) {
		return fmt.Errorf("%w: %q", ErrFreeConstraint, c.Name)
	}

	return nil
}

// LinearTerm is one entry of a constraint's linear part.
type LinearTerm struct {
	Var  int
	Coef float64
}

// QuadTerm is one entry of a constraint's quadratic part:
// Coef·x[Var1]·x[Var2].
type QuadTerm struct {
	Var1 int
	Var2 int
	Coef float64
}
