package model

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/factorable/expr"
)

// ObjectiveKey is the reserved constraint-index key meaning "this term
// belongs to the objective". It never collides with a real constraint
// index, which are always non-negative.
const ObjectiveKey = -1

// Instance is a mutable mathematical-programming instance. Variables and
// constraints are append-only; the three coefficient maps are keyed by
// constraint index (or ObjectiveKey).
type Instance struct {
	Name        string
	Variables   []Variable
	Objective   *Objective
	Constraints []ConstraintInfo

	// Linear maps a constraint index to its linear terms.
	Linear map[int][]LinearTerm
	// Quadratic maps a constraint index to its quadratic terms.
	Quadratic map[int][]QuadTerm
	// Nonlinear maps a constraint index to the root of its residual
	// nonlinear expression; absent keys have no nonlinear part.
	Nonlinear map[int]expr.Node

	completed bool
}

// NewInstance returns an empty instance with initialized coefficient maps.
func NewInstance(name string) *Instance {
	return &Instance{
		Name:      name,
		Linear:    make(map[int][]LinearTerm),
		Quadratic: make(map[int][]QuadTerm),
		Nonlinear: make(map[int]expr.Node),
	}
}

// AddVariable appends v and returns its stable index.
func (in *Instance) AddVariable(v Variable) int {
	in.Variables = append(in.Variables, v)

	return len(in.Variables) - 1
}

// AddConstraint appends c and returns its stable index.
func (in *Instance) AddConstraint(c ConstraintInfo) int {
	in.Constraints = append(in.Constraints, c)

	return len(in.Constraints) - 1
}

// MarkCompleted records that ingestion has finished building the instance.
func (in *Instance) MarkCompleted() { in.completed = true }

// Completed reports whether ingestion has finished building the instance.
func (in *Instance) Completed() bool { return in.completed }

// VariableBounds returns the per-variable intervals, indexed by variable
// index, as consumed by the bound propagator.
func (in *Instance) VariableBounds() []expr.Interval {
	out := make([]expr.Interval, len(in.Variables))
	for i, v := range in.Variables {
		out[i] = expr.Interval{Lower: v.Lb, Upper: v.Ub}
	}

	return out
}

// NonlinearKeys returns the constraint indices holding a nonlinear root in
// ascending order (ObjectiveKey first when present), giving map consumers a
// deterministic traversal.
func (in *Instance) NonlinearKeys() []int {
	keys := make([]int, 0, len(in.Nonlinear))
	for k := range in.Nonlinear {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Clone returns a deep, independent copy: the flat sequences, the
// coefficient maps and every nonlinear tree are copied; no mutable state
// is shared with the receiver.
func (in *Instance) Clone() *Instance {
	cp := NewInstance(in.Name)
	cp.completed = in.completed
	cp.Variables = append([]Variable(nil), in.Variables...)
	cp.Constraints = append([]ConstraintInfo(nil), in.Constraints...)
	cp.Objective = in.Objective.clone()
	for k, terms := range in.Linear {
		cp.Linear[k] = append([]LinearTerm(nil), terms...)
	}
	for k, terms := range in.Quadratic {
		cp.Quadratic[k] = append([]QuadTerm(nil), terms...)
	}
	for k, root := range in.Nonlinear {
		cp.Nonlinear[k] = root.Clone()
	}

	return cp
}

// Validate checks that an objective is present on top of the
// cross-reference invariants of ValidateReferences.
func (in *Instance) Validate() error {
	if in.Objective == nil {
		return ErrNoObjective
	}

	return in.ValidateReferences()
}

// ValidateReferences checks the cross-reference invariants: every
// constraint key in the coefficient maps is a real constraint index or
// ObjectiveKey, every variable index is within the variable sequence, and
// no constraint is free on both sides. A nil objective is accepted.
func (in *Instance) ValidateReferences() error {
	if in.Objective != nil {
		for idx := range in.Objective.Coeffs {
			if err := in.checkVar(idx); err != nil {
				return fmt.Errorf("objective: %w", err)
			}
		}
	}
	for i, c := range in.Constraints {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
	}
	for key, terms := range in.Linear {
		if err := in.checkConstraintKey(key); err != nil {
			return err
		}
		for _, t := range terms {
			if err := in.checkVar(t.Var); err != nil {
				return fmt.Errorf("linear terms of constraint %d: %w", key, err)
			}
		}
	}
	for key, terms := range in.Quadratic {
		if err := in.checkConstraintKey(key); err != nil {
			return err
		}
		for _, t := range terms {
			if err := in.checkVar(t.Var1); err != nil {
				return fmt.Errorf("quadratic terms of constraint %d: %w", key, err)
			}
			if err := in.checkVar(t.Var2); err != nil {
				return fmt.Errorf("quadratic terms of constraint %d: %w", key, err)
			}
		}
	}
	for key := range in.Nonlinear {
		if err := in.checkConstraintKey(key); err != nil {
			return err
		}
	}

	return nil
}

// checkConstraintKey accepts ObjectiveKey or a real constraint index.
func (in *Instance) checkConstraintKey(key int) error {
	if key == ObjectiveKey {
		return nil
	}
	if key < 0 || key >= len(in.Constraints) {
		return fmt.Errorf("%w: constraint key %d", ErrIndexRange, key)
	}

	return nil
}

// checkVar accepts an index into the variable sequence.
func (in *Instance) checkVar(idx int) error {
	if idx < 0 || idx >= len(in.Variables) {
		return fmt.Errorf("%w: variable index %d", ErrIndexRange, idx)
	}

	return nil
}
