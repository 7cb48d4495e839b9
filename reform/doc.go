// Package reform rewrites the nonlinear constraints of a model.Instance
// into factorable form: after the pass, no operator argument position
// holds a composite sub-expression (only a variable or a constant), every
// Sum entity is an atomic Summand, and every Product is a bilinear atom of
// at most two factors.
//
// The engine works on a deep clone of its input, so the caller's instance
// is never touched. It drains an explicit worklist of constraint indices
// whose nonlinear root still needs rewriting; the worklist starts with all
// nonlinear constraints (the objective's reserved index included) and
// grows as substitutions register new definitional constraints.
//
// The single substitution primitive hoists a composite argument into a
// fresh auxiliary variable: the variable inherits the argument's computed
// interval, a new equality constraint aux == argument is appended (linear
// term (aux, -1) plus the argument as the constraint's nonlinear root),
// and the new constraint index is queued. Each queued residual expression
// is strictly shallower than the tree it was hoisted from, so the pass
// terminates on any finite input.
//
// Divide nodes get a dedicated fraction rewrite: the quotient is replaced
// by a fresh variable z appended linearly to the original constraint, and
// a new constraint z·denominator == numerator is expressed with a single
// quadratic term.
//
// Complexity: O(n) substitutions over the node count n of the original
// nonlinear forest, each appending exactly one variable and one
// constraint.
//
// Errors (sentinel):
//
//	- ErrNilInstance      the input instance is nil.
//	- ErrIncomplete       the input instance has not finished ingestion.
//	- ErrUnsupported      a nonlinear root outside the supported kinds.
//	- ErrConstNumerator   a constant fraction numerator carries a
//	                      coefficient other than 1.0.
package reform
