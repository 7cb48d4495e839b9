// Package osil ingests OSiL (Optimization Services instance Language) XML
// documents into a model.Instance.
//
// The adapter is thin, order-preserving and fail-fast: it walks the
// document depth-first, dispatches on tag names, and aborts with a format
// error on anything structurally unexpected - an unknown top-level section,
// a non-singleton objective set, a declared count that disagrees with the
// actual number of entries, or a nonlinear operator tag outside the
// supported set of fourteen. Unknown attributes that do not affect
// semantics are logged as warnings and skipped.
//
// Supported instanceData sections: variables, objectives, constraints,
// linearConstraintCoefficients (run-length compressed sparse encoding via
// el elements with mult/incr attributes), quadraticCoefficients, and
// nonlinearExpressions (recursive operator trees with variable and number
// leaves; constraint index -1 addresses the objective).
//
// After parsing, the instance's cross-references are validated (model
// sentinels such as model.ErrIndexRange and model.ErrFreeConstraint pass
// through) and the bounds of every nonlinear root are computed once via
// the expr bound propagator and cached on the tree.
//
// Errors (sentinel, all format errors in the sense of the error taxonomy):
//
//	- ErrNotOSiL          the root element is not <osil>.
//	- ErrUnknownTag       an unknown structural tag was encountered.
//	- ErrMissingSection   a required section (instanceData, variables) is
//	                      absent.
//	- ErrCountMismatch    a declared count attribute disagrees with the
//	                      parsed entries.
//	- ErrObjectiveCount   the objectives section does not hold exactly one
//	                      objective.
//	- ErrDuplicateCoef    an objective coefficient repeats a variable index.
//	- ErrMissingAttr      a required attribute is absent.
//	- ErrBadAttr          an attribute value failed to parse.
//	- ErrArity            an operator tag has the wrong number of children.
//	- ErrNumberArgument   a number leaf appeared where the operator does
//	                      not accept a constant argument.
//	- ErrUnknownOperator  a nonlinear operator tag outside the supported
//	                      set.
package osil
