// Package expr defines the typed expression-tree model for nonlinear
// mathematical-programming constraints, together with interval bound
// propagation over that tree.
//
// The node set is closed: two leaf kinds (Summand, Factor - a variable
// reference with a coefficient, or a plain constant) and fourteen operator
// kinds (Sum, Product, Square, Power, Cosine, Sine, Negate, Divide,
// Squareroot, Exp, Abs, Ln, Log10, SignPower). All of them implement the
// sealed Node interface, so consumers can switch exhaustively on Kind and
// the compiler keeps the set closed to this package.
//
// Every node carries its depth in the tree (root = 0, child = parent + 1)
// and a cached interval computed by ComputeBounds. Intervals use ±Inf for
// "no finite bound on this side"; see Interval.
//
// Bound propagation is structural: one rule per kind, each one sound
// (the true value range is always contained) and monotone (tightening a
// variable's bounds never widens a computed interval). The numerically
// delicate rules - endpoint-product folds, integer/odd/even exponents,
// periodicity of sine and cosine, zero-straddling denominators, domain
// restrictions of logarithms and roots - are covered one by one in the
// rule files.
//
// Complexity:
//
//	- ComputeBounds: O(n) over the subtree node count, O(depth) stack.
//	- Eval:          O(n) over the subtree node count.
//	- Clone:         O(n), fully independent copy.
//
// Errors (sentinel):
//
//	- ErrNegativeIndex    a variable index below zero was supplied.
//	- ErrIndexRange       a variable index is outside the supplied bounds
//	                      or valuation slice.
//	- ErrNegativeLevel    a negative tree level was supplied.
//	- ErrConstArgument    a constant was supplied where only a variable or
//	                      composite child is allowed (such inputs are
//	                      expected to be simplified away during ingestion).
//	- ErrEmptySum         a Sum was constructed with no entities.
//	- ErrEmptyProduct     a Product was constructed with no factors.
//	- ErrNilNode          a nil child node was supplied.
//	- ErrZeroExponent     a Power was constructed with constant exponent 0.
//	- ErrNegativeBase     a Power was constructed with a negative constant
//	                      base.
//	- ErrSignPowerExponent a SignPower exponent was not greater than one.
package expr
