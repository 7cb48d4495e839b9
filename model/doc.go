// Package model defines the in-memory container for a mathematical-
// programming instance: the ordered variable sequence, the single linear
// objective, the constraint metadata, and the three coefficient maps
// (linear, quadratic, nonlinear) keyed by constraint index.
//
// Index discipline:
//
//	- Variables and constraints live in append-only ordered sequences;
//	  an index handed out once stays valid for the Instance's lifetime.
//	- The three coefficient maps are keyed by constraint index. The
//	  reserved key ObjectiveKey (-1) means "belongs to the objective" and
//	  never collides with a real constraint index.
//	- Equality constraints carry equal lower and upper bounds; a
//	  constraint unbounded on both sides is invalid.
//
// Instances are built by the osil package and transformed by the reform
// package, which works on a deep Clone so the caller's value is never
// touched.
//
// Errors (sentinel):
//
//	- ErrIndexRange      a variable or constraint index is out of range.
//	- ErrFreeConstraint  a constraint is unbounded on both sides.
//	- ErrNoObjective     the instance carries no objective.
package model
