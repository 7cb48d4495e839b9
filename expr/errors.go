package expr

import "errors"

// Sentinel errors for expression construction and evaluation.
var (
	// ErrNegativeIndex indicates a variable index below zero.
	ErrNegativeIndex = errors.New("expr: variable index must be non-negative")

	// ErrIndexRange indicates a variable index outside the variable sequence
	// (during bound propagation) or outside the valuation slice (during Eval).
	ErrIndexRange = errors.New("expr: variable index out of range")

	// ErrNegativeLevel indicates a negative expression-tree level.
	ErrNegativeLevel = errors.New("expr: level must be non-negative")

	// ErrConstArgument indicates a constant in an argument slot that only
	// accepts a variable or a composite child expression.
	ErrConstArgument = errors.New("expr: constant argument must be simplified away")

	// ErrEmptySum indicates a Sum constructed with no entities.
	ErrEmptySum = errors.New("expr: sum needs at least one entity")

	// ErrEmptyProduct indicates a Product constructed with no factors.
	ErrEmptyProduct = errors.New("expr: product needs at least one factor")

	// ErrNilNode indicates a nil child node in a composite position.
	ErrNilNode = errors.New("expr: nil child node")

	// ErrZeroExponent indicates a Power whose constant exponent equals zero.
	ErrZeroExponent = errors.New("expr: power exponent must be non-zero")

	// ErrNegativeBase indicates a Power whose constant base is negative;
	// fractional powers of negative numbers have no real value.
	ErrNegativeBase = errors.New("expr: constant power base must be non-negative")

	// ErrSignPowerExponent indicates a SignPower exponent not greater than one.
	ErrSignPowerExponent = errors.New("expr: signpower exponent must be greater than one")
)
