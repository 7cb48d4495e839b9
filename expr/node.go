package expr

// Kind enumerates the closed set of expression-node kinds.
type Kind uint8

// Node kinds: two leaf kinds followed by the fourteen operator kinds.
const (
	KindSummand Kind = iota
	KindFactor
	KindSum
	KindProduct
	KindSquare
	KindPower
	KindCosine
	KindSine
	KindNegate
	KindDivide
	KindSquareroot
	KindExp
	KindAbs
	KindLn
	KindLog10
	KindSignPower
)

// kindNames uses the wire tag spelling of the OSiL format where one exists.
var kindNames = [...]string{
	KindSummand:    "summand",
	KindFactor:     "factor",
	KindSum:        "sum",
	KindProduct:    "product",
	KindSquare:     "square",
	KindPower:      "power",
	KindCosine:     "cos",
	KindSine:       "sin",
	KindNegate:     "negate",
	KindDivide:     "divide",
	KindSquareroot: "sqrt",
	KindExp:        "exp",
	KindAbs:        "abs",
	KindLn:         "ln",
	KindLog10:      "log10",
	KindSignPower:  "signpower",
}

// String returns the wire-tag name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Node is the sealed interface implemented by every expression-tree node.
// The implementing set is closed to this package; consumers dispatch with a
// type switch or on Kind.
type Node interface {
	// Kind identifies the node variant.
	Kind() Kind

	// Level is the node's depth in its expression tree (root = 0).
	Level() int

	// ComputeBounds recomputes and caches the node's enclosing interval from
	// the per-variable intervals in vars (indexed by variable index).
	// Recomputing from unchanged inputs yields an identical result.
	ComputeBounds(vars []Interval) (Interval, error)

	// Bounds returns the interval cached by the last ComputeBounds call. For
	// a node that has never been computed it returns the kind's natural
	// range (for example [-1, 1] for Cosine; unbounded otherwise).
	Bounds() Interval

	// Eval evaluates the node under the valuation x (indexed by variable
	// index).
	Eval(x []float64) (float64, error)

	// Clone returns a deep, independent copy of the subtree.
	Clone() Node

	// isNode seals the interface to this package.
	isNode()
}

// NoVar marks the variable slot of a Summand or Factor as "no variable":
// the leaf is then a plain constant equal to its coefficient.
const NoVar = -1

// Operand is one argument slot of a unary or binary operator: a composite
// child expression, a variable reference, or a numeric constant. Exactly
// one of the three forms is active: Expr when non-nil, otherwise the
// constant Value when IsConst, otherwise the variable index Var.
type Operand struct {
	Expr    Node
	Var     int
	Value   float64
	IsConst bool
}

// VarOperand returns an Operand referencing variable index idx.
func VarOperand(idx int) Operand {
	return Operand{Var: idx}
}

// ConstOperand returns an Operand holding the constant v.
func ConstOperand(v float64) Operand {
	return Operand{IsConst: true, Value: v}
}

// ChildOperand returns an Operand holding the composite child n.
func ChildOperand(n Node) Operand {
	return Operand{Expr: n}
}

// Atomic reports whether the slot holds a variable or constant (not a
// composite child). Factorable form requires every operand to be atomic.
func (o Operand) Atomic() bool { return o.Expr == nil }

// validate checks the operand against the construction contract.
// allowConst permits a plain constant in the slot.
func (o Operand) validate(allowConst bool) error {
	if o.Expr != nil {
		return nil
	}
	if o.IsConst {
		if !allowConst {
			return ErrConstArgument
		}

		return nil
	}
	if o.Var < 0 {
		return ErrNegativeIndex
	}

	return nil
}

// interval computes the coefficient-scaled interval of the operand: the
// child's (re)computed bounds, the degenerate constant interval, or the
// referenced variable's interval, each scaled by coef with endpoint
// reordering.
func (o Operand) interval(vars []Interval, coef float64) (Interval, error) {
	switch {
	case o.Expr != nil:
		iv, err := o.Expr.ComputeBounds(vars)
		if err != nil {
			return Interval{}, err
		}

		return iv.Scale(coef), nil
	case o.IsConst:
		return Degenerate(o.Value).Scale(coef), nil
	default:
		if o.Var >= len(vars) {
			return Interval{}, ErrIndexRange
		}

		return vars[o.Var].Scale(coef), nil
	}
}

// eval evaluates the operand under x and applies coef.
func (o Operand) eval(x []float64, coef float64) (float64, error) {
	switch {
	case o.Expr != nil:
		v, err := o.Expr.Eval(x)
		if err != nil {
			return 0, err
		}

		return coef * v, nil
	case o.IsConst:
		return coef * o.Value, nil
	default:
		if o.Var < 0 || o.Var >= len(x) {
			return 0, ErrIndexRange
		}

		return coef * x[o.Var], nil
	}
}

// clone returns a deep copy of the operand.
func (o Operand) clone() Operand {
	if o.Expr != nil {
		o.Expr = o.Expr.Clone()
	}

	return o
}

// checkLevel validates a tree level.
func checkLevel(level int) error {
	if level < 0 {
		return ErrNegativeLevel
	}

	return nil
}
