package expr

import "math"

// unary carries the shared state of every single-argument operator: the
// argument slot, the multiplicative coefficient applied to the argument,
// the tree level and the cached bounds.
type unary struct {
	Arg  Operand
	Coef float64

	level  int
	bounds Interval
}

// newUnary validates the shared construction contract. Constants are never
// allowed as the sole argument of a unary operator; such expressions are
// expected to be folded away during ingestion.
func newUnary(arg Operand, coef float64, level int, init Interval) (unary, error) {
	if err := arg.validate(false); err != nil {
		return unary{}, err
	}
	if err := checkLevel(level); err != nil {
		return unary{}, err
	}

	return unary{Arg: arg, Coef: coef, level: level, bounds: init}, nil
}

// Level returns the node's depth in the expression tree.
func (u *unary) Level() int { return u.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (u *unary) Bounds() Interval { return u.bounds }

// argInterval computes the coefficient-scaled interval of the argument.
func (u *unary) argInterval(vars []Interval) (Interval, error) {
	return u.Arg.interval(vars, u.Coef)
}

func (u *unary) isNode() {}

// Square evaluates to (Coef·arg)².
type Square struct{ unary }

// NewSquare constructs a Square of a variable or composite argument.
func NewSquare(arg Operand, coef float64, level int) (*Square, error) {
	u, err := newUnary(arg, coef, level, Unbounded())
	if err != nil {
		return nil, err
	}

	return &Square{unary: u}, nil
}

// Kind returns KindSquare.
func (s *Square) Kind() Kind { return KindSquare }

// ComputeBounds squares the argument interval: lower 0 when the argument
// straddles zero, otherwise the smaller squared endpoint; upper the larger
// squared endpoint.
func (s *Square) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := s.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	lo2, hi2 := iv.Lower*iv.Lower, iv.Upper*iv.Upper
	lo := math.Min(lo2, hi2)
	if iv.Contains(0) {
		lo = 0
	}
	s.bounds = sanitize(Interval{Lower: lo, Upper: math.Max(lo2, hi2)})

	return s.bounds, nil
}

// Eval returns (Coef·arg)².
func (s *Square) Eval(x []float64) (float64, error) {
	v, err := s.Arg.eval(x, s.Coef)
	if err != nil {
		return 0, err
	}

	return v * v, nil
}

// Clone returns a deep copy.
func (s *Square) Clone() Node {
	cp := *s
	cp.Arg = s.Arg.clone()

	return &cp
}

// Negate evaluates to −(Coef·arg).
type Negate struct{ unary }

// NewNegate constructs a Negate of a variable or composite argument.
func NewNegate(arg Operand, coef float64, level int) (*Negate, error) {
	u, err := newUnary(arg, coef, level, Unbounded())
	if err != nil {
		return nil, err
	}

	return &Negate{unary: u}, nil
}

// Kind returns KindNegate.
func (n *Negate) Kind() Kind { return KindNegate }

// ComputeBounds scales the argument interval by −1, swapping the sides.
func (n *Negate) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := n.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}
	n.bounds = iv.Scale(-1)

	return n.bounds, nil
}

// Eval returns −(Coef·arg).
func (n *Negate) Eval(x []float64) (float64, error) {
	v, err := n.Arg.eval(x, n.Coef)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

// Clone returns a deep copy.
func (n *Negate) Clone() Node {
	cp := *n
	cp.Arg = n.Arg.clone()

	return &cp
}

// Squareroot evaluates to √(Coef·arg).
type Squareroot struct{ unary }

// NewSquareroot constructs a Squareroot of a variable or composite argument.
func NewSquareroot(arg Operand, coef float64, level int) (*Squareroot, error) {
	u, err := newUnary(arg, coef, level, Interval{Lower: 0, Upper: math.Inf(1)})
	if err != nil {
		return nil, err
	}

	return &Squareroot{unary: u}, nil
}

// Kind returns KindSquareroot.
func (r *Squareroot) Kind() Kind { return KindSquareroot }

// ComputeBounds takes √lb when lb > 0 (otherwise 0) and √ub when ub is
// finite (otherwise unbounded above).
func (r *Squareroot) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := r.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	lo := 0.0
	if iv.Lower > 0 {
		lo = math.Sqrt(iv.Lower)
	}
	hi := math.Inf(1)
	if iv.FiniteUpper() {
		hi = math.Sqrt(iv.Upper)
	}
	r.bounds = sanitize(Interval{Lower: lo, Upper: hi})

	return r.bounds, nil
}

// Eval returns √(Coef·arg).
func (r *Squareroot) Eval(x []float64) (float64, error) {
	v, err := r.Arg.eval(x, r.Coef)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Clone returns a deep copy.
func (r *Squareroot) Clone() Node {
	cp := *r
	cp.Arg = r.Arg.clone()

	return &cp
}

// Exp evaluates to e^(Coef·arg).
type Exp struct{ unary }

// NewExp constructs an Exp of a variable or composite argument.
func NewExp(arg Operand, coef float64, level int) (*Exp, error) {
	u, err := newUnary(arg, coef, level, Interval{Lower: 0, Upper: math.Inf(1)})
	if err != nil {
		return nil, err
	}

	return &Exp{unary: u}, nil
}

// Kind returns KindExp.
func (e *Exp) Kind() Kind { return KindExp }

// ComputeBounds exponentiates the endpoints: the lower side stays 0 when
// the argument is unbounded below, the upper side stays unbounded when the
// argument is unbounded above.
func (e *Exp) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := e.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	lo := 0.0
	if iv.FiniteLower() {
		lo = math.Exp(iv.Lower)
	}
	hi := math.Inf(1)
	if iv.FiniteUpper() {
		hi = math.Exp(iv.Upper)
	}
	e.bounds = Interval{Lower: lo, Upper: hi}

	return e.bounds, nil
}

// Eval returns e^(Coef·arg).
func (e *Exp) Eval(x []float64) (float64, error) {
	v, err := e.Arg.eval(x, e.Coef)
	if err != nil {
		return 0, err
	}

	return math.Exp(v), nil
}

// Clone returns a deep copy.
func (e *Exp) Clone() Node {
	cp := *e
	cp.Arg = e.Arg.clone()

	return &cp
}

// Abs evaluates to |Coef·arg|.
type Abs struct{ unary }

// NewAbs constructs an Abs of a variable or composite argument.
func NewAbs(arg Operand, coef float64, level int) (*Abs, error) {
	u, err := newUnary(arg, coef, level, Interval{Lower: 0, Upper: math.Inf(1)})
	if err != nil {
		return nil, err
	}

	return &Abs{unary: u}, nil
}

// Kind returns KindAbs.
func (a *Abs) Kind() Kind { return KindAbs }

// ComputeBounds keeps 0 as the lower side while the argument straddles
// zero, otherwise takes the smaller absolute endpoint; the upper side is
// the larger absolute endpoint.
func (a *Abs) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := a.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	lo := 0.0
	if !iv.Contains(0) {
		lo = math.Min(math.Abs(iv.Lower), math.Abs(iv.Upper))
	}
	a.bounds = Interval{Lower: lo, Upper: math.Max(math.Abs(iv.Lower), math.Abs(iv.Upper))}

	return a.bounds, nil
}

// Eval returns |Coef·arg|.
func (a *Abs) Eval(x []float64) (float64, error) {
	v, err := a.Arg.eval(x, a.Coef)
	if err != nil {
		return 0, err
	}

	return math.Abs(v), nil
}

// Clone returns a deep copy.
func (a *Abs) Clone() Node {
	cp := *a
	cp.Arg = a.Arg.clone()

	return &cp
}

// Ln evaluates to ln(Coef·arg).
type Ln struct{ unary }

// NewLn constructs an Ln of a variable or composite argument.
func NewLn(arg Operand, coef float64, level int) (*Ln, error) {
	u, err := newUnary(arg, coef, level, Unbounded())
	if err != nil {
		return nil, err
	}

	return &Ln{unary: u}, nil
}

// Kind returns KindLn.
func (l *Ln) Kind() Kind { return KindLn }

// ComputeBounds takes ln(lb) only when lb > 0 and ln(ub) only when ub is
// finite; the remaining sides stay unbounded.
func (l *Ln) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := l.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}
	l.bounds = sanitize(logBounds(iv, math.Log))

	return l.bounds, nil
}

// Eval returns ln(Coef·arg).
func (l *Ln) Eval(x []float64) (float64, error) {
	v, err := l.Arg.eval(x, l.Coef)
	if err != nil {
		return 0, err
	}

	return math.Log(v), nil
}

// Clone returns a deep copy.
func (l *Ln) Clone() Node {
	cp := *l
	cp.Arg = l.Arg.clone()

	return &cp
}

// Log10 evaluates to log₁₀(Coef·arg).
type Log10 struct{ unary }

// NewLog10 constructs a Log10 of a variable or composite argument.
func NewLog10(arg Operand, coef float64, level int) (*Log10, error) {
	u, err := newUnary(arg, coef, level, Unbounded())
	if err != nil {
		return nil, err
	}

	return &Log10{unary: u}, nil
}

// Kind returns KindLog10.
func (l *Log10) Kind() Kind { return KindLog10 }

// ComputeBounds mirrors the Ln rule with the base-10 logarithm.
func (l *Log10) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := l.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}
	l.bounds = sanitize(logBounds(iv, math.Log10))

	return l.bounds, nil
}

// Eval returns log₁₀(Coef·arg).
func (l *Log10) Eval(x []float64) (float64, error) {
	v, err := l.Arg.eval(x, l.Coef)
	if err != nil {
		return 0, err
	}

	return math.Log10(v), nil
}

// Clone returns a deep copy.
func (l *Log10) Clone() Node {
	cp := *l
	cp.Arg = l.Arg.clone()

	return &cp
}

// logBounds applies the shared logarithm domain rule: the lower side is
// defined only for a strictly positive lb, the upper side only for a
// finite ub.
func logBounds(iv Interval, log func(float64) float64) Interval {
	lo := math.Inf(-1)
	if iv.Lower > 0 {
		lo = log(iv.Lower)
	}
	hi := math.Inf(1)
	if iv.FiniteUpper() {
		hi = log(iv.Upper)
	}

	return Interval{Lower: lo, Upper: hi}
}
