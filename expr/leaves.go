package expr

// Summand is the atomic entity of a Sum: Coef·x[VarIndex], or the plain
// constant Coef when VarIndex is NoVar.
type Summand struct {
	VarIndex int
	Coef     float64

	level  int
	bounds Interval
}

// NewSummand constructs a Summand. varIndex must be non-negative or NoVar.
func NewSummand(varIndex int, coef float64, level int) (*Summand, error) {
	if varIndex < 0 && varIndex != NoVar {
		return nil, ErrNegativeIndex
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Summand{VarIndex: varIndex, Coef: coef, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindSummand.
func (s *Summand) Kind() Kind { return KindSummand }

// Level returns the node's depth in the expression tree.
func (s *Summand) Level() int { return s.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (s *Summand) Bounds() Interval { return s.bounds }

// ComputeBounds yields the degenerate constant interval, or the referenced
// variable's interval scaled by the coefficient.
func (s *Summand) ComputeBounds(vars []Interval) (Interval, error) {
	if s.VarIndex == NoVar {
		s.bounds = Degenerate(s.Coef)

		return s.bounds, nil
	}
	if s.VarIndex >= len(vars) {
		return Interval{}, ErrIndexRange
	}
	s.bounds = vars[s.VarIndex].Scale(s.Coef)

	return s.bounds, nil
}

// Eval returns Coef·x[VarIndex], or Coef for a constant leaf.
func (s *Summand) Eval(x []float64) (float64, error) {
	if s.VarIndex == NoVar {
		return s.Coef, nil
	}
	if s.VarIndex >= len(x) {
		return 0, ErrIndexRange
	}

	return s.Coef * x[s.VarIndex], nil
}

// Clone returns an independent copy of the leaf.
func (s *Summand) Clone() Node {
	cp := *s

	return &cp
}

func (s *Summand) isNode() {}

// Factor is the atomic entity of a Product: Coef·x[VarIndex], or the plain
// constant Coef when VarIndex is NoVar.
type Factor struct {
	VarIndex int
	Coef     float64

	level  int
	bounds Interval
}

// NewFactor constructs a Factor. varIndex must be non-negative or NoVar.
func NewFactor(varIndex int, coef float64, level int) (*Factor, error) {
	if varIndex < 0 && varIndex != NoVar {
		return nil, ErrNegativeIndex
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Factor{VarIndex: varIndex, Coef: coef, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindFactor.
func (f *Factor) Kind() Kind { return KindFactor }

// Level returns the node's depth in the expression tree.
func (f *Factor) Level() int { return f.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (f *Factor) Bounds() Interval { return f.bounds }

// ComputeBounds yields the degenerate constant interval, or the referenced
// variable's interval scaled by the coefficient.
func (f *Factor) ComputeBounds(vars []Interval) (Interval, error) {
	if f.VarIndex == NoVar {
		f.bounds = Degenerate(f.Coef)

		return f.bounds, nil
	}
	if f.VarIndex >= len(vars) {
		return Interval{}, ErrIndexRange
	}
	f.bounds = vars[f.VarIndex].Scale(f.Coef)

	return f.bounds, nil
}

// Eval returns Coef·x[VarIndex], or Coef for a constant leaf.
func (f *Factor) Eval(x []float64) (float64, error) {
	if f.VarIndex == NoVar {
		return f.Coef, nil
	}
	if f.VarIndex >= len(x) {
		return 0, ErrIndexRange
	}

	return f.Coef * x[f.VarIndex], nil
}

// Clone returns an independent copy of the leaf.
func (f *Factor) Clone() Node {
	cp := *f

	return &cp
}

func (f *Factor) isNode() {}
