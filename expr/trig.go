package expr

import "math"

// Cosine evaluates to cos(Coef·arg).
type Cosine struct{ unary }

// NewCosine constructs a Cosine of a variable or composite argument.
func NewCosine(arg Operand, coef float64, level int) (*Cosine, error) {
	u, err := newUnary(arg, coef, level, Interval{Lower: -1, Upper: 1})
	if err != nil {
		return nil, err
	}

	return &Cosine{unary: u}, nil
}

// Kind returns KindCosine.
func (c *Cosine) Kind() Kind { return KindCosine }

// ComputeBounds tightens [-1, 1] with the periodicity of cosine. The
// minimum -1 is attained iff an odd multiple of π lies inside the scaled
// argument interval; the maximum 1 iff a multiple of 2π does. Both tests
// reduce to "does [lb, ub] shifted into period units contain an integer",
// checked as ceil(lb') <= ub' with no epsilon, so behavior exactly at a
// period boundary follows floating-point rounding.
func (c *Cosine) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := c.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	// -π + k·2π ∈ [lb, ub]  ⟺  k ∈ [(lb+π)/2π, (ub+π)/2π]
	lo := -1.0
	if !periodHit(iv, math.Pi) {
		lo = math.Min(math.Cos(iv.Lower), math.Cos(iv.Upper))
	}
	// k·2π ∈ [lb, ub]  ⟺  k ∈ [lb/2π, ub/2π]
	hi := 1.0
	if !periodHit(iv, 0) {
		hi = math.Max(math.Cos(iv.Lower), math.Cos(iv.Upper))
	}
	c.bounds = Interval{Lower: lo, Upper: hi}

	return c.bounds, nil
}

// Eval returns cos(Coef·arg).
func (c *Cosine) Eval(x []float64) (float64, error) {
	v, err := c.Arg.eval(x, c.Coef)
	if err != nil {
		return 0, err
	}

	return math.Cos(v), nil
}

// Clone returns a deep copy.
func (c *Cosine) Clone() Node {
	cp := *c
	cp.Arg = c.Arg.clone()

	return &cp
}

// Sine evaluates to sin(Coef·arg).
type Sine struct{ unary }

// NewSine constructs a Sine of a variable or composite argument.
func NewSine(arg Operand, coef float64, level int) (*Sine, error) {
	u, err := newUnary(arg, coef, level, Interval{Lower: -1, Upper: 1})
	if err != nil {
		return nil, err
	}

	return &Sine{unary: u}, nil
}

// Kind returns KindSine.
func (s *Sine) Kind() Kind { return KindSine }

// ComputeBounds mirrors the cosine rule with quarter-period offsets: the
// minimum -1 needs -π/2 + k·2π inside the interval, the maximum 1 needs
// -3π/2 + k·2π (equivalently π/2 + k·2π) inside it.
func (s *Sine) ComputeBounds(vars []Interval) (Interval, error) {
	iv, err := s.argInterval(vars)
	if err != nil {
		return Interval{}, err
	}

	lo := -1.0
	if !periodHit(iv, math.Pi/2) {
		lo = math.Min(math.Sin(iv.Lower), math.Sin(iv.Upper))
	}
	hi := 1.0
	if !periodHit(iv, 3*math.Pi/2) {
		hi = math.Max(math.Sin(iv.Lower), math.Sin(iv.Upper))
	}
	s.bounds = Interval{Lower: lo, Upper: hi}

	return s.bounds, nil
}

// Eval returns sin(Coef·arg).
func (s *Sine) Eval(x []float64) (float64, error) {
	v, err := s.Arg.eval(x, s.Coef)
	if err != nil {
		return 0, err
	}

	return math.Sin(v), nil
}

// Clone returns a deep copy.
func (s *Sine) Clone() Node {
	cp := *s
	cp.Arg = s.Arg.clone()

	return &cp
}

// periodHit reports whether -offset + k·2π lies in iv for some integer k,
// i.e. whether the shifted interval in 2π units contains an integer. An
// unbounded side trivially hits.
func periodHit(iv Interval, offset float64) bool {
	lo := (iv.Lower + offset) / (2 * math.Pi)
	hi := (iv.Upper + offset) / (2 * math.Pi)

	return math.Ceil(lo) <= hi
}
