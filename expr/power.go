package expr

import (
	"math"

	"github.com/katalvlaran/factorable/logger"
)

// Power evaluates to (BaseCoef·base)^(ExpCoef·exponent). Base and exponent
// are independent operand slots; a constant base must be non-negative and a
// constant exponent non-zero.
type Power struct {
	Base     Operand
	Exponent Operand
	BaseCoef float64
	ExpCoef  float64

	level  int
	bounds Interval
}

// NewPower constructs a Power node.
func NewPower(base, exponent Operand, baseCoef, expCoef float64, level int) (*Power, error) {
	if err := base.validate(true); err != nil {
		return nil, err
	}
	if base.IsConst && base.Value < 0 {
		return nil, ErrNegativeBase
	}
	if err := exponent.validate(true); err != nil {
		return nil, err
	}
	if exponent.IsConst && exponent.Value == 0 {
		return nil, ErrZeroExponent
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Power{
		Base:     base,
		Exponent: exponent,
		BaseCoef: baseCoef,
		ExpCoef:  expCoef,
		level:    level,
		bounds:   Unbounded(),
	}, nil
}

// Kind returns KindPower.
func (p *Power) Kind() Kind { return KindPower }

// Level returns the node's depth in the expression tree.
func (p *Power) Level() int { return p.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (p *Power) Bounds() Interval { return p.bounds }

// ComputeBounds distinguishes three regimes. A degenerate integer exponent
// k gets the even/odd case split (even: lower 0 when the base straddles
// zero, otherwise the smaller endpoint power; odd: monotone endpoint
// powers). A possibly-negative base with a non-degenerate exponent interval
// has no well-defined real range, so the cached bounds are left untouched
// and an advisory is logged. Otherwise the corner formula
// [min(lb^ub_e, ub^lb_e), max(lb^lb_e, ub^ub_e)] applies.
func (p *Power) ComputeBounds(vars []Interval) (Interval, error) {
	base, err := p.Base.interval(vars, p.BaseCoef)
	if err != nil {
		return Interval{}, err
	}
	exp, err := p.Exponent.interval(vars, p.ExpCoef)
	if err != nil {
		return Interval{}, err
	}

	switch {
	case exp.Lower == exp.Upper && exp.FiniteUpper() && exp.Upper == math.Trunc(exp.Upper):
		k := exp.Upper
		loP := math.Pow(base.Lower, k)
		hiP := math.Pow(base.Upper, k)
		if math.Mod(k, 2) == 0 {
			lo := math.Min(loP, hiP)
			if base.Contains(0) {
				lo = 0
			}
			p.bounds = sanitize(Interval{Lower: lo, Upper: math.Max(loP, hiP)})
		} else {
			// Odd exponents are monotone in the base.
			p.bounds = sanitize(Interval{Lower: loP, Upper: hiP})
		}
	case base.Lower < 0 && exp.Lower != exp.Upper:
		// Fractional powers of a negative base are not real-valued; keep the
		// cached (initially unbounded) interval and advise.
		log := logger.Logger()
		log.Warn().
			Str("base", base.String()).
			Str("exponent", exp.String()).
			Msg("possibly negative base for power expression; bounds left open")
	default:
		p.bounds = sanitize(Interval{
			Lower: math.Min(math.Pow(base.Lower, exp.Upper), math.Pow(base.Upper, exp.Lower)),
			Upper: math.Max(math.Pow(base.Lower, exp.Lower), math.Pow(base.Upper, exp.Upper)),
		})
	}

	return p.bounds, nil
}

// Eval returns (BaseCoef·base)^(ExpCoef·exponent).
func (p *Power) Eval(x []float64) (float64, error) {
	base, err := p.Base.eval(x, p.BaseCoef)
	if err != nil {
		return 0, err
	}
	exp, err := p.Exponent.eval(x, p.ExpCoef)
	if err != nil {
		return 0, err
	}

	return math.Pow(base, exp), nil
}

// Clone returns a deep copy.
func (p *Power) Clone() Node {
	cp := *p
	cp.Base = p.Base.clone()
	cp.Exponent = p.Exponent.clone()

	return &cp
}

func (p *Power) isNode() {}

// SignPower evaluates to x·|x|^(Exponent−1) for the variable x referenced
// by Base. The base is restricted to a plain variable and the exponent to a
// constant greater than one, so a SignPower is atomic by construction.
type SignPower struct {
	Base     int
	Exponent float64

	level  int
	bounds Interval
}

// NewSignPower constructs a SignPower node.
func NewSignPower(base int, exponent float64, level int) (*SignPower, error) {
	if base < 0 {
		return nil, ErrNegativeIndex
	}
	if exponent <= 1 {
		return nil, ErrSignPowerExponent
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &SignPower{Base: base, Exponent: exponent, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindSignPower.
func (p *SignPower) Kind() Kind { return KindSignPower }

// Level returns the node's depth in the expression tree.
func (p *SignPower) Level() int { return p.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (p *SignPower) Bounds() Interval { return p.bounds }

// ComputeBounds maps the endpoints through the odd, monotone function
// v·|v|^(p−1); an infinite endpoint stays unbounded.
func (p *SignPower) ComputeBounds(vars []Interval) (Interval, error) {
	if p.Base >= len(vars) {
		return Interval{}, ErrIndexRange
	}
	iv := vars[p.Base]

	lo := math.Inf(-1)
	if iv.FiniteLower() {
		lo = signPow(iv.Lower, p.Exponent)
	}
	hi := math.Inf(1)
	if iv.FiniteUpper() {
		hi = signPow(iv.Upper, p.Exponent)
	}
	p.bounds = Interval{Lower: lo, Upper: hi}

	return p.bounds, nil
}

// Eval returns x·|x|^(Exponent−1).
func (p *SignPower) Eval(x []float64) (float64, error) {
	if p.Base >= len(x) {
		return 0, ErrIndexRange
	}

	return signPow(x[p.Base], p.Exponent), nil
}

// Clone returns an independent copy.
func (p *SignPower) Clone() Node {
	cp := *p

	return &cp
}

func (p *SignPower) isNode() {}

// signPow computes v·|v|^(exp−1).
func signPow(v, exp float64) float64 {
	return v * math.Pow(math.Abs(v), exp-1)
}
