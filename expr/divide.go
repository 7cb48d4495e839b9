package expr

import "math"

// Divide evaluates to (NumCoef·numerator)/(DenCoef·denominator). The
// numerator may be a constant (flagged through its Operand); the
// denominator must be a variable or composite child.
type Divide struct {
	Num     Operand
	Den     Operand
	NumCoef float64
	DenCoef float64

	level  int
	bounds Interval
}

// NewDivide constructs a Divide node.
func NewDivide(num, den Operand, numCoef, denCoef float64, level int) (*Divide, error) {
	if err := num.validate(true); err != nil {
		return nil, err
	}
	if err := den.validate(false); err != nil {
		return nil, err
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Divide{Num: num, Den: den, NumCoef: numCoef, DenCoef: denCoef, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindDivide.
func (d *Divide) Kind() Kind { return KindDivide }

// Level returns the node's depth in the expression tree.
func (d *Divide) Level() int { return d.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (d *Divide) Bounds() Interval { return d.bounds }

// ComputeBounds is unbounded on both sides whenever the denominator
// interval straddles or touches zero; otherwise it is the ordered min/max
// of the four corner ratios. An indeterminate corner (∞/∞) also yields an
// unbounded result.
func (d *Divide) ComputeBounds(vars []Interval) (Interval, error) {
	num, err := d.Num.interval(vars, d.NumCoef)
	if err != nil {
		return Interval{}, err
	}
	den, err := d.Den.interval(vars, d.DenCoef)
	if err != nil {
		return Interval{}, err
	}

	if den.Contains(0) {
		d.bounds = Unbounded()

		return d.bounds, nil
	}

	corners := [4]float64{
		num.Lower / den.Lower,
		num.Lower / den.Upper,
		num.Upper / den.Lower,
		num.Upper / den.Upper,
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners {
		if math.IsNaN(c) {
			d.bounds = Unbounded()

			return d.bounds, nil
		}
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	d.bounds = Interval{Lower: lo, Upper: hi}

	return d.bounds, nil
}

// Eval returns (NumCoef·numerator)/(DenCoef·denominator).
func (d *Divide) Eval(x []float64) (float64, error) {
	num, err := d.Num.eval(x, d.NumCoef)
	if err != nil {
		return 0, err
	}
	den, err := d.Den.eval(x, d.DenCoef)
	if err != nil {
		return 0, err
	}

	return num / den, nil
}

// Clone returns a deep copy.
func (d *Divide) Clone() Node {
	cp := *d
	cp.Num = d.Num.clone()
	cp.Den = d.Den.clone()

	return &cp
}

func (d *Divide) isNode() {}
