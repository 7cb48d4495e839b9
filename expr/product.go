package expr

import "math"

// Product evaluates to the product of its factors. Factors are Factor
// leaves or composite nodes; after reformulation a Product is a bilinear
// atom: at most two factors, each an atomic Factor.
type Product struct {
	Factors []Node

	level  int
	bounds Interval
}

// NewProduct constructs a Product over a non-empty factor list.
func NewProduct(factors []Node, level int) (*Product, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyProduct
	}
	for _, f := range factors {
		if f == nil {
			return nil, ErrNilNode
		}
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Product{Factors: factors, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindProduct.
func (p *Product) Kind() Kind { return KindProduct }

// Level returns the node's depth in the expression tree.
func (p *Product) Level() int { return p.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (p *Product) Bounds() Interval { return p.bounds }

// ComputeBounds folds the factor intervals left to right, starting from
// the neutral interval [1, 1]. For each factor [flb, fub] the new running
// interval is the min and max over the four endpoint products, so the
// fold stays sound for any sign combination of the running bounds and
// the factor interval.
func (p *Product) ComputeBounds(vars []Interval) (Interval, error) {
	runLo, runHi := 1.0, 1.0
	for _, f := range p.Factors {
		iv, err := f.ComputeBounds(vars)
		if err != nil {
			return Interval{}, err
		}

		cands := [4]float64{
			mulBound(runLo, iv.Lower),
			mulBound(runLo, iv.Upper),
			mulBound(runHi, iv.Lower),
			mulBound(runHi, iv.Upper),
		}
		runLo, runHi = cands[0], cands[0]
		for _, c := range cands[1:] {
			runLo = math.Min(runLo, c)
			runHi = math.Max(runHi, c)
		}
	}
	p.bounds = sanitize(Interval{Lower: runLo, Upper: runHi})

	return p.bounds, nil
}

// Eval returns the product of the evaluated factors.
func (p *Product) Eval(x []float64) (float64, error) {
	total := 1.0
	for _, f := range p.Factors {
		v, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		total *= v
	}

	return total, nil
}

// Clone returns a deep copy of the product and its factors.
func (p *Product) Clone() Node {
	cp := *p
	cp.Factors = make([]Node, len(p.Factors))
	for i, f := range p.Factors {
		cp.Factors[i] = f.Clone()
	}

	return &cp
}

func (p *Product) isNode() {}
