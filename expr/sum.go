package expr

import "math"

// Sum evaluates to the sum of its entities. Entities are Summand leaves or
// composite nodes; after reformulation every entity is an atomic Summand.
type Sum struct {
	Entities []Node

	level  int
	bounds Interval
}

// NewSum constructs a Sum over a non-empty entity list.
func NewSum(entities []Node, level int) (*Sum, error) {
	if len(entities) == 0 {
		return nil, ErrEmptySum
	}
	for _, e := range entities {
		if e == nil {
			return nil, ErrNilNode
		}
	}
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &Sum{Entities: entities, level: level, bounds: Unbounded()}, nil
}

// Kind returns KindSum.
func (s *Sum) Kind() Kind { return KindSum }

// Level returns the node's depth in the expression tree.
func (s *Sum) Level() int { return s.level }

// Bounds returns the interval cached by the last ComputeBounds call.
func (s *Sum) Bounds() Interval { return s.bounds }

// ComputeBounds sums the entity intervals side by side. A side is unbounded
// as soon as any entity is unbounded on that side; the sides are combined
// explicitly so that an unbounded lower never contaminates a finite upper.
func (s *Sum) ComputeBounds(vars []Interval) (Interval, error) {
	var lo, hi float64
	loFinite, hiFinite := true, true
	for _, e := range s.Entities {
		iv, err := e.ComputeBounds(vars)
		if err != nil {
			return Interval{}, err
		}
		if iv.FiniteLower() {
			lo += iv.Lower
		} else {
			loFinite = false
		}
		if iv.FiniteUpper() {
			hi += iv.Upper
		} else {
			hiFinite = false
		}
	}
	if !loFinite {
		lo = math.Inf(-1)
	}
	if !hiFinite {
		hi = math.Inf(1)
	}
	s.bounds = Interval{Lower: lo, Upper: hi}

	return s.bounds, nil
}

// Eval returns the sum of the evaluated entities.
func (s *Sum) Eval(x []float64) (float64, error) {
	var total float64
	for _, e := range s.Entities {
		v, err := e.Eval(x)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Clone returns a deep copy of the sum and its entities.
func (s *Sum) Clone() Node {
	cp := *s
	cp.Entities = make([]Node, len(s.Entities))
	for i, e := range s.Entities {
		cp.Entities[i] = e.Clone()
	}

	return &cp
}

func (s *Sum) isNode() {}
