package expr_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/factorable/expr"
)

// propTol absorbs sub-ulp wobble of the math library at interval endpoints.
const propTol = 1e-9

// containsWithin reports outer ⊇ inner up to propTol per side.
func containsWithin(outer, inner expr.Interval) bool {
	return outer.Lower-propTol <= inner.Lower && inner.Upper <= outer.Upper+propTol
}

// unaryMaker builds a fresh single-argument node over variable 0.
type unaryMaker struct {
	name string
	make func() (expr.Node, error)

	// positiveOnly restricts the generated argument interval to (0, ∞) for
	// operators with a domain restriction.
	positiveOnly bool
}

func unaryMakers() []unaryMaker {
	v0 := expr.VarOperand(0)

	return []unaryMaker{
		{"Square", func() (expr.Node, error) { return expr.NewSquare(v0, 1.0, 0) }, false},
		{"Negate", func() (expr.Node, error) { return expr.NewNegate(v0, 1.0, 0) }, false},
		{"Abs", func() (expr.Node, error) { return expr.NewAbs(v0, 1.0, 0) }, false},
		{"Exp", func() (expr.Node, error) { return expr.NewExp(v0, 1.0, 0) }, false},
		{"Cosine", func() (expr.Node, error) { return expr.NewCosine(v0, 1.0, 0) }, false},
		{"Sine", func() (expr.Node, error) { return expr.NewSine(v0, 1.0, 0) }, false},
		{"Squareroot", func() (expr.Node, error) { return expr.NewSquareroot(v0, 1.0, 0) }, true},
		{"Ln", func() (expr.Node, error) { return expr.NewLn(v0, 1.0, 0) }, true},
	}
}

// TestBounds_MonotoneInclusion checks that widening the variable interval
// never shrinks the propagated bounds.
func TestBounds_MonotoneInclusion(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	for _, m := range unaryMakers() {
		m := m
		loGen := gen.Float64Range(-50, 50)
		if m.positiveOnly {
			loGen = gen.Float64Range(0.1, 50)
		}
		properties.Property(m.name+" bounds widen with the argument", prop.ForAll(
			func(lo, width, eps float64) bool {
				narrowNode, err := m.make()
				if err != nil {
					return false
				}
				wideNode, err := m.make()
				if err != nil {
					return false
				}

				narrow, err := narrowNode.ComputeBounds([]expr.Interval{{Lower: lo, Upper: lo + width}})
				if err != nil {
					return false
				}
				wide, err := wideNode.ComputeBounds([]expr.Interval{{Lower: lo - eps, Upper: lo + width + eps}})
				if err != nil {
					return false
				}
				return containsWithin(wide, narrow)
			},
			loGen,
			gen.Float64Range(0, 20),
			gen.Float64Range(0, 10),
		))
	}
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestBounds_SoundOnSamples checks that an evaluation at an interior point of
// the variable interval always lands inside the propagated bounds.
func TestBounds_SoundOnSamples(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	for _, m := range unaryMakers() {
		m := m
		loGen := gen.Float64Range(-50, 50)
		if m.positiveOnly {
			loGen = gen.Float64Range(0.1, 50)
		}
		properties.Property(m.name+" bounds enclose sampled values", prop.ForAll(
			func(lo, width, frac float64) bool {
				node, err := m.make()
				if err != nil {
					return false
				}
				iv := expr.Interval{Lower: lo, Upper: lo + width}
				bounds, err := node.ComputeBounds([]expr.Interval{iv})
				if err != nil {
					return false
				}

				x := lo + frac*width
				v, err := node.Eval([]float64{x})
				if err != nil {
					return false
				}

				return bounds.Lower-propTol <= v && v <= bounds.Upper+propTol
			},
			loGen,
			gen.Float64Range(0, 20),
			gen.Float64Range(0, 1),
		))
	}
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestBounds_ProductSound samples a bilinear product against its fold,
// including mixed-sign and all-negative factor intervals.
func TestBounds_ProductSound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("product bounds enclose sampled values", prop.ForAll(
		func(xl, xw, yl, yw, fx, fy float64) bool {
			f0, err := expr.NewFactor(0, 1.0, 1)
			if err != nil {
				return false
			}
			f1, err := expr.NewFactor(1, 1.0, 1)
			if err != nil {
				return false
			}
			p, err := expr.NewProduct([]expr.Node{f0, f1}, 0)
			if err != nil {
				return false
			}

			vars := []expr.Interval{
				{Lower: xl, Upper: xl + xw},
				{Lower: yl, Upper: yl + yw},
			}
			bounds, err := p.ComputeBounds(vars)
			if err != nil {
				return false
			}

			v, err := p.Eval([]float64{xl + fx*xw, yl + fy*yw})
			if err != nil {
				return false
			}

			return bounds.Lower-propTol <= v && v <= bounds.Upper+propTol
		},
		gen.Float64Range(-20, 20),
		gen.Float64Range(0, 10),
		gen.Float64Range(-20, 20),
		gen.Float64Range(0, 10),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
