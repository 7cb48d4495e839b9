package expr

import (
	"fmt"
	"math"
)

// Interval is a closed numeric interval [Lower, Upper]. A side equal to
// -Inf (Lower) or +Inf (Upper) means the interval is unbounded on that side;
// this is the in-memory rendering of a nullable bound pair.
type Interval struct {
	Lower float64
	Upper float64
}

// Unbounded returns the interval (-Inf, +Inf).
func Unbounded() Interval {
	return Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Degenerate returns the single-point interval [v, v].
func Degenerate(v float64) Interval {
	return Interval{Lower: v, Upper: v}
}

// FiniteLower reports whether the lower side carries a finite bound.
func (iv Interval) FiniteLower() bool { return !math.IsInf(iv.Lower, -1) }

// FiniteUpper reports whether the upper side carries a finite bound.
func (iv Interval) FiniteUpper() bool { return !math.IsInf(iv.Upper, 1) }

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v float64) bool {
	return iv.Lower <= v && v <= iv.Upper
}

// ContainsInterval reports whether other lies entirely inside iv.
func (iv Interval) ContainsInterval(other Interval) bool {
	return iv.Lower <= other.Lower && other.Upper <= iv.Upper
}

// Scale multiplies both endpoints by coef and restores endpoint ordering.
// A negative coefficient therefore swaps the sides.
func (iv Interval) Scale(coef float64) Interval {
	lo := mulBound(coef, iv.Lower)
	hi := mulBound(coef, iv.Upper)

	return Interval{Lower: math.Min(lo, hi), Upper: math.Max(lo, hi)}
}

// String renders the interval with ∞ for unbounded sides.
func (iv Interval) String() string {
	lo, hi := "-inf", "+inf"
	if iv.FiniteLower() {
		lo = fmt.Sprintf("%g", iv.Lower)
	}
	if iv.FiniteUpper() {
		hi = fmt.Sprintf("%g", iv.Upper)
	}

	return fmt.Sprintf("[%s, %s]", lo, hi)
}

// mulBound multiplies two bound values under the interval convention
// 0·(±Inf) = 0, which keeps degenerate factors from poisoning a product
// with NaN.
func mulBound(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}

// sanitize replaces a NaN endpoint with the unbounded value for its side.
// Indeterminate arithmetic (Inf/Inf corner ratios, fractional powers of
// negative endpoints) thus degrades to "unknown" instead of propagating NaN.
func sanitize(iv Interval) Interval {
	if math.IsNaN(iv.Lower) {
		iv.Lower = math.Inf(-1)
	}
	if math.IsNaN(iv.Upper) {
		iv.Upper = math.Inf(1)
	}

	return iv
}
