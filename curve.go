package curve

import "iter"

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Sample evaluates c at n+1 evenly spaced parameters from 0 to 1, inclusive.
// The first and last points are c.Start() and c.End(). n less than 1 is
// treated as 1.
//
// Connecting the samples with lines gives a polyline approximation of c,
// suitable for previews and hit testing.
func Sample(c ParametricCurve, n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		if !yield(c.Start()) {
			return
		}
		for i := 1; i < n; i++ {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
		yield(c.End())
	}
}
