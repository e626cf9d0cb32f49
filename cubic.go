package curve

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier curve. P0 and P3 are the end points, P1 and P2
// the control points that shape the tangents at either end.
//
// Any four points form a valid curve, including degenerate ones where some
// or all points coincide.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Cubic returns the cubic Bézier curve with the given points.
func Cubic(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Points returns the curve's four points in order.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t using the Bernstein form
//
//	(1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// Values of t outside [0, 1] extrapolate the curve past its end points.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	tt := t * t
	mtmt := mt * mt
	b0 := mtmt * mt
	b1 := 3.0 * mtmt * t
	b2 := 3.0 * mt * tt
	b3 := tt * t
	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// SplitAt splits the curve at t using de Casteljau's algorithm. The first
// curve covers [0, t] of c, the second covers [t, 1]; both are
// reparametrized to [0, 1]. The first curve's end point is the second
// curve's start point and lies on c at t.
//
// t outside [0, 1] is accepted and produces curves that extend past c's end
// points.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)

	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)

	p0123 := p012.Lerp(p123, t)

	return CubicBez{c.P0, p01, p012, p0123},
		CubicBez{p0123, p123, p23, c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// Subsegment returns the part of c between t0 and t1, reparametrized to
// [0, 1]. t0 may be larger than t1, in which case the result runs
// backwards.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Deriv()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Deriv returns the derivative of the curve, which is a quadratic Bézier.
// Its points are to be read as vectors.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Tangent returns the unnormalized tangent (first derivative) at t.
func (c CubicBez) Tangent(t float64) Vec2 {
	return Vec2(c.Deriv().Eval(t))
}
