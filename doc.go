// Package curve provides cubic Bézier curves and the 2D points and vectors
// they are built from, plus splines of Bézier segments joined at anchors. It
// was written for path planning and preview drawing, where curves are sampled
// and split, but has no dependencies on any particular renderer.
//
// # Points and vectors
//
// [Point] is a location and [Vec2] is a displacement. The difference of two
// points is a vector ([Point.Sub]), and a point moved by a vector is a point
// ([Point.Translate]). Both are plain values; no method modifies its
// receiver.
//
// # Cubic Béziers
//
// A [CubicBez] is defined by four points. [CubicBez.Eval] computes the point
// at a parameter t using the Bernstein form, and [CubicBez.SplitAt] splits
// the curve in two at t using de Casteljau's algorithm. The two halves trace
// exactly the same path as the original curve.
//
// Parameters are conventionally in [0, 1], where 0 is the start point and 1
// the end point. Other values are not an error: they extrapolate the curve
// beyond its end points. No function in this package clamps or rejects its
// inputs, and NaNs and infinities propagate as they would through ordinary
// floating-point arithmetic.
//
// # Splines
//
// A [Spline] is a sequence of [Anchor] values. Each anchor has an incoming
// and an outgoing handle, and consecutive anchors form a [CubicBez] segment.
// Splines support the operations of an interactive path editor: evaluating
// along the whole path ([Spline.PointAtU], [Spline.Eval]), picking the
// position nearest to a point ([Spline.ClosestU]), inserting anchors without
// changing the path's shape ([Spline.InsertAnchor]), and editing handles
// while keeping tangents continuous ([Spline.SetHandleOut]).
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package curve
