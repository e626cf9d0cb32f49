package curve

import (
	"iter"
	"math"
	"slices"
)

// defaultHandleLength is the length of the handles an anchor receives when
// it is turned into a curved anchor.
const defaultHandleLength = 30

// Anchor is a point that a [Spline] passes through. The handles are offsets
// from Pos to the control points of the adjacent segments: HandleIn shapes
// the segment ending at the anchor, HandleOut the segment starting at it.
type Anchor struct {
	Pos       Point
	HandleIn  Vec2
	HandleOut Vec2
	// Curved anchors have handles; straight anchors keep both handles at
	// zero, which makes their segments straight lines when the neighbouring
	// anchor is straight as well.
	Curved bool
	// Aligned anchors keep their two handles pointing in opposite
	// directions, for a continuous tangent through the anchor.
	Aligned bool
	Name    string
}

// CornerAnchor returns a straight anchor at pos.
func CornerAnchor(pos Point) Anchor {
	return Anchor{Pos: pos, Aligned: true}
}

// SmoothAnchor returns a curved, aligned anchor at pos whose outgoing handle
// is out and whose incoming handle mirrors it.
func SmoothAnchor(pos Point, out Vec2) Anchor {
	return Anchor{
		Pos:       pos,
		HandleIn:  out.Negate(),
		HandleOut: out,
		Curved:    true,
		Aligned:   true,
	}
}

// In returns the absolute position of the incoming handle.
func (a Anchor) In() Point {
	return a.Pos.Translate(a.HandleIn)
}

// Out returns the absolute position of the outgoing handle.
func (a Anchor) Out() Point {
	return a.Pos.Translate(a.HandleOut)
}

var _ ParametricCurve = Spline{}

// Spline is a chain of cubic Bézier segments joined at anchors. Segment i
// runs from Anchors[i] to Anchors[i+1].
//
// Positions along the whole spline are addressed either by u, which ranges
// over [0, Len()] and whose integer part is the segment index, or by the
// normalized t of [Spline.Eval], which ranges over [0, 1].
//
// Methods never modify the receiver's anchors. Editing methods return a new
// Spline with its own copy of the anchors.
type Spline struct {
	Anchors []Anchor
}

// Len returns the number of segments.
func (s Spline) Len() int {
	return max(len(s.Anchors)-1, 0)
}

// Segment returns the i-th segment. It panics if i is not in [0, Len()).
func (s Spline) Segment(i int) CubicBez {
	if i < 0 || i >= s.Len() {
		panic("segment index out of range")
	}
	a, b := s.Anchors[i], s.Anchors[i+1]
	return CubicBez{a.Pos, a.Out(), b.In(), b.Pos}
}

// Segments returns an iterator over the segments and their indices.
func (s Spline) Segments() iter.Seq2[int, CubicBez] {
	return func(yield func(int, CubicBez) bool) {
		for i := range s.Len() {
			if !yield(i, s.Segment(i)) {
				return
			}
		}
	}
}

// PointAtU returns the point at u. The segment index is floor(u), limited to
// the last segment, and the parameter within the segment is what remains of
// u, capped at 1. u below 0 extrapolates the first segment.
//
// A spline with fewer than two anchors has no segments and PointAtU returns
// the origin.
func (s Spline) PointAtU(u float64) Point {
	n := s.Len()
	if n == 0 {
		return Point{}
	}
	seg := 0
	if f := math.Floor(u); f > 0 {
		seg = int(min(f, float64(n-1)))
	}
	t := min(u-float64(seg), 1.0)
	return s.Segment(seg).Eval(t)
}

// Eval evaluates the spline at t in [0, 1], where 0 is the first anchor and 1
// the last. Each segment covers an equal share of the range.
func (s Spline) Eval(t float64) Point {
	return s.PointAtU(t * float64(s.Len()))
}

// Start returns the first anchor's position, or the origin for an empty
// spline.
func (s Spline) Start() Point {
	if len(s.Anchors) == 0 {
		return Point{}
	}
	return s.Anchors[0].Pos
}

// End returns the last anchor's position, or the origin for an empty
// spline.
func (s Spline) End() Point {
	if len(s.Anchors) == 0 {
		return Point{}
	}
	return s.Anchors[len(s.Anchors)-1].Pos
}

// ClosestU finds the u whose point is closest to pt by sampling every
// segment at steps+1 evenly spaced parameters. It reports false if the
// spline has no segments or no sample is closer than maxDist.
func (s Spline) ClosestU(pt Point, steps int, maxDist float64) (float64, bool) {
	steps = max(steps, 1)
	bestU := 0.0
	bestDist := math.Inf(1)
	for i, c := range s.Segments() {
		for j := range steps + 1 {
			t := float64(j) / float64(steps)
			if d := c.Eval(t).Distance(pt); d < bestDist {
				bestDist = d
				bestU = float64(i) + t
			}
		}
	}
	if bestDist >= maxDist {
		return 0, false
	}
	return bestU, true
}

// InsertAnchor splits segment seg at t and inserts a new anchor at the split
// point, without changing the shape of the spline. The new anchor is curved
// and aligned, and the handles of its neighbours are shortened to match the
// two new segments. It reports false if seg is out of range.
func (s Spline) InsertAnchor(seg int, t float64) (Spline, bool) {
	if seg < 0 || seg >= s.Len() {
		return s, false
	}
	first, second := s.Segment(seg).SplitAt(t)

	anchors := slices.Clone(s.Anchors)
	prev, next := &anchors[seg], &anchors[seg+1]
	prev.HandleOut = first.P1.Sub(prev.Pos)
	next.HandleIn = second.P2.Sub(next.Pos)

	pos := first.P3
	a := Anchor{
		Pos:       pos,
		HandleIn:  first.P2.Sub(pos),
		HandleOut: second.P1.Sub(pos),
		Curved:    true,
		Aligned:   true,
	}
	return Spline{Anchors: slices.Insert(anchors, seg+1, a)}, true
}

// ToggleCurved turns a straight anchor into a curved one with horizontal
// handles, or a curved anchor into a straight one with zero handles. It
// reports false if i is out of range.
func (s Spline) ToggleCurved(i int) (Spline, bool) {
	if i < 0 || i >= len(s.Anchors) {
		return s, false
	}
	anchors := slices.Clone(s.Anchors)
	a := &anchors[i]
	a.Curved = !a.Curved
	if a.Curved {
		a.HandleIn = Vec(-defaultHandleLength, 0)
		a.HandleOut = Vec(defaultHandleLength, 0)
	} else {
		a.HandleIn = Vec2{}
		a.HandleOut = Vec2{}
	}
	return Spline{Anchors: anchors}, true
}

// SetHandleOut sets the outgoing handle of anchor i. If the anchor is curved
// and aligned, the incoming handle is turned to point opposite v while
// keeping its length. It reports false if i is out of range.
func (s Spline) SetHandleOut(i int, v Vec2) (Spline, bool) {
	if i < 0 || i >= len(s.Anchors) {
		return s, false
	}
	anchors := slices.Clone(s.Anchors)
	a := &anchors[i]
	a.HandleOut = v
	if a.Curved && a.Aligned {
		a.HandleIn = mirrorHandle(v, a.HandleIn.Hypot())
	}
	return Spline{Anchors: anchors}, true
}

// SetHandleIn is like [Spline.SetHandleOut], for the incoming handle.
func (s Spline) SetHandleIn(i int, v Vec2) (Spline, bool) {
	if i < 0 || i >= len(s.Anchors) {
		return s, false
	}
	anchors := slices.Clone(s.Anchors)
	a := &anchors[i]
	a.HandleIn = v
	if a.Curved && a.Aligned {
		a.HandleOut = mirrorHandle(v, a.HandleOut.Hypot())
	}
	return Spline{Anchors: anchors}, true
}

// mirrorHandle returns a vector of length l pointing opposite v. A zero v
// yields the zero vector.
func mirrorHandle(v Vec2, l float64) Vec2 {
	h := v.Hypot()
	if h == 0 {
		h = 1
	}
	return v.Negate().Mul(l / h)
}
