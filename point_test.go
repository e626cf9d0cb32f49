package curve

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(-2, 6).Midpoint(Pt(4, 0)), Pt(1, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt(5, 5), Pt(0, 0).Lerp(Pt(10, 10), 0.5))

	points := []Point{Pt(0, 0), Pt(-3, 7), Pt(1.5, -2.25), Pt(1024, 0.125)}
	for _, a := range points {
		for _, b := range points {
			if got := a.Lerp(b, 0); got != a {
				t.Errorf("%v.Lerp(%v, 0) = %v, want %v", a, b, got, a)
			}
			if got := a.Lerp(b, 1); got != b {
				t.Errorf("%v.Lerp(%v, 1) = %v, want %v", a, b, got, b)
			}
		}
	}
}

func TestPointLerpExtrapolates(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -4)
	diff(t, Pt(20, -8), a.Lerp(b, 2))
	diff(t, Pt(-10, 4), a.Lerp(b, -1))
}

func TestPointString(t *testing.T) {
	if got, want := Pt(0.5, -0.75).String(), "(0.5, -0.75)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
