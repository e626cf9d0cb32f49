package curve

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := Vec(3, 4)
	diff(t, Vec(4, 6), v.Add(Vec(1, 2)))
	diff(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	diff(t, Vec(6, 8), v.Mul(2))
	diff(t, Vec(1.5, 2), v.Div(2))
	diff(t, Vec(-3, -4), v.Negate())
	if got := v.Dot(Vec(2, -1)); got != 2 {
		t.Errorf("got dot product %v, want 2", got)
	}
	if got := v.Cross(Vec(2, -1)); got != -11 {
		t.Errorf("got cross product %v, want -11", got)
	}
	if got := v.Hypot(); got != 5 {
		t.Errorf("got magnitude %v, want 5", got)
	}
	if got := v.Hypot2(); got != 25 {
		t.Errorf("got squared magnitude %v, want 25", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	diff(t, Vec(5, 5), Vec(0, 0).Lerp(Vec(10, 10), 0.5))
	diff(t, Vec(-2, 3), Vec(-2, 3).Lerp(Vec(8, 1), 0))
	diff(t, Vec(8, 1), Vec(-2, 3).Lerp(Vec(8, 1), 1))
	diff(t, Vec(18, -1), Vec(-2, 3).Lerp(Vec(8, 1), 2))
}

func TestVec2Normalize(t *testing.T) {
	diff(t, Vec(0.6, 0.8), Vec(3, 4).Normalize(), approx)
	diff(t, Vec(0, -1), Vec(0, -0.001).Normalize())
	diff(t, Vec2{}, Vec2{}.Normalize())
}

func TestVec2NonFinite(t *testing.T) {
	if !Vec(math.NaN(), 0).IsNaN() {
		t.Error("NaN vector not reported as NaN")
	}
	if !Vec(0, math.Inf(-1)).IsInf() {
		t.Error("infinite vector not reported as infinite")
	}
	if v := Vec(1, 2); v.IsNaN() || v.IsInf() {
		t.Errorf("%v reported as non-finite", v)
	}
	if !Vec(1, 1).Div(0).IsInf() {
		t.Error("division by zero didn't produce infinities")
	}
}

func TestVec2String(t *testing.T) {
	if got, want := Vec(1, -2.5).String(), "⟨1, -2.5⟩"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
