package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with a combination of relative and absolute
// tolerance, for results that went through different rounding paths.
var approx = cmpopts.EquateApprox(1e-12, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testCurves are a mix of regular, self-intersecting, and degenerate curves.
var testCurves = []CubicBez{
	{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
	{Pt(20, 40), Pt(40, 80), Pt(-40, 40), Pt(42, 62)},
	{Pt(0.1, -0.3), Pt(17.7, 3.14), Pt(-2.5, 9.81), Pt(33.3, -12.25)},
	{Pt(0, 0), Pt(30, 30), Pt(0, 30), Pt(30, 0)},
	{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)},
	{Pt(0, 9), Pt(6, 6), Pt(12, 3), Pt(18, 0)},
}

// testParams are parameters in [0, 1], including the end points.
var testParams = []float64{0, 0.001, 0.1, 0.25, 1.0 / 3.0, 0.5, 0.7, 0.9, 0.999, 1}
