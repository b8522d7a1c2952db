package pathanim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

var approx = cmpopts.EquateApprox(0, 1e-9)

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Pt(xy[i], xy[i+1]))
	}
	return out
}

func mustPath(t *testing.T, points []Point, kind Kind) *Path {
	t.Helper()
	p, err := NewPath(points, kind)
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return p
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
