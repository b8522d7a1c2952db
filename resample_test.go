package pathanim

import (
	"math"
	"testing"
)

func TestResampleLength(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"single point", pts(5, 5)},
		{"line", pts(0, 0, 10, 0)},
		{"polyline", pts(0, 0, 60, 0, 60, 60, 0, 60)},
		{"coincident", pts(3, 3, 3, 3, 3, 3)},
		{"many points", Orbit(OrbitParams{RX: 50, RY: 20, Ref: &Point{X: 50}, Points: 400})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resample(tt.points, TrackLength)
			if len(got) != TrackLength {
				t.Fatalf("len = %d, want %d", len(got), TrackLength)
			}
			diff(t, tt.points[0], got[0], pointComparer)
		})
	}
}

func TestResampleStraightLine(t *testing.T) {
	got := Resample(pts(0, 0, 120, 0), TrackLength)
	want := make([]Point, TrackLength)
	for k := range want {
		want[k] = Pt(float64(k), 0)
	}
	diff(t, want, got, pointComparer)
}

func TestResampleEqualSpacing(t *testing.T) {
	got := Resample(pts(0, 0, 60, 0, 60, 60), TrackLength)
	for i := 1; i < len(got); i++ {
		if d := got[i].Distance(got[i-1]); !near(d, 1) {
			t.Fatalf("step %d has length %v, want 1", i, d)
		}
	}
	diff(t, Pt(60, 0), got[60], pointComparer)
	diff(t, Pt(60, 60), got[120], pointComparer)
}

func TestResampleIdempotent(t *testing.T) {
	once := Resample(pts(0, 0, 60, 0, 60, 60), TrackLength)
	twice := Resample(once, TrackLength)
	diff(t, once, twice, pointComparer)
}

func TestResampleZeroLength(t *testing.T) {
	got := Resample(pts(7, 8, 7, 8), 5)
	diff(t, pts(7, 8, 7, 8, 7, 8, 7, 8, 7, 8), got)
}

func TestResampleSkipsZeroLengthSegments(t *testing.T) {
	got := Resample(pts(0, 0, 0, 0, 10, 0, 10, 0), 3)
	diff(t, pts(0, 0, 5, 0, 10, 0), got, pointComparer)
}

func TestResampleDegenerateInput(t *testing.T) {
	if got := Resample(nil, TrackLength); got != nil {
		t.Errorf("Resample(nil) = %v, want nil", got)
	}
	if got := Resample(pts(0, 0, 1, 1), 0); got != nil {
		t.Errorf("Resample(n=0) = %v, want nil", got)
	}
	diff(t, pts(2, 3), Resample(pts(2, 3, 9, 9), 1))
}

func TestArcLength(t *testing.T) {
	tests := []struct {
		points []Point
		want   float64
	}{
		{nil, 0},
		{pts(1, 1), 0},
		{pts(0, 0, 3, 4), 5},
		{pts(0, 0, 3, 4, 3, 10), 11},
	}
	for _, tt := range tests {
		if got := ArcLength(tt.points); !near(got, tt.want) {
			t.Errorf("ArcLength(%v) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestPointAt(t *testing.T) {
	line := pts(0, 0, 10, 0, 10, 10)
	tests := []struct {
		t    float64
		want Point
	}{
		{-1, Pt(0, 0)},
		{0, Pt(0, 0)},
		{0.25, Pt(5, 0)},
		{0.5, Pt(10, 0)},
		{0.75, Pt(10, 5)},
		{1, Pt(10, 10)},
		{2, Pt(10, 10)},
	}
	for _, tt := range tests {
		diff(t, tt.want, PointAt(line, tt.t), pointComparer)
	}
	diff(t, Point{}, PointAt(nil, 0.5))
}

func TestResampleRoundedStraightSegment(t *testing.T) {
	got := Resample(pts(0, 0, 100, 0), TrackLength)
	for k, p := range got {
		want := 100 * float64(k) / 120
		if math.Abs(p.X-want) > 1e-9 || p.Y != 0 {
			t.Fatalf("point %d = %v, want (%v, 0)", k, p, want)
		}
		if x, _ := p.Rounded(); math.Abs(float64(x)-want) > 0.5 {
			t.Errorf("point %d rounds to %d, want round(%v)", k, x, want)
		}
	}
}
