package raster

import (
	"math"
	"testing"
)

func polygonArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(a) / 2
}

func TestClipPolygon(t *testing.T) {
	clip := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	square := func(x0, y0, x1, y1 float64) []Point {
		return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}

	tests := []struct {
		name     string
		poly     []Point
		wantArea float64
	}{
		{"inside", square(2, 2, 8, 8), 36},
		{"covers clip", square(-5, -5, 15, 15), 100},
		{"half outside left", square(-4, 2, 4, 6), 16},
		{"corner overlap", square(8, 8, 12, 12), 4},
		{"outside", square(20, 20, 30, 30), 0},
		{"triangle across top", []Point{{5, -5}, {10, 5}, {0, 5}}, 50 - 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipPolygon(tt.poly, clip)
			if tt.wantArea == 0 {
				if len(got) != 0 {
					t.Errorf("ClipPolygon = %v, want empty", got)
				}
				return
			}
			if a := polygonArea(got); math.Abs(a-tt.wantArea) > 1e-9 {
				t.Errorf("clipped area = %v, want %v (%v)", a, tt.wantArea, got)
			}
			for _, p := range got {
				if p.X < clip.MinX || p.X > clip.MaxX || p.Y < clip.MinY || p.Y > clip.MaxY {
					t.Errorf("vertex %v outside clip rect", p)
				}
			}
		})
	}
}

func TestBounds(t *testing.T) {
	got := Bounds([]Point{{3, -1}, {-2, 4}, {5, 2}})
	want := Rect{MinX: -2, MinY: -1, MaxX: 5, MaxY: 4}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	if e := Bounds(nil); e.MinX <= e.MaxX {
		t.Errorf("Bounds(nil) = %+v, want inverted", e)
	}
}
