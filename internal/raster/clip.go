package raster

import "math"

// Point is a polygon vertex in pixel coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned clip rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the bounding box of poly. An empty polygon has an empty,
// inverted box.
func Bounds(poly []Point) Rect {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range poly {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// clipEdge identifies one side of the clip rectangle.
type clipEdge int

const (
	edgeLeft clipEdge = iota
	edgeRight
	edgeTop
	edgeBottom
)

func (r Rect) inside(e clipEdge, p Point) bool {
	switch e {
	case edgeLeft:
		return p.X >= r.MinX
	case edgeRight:
		return p.X <= r.MaxX
	case edgeTop:
		return p.Y >= r.MinY
	default:
		return p.Y <= r.MaxY
	}
}

// intersect returns where segment a-b crosses edge e. Only called when a
// and b lie on different sides, so the divisor is non-zero.
func (r Rect) intersect(e clipEdge, a, b Point) Point {
	switch e {
	case edgeLeft, edgeRight:
		x := r.MinX
		if e == edgeRight {
			x = r.MaxX
		}
		t := (x - a.X) / (b.X - a.X)
		return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
	default:
		y := r.MinY
		if e == edgeBottom {
			y = r.MaxY
		}
		t := (y - a.Y) / (b.Y - a.Y)
		return Point{X: a.X + t*(b.X-a.X), Y: y}
	}
}

// ClipPolygon clips a closed polygon against r (Sutherland-Hodgman). The
// result is closed implicitly and may be empty.
func ClipPolygon(poly []Point, r Rect) []Point {
	out := poly
	for _, e := range [...]clipEdge{edgeLeft, edgeRight, edgeTop, edgeBottom} {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := r.inside(e, cur), r.inside(e, prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, r.intersect(e, prev, cur), cur)
			case prevIn:
				out = append(out, r.intersect(e, prev, cur))
			}
			prev = cur
		}
	}
	return out
}
