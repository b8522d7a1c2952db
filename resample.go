package pathanim

import "slices"

// TrackLength is the fixed cardinality of every exported track.
const TrackLength = 121

// cumulativeLengths returns L where L[0] = 0 and L[i] is the arc length
// from points[0] to points[i].
func cumulativeLengths(points []Point) []float64 {
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i].Distance(points[i-1])
	}
	return cum
}

// ArcLength returns the total length of the polyline.
func ArcLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

// pointAtLength returns the position at distance d along the polyline.
// The bracketing segment is the first one whose end reaches d, so
// zero-length segments are never interpolated across.
func pointAtLength(points []Point, cum []float64, d float64) Point {
	last := len(points) - 1
	if d <= 0 || last == 0 {
		return points[0]
	}
	if d >= cum[last] {
		return points[last]
	}
	// cum[j-1] < d <= cum[j], hence the segment has positive length.
	j, _ := slices.BinarySearch(cum, d)
	seg := cum[j] - cum[j-1]
	return points[j-1].Lerp(points[j], (d-cum[j-1])/seg)
}

// Resample converts a polyline into exactly n points separated by equal
// arc-length steps. A zero-length polyline (a single point, or all points
// coincident) yields n copies of its first point. An empty input or a
// non-positive n yields nil.
func Resample(points []Point, n int) []Point {
	if len(points) == 0 || n <= 0 {
		return nil
	}
	out := make([]Point, n)
	cum := cumulativeLengths(points)
	total := cum[len(cum)-1]
	if total == 0 || n == 1 {
		for k := range out {
			out[k] = points[0]
		}
		return out
	}
	for k := range out {
		t := float64(k) / float64(n-1) * total
		out[k] = pointAtLength(points, cum, t)
	}
	return out
}

// PointAt returns the position at fraction t of the polyline's arc length.
// t is clamped to [0,1].
func PointAt(points []Point, t float64) Point {
	if len(points) == 0 {
		return Point{}
	}
	cum := cumulativeLengths(points)
	return pointAtLength(points, cum, clamp01(t)*cum[len(cum)-1])
}
