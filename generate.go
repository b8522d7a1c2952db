package pathanim

import "math"

// Orbit returns n points around an ellipse centered at o.Center, starting
// at the angle of o.Ref and stepping 2π/n in o.Direction, followed by a
// copy of the first point that closes the loop.
//
// Zero radii, a missing reference point or a non-positive count produce an
// empty result; callers must not create a path from it.
func Orbit(o OrbitParams) []Point {
	if o.Ref == nil || o.Points < 1 || (o.RX == 0 && o.RY == 0) {
		return nil
	}
	theta0 := o.Center.Angle(*o.Ref)
	step := 2 * math.Pi / float64(o.Points) * o.Direction.Sign()

	pts := make([]Point, 0, o.Points+1)
	for i := range o.Points {
		sin, cos := math.Sincos(theta0 + float64(i)*step)
		pts = append(pts, Point{
			X: o.Center.X + o.RX*cos,
			Y: o.Center.Y + o.RY*sin,
		})
	}
	return append(pts, pts[0])
}

// Arc returns n+1 points sweeping half a circle whose diameter is the
// segment from a.Start to a.End, beginning at a.Start. Clockwise sweeps
// with increasing screen angle.
//
// Coincident endpoints or a non-positive count produce an empty result.
func Arc(a ArcParams) []Point {
	mid := a.Start.Lerp(a.End, 0.5)
	radius := a.Start.Distance(a.End) / 2
	if radius == 0 || a.Points < 1 {
		return nil
	}
	theta0 := mid.Angle(a.Start)
	step := math.Pi / float64(a.Points) * a.Direction.Sign()

	pts := make([]Point, a.Points+1)
	for i := range pts {
		sin, cos := math.Sincos(theta0 + float64(i)*step)
		pts[i] = Point{X: mid.X + radius*cos, Y: mid.Y + radius*sin}
	}
	return pts
}

// NewGenerated runs the generator and wraps the result in a generated
// path. ErrDegenerate is returned when the generator yields no points.
func NewGenerated(params GenerationParams) (*Path, error) {
	pts := params.Generate()
	if len(pts) == 0 {
		return nil, ErrDegenerate
	}
	return NewPath(pts, Generated{Params: params})
}
