// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/internal/raster"
)

// starInnerRatio is the inner radius of a star relative to its outer radius.
const starInnerRatio = 0.4

// circleSegments returns the polygon resolution for a circle of radius r:
// roughly one vertex every 4 pixels of circumference.
func circleSegments(r float64) int {
	return min(max(int(math.Ceil(2*math.Pi*r/4)), 24), 256)
}

// outline returns the closed polygon of shape centered at c with bounding
// size size, rotated by rotation degrees.
func outline(shape Shape, c pathanim.Point, size, rotation float64) []raster.Point {
	half := size / 2
	rad := rotation * math.Pi / 180

	var pts []pathanim.Point
	switch shape {
	case ShapeCircle:
		n := circleSegments(half)
		pts = radial(c, n, 2*math.Pi/float64(n), 0, func(int) float64 { return half })
	case ShapeSquare:
		pts = []pathanim.Point{
			{X: c.X - half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y + half},
			{X: c.X - half, Y: c.Y + half},
		}
	case ShapeTriangle:
		pts = []pathanim.Point{
			{X: c.X, Y: c.Y - half},
			{X: c.X + half, Y: c.Y + half},
			{X: c.X - half, Y: c.Y + half},
		}
	case ShapeHexagon:
		return toRaster(radial(c, 6, math.Pi/3, rad, func(int) float64 { return half }))
	case ShapeStar:
		// First tip points up.
		return toRaster(radial(c, 10, math.Pi/5, rad-math.Pi/2, func(i int) float64 {
			if i%2 == 0 {
				return half
			}
			return half * starInnerRatio
		}))
	default:
		return nil
	}

	if rad != 0 {
		for i, p := range pts {
			pts[i] = p.Rotate(c, rad)
		}
	}
	return toRaster(pts)
}

// radial places n vertices around c at angle offset+i*step and radius r(i).
func radial(c pathanim.Point, n int, step, offset float64, r func(i int) float64) []pathanim.Point {
	pts := make([]pathanim.Point, n)
	for i := range pts {
		sin, cos := math.Sincos(offset + float64(i)*step)
		ri := r(i)
		pts[i] = pathanim.Point{X: c.X + ri*cos, Y: c.Y + ri*sin}
	}
	return pts
}

// inset shrinks poly about c so that a border of width bw remains between
// the two outlines at the shape's half size. It returns nil when the
// border consumes the whole shape.
func inset(poly []raster.Point, c pathanim.Point, half, bw float64) []raster.Point {
	if bw >= half {
		return nil
	}
	k := (half - bw) / half
	out := make([]raster.Point, len(poly))
	for i, p := range poly {
		out[i] = raster.Point{X: c.X + (p.X-c.X)*k, Y: c.Y + (p.Y-c.Y)*k}
	}
	return out
}

func toRaster(pts []pathanim.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
