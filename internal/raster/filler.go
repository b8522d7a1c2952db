package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Filler paints anti-aliased polygons. The zero value is not usable; create
// one with NewFiller. A Filler is not safe for concurrent use: give each
// render worker its own.
type Filler struct {
	z *vector.Rasterizer
}

// NewFiller returns a Filler with an empty coverage buffer.
func NewFiller() *Filler {
	return &Filler{z: vector.NewRasterizer(0, 0)}
}

// Fill composites poly, filled with c, over dst. Polygons with fewer than
// three vertices or entirely outside dst draw nothing.
func (f *Filler) Fill(dst *image.RGBA, poly []Point, c color.Color) {
	if dst == nil || len(poly) < 3 {
		return
	}

	b := Bounds(poly)
	area := image.Rect(
		int(math.Floor(b.MinX)), int(math.Floor(b.MinY)),
		int(math.Ceil(b.MaxX)), int(math.Ceil(b.MaxY)),
	).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	poly = ClipPolygon(poly, Rect{
		MinX: float64(area.Min.X), MinY: float64(area.Min.Y),
		MaxX: float64(area.Max.X), MaxY: float64(area.Max.Y),
	})
	if len(poly) < 3 {
		return
	}

	// Rasterizer coordinates are relative to area.Min.
	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	f.z.Reset(area.Dx(), area.Dy())
	f.z.DrawOp = draw.Over
	f.z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
	for _, p := range poly[1:] {
		f.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	f.z.ClosePath()
	f.z.Draw(dst, area, image.NewUniform(c), image.Point{})
}

