// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/internal/raster"
)

// Preview drawing sizes in canvas pixels.
const (
	previewLineWidth   = 2.0
	previewMarkerSize  = 8.0
	previewAnchorSize  = 12.0
	previewLabelSize   = 12.0
	previewLabelOffset = 8.0
)

var previewBackground = color.RGBA{R: 24, G: 24, B: 24, A: 255}

var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Preview draws a static overview of doc at its canvas size: the
// background (when given, resized to the canvas), every path as a polyline
// in its display color with a marker on its first point, and its name.
// Anchors are drawn as a single larger marker.
func Preview(doc *pathanim.Document, background image.Image) (*image.RGBA, error) {
	if doc == nil {
		doc = pathanim.NewDocument()
	}
	canvas := doc.CanvasOr(pathanim.DefaultCanvas)
	if !canvas.Valid() {
		return nil, &ConfigError{Field: "canvas_size", Value: canvas, Reason: "width and height must be positive"}
	}
	w := int(math.Ceil(canvas.Width))
	h := int(math.Ceil(canvas.Height))

	img := seedFrame(w, h, previewBackground, background)
	if background != nil {
		// Dim the background so the paths stay readable.
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 96}), image.Point{}, draw.Over)
	}

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	f := raster.NewFiller()
	for _, p := range doc.Paths {
		c := opaque(pathanim.ColorOr(p.Color, pathanim.White))
		if p.IsAnchor() {
			f.Fill(img, outline(ShapeCircle, p.Start(), previewAnchorSize, 0), c)
		} else {
			for i := 1; i < len(p.Points); i++ {
				f.Fill(img, segment(p.Points[i-1], p.Points[i], previewLineWidth), c)
			}
			f.Fill(img, outline(ShapeCircle, p.Start(), previewMarkerSize, 0), c)
		}
		if p.Name != "" {
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(c),
				Face: face,
				Dot: fixed.P(
					int(p.Start().X+previewLabelOffset),
					int(p.Start().Y-previewLabelOffset),
				),
			}
			d.DrawString(p.Name)
		}
	}
	return img, nil
}

func labelFace() (font.Face, error) {
	f, err := labelFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    previewLabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// segment returns the rectangle of width w around the line a-b. A
// zero-length segment yields nil.
func segment(a, b pathanim.Point, w float64) []raster.Point {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return nil
	}
	n := pathanim.Point{X: -d.Y / l * w / 2, Y: d.X / l * w / 2}
	return []raster.Point{
		{X: a.X + n.X, Y: a.Y + n.Y},
		{X: b.X + n.X, Y: b.Y + n.Y},
		{X: b.X - n.X, Y: b.Y - n.Y},
		{X: a.X - n.X, Y: a.Y - n.Y},
	}
}
