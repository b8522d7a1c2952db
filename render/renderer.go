// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/anthonynsimon/bild/channel"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/internal/filter"
	"github.com/gogpu/pathanim/internal/parallel"
	"github.com/gogpu/pathanim/internal/raster"
)

// Result is one rendered animation batch.
type Result struct {
	// Frames are opaque RGB frames in timeline order.
	Frames []*image.RGBA

	// Masks holds the red channel of each frame.
	Masks []*image.Gray

	// Tracks holds one TrackLength-point track per path, in document
	// order, in frame coordinates.
	Tracks []pathanim.Track

	// Coordinates is Tracks formatted by pathanim.FormatTracks.
	Coordinates string
}

// Renderer renders animation batches on a pool of workers.
//
// Thread safety: Renderer is safe for concurrent use; batches share the
// worker pool.
type Renderer struct {
	pool       *parallel.WorkerPool
	background image.Image
	fillers    sync.Pool
}

// NewRenderer creates a renderer and starts its workers. Call Close to
// stop them.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		pool:       parallel.NewWorkerPool(o.workers),
		background: o.background,
	}
	r.fillers.New = func() any { return raster.NewFiller() }
	return r
}

// Close stops the renderer's workers.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Animate renders a batch with a temporary Renderer.
func Animate(ctx context.Context, doc *pathanim.Document, p Params, opts ...Option) (*Result, error) {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Animate(ctx, doc, p)
}

// batch is the resolved, read-only state of one Animate call.
type batch struct {
	params   Params
	paths    []*pathanim.Path
	override *pathanim.Window
	seed     *image.RGBA

	fill, border color.RGBA
}

// Animate renders doc with p. The document is not modified. A nil document
// renders background-only frames and no tracks.
func (r *Renderer) Animate(ctx context.Context, doc *pathanim.Document, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = pathanim.NewDocument()
	}
	frame := pathanim.Size{Width: float64(p.FrameWidth), Height: float64(p.FrameHeight)}
	canvas := doc.CanvasOr(frame)
	if !canvas.Valid() {
		return nil, &ConfigError{Field: "canvas_size", Value: canvas, Reason: "width and height must be positive"}
	}
	if !doc.HasCanvas() {
		pathanim.Logger().Debug("render: document has no canvas size, drawing in frame coordinates",
			"width", frame.Width, "height", frame.Height)
	}

	b, err := r.prepare(doc, canvas, frame, p)
	if err != nil {
		return nil, err
	}

	frames := make([]*image.RGBA, p.FrameCount)
	if err := r.pool.ForEach(ctx, len(frames), func(i int) {
		frames[i] = r.drawFrame(b, i)
	}); err != nil {
		return nil, fmt.Errorf("render: frames: %w", err)
	}

	applyTrail(frames, p.TrailLength)

	masks := make([]*image.Gray, len(frames))
	tracks := make([]pathanim.Track, len(b.paths))
	if err := r.pool.ForEach(ctx, len(frames)+len(b.paths), func(i int) {
		if i < len(frames) {
			masks[i] = channel.Extract(frames[i], channel.Red)
			return
		}
		j := i - len(frames)
		tracks[j] = b.paths[j].ExportTrack(b.override)
	}); err != nil {
		return nil, fmt.Errorf("render: masks: %w", err)
	}

	coords, err := pathanim.FormatTracks(tracks)
	if err != nil {
		return nil, err
	}
	pathanim.Logger().Info("render: generated tracks",
		"tracks", len(tracks), "points", pathanim.TrackLength, "frames", len(frames))

	return &Result{
		Frames:      frames,
		Masks:       masks,
		Tracks:      tracks,
		Coordinates: coords,
	}, nil
}

// prepare copies the document's paths, scales them from canvas to frame
// space and resolves colors, the global window and the background seed.
func (r *Renderer) prepare(doc *pathanim.Document, canvas, frame pathanim.Size, p Params) (*batch, error) {
	b := &batch{
		params: p,
		paths:  make([]*pathanim.Path, 0, len(doc.Paths)),
		fill:   opaque(pathanim.ColorOr(p.ShapeColor, pathanim.White)),
		border: opaque(pathanim.ColorOr(p.BorderColor, pathanim.White)),
	}

	for _, src := range doc.Paths {
		path := src.Copy()
		if err := path.RescaleCanvas(canvas, frame); err != nil {
			return nil, err
		}
		scaleLength(path, p)
		b.paths = append(b.paths, path)
	}

	if w, ok := pathanim.GlobalWindow(p.StartTimePercent, p.EndTimePercent); ok {
		pathanim.Logger().Info("render: global timeline override",
			"start", w.Start*100, "end", w.End*100)
		b.override = &w
	}

	if r.background == nil && doc.Background != nil {
		pathanim.Logger().Warn("render: background image not resolved, using bg_color",
			"name", doc.Background.Name, "subfolder", doc.Background.Subfolder)
	}
	b.seed = seedFrame(p.FrameWidth, p.FrameHeight,
		opaque(pathanim.ColorOr(p.BgColor, pathanim.Black)), r.background)
	return b, nil
}

// scaleLength applies the length override and multiplier to a motion path.
func scaleLength(path *pathanim.Path, p Params) {
	if !path.IsMotion() {
		return
	}
	current := pathanim.ArcLength(path.Points)
	factor, ok := pathanim.LengthScaleFactor(current, float64(p.OverridePathLength), p.PathLengthMultiplier)
	if !ok {
		return
	}
	pathanim.Logger().Info("render: scaling path",
		"name", path.Name, "from", current, "to", current*factor, "factor", factor)
	path.ScaleLength(factor)
}

// seedFrame returns the frame every batch frame starts from: bg, with the
// background image resized over it when there is one.
func seedFrame(w, h int, bg color.RGBA, background image.Image) *image.RGBA {
	seed := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(seed, seed.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if background != nil {
		resized := transform.Resize(background, w, h, transform.Linear)
		draw.Draw(seed, seed.Bounds(), resized, image.Point{}, draw.Over)
	}
	return seed
}

// drawFrame renders base frame i: seed, every visible shape, blur.
func (r *Renderer) drawFrame(b *batch, i int) *image.RGBA {
	img := clone.AsRGBA(b.seed)
	tau := pathanim.FrameTime(i, b.params.FrameCount)
	rotation := b.params.RotationSpeed * tau

	f := r.fillers.Get().(*raster.Filler)
	defer r.fillers.Put(f)

	size := float64(b.params.ShapeSize)
	bw := float64(b.params.BorderWidth)
	for _, path := range b.paths {
		s := path.SampleAt(tau, b.override)
		if !s.Visible {
			continue
		}
		poly := outline(b.params.Shape, s.Position, size, rotation)
		if bw <= 0 {
			f.Fill(img, poly, b.fill)
			continue
		}
		f.Fill(img, poly, b.border)
		if in := inset(poly, s.Position, size/2, bw); in != nil {
			f.Fill(img, in, b.fill)
		}
	}

	if b.params.BlurRadius > 0 {
		filter.NewBlurFilter(b.params.BlurRadius).ApplyInPlace(img)
	}
	return img
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
