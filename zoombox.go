package pathanim

const (
	// ZoomStep is the relative scale change applied per scroll event.
	ZoomStep = 0.05

	// MinZoomExtent is the smallest width or height, in pixels, a zoom box
	// may reach before it collapses.
	MinZoomExtent = 4.0
)

// ZoomBox accretes the four corner tracks of a rectangle that grows or
// shrinks around a fixed center. Every resize appends one sample to all
// four tracks in lock-step.
//
// A ZoomBox is not safe for concurrent use.
type ZoomBox struct {
	center       Point
	halfW, halfH float64
	scale        float64
	scales       []float64
	collapsed    bool
}

// NewZoomBox seeds a zoom box from a rectangle. The rectangle's corners are
// the first recorded step.
func NewZoomBox(r Rect) *ZoomBox {
	z := &ZoomBox{
		center: r.Center(),
		halfW:  abs(r.Width()) / 2,
		halfH:  abs(r.Height()) / 2,
		scale:  1,
		scales: []float64{1},
	}
	z.collapsed = z.tooSmall(1)
	return z
}

func (z *ZoomBox) tooSmall(scale float64) bool {
	return 2*z.halfW*scale < MinZoomExtent || 2*z.halfH*scale < MinZoomExtent
}

// Scroll applies one fixed-size step: a positive delta grows the box, a
// negative delta shrinks it. Only the sign of delta is used.
func (z *ZoomBox) Scroll(delta float64) {
	switch {
	case delta > 0:
		z.Resize(z.scale * (1 + ZoomStep))
	case delta < 0:
		z.Resize(z.scale * (1 - ZoomStep))
	}
}

// Resize records a new step at the given scale relative to the seed
// rectangle. A scale that takes the box below MinZoomExtent collapses it.
func (z *ZoomBox) Resize(scale float64) {
	if z.collapsed {
		return
	}
	if scale <= 0 || z.tooSmall(scale) {
		z.collapsed = true
		return
	}
	z.scale = scale
	z.scales = append(z.scales, scale)
}

// Steps returns the number of recorded steps, the seed included.
func (z *ZoomBox) Steps() int { return len(z.scales) }

// Collapsed reports whether the box shrank below MinZoomExtent.
func (z *ZoomBox) Collapsed() bool { return z.collapsed }

// Rect returns the current rectangle.
func (z *ZoomBox) Rect() Rect {
	d := Point{X: z.halfW * z.scale, Y: z.halfH * z.scale}
	return Rect{Min: z.center.Sub(d), Max: z.center.Add(d)}
}

// Params returns the generator parameters of one corner track.
func (z *ZoomBox) Params(c Corner) ZoomCornerParams {
	return ZoomCornerParams{
		Corner: c,
		Center: z.center,
		HalfW:  z.halfW,
		HalfH:  z.halfH,
		Scales: append([]float64(nil), z.scales...),
	}
}

// Finalize turns the four corner tracks into independent paths in TL, TR,
// BL, BR order. A collapsed box, or one with fewer than two recorded
// steps, yields no paths.
func (z *ZoomBox) Finalize() []*Path {
	if z.collapsed || len(z.scales) < 2 {
		return nil
	}
	paths := make([]*Path, 0, 4)
	for _, c := range []Corner{TopLeft, TopRight, BottomLeft, BottomRight} {
		p, err := NewGenerated(z.Params(c))
		if err != nil {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
