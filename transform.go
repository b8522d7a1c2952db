package pathanim

import (
	"math"
	"slices"
)

// DefaultCloneOffset is the clone displacement, in pixels on each axis,
// when grid snapping is off.
const DefaultCloneOffset = 20.0

// lengthEpsilon is the arc-length difference below which length scaling
// is skipped.
const lengthEpsilon = 1e-6

// applyAffine maps every point and the generator parameters through a.
func (p *Path) applyAffine(a affine) {
	for i, pt := range p.Points {
		p.Points[i] = a.apply(pt)
	}
	if g, ok := p.Kind.(Generated); ok && g.Params != nil {
		p.Kind = Generated{Params: g.Params.transformed(a)}
	}
}

// Translate moves the path by d.
func (p *Path) Translate(d Point) {
	p.applyAffine(affine{sx: 1, sy: 1, tx: d.X, ty: d.Y})
}

// Duplicate returns a deep copy offset by offset. The copy has no ID; the
// owner assigns identity, name and color.
func (p *Path) Duplicate(offset Point) *Path {
	c := p.Copy()
	c.ID = ""
	c.Translate(offset)
	return c
}

// FlipHorizontal mirrors the path across the vertical center line of its
// own bounding box.
func (p *Path) FlipHorizontal() {
	c := Bounds(p.Points).Center()
	p.applyAffine(affine{sx: -1, sy: 1, tx: 2 * c.X})
}

// FlipVertical mirrors the path across the horizontal center line of its
// own bounding box.
func (p *Path) FlipVertical() {
	c := Bounds(p.Points).Center()
	p.applyAffine(affine{sx: 1, sy: -1, ty: 2 * c.Y})
}

// Reverse reverses the point order and toggles Direction.
func (p *Path) Reverse() {
	slices.Reverse(p.Points)
	p.Direction = p.Direction.Opposite()
	if g, ok := p.Kind.(Generated); ok && g.Params != nil {
		p.Kind = Generated{Params: g.Params.reversed()}
	}
}

// RescaleCanvas scales the path from a canvas of size from to one of size
// to, independently on each axis.
func (p *Path) RescaleCanvas(from, to Size) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidCanvas
	}
	p.applyAffine(affine{sx: to.Width / from.Width, sy: to.Height / from.Height})
	return nil
}

// LengthScaleFactor returns the factor that takes a path of arc length
// current to its target length: override when positive, otherwise current,
// times multiplier. ok is false when no scaling is needed.
func LengthScaleFactor(current, override, multiplier float64) (factor float64, ok bool) {
	if current <= 0 {
		return 1, false
	}
	base := current
	if override > 0 {
		base = override
	}
	target := base * multiplier
	if math.Abs(target-current) < lengthEpsilon {
		return 1, false
	}
	return target / current, true
}

// ScaleLength scales every inter-point displacement by factor and rebuilds
// the path from its first point. The curve keeps its shape; only its size
// changes. Anchors are unaffected.
func (p *Path) ScaleLength(factor float64) {
	if p.IsAnchor() || factor == 1 {
		return
	}
	prev := p.Points[0]
	for i := 1; i < len(p.Points); i++ {
		d := p.Points[i].Sub(prev)
		prev = p.Points[i]
		p.Points[i] = p.Points[i-1].Add(d.Mul(factor))
	}
	if g, ok := p.Kind.(Generated); ok && g.Params != nil {
		o := p.Points[0]
		h := affine{sx: factor, sy: factor, tx: o.X * (1 - factor), ty: o.Y * (1 - factor)}
		p.Kind = Generated{Params: g.Params.transformed(h)}
	}
}

// Regenerate re-runs the path's generator with a new point count. Only
// orbit and arc paths are regenerable.
func (p *Path) Regenerate(n int) error {
	params, ok := p.Params()
	if !ok {
		return ErrNotRegenerable
	}
	next, ok := params.withCount(n)
	if !ok {
		return ErrNotRegenerable
	}
	pts := next.Generate()
	if len(pts) == 0 {
		return ErrDegenerate
	}
	p.Points = pts
	p.Kind = Generated{Params: next}
	return nil
}
