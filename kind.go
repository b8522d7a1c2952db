package pathanim

import (
	"fmt"
	"slices"
)

// Kind is the sealed set of path variants: Freehand, Anchor and Generated.
type Kind interface {
	// Name returns the persisted kind name.
	Name() string
	cloneKind() Kind
}

// Freehand is a stroke drawn by hand.
type Freehand struct{}

// Anchor is a single static point.
type Anchor struct{}

// Generated is a path produced by a geometry generator. Params is the
// minimal state needed to regenerate the points at another granularity.
type Generated struct {
	Params GenerationParams
}

func (Freehand) Name() string { return "freehand" }
func (Anchor) Name() string   { return "static" }

func (g Generated) Name() string {
	if g.Params == nil {
		return "generated"
	}
	return g.Params.Name()
}

func (k Freehand) cloneKind() Kind { return k }
func (k Anchor) cloneKind() Kind   { return k }

func (g Generated) cloneKind() Kind {
	if g.Params == nil {
		return g
	}
	return Generated{Params: g.Params.transformed(identity)}
}

// Direction is the traversal sense of a path.
type Direction int

const (
	// Clockwise on screen (y grows downward): angles increase.
	Clockwise Direction = iota
	// CounterClockwise on screen: angles decrease.
	CounterClockwise
)

// Sign returns +1 for Clockwise and -1 for CounterClockwise.
func (d Direction) Sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "cw", "clockwise", "":
		*d = Clockwise
	case "ccw", "counter-clockwise", "counterclockwise":
		*d = CounterClockwise
	default:
		return fmt.Errorf("pathanim: unknown direction %q", b)
	}
	return nil
}

// affine maps (x, y) to (sx*x + tx, sy*y + ty). It covers every transform
// that must keep generator parameters in sync with their points: canvas
// rescale, translation, mirroring and homothety.
type affine struct {
	sx, sy, tx, ty float64
}

var identity = affine{sx: 1, sy: 1}

func (a affine) apply(p Point) Point {
	return Point{X: a.sx*p.X + a.tx, Y: a.sy*p.Y + a.ty}
}

// mirrors reports whether the transform flips orientation.
func (a affine) mirrors() bool {
	return a.sx*a.sy < 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// GenerationParams is the parametric state of a generated path.
type GenerationParams interface {
	// Name returns the persisted generator name.
	Name() string

	// Generate returns a fresh point sequence. Degenerate parameters
	// produce an empty slice.
	Generate() []Point

	// Count returns the point-count parameter.
	Count() int

	withCount(n int) (GenerationParams, bool)
	transformed(a affine) GenerationParams
	reversed() GenerationParams
}

// OrbitParams describes an elliptical orbit.
type OrbitParams struct {
	Center    Point     `json:"center"`
	RX        float64   `json:"rx"`
	RY        float64   `json:"ry"`
	Ref       *Point    `json:"ref,omitempty"`
	Direction Direction `json:"direction"`
	Points    int       `json:"count"`
}

func (o OrbitParams) Name() string      { return "orbit" }
func (o OrbitParams) Generate() []Point { return Orbit(o) }
func (o OrbitParams) Count() int        { return o.Points }

func (o OrbitParams) reversed() GenerationParams {
	o.Direction = o.Direction.Opposite()
	if o.Ref != nil {
		r := *o.Ref
		o.Ref = &r
	}
	return o
}

func (o OrbitParams) withCount(n int) (GenerationParams, bool) {
	o.Points = n
	return o, true
}

func (o OrbitParams) transformed(a affine) GenerationParams {
	o.Center = a.apply(o.Center)
	o.RX *= abs(a.sx)
	o.RY *= abs(a.sy)
	if o.Ref != nil {
		r := a.apply(*o.Ref)
		o.Ref = &r
	}
	if a.mirrors() {
		o.Direction = o.Direction.Opposite()
	}
	return o
}

// ArcParams describes a half-circle sweep from Start toward End.
type ArcParams struct {
	Start     Point     `json:"start"`
	End       Point     `json:"end"`
	Direction Direction `json:"direction"`
	Points    int       `json:"count"`
}

func (a ArcParams) Name() string      { return "arc" }
func (a ArcParams) Generate() []Point { return Arc(a) }
func (a ArcParams) Count() int        { return a.Points }

func (a ArcParams) reversed() GenerationParams {
	a.Start, a.End = a.End, a.Start
	a.Direction = a.Direction.Opposite()
	return a
}

func (a ArcParams) withCount(n int) (GenerationParams, bool) {
	a.Points = n
	return a, true
}

func (a ArcParams) transformed(m affine) GenerationParams {
	a.Start = m.apply(a.Start)
	a.End = m.apply(a.End)
	if m.mirrors() {
		a.Direction = a.Direction.Opposite()
	}
	return a
}

// Corner identifies one corner of a zoom box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"tl", "tr", "bl", "br"}

func (c Corner) String() string {
	if c < TopLeft || c > BottomRight {
		return "corner(" + fmt.Sprint(int(c)) + ")"
	}
	return cornerNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Corner) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Corner) UnmarshalText(b []byte) error {
	i := slices.Index(cornerNames[:], string(b))
	if i < 0 {
		return fmt.Errorf("pathanim: unknown corner %q", b)
	}
	*c = Corner(i)
	return nil
}

// signs returns the unit offsets of the corner from the box center.
func (c Corner) signs() (float64, float64) {
	switch c {
	case TopLeft:
		return -1, -1
	case TopRight:
		return 1, -1
	case BottomLeft:
		return -1, 1
	default:
		return 1, 1
	}
}

func cornerFromSigns(sx, sy float64) Corner {
	switch {
	case sx < 0 && sy < 0:
		return TopLeft
	case sy < 0:
		return TopRight
	case sx < 0:
		return BottomLeft
	default:
		return BottomRight
	}
}

// ZoomCornerParams describes one corner track of a zoom box: the corner
// position at every recorded scale step.
type ZoomCornerParams struct {
	Corner Corner    `json:"corner"`
	Center Point     `json:"center"`
	HalfW  float64   `json:"halfWidth"`
	HalfH  float64   `json:"halfHeight"`
	Scales []float64 `json:"scales"`
}

func (z ZoomCornerParams) Name() string { return "zoombox" }
func (z ZoomCornerParams) Count() int   { return len(z.Scales) }

func (z ZoomCornerParams) Generate() []Point {
	sx, sy := z.Corner.signs()
	pts := make([]Point, len(z.Scales))
	for i, s := range z.Scales {
		pts[i] = Point{X: z.Center.X + sx*z.HalfW*s, Y: z.Center.Y + sy*z.HalfH*s}
	}
	return pts
}

// Zoom-box corners are accreted from scroll events and have no free
// point-count parameter.
func (z ZoomCornerParams) withCount(int) (GenerationParams, bool) {
	return z, false
}

func (z ZoomCornerParams) reversed() GenerationParams {
	z.Scales = slices.Clone(z.Scales)
	slices.Reverse(z.Scales)
	return z
}

func (z ZoomCornerParams) transformed(a affine) GenerationParams {
	z.Center = a.apply(z.Center)
	z.HalfW *= abs(a.sx)
	z.HalfH *= abs(a.sy)
	sx, sy := z.Corner.signs()
	if a.sx < 0 {
		sx = -sx
	}
	if a.sy < 0 {
		sy = -sy
	}
	z.Corner = cornerFromSigns(sx, sy)
	z.Scales = slices.Clone(z.Scales)
	return z
}
