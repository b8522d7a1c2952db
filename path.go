package pathanim

import (
	"slices"

	"github.com/jinzhu/copier"
)

// Path is the atomic trajectory unit: an ordered point sequence plus the
// timeline metadata that drives it.
//
// Points is never empty. A path with exactly one point is a static anchor
// regardless of its Kind.
type Path struct {
	// ID is assigned at creation and never reused.
	ID string

	// Name and Color are display-only.
	Name  string
	Color string

	// Points in traversal order.
	Points []Point

	// Kind tags the path variant. Generated paths carry the parameters
	// needed to re-run their generator.
	Kind Kind `copier:"-"`

	// Direction is toggled together with the order of Points.
	Direction Direction

	// Window is the active span on the normalized animation timeline.
	Window Window

	Interpolation Interpolation
	Visibility    Visibility

	// DragStart is transient editor state and is never copied.
	DragStart *Point `copier:"-"`
}

// NewPath creates a path from points. A single point always produces an
// anchor; an anchor kind keeps only its first point. A nil kind means
// freehand.
func NewPath(points []Point, kind Kind) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}
	if kind == nil {
		kind = Freehand{}
	}
	p := &Path{
		Points:        slices.Clone(points),
		Kind:          kind,
		Window:        FullWindow,
		Interpolation: Linear,
		Visibility:    Pop,
	}
	p.normalizeKind()
	return p, nil
}

// normalizeKind enforces the anchor invariant in both directions.
func (p *Path) normalizeKind() {
	if len(p.Points) == 1 {
		p.Kind = Anchor{}
		return
	}
	if _, ok := p.Kind.(Anchor); ok {
		p.Points = p.Points[:1]
	}
}

// IsAnchor reports whether the path is a static anchor.
func (p *Path) IsAnchor() bool {
	if len(p.Points) == 1 {
		return true
	}
	_, ok := p.Kind.(Anchor)
	return ok
}

// IsMotion reports whether the path moves over time.
func (p *Path) IsMotion() bool {
	return !p.IsAnchor()
}

// Start returns the first point of the path.
func (p *Path) Start() Point { return p.Points[0] }

// End returns the last point of the path.
func (p *Path) End() Point { return p.Points[len(p.Points)-1] }

// Copy returns a deep copy of the path, including its generator
// parameters. Transient drag state is dropped.
func (p *Path) Copy() *Path {
	c := new(Path)
	if err := copier.CopyWithOption(c, p, copier.Option{DeepCopy: true}); err != nil {
		Logger().Warn("pathanim: deep copy failed, copying by hand", "id", p.ID, "err", err)
		*c = *p
		c.Points = slices.Clone(p.Points)
		c.DragStart = nil
	}
	if p.Kind != nil {
		c.Kind = p.Kind.cloneKind()
	}
	return c
}

// SetWindow sets the active timeline window, clamping it to [0,1] with the
// minimum separation.
func (p *Path) SetWindow(start, end float64) {
	p.Window = NewWindow(start, end)
}

// SetDirection changes the direction flag. Changing it reverses the point
// order; setting the current direction is a no-op.
func (p *Path) SetDirection(d Direction) {
	if d == p.Direction {
		return
	}
	p.Reverse()
}

// Params returns the generator parameters of a generated path.
func (p *Path) Params() (GenerationParams, bool) {
	g, ok := p.Kind.(Generated)
	if !ok || g.Params == nil {
		return nil, false
	}
	return g.Params, true
}
