package pathanim

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// palette is cycled to give new paths distinct display colors.
var palette = []string{
	"#ff4d4d", "#4da6ff", "#4dff88", "#ffd24d",
	"#c44dff", "#ff8c4d", "#4dfff0", "#ff4dc4",
}

// Session exclusively owns a collection of paths on a canvas. Every
// accessor returns copies; paths are only mutated through the session.
//
// Session is safe for concurrent use.
type Session struct {
	mu         sync.RWMutex
	canvas     Size
	background *ImageRef
	paths      []*Path
	created    int
}

// NewSession returns an empty session on the given canvas.
func NewSession(canvas Size) (*Session, error) {
	if !canvas.Valid() {
		return nil, ErrInvalidCanvas
	}
	return &Session{canvas: canvas}, nil
}

// LoadSession builds a session from a document. Documents with an invalid
// canvas are placed on DefaultCanvas.
func LoadSession(doc *Document) *Session {
	canvas := doc.Canvas
	if !canvas.Valid() {
		canvas = DefaultCanvas
	}
	s := &Session{canvas: canvas, background: doc.Background}
	for _, p := range doc.Paths {
		if _, err := s.AddPath(p); err != nil {
			Logger().Warn("pathanim: dropping path from document", "id", p.ID, "err", err)
		}
	}
	return s
}

// Canvas returns the canvas size.
func (s *Session) Canvas() Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas
}

// Len returns the number of paths.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paths)
}

// SetBackground sets or clears the background image reference.
func (s *Session) SetBackground(ref *ImageRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ref != nil {
		r := *ref
		ref = &r
	}
	s.background = ref
}

// Add creates a path from points and returns a copy of it.
func (s *Session) Add(points []Point, kind Kind) (*Path, error) {
	p, err := NewPath(points, kind)
	if err != nil {
		return nil, err
	}
	return s.AddPath(p)
}

// AddGenerated runs a generator and stores the result. Degenerate
// parameters return ErrDegenerate and store nothing.
func (s *Session) AddGenerated(params GenerationParams) (*Path, error) {
	p, err := NewGenerated(params)
	if err != nil {
		return nil, err
	}
	return s.AddPath(p)
}

// AddZoomBox finalizes a zoom box and stores its corner paths. A box that
// yields no paths returns ErrDegenerate.
func (s *Session) AddZoomBox(z *ZoomBox) ([]*Path, error) {
	paths := z.Finalize()
	if len(paths) == 0 {
		return nil, ErrDegenerate
	}
	out := make([]*Path, 0, len(paths))
	for _, p := range paths {
		c, err := s.AddPath(p)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AddPath stores a copy of p, filling in a fresh id, name and color when
// they are empty or the id is already taken.
func (s *Session) AddPath(p *Path) (*Path, error) {
	if len(p.Points) == 0 {
		return nil, ErrEmptyPath
	}
	c := p.Copy()
	c.normalizeKind()
	c.Window = NewWindow(c.Window.Start, c.Window.End)

	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" || s.index(c.ID) >= 0 {
		c.ID = uuid.NewString()
	}
	s.created++
	if c.Name == "" {
		c.Name = fmt.Sprintf("Path %d", s.created)
	}
	if c.Color == "" {
		c.Color = palette[(s.created-1)%len(palette)]
	}
	s.paths = append(s.paths, c)
	return c.Copy(), nil
}

func (s *Session) index(id string) int {
	return slices.IndexFunc(s.paths, func(p *Path) bool { return p.ID == id })
}

// Get returns a copy of the path with the given id.
func (s *Session) Get(id string) (*Path, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, id)
	}
	return s.paths[i].Copy(), nil
}

// Paths returns copies of all paths in collection order.
func (s *Session) Paths() []*Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Path, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.Copy()
	}
	return out
}

// Update applies fn to the stored path. The invariants (non-empty points,
// anchor shape, window ordering) are re-established afterwards; if fn
// empties the path the edit is discarded and ErrEmptyPath returned. The id
// cannot be changed.
func (s *Session) Update(id string, fn func(p *Path)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, id)
	}
	work := s.paths[i].Copy()
	work.DragStart = s.paths[i].DragStart
	fn(work)
	if len(work.Points) == 0 {
		return ErrEmptyPath
	}
	work.ID = id
	work.normalizeKind()
	work.Window = NewWindow(work.Window.Start, work.Window.End)
	s.paths[i] = work
	return nil
}

// Delete removes the path with the given id.
func (s *Session) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, id)
	}
	s.paths = slices.Delete(s.paths, i, i+1)
	return nil
}

// Reset removes every path and the background reference.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = nil
	s.background = nil
}

// Clone duplicates a path. The copy is offset by grid on both axes when
// grid snapping is active (grid > 0), otherwise by DefaultCloneOffset,
// and receives a new id, name and color.
func (s *Session) Clone(id string, grid float64) (*Path, error) {
	src, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	off := DefaultCloneOffset
	if grid > 0 {
		off = grid
	}
	c := src.Duplicate(Pt(off, off))
	c.Name = ""
	c.Color = ""
	return s.AddPath(c)
}

// BeginDrag starts repositioning a path from the pointer position at.
func (s *Session) BeginDrag(id string, at Point) error {
	return s.Update(id, func(p *Path) {
		p.DragStart = &at
	})
}

// DragTo moves a path being dragged so that it follows the pointer.
// Without a preceding BeginDrag it is a no-op.
func (s *Session) DragTo(id string, at Point) error {
	return s.Update(id, func(p *Path) {
		if p.DragStart == nil {
			return
		}
		p.Translate(at.Sub(*p.DragStart))
		p.DragStart = &at
	})
}

// EndDrag clears the transient drag state.
func (s *Session) EndDrag(id string) error {
	return s.Update(id, func(p *Path) {
		p.DragStart = nil
	})
}

// ResizeCanvas rescales every path, and its generator parameters, from the
// current canvas to size.
func (s *Session) ResizeCanvas(size Size) error {
	if !size.Valid() {
		return ErrInvalidCanvas
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.paths {
		if err := p.RescaleCanvas(s.canvas, size); err != nil {
			return err
		}
	}
	s.canvas = size
	return nil
}

// Document returns a snapshot of the session.
func (s *Session) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := &Document{
		FormatVersion: FormatVersion,
		Canvas:        s.canvas,
		Paths:         make([]*Path, len(s.paths)),
	}
	for i, p := range s.paths {
		doc.Paths[i] = p.Copy()
	}
	if s.background != nil {
		r := *s.background
		doc.Background = &r
	}
	return doc
}
