package pathanim

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultCanvas)
	require.NoError(t, err)
	return s
}

func TestNewSessionInvalidCanvas(t *testing.T) {
	for _, size := range []Size{{0, 10}, {10, -1}, {}} {
		_, err := NewSession(size)
		assert.ErrorIs(t, err, ErrInvalidCanvas)
	}
}

func TestSessionAdd(t *testing.T) {
	s := newTestSession(t)
	a, err := s.Add(pts(0, 0, 1, 1), nil)
	require.NoError(t, err)
	b, err := s.Add(pts(2, 2), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Path 1", a.Name)
	assert.Equal(t, "Path 2", b.Name)
	assert.NotEqual(t, a.Color, b.Color)
	assert.True(t, b.IsAnchor())
	assert.Equal(t, 2, s.Len())

	_, err = s.Add(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestSessionReturnsCopies(t *testing.T) {
	s := newTestSession(t)
	p, err := s.Add(pts(0, 0, 1, 1), nil)
	require.NoError(t, err)

	p.Points[0] = Pt(50, 50)
	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), got.Start())

	s.Paths()[0].Points[0] = Pt(60, 60)
	got, _ = s.Get(p.ID)
	assert.Equal(t, Pt(0, 0), got.Start())
}

func TestSessionUpdate(t *testing.T) {
	s := newTestSession(t)
	p, err := s.Add(pts(0, 0, 10, 0), nil)
	require.NoError(t, err)

	require.NoError(t, s.Update(p.ID, func(p *Path) {
		p.ID = "hijack"
		p.Window = Window{Start: 0.7, End: 0.2}
		p.Points = p.Points[:1]
	}))
	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAnchor())
	assert.Equal(t, Window{Start: 0.2, End: 0.7}, got.Window)

	err = s.Update(p.ID, func(p *Path) { p.Points = nil })
	assert.ErrorIs(t, err, ErrEmptyPath)
	got, _ = s.Get(p.ID)
	assert.Len(t, got.Points, 1)

	err = s.Update("missing", func(*Path) {})
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestSessionDelete(t *testing.T) {
	s := newTestSession(t)
	a, _ := s.Add(pts(0, 0), nil)
	b, _ := s.Add(pts(1, 1), nil)

	require.NoError(t, s.Delete(a.ID))
	assert.ErrorIs(t, s.Delete(a.ID), ErrPathNotFound)
	_, err := s.Get(a.ID)
	assert.True(t, errors.Is(err, ErrPathNotFound))

	paths := s.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, b.ID, paths[0].ID)

	s.SetBackground(&ImageRef{Name: "x.png"})
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Document().Background)
}

func TestSessionClone(t *testing.T) {
	s := newTestSession(t)
	p, _ := s.Add(pts(0, 0, 10, 10), nil)

	c, err := s.Clone(p.ID, 0)
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, c.ID)
	assert.NotEqual(t, p.Name, c.Name)
	assert.Equal(t, pts(20, 20, 30, 30), c.Points)

	g, err := s.Clone(p.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, pts(8, 8, 18, 18), g.Points)
	assert.Equal(t, 3, s.Len())

	_, err = s.Clone("missing", 0)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestSessionDrag(t *testing.T) {
	s := newTestSession(t)
	p, _ := s.Add(pts(0, 0, 10, 10), nil)

	require.NoError(t, s.DragTo(p.ID, Pt(100, 100)))
	got, _ := s.Get(p.ID)
	assert.Equal(t, pts(0, 0, 10, 10), got.Points)

	require.NoError(t, s.BeginDrag(p.ID, Pt(5, 5)))
	require.NoError(t, s.DragTo(p.ID, Pt(8, 9)))
	require.NoError(t, s.DragTo(p.ID, Pt(10, 10)))
	require.NoError(t, s.EndDrag(p.ID))
	got, _ = s.Get(p.ID)
	assert.Equal(t, pts(5, 5, 15, 15), got.Points)
	assert.Nil(t, got.DragStart)

	require.NoError(t, s.DragTo(p.ID, Pt(50, 50)))
	got, _ = s.Get(p.ID)
	assert.Equal(t, pts(5, 5, 15, 15), got.Points)
}

func TestSessionResizeCanvas(t *testing.T) {
	s := newTestSession(t)
	p, _ := s.Add(pts(0, 0, 256, 512), nil)

	require.NoError(t, s.ResizeCanvas(Size{Width: 1024, Height: 256}))
	assert.Equal(t, Size{Width: 1024, Height: 256}, s.Canvas())
	got, _ := s.Get(p.ID)
	assert.Equal(t, pts(0, 0, 512, 256), got.Points)

	assert.ErrorIs(t, s.ResizeCanvas(Size{}), ErrInvalidCanvas)
}

func TestLoadSession(t *testing.T) {
	a := mustPath(t, pts(0, 0, 1, 1), nil)
	a.ID = "dup"
	b := mustPath(t, pts(2, 2, 3, 3), nil)
	b.ID = "dup"
	doc := &Document{Canvas: Size{}, Paths: []*Path{a, b}, Background: &ImageRef{Name: "bg.png"}}

	s := LoadSession(doc)
	assert.Equal(t, DefaultCanvas, s.Canvas())
	paths := s.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, "dup", paths[0].ID)
	assert.NotEqual(t, "dup", paths[1].ID)
	assert.Equal(t, "bg.png", s.Document().Background.Name)
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := newTestSession(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.Add(pts(float64(i), 0, float64(i), 10), nil)
			if err != nil {
				t.Error(err)
				return
			}
			_ = s.Paths()
			_ = s.Update(p.ID, func(p *Path) { p.Translate(Pt(1, 1)) })
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, s.Len())
}
